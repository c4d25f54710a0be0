package api

import (
	"net/http" // HTTP status codes

	"thrift_manager/internal/domain"  // Error taxonomy
	"thrift_manager/internal/service" // Member service

	"github.com/gin-gonic/gin" // Gin web framework
)

// CreateMemberHandler adds a member for the authenticated user
func CreateMemberHandler(members *service.MemberService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		var req service.MemberInput // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			_ = c.Error(domain.Validation("Invalid request"))
			return
		}
		member, err := members.Create(c.Request.Context(), userID, req)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusCreated, member)
	}
}

// ListMembersHandler returns every member of the authenticated user
func ListMembersHandler(members *service.MemberService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		list, err := members.List(c.Request.Context(), userID)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, list) // Plain array, not paginated
	}
}
