package api

import (
	"net/http" // HTTP status codes

	"thrift_manager/internal/domain"  // Error taxonomy
	"thrift_manager/internal/service" // Contribution service
	"thrift_manager/internal/utils"   // Pagination

	"github.com/gin-gonic/gin" // Gin web framework
)

// CreateContributionHandler records a contribution by one of the caller's members
func CreateContributionHandler(contributions *service.ContributionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		var req service.ContributionInput // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			_ = c.Error(domain.Validation("Invalid request"))
			return
		}
		contribution, err := contributions.Create(c.Request.Context(), userID, req)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusCreated, contribution)
	}
}

// ListContributionsHandler returns one page of contributions toward the caller's thrifts
func ListContributionsHandler(contributions *service.ContributionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		page := utils.ParsePage(c.Query("page"), c.Query("limit"), contributions.DefaultPageSize())
		resp, err := contributions.List(c.Request.Context(), userID, page)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}
