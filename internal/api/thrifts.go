package api

import (
	"net/http" // HTTP status codes

	"thrift_manager/internal/domain"  // Error taxonomy
	"thrift_manager/internal/service" // Thrift service
	"thrift_manager/internal/utils"   // Pagination

	"github.com/gin-gonic/gin" // Gin web framework
)

// CreateThriftHandler creates a thrift plan owned by the caller
func CreateThriftHandler(thrifts *service.ThriftService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		var req service.ThriftInput // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			_ = c.Error(domain.Validation("Invalid request"))
			return
		}
		thrift, err := thrifts.Create(c.Request.Context(), userID, req)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusCreated, thrift)
	}
}

// ListThriftsHandler returns one page of the caller's thrifts
func ListThriftsHandler(thrifts *service.ThriftService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		page := utils.ParsePage(c.Query("page"), c.Query("limit"), thrifts.DefaultPageSize()) // Resolve page and limit
		resp, err := thrifts.List(c.Request.Context(), userID, page)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// UpdateThriftHandler overwrites a thrift; only its owner may do so
func UpdateThriftHandler(thrifts *service.ThriftService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		var req service.ThriftInput // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			_ = c.Error(domain.Validation("Invalid request"))
			return
		}
		thrift, err := thrifts.Update(c.Request.Context(), c.Param("id"), userID, req)
		if err != nil {
			_ = c.Error(err) // NotFound, Forbidden or ValidationError
			return
		}
		c.JSON(http.StatusOK, thrift)
	}
}
