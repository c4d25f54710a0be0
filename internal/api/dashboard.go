package api

import (
	"net/http" // HTTP status codes

	"thrift_manager/internal/service" // Dashboard service

	"github.com/gin-gonic/gin" // Gin web framework
)

// DashboardStatsHandler returns the caller's totals and latest contributions
func DashboardStatsHandler(dashboard *service.DashboardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		stats, err := dashboard.Stats(c.Request.Context(), userID)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

// DashboardActivitiesHandler returns the caller's latest activities
func DashboardActivitiesHandler(dashboard *service.DashboardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		activities, err := dashboard.Activities(c.Request.Context(), userID)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, activities)
	}
}
