package api

import (
	"net/http" // HTTP status codes

	"thrift_manager/internal/middleware" // Auth, errors, logging, metrics
	"thrift_manager/internal/service"    // Business services

	"github.com/gin-gonic/gin" // Gin web framework
)

// RouterOptions carries the environment-dependent router settings
type RouterOptions struct {
	IsProd  bool                // Secure cookies, no error traces
	Metrics *middleware.Metrics // Optional; nil disables /metrics
}

// NewRouter mounts every API route on a new gin engine
func NewRouter(svc *service.Services, opts RouterOptions) *gin.Engine {
	r := gin.New() // Gin router instance

	r.Use(middleware.RequestLogger()) // Outermost so it sees the final status
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware())
		r.GET("/metrics", opts.Metrics.Handler())
	}
	r.Use(middleware.ErrorHandler(opts.IsProd)) // Translate errors and panics

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "API is running...")
	})

	authMW := middleware.JWTAuthMiddleware(svc.Auth) // Cookie or Bearer session
	secure := opts.IsProd

	// Auth routes
	auth := r.Group("/api/auth")
	auth.POST("/register", RegisterHandler(svc.Auth, secure)) // Registration endpoint
	auth.POST("/login", LoginHandler(svc.Auth, secure))       // Login endpoint
	auth.POST("/logout", LogoutHandler(secure))               // Logout endpoint
	auth.GET("/me", authMW, MeHandler())                      // Current user

	// Member routes (protected)
	members := r.Group("/api/members", authMW)
	members.POST("/create", CreateMemberHandler(svc.Members)) // Create member
	members.GET("/all", ListMembersHandler(svc.Members))      // List members

	// Thrift routes (protected)
	thrifts := r.Group("/api/thrifts", authMW)
	thrifts.POST("/create", CreateThriftHandler(svc.Thrifts)) // Create thrift
	thrifts.GET("/all", ListThriftsHandler(svc.Thrifts))      // List thrifts
	thrifts.PUT("/:id", UpdateThriftHandler(svc.Thrifts))     // Update thrift (owner only)

	// Contribution routes (protected)
	contributions := r.Group("/api/contributions", authMW)
	contributions.POST("/create", CreateContributionHandler(svc.Contributions)) // Create contribution
	contributions.GET("/all", ListContributionsHandler(svc.Contributions))      // List contributions

	// Dashboard routes (protected)
	dashboard := r.Group("/api/dashboard", authMW)
	dashboard.GET("/stats", DashboardStatsHandler(svc.Dashboard))           // Aggregated totals
	dashboard.GET("/activities", DashboardActivitiesHandler(svc.Dashboard)) // Activity feed

	return r
}
