package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/waitlist-simple/middleware"
	"github.com/waitlist-simple/models"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	projectAuth := middleware.NewProjectAuth()

	// Project management - admin key only
	projectGroup := router.Group("/projects")
	projectGroup.Use(middleware.RequireAdminKey())
	{
		projectGroup.POST("", CreateProject)
		projectGroup.GET("", ListProjects)
		projectGroup.GET("/:projectId", GetProject)
		projectGroup.PUT("/:projectId", UpdateProject)
		projectGroup.DELETE("/:projectId", DeleteProject)
		projectGroup.POST("/:projectId/regenerate-token", RegenerateToken)
	}

	// Waitlist endpoints
	waitlistGroup := router.Group("/waitlist")
	{
		// Signup append - per-project token only
		waitlistGroup.POST("/add", projectAuth.RequireProjectToken(), AddToWaitlist)

		// Cross-tenant inspection and administration - admin key only
		adminWaitlist := waitlistGroup.Group("/project")
		adminWaitlist.Use(middleware.RequireAdminKey())
		{
			adminWaitlist.GET("/:projectId", GetWaitlistEntries)
			adminWaitlist.GET("/:projectId/stats", GetWaitlistStats)
			adminWaitlist.DELETE("/:projectId/entry/:entryId", DeleteWaitlistEntry)
		}
	}

	// Human login path - orthogonal to tenancy
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", Register)
		authGroup.POST("/login", Login)
		authGroup.GET("/me",
			middleware.AttachIdentity(),
			middleware.RequireRole(string(models.UserTypeDeveloper)),
			GetCurrentUser)
	}
}
