package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	v1 "github.com/waitlist-simple/api/v1"
	"github.com/waitlist-simple/config"
	"github.com/waitlist-simple/utils"
)

func main() {
	// Load environment variables and fail fast on missing configuration
	config.LoadEnv()
	config.ValidateStartup()

	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Register custom validation rules
	utils.RegisterValidators()

	// Initialize router
	router := gin.New()
	router.Use(gin.Recovery())

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization"},
	}))

	// Health banner at the root
	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "waitlist-api",
			"version": "1.0.0",
		})
	})

	// API routes
	v1.RegisterRoutes(router.Group("/api"))

	// Get port from environment or use default
	port := config.GetEnv("PORT", "8080")

	logrus.Infof("Waitlist API starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}
