package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/waitlist-simple/utils"
)

// HealthCheck handles the health check endpoint
func HealthCheck(c *gin.Context) {
	utils.SendResponse(c, http.StatusOK, gin.H{"status": "OK"}, "API is running")
}
