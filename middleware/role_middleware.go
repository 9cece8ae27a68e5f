package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/waitlist-simple/apperrors"
	"github.com/waitlist-simple/utils"
)

// RequireRole ensures an attached identity carries the expected user type.
// Unlike the credential gates this is a 403: the caller may be recognized
// but still lacks the privilege. A missing identity is simply "no role".
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := IdentityFromContext(c)
		if !ok || claims.UserType != role {
			utils.AbortWithError(c, apperrors.NewForbidden(
				"Forbidden: You do not have permission to access this resource."))
			return
		}
		c.Next()
	}
}
