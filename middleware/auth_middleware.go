package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/waitlist-simple/apperrors"
	"github.com/waitlist-simple/config"
	"github.com/waitlist-simple/dto"
	"github.com/waitlist-simple/models"
	"github.com/waitlist-simple/repositories"
	"github.com/waitlist-simple/services"
	"github.com/waitlist-simple/utils"
)

const (
	contextKeyProject  = "project"
	contextKeyIdentity = "identity"
)

// ProjectFinder resolves an API token to its active project.
type ProjectFinder interface {
	FindByToken(ctx context.Context, token string) (models.Project, error)
}

// RequireAdminKey gates admin-only routes on the process-wide shared secret.
// Every failure is the same undifferentiated 401; the response never reveals
// whether a key was malformed, wrong, or missing.
func RequireAdminKey() gin.HandlerFunc {
	adminKey := config.MustGetEnv("ADMIN_API_KEY")

	return func(c *gin.Context) {
		if extractBearer(c) != adminKey {
			utils.AbortWithError(c, apperrors.NewUnauthorized("Unauthorized"))
			return
		}
		c.Next()
	}
}

// ProjectAuth gates tenant-scoped routes on a per-project API token.
type ProjectAuth struct {
	projects ProjectFinder
}

// NewProjectAuth creates the project-token middleware backed by the
// project repository.
func NewProjectAuth() *ProjectAuth {
	return &ProjectAuth{projects: repositories.NewProjectRepository()}
}

// RequireProjectToken verifies the bearer token against the stored project
// credentials and binds the resolved project onto the request context.
// Wrong token, rotated-away token and inactive project are deliberately
// indistinguishable.
func (a *ProjectAuth) RequireProjectToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		invalid := apperrors.NewUnauthorized("Invalid or inactive API token")

		token := extractBearer(c)
		if token == "" {
			utils.AbortWithError(c, invalid)
			return
		}

		project, err := a.projects.FindByToken(c.Request.Context(), token)
		if err != nil {
			if apperrors.IsKind(err, apperrors.KindNotFound) {
				utils.AbortWithError(c, invalid)
				return
			}
			logrus.WithError(err).Error("Project token lookup failed")
			utils.AbortWithError(c, err)
			return
		}

		c.Set(contextKeyProject, project)
		c.Next()
	}
}

// ProjectFromContext returns the project bound by RequireProjectToken.
func ProjectFromContext(c *gin.Context) (models.Project, bool) {
	value, exists := c.Get(contextKeyProject)
	if !exists {
		return models.Project{}, false
	}
	project, ok := value.(models.Project)
	return project, ok
}

// AttachIdentity decodes an identity JWT when one is presented. Absence or
// failure attaches nothing; downstream role gates decide whether that ends
// the request.
func AttachIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := extractBearer(c); token != "" {
			if claims, err := services.ValidateToken(token); err == nil {
				c.Set(contextKeyIdentity, claims)
			}
		}
		c.Next()
	}
}

// IdentityFromContext returns the claims attached by AttachIdentity.
func IdentityFromContext(c *gin.Context) (*dto.TokenClaims, bool) {
	value, exists := c.Get(contextKeyIdentity)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*dto.TokenClaims)
	return claims, ok
}

func extractBearer(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}
