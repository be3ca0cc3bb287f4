package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appauth "github.com/biblio-hq/biblio/internal/app/auth"
	"github.com/biblio-hq/biblio/internal/app/models/dto"
)

// Context key under which the authenticated user id is stored
const ContextUserID = "userID"

// AuthMiddleware gates protected routes behind bearer verification
type AuthMiddleware struct {
	bearer *appauth.BearerStrategy
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(bearer *appauth.BearerStrategy) *AuthMiddleware {
	return &AuthMiddleware{
		bearer: bearer,
	}
}

// RequireBearer verifies the Authorization header. Unauthenticated access
// gets exactly one response: 401 with a fail envelope.
func (m *AuthMiddleware) RequireBearer() gin.HandlerFunc {
	return func(c *gin.Context) {
		outcome := m.bearer.Verify(c.GetHeader("Authorization"))
		if outcome.Status != appauth.StatusAuthenticated {
			message := outcome.Reason
			if message == "" && outcome.Cause != nil {
				message = outcome.Cause.Error()
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail(message))
			return
		}

		c.Set(ContextUserID, outcome.Identity.UserID)
		c.Next()
	}
}
