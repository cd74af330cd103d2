package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"cape-tours-api/internal/domain/user"
	"cape-tours-api/internal/handler/httperr"
	"cape-tours-api/internal/pkg/cookie"
	"cape-tours-api/internal/usecase"
	"cape-tours-api/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxActorKey = "actor"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth resolves the caller into an Actor once; handlers never re-derive
// role or driver identity from the database.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.Abort(c, http.StatusUnauthorized, httperr.KindUnauthorized, "Access token required")
			return
		}

		actor, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.Abort(c, http.StatusUnauthorized, httperr.KindUnauthorized, "Invalid or expired token")
			return
		}

		c.Set(ctxActorKey, actor)
		c.Next()
	}
}

// RequireRole must run after RequireAuth. Admins pass every role gate.
func (m *AuthMiddleware) RequireRole(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			httperr.Abort(c, http.StatusInternalServerError, httperr.KindInternal, "Internal server error")
			return
		}

		if actor.IsAdmin() {
			c.Next()
			return
		}

		for _, role := range roles {
			if actor.Role == role {
				c.Next()
				return
			}
		}

		httperr.Abort(c, http.StatusForbidden, httperr.KindForbidden, "Insufficient permissions")
	}
}

// OptionalAuth attaches the actor when a valid token is present but never
// aborts. The public booking funnel uses it to link bookings to accounts.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		actor, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			c.Next()
			return
		}

		c.Set(ctxActorKey, actor)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	token := cookie.GetAccessToken(c)
	if token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetActor(c *gin.Context) (shared.Actor, bool) {
	value, exists := c.Get(ctxActorKey)
	if !exists {
		return shared.Actor{}, false
	}

	actor, ok := value.(shared.Actor)
	return actor, ok
}
