package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/infrastructure/auth"
	"github.com/storefront/backend/internal/infrastructure/logger"
	"github.com/storefront/backend/internal/interfaces/http/dto"
)

// Session context keys
const (
	SessionKey    = "session"
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

// Session resolves the bearer credential on each request into an
// identity.Session and stores it in the gin context. Requests without a
// credential continue anonymously; a credential that is present but
// invalid is rejected here, never silently downgraded to anonymous.
func Session(jwtService *auth.JWTService, log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}

	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthHeaderKey)
		if authHeader == "" {
			c.Next()
			return
		}

		if !strings.HasPrefix(authHeader, BearerPrefix) {
			rejectCredential(c, dto.ErrCodeTokenInvalid, "Invalid authorization header format")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
		if tokenString == "" {
			rejectCredential(c, dto.ErrCodeTokenInvalid, "Missing token")
			return
		}

		session, err := jwtService.ResolveSession(tokenString)
		if err != nil {
			log.Warn("session resolution failed",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path))

			if errors.Is(err, auth.ErrExpiredToken) {
				rejectCredential(c, dto.ErrCodeTokenExpired, "Token has expired")
				return
			}
			rejectCredential(c, dto.ErrCodeTokenInvalid, "Invalid token")
			return
		}

		c.Set(SessionKey, session)

		// Propagate the user onto the request-scoped logger
		ctx := c.Request.Context()
		ctx, _ = logger.WithUserID(ctx, logger.FromContext(ctx), session.UserID)
		c.Request = c.Request.WithContext(ctx)
		c.Set("user_id", session.UserID)

		c.Next()
	}
}

// GetSession retrieves the resolved session from the gin context.
// Returns nil for anonymous requests.
func GetSession(c *gin.Context) *identity.Session {
	if value, exists := c.Get(SessionKey); exists {
		if session, ok := value.(*identity.Session); ok {
			return session
		}
	}
	return nil
}

func rejectCredential(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponseWithRequestID(code, message, GetRequestID(c)))
}
