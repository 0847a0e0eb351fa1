package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/interfaces/http/dto"
)

// ActorKey is the gin context key for the authorized actor
const ActorKey = "actor"

// RequirePrivileged gates admin routes. It runs the authorization check
// before any handler logic: anonymous callers get 401, authenticated but
// non-privileged callers get 403. Handlers behind this gate can rely on
// GetActor returning a non-nil actor.
func RequirePrivileged() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, err := identity.Authorize(GetSession(c))
		if err != nil {
			code := dto.ErrCodeInternal
			message := "An unexpected error occurred"

			var domainErr *shared.DomainError
			if errors.As(err, &domainErr) {
				code = dto.NormalizeErrorCode(domainErr.Code)
				message = domainErr.Message
			}

			c.AbortWithStatusJSON(dto.GetHTTPStatus(code),
				dto.NewErrorResponseWithRequestID(code, message, GetRequestID(c)))
			return
		}

		c.Set(ActorKey, actor)
		c.Next()
	}
}

// GetActor retrieves the authorized actor from the gin context.
// Returns nil outside routes gated by RequirePrivileged.
func GetActor(c *gin.Context) *identity.Actor {
	if value, exists := c.Get(ActorKey); exists {
		if actor, ok := value.(*identity.Actor); ok {
			return actor
		}
	}
	return nil
}
