package middleware

import (
	"net/http"
	"strings"

	"timeslot-api/internal/domain/booking"
	"timeslot-api/internal/pkg/config"
	"timeslot-api/internal/pkg/secret"

	"github.com/gin-gonic/gin"
)

const (
	actorNameHeader   = "X-Actor-Name"
	adminSecretHeader = "X-Admin-Secret"

	actorContextKey = "actor"
)

// ActorMiddleware turns request headers into a booking.Actor: a self-declared
// display name plus an admin capability granted by the secret check. The
// actor travels through the context; permission enforcement stays in the
// command path.
type ActorMiddleware struct {
	verifier *secret.Verifier
}

func NewActorMiddleware(cfg config.Config) *ActorMiddleware {
	return &ActorMiddleware{verifier: secret.NewVerifier(cfg.Admin.Secret)}
}

func (m *ActorMiddleware) Resolve() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := booking.Actor{
			DisplayName: strings.TrimSpace(c.GetHeader(actorNameHeader)),
			IsAdmin:     m.verifier.Verify(c.GetHeader(adminSecretHeader)),
		}
		c.Set(actorContextKey, actor)
		c.Next()
	}
}

// RequireAdmin guards the admin surface. The command layer rechecks IsAdmin
// anyway; this only gives a clean 403 before any work happens.
func (m *ActorMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if actor := GetActor(c); !actor.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Admin access required",
			})
			return
		}
		c.Next()
	}
}

func GetActor(c *gin.Context) booking.Actor {
	if v, exists := c.Get(actorContextKey); exists {
		if actor, ok := v.(booking.Actor); ok {
			return actor
		}
	}
	return booking.Actor{}
}
