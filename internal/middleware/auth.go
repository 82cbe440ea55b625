package middleware

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/influencer-hub/backend/internal/rbac"
	"github.com/influencer-hub/backend/internal/services"
	"go.uber.org/zap"
)

const (
	CtxActor        = "actor"
	CtxSessionToken = "session_token"
)

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*services.Actor, error)
}

// SessionMiddleware resolves the session cookie into an actor. With required
// set, requests without a valid session are answered with 401; otherwise
// they continue anonymously.
func SessionMiddleware(authn Authenticator, cookieName string, required bool, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(cookieName)
		if token == "" {
			if required {
				return unauthorized(c)
			}
			return c.Next()
		}

		actor, err := authn.Authenticate(c.UserContext(), token)
		if err != nil {
			if !errors.Is(err, services.ErrUnauthorized) {
				log.Error("session lookup failed", zap.Error(err))
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
			}
			if required {
				return unauthorized(c)
			}
			return c.Next()
		}

		c.Locals(CtxActor, actor)
		c.Locals(CtxSessionToken, token)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": services.MsgNotAuthenticated})
}

// GetActor returns nil for anonymous requests.
func GetActor(c *fiber.Ctx) *services.Actor {
	actor, _ := c.Locals(CtxActor).(*services.Actor)
	return actor
}

func GetSessionToken(c *fiber.Ctx) string {
	token, _ := c.Locals(CtxSessionToken).(string)
	return token
}

// RequirePermission must run after a required SessionMiddleware.
func RequirePermission(perm string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := GetActor(c)
		if actor == nil {
			return unauthorized(c)
		}
		if !rbac.Allowed(actor.Role, actor.Admin, perm) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "insufficient permissions"})
		}
		return c.Next()
	}
}
