package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/intervue/platform-api/internal/apperror"
	"github.com/intervue/platform-api/internal/metrics"
	"github.com/intervue/platform-api/internal/model"
	"github.com/intervue/platform-api/internal/service"
)

const actorLocal = "actor"

// Actor is the authenticated identity attached to a request. A guest is the
// absence of an Actor in the context, never a synthetic record.
type Actor struct {
	ID             uuid.UUID
	FullName       string
	Email          string
	Role           model.Role
	OrganizationID *uuid.UUID
}

// ActorFromCtx returns the request's actor. The boolean is false for guests;
// every consumer must branch on it.
func ActorFromCtx(c *fiber.Ctx) (Actor, bool) {
	actor, ok := c.Locals(actorLocal).(Actor)
	return actor, ok
}

// UserLoader loads the profile behind a session.
type UserLoader interface {
	FindByID(ctx context.Context, id string) (*model.User, error)
}

// Sessions resolves the bearer token before any handler runs. Resolution is
// synchronous: a handler either sees a fully loaded actor or no actor at all.
// Tokens that do not resolve leave the request a guest; the role gate decides
// what that means per route.
func Sessions(store *service.SessionStore, users UserLoader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return c.Next()
		}

		userID, err := store.Resolve(c.UserContext(), token)
		if errors.Is(err, service.ErrSessionNotFound) {
			return c.Next()
		}
		if err != nil {
			return apperror.RemoteUnavailable("session store", err)
		}

		user, err := users.FindByID(c.UserContext(), userID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Next()
		}
		if err != nil {
			return apperror.RemoteUnavailable("user store", err)
		}

		// Single canonicalization point for role claims. A row carrying a
		// role outside the closed set stays a guest.
		role, ok := model.CanonicalRole(string(user.Role))
		if !ok {
			return c.Next()
		}

		c.Locals(actorLocal, Actor{
			ID:             user.ID,
			FullName:       user.FullName,
			Email:          user.Email,
			Role:           role,
			OrganizationID: user.OrganizationID,
		})
		c.Locals("session_token", token)
		return c.Next()
	}
}

// RequireRoles gates a route tree. An empty set admits any authenticated
// actor. Evaluated on every request; nothing is cached past a role or
// session change.
func RequireRoles(roles ...model.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := ActorFromCtx(c)
		if !ok {
			metrics.AccessDenied.WithLabelValues("unauthenticated").Inc()
			return apperror.AuthenticationRequired(c.OriginalURL())
		}
		if !actor.Role.Member(roles) {
			metrics.AccessDenied.WithLabelValues("forbidden").Inc()
			return apperror.AuthorizationDenied(string(actor.Role))
		}
		return c.Next()
	}
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
