package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/drishti-ops/drishti/internal/domain"
	"github.com/drishti-ops/drishti/internal/session"
)

const (
	// LocalSession is the key to retrieve the operator session from context
	LocalSession = "session"
)

// SessionValidator looks up open sessions by bearer token.
type SessionValidator interface {
	Validate(token string) (session.Session, bool)
}

// Auth creates an authentication middleware using session bearer tokens.
func Auth(sessions SessionValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractBearerToken(c)
		if token == "" {
			return domain.ErrUnauthorized
		}

		s, ok := sessions.Validate(token)
		if !ok {
			return domain.ErrUnauthorized
		}

		c.Locals(LocalSession, s)
		return c.Next()
	}
}

// extractBearerToken extracts token from Authorization header
func extractBearerToken(c *fiber.Ctx) string {
	auth := c.Get("Authorization")
	if auth == "" {
		return ""
	}

	// Expected format: "Bearer <token>"
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

// GetSession retrieves the operator session from Fiber context
func GetSession(c *fiber.Ctx) (session.Session, error) {
	s, ok := c.Locals(LocalSession).(session.Session)
	if !ok {
		return session.Session{}, domain.ErrUnauthorized
	}
	return s, nil
}
