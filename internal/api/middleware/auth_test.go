package middleware

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drishti-ops/drishti/internal/session"
)

func newAuthApp(sessions SessionValidator) *fiber.App {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(logger)})
	app.Get("/protected", Auth(sessions), func(c *fiber.Ctx) error {
		s, err := GetSession(c)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"username": s.Username})
	})
	return app
}

func TestAuth_ValidToken(t *testing.T) {
	sessions := session.NewManager(slog.New(slog.NewTextHandler(io.Discard, nil)))
	s, err := sessions.Login("operator", "pass")
	require.NoError(t, err)

	app := newAuthApp(sessions)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+s.Token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuth_MissingHeader(t *testing.T) {
	sessions := session.NewManager(slog.New(slog.NewTextHandler(io.Discard, nil)))
	app := newAuthApp(sessions)

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuth_UnknownToken(t *testing.T) {
	sessions := session.NewManager(slog.New(slog.NewTextHandler(io.Discard, nil)))
	app := newAuthApp(sessions)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-session")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuth_MalformedHeader(t *testing.T) {
	sessions := session.NewManager(slog.New(slog.NewTextHandler(io.Discard, nil)))
	app := newAuthApp(sessions)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Token abc")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
