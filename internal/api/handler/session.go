package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/drishti-ops/drishti/internal/api/middleware"
	"github.com/drishti-ops/drishti/internal/domain"
	"github.com/drishti-ops/drishti/internal/session"
)

// SessionService opens and closes operator sessions.
type SessionService interface {
	Login(username, password string) (session.Session, error)
	Logout(token string)
}

// SessionHandler handles operator login and logout
type SessionHandler struct {
	service SessionService
	logger  *slog.Logger
}

// NewSessionHandler creates a new SessionHandler instance
func NewSessionHandler(service SessionService, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		service: service,
		logger:  logger,
	}
}

// LoginRequest carries the operator credentials.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the opened session.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// Login POST /v1/session
func (h *SessionHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ErrBadRequest.WithError(err)
	}

	s, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(LoginResponse{
		Token:    s.Token,
		Username: s.Username,
	})
}

// Logout DELETE /v1/session
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	s, err := middleware.GetSession(c)
	if err != nil {
		return err
	}

	h.service.Logout(s.Token)
	return c.SendStatus(fiber.StatusNoContent)
}
