package handler

import (
	"github.com/gofiber/fiber/v2"
)

// CameraProbe reports whether the frame source is reachable.
type CameraProbe interface {
	Available() bool
}

type HealthHandler struct {
	cameras CameraProbe
}

func NewHealthHandler(cameras CameraProbe) *HealthHandler {
	return &HealthHandler{cameras: cameras}
}

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status:  "ok",
		Version: "0.1.0",
	})
}

func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	if h.cameras != nil && !h.cameras.Available() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(HealthResponse{
			Status: "cameras unavailable",
		})
	}
	return c.JSON(HealthResponse{
		Status: "ready",
	})
}
