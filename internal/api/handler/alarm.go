package handler

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

// AlarmService controls the escalation alarm.
type AlarmService interface {
	SilenceAlarm(ctx context.Context)
	AlarmActive() bool
}

// AlarmStateBroadcaster pushes alarm toggles to connected consoles.
type AlarmStateBroadcaster interface {
	BroadcastAlarmState(active bool)
}

// AlarmHandler handles alarm state requests
type AlarmHandler struct {
	service     AlarmService
	broadcaster AlarmStateBroadcaster
	logger      *slog.Logger
}

// NewAlarmHandler creates a new AlarmHandler instance
func NewAlarmHandler(service AlarmService, broadcaster AlarmStateBroadcaster, logger *slog.Logger) *AlarmHandler {
	return &AlarmHandler{
		service:     service,
		broadcaster: broadcaster,
		logger:      logger,
	}
}

// AlarmResponse reports whether the alarm is sounding.
type AlarmResponse struct {
	Active bool `json:"active"`
}

// State GET /v1/alarm
func (h *AlarmHandler) State(c *fiber.Ctx) error {
	return c.JSON(AlarmResponse{Active: h.service.AlarmActive()})
}

// Silence POST /v1/alarm/silence - stop the alarm, idempotent
func (h *AlarmHandler) Silence(c *fiber.Ctx) error {
	h.service.SilenceAlarm(c.Context())
	if h.broadcaster != nil {
		h.broadcaster.BroadcastAlarmState(false)
	}
	return c.JSON(AlarmResponse{Active: h.service.AlarmActive()})
}
