package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/drishti-ops/drishti/internal/domain"
	"github.com/drishti-ops/drishti/internal/store"
)

// DashboardHandler serves the read side of the dashboard: zone statuses, the
// alert log and the density trend window.
type DashboardHandler struct {
	store  *store.Store
	logger *slog.Logger
}

// NewDashboardHandler creates a new DashboardHandler instance
func NewDashboardHandler(st *store.Store, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		store:  st,
		logger: logger,
	}
}

// ZonesResponse lists every zone's current status.
type ZonesResponse struct {
	Zones []domain.ZoneStatus `json:"zones"`
}

// AlertsResponse is the alert log, newest first.
type AlertsResponse struct {
	Alerts []domain.Alert `json:"alerts"`
}

// DensityHistoryResponse is the retained trend window, oldest first.
type DensityHistoryResponse struct {
	History []domain.DensityReading `json:"history"`
}

// Zones GET /v1/zones
func (h *DashboardHandler) Zones(c *fiber.Ctx) error {
	return c.JSON(ZonesResponse{Zones: h.store.ZoneStatuses()})
}

// Alerts GET /v1/alerts
func (h *DashboardHandler) Alerts(c *fiber.Ctx) error {
	alerts := h.store.Alerts()
	if alerts == nil {
		alerts = []domain.Alert{}
	}
	return c.JSON(AlertsResponse{Alerts: alerts})
}

// DensityHistory GET /v1/density/history
func (h *DashboardHandler) DensityHistory(c *fiber.Ctx) error {
	history := h.store.DensityHistory()
	if history == nil {
		history = []domain.DensityReading{}
	}
	return c.JSON(DensityHistoryResponse{History: history})
}
