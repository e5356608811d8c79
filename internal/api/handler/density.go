package handler

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/drishti-ops/drishti/internal/domain"
	"github.com/drishti-ops/drishti/internal/gateway"
)

// DensityService analyzes crowd density from still images.
type DensityService interface {
	AnalyzeDensity(ctx context.Context, photoDataURI string, loc *domain.Location) (*gateway.CrowdDensityResult, error)
}

// DensityHandler handles crowd-density analysis requests
type DensityHandler struct {
	service DensityService
	logger  *slog.Logger
}

// NewDensityHandler creates a new DensityHandler instance
func NewDensityHandler(service DensityService, logger *slog.Logger) *DensityHandler {
	return &DensityHandler{
		service: service,
		logger:  logger,
	}
}

// DensityRequest carries the uploaded still and optional observer position.
type DensityRequest struct {
	PhotoDataURI string           `json:"photo_data_uri"`
	Location     *domain.Location `json:"location"`
}

// Analyze POST /v1/analysis/density - per-zone density from an uploaded still
func (h *DensityHandler) Analyze(c *fiber.Ctx) error {
	var req DensityRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ErrBadRequest.WithError(err)
	}
	if strings.TrimSpace(req.PhotoDataURI) == "" {
		return domain.ErrValidationFailed.WithError(errors.New("photo_data_uri is required"))
	}

	result, err := h.service.AnalyzeDensity(c.Context(), req.PhotoDataURI, req.Location)
	if err != nil {
		return err
	}

	return c.JSON(result)
}
