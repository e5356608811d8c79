package handler

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/drishti-ops/drishti/internal/domain"
	"github.com/drishti-ops/drishti/internal/gateway"
)

// ScanService runs the zone anomaly scans.
type ScanService interface {
	ScanZone(ctx context.Context, zone int, loc *domain.Location) (*domain.AnomalyResult, error)
	AnalyzeZoneDensity(ctx context.Context, zone int, loc *domain.Location) (*gateway.CrowdDensityResult, error)
}

// ScanHandler handles zone scan requests
type ScanHandler struct {
	service ScanService
	logger  *slog.Logger
}

// NewScanHandler creates a new ScanHandler instance
func NewScanHandler(service ScanService, logger *slog.Logger) *ScanHandler {
	return &ScanHandler{
		service: service,
		logger:  logger,
	}
}

// LocationBody is the optional observer position sent with scan requests.
type LocationBody struct {
	Location *domain.Location `json:"location"`
}

// ScanResponse is the outcome of a single-zone anomaly scan.
type ScanResponse struct {
	AnomalyDetected     bool   `json:"anomaly_detected"`
	AnomalyType         string `json:"anomaly_type"`
	RiskLevel           string `json:"risk_level"`
	RecommendedResponse string `json:"recommended_response,omitempty"`
	Description         string `json:"description"`
}

// Scan POST /v1/zones/:index/scan - run an anomaly scan on one zone
func (h *ScanHandler) Scan(c *fiber.Ctx) error {
	zone, err := zoneIndex(c)
	if err != nil {
		return err
	}

	var body LocationBody
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&body); err != nil {
			return domain.ErrBadRequest.WithError(err)
		}
	}

	result, err := h.service.ScanZone(c.Context(), zone, body.Location)
	if err != nil {
		return err
	}

	return c.JSON(ScanResponse{
		AnomalyDetected:     result.AnomalyDetected,
		AnomalyType:         string(result.AnomalyType),
		RiskLevel:           string(result.RiskLevel),
		RecommendedResponse: result.RecommendedResponse,
		Description:         result.Description,
	})
}

// Density POST /v1/zones/:index/density - density analysis of one zone's feed
func (h *ScanHandler) Density(c *fiber.Ctx) error {
	zone, err := zoneIndex(c)
	if err != nil {
		return err
	}

	var body LocationBody
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&body); err != nil {
			return domain.ErrBadRequest.WithError(err)
		}
	}

	result, err := h.service.AnalyzeZoneDensity(c.Context(), zone, body.Location)
	if err != nil {
		return err
	}

	return c.JSON(result)
}

func zoneIndex(c *fiber.Ctx) (int, error) {
	zone, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return 0, domain.ErrValidationFailed.WithError(err)
	}
	return zone, nil
}
