package handler

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/drishti-ops/drishti/internal/domain"
)

// SearchService sweeps the camera zones for a missing person.
type SearchService interface {
	FindPerson(ctx context.Context, referencePhotoDataURI string) (*domain.MatchOutcome, error)
}

// SearchHandler handles face-match sweep requests
type SearchHandler struct {
	service SearchService
	logger  *slog.Logger
}

// NewSearchHandler creates a new SearchHandler instance
func NewSearchHandler(service SearchService, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{
		service: service,
		logger:  logger,
	}
}

// SearchRequest carries the reference photo for a sweep.
type SearchRequest struct {
	PhotoDataURI string `json:"photo_data_uri"`
}

// SearchResponse is the sweep outcome.
type SearchResponse struct {
	MatchFound      bool    `json:"match_found"`
	Zone            string  `json:"zone"`
	ConfidenceScore float64 `json:"confidence_score"`
}

// Find POST /v1/search/face - sequential face-match sweep over all zones
func (h *SearchHandler) Find(c *fiber.Ctx) error {
	var req SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ErrBadRequest.WithError(err)
	}
	if strings.TrimSpace(req.PhotoDataURI) == "" {
		return domain.ErrValidationFailed.WithError(errors.New("photo_data_uri is required"))
	}

	outcome, err := h.service.FindPerson(c.Context(), req.PhotoDataURI)
	if err != nil {
		return err
	}

	return c.JSON(SearchResponse{
		MatchFound:      outcome.MatchFound,
		Zone:            outcome.Zone,
		ConfidenceScore: outcome.ConfidenceScore,
	})
}
