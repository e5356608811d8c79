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

// AssistService answers operator questions and summarizes zone risks.
type AssistService interface {
	Ask(ctx context.Context, question string) (string, error)
	SummarizeRisks(ctx context.Context, req gateway.SafetySummaryRequest) (string, error)
}

// AssistHandler handles the AI assistant endpoints
type AssistHandler struct {
	service AssistService
	logger  *slog.Logger
}

// NewAssistHandler creates a new AssistHandler instance
func NewAssistHandler(service AssistService, logger *slog.Logger) *AssistHandler {
	return &AssistHandler{
		service: service,
		logger:  logger,
	}
}

// QuestionRequest is an operator question for the assistant.
type QuestionRequest struct {
	Question string `json:"question"`
}

// AnswerResponse is the assistant's reply.
type AnswerResponse struct {
	Answer string `json:"answer"`
}

// SummaryRequest collects the signals to condense for one zone.
type SummaryRequest struct {
	Zone              string `json:"zone"`
	SecurityAlerts    string `json:"security_alerts"`
	CrowdSensorData   string `json:"crowd_sensor_data"`
	SocialMediaTrends string `json:"social_media_trends"`
}

// SummaryResponse is the generated risk summary.
type SummaryResponse struct {
	Summary string `json:"summary"`
}

// Question POST /v1/assist/question - free-form operator question
func (h *AssistHandler) Question(c *fiber.Ctx) error {
	var req QuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ErrBadRequest.WithError(err)
	}
	if strings.TrimSpace(req.Question) == "" {
		return domain.ErrValidationFailed.WithError(errors.New("question is required"))
	}

	answer, err := h.service.Ask(c.Context(), req.Question)
	if err != nil {
		return err
	}

	return c.JSON(AnswerResponse{Answer: answer})
}

// Summary POST /v1/assist/summary - safety-risk summary for one zone
func (h *AssistHandler) Summary(c *fiber.Ctx) error {
	var req SummaryRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ErrBadRequest.WithError(err)
	}
	if strings.TrimSpace(req.Zone) == "" {
		return domain.ErrValidationFailed.WithError(errors.New("zone is required"))
	}

	summary, err := h.service.SummarizeRisks(c.Context(), gateway.SafetySummaryRequest{
		Zone:              req.Zone,
		SecurityAlerts:    req.SecurityAlerts,
		CrowdSensorData:   req.CrowdSensorData,
		SocialMediaTrends: req.SocialMediaTrends,
	})
	if err != nil {
		return err
	}

	return c.JSON(SummaryResponse{Summary: summary})
}
