package genai

import (
	"context"
	"fmt"

	"github.com/drishti-ops/drishti/internal/domain"
	"github.com/drishti-ops/drishti/internal/gateway"
)

// Provider implements gateway.Gateway against the hosted generative-AI
// inference service. Model output is validated against the fixed result
// enumerations; anything outside them fails the call.
type Provider struct {
	client *Client
}

// NewProvider creates a Provider with the given client configuration.
func NewProvider(config Config) *Provider {
	return &Provider{client: NewClient(config)}
}

func (p *Provider) DetectAnomalies(ctx context.Context, req gateway.DetectAnomaliesRequest) (*domain.AnomalyResult, error) {
	if !gateway.ValidDataURI(req.VideoFeedDataURI) {
		return nil, domain.ErrInvalidImage
	}

	var resp detectAnomaliesResponse
	wire := detectAnomaliesRequest{
		VideoFeedDataURI: req.VideoFeedDataURI,
		Location:         toWireLocation(req.Location),
	}
	if err := p.client.doRequestWithRetry(ctx, "/v1/flows/detect-anomalies", wire, &resp); err != nil {
		return nil, wrapGatewayErr(ctx, err)
	}

	anomalyType := domain.AnomalyType(resp.AnomalyType)
	if !anomalyType.Valid() {
		return nil, domain.ErrGateway.WithError(fmt.Errorf("unknown anomaly type %q", resp.AnomalyType))
	}
	riskLevel := domain.RiskLevel(resp.RiskLevel)
	if !riskLevel.Valid() {
		return nil, domain.ErrGateway.WithError(fmt.Errorf("unknown risk level %q", resp.RiskLevel))
	}

	return &domain.AnomalyResult{
		AnomalyDetected:     resp.AnomalyDetected,
		AnomalyType:         anomalyType,
		RiskLevel:           riskLevel,
		RecommendedResponse: resp.RecommendedResponse,
		Description:         resp.Description,
	}, nil
}

func (p *Provider) AnalyzeCrowdDensity(ctx context.Context, req gateway.CrowdDensityRequest) (*gateway.CrowdDensityResult, error) {
	if !gateway.ValidDataURI(req.PhotoDataURI) {
		return nil, domain.ErrInvalidImage
	}

	var resp crowdDensityResponse
	wire := crowdDensityRequest{
		PhotoDataURI: req.PhotoDataURI,
		Location:     toWireLocation(req.Location),
	}
	if err := p.client.doRequestWithRetry(ctx, "/v1/flows/analyze-crowd-density", wire, &resp); err != nil {
		return nil, wrapGatewayErr(ctx, err)
	}

	result := &gateway.CrowdDensityResult{
		OverallAssessment: resp.OverallAssessment,
		HeatmapDataURI:    resp.HeatmapDataURI,
	}
	for _, zd := range resp.DensityAnalysis {
		if _, ok := domain.ParseDensityLevel(zd.Density); !ok {
			return nil, domain.ErrGateway.WithError(fmt.Errorf("unknown density level %q for zone %q", zd.Density, zd.Zone))
		}
		result.DensityAnalysis = append(result.DensityAnalysis, gateway.ZoneDensity{
			Zone:           zd.Zone,
			Density:        zd.Density,
			BottleneckRisk: zd.BottleneckRisk,
		})
	}
	return result, nil
}

func (p *Provider) MatchFaces(ctx context.Context, req gateway.MatchFacesRequest) (*domain.MatchOutcome, error) {
	if !gateway.ValidDataURI(req.MissingPersonPhotoDataURI) || !gateway.ValidDataURI(req.CCTVFootageDataURI) {
		return nil, domain.ErrInvalidImage
	}

	var resp matchFacesResponse
	wire := matchFacesRequest{
		MissingPersonPhotoDataURI: req.MissingPersonPhotoDataURI,
		CCTVFootageDataURI:        req.CCTVFootageDataURI,
	}
	if err := p.client.doRequestWithRetry(ctx, "/v1/flows/match-faces", wire, &resp); err != nil {
		return nil, wrapGatewayErr(ctx, err)
	}

	if resp.ConfidenceScore < 0 || resp.ConfidenceScore > 1 {
		return nil, domain.ErrGateway.WithError(fmt.Errorf("confidence score %v out of range", resp.ConfidenceScore))
	}

	return &domain.MatchOutcome{
		MatchFound:      resp.MatchFound,
		Zone:            resp.Zone,
		ConfidenceScore: resp.ConfidenceScore,
	}, nil
}

func (p *Provider) AnswerQuestion(ctx context.Context, question string) (string, error) {
	var resp answerQuestionResponse
	if err := p.client.doRequestWithRetry(ctx, "/v1/flows/answer-event-questions", answerQuestionRequest{Question: question}, &resp); err != nil {
		return "", wrapGatewayErr(ctx, err)
	}
	return resp.Answer, nil
}

func (p *Provider) SummarizeSafetyRisks(ctx context.Context, req gateway.SafetySummaryRequest) (string, error) {
	var resp safetySummaryResponse
	wire := safetySummaryRequest{
		Zone:              req.Zone,
		SecurityAlerts:    req.SecurityAlerts,
		CrowdSensorData:   req.CrowdSensorData,
		SocialMediaTrends: req.SocialMediaTrends,
	}
	if err := p.client.doRequestWithRetry(ctx, "/v1/flows/summarize-safety-risks", wire, &resp); err != nil {
		return "", wrapGatewayErr(ctx, err)
	}
	return resp.Summary, nil
}

func toWireLocation(loc *domain.Location) *location {
	if loc == nil {
		return nil
	}
	return &location{Latitude: loc.Latitude, Longitude: loc.Longitude}
}

func wrapGatewayErr(ctx context.Context, err error) error {
	if ctx.Err() == context.DeadlineExceeded {
		return domain.ErrGatewayTimeout.WithError(err)
	}
	return domain.ErrGateway.WithError(err)
}

var _ gateway.Gateway = (*Provider)(nil)
