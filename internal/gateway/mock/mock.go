package mock

import (
	"context"
	"crypto/sha256"

	"github.com/drishti-ops/drishti/internal/domain"
	"github.com/drishti-ops/drishti/internal/gateway"
)

// Provider implements gateway.Gateway for development and tests. Results are
// deterministic functions of the submitted payload so the dashboard behaves
// consistently without a live inference service.
type Provider struct{}

// New creates a mock Provider.
func New() *Provider {
	return &Provider{}
}

func (p *Provider) DetectAnomalies(ctx context.Context, req gateway.DetectAnomaliesRequest) (*domain.AnomalyResult, error) {
	if !gateway.ValidDataURI(req.VideoFeedDataURI) {
		return nil, domain.ErrInvalidImage
	}

	// Most frames are uneventful; one in eight hashes reports an anomaly.
	h := sha256.Sum256([]byte(req.VideoFeedDataURI))
	if h[0]%8 != 0 {
		return &domain.AnomalyResult{
			AnomalyDetected: false,
			AnomalyType:     domain.AnomalyNormalWalk,
			RiskLevel:       domain.RiskNone,
			Description:     "People moving normally through the zone.",
		}, nil
	}

	anomalies := []struct {
		t domain.AnomalyType
		r domain.RiskLevel
	}{
		{domain.AnomalyLoitering, domain.RiskLow},
		{domain.AnomalyCrowdGathering, domain.RiskMedium},
		{domain.AnomalyPanicRun, domain.RiskHigh},
		{domain.AnomalyFallDetected, domain.RiskHigh},
	}
	pick := anomalies[int(h[1])%len(anomalies)]

	return &domain.AnomalyResult{
		AnomalyDetected:     true,
		AnomalyType:         pick.t,
		RiskLevel:           pick.r,
		RecommendedResponse: "Dispatch nearby staff to assess the situation.",
		Description:         "Simulated anomaly for development.",
	}, nil
}

func (p *Provider) AnalyzeCrowdDensity(ctx context.Context, req gateway.CrowdDensityRequest) (*gateway.CrowdDensityResult, error) {
	if !gateway.ValidDataURI(req.PhotoDataURI) {
		return nil, domain.ErrInvalidImage
	}

	h := sha256.Sum256([]byte(req.PhotoDataURI))
	levels := []string{"Low", "Medium", "High"}
	zones := []string{"Zone A", "Zone B", "Zone C", "Zone D"}

	result := &gateway.CrowdDensityResult{
		OverallAssessment: "Simulated crowd assessment for development.",
		HeatmapDataURI:    req.PhotoDataURI,
	}
	for i, zone := range zones {
		level := levels[int(h[i+2])%len(levels)]
		result.DensityAnalysis = append(result.DensityAnalysis, gateway.ZoneDensity{
			Zone:           zone,
			Density:        level,
			BottleneckRisk: level == "High",
		})
	}
	return result, nil
}

func (p *Provider) MatchFaces(ctx context.Context, req gateway.MatchFacesRequest) (*domain.MatchOutcome, error) {
	if !gateway.ValidDataURI(req.MissingPersonPhotoDataURI) || !gateway.ValidDataURI(req.CCTVFootageDataURI) {
		return nil, domain.ErrInvalidImage
	}

	// A match requires the reference photo to appear inside the footage
	// payload, which dev tooling can arrange deliberately.
	if req.MissingPersonPhotoDataURI == req.CCTVFootageDataURI {
		return &domain.MatchOutcome{MatchFound: true, Zone: "", ConfidenceScore: 0.92}, nil
	}
	return &domain.MatchOutcome{MatchFound: false, Zone: "Unknown", ConfidenceScore: 0.1}, nil
}

func (p *Provider) AnswerQuestion(ctx context.Context, question string) (string, error) {
	return "This is a simulated answer. Connect a live inference service for real guidance.", nil
}

func (p *Provider) SummarizeSafetyRisks(ctx context.Context, req gateway.SafetySummaryRequest) (string, error) {
	return "Simulated summary for " + req.Zone + ": no elevated risks identified.", nil
}

var _ gateway.Gateway = (*Provider)(nil)
