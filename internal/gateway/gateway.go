package gateway

import (
	"context"

	"github.com/drishti-ops/drishti/internal/domain"
)

// Gateway is the boundary to the hosted AI inference service. Each method is
// one request/response capability; implementations validate the model output
// against the declared result shape and fail the call if it cannot be parsed.
type Gateway interface {
	// DetectAnomalies analyzes a single video frame for anomalous behavior.
	DetectAnomalies(ctx context.Context, req DetectAnomaliesRequest) (*domain.AnomalyResult, error)

	// AnalyzeCrowdDensity assesses per-zone crowd density from a still image
	// and returns a heatmap overlay.
	AnalyzeCrowdDensity(ctx context.Context, req CrowdDensityRequest) (*CrowdDensityResult, error)

	// MatchFaces compares a reference photo against a CCTV frame.
	MatchFaces(ctx context.Context, req MatchFacesRequest) (*domain.MatchOutcome, error)

	// AnswerQuestion answers an operator question about the system or event.
	AnswerQuestion(ctx context.Context, question string) (string, error)

	// SummarizeSafetyRisks condenses alerts, sensor data and social trends
	// for one zone into a short risk summary.
	SummarizeSafetyRisks(ctx context.Context, req SafetySummaryRequest) (string, error)
}

type DetectAnomaliesRequest struct {
	VideoFeedDataURI string           `json:"video_feed_data_uri"`
	Location         *domain.Location `json:"location,omitempty"`
}

type CrowdDensityRequest struct {
	PhotoDataURI string           `json:"photo_data_uri"`
	Location     *domain.Location `json:"location,omitempty"`
}

type ZoneDensity struct {
	Zone           string `json:"zone"`
	Density        string `json:"density"`
	BottleneckRisk bool   `json:"bottleneck_risk"`
}

type CrowdDensityResult struct {
	DensityAnalysis   []ZoneDensity `json:"density_analysis"`
	OverallAssessment string        `json:"overall_assessment,omitempty"`
	HeatmapDataURI    string        `json:"heatmap_data_uri"`
}

type MatchFacesRequest struct {
	MissingPersonPhotoDataURI string `json:"missing_person_photo_data_uri"`
	CCTVFootageDataURI        string `json:"cctv_footage_data_uri"`
}

type SafetySummaryRequest struct {
	Zone              string `json:"zone"`
	SecurityAlerts    string `json:"security_alerts"`
	CrowdSensorData   string `json:"crowd_sensor_data"`
	SocialMediaTrends string `json:"social_media_trends"`
}
