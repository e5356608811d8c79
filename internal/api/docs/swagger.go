package docs

import (
	"github.com/go-swagno/swagno"
	"github.com/go-swagno/swagno/components/endpoint"
	"github.com/go-swagno/swagno/components/http/response"
	"github.com/go-swagno/swagno/components/mime"
	"github.com/go-swagno/swagno/components/parameter"
)

// LoginResponse represents an opened operator session
type LoginResponse struct {
	Token    string `json:"token" example:"550e8400-e29b-41d4-a716-446655440000"`
	Username string `json:"username" example:"operator"`
}

// ScanResponse represents the outcome of a single-zone anomaly scan
type ScanResponse struct {
	AnomalyDetected     bool   `json:"anomaly_detected" example:"true"`
	AnomalyType         string `json:"anomaly_type" example:"fight"`
	RiskLevel           string `json:"risk_level" example:"High"`
	RecommendedResponse string `json:"recommended_response" example:"Dispatch security to the zone"`
	Description         string `json:"description" example:"Physical altercation near the east gate"`
}

// SearchResponse represents a face-match sweep outcome
type SearchResponse struct {
	MatchFound      bool    `json:"match_found" example:"true"`
	Zone            string  `json:"zone" example:"Zone C"`
	ConfidenceScore float64 `json:"confidence_score" example:"0.82"`
}

// ZoneDensityData represents one zone's density assessment
type ZoneDensityData struct {
	Zone           string `json:"zone" example:"Zone A"`
	Density        string `json:"density" example:"high"`
	BottleneckRisk bool   `json:"bottleneck_risk" example:"true"`
}

// DensityResponse represents a crowd-density analysis result
type DensityResponse struct {
	DensityAnalysis   []ZoneDensityData `json:"density_analysis"`
	OverallAssessment string            `json:"overall_assessment" example:"Zone A is approaching unsafe density"`
	HeatmapDataURI    string            `json:"heatmap_data_uri" example:"data:image/png;base64,..."`
}

// AnswerResponse represents an assistant answer
type AnswerResponse struct {
	Answer string `json:"answer" example:"The last critical alert was a fight in Zone B at 14:02:11."`
}

// SummaryResponse represents a zone risk summary
type SummaryResponse struct {
	Summary string `json:"summary" example:"Crowd pressure is building near the main stage."`
}

// ZoneStatusData represents one zone tile on the dashboard
type ZoneStatusData struct {
	Zone        string `json:"zone" example:"Zone A"`
	State       string `json:"state" example:"Monitoring"`
	RiskLevel   string `json:"risk_level" example:"None"`
	Anomaly     string `json:"anomaly" example:"None"`
	Description string `json:"description" example:"No issues detected."`
}

// ZonesResponse lists every zone's status
type ZonesResponse struct {
	Zones []ZoneStatusData `json:"zones"`
}

// AlertData represents one alert log entry
type AlertData struct {
	ID          int64  `json:"id" example:"1735725600000"`
	Time        string `json:"time" example:"14:02:11"`
	Title       string `json:"title" example:"Zone B: fight"`
	Description string `json:"description" example:"Physical altercation near the east gate"`
	Severity    string `json:"severity" example:"critical"`
}

// AlertsResponse is the alert log, newest first
type AlertsResponse struct {
	Alerts []AlertData `json:"alerts"`
}

// DensityReadingData represents one density trend row
type DensityReadingData struct {
	Time   string         `json:"time" example:"14:02:11"`
	Levels map[string]int `json:"levels"`
}

// DensityHistoryResponse is the retained trend window, oldest first
type DensityHistoryResponse struct {
	History []DensityReadingData `json:"history"`
}

// AlarmResponse reports the alarm state
type AlarmResponse struct {
	Active bool `json:"active" example:"true"`
}

// HealthResponse represents service health
type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Version string `json:"version,omitempty" example:"0.1.0"`
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Code    string `json:"code" example:"VALIDATION_FAILED"`
	Message string `json:"message" example:"Request validation failed"`
}

// EmptyResponse represents no content response (204)
type EmptyResponse struct{}

func NewSwagger() *swagno.Swagger {
	sw := swagno.New(swagno.Config{
		Title:       "Drishti Event AI API",
		Version:     "v1.0.0",
		Description: "Security-operations dashboard core: zone anomaly scans, missing-person face sweeps, crowd-density analysis and escalation",
		Host:        "localhost:3000",
		Path:        "/v1",
	})

	endpoints := []*endpoint.EndPoint{
		// POST /v1/session - Operator login
		endpoint.New(
			endpoint.POST,
			"/session",
			endpoint.WithTags("Session"),
			endpoint.WithSummary("Open an operator session"),
			endpoint.WithDescription("Accepts any non-empty credentials and returns a bearer token for the dashboard API"),
			endpoint.WithConsume([]mime.MIME{mime.JSON}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(LoginResponse{}, "201", "Session opened"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "VALIDATION_FAILED", Message: "username and password are required"}, "422", "Unprocessable Entity"),
				response.New(ErrorResponse{Code: "INTERNAL_ERROR", Message: "An unexpected error occurred"}, "500", "Internal Server Error"),
			}),
		),

		// DELETE /v1/session - Operator logout
		endpoint.New(
			endpoint.DELETE,
			"/session",
			endpoint.WithTags("Session"),
			endpoint.WithSummary("Close the current operator session"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(EmptyResponse{}, "204", "Session closed"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "UNAUTHORIZED", Message: "Invalid or missing session token"}, "401", "Unauthorized"),
			}),
			endpoint.WithSecurity([]map[string][]string{{"BearerAuth": {}}}),
		),

		// GET /v1/zones - Zone statuses
		endpoint.New(
			endpoint.GET,
			"/zones",
			endpoint.WithTags("Zones"),
			endpoint.WithSummary("List every zone's current status"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(ZonesResponse{}, "200", "Statuses retrieved"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "UNAUTHORIZED", Message: "Invalid or missing session token"}, "401", "Unauthorized"),
			}),
			endpoint.WithSecurity([]map[string][]string{{"BearerAuth": {}}}),
		),

		// POST /v1/zones/:index/scan - Zone anomaly scan
		endpoint.New(
			endpoint.POST,
			"/zones/{index}/scan",
			endpoint.WithTags("Zones"),
			endpoint.WithSummary("Run an anomaly scan on one zone"),
			endpoint.WithDescription("Captures the zone's current frame, analyzes it for anomalous behavior and updates the zone status. Confirmed anomalies escalate to a call and an alarm."),
			endpoint.WithConsume([]mime.MIME{mime.JSON}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithParams(
				parameter.IntParam("index", parameter.Path, parameter.WithDescription("Zero-based zone index")),
			),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(ScanResponse{}, "200", "Scan completed"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "UNAUTHORIZED", Message: "Invalid or missing session token"}, "401", "Unauthorized"),
				response.New(ErrorResponse{Code: "ZONE_NOT_FOUND", Message: "Zone index out of range"}, "404", "Not Found"),
				response.New(ErrorResponse{Code: "CAMERA_NOT_READY", Message: "Camera has no decoded frame available yet"}, "409", "Conflict"),
				response.New(ErrorResponse{Code: "FRAME_CAPTURE_FAILED", Message: "Failed to capture a frame from the camera stream"}, "500", "Internal Server Error"),
				response.New(ErrorResponse{Code: "GATEWAY_ERROR", Message: "Analysis gateway request failed"}, "502", "Bad Gateway"),
				response.New(ErrorResponse{Code: "GATEWAY_TIMEOUT", Message: "Analysis gateway did not respond in time"}, "504", "Gateway Timeout"),
			}),
			endpoint.WithSecurity([]map[string][]string{{"BearerAuth": {}}}),
		),

		// POST /v1/zones/:index/density - Zone density analysis
		endpoint.New(
			endpoint.POST,
			"/zones/{index}/density",
			endpoint.WithTags("Zones"),
			endpoint.WithSummary("Analyze crowd density from one zone's feed"),
			endpoint.WithConsume([]mime.MIME{mime.JSON}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithParams(
				parameter.IntParam("index", parameter.Path, parameter.WithDescription("Zero-based zone index")),
			),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(DensityResponse{}, "200", "Analysis completed"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "UNAUTHORIZED", Message: "Invalid or missing session token"}, "401", "Unauthorized"),
				response.New(ErrorResponse{Code: "ZONE_NOT_FOUND", Message: "Zone index out of range"}, "404", "Not Found"),
				response.New(ErrorResponse{Code: "GATEWAY_ERROR", Message: "Analysis gateway request failed"}, "502", "Bad Gateway"),
			}),
			endpoint.WithSecurity([]map[string][]string{{"BearerAuth": {}}}),
		),

		// POST /v1/search/face - Missing-person sweep
		endpoint.New(
			endpoint.POST,
			"/search/face",
			endpoint.WithTags("Search"),
			endpoint.WithSummary("Sweep all zones for a missing person"),
			endpoint.WithDescription("Compares the reference photo against each zone's feed in order and stops at the first confident match"),
			endpoint.WithConsume([]mime.MIME{mime.JSON}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(SearchResponse{}, "200", "Sweep completed"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "UNAUTHORIZED", Message: "Invalid or missing session token"}, "401", "Unauthorized"),
				response.New(ErrorResponse{Code: "CAMERA_UNAVAILABLE", Message: "Camera access is not available"}, "409", "Conflict"),
				response.New(ErrorResponse{Code: "INVALID_IMAGE", Message: "Invalid image payload, expected a base64 data URI"}, "422", "Unprocessable Entity"),
			}),
			endpoint.WithSecurity([]map[string][]string{{"BearerAuth": {}}}),
		),

		// POST /v1/analysis/density - Density from uploaded still
		endpoint.New(
			endpoint.POST,
			"/analysis/density",
			endpoint.WithTags("Analysis"),
			endpoint.WithSummary("Analyze crowd density from an uploaded still"),
			endpoint.WithConsume([]mime.MIME{mime.JSON}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(DensityResponse{}, "200", "Analysis completed"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "UNAUTHORIZED", Message: "Invalid or missing session token"}, "401", "Unauthorized"),
				response.New(ErrorResponse{Code: "INVALID_IMAGE", Message: "Invalid image payload, expected a base64 data URI"}, "422", "Unprocessable Entity"),
				response.New(ErrorResponse{Code: "GATEWAY_ERROR", Message: "Analysis gateway request failed"}, "502", "Bad Gateway"),
			}),
			endpoint.WithSecurity([]map[string][]string{{"BearerAuth": {}}}),
		),

		// POST /v1/assist/question - Assistant Q&A
		endpoint.New(
			endpoint.POST,
			"/assist/question",
			endpoint.WithTags("Assist"),
			endpoint.WithSummary("Ask the assistant a question"),
			endpoint.WithConsume([]mime.MIME{mime.JSON}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(AnswerResponse{}, "200", "Question answered"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "UNAUTHORIZED", Message: "Invalid or missing session token"}, "401", "Unauthorized"),
				response.New(ErrorResponse{Code: "VALIDATION_FAILED", Message: "question is required"}, "422", "Unprocessable Entity"),
				response.New(ErrorResponse{Code: "GATEWAY_ERROR", Message: "Analysis gateway request failed"}, "502", "Bad Gateway"),
			}),
			endpoint.WithSecurity([]map[string][]string{{"BearerAuth": {}}}),
		),

		// POST /v1/assist/summary - Zone risk summary
		endpoint.New(
			endpoint.POST,
			"/assist/summary",
			endpoint.WithTags("Assist"),
			endpoint.WithSummary("Summarize safety risks for one zone"),
			endpoint.WithConsume([]mime.MIME{mime.JSON}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(SummaryResponse{}, "200", "Summary generated"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "UNAUTHORIZED", Message: "Invalid or missing session token"}, "401", "Unauthorized"),
				response.New(ErrorResponse{Code: "VALIDATION_FAILED", Message: "zone is required"}, "422", "Unprocessable Entity"),
				response.New(ErrorResponse{Code: "GATEWAY_ERROR", Message: "Analysis gateway request failed"}, "502", "Bad Gateway"),
			}),
			endpoint.WithSecurity([]map[string][]string{{"BearerAuth": {}}}),
		),

		// GET /v1/alerts - Alert log
		endpoint.New(
			endpoint.GET,
			"/alerts",
			endpoint.WithTags("Dashboard"),
			endpoint.WithSummary("Get the alert log, newest first"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(AlertsResponse{}, "200", "Alerts retrieved"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "UNAUTHORIZED", Message: "Invalid or missing session token"}, "401", "Unauthorized"),
			}),
			endpoint.WithSecurity([]map[string][]string{{"BearerAuth": {}}}),
		),

		// GET /v1/density/history - Density trend window
		endpoint.New(
			endpoint.GET,
			"/density/history",
			endpoint.WithTags("Dashboard"),
			endpoint.WithSummary("Get the retained density trend rows, oldest first"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(DensityHistoryResponse{}, "200", "History retrieved"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "UNAUTHORIZED", Message: "Invalid or missing session token"}, "401", "Unauthorized"),
			}),
			endpoint.WithSecurity([]map[string][]string{{"BearerAuth": {}}}),
		),

		// GET /v1/alarm - Alarm state
		endpoint.New(
			endpoint.GET,
			"/alarm",
			endpoint.WithTags("Alarm"),
			endpoint.WithSummary("Get the alarm state"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(AlarmResponse{}, "200", "State retrieved"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "UNAUTHORIZED", Message: "Invalid or missing session token"}, "401", "Unauthorized"),
			}),
			endpoint.WithSecurity([]map[string][]string{{"BearerAuth": {}}}),
		),

		// POST /v1/alarm/silence - Silence the alarm
		endpoint.New(
			endpoint.POST,
			"/alarm/silence",
			endpoint.WithTags("Alarm"),
			endpoint.WithSummary("Silence the alarm"),
			endpoint.WithDescription("Stops the audible alarm and closes the escalation episode. Idempotent."),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(AlarmResponse{}, "200", "Alarm silenced"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "UNAUTHORIZED", Message: "Invalid or missing session token"}, "401", "Unauthorized"),
			}),
			endpoint.WithSecurity([]map[string][]string{{"BearerAuth": {}}}),
		),
	}

	sw.AddEndpoints(endpoints)

	return sw
}
