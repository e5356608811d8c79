// Package orchestrator drives the zone-scan and face-match flows: capture a
// frame, submit it to the analysis gateway, classify the result and update
// the aggregation store, escalating when the criticality bar is crossed.
package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/drishti-ops/drishti/internal/camera"
	"github.com/drishti-ops/drishti/internal/domain"
	"github.com/drishti-ops/drishti/internal/escalation"
	"github.com/drishti-ops/drishti/internal/gateway"
	"github.com/drishti-ops/drishti/internal/metrics"
	"github.com/drishti-ops/drishti/internal/store"
)

// Orchestrator coordinates scans across the fixed zone set. Independent
// single-zone scans may run concurrently; each mutates only its own status
// slot. Face-match sweeps are strictly sequential.
type Orchestrator struct {
	store     *store.Store
	gw        gateway.Gateway
	frames    camera.FrameSource
	escalator *escalation.Escalator
	metrics   *metrics.Metrics
	logger    *slog.Logger

	matchThreshold float64
	gatewayTimeout time.Duration
}

// Options carries the tunables for New.
type Options struct {
	MatchThreshold float64
	GatewayTimeout time.Duration
}

// New creates an Orchestrator.
func New(
	st *store.Store,
	gw gateway.Gateway,
	frames camera.FrameSource,
	escalator *escalation.Escalator,
	m *metrics.Metrics,
	logger *slog.Logger,
	opts Options,
) *Orchestrator {
	if opts.MatchThreshold == 0 {
		opts.MatchThreshold = 0.7
	}
	if opts.GatewayTimeout == 0 {
		opts.GatewayTimeout = 30 * time.Second
	}
	return &Orchestrator{
		store:          st,
		gw:             gw,
		frames:         frames,
		escalator:      escalator,
		metrics:        m,
		logger:         logger,
		matchThreshold: opts.MatchThreshold,
		gatewayTimeout: opts.GatewayTimeout,
	}
}

// ScanZone runs a single-zone anomaly scan. The zone is marked scanning
// before the gateway call goes out; on any failure it reverts to the neutral
// monitoring state and no alert is created.
func (o *Orchestrator) ScanZone(ctx context.Context, zone int, loc *domain.Location) (*domain.AnomalyResult, error) {
	zoneName := o.store.ZoneName(zone)
	if zoneName == "" {
		return nil, domain.ErrZoneNotFound
	}
	if !o.frames.Ready(zone) {
		o.metrics.ScansTotal.WithLabelValues(zoneName, "camera_not_ready").Inc()
		return nil, domain.ErrCameraNotReady
	}

	o.store.SetZoneScanning(zone)

	frame, err := o.frames.Capture(ctx, zone)
	if err != nil {
		o.store.ResetZone(zone)
		o.metrics.ScansTotal.WithLabelValues(zoneName, "capture_failed").Inc()
		return nil, err
	}

	callCtx, cancel := context.WithTimeout(ctx, o.gatewayTimeout)
	defer cancel()

	start := time.Now()
	result, err := o.gw.DetectAnomalies(callCtx, gateway.DetectAnomaliesRequest{
		VideoFeedDataURI: frame,
		Location:         loc,
	})
	o.metrics.ObserveGateway("detect_anomalies", time.Since(start))
	if err != nil {
		o.store.ResetZone(zone)
		o.metrics.ScansTotal.WithLabelValues(zoneName, "gateway_error").Inc()
		o.logger.Error("anomaly scan failed",
			slog.String("zone", zoneName),
			slog.Any("error", err),
		)
		return nil, err
	}

	o.store.SetZoneResult(zone, *result)
	o.metrics.ScansTotal.WithLabelValues(zoneName, "ok").Inc()

	if result.AnomalyDetected && result.AnomalyType != domain.AnomalyNormalWalk {
		o.escalate(ctx, zoneName, result, loc)
	}
	return result, nil
}

// escalate raises the alarm/call side effect and appends the alert for a
// confirmed anomaly.
func (o *Orchestrator) escalate(ctx context.Context, zoneName string, result *domain.AnomalyResult, loc *domain.Location) {
	o.escalator.Trigger(ctx, fmt.Sprintf("%s: %s", zoneName, result.AnomalyType))
	o.metrics.AlarmActive.Set(1)

	severity := domain.SeverityNormal
	if result.AnomalyType.Critical() {
		severity = domain.SeverityCritical
	}

	var action *domain.AlertAction
	if loc != nil {
		action = &domain.AlertAction{Label: "View on Map", URL: loc.MapURL()}
	}

	o.store.AppendAlert(domain.AlertDraft{
		Title:       fmt.Sprintf("%s: %s", zoneName, result.AnomalyType),
		Description: result.Description,
		Severity:    severity,
		Action:      action,
	})
}

// FindPerson sweeps all zones in order looking for the person in the
// reference photo, stopping at the first match at or above the confidence
// threshold. A zone whose frame cannot be captured or whose analysis fails
// is skipped; the sweep continues with the remaining zones.
func (o *Orchestrator) FindPerson(ctx context.Context, referencePhotoDataURI string) (*domain.MatchOutcome, error) {
	if !o.frames.Available() {
		return nil, domain.ErrCameraUnavailable
	}
	if !gateway.ValidDataURI(referencePhotoDataURI) {
		return nil, domain.ErrInvalidImage
	}

	for i := 0; i < o.store.ZoneCount(); i++ {
		zoneName := o.store.ZoneName(i)

		frame, err := o.frames.Capture(ctx, i)
		if err != nil {
			o.logger.Warn("skipping zone, frame not captured",
				slog.String("zone", zoneName),
				slog.Any("error", err),
			)
			continue
		}

		callCtx, cancel := context.WithTimeout(ctx, o.gatewayTimeout)
		start := time.Now()
		outcome, err := o.gw.MatchFaces(callCtx, gateway.MatchFacesRequest{
			MissingPersonPhotoDataURI: referencePhotoDataURI,
			CCTVFootageDataURI:        frame,
		})
		cancel()
		o.metrics.ObserveGateway("match_faces", time.Since(start))
		o.metrics.SweepZoneCalls.Inc()
		if err != nil {
			o.logger.Error("face match failed for zone",
				slog.String("zone", zoneName),
				slog.Any("error", err),
			)
			continue
		}

		if outcome.MatchFound && outcome.ConfidenceScore >= o.matchThreshold {
			if outcome.Zone == "" {
				outcome.Zone = zoneName
			}

			percent := int(math.Round(outcome.ConfidenceScore * 100))
			o.store.AppendAlert(domain.AlertDraft{
				Title: "Potential Missing Person Match",
				Description: fmt.Sprintf(
					"A person matching the description was found in %s with %d%% confidence.",
					outcome.Zone, percent,
				),
				Severity: domain.SeverityCritical,
			})
			return outcome, nil
		}
	}

	outcome := domain.NoMatch()
	return &outcome, nil
}

// AnalyzeDensity submits a still image for crowd-density analysis and
// appends one row to the density trend window.
func (o *Orchestrator) AnalyzeDensity(ctx context.Context, photoDataURI string, loc *domain.Location) (*gateway.CrowdDensityResult, error) {
	if !gateway.ValidDataURI(photoDataURI) {
		return nil, domain.ErrInvalidImage
	}

	callCtx, cancel := context.WithTimeout(ctx, o.gatewayTimeout)
	defer cancel()

	start := time.Now()
	result, err := o.gw.AnalyzeCrowdDensity(callCtx, gateway.CrowdDensityRequest{
		PhotoDataURI: photoDataURI,
		Location:     loc,
	})
	o.metrics.ObserveGateway("analyze_crowd_density", time.Since(start))
	if err != nil {
		return nil, err
	}

	levels := make(map[string]domain.DensityLevel, len(result.DensityAnalysis))
	for _, zd := range result.DensityAnalysis {
		if level, ok := domain.ParseDensityLevel(zd.Density); ok {
			levels[zd.Zone] = level
		}
	}
	if len(levels) > 0 {
		o.store.AppendDensity(levels)
	}
	return result, nil
}

// AnalyzeZoneDensity captures zone's current frame and runs density
// analysis on it.
func (o *Orchestrator) AnalyzeZoneDensity(ctx context.Context, zone int, loc *domain.Location) (*gateway.CrowdDensityResult, error) {
	if o.store.ZoneName(zone) == "" {
		return nil, domain.ErrZoneNotFound
	}
	frame, err := o.frames.Capture(ctx, zone)
	if err != nil {
		return nil, err
	}
	return o.AnalyzeDensity(ctx, frame, loc)
}

// Ask forwards an operator question to the gateway's QA capability.
func (o *Orchestrator) Ask(ctx context.Context, question string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, o.gatewayTimeout)
	defer cancel()

	start := time.Now()
	answer, err := o.gw.AnswerQuestion(callCtx, question)
	o.metrics.ObserveGateway("answer_question", time.Since(start))
	return answer, err
}

// SummarizeRisks produces a safety-risk summary for one zone.
func (o *Orchestrator) SummarizeRisks(ctx context.Context, req gateway.SafetySummaryRequest) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, o.gatewayTimeout)
	defer cancel()

	start := time.Now()
	summary, err := o.gw.SummarizeSafetyRisks(callCtx, req)
	o.metrics.ObserveGateway("summarize_safety_risks", time.Since(start))
	return summary, err
}

// SilenceAlarm stops the audible alarm, closing the escalation episode.
func (o *Orchestrator) SilenceAlarm(ctx context.Context) {
	o.escalator.Silence(ctx)
	o.metrics.AlarmActive.Set(0)
}

// AlarmActive reports whether an escalation episode is open.
func (o *Orchestrator) AlarmActive() bool {
	return o.escalator.Active()
}
