package genai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drishti-ops/drishti/internal/domain"
	"github.com/drishti-ops/drishti/internal/gateway"
)

const testFrame = "data:image/jpeg;base64,dGVzdC1mcmFtZQ=="

func newTestProvider(t *testing.T, handler http.HandlerFunc) *Provider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewProvider(Config{
		BaseURL:    srv.URL,
		Timeout:    2 * time.Second,
		RetryCount: 0,
	})
}

func TestDetectAnomalies_Success(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/flows/detect-anomalies", r.URL.Path)

		var req detectAnomaliesRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, testFrame, req.VideoFeedDataURI)
		require.NotNil(t, req.Location)
		assert.Equal(t, 12.9, req.Location.Latitude)

		_ = json.NewEncoder(w).Encode(detectAnomaliesResponse{
			AnomalyDetected:     true,
			AnomalyType:         "panic_run",
			RiskLevel:           "High",
			RecommendedResponse: "Dispatch security",
			Description:         "Group running toward the exit",
		})
	})

	result, err := p.DetectAnomalies(context.Background(), gateway.DetectAnomaliesRequest{
		VideoFeedDataURI: testFrame,
		Location:         &domain.Location{Latitude: 12.9, Longitude: 77.6},
	})
	require.NoError(t, err)

	assert.True(t, result.AnomalyDetected)
	assert.Equal(t, domain.AnomalyPanicRun, result.AnomalyType)
	assert.Equal(t, domain.RiskHigh, result.RiskLevel)
}

func TestDetectAnomalies_UnknownAnomalyType(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(detectAnomaliesResponse{
			AnomalyDetected: true,
			AnomalyType:     "teleporting",
			RiskLevel:       "High",
		})
	})

	_, err := p.DetectAnomalies(context.Background(), gateway.DetectAnomaliesRequest{VideoFeedDataURI: testFrame})
	require.Error(t, err)

	var appErr *domain.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "GATEWAY_ERROR", appErr.Code)
}

func TestDetectAnomalies_InvalidDataURI(t *testing.T) {
	p := NewProvider(Config{BaseURL: "http://unused"})

	_, err := p.DetectAnomalies(context.Background(), gateway.DetectAnomaliesRequest{VideoFeedDataURI: "not-a-data-uri"})
	assert.ErrorIs(t, err, domain.ErrInvalidImage)
}

func TestMatchFaces_ConfidenceOutOfRange(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(matchFacesResponse{
			MatchFound:      true,
			Zone:            "Zone B",
			ConfidenceScore: 1.7,
		})
	})

	_, err := p.MatchFaces(context.Background(), gateway.MatchFacesRequest{
		MissingPersonPhotoDataURI: testFrame,
		CCTVFootageDataURI:        testFrame,
	})
	require.Error(t, err)

	var appErr *domain.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "GATEWAY_ERROR", appErr.Code)
}

func TestClient_RetriesTransientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_ = json.NewEncoder(w).Encode(answerQuestionResponse{Answer: "ok"})
	}))
	defer srv.Close()

	p := NewProvider(Config{BaseURL: srv.URL, Timeout: 5 * time.Second, RetryCount: 2})

	answer, err := p.AnswerQuestion(context.Background(), "is everything fine?")
	require.NoError(t, err)
	assert.Equal(t, "ok", answer)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	p := NewProvider(Config{BaseURL: srv.URL, Timeout: 5 * time.Second, RetryCount: 3})

	_, err := p.AnswerQuestion(context.Background(), "hello")
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestAnalyzeCrowdDensity_ValidatesDensityEnum(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(crowdDensityResponse{
			DensityAnalysis: []zoneDensity{{Zone: "Zone A", Density: "Extreme"}},
			HeatmapDataURI:  testFrame,
		})
	})

	_, err := p.AnalyzeCrowdDensity(context.Background(), gateway.CrowdDensityRequest{PhotoDataURI: testFrame})
	require.Error(t, err)
}

func TestCalculateBackoff(t *testing.T) {
	assert.Equal(t, 500*time.Millisecond, calculateBackoff(0))
	assert.Equal(t, time.Second, calculateBackoff(1))
	assert.Equal(t, 2*time.Second, calculateBackoff(2))
	assert.LessOrEqual(t, calculateBackoff(20), maxBackoff)
}
