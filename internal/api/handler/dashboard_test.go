package handler

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drishti-ops/drishti/internal/api/middleware"
	"github.com/drishti-ops/drishti/internal/domain"
	"github.com/drishti-ops/drishti/internal/store"
)

func newDashboardApp(st *store.Store) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler(testLogger())})
	h := NewDashboardHandler(st, testLogger())
	app.Get("/v1/zones", h.Zones)
	app.Get("/v1/alerts", h.Alerts)
	app.Get("/v1/density/history", h.DensityHistory)
	return app
}

func TestZones_NeutralStatuses(t *testing.T) {
	st := store.New([]string{"Zone A", "Zone B"}, 50, 20)
	app := newDashboardApp(st)

	resp, err := app.Test(httptest.NewRequest("GET", "/v1/zones", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got ZonesResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got.Zones, 2)
	assert.Equal(t, "Zone A", got.Zones[0].Zone)
	assert.Equal(t, domain.ZoneMonitoring, got.Zones[0].State)
}

func TestAlerts_EmptyLogIsAnArray(t *testing.T) {
	st := store.New([]string{"Zone A"}, 50, 20)
	app := newDashboardApp(st)

	resp, err := app.Test(httptest.NewRequest("GET", "/v1/alerts", nil))
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	assert.JSONEq(t, "[]", string(raw["alerts"]))
}

func TestAlerts_NewestFirst(t *testing.T) {
	st := store.New([]string{"Zone A"}, 50, 20)
	st.AppendAlert(domain.AlertDraft{Title: "first", Severity: domain.SeverityNormal})
	st.AppendAlert(domain.AlertDraft{Title: "second", Severity: domain.SeverityCritical})

	app := newDashboardApp(st)
	resp, err := app.Test(httptest.NewRequest("GET", "/v1/alerts", nil))
	require.NoError(t, err)

	var got AlertsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got.Alerts, 2)
	assert.Equal(t, "second", got.Alerts[0].Title)
	assert.Equal(t, "first", got.Alerts[1].Title)
}

func TestDensityHistory(t *testing.T) {
	st := store.New([]string{"Zone A"}, 50, 20)
	st.AppendDensity(map[string]domain.DensityLevel{"Zone A": domain.DensityHigh})

	app := newDashboardApp(st)
	resp, err := app.Test(httptest.NewRequest("GET", "/v1/density/history", nil))
	require.NoError(t, err)

	var got DensityHistoryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got.History, 1)
	assert.Equal(t, domain.DensityHigh, got.History[0].Levels["Zone A"])
}
