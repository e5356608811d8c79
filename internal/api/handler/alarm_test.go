package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drishti-ops/drishti/internal/api/middleware"
)

type fakeAlarmService struct {
	active   bool
	silenced int
}

func (f *fakeAlarmService) SilenceAlarm(ctx context.Context) {
	f.active = false
	f.silenced++
}

func (f *fakeAlarmService) AlarmActive() bool { return f.active }

type fakeBroadcaster struct {
	states []bool
}

func (f *fakeBroadcaster) BroadcastAlarmState(active bool) {
	f.states = append(f.states, active)
}

func newAlarmApp(svc AlarmService, b AlarmStateBroadcaster) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler(testLogger())})
	h := NewAlarmHandler(svc, b, testLogger())
	app.Get("/v1/alarm", h.State)
	app.Post("/v1/alarm/silence", h.Silence)
	return app
}

func TestAlarmState(t *testing.T) {
	app := newAlarmApp(&fakeAlarmService{active: true}, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/v1/alarm", nil))
	require.NoError(t, err)

	var got AlarmResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.True(t, got.Active)
}

func TestAlarmSilence_Idempotent(t *testing.T) {
	svc := &fakeAlarmService{active: true}
	b := &fakeBroadcaster{}
	app := newAlarmApp(svc, b)

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest("POST", "/v1/alarm/silence", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var got AlarmResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.False(t, got.Active)
	}

	assert.Equal(t, 2, svc.silenced)
	assert.Equal(t, []bool{false, false}, b.states)
}
