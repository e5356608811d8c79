package escalation

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDialer struct {
	calls int
	err   error
}

func (f *fakeDialer) Dial(ctx context.Context, number, reason string) error {
	f.calls++
	return f.err
}

type fakeSiren struct {
	starts int
	stops  int
	err    error
}

func (f *fakeSiren) Start(ctx context.Context) error {
	f.starts++
	return f.err
}

func (f *fakeSiren) Stop(ctx context.Context) error {
	f.stops++
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTrigger_OpensOneEpisode(t *testing.T) {
	dialer := &fakeDialer{}
	siren := &fakeSiren{}
	esc := New(dialer, siren, "112", testLogger())

	esc.Trigger(context.Background(), "fight in Zone B")
	assert.True(t, esc.Active())
	assert.Equal(t, 1, dialer.calls)
	assert.Equal(t, 1, siren.starts)

	// Re-triggering during an open episode neither re-dials nor restarts
	// the alarm.
	esc.Trigger(context.Background(), "another anomaly")
	assert.True(t, esc.Active())
	assert.Equal(t, 1, dialer.calls)
	assert.Equal(t, 1, siren.starts)
}

func TestSilence_ClosesEpisode(t *testing.T) {
	dialer := &fakeDialer{}
	siren := &fakeSiren{}
	esc := New(dialer, siren, "112", testLogger())

	esc.Trigger(context.Background(), "overcrowding")
	esc.Silence(context.Background())

	assert.False(t, esc.Active())
	assert.Equal(t, 1, siren.stops)

	// A new trigger after silencing opens a fresh episode with a new call.
	esc.Trigger(context.Background(), "panic run")
	assert.Equal(t, 2, dialer.calls)
	assert.Equal(t, 2, siren.starts)
}

func TestSilence_NoOpenEpisode(t *testing.T) {
	siren := &fakeSiren{}
	esc := New(&fakeDialer{}, siren, "112", testLogger())

	esc.Silence(context.Background())
	assert.Zero(t, siren.stops)
}

func TestTrigger_SirenFailureDoesNotBlockCall(t *testing.T) {
	dialer := &fakeDialer{}
	siren := &fakeSiren{err: errors.New("audio device busy")}
	esc := New(dialer, siren, "112", testLogger())

	esc.Trigger(context.Background(), "fall detected")

	assert.Equal(t, 1, dialer.calls)
	assert.True(t, esc.Active())
}

func TestClose_ReleasesAlarm(t *testing.T) {
	siren := &fakeSiren{}
	esc := New(&fakeDialer{}, siren, "112", testLogger())

	esc.Trigger(context.Background(), "entry breach")
	esc.Close()

	assert.False(t, esc.Active())
	assert.Equal(t, 1, siren.stops)
}

func TestWebhookDialer_PostsPayload(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer srv.Close()

	d := NewWebhookDialer(srv.URL, testLogger())
	require.NoError(t, d.Dial(context.Background(), "112", "test"))

	assert.Equal(t, "112", got["to"])
	assert.Equal(t, "test", got["reason"])
}

func TestWebhookDialer_Unconfigured(t *testing.T) {
	d := NewWebhookDialer("", testLogger())
	assert.NoError(t, d.Dial(context.Background(), "112", "test"))
}

func TestWebhookSiren_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := NewWebhookSiren(srv.URL, testLogger())
	assert.Error(t, s.Start(context.Background()))
}
