package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drishti-ops/drishti/internal/domain"
)

var testZones = []string{"Zone A", "Zone B", "Zone C", "Zone D"}

func newTestStore() *Store {
	return New(testZones, 50, 20)
}

func TestNew_InitialState(t *testing.T) {
	s := newTestStore()

	assert.Equal(t, 4, s.ZoneCount())
	assert.Equal(t, "Zone B", s.ZoneName(1))
	assert.Equal(t, "", s.ZoneName(9))

	statuses := s.ZoneStatuses()
	require.Len(t, statuses, 4)
	for i, st := range statuses {
		assert.Equal(t, testZones[i], st.Zone)
		assert.Equal(t, domain.ZoneMonitoring, st.State)
		require.NotNil(t, st.RiskLevel)
		assert.Equal(t, domain.RiskNone, *st.RiskLevel)
	}

	assert.Empty(t, s.Alerts())
	assert.Empty(t, s.DensityHistory())
}

func TestAppendAlert_BoundedNewestFirst(t *testing.T) {
	s := newTestStore()

	for i := 0; i < 60; i++ {
		s.AppendAlert(domain.AlertDraft{
			Title:    fmt.Sprintf("alert %d", i),
			Severity: domain.SeverityNormal,
		})
	}

	alerts := s.Alerts()
	require.Len(t, alerts, 50)

	// Newest first: the most recent append is at index 0, and the retained
	// window is the last 50 appended.
	assert.Equal(t, "alert 59", alerts[0].Title)
	assert.Equal(t, "alert 10", alerts[49].Title)
}

func TestAppendAlert_AssignsMonotonicIDs(t *testing.T) {
	s := newTestStore()
	fixed := time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	a1 := s.AppendAlert(domain.AlertDraft{Title: "first"})
	a2 := s.AppendAlert(domain.AlertDraft{Title: "second"})

	assert.Greater(t, a2.ID, a1.ID)
	assert.Equal(t, "10:30:00", a1.Time)
}

func TestAppendAlert_UnderCapacity(t *testing.T) {
	s := newTestStore()

	for i := 0; i < 7; i++ {
		s.AppendAlert(domain.AlertDraft{Title: fmt.Sprintf("alert %d", i)})
	}

	alerts := s.Alerts()
	require.Len(t, alerts, 7)
	assert.Equal(t, "alert 6", alerts[0].Title)
	assert.Equal(t, "alert 0", alerts[6].Title)
}

func TestAppendDensity_BoundedOldestFirst(t *testing.T) {
	s := newTestStore()

	for i := 0; i < 25; i++ {
		tick := time.Date(2026, 9, 1, 10, 0, i, 0, time.UTC)
		s.now = func() time.Time { return tick }
		s.AppendDensity(map[string]domain.DensityLevel{"Zone A": domain.DensityLow})
	}

	history := s.DensityHistory()
	require.Len(t, history, 20)

	// Oldest first among the retained window: rows 5..24.
	assert.Equal(t, "10:00:05", history[0].Time)
	assert.Equal(t, "10:00:24", history[19].Time)
}

func TestZoneStatusLifecycle(t *testing.T) {
	s := newTestStore()

	require.True(t, s.SetZoneScanning(1))
	st, ok := s.ZoneStatus(1)
	require.True(t, ok)
	assert.Equal(t, domain.ZoneScanning, st.State)
	assert.Nil(t, st.RiskLevel)

	require.True(t, s.SetZoneResult(1, domain.AnomalyResult{
		AnomalyDetected: true,
		AnomalyType:     domain.AnomalyFight,
		RiskLevel:       domain.RiskHigh,
		Description:     "Altercation near the gate",
	}))
	st, _ = s.ZoneStatus(1)
	assert.Equal(t, domain.ZoneAnomalyDetected, st.State)
	assert.Equal(t, "fight", st.Anomaly)
	require.NotNil(t, st.RiskLevel)
	assert.Equal(t, domain.RiskHigh, *st.RiskLevel)

	require.True(t, s.ResetZone(1))
	st, _ = s.ZoneStatus(1)
	assert.Equal(t, domain.ZoneMonitoring, st.State)
	assert.Equal(t, "None", st.Anomaly)

	// Other zones are untouched throughout.
	other, _ := s.ZoneStatus(0)
	assert.Equal(t, domain.ZoneMonitoring, other.State)
}

func TestSetZoneResult_NoAnomaly(t *testing.T) {
	s := newTestStore()

	s.SetZoneResult(2, domain.AnomalyResult{
		AnomalyDetected: false,
		AnomalyType:     domain.AnomalyNormalWalk,
		RiskLevel:       domain.RiskNone,
		Description:     "All clear",
	})

	st, _ := s.ZoneStatus(2)
	assert.Equal(t, domain.ZoneNormal, st.State)
	assert.Equal(t, "None", st.Anomaly)
	require.NotNil(t, st.RiskLevel)
	assert.Equal(t, domain.RiskNone, *st.RiskLevel)
}

func TestMutateZone_OutOfRange(t *testing.T) {
	s := newTestStore()
	assert.False(t, s.SetZoneScanning(10))
	assert.False(t, s.ResetZone(-1))
}

func TestSubscribe_NotifiesOnMutations(t *testing.T) {
	s := newTestStore()

	var events []Event
	s.Subscribe(func(e Event) { events = append(events, e) })

	s.SetZoneScanning(0)
	s.AppendAlert(domain.AlertDraft{Title: "x"})
	s.AppendDensity(map[string]domain.DensityLevel{"Zone A": domain.DensityHigh})

	require.Len(t, events, 3)
	assert.Equal(t, EventZoneStatus, events[0].Type)
	assert.Equal(t, EventAlertCreated, events[1].Type)
	assert.Equal(t, EventDensityAppended, events[2].Type)
}
