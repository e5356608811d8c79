// Package store holds the in-memory session state the dashboard renders:
// the bounded alert log, the density trend window and the per-zone statuses.
// It is the only mutable shared state in the service; every mutation goes
// through its methods and ends with an explicit observer notification.
package store

import (
	"sync"
	"time"

	"github.com/drishti-ops/drishti/internal/domain"
)

const timeLayout = "15:04:05"

// EventType identifies what changed in the store.
type EventType string

const (
	EventZoneStatus      EventType = "zone.status"
	EventAlertCreated    EventType = "alert.created"
	EventDensityAppended EventType = "density.appended"
)

// Event is delivered to listeners after a mutation commits.
type Event struct {
	Type EventType   `json:"type"`
	Data interface{} `json:"data"`
}

// Listener receives store events. Listeners must not call back into the
// store synchronously.
type Listener func(Event)

// Store is the aggregation store. Zone count and identity are fixed at
// construction for the whole session.
type Store struct {
	alertCap   int
	densityCap int

	mu          sync.RWMutex
	zones       []string
	statuses    []domain.ZoneStatus
	alerts      []domain.Alert
	density     []domain.DensityReading
	lastAlertID int64

	listenerMu sync.RWMutex
	listeners  []Listener

	now func() time.Time
}

// New creates a Store for the given zones with every status in the neutral
// monitoring state.
func New(zones []string, alertCap, densityCap int) *Store {
	statuses := make([]domain.ZoneStatus, len(zones))
	for i, z := range zones {
		statuses[i] = domain.NewZoneStatus(z)
	}
	return &Store{
		alertCap:   alertCap,
		densityCap: densityCap,
		zones:      zones,
		statuses:   statuses,
		now:        time.Now,
	}
}

// Subscribe registers a listener for store events.
func (s *Store) Subscribe(l Listener) {
	s.listenerMu.Lock()
	defer s.listenerMu.Unlock()
	s.listeners = append(s.listeners, l)
}

func (s *Store) notify(e Event) {
	s.listenerMu.RLock()
	defer s.listenerMu.RUnlock()
	for _, l := range s.listeners {
		l(e)
	}
}

// ZoneCount returns the fixed number of zones.
func (s *Store) ZoneCount() int {
	return len(s.zones)
}

// ZoneName returns the name of zone i, or "" when out of range.
func (s *Store) ZoneName(i int) string {
	if i < 0 || i >= len(s.zones) {
		return ""
	}
	return s.zones[i]
}

// ZoneNames returns a copy of the ordered zone names.
func (s *Store) ZoneNames() []string {
	out := make([]string, len(s.zones))
	copy(out, s.zones)
	return out
}

// AppendAlert assigns the alert's ID and creation time, prepends it to the
// log and evicts the oldest entry beyond capacity. The stored alert is
// returned.
func (s *Store) AppendAlert(draft domain.AlertDraft) domain.Alert {
	s.mu.Lock()

	now := s.now()
	id := now.UnixMilli()
	if id <= s.lastAlertID {
		id = s.lastAlertID + 1
	}
	s.lastAlertID = id

	alert := domain.Alert{
		ID:          id,
		Time:        now.Format(timeLayout),
		Title:       draft.Title,
		Description: draft.Description,
		Severity:    draft.Severity,
		Action:      draft.Action,
	}

	s.alerts = append([]domain.Alert{alert}, s.alerts...)
	if len(s.alerts) > s.alertCap {
		s.alerts = s.alerts[:s.alertCap]
	}
	s.mu.Unlock()

	s.notify(Event{Type: EventAlertCreated, Data: alert})
	return alert
}

// Alerts returns the alert log, newest first.
func (s *Store) Alerts() []domain.Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Alert, len(s.alerts))
	copy(out, s.alerts)
	return out
}

// AppendDensity appends one trend row and drops the oldest beyond capacity.
func (s *Store) AppendDensity(levels map[string]domain.DensityLevel) domain.DensityReading {
	s.mu.Lock()

	reading := domain.DensityReading{
		Time:   s.now().Format(timeLayout),
		Levels: levels,
	}
	s.density = append(s.density, reading)
	if len(s.density) > s.densityCap {
		s.density = s.density[len(s.density)-s.densityCap:]
	}
	s.mu.Unlock()

	s.notify(Event{Type: EventDensityAppended, Data: reading})
	return reading
}

// DensityHistory returns the retained trend rows, oldest first.
func (s *Store) DensityHistory() []domain.DensityReading {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.DensityReading, len(s.density))
	copy(out, s.density)
	return out
}

// SetZoneScanning marks zone i as scanning. RiskLevel is nil for the
// duration of the scan, which the UI renders as a call in flight.
func (s *Store) SetZoneScanning(i int) bool {
	return s.mutateZone(i, func(st *domain.ZoneStatus) {
		st.State = domain.ZoneScanning
		st.RiskLevel = nil
		st.Anomaly = "..."
		st.Description = "..."
	})
}

// SetZoneResult applies a completed scan's result to zone i.
func (s *Store) SetZoneResult(i int, result domain.AnomalyResult) bool {
	return s.mutateZone(i, func(st *domain.ZoneStatus) {
		risk := result.RiskLevel
		if result.AnomalyDetected {
			st.State = domain.ZoneAnomalyDetected
			st.Anomaly = string(result.AnomalyType)
		} else {
			st.State = domain.ZoneNormal
			st.Anomaly = "None"
			risk = domain.RiskNone
		}
		st.RiskLevel = &risk
		st.Description = result.Description
	})
}

// ResetZone reverts zone i to the neutral monitoring state, used when a scan
// fails so the zone is not stuck mid-scan.
func (s *Store) ResetZone(i int) bool {
	return s.mutateZone(i, func(st *domain.ZoneStatus) {
		*st = domain.NewZoneStatus(st.Zone)
	})
}

func (s *Store) mutateZone(i int, fn func(*domain.ZoneStatus)) bool {
	s.mu.Lock()
	if i < 0 || i >= len(s.statuses) {
		s.mu.Unlock()
		return false
	}
	fn(&s.statuses[i])
	updated := s.statuses[i]
	s.mu.Unlock()

	s.notify(Event{Type: EventZoneStatus, Data: updated})
	return true
}

// ZoneStatuses returns a copy of every zone's current status.
func (s *Store) ZoneStatuses() []domain.ZoneStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.ZoneStatus, len(s.statuses))
	copy(out, s.statuses)
	return out
}

// ZoneStatus returns zone i's current status.
func (s *Store) ZoneStatus(i int) (domain.ZoneStatus, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i < 0 || i >= len(s.statuses) {
		return domain.ZoneStatus{}, false
	}
	return s.statuses[i], true
}
