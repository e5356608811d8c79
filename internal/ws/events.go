package ws

import (
	"time"
)

type EventType string

const (
	EventZoneStatus      EventType = "zone.status"
	EventAlertCreated    EventType = "alert.created"
	EventDensityAppended EventType = "density.appended"
	EventAlarmState      EventType = "alarm.state"
)

type Event struct {
	Type      EventType   `json:"type"`
	Data      interface{} `json:"data"`
	Timestamp time.Time   `json:"timestamp"`
}
