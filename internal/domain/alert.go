package domain

// Severity classifies an alert for the operator.
type Severity string

const (
	SeverityNormal   Severity = "normal"
	SeverityCritical Severity = "critical"
)

// AlertAction is an optional link attached to an alert, typically a map
// location for the incident.
type AlertAction struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Alert is immutable once created. ID and Time are assigned by the
// aggregation store at insertion, never by the caller.
type Alert struct {
	ID          int64        `json:"id"`
	Time        string       `json:"time"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Severity    Severity     `json:"severity"`
	Action      *AlertAction `json:"action,omitempty"`
}

// AlertDraft is the caller-supplied part of an alert.
type AlertDraft struct {
	Title       string
	Description string
	Severity    Severity
	Action      *AlertAction
}
