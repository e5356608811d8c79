package domain

// ZoneState is the scan lifecycle state of a single zone.
type ZoneState string

const (
	ZoneMonitoring      ZoneState = "Monitoring"
	ZoneScanning        ZoneState = "Scanning"
	ZoneNormal          ZoneState = "Normal"
	ZoneAnomalyDetected ZoneState = "AnomalyDetected"
)

// ZoneStatus is the per-zone current state. One instance exists per
// configured zone for the whole session; it is mutated in place by scan
// completion and never deleted. RiskLevel is nil only while scanning.
type ZoneStatus struct {
	Zone        string     `json:"zone"`
	State       ZoneState  `json:"state"`
	RiskLevel   *RiskLevel `json:"risk_level"`
	Anomaly     string     `json:"anomaly"`
	Description string     `json:"description"`
}

// NewZoneStatus returns the neutral monitoring state a zone starts in and
// reverts to after a failed scan.
func NewZoneStatus(zone string) ZoneStatus {
	risk := RiskNone
	return ZoneStatus{
		Zone:        zone,
		State:       ZoneMonitoring,
		RiskLevel:   &risk,
		Anomaly:     "None",
		Description: "No issues detected.",
	}
}
