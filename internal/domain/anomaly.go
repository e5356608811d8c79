package domain

// AnomalyType is the fixed action vocabulary the anomaly detector reports.
type AnomalyType string

const (
	AnomalyNormalWalk      AnomalyType = "normal_walk"
	AnomalyPanicRun        AnomalyType = "panic_run"
	AnomalyLoitering       AnomalyType = "loitering"
	AnomalyCrowdGathering  AnomalyType = "crowd_gathering"
	AnomalyFallDetected    AnomalyType = "fall_detected"
	AnomalyFight           AnomalyType = "fight"
	AnomalyReverseFlow     AnomalyType = "reverse_flow"
	AnomalyEntryBreach     AnomalyType = "entry_breach"
	AnomalyObjectAbandon   AnomalyType = "object_abandon"
	AnomalyOvercrowd       AnomalyType = "overcrowd"
	AnomalyRapidDispersion AnomalyType = "rapid_dispersion"
	AnomalyHandCoverFace   AnomalyType = "hand_cover_face"
	AnomalyCoverEyes       AnomalyType = "cover_eyes"
	AnomalyOther           AnomalyType = "other"
)

var anomalyTypes = map[AnomalyType]bool{
	AnomalyNormalWalk:      true,
	AnomalyPanicRun:        true,
	AnomalyLoitering:       true,
	AnomalyCrowdGathering:  true,
	AnomalyFallDetected:    true,
	AnomalyFight:           true,
	AnomalyReverseFlow:     true,
	AnomalyEntryBreach:     true,
	AnomalyObjectAbandon:   true,
	AnomalyOvercrowd:       true,
	AnomalyRapidDispersion: true,
	AnomalyHandCoverFace:   true,
	AnomalyCoverEyes:       true,
	AnomalyOther:           true,
}

// criticalAnomalies escalate to a critical alert severity.
var criticalAnomalies = map[AnomalyType]bool{
	AnomalyPanicRun:      true,
	AnomalyFallDetected:  true,
	AnomalyFight:         true,
	AnomalyEntryBreach:   true,
	AnomalyObjectAbandon: true,
	AnomalyOvercrowd:     true,
	AnomalyHandCoverFace: true,
}

func (a AnomalyType) Valid() bool {
	return anomalyTypes[a]
}

func (a AnomalyType) Critical() bool {
	return criticalAnomalies[a]
}

// RiskLevel qualifies a detected anomaly.
type RiskLevel string

const (
	RiskNone   RiskLevel = "None"
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

func (r RiskLevel) Valid() bool {
	switch r {
	case RiskNone, RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}

// AnomalyResult is the validated outcome of a single-zone anomaly scan.
type AnomalyResult struct {
	AnomalyDetected     bool        `json:"anomaly_detected"`
	AnomalyType         AnomalyType `json:"anomaly_type"`
	RiskLevel           RiskLevel   `json:"risk_level"`
	RecommendedResponse string      `json:"recommended_response"`
	Description         string      `json:"description"`
}
