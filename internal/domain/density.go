package domain

// DensityLevel is the ordinal crowd density reported per zone.
type DensityLevel int

const (
	DensityLow    DensityLevel = 1
	DensityMedium DensityLevel = 2
	DensityHigh   DensityLevel = 3
)

// ParseDensityLevel maps the gateway's density label to its ordinal value.
func ParseDensityLevel(s string) (DensityLevel, bool) {
	switch s {
	case "Low":
		return DensityLow, true
	case "Medium":
		return DensityMedium, true
	case "High":
		return DensityHigh, true
	}
	return 0, false
}

func (d DensityLevel) String() string {
	switch d {
	case DensityLow:
		return "Low"
	case DensityMedium:
		return "Medium"
	case DensityHigh:
		return "High"
	}
	return "Unknown"
}

// DensityReading is one row of the trend chart: a timestamped mapping from
// zone name to density level.
type DensityReading struct {
	Time   string                  `json:"time"`
	Levels map[string]DensityLevel `json:"levels"`
}
