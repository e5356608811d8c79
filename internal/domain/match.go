package domain

// MatchOutcome is the terminal result of a face-match sweep.
type MatchOutcome struct {
	MatchFound      bool    `json:"match_found"`
	Zone            string  `json:"zone"`
	ConfidenceScore float64 `json:"confidence_score"`
}

// NoMatch is the exhaustion outcome after all zones were scanned without a
// qualifying match.
func NoMatch() MatchOutcome {
	return MatchOutcome{MatchFound: false, Zone: "Unknown", ConfidenceScore: 0}
}
