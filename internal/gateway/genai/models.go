package genai

// Wire types for the inference service. Field names mirror the prompt-flow
// schemas the hosted model is constrained to.

type detectAnomaliesRequest struct {
	VideoFeedDataURI string    `json:"videoFeedDataUri"`
	Location         *location `json:"location,omitempty"`
}

type location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type detectAnomaliesResponse struct {
	AnomalyDetected     bool   `json:"anomalyDetected"`
	AnomalyType         string `json:"anomalyType"`
	RiskLevel           string `json:"riskLevel"`
	RecommendedResponse string `json:"recommendedResponse"`
	Description         string `json:"description"`
}

type crowdDensityRequest struct {
	PhotoDataURI string    `json:"photoDataUri"`
	Location     *location `json:"location,omitempty"`
}

type zoneDensity struct {
	Zone           string `json:"zone"`
	Density        string `json:"density"`
	BottleneckRisk bool   `json:"bottleneckRisk"`
}

type crowdDensityResponse struct {
	DensityAnalysis   []zoneDensity `json:"densityAnalysis"`
	OverallAssessment string        `json:"overallAssessment"`
	HeatmapDataURI    string        `json:"heatmapDataUri"`
}

type matchFacesRequest struct {
	MissingPersonPhotoDataURI string `json:"missingPersonPhotoDataUri"`
	CCTVFootageDataURI        string `json:"cctvFootageDataUri"`
}

type matchFacesResponse struct {
	MatchFound      bool    `json:"matchFound"`
	Zone            string  `json:"zone"`
	ConfidenceScore float64 `json:"confidenceScore"`
}

type answerQuestionRequest struct {
	Question string `json:"question"`
}

type answerQuestionResponse struct {
	Answer string `json:"answer"`
}

type safetySummaryRequest struct {
	Zone              string `json:"zone"`
	SecurityAlerts    string `json:"securityAlerts"`
	CrowdSensorData   string `json:"crowdSensorData"`
	SocialMediaTrends string `json:"socialMediaTrends"`
}

type safetySummaryResponse struct {
	Summary string `json:"summary"`
}
