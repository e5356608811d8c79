package gateway

// ProviderType selects which gateway implementation serves analysis requests.
type ProviderType string

const (
	// ProviderGenAI is the hosted generative-AI inference service (default).
	ProviderGenAI ProviderType = "genai"
	// ProviderRekognition routes face matching through AWS Rekognition and
	// everything else through the generative service.
	ProviderRekognition ProviderType = "rekognition"
	// ProviderMock is the deterministic in-process provider for dev/test.
	ProviderMock ProviderType = "mock"
)
