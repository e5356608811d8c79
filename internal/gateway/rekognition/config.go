package rekognition

// Config holds the AWS Rekognition provider configuration.
type Config struct {
	// Region is the AWS region the Rekognition client targets.
	Region string

	// SimilarityThreshold is the minimum similarity (0-100) CompareFaces
	// returns matches for. Matches below it count as no match.
	SimilarityThreshold float32
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Region:              "us-east-1",
		SimilarityThreshold: 50,
	}
}
