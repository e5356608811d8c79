package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/drishti-ops/drishti/internal/config"
	"github.com/drishti-ops/drishti/internal/gateway"
	"github.com/drishti-ops/drishti/internal/gateway/genai"
	"github.com/drishti-ops/drishti/internal/gateway/mock"
	"github.com/drishti-ops/drishti/internal/gateway/rekognition"
)

// NewGateway creates a gateway.Gateway instance based on configuration.
//
// Environment variables:
//   - GATEWAY_PROVIDER: "genai", "rekognition" or "mock" (default: "genai")
//   - GATEWAY_URL: inference service base URL
//   - GATEWAY_TIMEOUT_SECONDS: per-call deadline for gateway requests
//   - AWS_REGION: region for the Rekognition face matcher
func NewGateway(ctx context.Context, cfg *config.Config) (gateway.Gateway, error) {
	providerType := gateway.ProviderType(cfg.GatewayProvider)

	switch providerType {
	case gateway.ProviderGenAI, "":
		return createGenAIProvider(cfg), nil

	case gateway.ProviderRekognition:
		rekogCfg := rekognition.DefaultConfig()
		rekogCfg.Region = cfg.AWSRegion

		prov, err := rekognition.NewProvider(ctx, rekogCfg, createGenAIProvider(cfg))
		if err != nil {
			return nil, fmt.Errorf("create rekognition gateway: %w", err)
		}
		return prov, nil

	case gateway.ProviderMock:
		return mock.New(), nil

	default:
		return nil, fmt.Errorf("unknown gateway provider: %s (supported: %s, %s, %s)",
			cfg.GatewayProvider, gateway.ProviderGenAI, gateway.ProviderRekognition, gateway.ProviderMock)
	}
}

func createGenAIProvider(cfg *config.Config) *genai.Provider {
	genaiCfg := genai.DefaultConfig()
	if cfg.GatewayURL != "" {
		genaiCfg.BaseURL = cfg.GatewayURL
	}
	if cfg.GatewayTimeoutSec > 0 {
		genaiCfg.Timeout = time.Duration(cfg.GatewayTimeoutSec) * time.Second
	}
	return genai.NewProvider(genaiCfg)
}
