package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drishti-ops/drishti/internal/config"
	"github.com/drishti-ops/drishti/internal/gateway/genai"
	"github.com/drishti-ops/drishti/internal/gateway/mock"
)

func TestNewGateway_Default(t *testing.T) {
	cfg := &config.Config{GatewayProvider: "genai", GatewayURL: "http://gateway:8090", GatewayTimeoutSec: 10}

	gw, err := NewGateway(context.Background(), cfg)
	require.NoError(t, err)
	assert.IsType(t, &genai.Provider{}, gw)
}

func TestNewGateway_Mock(t *testing.T) {
	cfg := &config.Config{GatewayProvider: "mock"}

	gw, err := NewGateway(context.Background(), cfg)
	require.NoError(t, err)
	assert.IsType(t, &mock.Provider{}, gw)
}

func TestNewGateway_Unknown(t *testing.T) {
	cfg := &config.Config{GatewayProvider: "oracle"}

	_, err := NewGateway(context.Background(), cfg)
	assert.Error(t, err)
}
