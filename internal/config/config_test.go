package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, []string{"Zone A", "Zone B", "Zone C", "Zone D"}, cfg.ZoneNames)
	assert.Equal(t, "genai", cfg.GatewayProvider)
	assert.Equal(t, 30, cfg.GatewayTimeoutSec)
	assert.Equal(t, 0.7, cfg.MatchConfidenceThreshold)
	assert.Equal(t, 50, cfg.AlertLogCap)
	assert.Equal(t, 20, cfg.DensityHistoryCap)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoad_ZoneOverride(t *testing.T) {
	t.Setenv("ZONE_NAMES", "Entrance,Hallway,Exit")
	t.Setenv("CAMERA_URLS", "http://cam1/mjpeg,http://cam2/mjpeg,http://cam3/mjpeg")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Len(t, cfg.ZoneNames, 3)
	assert.Len(t, cfg.CameraURLs, 3)
}

func TestLoad_CameraURLCountMismatch(t *testing.T) {
	t.Setenv("ZONE_NAMES", "Zone A,Zone B")
	t.Setenv("CAMERA_URLS", "http://cam1/mjpeg")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_InvalidThreshold(t *testing.T) {
	t.Setenv("MATCH_CONFIDENCE_THRESHOLD", "1.5")

	_, err := Load()
	assert.Error(t, err)
}
