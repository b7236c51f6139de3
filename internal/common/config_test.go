package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DB_URL", "")
	t.Setenv("SCAN_INTERVAL", "")
	t.Setenv("NER_MIN_NAME_TOKENS", "")

	cfg := LoadConfig()
	assert.Equal(t, ":8080", cfg.Server.GRPCAddr)
	assert.Equal(t, ":9090", cfg.Server.MetricsAddr)
	assert.Equal(t, "./inbox", cfg.Scan.SourceDir)
	assert.Equal(t, 5*time.Minute, cfg.Scan.Interval)
	assert.Equal(t, 2, cfg.Extract.MinNameTokens)
	assert.Equal(t, "tesseract", cfg.Extract.TesseractBin)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/po")
	t.Setenv("SCAN_INTERVAL", "30s")
	t.Setenv("NER_MIN_NAME_TOKENS", "3")

	cfg := LoadConfig()
	assert.Equal(t, "postgres://localhost/po", cfg.Database.DSN)
	assert.Equal(t, 30*time.Second, cfg.Scan.Interval)
	assert.Equal(t, 3, cfg.Extract.MinNameTokens)
}

func TestLoadConfigBadValuesFallBack(t *testing.T) {
	t.Setenv("SCAN_INTERVAL", "soon")
	t.Setenv("NER_MIN_NAME_TOKENS", "two")

	cfg := LoadConfig()
	assert.Equal(t, 5*time.Minute, cfg.Scan.Interval)
	assert.Equal(t, 2, cfg.Extract.MinNameTokens)
}

func TestValidate(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/po")
	cfg := LoadConfig()
	require.NoError(t, cfg.Validate())

	cfg.Database.DSN = ""
	assert.Error(t, cfg.Validate())

	cfg = LoadConfig()
	cfg.Scan.Interval = 0
	assert.Error(t, cfg.Validate())

	cfg = LoadConfig()
	cfg.Extract.MinNameTokens = 0
	assert.Error(t, cfg.Validate())
}
