package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	require.NotNil(t, cfg.Auth)
	assert.Equal(t, defaultMinPasswordLength, cfg.Auth.MinPasswordLength)
	assert.Equal(t, defaultAccessTTL, cfg.Auth.AccessTTL)
	assert.Equal(t, defaultRefreshTTL, cfg.Auth.RefreshTTL)

	require.NotNil(t, cfg.Storage)
	assert.Equal(t, "firmas", cfg.Storage.SignatureBucket)
	assert.Positive(t, cfg.Storage.MaxSignatureBytes)

	require.NotNil(t, cfg.Report)
	assert.Equal(t, "Q", cfg.Report.CurrencySymbol)
	assert.Equal(t, 3, cfg.Report.SignaturesPerPage)

	require.NotNil(t, cfg.Visits)
	assert.InDelta(t, defaultMaxVisitDistance, cfg.Visits.MaxDistanceMeters, 0.001)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Auth:    &AuthConfig{AccessTTL: time.Hour, MinPasswordLength: 10},
		Storage: &StorageConfig{SignatureBucket: "signatures", MaxSignatureBytes: 1024},
		Report:  &ReportConfig{CurrencySymbol: "$", SignaturesPerPage: 6},
	}

	applyDefaults(cfg)

	assert.Equal(t, time.Hour, cfg.Auth.AccessTTL)
	assert.Equal(t, 10, cfg.Auth.MinPasswordLength)
	assert.Equal(t, "signatures", cfg.Storage.SignatureBucket)
	assert.Equal(t, 1024, cfg.Storage.MaxSignatureBytes)
	assert.Equal(t, "$", cfg.Report.CurrencySymbol)
	assert.Equal(t, 6, cfg.Report.SignaturesPerPage)
}

func TestConfig_Location(t *testing.T) {
	cfg := &Config{Report: &ReportConfig{Timezone: "America/Guatemala"}}
	assert.Equal(t, "America/Guatemala", cfg.Location().String())

	cfg.Report.Timezone = "Not/AZone"
	assert.Equal(t, time.UTC, cfg.Location())
}
