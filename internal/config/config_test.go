package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, 7, cfg.Report.DefaultLookbackDays)
	assert.Equal(t, OutputText, cfg.Report.OutputFormat)
	assert.Equal(t, "https://graph.facebook.com/v22.0", cfg.Meta.URL)
}

func TestNewConfig_FromEnv(t *testing.T) {
	t.Setenv("OUTPUT_FORMAT", "json")
	t.Setenv("REPORT_DEFAULT_LOOKBACK_DAYS", "14")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("META_VERSION", "v23.0")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, OutputJSON, cfg.Report.OutputFormat)
	assert.Equal(t, 14, cfg.Report.DefaultLookbackDays)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "https://graph.facebook.com/v23.0", cfg.Meta.URL)
}

func TestNewConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "Formato desconhecido", key: "OUTPUT_FORMAT", val: "xml"},
		{name: "Janela negativa", key: "REPORT_DEFAULT_LOOKBACK_DAYS", val: "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)

			cfg, err := NewConfig()
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestIsValidOutputFormat(t *testing.T) {
	assert.True(t, IsValidOutputFormat("text"))
	assert.True(t, IsValidOutputFormat("json"))
	assert.True(t, IsValidOutputFormat("yaml"))
	assert.False(t, IsValidOutputFormat("JSON"))
	assert.False(t, IsValidOutputFormat(""))
}
