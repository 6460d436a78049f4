package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestFromEnvDefaults(t *testing.T) {
	cfg := FromEnv(envOf(nil))
	assert.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestFromEnvOverrides(t *testing.T) {
	cfg := FromEnv(envOf(map[string]string{
		"DEBUG":             "1",
		"FIREARM_JSON_LOGS": "true",
	}))
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.JSONLogs)

	cfg = FromEnv(envOf(map[string]string{
		"DEBUG":             "1",
		"FIREARM_LOG_LEVEL": "error",
		"FIREARM_JSON_LOGS": "nope",
	}))
	assert.Equal(t, "error", cfg.LogLevel, "explicit level wins over DEBUG")
	assert.False(t, cfg.JSONLogs)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "chatty"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.WindowWidth = 100
	assert.Error(t, cfg.Validate())
}

func TestNewLogger(t *testing.T) {
	cfg := Default()
	cfg.JSONLogs = true
	log, err := cfg.NewLogger()
	require.NoError(t, err)
	assert.NotNil(t, log)

	cfg.LogLevel = "nonsense"
	_, err = cfg.NewLogger()
	assert.Error(t, err)
}
