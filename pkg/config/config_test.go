package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "/api/v1", cfg.APIPrefix)
	assert.Equal(t, "hr_panel", cfg.Database.Name)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TaskTTL)
	assert.True(t, cfg.Metrics.Enabled)
	assert.True(t, cfg.Export.Enabled)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("ENV", EnvProduction)
	t.Setenv("PORT", "9090")
	t.Setenv("ENABLE_CACHE", "true")
	t.Setenv("TASK_CACHE_TTL", "30s")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvProduction, cfg.Env)
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 30*time.Second, cfg.Cache.TaskTTL)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoadWithoutEnvFile(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "hr_panel", cfg.Database.Name)
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, time.Minute, parseDuration("1m", time.Hour))
	assert.Equal(t, time.Hour, parseDuration("", time.Hour))
	assert.Equal(t, time.Hour, parseDuration("not-a-duration", time.Hour))
}

func TestSplitAndTrim(t *testing.T) {
	assert.Nil(t, splitAndTrim(""))
	assert.Equal(t, []string{"a", "b"}, splitAndTrim(" a , b ,"))
}
