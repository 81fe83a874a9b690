package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))
	t.Chdir(dir)
}

func TestLoadWithEnv_ReadsYAML(t *testing.T) {
	writeConfigFile(t, `
env:
  env: test
  serviceName: tasker
  debug: true
  log:
    level: debug
http:
  port: 9090
  timeouts:
    readTimeout: 5s
postgres:
  host: localhost
  port: 5432
  user: tasker
  dbName: tasker
auth:
  secretKey: yaml-secret
  expireMinutes: 15
`)

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Env.Env)
	assert.Equal(t, "tasker", cfg.Env.ServiceName)
	assert.True(t, cfg.Env.Debug)
	assert.Equal(t, "debug", cfg.Env.Log.Level)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	require.NotNil(t, cfg.Postgres)
	assert.Equal(t, "localhost", cfg.Postgres.Host)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, "yaml-secret", cfg.Auth.SecretKey)
	assert.Equal(t, 15, cfg.Auth.ExpireMinutes)
	assert.Equal(t, 15*time.Minute, cfg.Auth.ExpireDuration())
}

func TestLoadWithEnv_EnvOverridesFile(t *testing.T) {
	writeConfigFile(t, `
auth:
  secretKey: yaml-secret
  expireMinutes: 15
`)
	t.Setenv("AUTH_SECRETKEY", "env-secret")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	require.NotNil(t, cfg.Auth)
	assert.Equal(t, "env-secret", cfg.Auth.SecretKey)
	assert.Equal(t, 15, cfg.Auth.ExpireMinutes)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	assert.Error(t, err)
}

func TestNew_AppliesDefaults(t *testing.T) {
	writeConfigFile(t, `
auth:
  secretKey: yaml-secret
`)

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, defaultHTTPPort, cfg.HTTP.Port)
	assert.Equal(t, defaultExpireMinutes, cfg.Auth.ExpireMinutes)
}

func TestNew_RequiresAuthSection(t *testing.T) {
	writeConfigFile(t, `
http:
  port: 9090
`)

	_, err := New()
	assert.Error(t, err)
}
