package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
env:
  env: test
  serviceName: logistics
  log:
    level: debug
http:
  port: 9000
  timeouts:
    requestTimeout: 3s
postgres:
  master:
    host: db
    port: "5432"
  dbName: logistics
cache:
  provider: memory
  ttl: 30s
  redis:
    addr: ""
pagination:
  pageSize: 0
secretKey:
  access: secret
`

func writeConfig(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "logistics.yaml"), []byte(sampleConfig), 0o600))

	return dir
}

func TestLoadWithEnv_ReadsYAMLAndDurations(t *testing.T) {
	dir := writeConfig(t)
	t.Chdir(dir)

	cfg, err := LoadWithEnv[Config]("logistics")
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.HTTP.Port)
	assert.Equal(t, 3*time.Second, cfg.HTTP.Timeouts.RequestTimeout)
	require.NotNil(t, cfg.Postgres)
	assert.Equal(t, "db", cfg.Postgres.Master.Host)
	require.NotNil(t, cfg.Cache)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := writeConfig(t)
	t.Chdir(dir)
	t.Setenv("CACHE_REDIS_ADDR", "redis:6379")
	t.Setenv("POSTGRES_MASTER_HOST", "primary")

	cfg, err := LoadWithEnv[Config]("logistics")
	require.NoError(t, err)

	assert.Equal(t, "redis:6379", cfg.Cache.Redis.Addr)
	assert.Equal(t, "primary", cfg.Postgres.Master.Host)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 10, cfg.Pagination.PageSize)
	assert.Equal(t, 100, cfg.Pagination.MaxPageSize)
	assert.Equal(t, CacheProviderMemory, cfg.Cache.Provider)
	assert.Equal(t, 60*time.Second, cfg.Cache.TTL)
	assert.Equal(t, "logistics", cfg.Cache.KeyPrefix)
}

func TestBuildReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-a")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5433")
	t.Setenv("POSTGRES_REPLICAS_0_USERNAME", "reader")
	t.Setenv("POSTGRES_REPLICAS_1_HOST", "replica-b")

	replicas := buildReplicasFromEnv()

	require.Len(t, replicas, 1)
	assert.Equal(t, ConnectionConfig{Host: "replica-a", Port: "5433", UserName: "reader"}, replicas[0])
}
