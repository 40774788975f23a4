package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"storage": map[string]any{
			"maxValueBytes": 1024,
			"redis": map[string]any{
				"keyPrefix": "pos:",
			},
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "STORAGE_MAXVALUEBYTES", want: "storage.maxValueBytes"},
		{envKey: "STORAGE_REDIS_KEYPREFIX", want: "storage.redis.keyPrefix"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

const testConfigYAML = `
env:
  env: develop
  serviceName: pos
  timezone: Asia/Jakarta
  log:
    level: debug
http:
  port: 8080
  timeouts:
    readTimeout: 5s
storage:
  driver: sqlite
  maxValueBytes: 2048
auth:
  enabled: true
  accessTokenTTL: 12h
  cashiers:
    - username: ayu
      passwordHash: "$2a$10$abc"
      label: Kasir Pagi
`

func TestLoadWithEnv_FileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pos.yaml"), []byte(testConfigYAML), 0o600))
	t.Chdir(dir)
	t.Setenv("STORAGE_DRIVER", "redis")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := LoadWithEnv[Config]("pos")
	require.NoError(t, err)

	assert.Equal(t, "redis", cfg.Storage.Driver)
	assert.Equal(t, 2048, cfg.Storage.MaxValueBytes)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 12*time.Hour, cfg.Auth.AccessTokenTTL)
	require.Len(t, cfg.Auth.Cashiers, 1)
	assert.Equal(t, "Kasir Pagi", cfg.Auth.Cashiers[0].Label)
	assert.Equal(t, "Asia/Jakarta", cfg.Location().String())
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultStorageDriver, cfg.Storage.Driver)
	assert.Equal(t, defaultMaxValueBytes, cfg.Storage.MaxValueBytes)
	assert.Equal(t, time.Local, cfg.Location())
}
