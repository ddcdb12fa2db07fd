package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/kanban/internal/storage"
)

// ===== TEST HELPERS =====

// isolate points XDG_CONFIG_HOME at a temp dir and clears every KANBAN_* override
func isolate(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, key := range []string{EnvStorageBackend, EnvDBPath, EnvRedisAddr, EnvLogLevel, EnvThemeFile} {
		t.Setenv(key, "")
	}
	return dir
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()

	configDir := filepath.Join(dir, "kanban")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644))
}

// ===== TESTS =====

func TestLoadConfigWithoutFile(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, storage.BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, storage.DefaultKey, cfg.Storage.Key)
	assert.Equal(t, "localhost:6379", cfg.Storage.RedisAddr)
	assert.Equal(t, 0, cfg.History.Limit)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, DefaultColorScheme().Accent, cfg.ColorScheme.Accent)
}

func TestLoadConfigWithFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, `storage:
  backend: redis
  redis_addr: cache:6380
  redis_db: 2
history:
  limit: 25
theme:
  accent: "#FF0000"
`)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, storage.BackendRedis, cfg.Storage.Backend)
	assert.Equal(t, "cache:6380", cfg.Storage.RedisAddr)
	assert.Equal(t, 2, cfg.Storage.RedisDB)
	assert.Equal(t, 25, cfg.History.Limit)
	assert.Equal(t, "#FF0000", cfg.ColorScheme.Accent)

	// Unspecified values should use defaults
	assert.Equal(t, storage.DefaultKey, cfg.Storage.Key)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NotEmpty(t, cfg.ColorScheme.Error)
}

func TestLoadConfigMalformedFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "storage: [not, a, map")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, `storage:
  backend: redis
log:
  level: warn
`)
	t.Setenv(EnvStorageBackend, "MEMORY")
	t.Setenv(EnvDBPath, "/tmp/other.db")
	t.Setenv(EnvRedisAddr, "redis://example:6379/1")
	t.Setenv(EnvLogLevel, "Debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, storage.BackendMemory, cfg.Storage.Backend)
	assert.Equal(t, "/tmp/other.db", cfg.Storage.SQLitePath)
	assert.Equal(t, "redis://example:6379/1", cfg.Storage.RedisAddr)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestThemeFileLoading(t *testing.T) {
	isolate(t)

	themePath := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(themePath, []byte(`theme:
  accent: "#123456"
  warning: "#654321"
`), 0o644))
	t.Setenv(EnvThemeFile, themePath)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "#123456", cfg.ColorScheme.Accent)
	assert.Equal(t, "#654321", cfg.ColorScheme.Warning)
	assert.Equal(t, DefaultColorScheme().Error, cfg.ColorScheme.Error)
}

func TestMonochromePreset(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "theme:\n  preset: monochrome\n")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "#FFFFFF", cfg.ColorScheme.Accent)
}

func TestSaveConfig(t *testing.T) {
	dir := isolate(t)

	cfg := Default()
	cfg.Storage.Backend = storage.BackendMemory
	cfg.History.Limit = 10

	require.NoError(t, cfg.Save())
	assert.FileExists(t, filepath.Join(dir, "kanban", "config.yaml"))

	cfg2, err := Load()
	require.NoError(t, err)
	assert.Equal(t, storage.BackendMemory, cfg2.Storage.Backend)
	assert.Equal(t, 10, cfg2.History.Limit)
}

func TestStorageOptionsExpandsHome(t *testing.T) {
	isolate(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := Default()
	opts := cfg.StorageOptions()

	assert.Equal(t, filepath.Join(home, ".kanban", "board.db"), opts.SQLitePath)
	assert.Equal(t, storage.DefaultKey, opts.Key)
	assert.Equal(t, filepath.Join(home, ".kanban", "logs"), cfg.LogDir())

	cfg.Storage.SQLitePath = "/abs/board.db"
	assert.Equal(t, "/abs/board.db", cfg.StorageOptions().SQLitePath)
}

func TestNegativeHistoryLimitIsUnbounded(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "history:\n  limit: -3\n")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.History.Limit)
}
