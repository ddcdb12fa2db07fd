// Package config loads the kanban configuration from
// $XDG_CONFIG_HOME/kanban/config.yaml, applying defaults and environment
// overrides on top.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/thenoetrevino/kanban/internal/config/colors"
	"github.com/thenoetrevino/kanban/internal/storage"
	"gopkg.in/yaml.v3"
)

// Environment overrides
const (
	EnvStorageBackend = "KANBAN_STORAGE_BACKEND"
	EnvDBPath         = "KANBAN_DB_PATH"
	EnvRedisAddr      = "KANBAN_REDIS_ADDR"
	EnvLogLevel       = "KANBAN_LOG_LEVEL"
	EnvThemeFile      = "KANBAN_THEME_FILE"
)

// Config represents the application configuration
type Config struct {
	Storage     StorageConfig      `yaml:"storage" json:"storage"`
	History     HistoryConfig      `yaml:"history" json:"history"`
	Log         LogConfig          `yaml:"log" json:"log"`
	ColorScheme colors.ColorScheme `yaml:"theme" json:"theme"`
}

// StorageConfig selects where the board is saved
type StorageConfig struct {
	Backend       string `yaml:"backend" json:"backend"` // sqlite | redis | memory
	Key           string `yaml:"key" json:"key"`
	SQLitePath    string `yaml:"sqlite_path" json:"sqlite_path"`
	RedisAddr     string `yaml:"redis_addr" json:"redis_addr"`
	RedisPassword string `yaml:"redis_password,omitempty" json:"-"`
	RedisDB       int    `yaml:"redis_db" json:"redis_db"`
}

// HistoryConfig bounds the undo stack. Zero keeps every step.
type HistoryConfig struct {
	Limit int `yaml:"limit" json:"limit"`
}

// LogConfig controls the log file
type LogConfig struct {
	Level string `yaml:"level" json:"level"` // debug | info | warn | error
	Dir   string `yaml:"dir" json:"dir"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// loadThemeFile merges the theme from KANBAN_THEME_FILE, if set
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme" json:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// applyEnv overrides file values with KANBAN_* environment variables
func applyEnv(config *Config) {
	if v := os.Getenv(EnvStorageBackend); v != "" {
		config.Storage.Backend = strings.ToLower(v)
	}
	if v := os.Getenv(EnvDBPath); v != "" {
		config.Storage.SQLitePath = v
	}
	if v := os.Getenv(EnvRedisAddr); v != "" {
		config.Storage.RedisAddr = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		config.Log.Level = strings.ToLower(v)
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	var config Config

	configPath, err := getConfigPath()
	if err == nil {
		data, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &config); err != nil {
				return nil, err
			}
		case !os.IsNotExist(err):
			return nil, err
		}
	}

	loadThemeFile(&config)
	applyEnv(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// StorageOptions converts the storage section into options for storage.Open,
// expanding a leading ~ in the SQLite path.
func (c *Config) StorageOptions() storage.Options {
	return storage.Options{
		Backend:       c.Storage.Backend,
		Key:           c.Storage.Key,
		SQLitePath:    expandHome(c.Storage.SQLitePath),
		RedisAddr:     c.Storage.RedisAddr,
		RedisPassword: c.Storage.RedisPassword,
		RedisDB:       c.Storage.RedisDB,
	}
}

// LogDir returns the log directory with a leading ~ expanded
func (c *Config) LogDir() string {
	return expandHome(c.Log.Dir)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "kanban", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "kanban", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Storage.Backend == "" {
		c.Storage.Backend = storage.BackendSQLite
	}
	if c.Storage.Key == "" {
		c.Storage.Key = storage.DefaultKey
	}
	if c.Storage.SQLitePath == "" {
		c.Storage.SQLitePath = filepath.Join("~", ".kanban", "board.db")
	}
	if c.Storage.RedisAddr == "" {
		c.Storage.RedisAddr = "localhost:6379"
	}
	if c.History.Limit < 0 {
		c.History.Limit = 0
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Dir == "" {
		c.Log.Dir = filepath.Join("~", ".kanban", "logs")
	}
	c.ColorScheme.ApplyDefaults()
}

// expandHome replaces a leading "~" with the user's home directory
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
}

// String renders the config as YAML with the Redis password masked
func (c *Config) String() string {
	masked := *c
	if masked.Storage.RedisPassword != "" {
		masked.Storage.RedisPassword = "********"
	}
	data, err := yaml.Marshal(&masked)
	if err != nil {
		return err.Error()
	}
	return string(data)
}

// Path returns the location Load reads from and Save writes to
func Path() (string, error) {
	return getConfigPath()
}
