package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Selector SelectorConfig `mapstructure:"selector"`
	Log      LogConfig      `mapstructure:"log"`
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// Catalog backends.
const (
	BackendSQLite = "sqlite"
	BackendIndex  = "index"
)

// CatalogConfig chooses where options come from. File is a YAML catalog used by the
// index backend and by `seed`.
type CatalogConfig struct {
	Backend string `mapstructure:"backend"`
	File    string `mapstructure:"file"`
}

// SelectorConfig holds picker behaviour.
type SelectorConfig struct {
	Debounce time.Duration `mapstructure:"debounce"`
	PageSize int           `mapstructure:"page_size"`
	Mode     string        `mapstructure:"mode"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

func appDir(base ...string) string {
	home := os.Getenv("HOME")
	return filepath.Join(append([]string{home}, base...)...)
}

// ConfigPath returns the file Load reads and Save writes.
func ConfigPath() string {
	if p := os.Getenv("DPSELECT_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(appDir(".config", "dpselect"), "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix DPSELECT_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("database.path", filepath.Join(appDir(".local", "share", "dpselect"), "catalog.db"))
	v.SetDefault("catalog.backend", BackendSQLite)
	v.SetDefault("catalog.file", "")
	v.SetDefault("selector.debounce", "800ms")
	v.SetDefault("selector.page_size", 10)
	v.SetDefault("selector.mode", "multiple")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	v.SetConfigType("toml")
	if p := os.Getenv("DPSELECT_CONFIG"); p != "" {
		v.SetConfigFile(p)
	} else {
		v.AddConfigPath(appDir(".config", "dpselect"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("DPSELECT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects values the picker cannot run with.
func (c Config) Validate() error {
	switch c.Catalog.Backend {
	case BackendSQLite, BackendIndex:
	default:
		return fmt.Errorf("config: unknown catalog backend %q", c.Catalog.Backend)
	}
	if c.Catalog.Backend == BackendIndex && c.Catalog.File == "" {
		return fmt.Errorf("config: catalog.file is required for the %s backend", BackendIndex)
	}
	if c.Selector.PageSize <= 0 {
		return fmt.Errorf("config: selector.page_size must be positive, got %d", c.Selector.PageSize)
	}
	if c.Selector.Debounce < 0 {
		return fmt.Errorf("config: selector.debounce must not be negative")
	}
	return nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := ConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("catalog.backend", cfg.Catalog.Backend)
	v.Set("catalog.file", cfg.Catalog.File)
	v.Set("selector.debounce", cfg.Selector.Debounce.String())
	v.Set("selector.page_size", cfg.Selector.PageSize)
	v.Set("selector.mode", cfg.Selector.Mode)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.file", cfg.Log.File)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
