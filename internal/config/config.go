// Package config resolves runtime configuration from defaults, an
// optional config file and SARTOR_* environment variables, in that
// order of increasing precedence. The CLI layer owns the viper wiring;
// this package defines the schema, defaults and validation.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config is the resolved runtime configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Suggest  SuggestConfig  `mapstructure:"suggest"`
	Server   ServerConfig   `mapstructure:"server"`
}

// DatabaseConfig locates the wardrobe database.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SuggestConfig tunes outfit generation.
type SuggestConfig struct {
	Count    int `mapstructure:"count"`
	Attempts int `mapstructure:"attempts"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	Listen string `mapstructure:"listen"`
}

// DefaultDatabasePath returns the default wardrobe database location
// under the user's data directory.
func DefaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "sartor.db"
	}
	return filepath.Join(home, ".local", "share", "sartor", "sartor.db")
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{Path: DefaultDatabasePath()},
		Logging:  LoggingConfig{Level: "info", Format: "console"},
		Suggest:  SuggestConfig{Count: 3, Attempts: 200},
		Server:   ServerConfig{Listen: "127.0.0.1:8880"},
	}
}

// SetDefaults registers every configuration default on the global
// viper instance.
func SetDefaults() {
	setDefaults(viper.GetViper())
}

func setDefaults(v *viper.Viper) {
	def := Default()
	v.SetDefault("database.path", def.Database.Path)
	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.format", def.Logging.Format)
	v.SetDefault("suggest.count", def.Suggest.Count)
	v.SetDefault("suggest.attempts", def.Suggest.Attempts)
	v.SetDefault("server.listen", def.Server.Listen)
}

// Load materialises the current viper state into a validated Config.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFrom reads one specific config file into a validated Config. It
// uses a private viper instance and leaves global state untouched,
// which makes it suitable for tests and for embedding.
func LoadFrom(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the rest of the program cannot work with.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging.level %q (expected debug, info, warn or error)", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid logging.format %q (expected console or json)", c.Logging.Format)
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database.path must not be empty")
	}
	if c.Suggest.Count < 1 {
		return fmt.Errorf("suggest.count must be at least 1")
	}
	if c.Suggest.Attempts < 1 {
		return fmt.Errorf("suggest.attempts must be at least 1")
	}
	if c.Server.Listen == "" {
		return fmt.Errorf("server.listen must not be empty")
	}
	return nil
}
