// Package config handles the configuration directory, file and environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	// AppName is the application directory name.
	AppName = "tasklist"

	// ConfigFile is the optional configuration filename inside Dir.
	ConfigFile = "config.yaml"

	// EnvPrefix prefixes environment overrides, e.g. TASKLIST_SERVER_PORT.
	EnvPrefix = "TASKLIST"
)

// Color modes for terminal rendering.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string `mapstructure:"-"`

	// Debug enables debug logging.
	Debug bool `mapstructure:"-"`

	// Quiet suppresses informational output.
	Quiet bool `mapstructure:"-"`

	Server  ServerConfig  `mapstructure:"server"`
	Logger  LoggerConfig  `mapstructure:"logger"`
	Display DisplayConfig `mapstructure:"display"`
}

// ServerConfig configures the HTML surface started by `serve`.
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// Address returns host:port.
func (s *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LoggerConfig configures the zap logger.
type LoggerConfig struct {
	Level            string   `mapstructure:"level"`
	Encoding         string   `mapstructure:"encoding"`
	OutputPaths      []string `mapstructure:"output_paths"`
	ErrorOutputPaths []string `mapstructure:"error_output_paths"`
}

// DisplayConfig configures terminal rendering.
type DisplayConfig struct {
	// Color is one of auto, always, never.
	Color string `mapstructure:"color"`
}

// New creates a Config with defaults and the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/tasklist or $HOME/.config/tasklist.
// Nothing is read from disk or the environment.
func New(configDir string) (*Config, error) {
	v := newViper()
	return decode(v, configDir)
}

// Load is like New but also reads Dir/config.yaml, if present, and TASKLIST_*
// environment overrides.
func Load(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}

	v := newViper()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path := filepath.Join(dir, ConfigFile)
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}

	return decode(v, dir)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 5*time.Second)
	v.SetDefault("server.write_timeout", 5*time.Second)
	v.SetDefault("server.idle_timeout", 30*time.Second)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.output_paths", []string{"stderr"})
	v.SetDefault("logger.error_output_paths", []string{"stderr"})
	v.SetDefault("display.color", ColorAuto)
	return v
}

func decode(v *viper.Viper, configDir string) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	switch cfg.Display.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return nil, fmt.Errorf("invalid display.color: %q", cfg.Display.Color)
	}

	cfg.Dir = configDir
	if cfg.Dir == "" {
		cfg.Dir = DefaultConfigDir()
	}
	return &cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// ConfigPath returns the path to the configuration file.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// HasConfigFile checks if the configuration file exists.
func (c *Config) HasConfigFile() bool {
	_, err := os.Stat(c.ConfigPath())
	return err == nil
}
