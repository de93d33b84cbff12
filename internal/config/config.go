package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds the parameters shared by the emergency-button binaries.
// Values come from the YAML settings file; environment variables with the
// EMERGENCY_ prefix override the file.
type Config struct {
	// ServerAddress is the gRPC address of the activation server.
	ServerAddress string `yaml:"server_addr" env:"SERVER_ADDR"`
	// MetricsAddress is the HTTP listen address for the Prometheus endpoint.
	// Empty disables the metrics listener.
	MetricsAddress string `yaml:"metrics_addr" env:"METRICS_ADDR"`
	// Timeout is the duration for network operations and RPC calls.
	Timeout time.Duration `yaml:"timeout" env:"TIMEOUT"`
	// ConfirmWindow is how long a tap stays valid before it decays.
	ConfirmWindow time.Duration `yaml:"confirm_window" env:"CONFIRM_WINDOW"`
	// CancelGrace is how long the cancelled phase is shown before reverting to idle.
	CancelGrace time.Duration `yaml:"cancel_grace" env:"CANCEL_GRACE"`
	// PulsePeriod is the idle heartbeat interval.
	PulsePeriod time.Duration `yaml:"pulse_period" env:"PULSE_PERIOD"`
	// EventBufferSize is the per-observer event buffer depth.
	EventBufferSize int `yaml:"event_buffer_size" env:"EVENT_BUFFER_SIZE"`
	// BackupRequired forbids skipping the backup step when true.
	BackupRequired bool `yaml:"backup_required" env:"BACKUP_REQUIRED"`
	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`
}

const (
	// DefaultConfigFilename is the default filename for settings.
	DefaultConfigFilename = "emergency-button-settings.yaml"

	// DefaultTimeout is the default duration for network operations.
	DefaultTimeout = 5 * time.Second

	// DefaultConfirmWindow is the default tap confirmation countdown.
	DefaultConfirmWindow = 5 * time.Second

	// DefaultCancelGrace is the default cancelled-to-idle delay.
	DefaultCancelGrace = 3 * time.Second

	// DefaultPulsePeriod is the default idle heartbeat interval.
	DefaultPulsePeriod = 2 * time.Second

	// DefaultEventBufferSize is the default per-observer buffer depth.
	DefaultEventBufferSize = 64

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600

	// envPrefix namespaces the environment variable overrides.
	envPrefix = "EMERGENCY_"
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errServerSocketRequired is returned when server address is missing.
	errServerSocketRequired = errors.New("server address must be provided")
	// errBufferSizeNegative is returned when the event buffer size is negative.
	errBufferSizeNegative = errors.New("event buffer size must not be negative")
)

// Load reads configuration from the provided path, applies environment
// overrides, and validates essential fields.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return nil, fmt.Errorf("parse environment overrides: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks required fields and fills defaults for optional ones.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.ServerAddress == "" {
		return errServerSocketRequired
	}

	if _, err := net.ResolveTCPAddr("tcp", cfg.ServerAddress); err != nil {
		return fmt.Errorf("invalid server socket: %w", err)
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	if cfg.ConfirmWindow <= 0 {
		cfg.ConfirmWindow = DefaultConfirmWindow
	}

	if cfg.CancelGrace <= 0 {
		cfg.CancelGrace = DefaultCancelGrace
	}

	if cfg.PulsePeriod <= 0 {
		cfg.PulsePeriod = DefaultPulsePeriod
	}

	if cfg.EventBufferSize < 0 {
		return errBufferSizeNegative
	}

	if cfg.EventBufferSize == 0 {
		cfg.EventBufferSize = DefaultEventBufferSize
	}

	return nil
}
