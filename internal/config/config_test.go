package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestValidate checks required fields, format validations and defaulting.
func TestValidate(t *testing.T) {
	t.Parallel()

	// Missing socket.
	cfg := new(Config)

	err := Validate(cfg)
	require.Error(t, err)

	// Bad socket.
	cfg = &Config{
		ServerAddress: "bad:address",
	}

	err = Validate(cfg)
	require.Error(t, err)

	// Negative buffer size.
	cfg = &Config{
		ServerAddress:   "127.0.0.1:0",
		EventBufferSize: -1,
	}

	err = Validate(cfg)
	require.Error(t, err)

	// Defaults filled for timing parameters.
	cfg = &Config{
		ServerAddress: "127.0.0.1:0",
	}

	err = Validate(cfg)
	require.NoError(t, err)
	require.Equal(t, DefaultTimeout, cfg.Timeout)
	require.Equal(t, DefaultConfirmWindow, cfg.ConfirmWindow)
	require.Equal(t, DefaultCancelGrace, cfg.CancelGrace)
	require.Equal(t, DefaultPulsePeriod, cfg.PulsePeriod)
	require.Equal(t, DefaultEventBufferSize, cfg.EventBufferSize)
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	cfg := &Config{
		ServerAddress:  "127.0.0.1:50051",
		MetricsAddress: "127.0.0.1:9090",
		ConfirmWindow:  7 * time.Second,
		BackupRequired: true,
	}

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg.ServerAddress, loaded.ServerAddress)
	require.Equal(t, cfg.MetricsAddress, loaded.MetricsAddress)
	require.Equal(t, 7*time.Second, loaded.ConfirmWindow)
	require.True(t, loaded.BackupRequired)

	// File exists.
	_, err = os.Stat(path)
	require.NoError(t, err)
}

// TestLoad_EnvOverride verifies environment variables win over the file.
func TestLoad_EnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	require.NoError(t, Save(path, &Config{
		ServerAddress: "127.0.0.1:50051",
		ConfirmWindow: 5 * time.Second,
	}))

	t.Setenv("EMERGENCY_CONFIRM_WINDOW", "9s")
	t.Setenv("EMERGENCY_BACKUP_REQUIRED", "true")

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 9*time.Second, loaded.ConfirmWindow)
	require.True(t, loaded.BackupRequired)
}
