// SPDX-License-Identifier: EPL-2.0

package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/untwist/internal/config"
	"github.com/ik5/untwist/mask"
	"github.com/ik5/untwist/stft"
)

func TestLoadFromReader_Empty(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadFromReader(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadFromReader_Overrides(t *testing.T) {
	t.Parallel()

	doc := `
log_level: debug
stft:
  window_size: 2048
mask:
  kind: ratio
  exponent: 2
device:
  frames_per_buffer: 256
`
	cfg, err := config.LoadFromReader(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, config.LogDebug, cfg.LogLevel)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel.Slog())
	assert.Equal(t, 2048, cfg.STFT.WindowSize)
	assert.Equal(t, 512, cfg.STFT.HopSize, "default kept")
	assert.Equal(t, "ratio", cfg.Mask.Kind)
	assert.Equal(t, 2.0, cfg.Mask.Exponent)
	assert.Zero(t, cfg.Mask.ThresholdDB)
	assert.Equal(t, 256, cfg.Device.FramesPerBuffer)

	assert.Len(t, cfg.STFT.Options(), 2)
	assert.Len(t, cfg.Mask.Options(), 2)
}

func TestLoadFromReader_UnknownField(t *testing.T) {
	t.Parallel()

	_, err := config.LoadFromReader(strings.NewReader("stft:\n  window: 10\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "window")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*config.Config) {}},
		{name: "log level", mutate: func(c *config.Config) { c.LogLevel = "loud" }, wantErr: "log_level"},
		{name: "hop beyond window", mutate: func(c *config.Config) { c.STFT.HopSize = 4096 }, wantErr: "stft"},
		{name: "mask kind", mutate: func(c *config.Config) { c.Mask.Kind = "soft" }, wantErr: "mask.kind"},
		{name: "exponent", mutate: func(c *config.Config) { c.Mask.Exponent = 0 }, wantErr: "mask.exponent"},
		{name: "frames", mutate: func(c *config.Config) { c.Device.FramesPerBuffer = -1 }, wantErr: "frames_per_buffer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.Default()
			tt.mutate(cfg)

			err := config.Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_JoinsErrors(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.STFT.HopSize = 0
	cfg.Mask.Kind = "soft"

	err := config.Validate(cfg)
	require.ErrorIs(t, err, stft.ErrConfig)
	require.ErrorIs(t, err, mask.ErrUnknownKind)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "untwist.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mask:\n  threshold_db: 6\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6.0, cfg.Mask.ThresholdDB)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
