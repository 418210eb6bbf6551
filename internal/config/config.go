// SPDX-License-Identifier: EPL-2.0

// Package config holds the settings of the untwist command.
package config

import (
	"log/slog"

	"github.com/ik5/untwist/mask"
	"github.com/ik5/untwist/spectral"
	"github.com/ik5/untwist/stft"
)

// LogLevel controls log verbosity.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is a recognised log level.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// Slog maps l to a slog level. Unknown levels map to info.
func (l LogLevel) Slog() slog.Level {
	switch l {
	case LogDebug:
		return slog.LevelDebug
	case LogWarn:
		return slog.LevelWarn
	case LogError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Config is the root of the YAML file.
type Config struct {
	LogLevel LogLevel     `yaml:"log_level"`
	STFT     STFTConfig   `yaml:"stft"`
	Mask     MaskConfig   `yaml:"mask"`
	Device   DeviceConfig `yaml:"device"`
}

type STFTConfig struct {
	WindowSize int `yaml:"window_size"`
	HopSize    int `yaml:"hop_size"`
}

// Options converts the section to stft options.
func (c STFTConfig) Options() []stft.Option {
	return []stft.Option{stft.WithWindowSize(c.WindowSize), stft.WithHopSize(c.HopSize)}
}

type MaskConfig struct {
	// Kind is "binary" or "ratio".
	Kind        string  `yaml:"kind"`
	ThresholdDB float64 `yaml:"threshold_db"`
	Exponent    float64 `yaml:"exponent"`
}

// Options converts the section to mask builder options.
func (c MaskConfig) Options() []mask.Option {
	return []mask.Option{mask.WithThreshold(c.ThresholdDB), mask.WithExponent(c.Exponent)}
}

type DeviceConfig struct {
	FramesPerBuffer int `yaml:"frames_per_buffer"`
}

// Default returns the settings used for anything the file leaves out.
func Default() *Config {
	return &Config{
		LogLevel: LogInfo,
		STFT: STFTConfig{
			WindowSize: spectral.DefaultWindowSize,
			HopSize:    spectral.DefaultHopSize,
		},
		Mask: MaskConfig{
			Kind:        mask.KindBinary.String(),
			ThresholdDB: mask.DefaultThreshold,
			Exponent:    mask.DefaultExponent,
		},
		Device: DeviceConfig{FramesPerBuffer: 1024},
	}
}
