// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ik5/untwist/mask"
	"github.com/ik5/untwist/stft"
)

// EnvPath names the environment variable holding a config file path.
const EnvPath = "UNTWIST_CONFIG"

// Load reads and validates the YAML file at path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes YAML from r over Default and validates the
// result. An empty document yields the defaults.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate returns every problem found in cfg, joined.
func Validate(cfg *Config) error {
	var errs []error

	if !cfg.LogLevel.IsValid() {
		errs = append(errs, fmt.Errorf("log_level %q is invalid; valid values: debug, info, warn, error", cfg.LogLevel))
	}

	s := stft.Config{WindowSize: cfg.STFT.WindowSize, HopSize: cfg.STFT.HopSize}
	if err := s.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("stft: %w", err))
	}

	if _, err := mask.ParseKind(cfg.Mask.Kind); err != nil {
		errs = append(errs, fmt.Errorf("mask.kind: %w", err))
	}
	if cfg.Mask.Exponent <= 0 {
		errs = append(errs, fmt.Errorf("mask.exponent %g must be positive", cfg.Mask.Exponent))
	}

	if cfg.Device.FramesPerBuffer <= 0 {
		errs = append(errs, fmt.Errorf("device.frames_per_buffer %d must be positive", cfg.Device.FramesPerBuffer))
	}

	return errors.Join(errs...)
}
