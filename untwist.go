// SPDX-License-Identifier: EPL-2.0

package untwist

import (
	"fmt"
	"sync"

	"github.com/ik5/untwist/audio"
	"github.com/ik5/untwist/formats/aiff"
	"github.com/ik5/untwist/formats/mp3"
	"github.com/ik5/untwist/formats/vorbis"
	"github.com/ik5/untwist/formats/wav"
	"github.com/ik5/untwist/wave"
)

var (
	defaultRegistry     *audio.Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry knows every bundled format by file extension. WAV and
// AIFF can be written as well as read.
func DefaultRegistry() *audio.Registry {
	defaultRegistryOnce.Do(func() {
		reg := audio.NewRegistry()

		reg.Register("wav", wav.Decoder{})
		reg.Register("wave", wav.Decoder{})
		reg.Register("mp3", mp3.Decoder{})
		reg.Register("ogg", vorbis.Decoder{})
		reg.Register("oga", vorbis.Decoder{})
		reg.Register("aiff", aiff.Decoder{})
		reg.Register("aif", aiff.Decoder{})

		reg.RegisterEncoder("wav", wav.Encoder{})
		reg.RegisterEncoder("wave", wav.Encoder{})
		reg.RegisterEncoder("aiff", aiff.Encoder{})
		reg.RegisterEncoder("aif", aiff.Encoder{})

		defaultRegistry = reg
	})
	return defaultRegistry
}

// Open reads the audio file at path.
func Open(path string) (*wave.Wave, error) {
	return wave.ReadFile(path, DefaultRegistry())
}

// OpenMono reads path, averages its channels and, when rate is positive,
// resamples it to rate.
func OpenMono(path string, rate int) (*wave.Wave, error) {
	w, err := Open(path)
	if err != nil {
		return nil, err
	}

	w, err = w.Downmix()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if rate > 0 && rate != w.SampleRate() {
		w, err = w.Resample(rate)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	return w, nil
}

// Save writes w to path in the format named by its extension.
func Save(w *wave.Wave, path string) error {
	return w.WriteFile(path, DefaultRegistry())
}
