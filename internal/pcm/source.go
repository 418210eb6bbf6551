// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
)

// IntReader is the part of the go-audio WAV and AIFF decoders used here.
type IntReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source adapts an IntReader to a float32 sample stream divided by
// Divisor. It satisfies audio.Source.
type Source struct {
	dec        IntReader
	sampleRate int
	channels   int
	scale      float32
	intBuf     *goaudio.IntBuffer
}

// NewSource wraps dec, whose samples are bitDepth-bit signed integers.
func NewSource(dec IntReader, bitDepth int) *Source {
	format := dec.Format()
	return &Source{
		dec:        dec,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		scale:      float32(Divisor(bitDepth)),
	}
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) Close() error    { return nil }

func (s *Source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096
}

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.dec.Format(),
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	// go-audio reports the end of data as n == 0 with a nil error
	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil {
			return 0, fmt.Errorf("%w", err)
		}
		return 0, io.EOF
	}

	for i := range n {
		dst[i] = float32(s.intBuf.Data[i]) / s.scale
	}

	if err != nil {
		return n, fmt.Errorf("%w", err)
	}
	if n < len(dst) {
		return n, io.EOF
	}
	return n, nil
}

// ReadInts drains dec and returns every stored sample.
func ReadInts(dec IntReader) ([]int, error) {
	buf := &goaudio.IntBuffer{Data: make([]int, 8192), Format: dec.Format()}
	var out []int

	for {
		n, err := dec.PCMBuffer(buf)
		out = append(out, buf.Data[:n]...)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w", err)
		}
		if n == 0 || err != nil {
			return out, nil
		}
	}
}

// Int16s narrows samples already known to be 16-bit.
func Int16s(in []int) []int16 {
	out := make([]int16, len(in))
	for i, v := range in {
		out[i] = int16(v)
	}
	return out
}

// Scaled converts bitDepth-bit integer samples to floats in (-1, 1].
func Scaled(in []int, bitDepth int) []float64 {
	scale := Divisor(bitDepth)
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = float64(v) / scale
	}
	return out
}
