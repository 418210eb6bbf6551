// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// FloatBits reports whether bits is a supported IEEE float sample width.
func FloatBits(bits int) bool {
	return bits == 32 || bits == 64
}

func floatAt(b []byte, order binary.ByteOrder, bits int) float64 {
	if bits == 32 {
		return float64(math.Float32frombits(order.Uint32(b)))
	}
	return math.Float64frombits(order.Uint64(b))
}

// ReadFloats reads IEEE float samples of the given width until r is
// exhausted. A trailing partial sample is dropped.
func ReadFloats(r io.Reader, order binary.ByteOrder, bits int) ([]float64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	size := bits / 8
	out := make([]float64, len(data)/size)
	for i := range out {
		out[i] = floatAt(data[i*size:], order, bits)
	}
	return out, nil
}

// AppendFloat64s appends samples to dst as 64-bit IEEE floats.
func AppendFloat64s(dst []byte, order binary.AppendByteOrder, samples []float64) []byte {
	for _, x := range samples {
		dst = order.AppendUint64(dst, math.Float64bits(x))
	}
	return dst
}

// FloatSource streams IEEE float samples as float32 without scaling. It
// satisfies audio.Source.
type FloatSource struct {
	r          io.Reader
	order      binary.ByteOrder
	bits       int
	sampleRate int
	channels   int
	raw        []byte
}

// NewFloatSource wraps r, which holds interleaved bits-wide floats.
func NewFloatSource(r io.Reader, order binary.ByteOrder, bits, sampleRate, channels int) *FloatSource {
	return &FloatSource{r: r, order: order, bits: bits, sampleRate: sampleRate, channels: channels}
}

func (s *FloatSource) SampleRate() int { return s.sampleRate }
func (s *FloatSource) Channels() int   { return s.channels }
func (s *FloatSource) Close() error    { return nil }
func (s *FloatSource) BufSize() int    { return 4096 }

func (s *FloatSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	size := s.bits / 8
	if cap(s.raw) < len(dst)*size {
		s.raw = make([]byte, len(dst)*size)
	}
	raw := s.raw[:len(dst)*size]

	m, err := io.ReadFull(s.r, raw)
	n := m / size
	for i := range n {
		dst[i] = float32(floatAt(raw[i*size:], s.order, s.bits))
	}

	switch {
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return n, io.EOF
	case err != nil:
		return n, fmt.Errorf("%w", err)
	}
	return n, nil
}
