// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
)

type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples, nominally in
	// [-1,1]; float containers may carry values beyond that.
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	BufSize() int

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Clip is a fully decoded stream with interleaved samples.
//
// Exactly one of PCM16 and Samples is set: PCM16 when the container stores
// 16-bit signed integers, Samples for everything else.
type Clip struct {
	SampleRate int
	Channels   int

	PCM16   []int16
	Samples []float64
}

// Frames returns the number of sample frames in c.
func (c *Clip) Frames() int {
	if c.Channels <= 0 {
		return 0
	}

	if c.PCM16 != nil {
		return len(c.PCM16) / c.Channels
	}
	return len(c.Samples) / c.Channels
}

// ClipDecoder is implemented by decoders that can hand out the stored
// samples of a whole stream without converting them.
type ClipDecoder interface {
	DecodeClip(r io.Reader) (*Clip, error)
}

// Encoder writes a Clip to w. Values in c are written as given: no gain is
// applied.
type Encoder interface {
	Encode(w io.Writer, c *Clip) error
}

// ReadAll drains src into a Clip of float samples. It does not close src.
func ReadAll(src Source) (*Clip, error) {
	channels := src.Channels()
	if channels <= 0 {
		return nil, ErrNoChannels
	}

	size := src.BufSize()
	if size < channels {
		size = 4096
	}
	size -= size % channels

	clip := &Clip{SampleRate: src.SampleRate(), Channels: channels, Samples: []float64{}}
	buf := make([]float32, size)

	for {
		n, err := src.ReadSamples(buf)
		for _, v := range buf[:n] {
			clip.Samples = append(clip.Samples, float64(v))
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		if n == 0 {
			break
		}
	}

	// drop a trailing partial frame
	clip.Samples = clip.Samples[:len(clip.Samples)-len(clip.Samples)%channels]

	return clip, nil
}

// Decode reads a whole stream from r. Decoders implementing ClipDecoder
// are asked for their stored samples; others are drained through their
// Source.
func Decode(d Decoder, r io.Reader) (*Clip, error) {
	if cd, ok := d.(ClipDecoder); ok {
		clip, err := cd.DecodeClip(r)
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		return clip, nil
	}

	src, err := d.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer src.Close()

	return ReadAll(src)
}

// Registry for decoders and encoders by format key (e.g., "wav", "mp3", "ogg").
type Registry struct {
	codecs   map[string]Decoder
	encoders map[string]Encoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs:   make(map[string]Decoder),
		encoders: make(map[string]Encoder),
		mtx:      &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}

// RegisterEncoder adds or replaces the encoder for format.
func (r *Registry) RegisterEncoder(format string, e Encoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.encoders[format] = e
}

// Encoder returns the encoder registered for format.
func (r *Registry) Encoder(format string) (Encoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	e, ok := r.encoders[format]
	return e, ok
}

// DecoderFor returns the decoder matching the extension of path.
func (r *Registry) DecoderFor(path string) (Decoder, error) {
	format := FormatOf(path)
	d, ok := r.Get(format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return d, nil
}

// EncoderFor returns the encoder matching the extension of path.
func (r *Registry) EncoderFor(path string) (Encoder, error) {
	format := FormatOf(path)
	e, ok := r.Encoder(format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return e, nil
}

// FormatOf returns the lower-cased extension of path without the dot.
func FormatOf(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}
