// SPDX-License-Identifier: EPL-2.0

package portaudio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"

	pa "github.com/gordonklaus/portaudio"
	"github.com/mdobak/go-xerrors"

	"github.com/ik5/untwist/wave"
)

// DefaultFramesPerBuffer is the block size of a stream in frames.
const DefaultFramesPerBuffer = 1024

// stream is the blocking part of *pa.Stream that the driver uses.
type stream interface {
	Start() error
	Stop() error
	Close() error
	Read() error
	Write() error
}

type backend struct {
	initialize func() error
	terminate  func() error
	open       func(in, out int, sampleRate float64, framesPerBuffer int, buf []float32) (stream, error)
}

var defaultBackend = backend{
	initialize: pa.Initialize,
	terminate:  pa.Terminate,
	open: func(in, out int, sampleRate float64, framesPerBuffer int, buf []float32) (stream, error) {
		s, err := pa.OpenDefaultStream(in, out, sampleRate, framesPerBuffer, buf)
		if err != nil {
			return nil, err
		}
		return s, nil
	},
}

// Driver implements wave.Driver on the default input and output devices.
type Driver struct {
	logger          *slog.Logger
	framesPerBuffer int
	be              backend

	mu      sync.Mutex
	closed  bool
	playing map[*playback]struct{}
}

// Option configures a Driver.
type Option func(*Driver)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(d *Driver) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithFramesPerBuffer sets the stream block size. Values below one are
// ignored.
func WithFramesPerBuffer(n int) Option {
	return func(d *Driver) {
		if n > 0 {
			d.framesPerBuffer = n
		}
	}
}

func withBackend(be backend) Option {
	return func(d *Driver) { d.be = be }
}

// New initializes PortAudio.
func New(opts ...Option) (*Driver, error) {
	d := &Driver{
		logger:          slog.Default(),
		framesPerBuffer: DefaultFramesPerBuffer,
		be:              defaultBackend,
		playing:         make(map[*playback]struct{}),
	}
	for _, opt := range opts {
		opt(d)
	}

	if err := d.be.initialize(); err != nil {
		return nil, fmt.Errorf("initializing portaudio: %w", err)
	}

	d.logger.Debug("portaudio initialized", slog.Int("frames_per_buffer", d.framesPerBuffer))
	return d, nil
}

// FramesPerBuffer is the block size of the streams the driver opens.
func (d *Driver) FramesPerBuffer() int { return d.framesPerBuffer }

// Close stops every playback still running and terminates PortAudio.
// Calling it again does nothing.
func (d *Driver) Close() error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	active := make([]*playback, 0, len(d.playing))
	for p := range d.playing {
		active = append(active, p)
	}
	d.mu.Unlock()

	var errs []error
	for _, p := range active {
		errs = append(errs, p.Close())
	}
	if err := d.be.terminate(); err != nil {
		errs = append(errs, fmt.Errorf("terminating portaudio: %w", err))
	}

	return errors.Join(errs...)
}

func validate(channels, sampleRate int) error {
	if channels < 1 {
		return fmt.Errorf("%w: %d", ErrChannels, channels)
	}
	if sampleRate < 1 {
		return fmt.Errorf("%w: %d", ErrSampleRate, sampleRate)
	}
	return nil
}

// open starts a stream with a buffer of one block.
func (d *Driver) open(in, out, sampleRate int) (stream, []float32, error) {
	buf := make([]float32, d.framesPerBuffer*max(in, out))

	s, err := d.be.open(in, out, float64(sampleRate), d.framesPerBuffer, buf)
	if err != nil {
		return nil, nil, fmt.Errorf("opening stream: %w", err)
	}
	if err := s.Start(); err != nil {
		_ = s.Close()
		return nil, nil, fmt.Errorf("starting stream: %w", err)
	}
	return s, buf, nil
}

func (d *Driver) logError(msg string, err error) {
	d.logger.Error(msg, slog.Any("error", xerrors.New(err)))
}

// Play starts playing interleaved samples and returns at once. Closing the
// returned stream stops playback and waits for the device to be released.
func (d *Driver) Play(samples []float32, channels, sampleRate int, stop wave.StopFunc) (wave.Stream, error) {
	if err := validate(channels, sampleRate); err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil, ErrClosed
	}

	s, buf, err := d.open(0, channels, sampleRate)
	if err != nil {
		d.logError("playback failed to start", err)
		return nil, err
	}

	p := &playback{
		d:       d,
		s:       s,
		buf:     buf,
		samples: samples,
		stop:    stop,
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	d.playing[p] = struct{}{}

	d.logger.Debug("playback started",
		slog.Int("frames", len(samples)/channels),
		slog.Int("channels", channels),
		slog.Int("sample_rate", sampleRate))

	go p.run()
	return p, nil
}

func (d *Driver) forget(p *playback) {
	d.mu.Lock()
	delete(d.playing, p)
	d.mu.Unlock()
}

// Record captures up to maxSeconds of interleaved audio. It returns what
// was captured when stop reports true or ctx is done.
func (d *Driver) Record(ctx context.Context, maxSeconds float64, channels, sampleRate int, stop wave.StopFunc) ([]float32, error) {
	if err := validate(channels, sampleRate); err != nil {
		return nil, err
	}

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil, ErrClosed
	}
	s, buf, err := d.open(channels, 0, sampleRate)
	d.mu.Unlock()
	if err != nil {
		d.logError("recording failed to start", err)
		return nil, err
	}

	want := int(math.Ceil(maxSeconds*float64(sampleRate))) * channels
	out := make([]float32, 0, want)

	var readErr error
	for len(out) < want {
		if ctx.Err() != nil || (stop != nil && stop()) {
			break
		}

		if err := s.Read(); err != nil {
			if errors.Is(err, pa.InputOverflowed) {
				d.logger.Warn("input overflowed", slog.Int("captured", len(out)/channels))
			} else {
				readErr = fmt.Errorf("reading input stream: %w", err)
				break
			}
		}

		n := min(len(buf), want-len(out))
		out = append(out, buf[:n]...)
	}

	if err := errors.Join(s.Stop(), s.Close()); err != nil && readErr == nil {
		readErr = fmt.Errorf("closing input stream: %w", err)
	}
	if readErr != nil {
		d.logError("recording failed", readErr)
		return nil, readErr
	}

	d.logger.Debug("recording finished", slog.Int("frames", len(out)/channels))
	return out, nil
}

var _ wave.Driver = (*Driver)(nil)
