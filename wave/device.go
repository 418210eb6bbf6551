// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"context"
	"fmt"
	"runtime"
	"time"
)

// Recording defaults used when Record is given zero values.
// DefaultSampleRate also applies to waves built without a rate.
const (
	DefaultRecordSeconds  = 10
	DefaultRecordChannels = 2
	DefaultSampleRate     = 44100
)

// StopFunc is polled by drivers; returning true ends playback or
// recording early.
type StopFunc func() bool

// Stream is an active playback session.
type Stream interface {
	Close() error
}

// Waiter is implemented by streams that report the end of playback.
type Waiter interface {
	Done() <-chan struct{}
}

// Driver talks to audio hardware.
type Driver interface {
	// Play starts playing interleaved samples and returns without waiting
	// for playback to finish.
	Play(samples []float32, channels, sampleRate int, stop StopFunc) (Stream, error)

	// Record blocks until maxSeconds have been captured, stop returns
	// true, or ctx is done, and returns interleaved samples.
	Record(ctx context.Context, maxSeconds float64, channels, sampleRate int, stop StopFunc) ([]float32, error)
}

// Play starts playback through d and keeps the stream on w. It does
// nothing while w is already playing.
func (w *Wave) Play(d Driver, stop StopFunc) error {
	if w.stream != nil {
		return nil
	}
	if d == nil {
		return ErrNoDriver
	}

	s, err := d.Play(w.Interleaved32(), w.NumChannels(), w.SampleRate(), stop)
	if err != nil {
		return fmt.Errorf("starting playback: %w", err)
	}

	w.stream = s
	// release the device if w is dropped while still playing
	w.cleanup = runtime.AddCleanup(w, func(s Stream) { _ = s.Close() }, s)

	return nil
}

// Playing reports whether w holds a playback stream.
func (w *Wave) Playing() bool { return w.stream != nil }

// Stop closes the playback stream. The stream is forgotten even when
// closing fails.
func (w *Wave) Stop() error {
	if w.stream == nil {
		return nil
	}

	s := w.stream
	w.stream = nil
	w.cleanup.Stop()

	if err := s.Close(); err != nil {
		return fmt.Errorf("stopping playback: %w", err)
	}
	return nil
}

// Wait blocks until playback ends or ctx is done, and returns ctx.Err()
// in the latter case. Streams that are not a Waiter are given the
// duration of w. Wait does not stop playback.
func (w *Wave) Wait(ctx context.Context) error {
	if w.stream == nil {
		return nil
	}

	if wt, ok := w.stream.(Waiter); ok {
		select {
		case <-wt.Done():
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	t := time.NewTimer(w.Duration())
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close is Stop, for use with defer.
func (w *Wave) Close() error { return w.Stop() }

// Record captures a new wave through d. Zero arguments take the
// Default* values.
func Record(ctx context.Context, d Driver, maxSeconds float64, channels, sampleRate int, stop StopFunc) (*Wave, error) {
	if d == nil {
		return nil, ErrNoDriver
	}
	if maxSeconds <= 0 {
		maxSeconds = DefaultRecordSeconds
	}
	if channels <= 0 {
		channels = DefaultRecordChannels
	}
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}

	samples, err := d.Record(ctx, maxSeconds, channels, sampleRate, stop)
	if err != nil {
		return nil, fmt.Errorf("recording: %w", err)
	}

	return fromInterleaved32(samples, channels, sampleRate), nil
}
