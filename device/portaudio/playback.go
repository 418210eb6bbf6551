// SPDX-License-Identifier: EPL-2.0

package portaudio

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ik5/untwist/wave"
)

// playback feeds one output stream from its own goroutine.
type playback struct {
	d       *Driver
	s       stream
	buf     []float32
	samples []float32
	stop    wave.StopFunc

	quitOnce sync.Once
	quit     chan struct{}
	done     chan struct{}

	// set before done is closed
	err error
}

func (p *playback) run() {
	defer close(p.done)
	defer p.d.forget(p)

	err := p.write()
	if cerr := errors.Join(p.s.Stop(), p.s.Close()); cerr != nil && err == nil {
		err = fmt.Errorf("closing output stream: %w", cerr)
	}

	if err != nil {
		p.d.logError("playback failed", err)
		p.err = err
		return
	}
	p.d.logger.Debug("playback finished")
}

func (p *playback) write() error {
	for off := 0; off < len(p.samples); off += len(p.buf) {
		select {
		case <-p.quit:
			return nil
		default:
		}
		if p.stop != nil && p.stop() {
			return nil
		}

		n := copy(p.buf, p.samples[off:])
		clear(p.buf[n:])

		if err := p.s.Write(); err != nil {
			return fmt.Errorf("writing output stream: %w", err)
		}
	}
	return nil
}

// Done is closed once the device has been released.
func (p *playback) Done() <-chan struct{} { return p.done }

// Close stops playback and waits for the stream to close.
func (p *playback) Close() error {
	p.quitOnce.Do(func() { close(p.quit) })
	<-p.done
	return p.err
}
