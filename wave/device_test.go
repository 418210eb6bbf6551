// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStream struct {
	closed int
	err    error
}

func (s *fakeStream) Close() error {
	s.closed++
	return s.err
}

type fakeDriver struct {
	plays    int
	played   []float32
	channels int
	rate     int
	stream   *fakeStream
	playErr  error

	recorded []float32
	recArgs  [3]float64
}

func (d *fakeDriver) Play(samples []float32, channels, rate int, _ StopFunc) (Stream, error) {
	if d.playErr != nil {
		return nil, d.playErr
	}
	d.plays++
	d.played, d.channels, d.rate = samples, channels, rate
	return d.stream, nil
}

func (d *fakeDriver) Record(ctx context.Context, maxSeconds float64, channels, rate int, stop StopFunc) ([]float32, error) {
	d.recArgs = [3]float64{maxSeconds, float64(channels), float64(rate)}
	if stop != nil && stop() {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return d.recorded, nil
}

func TestPlayStop(t *testing.T) {
	t.Parallel()

	d := &fakeDriver{stream: &fakeStream{}}
	w := stereo(8000, [2]float64{0.5, -0.5})

	require.NoError(t, w.Play(d, nil))
	assert.True(t, w.Playing())
	assert.Equal(t, []float32{0.5, -0.5}, d.played)
	assert.Equal(t, 2, d.channels)
	assert.Equal(t, 8000, d.rate)

	require.NoError(t, w.Play(d, nil), "second Play is a no-op")
	assert.Equal(t, 1, d.plays)

	require.NoError(t, w.Stop())
	assert.False(t, w.Playing())
	assert.Equal(t, 1, d.stream.closed)

	require.NoError(t, w.Stop(), "Stop without a stream")
	assert.Equal(t, 1, d.stream.closed)
}

func TestStop_ForgetsStreamOnError(t *testing.T) {
	t.Parallel()

	boom := errors.New("device gone")
	d := &fakeDriver{stream: &fakeStream{err: boom}}
	w := FromSamples([]float64{0}, 8000)

	require.NoError(t, w.Play(d, nil))
	require.ErrorIs(t, w.Close(), boom)
	assert.False(t, w.Playing())

	require.NoError(t, w.Play(d, nil))
	assert.Equal(t, 2, d.plays)
}

func TestPlay_Errors(t *testing.T) {
	t.Parallel()

	w := FromSamples([]float64{0}, 8000)
	require.ErrorIs(t, w.Play(nil, nil), ErrNoDriver)

	boom := errors.New("busy")
	require.ErrorIs(t, w.Play(&fakeDriver{playErr: boom}, nil), boom)
	assert.False(t, w.Playing())
}

func TestDerivedWaveDoesNotPlay(t *testing.T) {
	t.Parallel()

	w := FromSamples([]float64{1}, 8000)
	require.NoError(t, w.Play(&fakeDriver{stream: &fakeStream{}}, nil))
	defer w.Close()

	assert.False(t, w.Scale(2).Playing())
}

func TestRecord(t *testing.T) {
	t.Parallel()

	d := &fakeDriver{recorded: []float32{0.25, -0.25, 0.5, -0.5}}
	w, err := Record(context.Background(), d, 0, 0, 0, nil)
	require.NoError(t, err)

	assert.Equal(t, [3]float64{10, 2, 44100}, d.recArgs)
	assert.Equal(t, 44100, w.SampleRate())
	assert.Equal(t, 2, w.NumChannels())
	assert.Equal(t, []float64{0.25, 0.5}, w.Channel(0))

	w, err = Record(context.Background(), d, 1.5, 1, 8000, func() bool { return true })
	require.NoError(t, err)
	assert.Equal(t, [3]float64{1.5, 1, 8000}, d.recArgs)
	assert.Zero(t, w.NumFrames())
	assert.Equal(t, 1, w.NumChannels())
}

func TestRecord_Errors(t *testing.T) {
	t.Parallel()

	_, err := Record(context.Background(), nil, 1, 1, 8000, nil)
	require.ErrorIs(t, err, ErrNoDriver)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Record(ctx, &fakeDriver{}, 1, 1, 8000, nil)
	require.ErrorIs(t, err, context.Canceled)
}

type waitingStream struct {
	fakeStream
	done chan struct{}
}

func (s *waitingStream) Done() <-chan struct{} { return s.done }

type waitingDriver struct {
	fakeDriver
	ws *waitingStream
}

func (d *waitingDriver) Play([]float32, int, int, StopFunc) (Stream, error) {
	return d.ws, nil
}

func TestWait(t *testing.T) {
	t.Parallel()

	w := FromSamples(make([]float64, 8), 8000)
	require.NoError(t, w.Wait(context.Background()), "not playing")

	require.NoError(t, w.Play(&fakeDriver{stream: &fakeStream{}}, nil))
	require.NoError(t, w.Wait(context.Background()), "falls back to the duration")
	require.NoError(t, w.Stop())

	ws := &waitingStream{done: make(chan struct{})}
	require.NoError(t, w.Play(&waitingDriver{ws: ws}, nil))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, w.Wait(ctx), context.Canceled)
	assert.True(t, w.Playing(), "Wait does not stop")

	close(ws.done)
	require.NoError(t, w.Wait(context.Background()))
	require.NoError(t, w.Stop())
	assert.Equal(t, 1, ws.closed)
}
