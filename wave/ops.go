// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"fmt"

	"github.com/ik5/untwist/buffer"
)

// Normalize divides every channel by its maximum value. The maximum is
// signed, not absolute, and a zero maximum is not guarded against.
func (w *Wave) Normalize() *Wave {
	return derived(buffer.DivCols(w.data, buffer.ColMax(w.data)))
}

// ZeroPad returns w with start silent frames before it and end after it.
func (w *Wave) ZeroPad(start, end int) *Wave {
	if start < 0 || end < 0 {
		panic(buffer.ErrShape)
	}

	head := buffer.Zeros[float64](start, w.NumChannels())
	tail := buffer.Zeros[float64](end, w.NumChannels())

	out := buffer.ConcatRows(head, w.data, tail)
	out.Meta = w.data.Meta
	return derived(out)
}

// Mix normalizes each wave, scales it by 1/len(waves) and sums the result.
// A single wave comes back normalized. Waves must agree on frame and
// channel count. The result has the sample rate of the first wave.
func Mix(waves ...*Wave) (*Wave, error) {
	if len(waves) == 0 {
		return nil, fmt.Errorf("%w: nothing to mix", ErrArgument)
	}
	if len(waves) == 1 {
		return waves[0].Normalize(), nil
	}

	frames, channels := waves[0].data.Dims()
	for _, w := range waves[1:] {
		if f, c := w.data.Dims(); f != frames || c != channels {
			return nil, fmt.Errorf("%w: inputs should have the same shape", ErrArgument)
		}
	}

	n := float64(len(waves))
	mixed := buffer.Zeros[float64](frames, channels)
	for _, w := range waves {
		mixed = buffer.Add(mixed, buffer.Scale(w.Normalize().data, 1/n))
	}
	mixed.Meta = waves[0].data.Meta

	return derived(mixed), nil
}
