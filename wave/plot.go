// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"fmt"

	"github.com/ik5/untwist/plot"
)

// Plot returns one panel per channel against time in seconds.
func (w *Wave) Plot() plot.Figure {
	times := make([]float64, w.NumFrames())
	for i := range times {
		times[i] = float64(i) / float64(w.SampleRate())
	}

	fig := plot.Figure{Panels: make([]plot.Panel, w.NumChannels())}
	for c := range fig.Panels {
		fig.Panels[c] = plot.Panel{
			XLabel: plot.TimeLabel,
			Lines: []plot.Line{{
				Label: fmt.Sprintf("channel %d", c),
				X:     times,
				Y:     w.Channel(c),
			}},
		}
	}
	return fig
}
