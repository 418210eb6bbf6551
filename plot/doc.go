// SPDX-License-Identifier: EPL-2.0

// Package plot describes what a signal wants drawn and draws it with
// gonum/plot.
//
// Waves and spectra produce a Figure of stacked line panels; spectrograms
// and masks produce a Heatmap. A Renderer turns either into pixels. PNG
// lays requests out with gonum.org/v1/plot (axes, labels, titles, legends
// and colour bars) and writes them through vgimg. Colormaps become
// palette.ColorMap values, so they also work with other gonum plotters.
//
// Heat maps are built through HeatmapOption values shared by every
// HeatmapSource, so the same options configure a spectrogram and a mask:
//
//	h := spec.Heatmap(plot.WithColormap(plot.Gray), plot.WithTitle("mix"))
//	err := plot.NewPNG(file, 800, 400).Heatmap(h)
package plot
