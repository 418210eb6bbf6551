// SPDX-License-Identifier: EPL-2.0

package plot

import (
	"image/color"

	"github.com/ik5/untwist/buffer"
)

// Line is one curve of a panel.
type Line struct {
	Label string
	X     []float64
	Y     []float64
}

// Panel is a set of lines sharing axes.
type Panel struct {
	XLabel string
	YLabel string
	Lines  []Line
}

// Figure is a stack of panels sharing the x axis.
type Figure struct {
	Title  string
	Panels []Panel
}

// Heatmap is a request to draw Data as an image. Row 0 of Data is drawn at
// the bottom, at Extent[2] on the y axis.
type Heatmap struct {
	Data     *buffer.Real
	Colormap Colormap

	// Values are clamped to [Floor, Ceiling] before colouring.
	Floor   float64
	Ceiling float64

	// Extent is [x0, x1, y0, y1] in axis units: seconds and Hz.
	Extent [4]float64

	Colorbar bool
	LabelX   bool
	LabelY   bool
	Title    string
}

// HeatmapConfig collects the caller-tunable parts of a heat-map request
// before the data is computed.
type HeatmapConfig struct {
	Colormap Colormap
	MinFreq  float64
	// MaxFreq of 0 means half the sample rate.
	MaxFreq float64

	LabelX   bool
	LabelY   bool
	Title    string
	Colorbar bool
	LogScale bool

	// Overlay, when set, draws a transparent-to-Overlay gradient meant to
	// be composited over another plot.
	Overlay color.Color
}

// HeatmapOption tunes a HeatmapConfig.
type HeatmapOption func(*HeatmapConfig)

// HeatmapSource is anything that can be drawn as a heat map.
type HeatmapSource interface {
	Heatmap(opts ...HeatmapOption) Heatmap
}

// Renderer draws requests.
type Renderer interface {
	Figure(f Figure) error
	Heatmap(h Heatmap) error
}

// Apply runs opts over a copy of cfg.
func (cfg HeatmapConfig) Apply(opts ...HeatmapOption) HeatmapConfig {
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func WithColormap(c Colormap) HeatmapOption {
	return func(cfg *HeatmapConfig) { cfg.Colormap = c }
}

// WithFreqRange sets the y extent in Hz.
func WithFreqRange(lo, hi float64) HeatmapOption {
	return func(cfg *HeatmapConfig) {
		cfg.MinFreq = lo
		cfg.MaxFreq = hi
	}
}

func WithLabels(x, y bool) HeatmapOption {
	return func(cfg *HeatmapConfig) {
		cfg.LabelX = x
		cfg.LabelY = y
	}
}

func WithTitle(title string) HeatmapOption {
	return func(cfg *HeatmapConfig) { cfg.Title = title }
}

func WithColorbar(on bool) HeatmapOption {
	return func(cfg *HeatmapConfig) { cfg.Colorbar = on }
}

// WithLogScale selects decibel display for magnitude data.
func WithLogScale(on bool) HeatmapOption {
	return func(cfg *HeatmapConfig) { cfg.LogScale = on }
}

// WithOverlay draws the map as an overlay fading from transparent to c.
func WithOverlay(c color.Color) HeatmapOption {
	return func(cfg *HeatmapConfig) { cfg.Overlay = c }
}
