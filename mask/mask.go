// SPDX-License-Identifier: EPL-2.0

package mask

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/ik5/untwist/buffer"
	"github.com/ik5/untwist/plot"
	"github.com/ik5/untwist/spectral"
)

// Kind tells how a mask was built.
type Kind int

const (
	KindBinary Kind = iota
	KindRatio
)

func (k Kind) String() string {
	switch k {
	case KindBinary:
		return "binary"
	case KindRatio:
		return "ratio"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind accepts "binary" or "ratio", in any case.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "binary":
		return KindBinary, nil
	case "ratio":
		return KindRatio, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Default builder parameters.
const (
	DefaultThreshold = 0.0
	DefaultExponent  = 1.0
)

// DefaultOverlay is the colour of a mask drawn over another plot.
var DefaultOverlay = color.NRGBA{R: 255, A: 128}

type options struct {
	threshold float64
	exponent  float64
}

// Option tunes a mask builder.
type Option func(*options)

// WithThreshold sets the dB margin a binary mask cell must exceed.
func WithThreshold(db float64) Option {
	return func(o *options) { o.threshold = db }
}

// WithExponent sets the exponent of a ratio mask.
func WithExponent(p float64) Option {
	return func(o *options) { o.exponent = p }
}

func newOptions(opts []Option) options {
	o := options{threshold: DefaultThreshold, exponent: DefaultExponent}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Mask is a real-valued bins x frames grid in [0, 1].
type Mask struct {
	kind Kind
	data *buffer.Real
}

// Binary marks the cells where 20*log10(|target|/|background|) is strictly
// above the threshold.
func Binary(target, background *spectral.Spectrogram, opts ...Option) (*Mask, error) {
	o := newOptions(opts)

	tm, bm, err := magnitudes(target, background)
	if err != nil {
		return nil, err
	}

	data := buffer.Map(buffer.Div(tm, bm), func(r float64) float64 {
		if 20*math.Log10(r) > o.threshold {
			return 1
		}
		return 0
	})
	data.Meta = target.Meta()

	return &Mask{kind: KindBinary, data: data}, nil
}

// Ratio computes |target|^p / (|target| + |background|)^p per cell.
func Ratio(target, background *spectral.Spectrogram, opts ...Option) (*Mask, error) {
	o := newOptions(opts)

	tm, bm, err := magnitudes(target, background)
	if err != nil {
		return nil, err
	}

	sum := buffer.Add(tm, bm)
	if o.exponent != 1 {
		pow := func(v float64) float64 { return math.Pow(v, o.exponent) }
		tm, sum = buffer.Map(tm, pow), buffer.Map(sum, pow)
	}
	data := buffer.Div(tm, sum)
	data.Meta = target.Meta()

	return &Mask{kind: KindRatio, data: data}, nil
}

// Build dispatches on kind.
func Build(kind Kind, target, background *spectral.Spectrogram, opts ...Option) (*Mask, error) {
	switch kind {
	case KindBinary:
		return Binary(target, background, opts...)
	case KindRatio:
		return Ratio(target, background, opts...)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
}

func magnitudes(target, background *spectral.Spectrogram) (tm, bm *buffer.Real, err error) {
	if target.NumBins() != background.NumBins() || target.NumFrames() != background.NumFrames() {
		return nil, nil, fmt.Errorf("%w: target is %dx%d, background is %dx%d", ErrGeometry,
			target.NumBins(), target.NumFrames(), background.NumBins(), background.NumFrames())
	}

	tm = buffer.AddScalar(target.Magnitude(), spectral.Eps)
	bm = buffer.AddScalar(background.Magnitude(), spectral.Eps)
	return tm, bm, nil
}

// Apply multiplies every cell of spec by the matching mask value. The
// result keeps the metadata of spec.
func Apply(spec *spectral.Spectrogram, m *Mask) (*spectral.Spectrogram, error) {
	bins, frames := m.Dims()
	if spec.NumBins() != bins || spec.NumFrames() != frames {
		return nil, fmt.Errorf("%w: spectrogram is %dx%d, mask is %dx%d", ErrGeometry,
			spec.NumBins(), spec.NumFrames(), bins, frames)
	}

	return spec.MulReal(m.data), nil
}

func (m *Mask) Kind() Kind { return m.kind }

// Data returns a copy of the mask values.
func (m *Mask) Data() *buffer.Real { return m.data.Clone() }

// At returns the value at bin k of frame t.
func (m *Mask) At(k, t int) float64 { return m.data.At(k, t) }

// Dims returns bins and frames.
func (m *Mask) Dims() (bins, frames int) { return m.data.Dims() }

func (m *Mask) SampleRate() int { return m.data.Meta.SampleRate }
func (m *Mask) WindowSize() int { return m.data.Meta.WindowSize }
func (m *Mask) HopSize() int    { return m.data.Meta.HopSize }

// Spectrogram returns the mask as a spectrogram with zero phase.
func (m *Mask) Spectrogram() *spectral.Spectrogram {
	return spectral.NewSpectrogram(buffer.ToComplex(m.data))
}

// Overlay switches a mask heat map to a transparent-to-DefaultOverlay
// gradient.
func Overlay() plot.HeatmapOption {
	return plot.WithOverlay(DefaultOverlay)
}

// Heatmap draws the mask values white to black, or as a fade-in of the
// overlay colour when one is set. Colorbar and log scaling are always off.
func (m *Mask) Heatmap(opts ...plot.HeatmapOption) plot.Heatmap {
	cfg := plot.HeatmapConfig{
		Colormap: plot.WhiteToBlack,
		LabelX:   true,
		LabelY:   true,
	}.Apply(opts...)
	cfg.Colorbar = false
	cfg.LogScale = false

	return m.Spectrogram().HeatmapWith(cfg)
}

var _ plot.HeatmapSource = (*Mask)(nil)
