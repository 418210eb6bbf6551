// SPDX-License-Identifier: EPL-2.0

package plot

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot/palette"
)

// Colormap names a list of evenly spaced colour stops. ColorMap turns it
// into a palette.ColorMap over a value range.
type Colormap struct {
	Name  string
	Stops []color.NRGBA
}

var (
	// CMRmap is matplotlib's CMRmap, which stays readable in greyscale.
	CMRmap = Colormap{Name: "CMRmap", Stops: []color.NRGBA{
		rgb(0.00, 0.00, 0.00),
		rgb(0.15, 0.15, 0.50),
		rgb(0.30, 0.15, 0.75),
		rgb(0.60, 0.20, 0.50),
		rgb(1.00, 0.25, 0.15),
		rgb(0.90, 0.50, 0.00),
		rgb(0.90, 0.75, 0.10),
		rgb(0.90, 0.90, 0.50),
		rgb(1.00, 1.00, 1.00),
	}}

	Gray = Gradient(color.Black, color.White).named("gray")

	// WhiteToBlack is used for standalone masks.
	WhiteToBlack = Gradient(color.White, color.Black).named("white-black")
)

var builtin = map[string]Colormap{
	CMRmap.Name:       CMRmap,
	Gray.Name:         Gray,
	WhiteToBlack.Name: WhiteToBlack,
}

func rgb(r, g, b float64) color.NRGBA {
	return color.NRGBA{R: channel(r), G: channel(g), B: channel(b), A: 255}
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// Named looks up a built-in colormap.
func Named(name string) (Colormap, bool) {
	c, ok := builtin[name]
	return c, ok
}

// Gradient builds an unnamed colormap through the given colours.
func Gradient(stops ...color.Color) Colormap {
	c := Colormap{Stops: make([]color.NRGBA, len(stops))}
	for i, s := range stops {
		c.Stops[i] = color.NRGBAModel.Convert(s).(color.NRGBA)
	}
	return c
}

func (c Colormap) named(name string) Colormap {
	c.Name = name
	return c
}

// FadeIn is a gradient from a fully transparent c to c.
func FadeIn(c color.Color) Colormap {
	solid := color.NRGBAModel.Convert(c).(color.NRGBA)
	faded := solid
	faded.A = 0
	return Gradient(faded, solid)
}

// ColorMap maps [lo, hi] onto the stops of c.
func (c Colormap) ColorMap(lo, hi float64) palette.ColorMap {
	return &gradient{stops: c.Stops, min: lo, max: hi, alpha: 1}
}

// gradient interpolates linearly between evenly spaced stops.
type gradient struct {
	stops    []color.NRGBA
	min, max float64
	alpha    float64
}

func (g *gradient) At(v float64) (color.Color, error) {
	switch {
	case math.IsNaN(v):
		return nil, palette.ErrNaN
	case v < g.min:
		return nil, palette.ErrUnderflow
	case v > g.max:
		return nil, palette.ErrOverflow
	}

	t := 0.0
	if g.max > g.min {
		t = (v - g.min) / (g.max - g.min)
	}

	c := g.interpolate(t)
	c.A = uint8(math.Round(float64(c.A) * g.alpha))
	return c, nil
}

func (g *gradient) interpolate(t float64) color.NRGBA {
	switch len(g.stops) {
	case 0:
		return color.NRGBA{}
	case 1:
		return g.stops[0]
	}

	pos := t * float64(len(g.stops)-1)
	i := min(int(pos), len(g.stops)-2)
	frac := pos - float64(i)
	a, b := g.stops[i], g.stops[i+1]

	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*frac))
	}
	return color.NRGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

func (g *gradient) Max() float64     { return g.max }
func (g *gradient) SetMax(v float64) { g.max = v }
func (g *gradient) Min() float64     { return g.min }
func (g *gradient) SetMin(v float64) { g.min = v }
func (g *gradient) Alpha() float64   { return g.alpha }

func (g *gradient) SetAlpha(a float64) {
	if a < 0 || a > 1 {
		panic(fmt.Sprintf("plot: alpha %g out of [0, 1]", a))
	}
	g.alpha = a
}

// Palette samples n colours from min to max.
func (g *gradient) Palette(n int) palette.Palette {
	if n <= 0 {
		return colors(nil)
	}

	out := make(colors, n)
	for i := range out {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		c := g.interpolate(t)
		c.A = uint8(math.Round(float64(c.A) * g.alpha))
		out[i] = c
	}
	return out
}

type colors []color.Color

func (c colors) Colors() []color.Color { return c }
