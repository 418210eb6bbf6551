// SPDX-License-Identifier: EPL-2.0

package plot

import (
	"errors"
	"fmt"
	"io"
	"math"

	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

var (
	ErrEmpty     = errors.New("plot: nothing to draw")
	ErrImageSize = errors.New("plot: image size must be positive")
)

// Axis labels of heat maps.
const (
	TimeLabel      = "time (s)"
	FrequencyLabel = "frequency (Hz)"
)

// colorbarWidth is the strip kept to the right of a heat map for its
// colour bar, in points.
const colorbarWidth = 60

// PNG draws requests with gonum/plot and writes them as PNG images to W.
// One point is one pixel.
type PNG struct {
	W      io.Writer
	Width  int
	Height int
}

// NewPNG returns a renderer producing width x height images.
func NewPNG(w io.Writer, width, height int) *PNG {
	return &PNG{W: w, Width: width, Height: height}
}

func (p *PNG) canvas() (*vgimg.Canvas, error) {
	if p.Width <= 0 || p.Height <= 0 {
		return nil, ErrImageSize
	}
	return vgimg.NewWith(vgimg.UseWH(vg.Points(float64(p.Width)), vg.Points(float64(p.Height))), vgimg.UseDPI(72)), nil
}

func (p *PNG) encode(c *vgimg.Canvas) error {
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(p.W); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

// Figure draws the panels of f stacked top to bottom. The title goes on
// the first panel.
func (p *PNG) Figure(f Figure) error {
	if len(f.Panels) == 0 {
		return ErrEmpty
	}
	c, err := p.canvas()
	if err != nil {
		return err
	}

	rows := make([][]*gplot.Plot, len(f.Panels))
	for i, panel := range f.Panels {
		plt, err := panelPlot(panel)
		if err != nil {
			return err
		}
		rows[i] = []*gplot.Plot{plt}
	}
	rows[0][0].Title.Text = f.Title

	tiles := draw.Tiles{Rows: len(rows), Cols: 1, PadY: vg.Points(4)}
	canvases := gplot.Align(rows, tiles, draw.New(c))
	for i := range rows {
		rows[i][0].Draw(canvases[i][0])
	}

	return p.encode(c)
}

func panelPlot(panel Panel) (*gplot.Plot, error) {
	plt := gplot.New()
	plt.X.Label.Text = panel.XLabel
	plt.Y.Label.Text = panel.YLabel

	for k, l := range panel.Lines {
		pts := finite(l)
		if len(pts) == 0 {
			continue
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("plot: %w", err)
		}
		line.Color = plotutil.Color(k)
		plt.Add(line)
		if l.Label != "" {
			plt.Legend.Add(l.Label, line)
		}
	}
	return plt, nil
}

// finite drops the points gonum/plot cannot place.
func finite(l Line) plotter.XYs {
	n := min(len(l.X), len(l.Y))
	pts := make(plotter.XYs, 0, n)
	for i := range n {
		x, y := l.X[i], l.Y[i]
		if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		pts = append(pts, plotter.XY{X: x, Y: y})
	}
	return pts
}

// Heatmap draws h with its title, axis labels and colour bar.
func (p *PNG) Heatmap(h Heatmap) error {
	return p.Layers(h)
}

// Layers draws each heat map over the previous ones with alpha blending.
// The first layer is the background and decides title, labels and colour
// bar.
func (p *PNG) Layers(hs ...Heatmap) error {
	if len(hs) == 0 {
		return ErrEmpty
	}
	for _, h := range hs {
		if h.Data == nil || h.Data.Len() == 0 {
			return ErrEmpty
		}
	}
	c, err := p.canvas()
	if err != nil {
		return err
	}

	base := hs[0]
	plt := gplot.New()
	plt.Title.Text = base.Title
	plt.X.Padding, plt.Y.Padding = 0, 0
	if base.LabelX {
		plt.X.Label.Text = TimeLabel
	}
	if base.LabelY {
		plt.Y.Label.Text = FrequencyLabel
	}
	for _, h := range hs {
		plt.Add(heatMap(h))
	}

	dc := draw.New(c)
	if !base.Colorbar || base.Ceiling <= base.Floor {
		plt.Draw(dc)
		return p.encode(c)
	}

	left := draw.Crop(dc, 0, -colorbarWidth, 0, 0)
	plt.Draw(left)

	// the bar spans the data area of the heat map
	area := plt.DataCanvas(left)
	if area.Max.Y-area.Min.Y >= 1 {
		strip := draw.Canvas{Canvas: dc.Canvas, Rectangle: vg.Rectangle{
			Min: vg.Point{X: dc.Max.X - colorbarWidth, Y: area.Min.Y},
			Max: vg.Point{X: dc.Max.X, Y: area.Max.Y},
		}}
		colorbarPlot(base).Draw(strip)
	}

	return p.encode(c)
}

func heatMap(h Heatmap) *plotter.HeatMap {
	lo, hi := h.Floor, h.Ceiling
	if hi <= lo {
		hi = lo + 1
	}

	stops := h.Colormap.Stops
	pal := h.Colormap.ColorMap(lo, hi).Palette(256)

	rows, cols := h.Data.Dims()
	hm := plotter.NewHeatMap(grid{data: h, rows: rows, cols: cols}, pal)
	hm.Min, hm.Max = lo, hi
	hm.Rasterized = true
	if len(stops) > 0 {
		hm.Underflow = stops[0]
		hm.Overflow = stops[len(stops)-1]
	}
	return hm
}

func colorbarPlot(h Heatmap) *gplot.Plot {
	plt := gplot.New()
	plt.HideX()
	plt.Y.Padding = 0
	plt.Add(&plotter.ColorBar{ColorMap: h.Colormap.ColorMap(h.Floor, h.Ceiling), Vertical: true})
	return plt
}

// grid lays the cells of a heat map over its extent. Row 0 is the lowest
// y value.
type grid struct {
	data       Heatmap
	rows, cols int
}

func (g grid) Dims() (c, r int)  { return g.cols, g.rows }
func (g grid) Z(c, r int) float64 { return g.data.Data.At(r, c) }
func (g grid) X(c int) float64    { return cell(g.data.Extent[0], g.data.Extent[1], c, g.cols) }
func (g grid) Y(r int) float64    { return cell(g.data.Extent[2], g.data.Extent[3], r, g.rows) }
func (g grid) Min() float64       { return g.data.Floor }
func (g grid) Max() float64       { return g.data.Ceiling }

// cell returns the centre of cell i when [lo, hi] is split into n cells.
// An empty span gives unit cells starting at lo.
func cell(lo, hi float64, i, n int) float64 {
	if hi <= lo {
		return lo + float64(i) + 0.5
	}
	return lo + (float64(i)+0.5)*(hi-lo)/float64(n)
}
