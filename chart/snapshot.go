package chart

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// ErrSnapshotUnsupported is returned for chart kinds without an image form.
var ErrSnapshotUnsupported = errors.New("chart: no image snapshot for this chart kind")

// Snapshot draws s as a PNG image and returns it as a data URI.
func Snapshot(s *State) (string, error) {
	if s.Width <= 0 || s.Height <= 0 {
		return "", fmt.Errorf("chart: invalid snapshot size %dx%d", s.Width, s.Height)
	}
	p, err := plot.New()
	if err != nil {
		return "", err
	}
	p.Title.Text = s.Title

	vals := s.Table.Values(1)
	if len(vals) == 0 {
		return "", fmt.Errorf("chart: nothing to draw")
	}
	switch s.Kind {
	case Line:
		xys := make(plotter.XYs, 0, len(s.Table.Rows))
		for _, r := range s.Table.Rows {
			t, ok1 := r[0].(time.Time)
			v, ok2 := r[1].(float64)
			if !ok1 || !ok2 {
				continue
			}
			xys = append(xys, plotter.XY{X: float64(t.Unix()), Y: v})
		}
		l, err := plotter.NewLine(xys)
		if err != nil {
			return "", err
		}
		p.Add(l)
		p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01"}
		p.X.Label.Text = s.HAxis
		p.Y.Label.Text = s.VAxis
	case Bar:
		w := vg.Points(0.6 * float64(s.Width) / float64(len(vals)+1))
		bars, err := plotter.NewBarChart(plotter.Values(vals), w)
		if err != nil {
			return "", err
		}
		p.Add(bars)
		p.NominalX(s.Table.Labels(0)...)
		p.X.Label.Text = s.HAxis
		p.Y.Label.Text = s.VAxis
	case Histogram:
		edges, _ := Bins(vals)
		h, err := plotter.NewHist(plotter.Values(vals), len(edges))
		if err != nil {
			return "", err
		}
		p.Add(h)
		p.X.Label.Text = s.Table.Columns[1]
	case Geo:
		// A world map has no image form; the color scale stands in for it.
		cm := moreland.ExtendedBlackBody()
		min, max := floats.Min(vals), floats.Max(vals)
		if max <= min {
			min, max = min-1, max+1
		}
		cm.SetMax(max)
		cm.SetMin(min)
		p.Add(&plotter.ColorBar{ColorMap: cm})
		p.HideY()
		p.X.Padding = 0
		p.X.Label.Text = s.Table.Columns[1]
	default:
		return "", ErrSnapshotUnsupported
	}

	img := vgimg.New(vg.Points(float64(s.Width)), vg.Points(float64(s.Height)))
	dc := draw.New(img)
	p.Draw(dc)
	b := new(bytes.Buffer)
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(b); err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(b.Bytes()), nil
}
