package chart

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/floats"
)

// EChartsRenderer renders charts as standalone ECharts HTML pages.
type EChartsRenderer struct {
	// AssetsHost is where the ECharts scripts are loaded from. The
	// go-echarts default is used when empty.
	AssetsHost string
}

type renderer interface {
	Render(w io.Writer) error
}

// Render implements Renderer.
func (r *EChartsRenderer) Render(s *State) (string, error) {
	init := opts.Initialization{
		PageTitle: s.Title,
		Width:     strconv.Itoa(s.Width) + "px",
		Height:    strconv.Itoa(s.Height) + "px",
	}
	if r.AssetsHost != "" {
		init.AssetsHost = r.AssetsHost
	}
	global := []charts.GlobalOpts{
		charts.WithInitializationOpts(init),
		charts.WithTitleOpts(opts.Title{Title: s.Title}),
	}

	var c renderer
	switch s.Kind {
	case Line:
		l := charts.NewLine()
		l.SetGlobalOptions(append(global,
			charts.WithXAxisOpts(opts.XAxis{Name: s.HAxis}),
			charts.WithYAxisOpts(opts.YAxis{Name: s.VAxis}))...)
		vals := s.Table.Values(1)
		data := make([]opts.LineData, len(vals))
		for i, v := range vals {
			data[i] = opts.LineData{Value: v}
		}
		l.SetXAxis(s.Table.Labels(0)).AddSeries(s.VAxis, data)
		c = l
	case Bar:
		b := charts.NewBar()
		b.SetGlobalOptions(append(global,
			charts.WithXAxisOpts(opts.XAxis{Name: s.HAxis}),
			charts.WithYAxisOpts(opts.YAxis{Name: s.VAxis}))...)
		b.SetXAxis(s.Table.Labels(0)).AddSeries(s.VAxis, barData(s.Table.Values(1)))
		c = b
	case Histogram:
		edges, counts := Bins(s.Table.Values(1))
		labels := make([]string, len(edges))
		for i, e := range edges {
			labels[i] = strconv.FormatFloat(e, 'g', 4, 64)
		}
		b := charts.NewBar()
		b.SetGlobalOptions(append(global,
			charts.WithXAxisOpts(opts.XAxis{Name: s.Table.Columns[1]}),
			charts.WithYAxisOpts(opts.YAxis{Name: "Count"}))...)
		b.SetXAxis(labels).AddSeries(s.Table.Columns[1], barData(counts))
		c = b
	case Geo:
		vals := s.Table.Values(1)
		if len(vals) == 0 {
			return "", fmt.Errorf("chart: no values to map")
		}
		colors := []string{"blue"}
		if len(vals) > 1 {
			colors = []string{"white", "blue", "black"}
		}
		min, max := floats.Min(vals), floats.Max(vals)
		if max <= min {
			min, max = min-1, max+1
		}
		m := charts.NewMap()
		m.RegisterMapType("world")
		m.SetGlobalOptions(append(global,
			charts.WithVisualMapOpts(opts.VisualMap{
				Min:     float32(min),
				Max:     float32(max),
				InRange: &opts.VisualMapInRange{Color: colors},
			}))...)
		names := s.Table.Labels(0)
		data := make([]opts.MapData, 0, len(names))
		for i, v := range vals {
			data = append(data, opts.MapData{Name: names[i], Value: v})
		}
		m.AddSeries(s.Table.Columns[1], data)
		c = m
	case Pie:
		p := charts.NewPie()
		p.SetGlobalOptions(global...)
		names := s.Table.Labels(0)
		vals := s.Table.Values(1)
		data := make([]opts.PieData, len(vals))
		for i, v := range vals {
			data[i] = opts.PieData{Name: names[i], Value: v}
		}
		p.AddSeries(s.Table.Columns[1], data)
		if s.LabeledLegend {
			p.SetSeriesOptions(charts.WithLabelOpts(opts.Label{
				Show:      opts.Bool(true),
				Formatter: "{b}: {d}%",
			}))
		}
		c = p
	default:
		return "", fmt.Errorf("chart: cannot render %v", s.Kind)
	}

	b := new(bytes.Buffer)
	if err := c.Render(b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func barData(vals []float64) []opts.BarData {
	data := make([]opts.BarData, len(vals))
	for i, v := range vals {
		data[i] = opts.BarData{Value: v}
	}
	return data
}
