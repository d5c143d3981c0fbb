// Package chart turns metric payloads into chart widgets shown in the
// viewer's side panel, and exports the charted data as CSV or PNG.
package chart

import "github.com/ctessum/eeviewer"

// Kind is the type of chart on display.
type Kind int

// Chart kinds.
const (
	None Kind = iota
	Line
	Bar
	Geo
	Histogram
	Pie
)

func (k Kind) String() string {
	switch k {
	case Line:
		return "LineChart"
	case Bar:
		return "BarChart"
	case Geo:
		return "GeoChart"
	case Histogram:
		return "Histogram"
	case Pie:
		return "PieChart"
	default:
		return "None"
	}
}

// KindFor returns the chart kind a payload of layer is drawn as. Time
// series of the Lights and Water Change layers are drawn as bars, every
// other time series as a line; the other payloads map to a kind of their own.
func KindFor(layer eeviewer.Layer, p *eeviewer.Payload) Kind {
	if p == nil {
		return None
	}
	switch p.Kind {
	case eeviewer.KindTimeSeries:
		if layer == eeviewer.Lights || layer == eeviewer.WaterChange {
			return Bar
		}
		return Line
	case eeviewer.KindElevation:
		return Geo
	case eeviewer.KindHistogram:
		return Histogram
	case eeviewer.KindForestChange:
		return Pie
	}
	return None
}
