package chart

import (
	"fmt"
	"sync"

	"github.com/ctessum/eeviewer"
	"github.com/sirupsen/logrus"
)

// Panel is the side panel charts are shown in.
type Panel interface {
	// ShowChart replaces the chart on display with markup, a widget of
	// kind k sized width by height.
	ShowChart(k Kind, markup string, width, height int)
	// SetTitle shows the name of the charted region. reference controls
	// whether the link to an external description of the region is shown.
	SetTitle(title string, reference bool)
	// SetImageLink points the image download link at href.
	SetImageLink(href, filename string)
	// Download offers data to the user as a file.
	Download(filename, mimeType string, data []byte)
	Hide()
}

// Renderer builds the markup of a chart widget.
type Renderer interface {
	Render(s *State) (string, error)
}

// Viewport is the size of the browser window.
type Viewport struct {
	Width, Height int
}

// Dimensions returns the size of a chart of kind k. Wide viewports get a
// fixed size, enlarged when zoomed; narrow ones are filled.
func Dimensions(k Kind, vp Viewport, zoom bool) (width, height int) {
	if vp.Width <= 800 {
		return vp.Width, vp.Height - 90
	}
	if !zoom {
		return 800, 350
	}
	width, height = 1000, 500
	if k == Line || k == Bar {
		width += 200
	}
	return width, height
}

// State is the chart on display.
type State struct {
	Kind   Kind
	Layer  eeviewer.Layer
	Region string

	Title        string
	HAxis, VAxis string
	Table        Table

	// LabeledLegend labels pie slices in place of a separate legend.
	LabeledLegend bool

	Width, Height int
	Zoom          bool
}

// AllCountries is the panel title of the all-countries chart.
const AllCountries = "All countries"

// ErrNoForestData is returned for forest change payloads without gain or loss.
var ErrNoForestData = &eeviewer.PreconditionError{Message: "There is not enough forest data to create a chart"}

// Presenter draws payloads into a Panel. Exactly one chart is live at a
// time; every change rebuilds the widget from scratch.
type Presenter struct {
	panel    Panel
	renderer Renderer
	viewport func() Viewport
	log      logrus.FieldLogger

	// Snapshot renders the PNG image offered for download.
	Snapshot func(s *State) (string, error)

	mu    sync.Mutex
	state *State
	zoom  bool
}

// NewPresenter returns a presenter drawing into panel. viewport reports
// the current window size.
func NewPresenter(panel Panel, r Renderer, viewport func() Viewport, log logrus.FieldLogger) *Presenter {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Presenter{
		panel:    panel,
		renderer: r,
		viewport: viewport,
		log:      log,
		Snapshot: Snapshot,
	}
}

// Present charts payload p of layer for region. Payloads that cannot be
// charted leave the panel untouched and return the error to report.
func (c *Presenter) Present(layer eeviewer.Layer, region string, p *eeviewer.Payload) error {
	s, err := newState(layer, region, p)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draw(s)
}

func newState(layer eeviewer.Layer, region string, p *eeviewer.Payload) (*State, error) {
	if p == nil {
		return nil, &eeviewer.ApplicationError{Message: eeviewer.UndefinedErrorMessage}
	}
	s := &State{Kind: KindFor(layer, p), Layer: layer, Region: region}
	switch p.Kind {
	case eeviewer.KindError:
		msg := p.Err
		if msg == "" {
			msg = eeviewer.UndefinedErrorMessage
		}
		return nil, &eeviewer.ApplicationError{Message: msg}
	case eeviewer.KindTimeSeries:
		if len(p.TimeSeries) == 0 {
			return nil, &eeviewer.ApplicationError{Message: eeviewer.NoDataMessage}
		}
		o := layer.SeriesOptions()
		s.Title, s.HAxis, s.VAxis = o.Title, o.HAxis, o.VAxis
		if o.Legend != "" {
			s.Title += " - " + o.Legend
		}
		s.Table.Columns = []string{o.HAxis, o.VAxis}
		for _, pt := range MergeDuplicates(p.TimeSeries) {
			s.Table.Rows = append(s.Table.Rows, []interface{}{pt.Time, pt.Value})
		}
	case eeviewer.KindElevation:
		s.Title = "Elevation Average"
		s.Table.Columns = []string{"Country", "Elevation"}
		s.Table.Rows = [][]interface{}{{region, p.Elevation}}
	case eeviewer.KindHistogram:
		if len(p.Histogram) == 0 {
			return nil, &eeviewer.ApplicationError{Message: eeviewer.NoDataMessage}
		}
		s.Title = "Water Occurrence Change Intensity"
		s.Table.Columns = []string{"Country", "Water Occurence"}
		for _, v := range p.Histogram {
			s.Table.Rows = append(s.Table.Rows, []interface{}{region, v})
		}
	case eeviewer.KindForestChange:
		fc := p.ForestChange
		if fc.Gain == 0 && fc.Loss == 0 {
			return nil, ErrNoForestData
		}
		s.Title = fmt.Sprintf("Forest change - Total forest in area: %.3f%%", fc.TreeCover2000/255*100)
		s.Table.Columns = []string{"Status", "Percentage"}
		s.Table.Rows = [][]interface{}{
			{"Gain", fc.Gain * 100},
			{"Loss", fc.Loss * 100},
		}
	default:
		return nil, &eeviewer.ApplicationError{Message: eeviewer.NoDataMessage}
	}
	return s, nil
}

// CountryValue is one country of the all-countries chart.
type CountryValue struct {
	Name  string
	Value float64
}

// PresentAll charts the elevation of every country in rows on a world map,
// zoomed. Other layers have no all-countries chart.
func (c *Presenter) PresentAll(layer eeviewer.Layer, rows []CountryValue) error {
	if layer != eeviewer.Elevation {
		return &eeviewer.PreconditionError{Message: fmt.Sprintf("There is no all-countries chart for %s", layer)}
	}
	if len(rows) == 0 {
		return &eeviewer.ApplicationError{Message: eeviewer.NoDataMessage}
	}
	s := &State{
		Kind:   Geo,
		Layer:  layer,
		Region: AllCountries,
		Title:  "Elevation Average",
		Table:  Table{Columns: []string{"Country", "Elevation"}},
	}
	for _, r := range rows {
		s.Table.Rows = append(s.Table.Rows, []interface{}{r.Name, r.Value})
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.zoom = true
	return c.draw(s)
}

// draw sizes and renders s and makes it the live chart. c.mu must be held.
func (c *Presenter) draw(s *State) error {
	vp := Viewport{Width: 1024, Height: 768}
	if c.viewport != nil {
		vp = c.viewport()
	}
	s.Zoom = c.zoom
	s.Width, s.Height = Dimensions(s.Kind, vp, c.zoom)
	if s.Kind == Pie {
		s.LabeledLegend = s.Width > s.Height
	}
	markup, err := c.renderer.Render(s)
	if err != nil {
		return fmt.Errorf("chart: rendering %v: %w", s.Kind, err)
	}
	c.state = s
	c.panel.ShowChart(s.Kind, markup, s.Width, s.Height)
	c.panel.SetTitle(s.Region, s.Region != eeviewer.CustomRegionName && s.Region != AllCountries)
	c.exportImage()
	c.log.WithFields(logrus.Fields{
		"kind":   s.Kind,
		"layer":  s.Layer.ID(),
		"region": s.Region,
		"rows":   len(s.Table.Rows),
	}).Debug("chart: drawn")
	return nil
}

// SwitchKind redraws the live time series as k, which must be Line or Bar.
// Zoom is reset.
func (c *Presenter) SwitchKind(k Kind) error {
	if k != Line && k != Bar {
		return fmt.Errorf("chart: cannot switch to %v", k)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == nil || (c.state.Kind != Line && c.state.Kind != Bar) {
		return fmt.Errorf("chart: no time series to switch")
	}
	s := *c.state
	s.Kind = k
	c.zoom = false
	return c.draw(&s)
}

// ToggleZoom redraws the live chart enlarged, or back to its normal size.
func (c *Presenter) ToggleZoom() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.zoom = !c.zoom
	if c.state == nil {
		return nil
	}
	s := *c.state
	return c.draw(&s)
}

// Rerender redraws the live chart for the current viewport.
func (c *Presenter) Rerender() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == nil {
		return nil
	}
	s := *c.state
	return c.draw(&s)
}

// Zoomed reports whether charts are drawn enlarged.
func (c *Presenter) Zoomed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.zoom
}

// State returns a copy of the live chart, or nil.
func (c *Presenter) State() *State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == nil {
		return nil
	}
	s := *c.state
	return &s
}

// ExportCSV offers the live chart's data as a CSV file named after the
// chart and region.
func (c *Presenter) ExportCSV() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == nil {
		return &eeviewer.PreconditionError{Message: "There is no chart to export"}
	}
	name := fmt.Sprintf("%s in %s.csv", c.state.Title, c.state.Region)
	c.panel.Download(name, "text/csv;charset=utf-8", c.state.Table.CSV())
	return nil
}

// ExportImage points the image link at a snapshot of the live chart.
// Failures leave the link as it was.
func (c *Presenter) ExportImage() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.exportImage()
}

func (c *Presenter) exportImage() {
	if c.state == nil || c.Snapshot == nil {
		return
	}
	uri, err := c.Snapshot(c.state)
	if err != nil {
		c.log.WithError(err).WithField("kind", c.state.Kind).Debug("chart: no image snapshot")
		return
	}
	c.panel.SetImageLink(uri, fmt.Sprintf("%s in %s Chart Image.png", c.state.Title, c.state.Region))
}

// Close hides the panel and drops the live chart. Unlike Clear, the zoom
// setting is kept for the next chart.
func (c *Presenter) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = nil
	c.panel.Hide()
}

// Clear removes the live chart and resets zoom.
func (c *Presenter) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = nil
	c.zoom = false
	c.panel.Hide()
}
