package controller

import (
	"github.com/ctessum/eeviewer"
	"github.com/ctessum/eeviewer/chart"
	"github.com/ctessum/geom"
)

// SwitchChart redraws the live time series as a k chart.
func (c *Controller) SwitchChart(k chart.Kind) error {
	if err := c.charts.SwitchKind(k); err != nil {
		c.log.WithError(err).WithField("kind", k).Debug("controller: switch chart")
		return err
	}
	return nil
}

// ToggleZoom enlarges or shrinks the live chart.
func (c *Controller) ToggleZoom() error {
	if err := c.charts.ToggleZoom(); err != nil {
		c.log.WithError(err).Debug("controller: zoom chart")
		return err
	}
	return nil
}

// ExportCSV downloads the live chart's data.
func (c *Controller) ExportCSV() error {
	if err := c.charts.ExportCSV(); err != nil {
		c.view.ShowNotice(eeviewer.Notice(err))
		return err
	}
	return nil
}

// ClosePanel hides the chart panel and deselects the country. The zoom
// setting is kept.
func (c *Controller) ClosePanel() {
	c.begin(func(s *Session) { s.Selected, s.Title = "", "" })
	c.charts.Close()
	c.view.ShowAllCountriesButton(false)
	c.view.HideBusy()
	c.surface.RevertStyles()
}

// CloseNotice dismisses the notice dialog.
func (c *Controller) CloseNotice() { c.view.HideNotice() }

// ToggleOverlay hides the Earth Engine layer and its info panel, or shows
// them again.
func (c *Controller) ToggleOverlay() {
	if c.surface.OverlayHidden() {
		c.surface.ShowOverlay()
		l := c.Session().Layer
		c.view.ShowMapInfo(l.String(), l.Info())
		return
	}
	c.surface.HideOverlay()
	c.view.HideMapInfo()
}

// Search moves the map to the bounds of a place search result.
func (c *Controller) Search(b *geom.Bounds) {
	if b == nil {
		return
	}
	c.charts.Clear()
	c.view.HideMapInfo()
	c.surface.FitBounds(b, SearchZoom)
}

// Reorient redraws the chart for the new viewport after the device
// orientation changed.
func (c *Controller) Reorient() error {
	s := c.Session()
	if c.charts.State() == nil {
		return nil
	}
	if p, ok := c.cache.LastPayload(); ok && s.Title != "" && s.Title != chart.AllCountries {
		if err := c.charts.Present(s.Layer, s.Title, p); err != nil {
			c.log.WithError(err).Debug("controller: redraw last payload")
			return err
		}
		return nil
	}
	return c.charts.Rerender()
}
