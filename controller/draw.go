package controller

import (
	"context"

	"github.com/ctessum/eeviewer"
	"github.com/ctessum/eeviewer/mapview"
	"github.com/ctessum/geom"
)

// ErrNoPolygon is returned by SendPolygon before a polygon has been drawn.
var ErrNoPolygon = &eeviewer.PreconditionError{Message: "You must create a polygon first"}

// SetDrawing enters or leaves drawing mode. Country outlines are hidden
// while drawing.
func (c *Controller) SetDrawing(ctx context.Context, on bool) {
	var gen uint64
	c.begin(func(s *Session) {
		gen = s.layerSeq
		s.Drawing = on
		s.Polygon = nil
		s.Selected, s.Title = "", ""
		if on {
			s.DrawColor = mapview.DrawColor
		}
	})
	c.view.HideNotice()
	c.charts.Clear()
	c.view.ShowAllCountriesButton(false)
	if on {
		c.view.ShowDrawMenu(true)
		c.surface.HideBoundaries()
		c.startDrawing()
		return
	}
	c.view.ShowDrawMenu(false)
	c.surface.ClearDrawn()
	c.surface.StopFreehandDraw()
	c.cache.ClearSession()
	c.loadBoundaries(ctx, gen)
}

// startDrawing lets the user draw a polygon in the session's draw color.
func (c *Controller) startDrawing() {
	color := c.Session().DrawColor
	if color == "" {
		color = mapview.DrawColor
	}
	c.view.SetDrawColor(color)
	c.surface.StartFreehandDraw(color, c.PolygonComplete)
}

// PolygonComplete records a finished polygon and saves the map position.
func (c *Controller) PolygonComplete(ring geom.Path) {
	c.mu.Lock()
	c.session.Polygon = geom.Polygon{ring}
	c.mu.Unlock()
	c.cache.SaveCamera(c.surface.Camera())
}

// ClearPolygon removes the drawn polygon so a new one can be drawn.
func (c *Controller) ClearPolygon() {
	c.begin(func(s *Session) { s.Polygon = nil })
	c.surface.ClearDrawn()
	c.charts.Clear()
	if c.Session().Drawing {
		c.startDrawing()
	}
}

// ChangeDrawColor picks a new random draw color. A finished polygon is
// recolored; otherwise drawing restarts in the new color.
func (c *Controller) ChangeDrawColor() {
	c.mu.Lock()
	color := mapview.RandomColor(c.rand)
	c.session.DrawColor = color
	done, drawing := len(c.session.Polygon) > 0, c.session.Drawing
	c.mu.Unlock()

	if !drawing {
		return
	}
	if done {
		c.view.SetDrawColor(color)
		c.surface.SetDrawColor(color)
		return
	}
	c.startDrawing()
}

// SendPolygon charts the active layer over the drawn polygon.
func (c *Controller) SendPolygon(ctx context.Context) error {
	var (
		layer eeviewer.Layer
		poly  geom.Polygon
	)
	c.mu.Lock()
	layer, poly = c.session.Layer, c.session.Polygon
	c.mu.Unlock()
	if len(poly) == 0 || len(poly[0]) == 0 {
		c.view.ShowNotice(eeviewer.Notice(ErrNoPolygon))
		return ErrNoPolygon
	}

	seq := c.begin(func(s *Session) {
		s.Selected, s.Title = "", eeviewer.CustomRegionName
	})
	c.view.HideNotice()
	c.view.ShowBusy()
	p, err := c.fetcher.CustomRegionDetail(ctx, layer, c.surface.Camera().Zoom, poly[0])
	if err != nil {
		return c.fail(seq, "custom", err)
	}
	if !c.current(seq) {
		return nil
	}
	return c.present(seq, layer, eeviewer.CustomRegionName, p)
}
