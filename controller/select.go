package controller

import (
	"context"
	"sort"
	"sync"

	"github.com/ctessum/eeviewer"
	"github.com/ctessum/eeviewer/chart"
)

// SelectCountry highlights the country id and charts its data for the
// active layer. Payloads already resident are not fetched again.
func (c *Controller) SelectCountry(ctx context.Context, id string) error {
	title := id
	if b, ok := c.cache.Boundary(id); ok && b.Name != "" {
		title = b.Name
	}
	var layer eeviewer.Layer
	seq := c.begin(func(s *Session) {
		s.Selected, s.Title = id, title
		layer = s.Layer
	})
	c.view.HideNotice()
	c.surface.Highlight(id)
	c.view.ShowBusy()

	p, ok := c.cache.Payload(layer, id)
	if !ok && c.cache.HasPayloads(layer) {
		// The precomputed payloads cover every country with data.
		return c.fail(seq, "details", &eeviewer.ApplicationError{Message: eeviewer.UndefinedErrorMessage})
	}
	if !ok {
		var err error
		p, err = c.fetcher.CountryDetail(ctx, layer, id)
		if err != nil {
			return c.fail(seq, "details", err)
		}
		c.cacheDetails(layer, func() { c.cache.PutPayload(layer, id, p) })
	}
	if !c.current(seq) {
		c.log.WithField("country", id).Debug("controller: dropping stale details")
		return nil
	}
	return c.present(seq, layer, title, p)
}

// cacheDetails runs put if layer is still the session's layer. Payloads of
// a layer that is no longer shown would evict those of the active one.
func (c *Controller) cacheDetails(layer eeviewer.Layer, put func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session.Layer != layer {
		c.log.WithField("layer", layer.ID()).Debug("controller: not caching details of inactive layer")
		return
	}
	put()
}

// present charts p and stores it as the payload on display.
func (c *Controller) present(seq uint64, layer eeviewer.Layer, title string, p *eeviewer.Payload) error {
	if err := c.charts.Present(layer, title, p); err != nil {
		return c.fail(seq, "chart", err)
	}
	c.cache.SaveLastPayload(p)
	c.view.ShowAllCountriesButton(p.Kind == eeviewer.KindElevation && title != eeviewer.CustomRegionName)
	c.view.HideBusy()
	return nil
}

// ShowAllCountries charts the elevation of every country on a world map.
func (c *Controller) ShowAllCountries(ctx context.Context) error {
	var (
		layer     eeviewer.Layer
		countries []string
	)
	seq := c.begin(func(s *Session) {
		layer = s.Layer
		countries = append([]string(nil), s.Countries...)
		s.Selected, s.Title = "", chart.AllCountries
	})
	if layer != eeviewer.Elevation {
		return c.fail(seq, "all countries", &eeviewer.PreconditionError{
			Message: "The all-countries chart is only available for " + eeviewer.Elevation.String()})
	}
	c.view.HideNotice()
	c.view.ShowBusy()

	m, ok := c.cache.Payloads(layer)
	if !ok {
		var err error
		m, err = c.fetcher.AllDetail(ctx, layer)
		if err != nil {
			return c.fail(seq, "all details", err)
		}
		c.cacheDetails(layer, func() { c.cache.ReplaceAllPayloads(layer, m) })
	}

	var ids []string
	for _, id := range countries {
		if p, ok := m[id]; ok && p.Kind == eeviewer.KindElevation {
			ids = append(ids, id)
		}
	}
	var (
		mu   sync.Mutex
		rows []chart.CountryValue
	)
	failed := c.each(ids, func(id string) error {
		name, err := c.fetcher.CountryName(ctx, id)
		if err != nil {
			return err
		}
		mu.Lock()
		rows = append(rows, chart.CountryValue{Name: name, Value: m[id].Elevation})
		mu.Unlock()
		return nil
	})
	if !c.current(seq) {
		return nil
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	if err := c.charts.PresentAll(layer, rows); err != nil {
		return c.fail(seq, "chart", err)
	}
	c.view.ShowAllCountriesButton(false)
	c.view.HideBusy()
	if failed > 0 {
		c.view.ShowNotice(eeviewer.RequestErrorMessage)
	}
	return nil
}
