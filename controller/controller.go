// Package controller binds the viewer's controls to the map, the backend
// client, the cache and the chart panel, and owns the session state.
package controller

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/ctessum/eeviewer"
	"github.com/ctessum/eeviewer/chart"
	"github.com/ctessum/eeviewer/fetch"
	"github.com/ctessum/eeviewer/geocache"
	"github.com/ctessum/eeviewer/mapview"
	"github.com/ctessum/geom"
	"github.com/sirupsen/logrus"
)

// Fetcher requests data from the backend.
type Fetcher interface {
	CountryDetail(ctx context.Context, layer eeviewer.Layer, id string) (*eeviewer.Payload, error)
	AllDetail(ctx context.Context, layer eeviewer.Layer) (map[string]*eeviewer.Payload, error)
	StaticDetail(ctx context.Context, layer eeviewer.Layer) (map[string]*eeviewer.Payload, error)
	CustomRegionDetail(ctx context.Context, layer eeviewer.Layer, zoom int, ring geom.Path) (*eeviewer.Payload, error)
	CountryName(ctx context.Context, id string) (string, error)
	Boundary(ctx context.Context, id string) (*eeviewer.Boundary, error)
	Map(ctx context.Context, layer eeviewer.Layer) (*fetch.MapFragment, error)
}

// View is the page around the map and the chart panel.
type View interface {
	ShowBusy()
	HideBusy()
	// ShowNotice shows msg in a modal dialog.
	ShowNotice(msg string)
	HideNotice()
	// ShowFatal reports an error that leaves the viewer unusable.
	ShowFatal(msg string)

	ShowMapInfo(title, info string)
	HideMapInfo()
	ShowAllCountriesButton(visible bool)
	ShowDrawMenu(visible bool)
	SetDrawColor(color string)
}

// Session is the state of one page load.
type Session struct {
	Layer     eeviewer.Layer
	MapID     string
	Token     string
	Countries []string

	// Selected is the country on display, and Title the name of the
	// region on display.
	Selected string
	Title    string

	Polygon   geom.Polygon
	Drawing   bool
	DrawColor string

	// seq changes whenever a request is issued that makes the results of
	// earlier ones stale. layerSeq changes only when a layer switch starts,
	// so selections do not cancel it.
	seq      uint64
	layerSeq uint64
}

// SearchZoom is the zoom level the map is shown at after a place search.
const SearchZoom = 14

// Controller handles the viewer's user interactions. Handlers may be
// called concurrently; blocking handlers take a context.
type Controller struct {
	fetcher Fetcher
	cache   *geocache.Cache
	charts  *chart.Presenter
	view    View
	log     logrus.FieldLogger

	// Workers is the number of concurrent requests of fan-out operations.
	Workers int

	surface *mapview.Surface

	mu      sync.Mutex
	session Session
	rand    *rand.Rand
}

// New returns a controller. The map is created by Start.
func New(f Fetcher, cache *geocache.Cache, charts *chart.Presenter, view View, log logrus.FieldLogger) *Controller {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Controller{
		fetcher: f,
		cache:   cache,
		charts:  charts,
		view:    view,
		log:     log,
		Workers: 6,
		rand:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Session returns a copy of the session state.
func (c *Controller) Session() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.session
	s.Countries = append([]string(nil), s.Countries...)
	return s
}

// begin applies f to the session and marks the results of requests issued
// earlier as stale. It returns the sequence number of the new request.
func (c *Controller) begin(f func(s *Session)) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.seq++
	if f != nil {
		f(&c.session)
	}
	return c.session.seq
}

// current reports whether no request has been issued since seq.
func (c *Controller) current(seq uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.seq == seq
}

// beginLayer marks earlier layer switches and selections as stale. It
// returns the generation of the new layer switch and the sequence number.
func (c *Controller) beginLayer() (gen, seq uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.layerSeq++
	c.session.seq++
	c.session.Selected, c.session.Title = "", ""
	return c.session.layerSeq, c.session.seq
}

// currentLayer reports whether no layer switch has started since gen.
func (c *Controller) currentLayer(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.layerSeq == gen
}

// fail reports err to the user unless it belongs to a stale request.
func (c *Controller) fail(seq uint64, op string, err error) error {
	log := c.log.WithError(err).WithField("op", op)
	if seq != 0 && !c.current(seq) {
		log.Debug("controller: dropping stale failure")
		return err
	}
	log.Info("controller: request failed")
	c.view.HideBusy()
	c.view.ShowNotice(eeviewer.Notice(err))
	return err
}

// Start creates the map for the layer described by cfg in w. When init is
// set, stored session state is discarded first.
func (c *Controller) Start(ctx context.Context, w mapview.Widget, cfg *fetch.MapFragment, init bool) error {
	if init {
		c.cache.ClearSession()
	}
	mc := mapview.Config{MapID: cfg.MapID, Token: cfg.Token}
	if cam, ok := c.cache.Camera(); ok {
		mc.Camera = &cam
	}
	surface, err := mapview.Initialize(w, mc)
	if err != nil {
		c.log.WithError(err).Error("controller: creating map")
		c.view.ShowFatal(err.Error())
		return err
	}
	layer := cfg.Layer
	if !layer.Valid() {
		layer = eeviewer.InitialLayer
	}
	var (
		drawing bool
		gen     uint64
	)
	c.begin(func(s *Session) {
		s.layerSeq++
		gen = s.layerSeq
		c.surface = surface
		s.Layer, s.MapID, s.Token = layer, cfg.MapID, cfg.Token
		s.Countries = append([]string(nil), cfg.Countries...)
		s.Selected, s.Title = "", ""
		drawing = s.Drawing
	})
	c.view.ShowMapInfo(layer.String(), layer.Info())
	if drawing {
		c.view.ShowDrawMenu(true)
		c.startDrawing()
	} else {
		c.loadBoundaries(ctx, gen)
	}
	c.loadStatic(ctx, layer)
	return nil
}

// ChangeLayer switches the map to layer. The session keeps the previous
// layer until the map of the new one is available.
func (c *Controller) ChangeLayer(ctx context.Context, layer eeviewer.Layer) error {
	if !layer.Valid() {
		return fmt.Errorf("controller: %w", &eeviewer.PreconditionError{Message: fmt.Sprintf("invalid layer %d", layer)})
	}
	gen, seq := c.beginLayer()
	c.view.ShowBusy()
	c.charts.Clear()
	c.view.ShowAllCountriesButton(false)
	c.surface.RevertStyles()

	f, err := c.fetcher.Map(ctx, layer)
	if !c.currentLayer(gen) {
		c.log.WithField("layer", layer.ID()).Debug("controller: dropping stale layer switch")
		return err
	}
	if err != nil {
		c.log.WithError(err).WithField("op", "map").Info("controller: request failed")
		c.view.HideBusy()
		c.view.ShowNotice(eeviewer.Notice(err))
		return err
	}
	var drawing, selected bool
	c.mu.Lock()
	c.session.Layer = layer
	c.session.MapID, c.session.Token = f.MapID, f.Token
	if len(f.Countries) > 0 {
		c.session.Countries = append([]string(nil), f.Countries...)
	}
	// Selections made while the map loaded belong to the previous layer.
	c.session.seq++
	seq = c.session.seq
	selected = c.session.Selected != "" || c.session.Title != ""
	c.session.Selected, c.session.Title = "", ""
	drawing = c.session.Drawing
	c.mu.Unlock()

	if selected {
		c.charts.Clear()
		c.view.ShowAllCountriesButton(false)
		c.surface.RevertStyles()
	}
	c.surface.RegisterOverlay(mapview.TileURLTemplate(f.MapID, f.Token))
	c.view.ShowMapInfo(layer.String(), layer.Info())
	if !drawing {
		c.loadBoundaries(ctx, gen)
	}
	c.loadStatic(ctx, layer)
	if c.current(seq) {
		c.view.HideBusy()
	}
	return nil
}

// loadStatic makes the precomputed payloads of layer resident. Failures
// are only logged.
func (c *Controller) loadStatic(ctx context.Context, layer eeviewer.Layer) {
	if c.cache.HasPayloads(layer) {
		return
	}
	m, err := c.fetcher.StaticDetail(ctx, layer)
	if err != nil {
		c.log.WithError(err).WithField("layer", layer.ID()).Info("controller: no precomputed details")
		return
	}
	c.cacheDetails(layer, func() { c.cache.ReplaceAllPayloads(layer, m) })
}

// loadBoundaries draws the outlines of the session's countries, fetching
// those not cached, unless a layer switch has started since gen. Countries
// that fail to load are left out.
func (c *Controller) loadBoundaries(ctx context.Context, gen uint64) {
	var (
		mu sync.Mutex
		bs []*eeviewer.Boundary
	)
	failed := c.each(c.Session().Countries, func(id string) error {
		b, ok := c.cache.Boundary(id)
		if !ok {
			var err error
			b, err = c.fetcher.Boundary(ctx, id)
			if err != nil {
				return err
			}
			c.cache.PutBoundary(b)
		}
		mu.Lock()
		bs = append(bs, b)
		mu.Unlock()
		return nil
	})
	if failed > 0 {
		c.log.WithField("failed", failed).Info("controller: some boundaries could not be loaded")
	}
	if !c.currentLayer(gen) || c.Session().Drawing {
		return
	}
	sort.Slice(bs, func(i, j int) bool { return bs[i].ID < bs[j].ID })
	c.surface.RenderBoundaries(bs, mapview.Color)
}

// each calls f for every id from c.Workers goroutines and returns how many
// calls failed. Failures do not stop the other calls.
func (c *Controller) each(ids []string, f func(id string) error) int {
	n := c.Workers
	if n < 1 {
		n = 1
	}
	ch := make(chan string)
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		failed int
	)
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			for id := range ch {
				if err := f(id); err != nil {
					c.log.WithError(err).WithField("id", id).Debug("controller: request failed")
					mu.Lock()
					failed++
					mu.Unlock()
				}
			}
		}()
	}
	for _, id := range ids {
		ch <- id
	}
	close(ch)
	wg.Wait()
	return failed
}
