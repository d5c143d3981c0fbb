// Package mapview manages the base map: the Earth Engine overlay, the
// country outlines drawn over it and the freehand polygon a user may draw.
// The map SDK itself is reached through a Widget.
package mapview

import (
	"fmt"
	"sort"
	"sync"

	"github.com/ctessum/eeviewer"
	"github.com/ctessum/geom"
)

// Widget is the underlying map SDK object.
type Widget interface {
	SetCamera(cam eeviewer.Camera)
	Camera() eeviewer.Camera
	// FitBounds shows b, then sets the zoom level to zoom.
	FitBounds(b *geom.Bounds, zoom int)

	AddOverlay(urlTemplate string)
	RemoveOverlay()

	AddBoundary(b *eeviewer.Boundary, s Style)
	SetBoundaryStyle(id string, s Style)
	RemoveBoundary(id string)

	// StartDraw enters polygon drawing mode. onComplete receives the
	// outer ring of the finished polygon.
	StartDraw(color string, onComplete func(ring geom.Path))
	StopDraw()
	SetPolygonColor(color string)
	RemovePolygon()
}

// Config holds the parameters a map is created with.
type Config struct {
	MapID  string
	Token  string
	Camera *eeviewer.Camera
}

// Surface is the base map of a session.
type Surface struct {
	w Widget

	mu            sync.Mutex
	overlay       string
	overlayHidden bool
	drawn         map[string]Style
	highlighted   string
	drawing       bool
	hasPolygon    bool
}

// Initialize positions w at cfg.Camera, or the default position when it is
// nil, and adds the Earth Engine overlay of cfg.MapID.
func Initialize(w Widget, cfg Config) (*Surface, error) {
	if w == nil {
		return nil, fmt.Errorf("%w: no map widget", eeviewer.ErrMapInit)
	}
	if cfg.MapID == "" {
		return nil, fmt.Errorf("%w: missing map id", eeviewer.ErrMapInit)
	}
	cam := eeviewer.DefaultCamera
	if cfg.Camera != nil {
		cam = *cfg.Camera
	}
	s := &Surface{w: w, drawn: make(map[string]Style)}
	w.SetCamera(cam)
	s.RegisterOverlay(TileURLTemplate(cfg.MapID, cfg.Token))
	return s, nil
}

// RegisterOverlay replaces the raster overlay with tiles from urlTemplate.
func (s *Surface) RegisterOverlay(urlTemplate string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.overlay != "" && !s.overlayHidden {
		s.w.RemoveOverlay()
	}
	s.overlay = urlTemplate
	s.overlayHidden = false
	s.w.AddOverlay(urlTemplate)
}

// Overlay returns the URL template of the current overlay.
func (s *Surface) Overlay() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.overlay
}

// HideOverlay removes the raster overlay from view, keeping it for ShowOverlay.
func (s *Surface) HideOverlay() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.overlay == "" || s.overlayHidden {
		return
	}
	s.w.RemoveOverlay()
	s.overlayHidden = true
}

// ShowOverlay restores an overlay hidden by HideOverlay.
func (s *Surface) ShowOverlay() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.overlay == "" || !s.overlayHidden {
		return
	}
	s.w.AddOverlay(s.overlay)
	s.overlayHidden = false
}

// OverlayHidden reports whether the overlay is hidden.
func (s *Surface) OverlayHidden() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.overlayHidden
}

// RenderBoundaries draws bs, each in the color colorFn assigns to its
// identifier. Previously drawn boundaries are removed first.
func (s *Surface) RenderBoundaries(bs []*eeviewer.Boundary, colorFn func(id string) string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeBoundaries()
	for _, b := range bs {
		if b == nil {
			continue
		}
		st := BoundaryStyle(colorFn(b.ID))
		s.w.AddBoundary(b, st)
		s.drawn[b.ID] = st
	}
}

// HideBoundaries removes all boundaries from the map.
func (s *Surface) HideBoundaries() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeBoundaries()
}

func (s *Surface) removeBoundaries() {
	ids := make([]string, 0, len(s.drawn))
	for id := range s.drawn {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		s.w.RemoveBoundary(id)
	}
	s.drawn = make(map[string]Style)
	s.highlighted = ""
}

// Boundaries returns the identifiers of the drawn boundaries, sorted.
func (s *Surface) Boundaries() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.drawn))
	for id := range s.drawn {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Highlight shows the boundary id as selected, reverting any other selection.
func (s *Surface) Highlight(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revert()
	st, ok := s.drawn[id]
	if !ok {
		return
	}
	s.w.SetBoundaryStyle(id, HighlightStyle(st))
	s.highlighted = id
}

// RevertStyles restores the default style of a highlighted boundary.
func (s *Surface) RevertStyles() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revert()
}

func (s *Surface) revert() {
	if s.highlighted == "" {
		return
	}
	if st, ok := s.drawn[s.highlighted]; ok {
		s.w.SetBoundaryStyle(s.highlighted, st)
	}
	s.highlighted = ""
}

// StartFreehandDraw lets the user draw a polygon in color. Any previously
// drawn polygon is discarded. Drawing stops once the polygon is complete,
// after which onComplete is called with its ring.
func (s *Surface) StartFreehandDraw(color string, onComplete func(ring geom.Path)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.hasPolygon {
		s.w.RemovePolygon()
		s.hasPolygon = false
	}
	if s.drawing {
		s.w.StopDraw()
	}
	s.drawing = true
	s.w.StartDraw(color, func(ring geom.Path) {
		s.mu.Lock()
		s.hasPolygon = true
		if s.drawing {
			s.w.StopDraw()
			s.drawing = false
		}
		s.mu.Unlock()
		if onComplete != nil {
			onComplete(ring)
		}
	})
}

// StopFreehandDraw leaves drawing mode, keeping any finished polygon.
func (s *Surface) StopFreehandDraw() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.drawing {
		return
	}
	s.w.StopDraw()
	s.drawing = false
}

// Drawing reports whether the surface is in drawing mode.
func (s *Surface) Drawing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drawing
}

// HasPolygon reports whether a finished polygon is on the map.
func (s *Surface) HasPolygon() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasPolygon
}

// SetDrawColor recolors the drawn polygon.
func (s *Surface) SetDrawColor(color string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.hasPolygon {
		s.w.SetPolygonColor(color)
	}
}

// ClearDrawn removes the drawn polygon.
func (s *Surface) ClearDrawn() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasPolygon {
		return
	}
	s.w.RemovePolygon()
	s.hasPolygon = false
}

// Camera returns the current view position.
func (s *Surface) Camera() eeviewer.Camera { return s.w.Camera() }

// FitBounds moves the view to b at the given zoom level.
func (s *Surface) FitBounds(b *geom.Bounds, zoom int) {
	if b == nil {
		return
	}
	s.w.FitBounds(b, zoom)
}
