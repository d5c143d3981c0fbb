//go:build js
// +build js

package gui

import (
	"encoding/json"
	"fmt"
	"syscall/js"

	"github.com/ctessum/eeviewer"
	"github.com/ctessum/eeviewer/mapview"
	"github.com/ctessum/geom"
	"github.com/ctessum/go-leaflet"
	"github.com/paulmach/orb/geojson"
	"github.com/sirupsen/logrus"
)

const baseTiles = "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"

// Widget is a leaflet map.
type Widget struct {
	doc      js.Value
	mapDiv   js.Value
	m        *leaflet.Map
	onSelect func(id string)

	overlay    js.Value
	boundaries map[string]boundaryLayer

	polygon js.Value
	draw    *freehand
}

type boundaryLayer struct {
	layer js.Value
	click js.Func
}

// NewWidget creates a leaflet map in mapDiv. onSelect is called with the
// identifier of a clicked country outline.
func NewWidget(doc, mapDiv js.Value, onSelect func(id string)) *Widget {
	w := &Widget{
		doc:        doc,
		mapDiv:     mapDiv,
		onSelect:   onSelect,
		overlay:    js.Undefined(),
		polygon:    js.Undefined(),
		boundaries: make(map[string]boundaryLayer),
	}
	w.setMapHeight()

	w.m = leaflet.NewMap(w.mapDiv, map[string]interface{}{"maxZoom": 30, "zoomControl": true})

	// Resize the map with the window.
	cb := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		w.setMapHeight()
		return nil
	})
	js.Global().Get("window").Call("addEventListener", "resize", cb)

	options := make(map[string]interface{})
	options["attribution"] = `Map data &copy; <a href="http://openstreetmap.org">OpenStreetMap</a> contributors, Imagery &copy; Google Earth Engine`
	base := leaflet.NewTileLayer(baseTiles, options)
	base.AddTo(w.m)

	leaflet.L.Get("control").Call("scale").Call("addTo", w.m.Value)
	return w
}

// setMapHeight sets the height of the map to the height of the window.
func (w *Widget) setMapHeight() {
	const mapMargin = 0 // This is the height of the nav bar.
	height := js.Global().Get("window").Get("innerHeight")
	w.mapDiv.Get("style").Set("height", fmt.Sprintf("%dpx", height.Int()-mapMargin))
}

func (w *Widget) SetCamera(cam eeviewer.Camera) {
	w.m.Value.Call("setView", leaflet.NewLatLng(cam.Lat, cam.Lng).Value, cam.Zoom)
}

func (w *Widget) Camera() eeviewer.Camera {
	c := w.m.Value.Call("getCenter")
	return eeviewer.Camera{
		Lat:  c.Get("lat").Float(),
		Lng:  c.Get("lng").Float(),
		Zoom: w.m.Value.Call("getZoom").Int(),
	}
}

// FitBounds moves the map window to b, then zooms to zoom.
func (w *Widget) FitBounds(b *geom.Bounds, zoom int) {
	ll := leaflet.NewLatLng(b.Min.Y, b.Min.X)
	ur := leaflet.NewLatLng(b.Max.Y, b.Max.X)
	bnds := leaflet.L.Call("latLngBounds", ll.Value, ur.Value)
	w.m.Value.Call("fitBounds", bnds)
	w.m.Value.Call("setZoom", zoom)
}

func (w *Widget) AddOverlay(urlTemplate string) {
	w.RemoveOverlay()
	w.overlay = leaflet.L.Call("tileLayer", urlTemplate, map[string]interface{}{
		"tileSize": 256,
		"maxZoom":  30,
	})
	w.overlay.Call("addTo", w.m.Value)
}

func (w *Widget) RemoveOverlay() {
	if w.overlay.IsUndefined() {
		return
	}
	w.overlay.Call("remove")
	w.overlay = js.Undefined()
}

func styleOptions(s mapview.Style) map[string]interface{} {
	return map[string]interface{}{
		"fillColor":   s.FillColor,
		"fillOpacity": s.FillOpacity,
		"color":       s.StrokeColor,
		"weight":      s.StrokeWeight,
	}
}

// jsonValue converts v to a JavaScript object.
func jsonValue(v interface{}) (js.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return js.Undefined(), err
	}
	return js.Global().Get("JSON").Call("parse", string(b)), nil
}

func (w *Widget) AddBoundary(b *eeviewer.Boundary, s mapview.Style) {
	w.RemoveBoundary(b.ID)
	f := geojson.NewFeature(b.Geometry)
	f.ID = b.ID
	f.Properties["name"] = b.Name
	obj, err := jsonValue(f)
	if err != nil {
		logrus.WithError(err).WithField("country", b.ID).Error("gui: encoding boundary")
		return
	}
	id := b.ID
	l := boundaryLayer{
		layer: leaflet.L.Call("geoJSON", obj, map[string]interface{}{"style": styleOptions(s)}),
		click: js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			if w.onSelect != nil && w.draw == nil {
				w.onSelect(id)
			}
			return nil
		}),
	}
	l.layer.Call("on", "click", l.click)
	l.layer.Call("addTo", w.m.Value)
	w.boundaries[id] = l
}

func (w *Widget) SetBoundaryStyle(id string, s mapview.Style) {
	if l, ok := w.boundaries[id]; ok {
		l.layer.Call("setStyle", styleOptions(s))
	}
}

func (w *Widget) RemoveBoundary(id string) {
	l, ok := w.boundaries[id]
	if !ok {
		return
	}
	l.layer.Call("remove")
	l.click.Release()
	delete(w.boundaries, id)
}

// freehand is an in-progress freehand drawing: the user drags the mouse
// to trace the outline of a polygon.
type freehand struct {
	color      string
	line       js.Value
	ring       geom.Path
	onComplete func(ring geom.Path)

	down, move, up js.Func
}

func (w *Widget) StartDraw(color string, onComplete func(ring geom.Path)) {
	w.StopDraw()
	d := &freehand{color: color, line: js.Undefined(), onComplete: onComplete}
	d.down = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		d.ring = d.ring[:0]
		d.line = leaflet.L.Call("polyline", []interface{}{}, map[string]interface{}{"color": d.color})
		d.line.Call("addTo", w.m.Value)
		return nil
	})
	d.move = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if d.line.IsUndefined() || len(args) == 0 {
			return nil
		}
		ll := args[0].Get("latlng")
		d.line.Call("addLatLng", ll)
		d.ring = append(d.ring, geom.Point{X: ll.Get("lng").Float(), Y: ll.Get("lat").Float()})
		return nil
	})
	d.up = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if d.line.IsUndefined() {
			return nil
		}
		d.line.Call("remove")
		d.line = js.Undefined()
		if len(d.ring) < 3 {
			return nil
		}
		ring := append(geom.Path(nil), d.ring...)
		w.addPolygon(ring, d.color)
		if d.onComplete != nil {
			go d.onComplete(ring)
		}
		return nil
	})
	w.m.Value.Get("dragging").Call("disable")
	w.m.Value.Call("on", "mousedown", d.down)
	w.m.Value.Call("on", "mousemove", d.move)
	w.m.Value.Call("on", "mouseup", d.up)
	w.draw = d
}

func (w *Widget) addPolygon(ring geom.Path, color string) {
	w.RemovePolygon()
	lls := make([]interface{}, len(ring))
	for i, p := range ring {
		lls[i] = []interface{}{p.Y, p.X}
	}
	w.polygon = leaflet.L.Call("polygon", lls, map[string]interface{}{
		"color":     color,
		"fillColor": color,
	})
	w.polygon.Call("addTo", w.m.Value)
}

// StopDraw leaves drawing mode.
func (w *Widget) StopDraw() {
	d := w.draw
	if d == nil {
		return
	}
	w.draw = nil
	w.m.Value.Call("off", "mousedown", d.down)
	w.m.Value.Call("off", "mousemove", d.move)
	w.m.Value.Call("off", "mouseup", d.up)
	w.m.Value.Get("dragging").Call("enable")
	if !d.line.IsUndefined() {
		d.line.Call("remove")
	}
	d.down.Release()
	d.move.Release()
	d.up.Release()
}

func (w *Widget) SetPolygonColor(color string) {
	if w.polygon.IsUndefined() {
		return
	}
	w.polygon.Call("setStyle", map[string]interface{}{"color": color, "fillColor": color})
}

func (w *Widget) RemovePolygon() {
	if w.polygon.IsUndefined() {
		return
	}
	w.polygon.Call("remove")
	w.polygon = js.Undefined()
}
