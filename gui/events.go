//go:build js
// +build js

package gui

import (
	"context"
	"syscall/js"

	"github.com/ctessum/eeviewer"
	"github.com/ctessum/eeviewer/chart"
)

func updateSelector(doc, selector js.Value, values, text []string) {
	selector.Set("innerHTML", "")
	for i, value := range values {
		option := doc.Call("createElement", "option")
		option.Set("value", value)
		option.Set("text", text[i])
		selector.Call("appendChild", option)
	}
}

func selectorValue(selector js.Value) (value, text string) {
	options := selector.Get("options")
	selectedIndex := selector.Get("selectedIndex").Int()
	if selectedIndex < 0 {
		return "", ""
	}
	selection := options.Index(selectedIndex)
	value = selection.Get("value").String()
	text = selection.Get("text").String()
	return value, text
}

// updateLayerSelector fills the layer selector with every layer and
// selects l.
func updateLayerSelector(doc, selector js.Value, l eeviewer.Layer) {
	values := make([]string, eeviewer.NumLayers)
	text := make([]string, eeviewer.NumLayers)
	for layer := eeviewer.Layer(0); layer < eeviewer.NumLayers; layer++ {
		values[layer] = layer.ID()
		text[layer] = layer.String()
	}
	updateSelector(doc, selector, values, text)
	selector.Set("value", l.ID())
}

// on calls f in a new goroutine whenever the element id fires event.
// Missing elements are skipped.
func (v *Viewer) on(id, event string, f func(this js.Value) error) {
	e := element(v.doc, id)
	if e.IsUndefined() {
		v.log.WithField("id", id).Debug("gui: no element")
		return
	}
	e.Call("addEventListener", event, js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		go v.handle(func() error { return f(this) })
		return nil
	}))
}

func (v *Viewer) bind(ctx context.Context) {
	if sel := element(v.doc, "layer-selector"); !sel.IsUndefined() {
		l := eeviewer.InitialLayer
		if cfg, err := ReadConfig(v.doc); err == nil && cfg.Layer.Valid() {
			l = cfg.Layer
		}
		updateLayerSelector(v.doc, sel, l)
	}
	v.on("layer-selector", "change", func(this js.Value) error {
		id, _ := selectorValue(this)
		l, err := eeviewer.ParseLayer(id)
		if err != nil {
			return err
		}
		return v.c.ChangeLayer(ctx, l)
	})

	v.on("dialog-close", "click", func(js.Value) error { v.c.CloseNotice(); return nil })
	v.on("panel-close", "click", func(js.Value) error { v.c.ClosePanel(); return nil })
	v.on("panel-download", "click", func(js.Value) error { return v.c.ExportCSV() })
	v.on("button-zoom-map", "click", func(js.Value) error { return v.c.ToggleZoom() })
	v.on("button-panel-line", "click", func(js.Value) error { return v.c.SwitchChart(chart.Line) })
	v.on("button-panel-bar", "click", func(js.Value) error { return v.c.SwitchChart(chart.Bar) })
	v.on("show-all-countries", "click", func(js.Value) error { return v.c.ShowAllCountries(ctx) })

	v.on("switch-draw", "change", func(this js.Value) error {
		v.c.SetDrawing(ctx, this.Get("checked").Bool())
		return nil
	})
	v.on("menu-draw-clear", "click", func(js.Value) error { v.c.ClearPolygon(); return nil })
	v.on("menu-draw-done", "click", func(js.Value) error { return v.c.SendPolygon(ctx) })
	v.on("menu-draw-color", "click", func(js.Value) error { v.c.ChangeDrawColor(); return nil })
	v.on("menu-draw-close", "click", func(js.Value) error { show(element(v.doc, "menu-draw"), false); return nil })
	v.on("button-draw", "click", func(js.Value) error { show(element(v.doc, "menu-draw"), true); return nil })

	v.on("google-button-clear", "click", func(js.Value) error { v.c.ToggleOverlay(); return nil })
	v.on("google-button-show", "click", func(js.Value) error { v.c.ToggleOverlay(); return nil })
	v.on("close-map-info", "click", func(js.Value) error { v.view.HideMapInfo(); return nil })
	v.on("info-button", "click", func(js.Value) error {
		l := v.c.Session().Layer
		v.view.ShowMapInfo(l.String(), l.Info())
		return nil
	})

	v.on("search-input", "change", func(this js.Value) error {
		p, err := v.client.SearchPlace(ctx, v.SearchURL, this.Get("value").String())
		if err != nil {
			v.view.ShowNotice(eeviewer.Notice(err))
			return err
		}
		v.c.Search(p.Bounds)
		return nil
	})

	// Narrow screens redraw the chart for the new width.
	js.Global().Get("window").Call("addEventListener", "orientationchange",
		js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			if Viewport().Width < 800 {
				go v.handle(v.c.Reorient)
			}
			return nil
		}))
}
