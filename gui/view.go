//go:build js
// +build js

package gui

import (
	"fmt"
	"net/url"
	"syscall/js"

	"github.com/ctessum/eeviewer/chart"
)

// element returns the element with id, or undefined.
func element(doc js.Value, id string) js.Value {
	e := doc.Call("getElementById", id)
	if e.IsNull() {
		return js.Undefined()
	}
	return e
}

func show(e js.Value, visible bool) {
	if e.IsUndefined() {
		return
	}
	if visible {
		e.Get("style").Set("display", "")
	} else {
		e.Get("style").Set("display", "none")
	}
}

func setText(e js.Value, text string) {
	if !e.IsUndefined() {
		e.Set("textContent", text)
	}
}

// View is the page around the map.
type View struct {
	doc js.Value
}

// NewView returns the view of doc.
func NewView(doc js.Value) *View { return &View{doc: doc} }

func (v *View) el(id string) js.Value { return element(v.doc, id) }

func (v *View) ShowBusy() { show(v.el("spinner"), true) }
func (v *View) HideBusy() { show(v.el("spinner"), false) }

func (v *View) ShowNotice(msg string) {
	setText(v.el("dialog-text"), msg)
	show(v.el("dialog"), true)
}

func (v *View) HideNotice() { show(v.el("dialog"), false) }

// ShowFatal shows msg and disables the map controls.
func (v *View) ShowFatal(msg string) {
	v.HideBusy()
	for _, id := range []string{"menu-layers", "button-draw", "search-button", "google-button-clear"} {
		show(v.el(id), false)
	}
	v.ShowNotice(msg)
}

func (v *View) ShowMapInfo(title, info string) {
	setText(v.el("map-info-title"), title)
	setText(v.el("map-info-text"), info)
	show(v.el("map-info"), true)
	show(v.el("info-button"), false)
}

func (v *View) HideMapInfo() {
	show(v.el("map-info"), false)
	show(v.el("info-button"), true)
}

func (v *View) ShowAllCountriesButton(visible bool) { show(v.el("show-all-countries"), visible) }

func (v *View) ShowDrawMenu(visible bool) {
	show(v.el("menu-draw"), visible)
	show(v.el("button-draw"), !visible)
}

func (v *View) SetDrawColor(color string) {
	e := v.el("menu-draw-color")
	if e.IsUndefined() {
		return
	}
	if i := e.Call("querySelector", "i"); !i.IsNull() {
		i.Get("style").Set("color", color)
	}
}

// Panel is the chart panel. Charts are shown in an iframe.
type Panel struct {
	doc js.Value
}

// NewPanel returns the chart panel of doc.
func NewPanel(doc js.Value) *Panel { return &Panel{doc: doc} }

func (p *Panel) el(id string) js.Value { return element(p.doc, id) }

func (p *Panel) ShowChart(k chart.Kind, markup string, width, height int) {
	show(p.el("panel"), true)
	if wide := p.el("panel-wide"); !wide.IsUndefined() {
		wide.Get("style").Set("width", fmt.Sprintf("%dpx", width))
	}
	frame := p.el("panel-chart")
	if !frame.IsUndefined() {
		frame.Set("width", width)
		frame.Set("height", height)
		frame.Set("srcdoc", markup)
		show(frame, true)
	}
	// A line chart can be switched to a bar chart and back.
	show(p.el("button-panel-bar"), k == chart.Line)
	show(p.el("button-panel-line"), k == chart.Bar)
	show(p.el("panel-image"), false)
}

// SetTitle sets the panel title. A reference link to the region is shown
// when reference is set.
func (p *Panel) SetTitle(title string, reference bool) {
	e := p.el("panel-title")
	setText(e, title)
	show(e, true)
	wiki := p.el("panel-wiki")
	if wiki.IsUndefined() {
		return
	}
	if reference {
		wiki.Call("setAttribute", "href", "https://en.wikipedia.org/wiki/"+url.PathEscape(title))
	} else {
		wiki.Call("setAttribute", "href", "")
	}
	show(wiki, reference)
}

func (p *Panel) SetImageLink(href, filename string) {
	e := p.el("panel-image")
	if e.IsUndefined() {
		return
	}
	e.Call("setAttribute", "href", href)
	e.Call("setAttribute", "download", filename)
	show(e, true)
}

// Download offers data to the user as a file.
func (p *Panel) Download(filename, mimeType string, data []byte) {
	buf := js.Global().Get("Uint8Array").New(len(data))
	js.CopyBytesToJS(buf, data)
	blob := js.Global().Get("Blob").New([]interface{}{buf}, map[string]interface{}{"type": mimeType})
	u := js.Global().Get("URL").Call("createObjectURL", blob)
	link := p.doc.Call("createElement", "a")
	link.Call("setAttribute", "href", u)
	link.Call("setAttribute", "download", filename)
	body := p.doc.Get("body")
	body.Call("appendChild", link)
	link.Call("click")
	body.Call("removeChild", link)
	js.Global().Get("URL").Call("revokeObjectURL", u)
}

func (p *Panel) Hide() {
	show(p.el("panel"), false)
	setText(p.el("panel-title"), "")
	show(p.el("panel-wiki"), false)
	show(p.el("panel-image"), false)
	if frame := p.el("panel-chart"); !frame.IsUndefined() {
		frame.Set("srcdoc", "")
	}
}
