//go:build js
// +build js

package gui

import (
	"errors"
	"reflect"
	"strings"
	"syscall/js"
	"testing"

	"github.com/ctessum/eeviewer"
	"github.com/ctessum/eeviewer/chart"
	"github.com/ctessum/eeviewer/geocache"
)

func TestDOM(t *testing.T) {
	doc := js.Global().Get("document")
	elem := doc.Call("createElement", "div")
	inputString := "hello world"
	elem.Set("innerText", inputString)
	out := elem.Get("innerText")

	// need Contains because a "\n" gets appended in the output
	if !strings.Contains(out.String(), inputString) {
		t.Errorf("unexpected output string. Expected %q to contain %q", out.String(), inputString)
	}
}

func TestLayerSelector(t *testing.T) {
	doc := js.Global().Get("document")
	sel := doc.Call("createElement", "select")

	updateLayerSelector(doc, sel, eeviewer.Temperature)
	if n := sel.Get("options").Length(); n != eeviewer.NumLayers {
		t.Errorf("%v != %v", n, eeviewer.NumLayers)
	}
	value, text := selectorValue(sel)
	if value != "2" || text != eeviewer.Temperature.String() {
		t.Errorf("unexpected selection %q %q", value, text)
	}

	// Call again to make sure contents get cleared every time.
	updateLayerSelector(doc, sel, eeviewer.Vegetation)
	if n := sel.Get("options").Length(); n != eeviewer.NumLayers {
		t.Errorf("%v != %v", n, eeviewer.NumLayers)
	}
	if value, _ := selectorValue(sel); value != "6" {
		t.Errorf("%v != %v", value, "6")
	}
}

func TestReadConfig(t *testing.T) {
	doc := js.Global().Get("document")
	div := doc.Call("createElement", "div")
	div.Set("innerHTML", `<div id="map-config" data-map="4" data-mapid="abc" data-token="tok" data-countries='["FRA","ESP"]'></div>`)
	body := doc.Get("body")
	body.Call("appendChild", div)
	defer body.Call("removeChild", div)

	cfg, err := ReadConfig(doc)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Layer != eeviewer.WaterChange || cfg.MapID != "abc" || cfg.Token != "tok" {
		t.Errorf("unexpected config %+v", cfg)
	}
	if want := []string{"FRA", "ESP"}; !reflect.DeepEqual(cfg.Countries, want) {
		t.Errorf("%v != %v", cfg.Countries, want)
	}
}

func TestStorage(t *testing.T) {
	s, err := NewStorage("sessionStorage")
	if err != nil {
		t.Skip(err)
	}
	defer s.Remove("test_key")

	if _, ok := s.Get("test_key"); ok {
		t.Fatal("key should not exist yet")
	}
	if err := s.Set("test_key", "value"); err != nil {
		t.Fatal(err)
	}
	if v, ok := s.Get("test_key"); !ok || v != "value" {
		t.Errorf("%v != %v", v, "value")
	}
	s.Remove("test_key")
	if _, ok := s.Get("test_key"); ok {
		t.Error("key should be removed")
	}

	t.Run("quota", func(t *testing.T) {
		big := strings.Repeat("x", 20<<20)
		defer s.Remove("test_big")
		if err := s.Set("test_big", big); err != nil && !errors.Is(err, geocache.ErrQuotaExceeded) {
			t.Errorf("%v is not %v", err, geocache.ErrQuotaExceeded)
		}
	})

	t.Run("missing", func(t *testing.T) {
		if _, err := NewStorage("noSuchStorage"); err == nil {
			t.Error("missing storage should fail")
		}
	})
}

func testElement(t *testing.T, doc js.Value, tag, id string) js.Value {
	t.Helper()
	e := doc.Call("createElement", tag)
	e.Set("id", id)
	body := doc.Get("body")
	body.Call("appendChild", e)
	t.Cleanup(func() { body.Call("removeChild", e) })
	return e
}

func TestView(t *testing.T) {
	doc := js.Global().Get("document")
	dialog := testElement(t, doc, "div", "dialog")
	text := testElement(t, doc, "span", "dialog-text")
	spinner := testElement(t, doc, "div", "spinner")
	v := NewView(doc)

	v.ShowBusy()
	if d := spinner.Get("style").Get("display").String(); d != "" {
		t.Errorf("spinner display %q", d)
	}
	v.ShowNotice(eeviewer.RequestErrorMessage)
	if got := text.Get("textContent").String(); got != eeviewer.RequestErrorMessage {
		t.Errorf("%v != %v", got, eeviewer.RequestErrorMessage)
	}
	v.HideNotice()
	if d := dialog.Get("style").Get("display").String(); d != "none" {
		t.Errorf("dialog display %q", d)
	}
	v.ShowFatal("map failed")
	if d := spinner.Get("style").Get("display").String(); d != "none" {
		t.Errorf("spinner display %q", d)
	}

	// Missing elements are ignored.
	v.ShowMapInfo("Elevation", "info")
	v.ShowDrawMenu(true)
}

func TestPanel(t *testing.T) {
	doc := js.Global().Get("document")
	panel := testElement(t, doc, "div", "panel")
	frame := testElement(t, doc, "iframe", "panel-chart")
	title := testElement(t, doc, "span", "panel-title")
	wiki := testElement(t, doc, "a", "panel-wiki")
	bar := testElement(t, doc, "button", "button-panel-bar")
	p := NewPanel(doc)

	p.ShowChart(chart.Line, "<p>chart</p>", 800, 350)
	if got := frame.Get("srcdoc").String(); got != "<p>chart</p>" {
		t.Errorf("%v != %v", got, "<p>chart</p>")
	}
	if d := bar.Get("style").Get("display").String(); d != "" {
		t.Errorf("bar button display %q", d)
	}

	p.SetTitle("Bosnia and Herzegovina", true)
	if got := title.Get("textContent").String(); got != "Bosnia and Herzegovina" {
		t.Errorf("%v != %v", got, "Bosnia and Herzegovina")
	}
	want := "https://en.wikipedia.org/wiki/Bosnia%20and%20Herzegovina"
	if got := wiki.Call("getAttribute", "href").String(); got != want {
		t.Errorf("%v != %v", got, want)
	}

	p.Hide()
	if d := panel.Get("style").Get("display").String(); d != "none" {
		t.Errorf("panel display %q", d)
	}
}
