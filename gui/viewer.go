//go:build js
// +build js

// Package gui is the browser front end of the viewer: the leaflet map
// widget, the page around it and the chart panel, built on syscall/js.
package gui

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"syscall/js"

	"github.com/ctessum/eeviewer/chart"
	"github.com/ctessum/eeviewer/controller"
	"github.com/ctessum/eeviewer/fetch"
	"github.com/ctessum/eeviewer/geocache"
	"github.com/sirupsen/logrus"
)

// Viewer is the viewer running in a browser page.
type Viewer struct {
	doc    js.Value
	log    logrus.FieldLogger
	client *fetch.Client

	c      *controller.Controller
	widget *Widget
	view   *View
	panel  *Panel

	// SearchURL is the place search endpoint.
	SearchURL string
}

// DefaultBackend is the base URL of the server the page was loaded from.
func DefaultBackend() string {
	doc := js.Global().Get("document")
	u, err := url.Parse(doc.Get("baseURI").String())
	if err != nil {
		logrus.WithError(err).Error("gui: invalid page URL")
		return "/"
	}
	return fmt.Sprintf("%s://%s", u.Scheme, u.Host)
}

// ReadConfig reads the map parameters from the data-* attributes of the
// page, which carries the same markup as a /map response.
func ReadConfig(doc js.Value) (*fetch.MapFragment, error) {
	markup := doc.Get("body").Get("innerHTML").String()
	f, err := fetch.ParseMapFragment(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("gui: reading page configuration: %w", err)
	}
	return f, nil
}

// Viewport returns the size of the browser window.
func Viewport() chart.Viewport {
	w := js.Global().Get("window")
	return chart.Viewport{Width: w.Get("innerWidth").Int(), Height: w.Get("innerHeight").Int()}
}

// NewViewer returns a viewer of the backend at backend drawing into the
// current document.
func NewViewer(backend string, log logrus.FieldLogger) (*Viewer, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	client, err := fetch.NewClient(backend, fetch.WithLogger(log))
	if err != nil {
		return nil, err
	}
	v := &Viewer{
		doc:    js.Global().Get("document"),
		log:    log,
		client: client,
	}
	v.view = NewView(v.doc)
	v.panel = NewPanel(v.doc)

	var session, local geocache.Storage
	if s, err := NewStorage("sessionStorage"); err == nil {
		session = s
	} else {
		log.WithError(err).Info("gui: no session storage")
	}
	if s, err := NewStorage("localStorage"); err == nil {
		local = s
	} else {
		log.WithError(err).Info("gui: no local storage")
	}
	cache := geocache.New(session, local, log)

	charts := chart.NewPresenter(v.panel, &chart.EChartsRenderer{}, Viewport, log)
	v.c = controller.New(client, cache, charts, v.view, log)
	return v, nil
}

// Run creates the map from the page configuration and wires the page's
// controls. It returns once the first view is loaded.
func (v *Viewer) Run(ctx context.Context) error {
	cfg, err := ReadConfig(v.doc)
	if err != nil {
		v.view.ShowFatal(err.Error())
		return err
	}
	v.widget = NewWidget(v.doc, v.doc.Call("getElementById", "map"), func(id string) {
		go v.handle(func() error { return v.c.SelectCountry(ctx, id) })
	})
	v.bind(ctx)
	return v.c.Start(ctx, v.widget, cfg, true)
}

// handle runs a controller handler. Failures have been shown to the user
// by the controller, so they are only logged here.
func (v *Viewer) handle(f func() error) {
	if err := f(); err != nil {
		v.log.WithError(err).Debug("gui: handler failed")
	}
}
