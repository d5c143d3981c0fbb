// Package fetch is the viewer's client of the map backend.
package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"path"
	"runtime"
	"strconv"
	"strings"

	"github.com/ctessum/eeviewer"
	"github.com/ctessum/geom"
	"github.com/ctessum/requestcache"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/sirupsen/logrus"
)

// Client requests map data from the backend. Every call makes at most one
// request; failures are never retried.
type Client struct {
	base *url.URL
	hc   *http.Client
	log  logrus.FieldLogger

	boundaries *requestcache.Cache
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

// WithLogger sets the logger of the client.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Client) { c.log = log }
}

// NewClient returns a client of the backend at base.
func NewClient(base string, opts ...Option) (*Client, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("fetch: invalid base URL %q: %w", base, err)
	}
	c := &Client{
		base: u,
		hc:   http.DefaultClient,
		log:  logrus.StandardLogger(),
	}
	for _, o := range opts {
		o(c)
	}
	c.boundaries = requestcache.NewCache(c.loadBoundary, runtime.GOMAXPROCS(-1), requestcache.Deduplicate())
	return c, nil
}

func (c *Client) url(elem ...string) string {
	u := *c.base
	u.Path = path.Join(append([]string{"/", c.base.Path}, elem...)...)
	return u.String()
}

func (c *Client) do(ctx context.Context, method, u, contentType string, body io.Reader) ([]byte, error) {
	log := c.log.WithFields(logrus.Fields{"method": method, "url": u})
	req, err := http.NewRequest(method, u, body)
	if err != nil {
		return nil, &eeviewer.TransportError{Message: err.Error()}
	}
	req = req.WithContext(ctx)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	log.Debug("fetch: request")
	resp, err := c.hc.Do(req)
	if err != nil {
		log.WithError(err).Debug("fetch: request failed")
		return nil, &eeviewer.TransportError{Message: err.Error()}
	}
	defer resp.Body.Close()
	b, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		log.WithError(err).Debug("fetch: reading response")
		return nil, &eeviewer.TransportError{Status: resp.StatusCode, Message: err.Error()}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := strings.TrimSpace(string(b))
		if msg == "" || len(msg) > 200 {
			msg = http.StatusText(resp.StatusCode)
		}
		log.WithField("status", resp.StatusCode).Debug("fetch: request failed")
		return nil, &eeviewer.TransportError{Status: resp.StatusCode, Message: msg}
	}
	return b, nil
}

func (c *Client) get(ctx context.Context, elem ...string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, c.url(elem...), "", nil)
}

// payload decodes a single payload, turning an error payload into an
// *eeviewer.ApplicationError.
func payload(b []byte) (*eeviewer.Payload, error) {
	p, err := eeviewer.DecodePayload(b)
	if err != nil {
		return nil, err
	}
	if p.Kind == eeviewer.KindError {
		return nil, &eeviewer.ApplicationError{Message: p.Err}
	}
	return p, nil
}

// CountryDetail returns the payload of the country id under layer.
func (c *Client) CountryDetail(ctx context.Context, layer eeviewer.Layer, id string) (*eeviewer.Payload, error) {
	b, err := c.get(ctx, "details", layer.ID(), id)
	if err != nil {
		return nil, err
	}
	return payload(b)
}

// AllDetail returns the payloads of all countries under layer.
func (c *Client) AllDetail(ctx context.Context, layer eeviewer.Layer) (map[string]*eeviewer.Payload, error) {
	b, err := c.get(ctx, "details", layer.ID())
	if err != nil {
		return nil, err
	}
	return eeviewer.DecodePayloadMap(b)
}

// StaticDetail returns the precomputed payloads of all countries under layer.
func (c *Client) StaticDetail(ctx context.Context, layer eeviewer.Layer) (map[string]*eeviewer.Payload, error) {
	b, err := c.get(ctx, StaticDetailPath(layer))
	if err != nil {
		return nil, err
	}
	return eeviewer.DecodePayloadMap(b)
}

// StaticDetailPath returns the path of the precomputed payloads of layer.
func StaticDetailPath(layer eeviewer.Layer) string {
	return "static/details/mapid_" + layer.ID() + ".json"
}

// CustomRegionDetail returns the payload of the region enclosed by ring
// under layer, computed at the resolution of the map zoom level.
func (c *Client) CustomRegionDetail(ctx context.Context, layer eeviewer.Layer, zoom int, ring geom.Path) (*eeviewer.Payload, error) {
	body, err := RegionFeatureCollection(ring)
	if err != nil {
		return nil, err
	}
	// The backend reads the GeoJSON document as the first form key.
	b, err := c.do(ctx, http.MethodPost, c.url("custom", layer.ID(), strconv.Itoa(zoom)),
		"application/x-www-form-urlencoded; charset=UTF-8", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	return payload(b)
}

// RegionFeatureCollection encodes ring as a FeatureCollection holding a
// single one-ring polygon.
func RegionFeatureCollection(ring geom.Path) ([]byte, error) {
	if len(ring) < 3 {
		return nil, &eeviewer.PreconditionError{Message: "A polygon needs at least three points"}
	}
	r := make(orb.Ring, 0, len(ring)+1)
	for _, p := range ring {
		r = append(r, orb.Point{p.X, p.Y})
	}
	if !r[0].Equal(r[len(r)-1]) {
		r = append(r, r[0])
	}
	f := geojson.NewFeature(orb.Polygon{r})
	f.ID = "EXA"
	f.Properties["name"] = eeviewer.CustomRegionName
	fc := geojson.NewFeatureCollection()
	fc.Append(f)
	return json.Marshal(fc)
}

// CountryName returns the display name of the country id.
func (c *Client) CountryName(ctx context.Context, id string) (string, error) {
	b, err := c.get(ctx, "country", id)
	if err != nil {
		return "", err
	}
	name := strings.TrimSpace(string(b))
	if name == "" {
		return "", &eeviewer.ApplicationError{Message: "no name for country " + id}
	}
	return name, nil
}

// Boundary returns the boundary of the country id. Concurrent requests for
// the same country share a single download.
func (c *Client) Boundary(ctx context.Context, id string) (*eeviewer.Boundary, error) {
	r, err := c.boundaries.NewRequest(ctx, id, id).Result()
	if err != nil {
		return nil, err
	}
	return r.(*eeviewer.Boundary), nil
}

func (c *Client) loadBoundary(ctx context.Context, r interface{}) (interface{}, error) {
	id := r.(string)
	b, err := c.get(ctx, "static", "countries", id+".geo.json")
	if err != nil {
		return nil, err
	}
	bd, err := eeviewer.DecodeBoundary(id, b)
	if err != nil {
		return nil, &eeviewer.ApplicationError{Message: err.Error()}
	}
	bd.ID = id
	return bd, nil
}
