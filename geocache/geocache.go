// Package geocache holds the country boundaries and metric payloads fetched
// during a viewer session. Caching is best-effort: values are kept in memory
// for the session and mirrored to a Storage when it has room for them.
package geocache

import (
	"encoding/json"
	"strconv"
	"sync"

	"github.com/ctessum/eeviewer"
	"github.com/sirupsen/logrus"
)

// Storage keys.
const (
	boundaryPrefix = "boundary_"
	payloadsKey    = "map_data"
	lastPayloadKey = "data"
	latKey         = "lat"
	lngKey         = "lng"
	zoomKey        = "zoom"
)

// Cache is the viewer's read-through cache. Consumers check it before
// fetching and store every non-empty result they fetch.
type Cache struct {
	session Storage
	local   Storage
	log     logrus.FieldLogger

	mu          sync.Mutex
	boundaries  map[string]*eeviewer.Boundary
	payloads    map[string]*eeviewer.Payload
	layer       eeviewer.Layer
	hasPayloads bool
	partial     bool
}

// New returns a Cache persisting session-scoped entries to session and the
// layer payloads to local. Either may be nil.
func New(session, local Storage, log logrus.FieldLogger) *Cache {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Cache{
		session:    session,
		local:      local,
		log:        log,
		boundaries: make(map[string]*eeviewer.Boundary),
	}
}

type storedPayloads struct {
	Layer    eeviewer.Layer               `json:"layer"`
	Partial  bool                         `json:"partial,omitempty"`
	Payloads map[string]*eeviewer.Payload `json:"payloads"`
}

func (c *Cache) write(s Storage, key string, v interface{}) {
	if s == nil {
		return
	}
	var value string
	switch vv := v.(type) {
	case string:
		value = vv
	default:
		b, err := json.Marshal(v)
		if err != nil {
			c.log.WithError(err).WithField("key", key).Debug("geocache: encoding entry")
			return
		}
		value = string(b)
	}
	if err := s.Set(key, value); err != nil {
		c.log.WithError(err).WithField("key", key).Debug("geocache: dropping write")
	}
}

// Boundary returns the cached boundary of the country id.
func (c *Cache) Boundary(id string) (*eeviewer.Boundary, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if b, ok := c.boundaries[id]; ok {
		return b, true
	}
	if c.session == nil {
		return nil, false
	}
	v, ok := c.session.Get(boundaryPrefix + id)
	if !ok {
		return nil, false
	}
	b := new(eeviewer.Boundary)
	if err := json.Unmarshal([]byte(v), b); err != nil {
		c.log.WithError(err).WithField("country", id).Debug("geocache: discarding stored boundary")
		c.session.Remove(boundaryPrefix + id)
		return nil, false
	}
	b.ID = id
	c.boundaries[id] = b
	return b, true
}

// PutBoundary stores b for the rest of the session.
func (c *Cache) PutBoundary(b *eeviewer.Boundary) {
	if b == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.boundaries[b.ID] = b
	c.write(c.session, boundaryPrefix+b.ID, b)
}

// Payload returns the cached payload of country id under layer.
func (c *Cache) Payload(layer eeviewer.Layer, id string) (*eeviewer.Payload, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.loadPayloads() || c.layer != layer {
		return nil, false
	}
	p, ok := c.payloads[id]
	return p, ok
}

// HasPayloads returns whether the payloads of all countries are resident
// for layer.
func (c *Cache) HasPayloads(layer eeviewer.Layer) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadPayloads() && c.layer == layer && !c.partial
}

// Payloads returns a copy of the complete mapping for layer.
func (c *Cache) Payloads(layer eeviewer.Layer) (map[string]*eeviewer.Payload, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.loadPayloads() || c.layer != layer || c.partial {
		return nil, false
	}
	o := make(map[string]*eeviewer.Payload, len(c.payloads))
	for k, v := range c.payloads {
		o[k] = v
	}
	return o, true
}

// loadPayloads restores the payload mapping from local storage if none is
// resident. c.mu must be held.
func (c *Cache) loadPayloads() bool {
	if c.hasPayloads {
		return true
	}
	if c.local == nil {
		return false
	}
	v, ok := c.local.Get(payloadsKey)
	if !ok {
		return false
	}
	var sp storedPayloads
	if err := json.Unmarshal([]byte(v), &sp); err != nil || !sp.Layer.Valid() {
		c.log.WithError(err).Debug("geocache: discarding stored payloads")
		c.local.Remove(payloadsKey)
		return false
	}
	if sp.Payloads == nil {
		sp.Payloads = make(map[string]*eeviewer.Payload)
	}
	c.layer, c.payloads, c.hasPayloads, c.partial = sp.Layer, sp.Payloads, true, sp.Partial
	return true
}

// ReplaceAllPayloads makes m, holding the payloads of all countries, the
// only resident payload mapping.
func (c *Cache) ReplaceAllPayloads(layer eeviewer.Layer, m map[string]*eeviewer.Payload) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if m == nil {
		m = make(map[string]*eeviewer.Payload)
	}
	c.layer, c.payloads, c.hasPayloads, c.partial = layer, m, true, false
	c.storePayloads()
}

// PutPayload adds the payload of the country id under layer. A mapping
// resident for another layer is replaced.
func (c *Cache) PutPayload(layer eeviewer.Layer, id string, p *eeviewer.Payload) {
	if p == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.loadPayloads() || c.layer != layer {
		c.layer, c.payloads, c.hasPayloads, c.partial = layer, make(map[string]*eeviewer.Payload), true, true
	}
	c.payloads[id] = p
	c.storePayloads()
}

// storePayloads mirrors the resident mapping to local storage. c.mu must
// be held.
func (c *Cache) storePayloads() {
	if c.local == nil {
		return
	}
	c.local.Remove(payloadsKey)
	c.write(c.local, payloadsKey, storedPayloads{Layer: c.layer, Partial: c.partial, Payloads: c.payloads})
}

// DropPayloads removes the resident payload mapping.
func (c *Cache) DropPayloads() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dropPayloads()
}

func (c *Cache) dropPayloads() {
	c.payloads, c.hasPayloads, c.partial = nil, false, false
	if c.local != nil {
		c.local.Remove(payloadsKey)
	}
}

// SaveCamera stores the current map position.
func (c *Cache) SaveCamera(cam eeviewer.Camera) {
	c.write(c.session, latKey, strconv.FormatFloat(cam.Lat, 'f', -1, 64))
	c.write(c.session, lngKey, strconv.FormatFloat(cam.Lng, 'f', -1, 64))
	c.write(c.session, zoomKey, strconv.Itoa(cam.Zoom))
}

// Camera returns the stored map position. A missing latitude or longitude
// yields the default position; a missing zoom the default zoom.
func (c *Cache) Camera() (eeviewer.Camera, bool) {
	cam := eeviewer.DefaultCamera
	if c.session == nil {
		return cam, false
	}
	lat, okLat := c.session.Get(latKey)
	lng, okLng := c.session.Get(lngKey)
	restored := false
	if okLat && okLng {
		la, err1 := strconv.ParseFloat(lat, 64)
		ln, err2 := strconv.ParseFloat(lng, 64)
		if err1 == nil && err2 == nil {
			cam.Lat, cam.Lng = la, ln
			restored = true
		}
	}
	if z, ok := c.session.Get(zoomKey); ok {
		if zi, err := strconv.Atoi(z); err == nil {
			cam.Zoom = zi
		}
	}
	return cam, restored
}

// SaveLastPayload stores the payload currently on display.
func (c *Cache) SaveLastPayload(p *eeviewer.Payload) {
	if p == nil {
		return
	}
	c.write(c.session, lastPayloadKey, p)
}

// LastPayload returns the payload last stored by SaveLastPayload.
func (c *Cache) LastPayload() (*eeviewer.Payload, bool) {
	if c.session == nil {
		return nil, false
	}
	v, ok := c.session.Get(lastPayloadKey)
	if !ok {
		return nil, false
	}
	p, err := eeviewer.DecodePayload([]byte(v))
	if err != nil {
		return nil, false
	}
	return p, true
}

// ClearSession removes the stored camera, last payload and payload mapping.
// Boundaries are kept.
func (c *Cache) ClearSession() {
	if c.session != nil {
		for _, k := range []string{zoomKey, latKey, lngKey, lastPayloadKey} {
			c.session.Remove(k)
		}
	}
	c.DropPayloads()
}

// Clear empties the cache, boundaries included.
func (c *Cache) Clear() {
	c.ClearSession()
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session != nil {
		for id := range c.boundaries {
			c.session.Remove(boundaryPrefix + id)
		}
	}
	c.boundaries = make(map[string]*eeviewer.Boundary)
}
