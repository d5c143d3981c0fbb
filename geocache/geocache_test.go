package geocache

import (
	"reflect"
	"testing"

	"github.com/ctessum/eeviewer"
	"github.com/paulmach/orb"
)

func square(id string) *eeviewer.Boundary {
	return &eeviewer.Boundary{
		ID:       id,
		Name:     id + " land",
		Geometry: orb.Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}},
	}
}

func TestCache_Boundary(t *testing.T) {
	session := NewMemoryStorage(0)
	c := New(session, nil, nil)

	if _, ok := c.Boundary("FRA"); ok {
		t.Fatal("empty cache should miss")
	}
	c.PutBoundary(square("FRA"))
	b, ok := c.Boundary("FRA")
	if !ok || b.Name != "FRA land" {
		t.Fatalf("unexpected boundary %+v", b)
	}

	t.Run("restored from storage", func(t *testing.T) {
		c2 := New(session, nil, nil)
		b, ok := c2.Boundary("FRA")
		if !ok {
			t.Fatal("boundary should be restored")
		}
		if b.ID != "FRA" || !orb.Equal(b.Geometry, square("FRA").Geometry) {
			t.Errorf("%+v != %+v", b, square("FRA"))
		}
	})

	t.Run("quota exceeded", func(t *testing.T) {
		c := New(NewMemoryStorage(10), nil, nil)
		c.PutBoundary(square("ESP"))
		if _, ok := c.Boundary("ESP"); !ok {
			t.Error("boundary must stay cached in memory when storage is full")
		}
	})

	t.Run("clear", func(t *testing.T) {
		c.Clear()
		if _, ok := c.Boundary("FRA"); ok {
			t.Error("boundary should be gone")
		}
		if _, ok := session.Get(boundaryPrefix + "FRA"); ok {
			t.Error("stored boundary should be gone")
		}
	})
}

func TestCache_Payloads(t *testing.T) {
	local := NewMemoryStorage(0)
	c := New(nil, local, nil)

	m := map[string]*eeviewer.Payload{
		"FRA": {Kind: eeviewer.KindElevation, Elevation: 375},
	}
	c.ReplaceAllPayloads(eeviewer.Elevation, m)

	if !c.HasPayloads(eeviewer.Elevation) {
		t.Fatal("payloads should be resident")
	}
	if c.HasPayloads(eeviewer.Lights) {
		t.Error("only the active layer may be resident")
	}
	p, ok := c.Payload(eeviewer.Elevation, "FRA")
	if !ok || p.Elevation != 375 {
		t.Errorf("unexpected payload %+v", p)
	}
	if _, ok := c.Payload(eeviewer.Elevation, "ESP"); ok {
		t.Error("ESP should miss")
	}

	t.Run("replaced on layer change", func(t *testing.T) {
		c.ReplaceAllPayloads(eeviewer.Lights, map[string]*eeviewer.Payload{})
		if _, ok := c.Payload(eeviewer.Elevation, "FRA"); ok {
			t.Error("elevation payloads should be gone")
		}
	})

	t.Run("restored from storage", func(t *testing.T) {
		c.ReplaceAllPayloads(eeviewer.Elevation, m)
		c2 := New(nil, local, nil)
		p, ok := c2.Payload(eeviewer.Elevation, "FRA")
		if !ok || !reflect.DeepEqual(p, m["FRA"]) {
			t.Errorf("%+v != %+v", p, m["FRA"])
		}
	})

	t.Run("quota exceeded", func(t *testing.T) {
		c := New(nil, NewMemoryStorage(5), nil)
		c.ReplaceAllPayloads(eeviewer.Elevation, m)
		if _, ok := c.Payload(eeviewer.Elevation, "FRA"); !ok {
			t.Error("payloads must stay resident when storage is full")
		}
	})
}

func TestCache_PutPayload(t *testing.T) {
	local := NewMemoryStorage(0)
	c := New(nil, local, nil)
	p := &eeviewer.Payload{Kind: eeviewer.KindElevation, Elevation: 1}

	c.PutPayload(eeviewer.Elevation, "LUX", p)
	if got, ok := c.Payload(eeviewer.Elevation, "LUX"); !ok || got != p {
		t.Errorf("%+v != %+v", got, p)
	}
	if c.HasPayloads(eeviewer.Elevation) {
		t.Error("a single payload is not a complete mapping")
	}
	if _, ok := c.Payloads(eeviewer.Elevation); ok {
		t.Error("a single payload is not a complete mapping")
	}

	t.Run("restored as partial", func(t *testing.T) {
		c2 := New(nil, local, nil)
		if _, ok := c2.Payload(eeviewer.Elevation, "LUX"); !ok {
			t.Error("payload should be restored")
		}
		if c2.HasPayloads(eeviewer.Elevation) {
			t.Error("restored mapping should stay partial")
		}
	})

	t.Run("added to complete mapping", func(t *testing.T) {
		c.ReplaceAllPayloads(eeviewer.Elevation, map[string]*eeviewer.Payload{"FRA": p})
		c.PutPayload(eeviewer.Elevation, "LUX", p)
		m, ok := c.Payloads(eeviewer.Elevation)
		if !ok || len(m) != 2 {
			t.Errorf("unexpected mapping %v", m)
		}
	})

	t.Run("other layer replaces", func(t *testing.T) {
		c.PutPayload(eeviewer.Lights, "LUX", p)
		if _, ok := c.Payload(eeviewer.Elevation, "FRA"); ok {
			t.Error("elevation payloads should be gone")
		}
	})
}

func TestCache_Session(t *testing.T) {
	session := NewMemoryStorage(0)
	c := New(session, NewMemoryStorage(0), nil)

	cam, ok := c.Camera()
	if ok || cam != eeviewer.DefaultCamera {
		t.Errorf("%+v != %+v", cam, eeviewer.DefaultCamera)
	}

	want := eeviewer.Camera{Lat: 40.4, Lng: -3.7, Zoom: 6}
	c.SaveCamera(want)
	cam, ok = c.Camera()
	if !ok || cam != want {
		t.Errorf("%+v != %+v", cam, want)
	}

	p := &eeviewer.Payload{Kind: eeviewer.KindElevation, Elevation: 12}
	c.SaveLastPayload(p)
	last, ok := c.LastPayload()
	if !ok || !reflect.DeepEqual(last, p) {
		t.Errorf("%+v != %+v", last, p)
	}

	c.ReplaceAllPayloads(eeviewer.Elevation, map[string]*eeviewer.Payload{"FRA": p})
	c.ClearSession()
	if _, ok := c.Camera(); ok {
		t.Error("camera should be cleared")
	}
	if _, ok := c.LastPayload(); ok {
		t.Error("last payload should be cleared")
	}
	if c.HasPayloads(eeviewer.Elevation) {
		t.Error("payloads should be cleared")
	}
}

func TestMemoryStorage(t *testing.T) {
	s := NewMemoryStorage(8)
	if err := s.Set("a", "1234"); err != nil {
		t.Fatal(err)
	}
	if err := s.Set("b", "12345"); err != ErrQuotaExceeded {
		t.Errorf("%v != %v", err, ErrQuotaExceeded)
	}
	if err := s.Set("a", "123456"); err != nil {
		t.Errorf("overwriting should reuse space: %v", err)
	}
	s.Remove("a")
	if err := s.Set("b", "12345"); err != nil {
		t.Errorf("space should be released: %v", err)
	}
}
