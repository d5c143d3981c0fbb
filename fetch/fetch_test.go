package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ctessum/eeviewer"
	"github.com/ctessum/geom"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

const luxembourg = `{"type":"FeatureCollection","features":[{"type":"Feature","id":"LUX",
"properties":{"name":"Luxembourg"},"geometry":{"type":"Polygon","coordinates":
[[[6.04,50.13],[6.24,49.90],[6.19,49.46],[5.90,49.44],[5.67,49.53],[5.78,50.09],[6.04,50.13]]]}}]}`

func newTestClient(t *testing.T, h http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := NewClient(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestClient_CountryDetail(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/details/0/FRA", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"elevation": 375.5}`)
	})
	mux.HandleFunc("/details/2/FRA", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"timeSeries": [[1000, 12.5], null, [2000, 13]]}`)
	})
	mux.HandleFunc("/details/5/FRA", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"error": "Earth Engine timeout"}`)
	})
	mux.HandleFunc("/details/6/FRA", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	c := newTestClient(t, mux)
	ctx := context.Background()

	t.Run("elevation", func(t *testing.T) {
		p, err := c.CountryDetail(ctx, eeviewer.Elevation, "FRA")
		if err != nil {
			t.Fatal(err)
		}
		want := &eeviewer.Payload{Kind: eeviewer.KindElevation, Elevation: 375.5}
		if !reflect.DeepEqual(p, want) {
			t.Errorf("%+v != %+v", p, want)
		}
	})

	t.Run("time series", func(t *testing.T) {
		p, err := c.CountryDetail(ctx, eeviewer.Temperature, "FRA")
		if err != nil {
			t.Fatal(err)
		}
		if p.Kind != eeviewer.KindTimeSeries || len(p.TimeSeries) != 2 {
			t.Fatalf("unexpected payload %+v", p)
		}
		if p.TimeSeries[1].Value != 13 {
			t.Errorf("%v != %v", p.TimeSeries[1].Value, 13)
		}
	})

	t.Run("application error", func(t *testing.T) {
		_, err := c.CountryDetail(ctx, eeviewer.ForestChange, "FRA")
		var ae *eeviewer.ApplicationError
		if !errors.As(err, &ae) {
			t.Fatalf("%T is not an application error", err)
		}
		if ae.Message != "Earth Engine timeout" {
			t.Errorf("%q != %q", ae.Message, "Earth Engine timeout")
		}
	})

	t.Run("transport error", func(t *testing.T) {
		_, err := c.CountryDetail(ctx, eeviewer.Vegetation, "FRA")
		var te *eeviewer.TransportError
		if !errors.As(err, &te) {
			t.Fatalf("%T is not a transport error", err)
		}
		if te.Status != http.StatusInternalServerError {
			t.Errorf("%d != %d", te.Status, http.StatusInternalServerError)
		}
		if msg := eeviewer.Notice(err); msg != eeviewer.RequestErrorMessage {
			t.Errorf("%q != %q", msg, eeviewer.RequestErrorMessage)
		}
	})

	t.Run("unreachable", func(t *testing.T) {
		c, err := NewClient("http://127.0.0.1:1")
		if err != nil {
			t.Fatal(err)
		}
		_, err = c.CountryDetail(ctx, eeviewer.Elevation, "FRA")
		var te *eeviewer.TransportError
		if !errors.As(err, &te) {
			t.Fatalf("%T is not a transport error", err)
		}
	})
}

func TestClient_AllDetail(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/details/0", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"FRA": {"elevation": 375}, "ESP": {"elevation": 660}, "XXX": null}`)
	})
	mux.HandleFunc("/static/details/mapid_1.json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"FRA": {"timeSeries": [[1000, 1]]}}`)
	})
	mux.HandleFunc("/details/1", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"error": "not available"}`)
	})
	c := newTestClient(t, mux)
	ctx := context.Background()

	m, err := c.AllDetail(ctx, eeviewer.Elevation)
	if err != nil {
		t.Fatal(err)
	}
	if len(m) != 3 || m["ESP"].Elevation != 660 || m["XXX"].Kind != eeviewer.KindError {
		t.Errorf("unexpected mapping %+v", m)
	}

	m, err = c.StaticDetail(ctx, eeviewer.Lights)
	if err != nil {
		t.Fatal(err)
	}
	if m["FRA"].Kind != eeviewer.KindTimeSeries {
		t.Errorf("%v != %v", m["FRA"].Kind, eeviewer.KindTimeSeries)
	}

	_, err = c.AllDetail(ctx, eeviewer.Lights)
	if msg := eeviewer.Notice(err); msg != "not available" {
		t.Errorf("%q != %q", msg, "not available")
	}
}

func TestClient_CustomRegionDetail(t *testing.T) {
	var body []byte
	mux := http.NewServeMux()
	mux.HandleFunc("/custom/5/7", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("%s != %s", r.Method, http.MethodPost)
		}
		var err error
		body, err = ioutil.ReadAll(r.Body)
		if err != nil {
			t.Error(err)
		}
		fmt.Fprint(w, `{"forestChange": [120, 0.01, 0.02]}`)
	})
	c := newTestClient(t, mux)

	ring := geom.Path{{X: 6, Y: 49}, {X: 7, Y: 49}, {X: 7, Y: 50}}
	p, err := c.CustomRegionDetail(context.Background(), eeviewer.ForestChange, 7, ring)
	if err != nil {
		t.Fatal(err)
	}
	want := eeviewer.ForestChangeData{TreeCover2000: 120, Gain: 0.01, Loss: 0.02}
	if p.ForestChange != want {
		t.Errorf("%+v != %+v", p.ForestChange, want)
	}

	fc, err := geojson.UnmarshalFeatureCollection(body)
	if err != nil {
		t.Fatal(err)
	}
	if len(fc.Features) != 1 {
		t.Fatalf("%d features", len(fc.Features))
	}
	f := fc.Features[0]
	if f.ID != "EXA" || f.Properties["name"] != eeviewer.CustomRegionName {
		t.Errorf("unexpected feature %v %v", f.ID, f.Properties)
	}
	wantPoly := orb.Polygon{{{6, 49}, {7, 49}, {7, 50}, {6, 49}}}
	if !orb.Equal(f.Geometry, wantPoly) {
		t.Errorf("%v != %v", f.Geometry, wantPoly)
	}

	t.Run("degenerate", func(t *testing.T) {
		_, err := c.CustomRegionDetail(context.Background(), eeviewer.ForestChange, 7, ring[:2])
		var pe *eeviewer.PreconditionError
		if !errors.As(err, &pe) {
			t.Errorf("%T is not a precondition error", err)
		}
	})
}

func TestClient_CountryName(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/country/LUX", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "Luxembourg\n")
	})
	c := newTestClient(t, mux)
	name, err := c.CountryName(context.Background(), "LUX")
	if err != nil {
		t.Fatal(err)
	}
	if name != "Luxembourg" {
		t.Errorf("%q != %q", name, "Luxembourg")
	}
	if _, err := c.CountryName(context.Background(), "ZZZ"); err == nil {
		t.Error("missing country should fail")
	}
}

func TestClient_Boundary(t *testing.T) {
	var requests int32
	release := make(chan struct{})
	mux := http.NewServeMux()
	mux.HandleFunc("/static/countries/LUX.geo.json", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		<-release
		fmt.Fprint(w, luxembourg)
	})
	c := newTestClient(t, mux)

	var wg sync.WaitGroup
	results := make([]*eeviewer.Boundary, 2)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			b, err := c.Boundary(context.Background(), "LUX")
			if err != nil {
				t.Error(err)
				return
			}
			results[i] = b
		}(i)
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	if n := atomic.LoadInt32(&requests); n != 1 {
		t.Errorf("%d requests != 1", n)
	}
	for _, b := range results {
		if b == nil || b.ID != "LUX" || b.Name != "Luxembourg" {
			t.Errorf("unexpected boundary %+v", b)
		}
	}
}

func TestClient_Map(t *testing.T) {
	const fragment = `<div id="map-container" data-map="3" data-mapid="abc123" data-token="tok"
data-countries='["FRA","ESP","LUX"]'><div id="map"></div></div>`
	mux := http.NewServeMux()
	mux.HandleFunc("/map/3", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, fragment)
	})
	mux.HandleFunc("/map/4", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<div id="map"></div>`)
	})
	c := newTestClient(t, mux)

	f, err := c.Map(context.Background(), eeviewer.WaterOccurrence)
	if err != nil {
		t.Fatal(err)
	}
	want := &MapFragment{
		Markup:    fragment,
		Layer:     eeviewer.WaterOccurrence,
		MapID:     "abc123",
		Token:     "tok",
		Countries: []string{"FRA", "ESP", "LUX"},
	}
	if !reflect.DeepEqual(f, want) {
		t.Errorf("%+v != %+v", f, want)
	}

	_, err = c.Map(context.Background(), eeviewer.WaterChange)
	var ae *eeviewer.ApplicationError
	if !errors.As(err, &ae) {
		t.Errorf("%T is not an application error", err)
	}
}

func TestRegionFeatureCollection(t *testing.T) {
	closed := geom.Path{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 0}}
	b, err := RegionFeatureCollection(closed)
	if err != nil {
		t.Fatal(err)
	}
	var doc struct {
		Type     string
		Features []struct {
			Geometry struct {
				Coordinates [][][2]float64
			}
		}
	}
	if err := json.Unmarshal(b, &doc); err != nil {
		t.Fatal(err)
	}
	if doc.Type != "FeatureCollection" {
		t.Errorf("%q != FeatureCollection", doc.Type)
	}
	if n := len(doc.Features[0].Geometry.Coordinates[0]); n != 4 {
		t.Errorf("closed ring should not be closed again: %d points", n)
	}
	if !strings.Contains(string(b), `"id":"EXA"`) {
		t.Errorf("missing feature id in %s", b)
	}
}

func TestClient_SearchPlace(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if f := r.URL.Query().Get("format"); f != "json" {
			t.Errorf("%v != %v", f, "json")
		}
		switch r.URL.Query().Get("q") {
		case "Paris":
			fmt.Fprint(w, `[{"display_name":"Paris, France","boundingbox":["48.8155755","48.902156","2.224122","2.4697602"]}]`)
		default:
			fmt.Fprint(w, `[]`)
		}
	}))
	defer srv.Close()
	c, err := NewClient("http://localhost")
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	p, err := c.SearchPlace(ctx, srv.URL, "Paris")
	if err != nil {
		t.Fatal(err)
	}
	want := &geom.Bounds{Min: geom.Point{X: 2.224122, Y: 48.8155755}, Max: geom.Point{X: 2.4697602, Y: 48.902156}}
	if p.Name != "Paris, France" || !reflect.DeepEqual(p.Bounds, want) {
		t.Errorf("%+v != %+v", p.Bounds, want)
	}

	t.Run("no match", func(t *testing.T) {
		var ae *eeviewer.ApplicationError
		if _, err := c.SearchPlace(ctx, srv.URL, "Atlantis"); !errors.As(err, &ae) {
			t.Errorf("%v is not an application error", err)
		}
	})

	t.Run("empty query", func(t *testing.T) {
		var pe *eeviewer.PreconditionError
		if _, err := c.SearchPlace(ctx, srv.URL, " "); !errors.As(err, &pe) {
			t.Errorf("%v is not a precondition error", err)
		}
	})
}
