package eeviewer

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"
)

func ms(t time.Time) float64 { return float64(t.UnixNano() / int64(time.Millisecond)) }

func TestDecodePayload(t *testing.T) {
	t0 := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	t1 := time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)

	t.Run("elevation", func(t *testing.T) {
		p, err := DecodePayload([]byte(`{"elevation": 812}`))
		if err != nil {
			t.Fatal(err)
		}
		want := &Payload{Kind: KindElevation, Elevation: 812}
		if !reflect.DeepEqual(p, want) {
			t.Errorf("%+v != %+v", p, want)
		}
	})

	t.Run("elevation zero", func(t *testing.T) {
		p, err := DecodePayload([]byte(`{"elevation": 0}`))
		if err != nil {
			t.Fatal(err)
		}
		if p.Kind != KindElevation || p.Elevation != 0 {
			t.Errorf("unexpected payload %+v", p)
		}
	})

	t.Run("timeSeries", func(t *testing.T) {
		b, _ := json.Marshal(map[string]interface{}{
			"timeSeries": []interface{}{
				[]float64{ms(t0), 1.5},
				nil,
				[]interface{}{ms(t1), nil},
				[]float64{ms(t1), 2.5},
			},
		})
		p, err := DecodePayload(b)
		if err != nil {
			t.Fatal(err)
		}
		want := []Point{{Time: t0, Value: 1.5}, {Time: t1, Value: 2.5}}
		if p.Kind != KindTimeSeries {
			t.Fatalf("kind %v", p.Kind)
		}
		if !reflect.DeepEqual(p.TimeSeries, want) {
			t.Errorf("%v != %v", p.TimeSeries, want)
		}
	})

	t.Run("histogram", func(t *testing.T) {
		p, err := DecodePayload([]byte(`{"histogram": [1, 4, 2], "bucketMeans": [-10, 0, 10], "bucketWidth": 10}`))
		if err != nil {
			t.Fatal(err)
		}
		want := &Payload{Kind: KindHistogram, Histogram: []float64{1, 4, 2}, BucketMeans: []float64{-10, 0, 10}}
		if !reflect.DeepEqual(p, want) {
			t.Errorf("%+v != %+v", p, want)
		}
	})

	t.Run("forestChange", func(t *testing.T) {
		p, err := DecodePayload([]byte(`{"forestChange": [127.5, 0.01, null]}`))
		if err != nil {
			t.Fatal(err)
		}
		want := ForestChangeData{TreeCover2000: 127.5, Gain: 0.01}
		if p.Kind != KindForestChange || p.ForestChange != want {
			t.Errorf("%+v != %+v", p.ForestChange, want)
		}
	})

	t.Run("error", func(t *testing.T) {
		p, err := DecodePayload([]byte(`{"error": "Earth Engine quota"}`))
		if err != nil {
			t.Fatal(err)
		}
		if p.Kind != KindError || p.Err != "Earth Engine quota" {
			t.Errorf("unexpected payload %+v", p)
		}
	})

	for _, tc := range []struct {
		name, body, msg string
	}{
		{"null", `null`, UndefinedErrorMessage},
		{"empty", ``, UndefinedErrorMessage},
		{"no data", `{}`, NoDataMessage},
		{"null elevation", `{"elevation": null}`, NoDataMessage},
		{"empty series", `{"timeSeries": []}`, NoDataMessage},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodePayload([]byte(tc.body))
			var ae *ApplicationError
			if !errors.As(err, &ae) {
				t.Fatalf("want ApplicationError, have %v", err)
			}
			if ae.Message != tc.msg {
				t.Errorf("%q != %q", ae.Message, tc.msg)
			}
		})
	}

	for _, body := range []string{
		`{"elevation": "high"}`,
		`{"timeSeries": [[1, 2, 3]]}`,
		`{"forestChange": [1, 2]}`,
		`[1, 2]`,
	} {
		t.Run("malformed "+body, func(t *testing.T) {
			_, err := DecodePayload([]byte(body))
			var ae *ApplicationError
			if !errors.As(err, &ae) {
				t.Errorf("want ApplicationError, have %v", err)
			}
		})
	}
}

func TestPayloadRoundTrip(t *testing.T) {
	t0 := time.Date(2010, time.June, 1, 0, 0, 0, 0, time.UTC)
	for _, p := range []*Payload{
		{Kind: KindElevation, Elevation: 812},
		{Kind: KindTimeSeries, TimeSeries: []Point{{Time: t0, Value: 3}}},
		{Kind: KindHistogram, Histogram: []float64{1, 2}},
		{Kind: KindForestChange, ForestChange: ForestChangeData{TreeCover2000: 200, Gain: 0.1, Loss: 0.2}},
		{Kind: KindError, Err: "boom"},
	} {
		b, err := json.Marshal(p)
		if err != nil {
			t.Fatal(err)
		}
		var out Payload
		if err := json.Unmarshal(b, &out); err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(&out, p) {
			t.Errorf("%+v != %+v", out, p)
		}
	}
}

func TestDecodePayloadMap(t *testing.T) {
	m, err := DecodePayloadMap([]byte(`{"FRA": {"elevation": 375}, "ESP": {"elevation": 660}, "ATA": {},
		"GRL": {"timeSeries": []}, "NOR": null, "SWE": {"elevation": "x"}}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(m) != 6 {
		t.Fatalf("have %d entries", len(m))
	}
	if m["ESP"].Elevation != 660 {
		t.Errorf("ESP: %v", m["ESP"])
	}
	for _, id := range []string{"ATA", "GRL", "NOR"} {
		if p := m[id]; p.Kind != KindError || p.Err != NoDataMessage {
			t.Errorf("%s: %+v", id, p)
		}
	}
	if p := m["SWE"]; p.Kind != KindError || !strings.HasPrefix(p.Err, "malformed elevation") {
		t.Errorf("SWE: %+v", p)
	}

	_, err = DecodePayloadMap([]byte(`{"error": "Not implemented yet"}`))
	var ae *ApplicationError
	if !errors.As(err, &ae) || ae.Message != "Not implemented yet" {
		t.Errorf("unexpected error %v", err)
	}
}
