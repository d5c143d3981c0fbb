package eeviewer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// PayloadKind tags the variant held by a Payload.
type PayloadKind int

// Payload variants.
const (
	KindNone PayloadKind = iota
	KindTimeSeries
	KindElevation
	KindHistogram
	KindForestChange
	KindError
)

func (k PayloadKind) String() string {
	switch k {
	case KindTimeSeries:
		return "timeSeries"
	case KindElevation:
		return "elevation"
	case KindHistogram:
		return "histogram"
	case KindForestChange:
		return "forestChange"
	case KindError:
		return "error"
	default:
		return "none"
	}
}

// Point is one sample of a time series.
type Point struct {
	Time  time.Time
	Value float64
}

// ForestChangeData holds the mean tree cover in 2000 (0-255) and the
// fractions of forest gain and loss of a region.
type ForestChangeData struct {
	TreeCover2000 float64
	Gain          float64
	Loss          float64
}

// Payload is the metric data returned for a country or a custom region.
// Exactly one of the variant fields is meaningful, selected by Kind.
type Payload struct {
	Kind         PayloadKind
	TimeSeries   []Point
	Elevation    float64
	Histogram    []float64
	BucketMeans  []float64
	ForestChange ForestChangeData
	Err          string
}

type wirePayload struct {
	TimeSeries   json.RawMessage `json:"timeSeries"`
	Elevation    json.RawMessage `json:"elevation"`
	Histogram    json.RawMessage `json:"histogram"`
	BucketMeans  json.RawMessage `json:"bucketMeans"`
	ForestChange json.RawMessage `json:"forestChange"`
	Error        json.RawMessage `json:"error"`
}

func isNull(b json.RawMessage) bool {
	return len(b) == 0 || bytes.Equal(bytes.TrimSpace(b), []byte("null"))
}

func malformed(field string, err error) error {
	return &ApplicationError{Message: fmt.Sprintf("malformed %s: %v", field, err)}
}

// DecodePayload decodes a single payload. Responses without any recognised
// data are reported as an *ApplicationError; a response carrying an "error"
// key decodes to a KindError payload.
func DecodePayload(b []byte) (*Payload, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil, &ApplicationError{Message: UndefinedErrorMessage}
	}
	var w wirePayload
	if err := json.Unmarshal(b, &w); err != nil {
		return nil, malformed("payload", err)
	}
	return w.decode()
}

func (w *wirePayload) decode() (*Payload, error) {
	switch {
	case !isNull(w.Error):
		var msg string
		if err := json.Unmarshal(w.Error, &msg); err != nil {
			msg = string(w.Error)
		}
		return &Payload{Kind: KindError, Err: msg}, nil
	case !isNull(w.TimeSeries):
		return decodeTimeSeries(w.TimeSeries)
	case !isNull(w.Elevation):
		var v float64
		if err := json.Unmarshal(w.Elevation, &v); err != nil {
			return nil, malformed("elevation", err)
		}
		return &Payload{Kind: KindElevation, Elevation: v}, nil
	case !isNull(w.Histogram):
		p := &Payload{Kind: KindHistogram}
		if err := json.Unmarshal(w.Histogram, &p.Histogram); err != nil {
			return nil, malformed("histogram", err)
		}
		if !isNull(w.BucketMeans) {
			if err := json.Unmarshal(w.BucketMeans, &p.BucketMeans); err != nil {
				return nil, malformed("bucketMeans", err)
			}
		}
		if len(p.Histogram) == 0 {
			return nil, &ApplicationError{Message: NoDataMessage}
		}
		return p, nil
	case !isNull(w.ForestChange):
		var v []*float64
		if err := json.Unmarshal(w.ForestChange, &v); err != nil {
			return nil, malformed("forestChange", err)
		}
		if len(v) != 3 {
			return nil, malformed("forestChange", fmt.Errorf("want 3 values, have %d", len(v)))
		}
		fc := ForestChangeData{}
		for i, dst := range []*float64{&fc.TreeCover2000, &fc.Gain, &fc.Loss} {
			if v[i] != nil {
				*dst = *v[i]
			}
		}
		return &Payload{Kind: KindForestChange, ForestChange: fc}, nil
	}
	return nil, &ApplicationError{Message: NoDataMessage}
}

// decodeTimeSeries decodes [[ms, value], ...]. Entries that are null or
// have a null value are skipped.
func decodeTimeSeries(b json.RawMessage) (*Payload, error) {
	var raw [][]*float64
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, malformed("timeSeries", err)
	}
	p := &Payload{Kind: KindTimeSeries, TimeSeries: make([]Point, 0, len(raw))}
	for i, r := range raw {
		if r == nil {
			continue
		}
		if len(r) != 2 {
			return nil, malformed("timeSeries", fmt.Errorf("entry %d has %d values", i, len(r)))
		}
		if r[0] == nil || r[1] == nil {
			continue
		}
		ms := int64(*r[0])
		p.TimeSeries = append(p.TimeSeries, Point{
			Time:  time.Unix(0, ms*int64(time.Millisecond)).UTC(),
			Value: *r[1],
		})
	}
	if len(p.TimeSeries) == 0 {
		return nil, &ApplicationError{Message: NoDataMessage}
	}
	return p, nil
}

// DecodePayloadMap decodes a mapping from country identifier to payload.
// A top-level {"error": ...} object is returned as an *ApplicationError.
// Entries that cannot be decoded are kept as KindError payloads, so a
// complete mapping still tells why a country has no chart.
func DecodePayloadMap(b []byte) (map[string]*Payload, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, malformed("payload map", err)
	}
	if e, ok := raw["error"]; ok {
		var msg string
		if err := json.Unmarshal(e, &msg); err == nil {
			return nil, &ApplicationError{Message: msg}
		}
	}
	o := make(map[string]*Payload, len(raw))
	for id, v := range raw {
		p, err := DecodePayload(v)
		if err != nil {
			p = &Payload{Kind: KindError, Err: NoDataMessage}
			var ae *ApplicationError
			if errors.As(err, &ae) && ae.Message != UndefinedErrorMessage {
				p.Err = ae.Message
			}
		}
		o[id] = p
	}
	return o, nil
}

// MarshalJSON encodes p in the wire format understood by DecodePayload.
func (p *Payload) MarshalJSON() ([]byte, error) {
	switch p.Kind {
	case KindTimeSeries:
		ts := make([][2]float64, len(p.TimeSeries))
		for i, pt := range p.TimeSeries {
			ts[i] = [2]float64{float64(pt.Time.UnixNano() / int64(time.Millisecond)), pt.Value}
		}
		return json.Marshal(map[string]interface{}{"timeSeries": ts})
	case KindElevation:
		return json.Marshal(map[string]interface{}{"elevation": p.Elevation})
	case KindHistogram:
		m := map[string]interface{}{"histogram": p.Histogram}
		if p.BucketMeans != nil {
			m["bucketMeans"] = p.BucketMeans
		}
		return json.Marshal(m)
	case KindForestChange:
		fc := p.ForestChange
		return json.Marshal(map[string]interface{}{
			"forestChange": []float64{fc.TreeCover2000, fc.Gain, fc.Loss},
		})
	case KindError:
		return json.Marshal(map[string]interface{}{"error": p.Err})
	}
	return []byte("{}"), nil
}

// UnmarshalJSON decodes p from the wire format.
func (p *Payload) UnmarshalJSON(b []byte) error {
	d, err := DecodePayload(b)
	if err != nil {
		return err
	}
	*p = *d
	return nil
}
