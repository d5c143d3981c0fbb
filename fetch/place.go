package fetch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/ctessum/eeviewer"
	"github.com/ctessum/geom"
)

// NominatimURL is the default place search endpoint.
const NominatimURL = "https://nominatim.openstreetmap.org/search"

// Place is a place search result.
type Place struct {
	Name   string
	Bounds *geom.Bounds
}

type nominatimPlace struct {
	DisplayName string `json:"display_name"`
	// BoundingBox is min lat, max lat, min lon, max lon.
	BoundingBox []string `json:"boundingbox"`
}

// SearchPlace returns the best match for query from the Nominatim search
// API at endpoint. NominatimURL is used when endpoint is empty.
func (c *Client) SearchPlace(ctx context.Context, endpoint, query string) (*Place, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, &eeviewer.PreconditionError{Message: "Enter a place to search for"}
	}
	if endpoint == "" {
		endpoint = NominatimURL
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, &eeviewer.TransportError{Message: err.Error()}
	}
	v := u.Query()
	v.Set("format", "json")
	v.Set("limit", "1")
	v.Set("q", query)
	u.RawQuery = v.Encode()

	b, err := c.do(ctx, http.MethodGet, u.String(), "", nil)
	if err != nil {
		return nil, err
	}
	var places []nominatimPlace
	if err := json.Unmarshal(b, &places); err != nil {
		return nil, &eeviewer.ApplicationError{Message: "invalid place search response: " + err.Error()}
	}
	if len(places) == 0 {
		return nil, &eeviewer.ApplicationError{Message: "No place found for " + query}
	}
	p := places[0]
	if len(p.BoundingBox) != 4 {
		return nil, &eeviewer.ApplicationError{Message: "place search result has no bounds"}
	}
	var bb [4]float64
	for i, s := range p.BoundingBox {
		if bb[i], err = strconv.ParseFloat(s, 64); err != nil {
			return nil, &eeviewer.ApplicationError{Message: "invalid place bounds: " + err.Error()}
		}
	}
	return &Place{
		Name: p.DisplayName,
		Bounds: &geom.Bounds{
			Min: geom.Point{X: bb[2], Y: bb[0]},
			Max: geom.Point{X: bb[3], Y: bb[1]},
		},
	}, nil
}
