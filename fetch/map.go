package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/ctessum/eeviewer"
	"golang.org/x/net/html"
)

// MapFragment is the map container markup the backend renders for a layer,
// together with the configuration carried in its data attributes.
type MapFragment struct {
	Markup string

	Layer     eeviewer.Layer
	MapID     string
	Token     string
	Countries []string
}

// Map requests the map container of layer.
func (c *Client) Map(ctx context.Context, layer eeviewer.Layer) (*MapFragment, error) {
	b, err := c.get(ctx, "map", layer.ID())
	if err != nil {
		return nil, err
	}
	f, err := ParseMapFragment(bytes.NewReader(b))
	if err != nil {
		return nil, &eeviewer.ApplicationError{Message: err.Error()}
	}
	f.Markup = string(b)
	if !f.Layer.Valid() {
		f.Layer = layer
	}
	return f, nil
}

// ParseMapFragment reads the map configuration from the first element of r
// that carries a data-mapid attribute. The attributes read are data-map
// (layer), data-mapid, data-token and data-countries (a JSON array of
// country identifiers).
func ParseMapFragment(r io.Reader) (*MapFragment, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("fetch: parsing map fragment: %w", err)
	}
	n := findAttr(doc, "data-mapid")
	if n == nil {
		return nil, fmt.Errorf("fetch: map fragment has no data-mapid attribute")
	}
	attrs := make(map[string]string)
	for _, a := range n.Attr {
		attrs[a.Key] = a.Val
	}
	f := &MapFragment{
		Layer: -1,
		MapID: attrs["data-mapid"],
		Token: attrs["data-token"],
	}
	if v, ok := attrs["data-map"]; ok {
		l, err := eeviewer.ParseLayer(v)
		if err != nil {
			return nil, fmt.Errorf("fetch: map fragment: %w", err)
		}
		f.Layer = l
	}
	if v := attrs["data-countries"]; v != "" {
		if err := json.Unmarshal([]byte(v), &f.Countries); err != nil {
			return nil, fmt.Errorf("fetch: map fragment countries: %w", err)
		}
	}
	return f, nil
}

func findAttr(n *html.Node, key string) *html.Node {
	if n.Type == html.ElementNode {
		for _, a := range n.Attr {
			if a.Key == key {
				return n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if f := findAttr(c, key); f != nil {
			return f
		}
	}
	return nil
}
