package mapview

import (
	"math/rand"
	"strconv"
	"strings"
)

// Palette is the fixed set of colors used for country outlines and drawn
// polygons.
var Palette = []string{
	"aqua", "black", "blue", "fuchsia", "gray", "green", "lime", "maroon", "navy",
	"olive", "orange", "purple", "red", "silver", "teal", "white", "yellow",
}

// DrawColor is the color a new polygon is drawn in.
const DrawColor = "#ff0000"

// Color returns the palette color of the country id: the sum of its
// character codes modulo the palette size.
func Color(id string) string {
	sum := 0
	for _, r := range id {
		sum += int(r)
	}
	return Palette[sum%len(Palette)]
}

// RandomColor returns a random palette color.
func RandomColor(r *rand.Rand) string {
	n := 1 + 6*(1+r.Intn(100))
	return Palette[n%len(Palette)]
}

// Style is the way a boundary is drawn.
type Style struct {
	FillColor    string
	FillOpacity  float64
	StrokeColor  string
	StrokeWeight int
}

// BoundaryStyle returns the default style of a boundary drawn in color.
func BoundaryStyle(color string) Style {
	return Style{
		FillColor:    color,
		FillOpacity:  0.10,
		StrokeColor:  color,
		StrokeWeight: 2,
	}
}

// HighlightStyle returns s as shown for the selected country.
func HighlightStyle(s Style) Style {
	s.StrokeWeight = 4
	s.FillOpacity = 0.5
	return s
}

const tileServer = "https://earthengine.googleapis.com/map"

// TileURLTemplate returns the tile URL template of an Earth Engine map, with
// {z}, {x} and {y} standing in for the tile coordinates.
func TileURLTemplate(mapID, token string) string {
	return strings.Join([]string{tileServer, mapID, "{z}", "{x}", "{y}"}, "/") + "?token=" + token
}

// TileURL interpolates tile coordinates into template.
func TileURL(template string, x, y, z int) string {
	return strings.NewReplacer(
		"{x}", strconv.Itoa(x),
		"{y}", strconv.Itoa(y),
		"{z}", strconv.Itoa(z),
	).Replace(template)
}
