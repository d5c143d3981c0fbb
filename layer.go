// Package eeviewer holds the types shared by the Earth Engine map viewer:
// the selectable raster layers, the metric payloads the backend returns for
// them, country boundaries and the errors the viewer reports to the user.
package eeviewer

import (
	"fmt"
	"strconv"
)

// Layer is one of the selectable raster/metric datasets.
type Layer int

// The available layers, in the order the backend numbers them.
const (
	Elevation Layer = iota
	Lights
	Temperature
	WaterOccurrence
	WaterChange
	ForestChange
	Vegetation
)

// NumLayers is the number of available layers.
const NumLayers = 7

// InitialLayer is the layer shown on first page load.
const InitialLayer = ForestChange

var layerTitles = [NumLayers]string{
	"Elevation",
	"Lights",
	"Temperature",
	"Water Occurrence",
	"Water Change",
	"Forest Change",
	"Vegetation",
}

var layerInfo = [NumLayers]string{
	"The SRTM elevation map uses a scale from 0 to 3000 using a spectrum palette of blue, green and red, where blue indicates less height and red the most",
	"NOAA Lights map give us a representation of the brightness of each country",
	"The MODIS Land Surface Temperature map runs on a scale of 0 to 40°C, where blue indicates colder values and red indicates warmer values. White indicates values in the middle of the spectrum, around 20°C",
	"Water Occurrence provides a summary of where and how often surface water occurred over time, using red as minimum and blue as maximum",
	"The Water Change map shows the places that water has reduced in red and in green where it has grown",
	"The Forest Change map represents forest change, is green where there's forest, red where there's forest loss, blue where there's forest gain, and magenta where there's both gain and loss.",
	"The MODIS Normalized Difference Vegetation Index (NDVI) map runs on a scale of 0 to 1, where white and brown indicate no to low vegetation, and green to black indicate medium to high vegetation.",
}

// SeriesOptions holds the labels of a time-series chart for a layer.
type SeriesOptions struct {
	Title  string
	HAxis  string
	VAxis  string
	Legend string
}

var layerSeries = [NumLayers]SeriesOptions{
	{Title: "High", HAxis: "Date", VAxis: "Elevation"},
	{Title: "Lights", HAxis: "Date", VAxis: "Luminosity"},
	{Title: "Temperature", HAxis: "Date", VAxis: "Celsius Degrees"},
	{Title: "Water Occurrence Change Intensity", HAxis: "Date", VAxis: "Water"},
	{Title: "Water Change", HAxis: "Date", VAxis: "Water",
		Legend: "0: 'No observations', 1: 'Not water', 2: 'Seasonal water', 3: 'Permanent water'"},
	{Title: "Forest Change", HAxis: "Date", VAxis: "Pixels representing loss"},
	{Title: "Vegetation Index", HAxis: "Date", VAxis: "NDVI"},
}

// ParseLayer parses a layer identifier such as "3".
func ParseLayer(s string) (Layer, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return -1, fmt.Errorf("eeviewer: invalid layer %q", s)
	}
	l := Layer(i)
	if !l.Valid() {
		return -1, fmt.Errorf("eeviewer: layer %d does not exist", i)
	}
	return l, nil
}

// Valid returns whether l is one of the known layers.
func (l Layer) Valid() bool { return l >= 0 && l < NumLayers }

// ID returns the identifier the backend uses for l.
func (l Layer) ID() string { return strconv.Itoa(int(l)) }

func (l Layer) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Layer(%d)", int(l))
	}
	return layerTitles[l]
}

// Info returns the description shown in the map information panel.
func (l Layer) Info() string {
	if !l.Valid() {
		return ""
	}
	return layerInfo[l]
}

// SeriesOptions returns the labels used when charting a time series for l.
func (l Layer) SeriesOptions() SeriesOptions {
	if !l.Valid() {
		return SeriesOptions{}
	}
	return layerSeries[l]
}
