package chart

import (
	"bytes"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/ctessum/eeviewer"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DateFormat is the layout dates are shown and exported in.
const DateFormat = "Jan 2, 2006"

// Table is the data behind a chart. Cells are time.Time, float64 or string.
type Table struct {
	Columns []string
	Rows    [][]interface{}
}

// Values returns the numeric cells of column col.
func (t *Table) Values(col int) []float64 {
	o := make([]float64, 0, len(t.Rows))
	for _, r := range t.Rows {
		if col >= len(r) {
			continue
		}
		if v, ok := r[col].(float64); ok {
			o = append(o, v)
		}
	}
	return o
}

// Labels returns the cells of column col formatted as text.
func (t *Table) Labels(col int) []string {
	o := make([]string, 0, len(t.Rows))
	for _, r := range t.Rows {
		if col >= len(r) {
			o = append(o, "")
			continue
		}
		o = append(o, formatCell(r[col]))
	}
	return o
}

func formatCell(c interface{}) string {
	switch v := c.(type) {
	case time.Time:
		return v.UTC().Format(DateFormat)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

const (
	csvDelimiter = ";"
	csvNewline   = "\r\n"
)

// CSV writes t as delimited text. Delimiter characters are removed from
// cell and header text.
func (t *Table) CSV() []byte {
	b := new(bytes.Buffer)
	clean := func(s string) string { return strings.Replace(s, csvDelimiter, "", -1) }
	cols := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		cols[i] = clean(c)
	}
	b.WriteString(strings.Join(cols, csvDelimiter))
	b.WriteString(csvNewline)
	for _, r := range t.Rows {
		cells := make([]string, len(t.Columns))
		for j := range t.Columns {
			if j < len(r) {
				cells[j] = clean(formatCell(r[j]))
			}
		}
		b.WriteString(strings.Join(cells, csvDelimiter))
		b.WriteString(csvNewline)
	}
	return b.Bytes()
}

// MergeDuplicates returns pts with each pair of adjacent samples sharing a
// timestamp replaced by one sample holding their mean. A sample that was
// already merged is not merged again.
func MergeDuplicates(pts []eeviewer.Point) []eeviewer.Point {
	o := make([]eeviewer.Point, 0, len(pts))
	for i := 0; i < len(pts); i++ {
		p := pts[i]
		if i+1 < len(pts) && pts[i+1].Time.Equal(p.Time) {
			p.Value = stat.Mean([]float64{p.Value, pts[i+1].Value}, nil)
			i++
		}
		o = append(o, p)
	}
	return o
}

// Bins groups values into equal-width bins, returning the lower edge of
// each bin and the number of values in it.
func Bins(values []float64) (edges, counts []float64) {
	if len(values) == 0 {
		return nil, nil
	}
	x := append([]float64(nil), values...)
	sort.Float64s(x)
	min, max := x[0], x[len(x)-1]
	n := int(math.Ceil(math.Sqrt(float64(len(x)))))
	if n > 20 {
		n = 20
	}
	if max <= min {
		n = 1
		max = min + 1
	}
	dividers := make([]float64, n+1)
	floats.Span(dividers, min, max)
	// The last bin includes the maximum.
	dividers[n] = math.Nextafter(max, math.Inf(1))
	counts = stat.Histogram(nil, dividers, x, nil)
	return dividers[:n], counts
}
