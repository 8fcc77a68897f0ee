// Package data contains the input records drawn by pathplot: paths and their
// nodes, dataset descriptions and per-node summary statistics, together with
// a prototypical in-memory data store.
package data

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// Node is one node of a path.
type Node struct {
	ID   string
	Name string
}

// Path is an ordered list of nodes.
type Path struct {
	ID    string
	Nodes []Node
}

// MatrixType is the Type of datasets carrying a value range.
const MatrixType = "matrix"

// Dataset describes one dataset which can be attached to a path.
type Dataset struct {
	ID    string
	Name  string
	Color string // CSS hex color, e.g. "#1f77b4"
	Type  string

	// Stats holds the value range of the dataset. It is only meaningful
	// for datasets of MatrixType.
	Stats struct {
		Min, Max float64
	}
}

// Range returns the value range of d. Non-matrix datasets have the unset
// range [NaN,NaN].
func (d Dataset) Range() (min, max float64) {
	if d.Type != MatrixType {
		return math.NaN(), math.NaN()
	}
	return d.Stats.Min, d.Stats.Max
}

// Stats is the statistical summary of the values of one dataset (or one
// group of a dataset) at one node. The IQR bounds are the lowest and highest
// values inside the 1.5×IQR range; they are NaN if there is no such value.
type Stats struct {
	Quartile25, Quartile75 float64
	Median                 float64
	Mean                   float64
	Std                    float64
	IQRMin, IQRMax         float64
	NumElements            int
	NaNs                   int
	Min, Max               float64
}

// EmptyStats returns the summary of no values: all values NaN.
func EmptyStats() Stats {
	nan := math.NaN()
	return Stats{
		Quartile25: nan, Quartile75: nan,
		Median: nan, Mean: nan, Std: nan,
		IQRMin: nan, IQRMax: nan,
		Min: nan, Max: nan,
	}
}

// ParseHexColor parses colors of the form "#rgb" or "#rrggbb".
func ParseHexColor(s string) (color.Color, error) {
	h, ok := strings.CutPrefix(s, "#")
	if !ok {
		return nil, fmt.Errorf("data: bad color %q: missing '#'", s)
	}
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return nil, fmt.Errorf("data: bad color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("data: bad color %q: %w", s, err)
	}
	return color.NRGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}, nil
}
