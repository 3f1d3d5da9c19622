package plots

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dichalcogenides/sample"
)

var (
	// ErrEmptyFigure indicates a figure with no finite sample to draw.
	ErrEmptyFigure = errors.New("plots: figure has nothing to draw")

	// ErrSeriesLength indicates a series whose X and Y differ in length.
	ErrSeriesLength = errors.New("plots: series X and Y lengths differ")

	// ErrUnsupportedFormat indicates an export format gonum/plot cannot write.
	ErrUnsupportedFormat = errors.New("plots: unsupported export format")
)

// Style selects how a curve is stroked.
type Style int

const (
	// StyleAuto cycles through the plotutil palette.
	StyleAuto Style = iota
	// StyleBlack is a solid black curve.
	StyleBlack
	// StyleDashed is a dashed black curve.
	StyleDashed
	// StyleThin is a thin gray stroke for axes and dimension bars.
	StyleThin
)

// Series is one sampled curve.
type Series struct {
	Label string
	X, Y  []float64
	Style Style
}

// Line is a reference line spanning the plot at Value. Horizontal unless
// Vertical is set.
type Line struct {
	Value    float64
	Vertical bool
	Style    Style
}

// Label places Text at (X, Y) in data coordinates.
type Label struct {
	X, Y float64
	Text string
}

// Figure describes everything a Renderer draws. Name is the export file
// stem.
type Figure struct {
	Name   string
	Title  string
	XLabel string
	YLabel string

	Series []Series
	Lines  []Line
	Labels []Label

	Legend   bool
	HideAxes bool
}

// Validate reports whether f has at least one finite point to draw and
// consistent series.
func (f *Figure) Validate() error {
	points := 0
	for _, s := range f.Series {
		if len(s.X) != len(s.Y) {
			return fmt.Errorf("%s: series %q (%d, %d): %w", f.Name, s.Label, len(s.X), len(s.Y), ErrSeriesLength)
		}
		for _, seg := range sample.Segments(s.X, s.Y) {
			points += len(seg)
		}
	}
	if points == 0 {
		return fmt.Errorf("%s: %w", f.Name, ErrEmptyFigure)
	}

	return nil
}
