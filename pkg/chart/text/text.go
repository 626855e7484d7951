// Package text fits name and date labels into the width of a chart box.
//
// Fitting never fails: a [Measurer] error falls back to [Estimate], since a
// slightly loose label is better than a chart that does not render. The
// fitter works on copies and never modifies its input.
package text

import (
	"github.com/matzehuels/pedigree/pkg/fonts"
)

// Font describes the face a label is drawn with.
type Font struct {
	Family string
	Size   float64
	Weight fonts.Weight
}

// Default fonts for chart labels.
var (
	NameFont = Font{Family: fonts.FontFamily, Size: 14, Weight: fonts.Bold}
	AltFont  = Font{Family: fonts.FontFamily, Size: 12, Weight: fonts.Regular}
	DateFont = Font{Family: fonts.FontFamily, Size: 12, Weight: fonts.Regular}
)

// Measurer returns the rendered width of text in pixels.
type Measurer interface {
	Measure(text string, f Font) (float64, error)
}

// MeasureFunc adapts a function to [Measurer].
type MeasureFunc func(text string, f Font) (float64, error)

// Measure calls fn.
func (fn MeasureFunc) Measure(text string, f Font) (float64, error) {
	return fn(text, f)
}

// NameComponent is one word of a displayed name.
type NameComponent struct {
	Label       string
	IsPreferred bool
	IsLastName  bool
	IsRTL       bool
}
