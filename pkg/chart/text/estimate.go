package text

import (
	"github.com/mattn/go-runewidth"
)

// EstimateEm is the assumed advance of one display cell, in ems.
const EstimateEm = 0.6

// Estimate returns a conservative width for text without a font: display
// cells (wide East Asian runes count twice) times EstimateEm times the font
// size.
func Estimate(text string, f Font) float64 {
	return float64(runewidth.StringWidth(text)) * f.Size * EstimateEm
}

// EstimateMeasurer measures with [Estimate].
var EstimateMeasurer = MeasureFunc(func(text string, f Font) (float64, error) {
	return Estimate(text, f), nil
})
