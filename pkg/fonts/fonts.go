// Package fonts provides the fonts used to measure and draw chart labels.
//
// The Go font family ships with golang.org/x/image, so charts render and
// measure identically on every machine. SVG output embeds the same faces as
// base64 data so viewers without the fonts installed still match the
// measurements the text fitter made.
package fonts

import (
	"encoding/base64"
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontFamily is the CSS font-family name of the embedded faces.
const FontFamily = "Go"

// FallbackFontFamily is used after FontFamily in CSS declarations.
const FallbackFontFamily = `Go, "Open Sans", Arial, sans-serif`

// Weight selects a face of the family.
type Weight int

const (
	Regular Weight = iota
	Bold
)

// String returns the CSS font-weight keyword.
func (w Weight) String() string {
	if w == Bold {
		return "bold"
	}
	return "normal"
}

// TTF returns the TrueType data of the face.
func TTF(w Weight) []byte {
	if w == Bold {
		return gobold.TTF
	}
	return goregular.TTF
}

// Cache for base64-encoded fonts (computed once on first access).
var (
	regularBase64, boldBase64         string
	regularBase64Once, boldBase64Once sync.Once
)

// TTFBase64 returns the TrueType data as a base64 string.
// The result is cached after first computation.
func TTFBase64(w Weight) string {
	if w == Bold {
		boldBase64Once.Do(func() {
			boldBase64 = base64.StdEncoding.EncodeToString(gobold.TTF)
		})
		return boldBase64
	}
	regularBase64Once.Do(func() {
		regularBase64 = base64.StdEncoding.EncodeToString(goregular.TTF)
	})
	return regularBase64
}

var (
	parsed   = map[Weight]*opentype.Font{}
	parsedMu sync.Mutex
)

// Face returns a face of the given weight at size pixels (72 DPI).
func Face(w Weight, size float64) (font.Face, error) {
	parsedMu.Lock()
	f, ok := parsed[w]
	if !ok {
		var err error
		f, err = opentype.Parse(TTF(w))
		if err != nil {
			parsedMu.Unlock()
			return nil, fmt.Errorf("parse %s font: %w", w, err)
		}
		parsed[w] = f
	}
	parsedMu.Unlock()

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("new %s face: %w", w, err)
	}
	return face, nil
}
