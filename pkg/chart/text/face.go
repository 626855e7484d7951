package text

import (
	"sync"

	"git.sr.ht/~sbinet/gg"
	"golang.org/x/image/font"

	"github.com/matzehuels/pedigree/pkg/fonts"
)

type faceKey struct {
	size   float64
	weight fonts.Weight
}

// FaceMeasurer measures text with the embedded Go fonts, the same faces the
// PNG renderer draws with. Faces are cached per size and weight. The
// family of a [Font] is ignored. It is safe for concurrent use.
type FaceMeasurer struct {
	mu    sync.Mutex
	dc    *gg.Context
	faces map[faceKey]font.Face
}

// NewFaceMeasurer returns a measurer backed by the embedded fonts.
func NewFaceMeasurer() *FaceMeasurer {
	return &FaceMeasurer{dc: gg.NewContext(1, 1), faces: make(map[faceKey]font.Face)}
}

// Measure returns the advance width of text.
func (m *FaceMeasurer) Measure(text string, f Font) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := faceKey{size: f.Size, weight: f.Weight}
	face, ok := m.faces[key]
	if !ok {
		var err error
		face, err = fonts.Face(f.Weight, f.Size)
		if err != nil {
			return 0, err
		}
		m.faces[key] = face
	}
	m.dc.SetFontFace(face)
	w, _ := m.dc.MeasureString(text)
	return w, nil
}
