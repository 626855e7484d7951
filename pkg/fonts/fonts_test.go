package fonts

import (
	"encoding/base64"
	"testing"

	"golang.org/x/image/font"
)

func TestTTFBase64(t *testing.T) {
	for _, w := range []Weight{Regular, Bold} {
		got, err := base64.StdEncoding.DecodeString(TTFBase64(w))
		if err != nil {
			t.Fatalf("TTFBase64(%s) is not valid base64: %v", w, err)
		}
		if len(got) != len(TTF(w)) {
			t.Errorf("TTFBase64(%s) decodes to %d bytes, want %d", w, len(got), len(TTF(w)))
		}
	}
}

func TestFace(t *testing.T) {
	regular, err := Face(Regular, 14)
	if err != nil {
		t.Fatalf("Face(Regular) error = %v", err)
	}
	bold, err := Face(Bold, 14)
	if err != nil {
		t.Fatalf("Face(Bold) error = %v", err)
	}

	r := font.MeasureString(regular, "Müller")
	b := font.MeasureString(bold, "Müller")
	if r <= 0 || b <= 0 {
		t.Errorf("widths regular=%v bold=%v, want both positive", r, b)
	}
}

func TestWeightString(t *testing.T) {
	if Regular.String() != "normal" || Bold.String() != "bold" {
		t.Errorf("Weight strings = %q, %q", Regular, Bold)
	}
}
