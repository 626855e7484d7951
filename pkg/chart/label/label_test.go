package label

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/pedigree/pkg/ancestry"
	"github.com/matzehuels/pedigree/pkg/chart/orientation"
	"github.com/matzehuels/pedigree/pkg/chart/text"
)

var fitter = text.NewFitter(text.MeasureFunc(func(s string, _ text.Font) (float64, error) {
	return float64(utf8.RuneCountInString(s)) * 8, nil
}), nil)

func muller() *ancestry.Person {
	return &ancestry.Person{
		Name:          "Johannes Wilhelm Müller",
		FirstNames:    []string{"Johannes", "Wilhelm"},
		LastNames:     []string{"Müller"},
		PreferredName: "Johannes",
		Sex:           ancestry.SexMale,
		Birth:         "12 MAR 1875",
		Death:         "3 JAN 1931",
		Timespan:      "1875–1931",
	}
}

func kinds(rows []Row) []Kind {
	out := make([]Kind, len(rows))
	for i, r := range rows {
		out[i] = r.Kind
	}
	return out
}

func TestRowsVertical(t *testing.T) {
	o := orientation.New(orientation.TopBottom, orientation.Options{})
	rows := Rows(muller(), o, fitter)

	if diff := cmp.Diff([]Kind{Name, Name, Date}, kinds(rows)); diff != "" {
		t.Fatalf("row kinds mismatch (-want +got):\n%s", diff)
	}
	if got := rows[0].Content(); got != "Johannes Wilhelm" {
		t.Errorf("first row = %q, want given names", got)
	}
	if got := rows[1].Content(); got != "Müller" {
		t.Errorf("second row = %q, want last names", got)
	}
	if !rows[0].Parts[0].IsPreferred || !rows[1].Parts[0].IsLastName {
		t.Error("components lost their preferred/last name tags")
	}
	if got := rows[2].Text; got != "1875–1931" {
		t.Errorf("date row = %q, want timespan", got)
	}
	for _, r := range rows {
		if r.Anchor != "middle" || r.X != 0 {
			t.Errorf("vertical row %q anchored %s at x=%v", r.Content(), r.Anchor, r.X)
		}
	}
}

func TestRowsHorizontal(t *testing.T) {
	o := orientation.New(orientation.LeftRight, orientation.Options{})
	p := muller()
	p.AlternativeName = "Jan  Miller"
	rows := Rows(p, o, fitter)

	if diff := cmp.Diff([]Kind{Name, AltName, Date, Date}, kinds(rows)); diff != "" {
		t.Fatalf("row kinds mismatch (-want +got):\n%s", diff)
	}
	if got := rows[0].Content(); got != "Johannes Wilhelm Müller" {
		t.Errorf("name row = %q", got)
	}
	if got := len(rows[1].Parts); got != 2 {
		t.Errorf("alternative name split into %d parts, want 2", got)
	}
	if rows[2].Marker != BirthMarker || rows[3].Marker != DeathMarker {
		t.Errorf("markers = %q, %q", rows[2].Marker, rows[3].Marker)
	}
	if rows[3].Y-rows[2].Y != 20 {
		t.Errorf("date rows %v apart, want 20", rows[3].Y-rows[2].Y)
	}
	if rows[0].Anchor != "start" {
		t.Errorf("anchor = %s, want start", rows[0].Anchor)
	}
}

func TestRowsTruncate(t *testing.T) {
	o := orientation.New(orientation.LeftRight, orientation.Options{BoxWidth: 190})
	p := muller()
	p.Thumbnail = "https://example.com/1.jpg"
	rows := Rows(p, o, fitter)

	// Text width 190 - 30 - 80 = 80px, 10 runes.
	if got := rows[0].Content(); got != "J. W. M." {
		t.Errorf("name row = %q, want fully abbreviated", got)
	}
	if rows[0].Title != p.Name {
		t.Errorf("Title = %q, want the full name", rows[0].Title)
	}
	for _, r := range rows[1:] {
		if !strings.HasSuffix(r.Text, text.Ellipsis) {
			t.Errorf("date %q not truncated", r.Text)
		}
	}
}

func TestRowsFullNameFallback(t *testing.T) {
	o := orientation.New(orientation.TopBottom, orientation.Options{})
	p := &ancestry.Person{Name: "Maria Magdalena von Hohenzollern-Sigmaringen"}

	rows := Rows(p, o, fitter)
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1", len(rows))
	}
	if got := rows[0].Content(); got != p.Name {
		t.Errorf("row = %q, want the untruncated full name", got)
	}
}

func TestRowsPlaceholder(t *testing.T) {
	o := orientation.New(orientation.TopBottom, orientation.Options{})
	if rows := Rows(nil, o, fitter); rows != nil {
		t.Errorf("Rows(nil) = %v, want nil", rows)
	}
}

func TestRowsRTL(t *testing.T) {
	o := orientation.New(orientation.LeftRight, orientation.Options{RTL: true})
	p := muller()
	rows := Rows(p, o, fitter)
	if rows[0].Anchor != "end" {
		t.Errorf("LTR name on RTL page anchored %s, want end", rows[0].Anchor)
	}
	if rows[1].X >= rows[1].MarkerX {
		t.Errorf("RTL date x %v should be left of marker %v", rows[1].X, rows[1].MarkerX)
	}

	p.IsNameRTL = true
	if got := Rows(p, o, fitter)[0].Anchor; got != "start" {
		t.Errorf("RTL name on RTL page anchored %s, want start", got)
	}
}

func TestLocate(t *testing.T) {
	tests := []struct {
		name  string
		full  string
		parts []string
		want  []int
	}{
		{"in order", "Johannes Wilhelm Müller", []string{"Johannes", "Wilhelm", "Müller"}, []int{0, 9, 17}},
		{"family name first", "Kovács János", []string{"János", "Kovács"}, []int{8, 0}},
		{"repeated name", "Thomas Thomas", []string{"Thomas", "Thomas"}, []int{0, 7}},
		{"substring of earlier", "Anna Annabell", []string{"Annabell", "Anna"}, []int{5, 0}},
		{"missing", "Anna", []string{"Maria"}, []int{-1}},
		{"empty part", "Anna", []string{""}, []int{-1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Locate(tt.full, tt.parts)); diff != "" {
				t.Errorf("Locate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOrderFamilyNameFirst(t *testing.T) {
	o := orientation.New(orientation.LeftRight, orientation.Options{})
	p := &ancestry.Person{Name: "Kovács János", FirstNames: []string{"János"}, LastNames: []string{"Kovács"}}
	if got := Rows(p, o, fitter)[0].Content(); got != "Kovács János" {
		t.Errorf("name row = %q, want family name first", got)
	}
}
