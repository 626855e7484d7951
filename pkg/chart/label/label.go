// Package label lays out the text rows of a person box: one or two name
// rows, an optional alternative name, and the date rows.
//
// Vertical orientations put given names and last names on separate rows
// and show the timespan below them. Horizontal orientations use a single
// name row and list birth and death dates with a marker each.
package label

import (
	"sort"
	"strings"

	"github.com/matzehuels/pedigree/pkg/ancestry"
	"github.com/matzehuels/pedigree/pkg/chart/geometry"
	"github.com/matzehuels/pedigree/pkg/chart/orientation"
	"github.com/matzehuels/pedigree/pkg/chart/text"
)

// Kind classifies a row.
type Kind int

const (
	Name Kind = iota
	AltName
	Date
)

// Class returns the CSS class of rows of this kind.
func (k Kind) Class() string {
	switch k {
	case AltName:
		return "name alt"
	case Date:
		return "date"
	}
	return "name"
}

// Markers shown in front of birth and death rows.
const (
	BirthMarker = "★"
	DeathMarker = "†"
)

// Row is one line of text inside a box, relative to the box centre.
type Row struct {
	Kind Kind
	X, Y float64
	// Anchor is the SVG text-anchor: start, middle or end.
	Anchor string
	RTL    bool
	Font   text.Font

	// Parts holds the fitted name components of name rows.
	Parts []text.NameComponent
	// Text holds the fitted text of date rows.
	Text string
	// Title is the untruncated text, shown as a tooltip.
	Title string

	Marker  string
	MarkerX float64
}

// Content returns the displayed text of the row.
func (r Row) Content() string {
	if r.Kind == Date {
		return r.Text
	}
	labels := make([]string, len(r.Parts))
	for i, p := range r.Parts {
		labels[i] = p.Label
	}
	return strings.Join(labels, " ")
}

// Rows returns the text rows for p. Placeholders (nil p) have none.
func Rows(p *ancestry.Person, o orientation.Orientation, f *text.Fitter) []Row {
	if p == nil {
		return nil
	}
	if o.IsHorizontal() {
		return horizontal(p, o, f)
	}
	return vertical(p, o, f)
}

func vertical(p *ancestry.Person, o orientation.Orientation, f *text.Fitter) []Row {
	area := geometry.Text(o, p.HasImage())
	base := Row{Kind: Name, Anchor: "middle", RTL: p.IsNameRTL, Font: text.NameFont}

	var rows []Row
	if full, ok := fullName(p); ok {
		r := base
		r.Y, r.Parts, r.Title = area.Y-5, full, p.Name
		rows = append(rows, r)
	} else {
		first, last := base, base
		first.Y, first.Title = area.Y-5, strings.Join(p.FirstNames, " ")
		first.Parts = f.FitNames(components(p, true, false), area.W, text.NameFont)
		last.Y, last.Title = area.Y+15, strings.Join(p.LastNames, " ")
		last.Parts = f.FitNames(components(p, false, true), area.W, text.NameFont)
		rows = append(rows, first, last)
	}

	if p.AlternativeName != "" {
		rows = append(rows, Row{
			Kind: AltName, Y: area.Y + 35, Anchor: "middle", RTL: p.IsAltRTL, Font: text.AltFont,
			Parts: f.FitNames(altComponents(p), area.W, text.AltFont),
			Title: p.AlternativeName,
		})
	}

	if p.Timespan != "" {
		rows = append(rows, Row{
			Kind: Date, Y: area.Y + 57, Anchor: "middle", Font: text.DateFont,
			Text:  f.FitDate(p.Timespan, geometry.DateWidth(o, p.HasImage()), text.DateFont),
			Title: p.Timespan,
		})
	}
	return rows
}

func horizontal(p *ancestry.Person, o orientation.Orientation, f *text.Fitter) []Row {
	withImage := p.HasImage()
	area := geometry.Text(o, withImage)
	x := geometry.TextX(o, withImage)
	sign := 1.0
	if o.IsRTL() {
		sign = -1
	}

	name := Row{Kind: Name, X: x, Y: area.Y - 10, Anchor: anchor(p.IsNameRTL, o.IsRTL()), RTL: p.IsNameRTL, Font: text.NameFont, Title: p.Name}
	if full, ok := fullName(p); ok {
		name.Parts = full
	} else {
		name.Parts = f.FitNames(order(p.Name, components(p, true, true)), area.W, text.NameFont)
	}
	rows := []Row{name}

	if p.AlternativeName != "" {
		rows = append(rows, Row{
			Kind: AltName, X: x, Y: area.Y + 8, Anchor: anchor(p.IsAltRTL, o.IsRTL()), RTL: p.IsAltRTL, Font: text.AltFont,
			Parts: f.FitNames(altComponents(p), area.W, text.AltFont),
			Title: p.AlternativeName,
		})
	}

	width := geometry.DateWidth(o, withImage)
	y := area.Y + 30
	for _, d := range []struct{ marker, value string }{{BirthMarker, p.Birth}, {DeathMarker, p.Death}} {
		if d.value == "" {
			continue
		}
		rows = append(rows, Row{
			Kind: Date, X: x + sign*15, Y: y, Anchor: anchor(false, o.IsRTL()), Font: text.DateFont,
			Text:    f.FitDate(d.value, width, text.DateFont),
			Title:   d.value,
			Marker:  d.marker,
			MarkerX: x + sign*5,
		})
		y += 20
	}
	return rows
}

// anchor returns start when the text direction matches the page direction.
func anchor(textRTL, pageRTL bool) string {
	if textRTL != pageRTL {
		return "end"
	}
	return "start"
}

// fullName returns the untruncated full name when the record carries no
// name lists.
func fullName(p *ancestry.Person) ([]text.NameComponent, bool) {
	if len(p.FirstNames) > 0 || len(p.LastNames) > 0 {
		return nil, false
	}
	return []text.NameComponent{{Label: p.Name, IsRTL: p.IsNameRTL}}, true
}

func components(p *ancestry.Person, first, last bool) []text.NameComponent {
	var out []text.NameComponent
	if first {
		for _, n := range p.FirstNames {
			out = append(out, text.NameComponent{Label: n, IsPreferred: n == p.PreferredName, IsRTL: p.IsNameRTL})
		}
	}
	if last {
		for _, n := range p.LastNames {
			out = append(out, text.NameComponent{Label: n, IsLastName: true, IsRTL: p.IsNameRTL})
		}
	}
	return out
}

func altComponents(p *ancestry.Person) []text.NameComponent {
	var out []text.NameComponent
	for _, w := range strings.Fields(p.AlternativeName) {
		out = append(out, text.NameComponent{Label: w, IsRTL: p.IsAltRTL})
	}
	return out
}

// order sorts parts into the order they appear in full, so names written
// family name first keep that order on a single row. Parts are left as is
// unless every one of them is found.
func order(full string, parts []text.NameComponent) []text.NameComponent {
	labels := make([]string, len(parts))
	for i, p := range parts {
		labels[i] = p.Label
	}
	pos := Locate(full, labels)
	for _, at := range pos {
		if at < 0 {
			return parts
		}
	}
	idx := make([]int, len(parts))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return pos[idx[a]] < pos[idx[b]] })

	out := make([]text.NameComponent, len(parts))
	for i, j := range idx {
		out[i] = parts[j]
	}
	return out
}

// Locate returns the byte offset of each part within full, or -1 when a
// part is missing. A part matches its first occurrence that does not
// overlap an earlier match, so a name listed twice (a given name that is
// also a family name) resolves to two distinct positions.
func Locate(full string, parts []string) []int {
	out := make([]int, len(parts))
	var taken [][2]int
	for i, part := range parts {
		out[i] = -1
		if part == "" {
			continue
		}
		for from := 0; from <= len(full)-len(part); {
			at := strings.Index(full[from:], part)
			if at < 0 {
				break
			}
			at += from
			end := at + len(part)
			if !overlaps(taken, at, end) {
				out[i] = at
				taken = append(taken, [2]int{at, end})
				break
			}
			from = at + 1
		}
	}
	return out
}

func overlaps(taken [][2]int, start, end int) bool {
	for _, t := range taken {
		if start < t[1] && t[0] < end {
			return true
		}
	}
	return false
}
