// Package ancestry models the ancestor records a pedigree chart is drawn
// from.
//
// A [Person] is one individual together with up to two parents, father
// first. The record tree is produced by a data-assembly step (a genealogy
// database export, a JSON file) and treated as immutable input by the chart
// packages: [Prune] and [Normalize] return copies rather than editing in
// place.
package ancestry

import (
	"golang.org/x/text/unicode/bidi"
)

// Sex is the recorded sex of a person.
type Sex string

const (
	SexMale    Sex = "M"
	SexFemale  Sex = "F"
	SexUnknown Sex = "U"
)

// Valid reports whether s is one of the three known codes.
func (s Sex) Valid() bool {
	return s == SexMale || s == SexFemale || s == SexUnknown
}

// Class returns the CSS class used for boxes of this sex.
func (s Sex) Class() string {
	switch s {
	case SexMale:
		return "male"
	case SexFemale:
		return "female"
	}
	return "unknown"
}

// Person is one individual in an ancestor tree.
type Person struct {
	ID         int
	Xref       string
	URL        string
	Generation int

	// Name is the full display name. It is used verbatim when both name
	// lists are empty.
	Name            string
	IsNameRTL       bool
	FirstNames      []string
	LastNames       []string
	PreferredName   string
	AlternativeName string
	IsAltRTL        bool

	Thumbnail string
	Sex       Sex

	Birth    string
	Death    string
	Timespan string

	FatherAge string
	MotherAge string

	// Parents holds at most two records, father before mother.
	Parents []*Person
}

// HasImage reports whether a thumbnail URL is present.
func (p *Person) HasImage() bool {
	return p != nil && p.Thumbnail != ""
}

// Father returns the first parent recorded as male, or nil.
func (p *Person) Father() *Person {
	for _, parent := range p.Parents {
		if parent != nil && parent.Sex == SexMale {
			return parent
		}
	}
	return nil
}

// Mother returns the first parent recorded as female, or nil.
func (p *Person) Mother() *Person {
	for _, parent := range p.Parents {
		if parent != nil && parent.Sex == SexFemale {
			return parent
		}
	}
	return nil
}

// Walk calls fn for p and every ancestor in pre-order, father line first.
// Returning false from fn skips that person's ancestors.
func (p *Person) Walk(fn func(*Person) bool) {
	if p == nil || !fn(p) {
		return
	}
	for _, parent := range p.Parents {
		parent.Walk(fn)
	}
}

// Count returns the number of people in the tree rooted at p.
func (p *Person) Count() int {
	n := 0
	p.Walk(func(*Person) bool { n++; return true })
	return n
}

// Depth returns the number of generations in the tree rooted at p, counting
// p itself. A nil tree has depth 0.
func (p *Person) Depth() int {
	if p == nil {
		return 0
	}
	d := 0
	for _, parent := range p.Parents {
		if pd := parent.Depth(); pd > d {
			d = pd
		}
	}
	return d + 1
}

// Clone returns a deep copy of the tree rooted at p.
func (p *Person) Clone() *Person {
	if p == nil {
		return nil
	}
	c := *p
	c.FirstNames = append([]string(nil), p.FirstNames...)
	c.LastNames = append([]string(nil), p.LastNames...)
	c.Parents = make([]*Person, 0, len(p.Parents))
	for _, parent := range p.Parents {
		c.Parents = append(c.Parents, parent.Clone())
	}
	if len(c.Parents) == 0 {
		c.Parents = nil
	}
	return &c
}

// IsRTL reports whether text is written in a right-to-left script. The
// first rune with a strong direction decides.
func IsRTL(text string) bool {
	for _, r := range text {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.R, bidi.AL:
			return true
		case bidi.L:
			return false
		}
	}
	return false
}
