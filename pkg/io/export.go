package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/pedigree/pkg/ancestry"
)

type envelope struct {
	Data    record      `json:"data"`
	Parents []*envelope `json:"parents,omitempty"`
}

// WriteJSON encodes an ancestor tree as indented JSON and writes it to w.
// The output can be re-imported with [ReadJSON].
func WriteJSON(root *ancestry.Person, w io.Writer) error {
	if root == nil {
		return fmt.Errorf("encode: empty tree")
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(fromPerson(root)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func fromPerson(p *ancestry.Person) *envelope {
	nameRTL, altRTL := p.IsNameRTL, p.IsAltRTL
	e := &envelope{Data: record{
		ID:              p.ID,
		Xref:            p.Xref,
		URL:             p.URL,
		Generation:      p.Generation,
		Name:            p.Name,
		IsNameRTL:       &nameRTL,
		FirstNames:      p.FirstNames,
		LastNames:       p.LastNames,
		PreferredName:   p.PreferredName,
		AlternativeName: p.AlternativeName,
		IsAltRTL:        &altRTL,
		Thumbnail:       p.Thumbnail,
		Sex:             string(p.Sex),
		Birth:           p.Birth,
		Death:           p.Death,
		Timespan:        p.Timespan,
		FatherAge:       p.FatherAge,
		MotherAge:       p.MotherAge,
	}}
	for _, parent := range p.Parents {
		e.Parents = append(e.Parents, fromPerson(parent))
	}
	return e
}

// ExportJSON writes an ancestor tree to a JSON file at path.
func ExportJSON(root *ancestry.Person, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(root, f)
}

// Record returns the JSON wire form of p alone, without its ancestors.
func Record(p *ancestry.Person) any {
	if p == nil {
		return nil
	}
	single := *p
	single.Parents = nil
	return fromPerson(&single).Data
}
