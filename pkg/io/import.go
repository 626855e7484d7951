package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/pedigree/pkg/ancestry"
)

type record struct {
	ID              int      `json:"id,omitempty"`
	Xref            string   `json:"xref,omitempty"`
	URL             string   `json:"url,omitempty"`
	Generation      int      `json:"generation,omitempty"`
	Name            string   `json:"name,omitempty"`
	IsNameRTL       *bool    `json:"isNameRtl,omitempty"`
	FirstNames      []string `json:"firstNames,omitempty"`
	LastNames       []string `json:"lastNames,omitempty"`
	PreferredName   string   `json:"preferredName,omitempty"`
	AlternativeName string   `json:"alternativeName,omitempty"`
	IsAltRTL        *bool    `json:"isAltRtl,omitempty"`
	Thumbnail       string   `json:"thumbnail,omitempty"`
	Sex             string   `json:"sex,omitempty"`
	Birth           string   `json:"birth,omitempty"`
	Death           string   `json:"death,omitempty"`
	Timespan        string   `json:"timespan,omitempty"`
	FatherAge       string   `json:"fatherAge,omitempty"`
	MotherAge       string   `json:"motherAge,omitempty"`
}

// node is the decoded form of one person. Data is set for the enveloped
// form; otherwise the embedded record carries the flat fields.
type node struct {
	record
	Data    *record `json:"data,omitempty"`
	Parents []*node `json:"parents,omitempty"`
}

// ReadJSON decodes an ancestor tree from r.
//
// The returned tree is normalized and validated. ReadJSON returns an error
// if the JSON is malformed, if the document is empty, or if the tree breaks
// a structural rule (more than two parents, unknown sex code, generation
// gaps). ReadJSON does not close r.
func ReadJSON(r io.Reader) (*ancestry.Person, error) {
	var data node
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	root, err := toPerson(&data, "root")
	if err != nil {
		return nil, err
	}
	root = ancestry.Normalize(root)
	if err := ancestry.Validate(root); err != nil {
		return nil, err
	}
	return root, nil
}

func toPerson(n *node, path string) (*ancestry.Person, error) {
	if n == nil {
		return nil, fmt.Errorf("%s: null person", path)
	}
	rec := n.record
	if n.Data != nil {
		rec = *n.Data
	}

	p := &ancestry.Person{
		ID:              rec.ID,
		Xref:            rec.Xref,
		URL:             rec.URL,
		Generation:      rec.Generation,
		Name:            rec.Name,
		IsNameRTL:       flag(rec.IsNameRTL, rec.Name),
		FirstNames:      rec.FirstNames,
		LastNames:       rec.LastNames,
		PreferredName:   rec.PreferredName,
		AlternativeName: rec.AlternativeName,
		IsAltRTL:        flag(rec.IsAltRTL, rec.AlternativeName),
		Thumbnail:       rec.Thumbnail,
		Sex:             ancestry.Sex(rec.Sex),
		Birth:           rec.Birth,
		Death:           rec.Death,
		Timespan:        rec.Timespan,
		FatherAge:       rec.FatherAge,
		MotherAge:       rec.MotherAge,
	}
	for i, parent := range n.Parents {
		pp, err := toPerson(parent, fmt.Sprintf("%s.parents[%d]", path, i))
		if err != nil {
			return nil, err
		}
		p.Parents = append(p.Parents, pp)
	}
	return p, nil
}

func flag(v *bool, text string) bool {
	if v != nil {
		return *v
	}
	return ancestry.IsRTL(text)
}

// ImportJSON reads a JSON file at path and returns the decoded tree.
//
// ImportJSON opens the file, decodes it using [ReadJSON], and closes the
// file. The error wraps the underlying cause with the file path.
func ImportJSON(path string) (*ancestry.Person, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
