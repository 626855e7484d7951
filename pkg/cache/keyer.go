package cache

import "strings"

// Keyer builds cache keys. Implementations must be deterministic: equal
// inputs give equal keys.
type Keyer interface {
	// LayoutKey addresses the drawing of a record tree under opts.
	LayoutKey(treeHash string, opts LayoutKeyOpts) string

	// ArtifactKey addresses one rendered output of a drawing.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// LayoutKeyOpts are the options that change a drawing's geometry.
type LayoutKeyOpts struct {
	Orientation    string  `json:"orientation"`
	Generations    int     `json:"generations"`
	ShowEmptyBoxes bool    `json:"show_empty_boxes"`
	RTL            bool    `json:"rtl"`
	BoxWidth       float64 `json:"box_width,omitempty"`
	BoxHeight      float64 `json:"box_height,omitempty"`
	Measurer       string  `json:"measurer,omitempty"`
}

// ArtifactKeyOpts are the options that change a rendered output but not
// the drawing.
type ArtifactKeyOpts struct {
	Format    string  `json:"format"`
	Scale     float64 `json:"scale,omitempty"`
	EmbedFont bool    `json:"embed_font,omitempty"`
	Detailed  bool    `json:"detailed,omitempty"`
}

// DefaultKeyer builds keys of the form "kind:sha256".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

func (DefaultKeyer) LayoutKey(treeHash string, opts LayoutKeyOpts) string {
	opts.Orientation = strings.ToLower(opts.Orientation)
	return hashKey("layout", treeHash, opts)
}

func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	opts.Format = strings.ToLower(opts.Format)
	return hashKey("artifact", layoutHash, opts)
}

var _ Keyer = DefaultKeyer{}
