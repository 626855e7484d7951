// Package pipeline runs the complete load → draw → render flow for a
// pedigree chart.
//
// The CLI and any batch worker share this package, so defaults, validation
// and caching behave the same everywhere.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: read the ancestor records and prune them to the generation limit
//  2. Draw: build the hierarchy, lay it out and derive the box geometry
//  3. Render: generate output in the requested formats (SVG, PNG, PDF, JSON, DOT)
//
// Rendered artifacts are cached under a key derived from the record tree
// and every option that changes the output, so an unchanged tree is never
// drawn twice.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	defer runner.Close()
//
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Input:       "family.json",
//	    Orientation: "right",
//	    Formats:     []string{"svg", "png"},
//	})
//	if err != nil {
//	    return err
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pedigree/pkg/ancestry"
	"github.com/matzehuels/pedigree/pkg/cache"
	"github.com/matzehuels/pedigree/pkg/chart"
	"github.com/matzehuels/pedigree/pkg/chart/orientation"
	"github.com/matzehuels/pedigree/pkg/chart/text"
	"github.com/matzehuels/pedigree/pkg/config"
	perrors "github.com/matzehuels/pedigree/pkg/errors"
	"github.com/matzehuels/pedigree/pkg/render/transition"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Workers
// =============================================================================

const (
	// DefaultScale is the PNG resolution multiplier.
	DefaultScale = 2.0

	// DefaultMeasure is the text measurement backend.
	DefaultMeasure = config.MeasureFace
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	// Load options
	Input       string           `json:"input,omitempty"`
	Root        *ancestry.Person `json:"-"` // pre-loaded tree; takes precedence over Input
	Generations int              `json:"generations,omitempty"`

	// Draw options
	Orientation    string  `json:"orientation,omitempty"`
	RTL            bool    `json:"rtl,omitempty"`
	ShowEmptyBoxes bool    `json:"show_empty_boxes,omitempty"`
	BoxWidth       float64 `json:"box_width,omitempty"`
	BoxHeight      float64 `json:"box_height,omitempty"`
	Measure        string  `json:"measure,omitempty"`

	// Render options
	Formats   []string `json:"formats,omitempty"`
	Scale     float64  `json:"scale,omitempty"`
	EmbedFont bool     `json:"embed_font,omitempty"`
	Detailed  bool     `json:"detailed,omitempty"` // DOT labels with dates and Ahnentafel numbers
	Refresh   bool     `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger      *log.Logger       `json:"-"`
	Measurer    text.Measurer     `json:"-"`
	Transitions *transition.Table `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// FromConfig returns the options described by cfg.
func FromConfig(cfg config.Config) Options {
	box := cfg.BoxSize()
	return Options{
		Generations:    cfg.Generations,
		Orientation:    cfg.Orientation,
		RTL:            cfg.RTL,
		ShowEmptyBoxes: cfg.ShowEmptyBoxes,
		BoxWidth:       box.Width,
		BoxHeight:      box.Height,
		Measure:        cfg.Font.Measure,
		Formats:        slices.Clone(cfg.Formats),
	}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Root is the pruned record tree.
	Root *ancestry.Person

	// TreeHash is the content hash of Root.
	TreeHash string

	// Drawing is the derived geometry. It is nil when every artifact came
	// from the cache.
	Drawing *chart.Drawing

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	PersonCount int
	NodeCount   int
	LinkCount   int
	LoadTime    time.Duration
	DrawTime    time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !slices.Contains(config.Formats, format) {
		return perrors.New(perrors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)",
			format, strings.Join(config.Formats, ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForDraw(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks that there is something to load.
func (o *Options) ValidateForLoad() error {
	if o.Root == nil && o.Input == "" {
		return perrors.New(perrors.ErrCodeInvalidInput, "input file or record tree is required")
	}
	if o.Generations == 0 {
		o.Generations = perrors.DefaultGenerations
	}
	if err := perrors.ValidateGenerations(o.Generations); err != nil {
		return err
	}
	o.setLogger()
	return nil
}

// SetDrawDefaults sets default values for drawing.
func (o *Options) SetDrawDefaults() {
	if o.Orientation == "" {
		o.Orientation = orientation.NameDown
	}
	o.Orientation = strings.ToLower(o.Orientation)
	if o.Measure == "" {
		o.Measure = DefaultMeasure
	}
	o.setLogger()
}

// ValidateForDraw validates and sets defaults for drawing.
func (o *Options) ValidateForDraw() error {
	o.SetDrawDefaults()
	if err := perrors.ValidateLayout(o.Orientation); err != nil {
		return err
	}
	if o.BoxWidth < 0 || o.BoxHeight < 0 {
		return perrors.New(perrors.ErrCodeInvalidInput, "box size must not be negative")
	}
	switch o.Measure {
	case config.MeasureFace, config.MeasureEstimate:
		return nil
	}
	return perrors.New(perrors.ErrCodeInvalidInput, "invalid measure %q (must be face or estimate)", o.Measure)
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{config.FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	o.setLogger()
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if o.Scale < 0 {
		return perrors.New(perrors.ErrCodeInvalidInput, "scale must be positive")
	}
	return ValidateFormats(o.Formats)
}

func (o *Options) setLogger() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Kind returns the parsed orientation.
func (o *Options) Kind() orientation.Kind {
	k, err := orientation.ParseKind(o.Orientation)
	if err != nil {
		return orientation.TopBottom
	}
	return k
}

// ChartOptions returns the options for [chart.New].
func (o *Options) ChartOptions() chart.Options {
	return chart.Options{
		Orientation:    o.Kind(),
		RTL:            o.RTL,
		ShowEmptyBoxes: o.ShowEmptyBoxes,
		BoxWidth:       o.BoxWidth,
		BoxHeight:      o.BoxHeight,
	}
}

// TextMeasurer returns the configured measurer, building one from Measure
// when none was injected.
func (o *Options) TextMeasurer() text.Measurer {
	if o.Measurer != nil {
		return o.Measurer
	}
	if o.Measure == config.MeasureEstimate {
		return text.EstimateMeasurer
	}
	return text.NewFaceMeasurer()
}

// LayoutKeyOpts returns cache key options for drawing.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Orientation:    o.Orientation,
		Generations:    o.Generations,
		ShowEmptyBoxes: o.ShowEmptyBoxes,
		RTL:            o.RTL,
		BoxWidth:       o.BoxWidth,
		BoxHeight:      o.BoxHeight,
		Measurer:       o.Measure,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format}
	switch format {
	case config.FormatPNG:
		k.Scale = o.Scale
	case config.FormatSVG:
		k.EmbedFont = o.EmbedFont
	case config.FormatDOT:
		k.Detailed = o.Detailed
	}
	return k
}

func (o *Options) String() string {
	return fmt.Sprintf("%s, %d generations, %s", o.Orientation, o.Generations, strings.Join(o.Formats, "+"))
}
