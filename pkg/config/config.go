// Package config loads chart settings from a file, the environment and a
// .env file.
//
// Sources are applied in order, each overriding the previous one:
//
//  1. [Default]
//  2. a TOML or YAML file, chosen by extension
//  3. PEDIGREE_* environment variables (a .env file in the working
//     directory is read first and never overrides the real environment)
//
// Command-line flags are applied last by the CLI. [Config.Normalize]
// validates the result and clamps the generation count.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/pedigree/pkg/chart/orientation"
	perrors "github.com/matzehuels/pedigree/pkg/errors"
)

// Output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatDOT  = "dot"
)

// Formats lists the supported output formats.
var Formats = []string{FormatSVG, FormatPNG, FormatPDF, FormatJSON, FormatDOT}

// Text measurement backends.
const (
	MeasureFace     = "face"
	MeasureEstimate = "estimate"
)

// Cache backends.
const (
	CacheFile  = "file"
	CacheRedis = "redis"
	CacheNone  = "none"
)

// Config holds every user-facing chart setting.
type Config struct {
	Orientation    string   `toml:"orientation" yaml:"orientation"`
	Generations    int      `toml:"generations" yaml:"generations"`
	ShowEmptyBoxes bool     `toml:"show_empty_boxes" yaml:"show_empty_boxes"`
	RTL            bool     `toml:"rtl" yaml:"rtl"`
	Formats        []string `toml:"formats" yaml:"formats"`
	Boxes          Boxes    `toml:"boxes" yaml:"boxes"`
	Font           Font     `toml:"font" yaml:"font"`
	Cache          Cache    `toml:"cache" yaml:"cache"`
}

// Boxes overrides the box size per orientation family. Zero keeps the
// built-in size.
type Boxes struct {
	Vertical   BoxSize `toml:"vertical" yaml:"vertical"`
	Horizontal BoxSize `toml:"horizontal" yaml:"horizontal"`
}

type BoxSize struct {
	Width  float64 `toml:"width" yaml:"width"`
	Height float64 `toml:"height" yaml:"height"`
}

// Font selects how label widths are measured.
type Font struct {
	Measure string `toml:"measure" yaml:"measure"`
}

// Cache configures the artifact cache.
type Cache struct {
	Backend       string `toml:"backend" yaml:"backend"`
	Dir           string `toml:"dir" yaml:"dir"`
	RedisAddr     string `toml:"redis_addr" yaml:"redis_addr"`
	RedisPassword string `toml:"redis_password" yaml:"redis_password"`
	RedisDB       int    `toml:"redis_db" yaml:"redis_db"`
	Prefix        string `toml:"prefix" yaml:"prefix"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Orientation: orientation.NameDown,
		Generations: perrors.DefaultGenerations,
		Formats:     []string{FormatSVG},
		Font:        Font{Measure: MeasureFace},
		Cache:       Cache{Backend: CacheFile},
	}
}

// Load returns the configuration from path overlaid with the environment.
// An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.ReadFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := LoadDotEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ReadFile decodes a TOML (.toml) or YAML (.yaml, .yml) file into c. Keys
// missing from the file keep their current value.
func (c *Config) ReadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return perrors.Wrap(perrors.ErrCodeFileNotFound, err, "read config %s", path)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(c); err != nil {
			return perrors.Wrap(perrors.ErrCodeInvalidConfig, err, "decode %s", path)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, c); err != nil {
			return perrors.Wrap(perrors.ErrCodeInvalidConfig, err, "decode %s", path)
		}
	default:
		return perrors.New(perrors.ErrCodeInvalidConfig, "unsupported config format %q (use .toml, .yaml or .yml)", ext)
	}
	return nil
}

// Normalize validates c in place: it lower-cases names, clamps the
// generation count and rejects unknown orientations, formats, measurement
// and cache backends.
func (c *Config) Normalize() error {
	c.Orientation = strings.ToLower(strings.TrimSpace(c.Orientation))
	if c.Orientation == "" {
		c.Orientation = orientation.NameDown
	}
	if err := perrors.ValidateLayout(c.Orientation); err != nil {
		return err
	}

	c.Generations = perrors.ClampGenerations(c.Generations)

	if len(c.Formats) == 0 {
		c.Formats = []string{FormatSVG}
	}
	for i, f := range c.Formats {
		f = strings.ToLower(strings.TrimSpace(f))
		if !slices.Contains(Formats, f) {
			return perrors.New(perrors.ErrCodeInvalidFormat, "invalid format %q (must be one of: %s)", f, strings.Join(Formats, ", "))
		}
		c.Formats[i] = f
	}
	c.Formats = slices.Compact(c.Formats)

	switch c.Font.Measure {
	case "":
		c.Font.Measure = MeasureFace
	case MeasureFace, MeasureEstimate:
	default:
		return perrors.New(perrors.ErrCodeInvalidConfig, "invalid font measure %q (must be face or estimate)", c.Font.Measure)
	}

	switch c.Cache.Backend {
	case "":
		c.Cache.Backend = CacheFile
	case CacheFile, CacheNone:
	case CacheRedis:
		if c.Cache.RedisAddr == "" {
			return perrors.New(perrors.ErrCodeInvalidConfig, "redis cache needs an address")
		}
	default:
		return perrors.New(perrors.ErrCodeInvalidConfig, "invalid cache backend %q (must be file, redis or none)", c.Cache.Backend)
	}
	return nil
}

// Kind returns the parsed orientation. Call after [Config.Normalize].
func (c Config) Kind() orientation.Kind {
	k, err := orientation.ParseKind(c.Orientation)
	if err != nil {
		return orientation.TopBottom
	}
	return k
}

// BoxSize returns the configured box override for the orientation.
func (c Config) BoxSize() BoxSize {
	if c.Kind().IsHorizontal() {
		return c.Boxes.Horizontal
	}
	return c.Boxes.Vertical
}

// String renders c as TOML.
func (c Config) String() string {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Sprintf("config: %v", err)
	}
	return buf.String()
}
