package cli

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty keeps configured formats", "", nil},
		{"single format", "svg", []string{"svg"}},
		{"multiple formats", "svg,pdf,png", []string{"svg", "pdf", "png"}},
		{"spaces and case", " SVG , dot ", []string{"svg", "dot"}},
		{"blank entries", "json,,", []string{"json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, parseFormats(tt.input)); diff != "" {
				t.Errorf("parseFormats(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"from input", "", "data/family.json", "data/family"},
		{"format extension stripped", "out/chart.svg", "family.json", "out/chart"},
		{"unknown extension kept", "out/chart.v2", "family.json", "out/chart.v2"},
		{"no extension", "out/chart", "family.json", "out/chart"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := basePath(tt.output, tt.input); got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func TestOutputPaths(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		input   string
		formats []string
		want    map[string]string
	}{
		{
			name:    "single format with output",
			output:  "chart.pedigree",
			input:   "family.json",
			formats: []string{"svg"},
			want:    map[string]string{"svg": "chart.pedigree"},
		},
		{
			name:    "stdout",
			output:  "-",
			input:   "family.json",
			formats: []string{"png"},
			want:    map[string]string{"png": "-"},
		},
		{
			name:    "several formats share a base",
			output:  "out/chart.svg",
			input:   "family.json",
			formats: []string{"svg", "pdf"},
			want:    map[string]string{"svg": "out/chart.svg", "pdf": "out/chart.pdf"},
		},
		{
			name:    "json next to json input",
			input:   filepath.Join("data", "family.json"),
			formats: []string{"json", "dot"},
			want: map[string]string{
				"json": filepath.Join("data", "family") + ".chart.json",
				"dot":  filepath.Join("data", "family") + ".dot",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := outputPaths(tt.output, tt.input, tt.formats)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("outputPaths() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPlural(t *testing.T) {
	if got := plural(1, "box", "boxes"); got != "1 box" {
		t.Errorf("plural(1) = %q", got)
	}
	if got := plural(7, "box", "boxes"); got != "7 boxes" {
		t.Errorf("plural(7) = %q", got)
	}
}
