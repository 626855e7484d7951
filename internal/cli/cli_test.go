package cli

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/pedigree/pkg/ancestry"
	"github.com/matzehuels/pedigree/pkg/observability"
)

const family = `{
  "data": {"xref": "I1", "name": "Johannes Müller", "firstNames": ["Johannes"], "lastNames": ["Müller"], "sex": "M"},
  "parents": [
    {"data": {"xref": "I2", "name": "Karl Müller", "sex": "M", "birth": "1875"}},
    {"data": {"xref": "I3", "name": "Anna Schmidt", "sex": "F", "thumbnail": "ftp://example.com/a.jpg"}}
  ]
}`

// writeRecords writes the family fixture to dir/family.json.
func writeRecords(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "family.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// execute runs the root command with args and a quiet logger.
func execute(t *testing.T, args ...string) error {
	t.Helper()
	t.Setenv("PEDIGREE_CACHE", "none")
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.ExecuteContext(context.Background())
}

func TestRootCommandSubcommands(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()

	var got []string
	for _, cmd := range root.Commands() {
		got = append(got, cmd.Name())
	}
	sort.Strings(got)

	want := []string{"cache", "completion", "config", "layout", "render", "validate"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("subcommands mismatch (-want +got):\n%s", diff)
	}
	if root.PersistentFlags().Lookup("config") == nil {
		t.Error("root should define --config")
	}
}

func TestSetLogLevelInstallsHooks(t *testing.T) {
	t.Cleanup(observability.Reset)

	c := New(io.Discard, LogInfo)
	c.SetLogLevel(LogInfo)
	if _, ok := observability.Pipeline().(*observability.LogHooks); ok {
		t.Error("info level should keep the no-op hooks")
	}

	c.SetLogLevel(LogDebug)
	if _, ok := observability.Pipeline().(*observability.LogHooks); !ok {
		t.Errorf("debug level pipeline hooks = %T, want *LogHooks", observability.Pipeline())
	}
	if _, ok := observability.Cache().(*observability.LogHooks); !ok {
		t.Errorf("debug level cache hooks = %T, want *LogHooks", observability.Cache())
	}
}

func TestRenderCommand(t *testing.T) {
	input := writeRecords(t, family)
	dir := filepath.Dir(input)

	err := execute(t, "render", input, "-f", "svg,json,dot", "-l", "right", "--measure", "estimate", "--no-cache")
	if err != nil {
		t.Fatalf("render error = %v", err)
	}

	svg, err := os.ReadFile(filepath.Join(dir, "family.svg"))
	if err != nil {
		t.Fatalf("svg not written: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("family.svg is not an SVG document")
	}

	dot, err := os.ReadFile(filepath.Join(dir, "family.dot"))
	if err != nil {
		t.Fatalf("dot not written: %v", err)
	}
	if !strings.Contains(string(dot), "rankdir=LR;") {
		t.Errorf("family.dot should use rankdir=LR:\n%s", dot)
	}

	// The JSON artifact must not overwrite the input records.
	data, err := os.ReadFile(filepath.Join(dir, "family.chart.json"))
	if err != nil {
		t.Fatalf("json not written: %v", err)
	}
	var doc struct {
		Orientation string            `json:"orientation"`
		Nodes       []json.RawMessage `json:"nodes"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("decode chart json: %v", err)
	}
	if doc.Orientation != "right" || len(doc.Nodes) != 3 {
		t.Errorf("chart json = %s with %d nodes, want right with 3", doc.Orientation, len(doc.Nodes))
	}
	if records, _ := os.ReadFile(input); string(records) != family {
		t.Error("render overwrote the input file")
	}
}

func TestRenderCommandOutputFile(t *testing.T) {
	input := writeRecords(t, family)
	out := filepath.Join(filepath.Dir(input), "charts", "anna.svg")

	if err := execute(t, "render", input, "-o", out, "--measure", "estimate"); err != nil {
		t.Fatalf("render error = %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("output %s not created: %v", out, err)
	}
}

func TestRenderCommandErrors(t *testing.T) {
	input := writeRecords(t, family)

	tests := []struct {
		name string
		args []string
	}{
		{"unknown layout", []string{"render", input, "-l", "diagonal"}},
		{"unknown format", []string{"render", input, "-f", "gif"}},
		{"too few generations", []string{"render", input, "-g", "1"}},
		{"stdout with two formats", []string{"render", input, "-o", "-", "-f", "svg,png"}},
		{"missing input", []string{"render", filepath.Join(t.TempDir(), "nope.json")}},
		{"no input", []string{"render"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := execute(t, tt.args...); err == nil {
				t.Errorf("%v: expected error", tt.args)
			}
		})
	}
}

func TestLayoutCommand(t *testing.T) {
	input := writeRecords(t, family)

	if err := execute(t, "layout", input, "--measure", "estimate"); err != nil {
		t.Fatalf("layout error = %v", err)
	}

	data, err := os.ReadFile(strings.TrimSuffix(input, ".json") + ".layout.json")
	if err != nil {
		t.Fatalf("layout not written: %v", err)
	}
	var doc struct {
		Orientation string `json:"orientation"`
		Nodes       []struct {
			Sosa int    `json:"sosa"`
			Xref string `json:"xref"`
		} `json:"nodes"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("decode layout: %v", err)
	}
	if doc.Orientation != "down" {
		t.Errorf("orientation = %q, want down", doc.Orientation)
	}
	if len(doc.Nodes) != 3 || doc.Nodes[0].Sosa != 1 || doc.Nodes[0].Xref != "I1" {
		t.Errorf("nodes = %+v, want root I1 first of 3", doc.Nodes)
	}
}

func TestValidateCommand(t *testing.T) {
	if err := execute(t, "validate", writeRecords(t, family)); err != nil {
		t.Errorf("validate(valid) error = %v", err)
	}

	bad := `{"xref": "I1", "parents": [{"xref": "I2"}, {"xref": "I3"}, {"xref": "I4"}]}`
	if err := execute(t, "validate", writeRecords(t, bad)); err == nil {
		t.Error("validate(three parents) should fail")
	}
}

func TestSummarize(t *testing.T) {
	root := &ancestry.Person{
		Xref: "I1", Sex: ancestry.SexMale, Name: "דוד לוי", IsNameRTL: true,
		Parents: []*ancestry.Person{
			{Xref: "I2", Sex: ancestry.SexMale, Thumbnail: "https://example.com/a.jpg"},
			{ID: 3, Sex: ancestry.SexFemale, URL: "javascript:alert(1)"},
		},
	}

	s := summarize(root)
	if s.persons != 3 || s.generations != 2 {
		t.Errorf("persons, generations = %d, %d, want 3, 2", s.persons, s.generations)
	}
	if s.bySex[ancestry.SexMale] != 2 || s.bySex[ancestry.SexFemale] != 1 {
		t.Errorf("bySex = %v", s.bySex)
	}
	if s.thumbnails != 1 || s.rtlNames != 1 {
		t.Errorf("thumbnails, rtlNames = %d, %d, want 1, 1", s.thumbnails, s.rtlNames)
	}
	if diff := cmp.Diff([]string{"#3: javascript:alert(1)"}, s.badURLs); diff != "" {
		t.Errorf("badURLs mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigShowCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pedigree.toml")
	if err := os.WriteFile(path, []byte("orientation = \"left\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := execute(t, "--config", path, "config", "show"); err != nil {
		t.Errorf("config show error = %v", err)
	}
	if err := execute(t, "--config", filepath.Join(t.TempDir(), "missing.toml"), "config", "show"); err == nil {
		t.Error("config show with a missing file should fail")
	}
}
