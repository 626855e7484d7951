package io

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/pedigree/pkg/ancestry"
	perrors "github.com/matzehuels/pedigree/pkg/errors"
)

const enveloped = `{
  "data": {"xref": "I1", "name": "Johannes Wilhelm Müller", "firstNames": ["Johannes", "Wilhelm"], "lastNames": ["Müller"], "sex": "M"},
  "parents": [
    {"data": {"xref": "I3", "name": "Anna Schmidt", "sex": "F"}},
    {"data": {"xref": "I2", "name": "Karl Müller", "sex": "M", "birth": "12 MAR 1875"}}
  ]
}`

func TestReadJSON(t *testing.T) {
	root, err := ReadJSON(strings.NewReader(enveloped))
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}

	if root.ID != 1 || root.Generation != 1 {
		t.Errorf("root ID, Generation = %d, %d, want 1, 1", root.ID, root.Generation)
	}
	if len(root.Parents) != 2 {
		t.Fatalf("len(Parents) = %d, want 2", len(root.Parents))
	}
	if got := root.Parents[0].Xref; got != "I2" {
		t.Errorf("Parents[0].Xref = %q, want I2 (father first)", got)
	}
	if got := root.Father().Birth; got != "12 MAR 1875" {
		t.Errorf("Father().Birth = %q, want 12 MAR 1875", got)
	}
	if got := root.Mother().Generation; got != 2 {
		t.Errorf("Mother().Generation = %d, want 2", got)
	}
}

func TestReadJSONFlat(t *testing.T) {
	in := `{"xref": "I1", "name": "דוד לוי", "sex": "M", "parents": [{"xref": "I2", "sex": "M"}]}`
	root, err := ReadJSON(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if root.Xref != "I1" || len(root.Parents) != 1 {
		t.Errorf("got %q with %d parents, want I1 with 1", root.Xref, len(root.Parents))
	}
	if !root.IsNameRTL {
		t.Error("IsNameRTL should be derived from the name when absent")
	}
}

func TestReadJSONKeepsExplicitRTL(t *testing.T) {
	in := `{"data": {"name": "דוד לוי", "isNameRtl": false}}`
	root, err := ReadJSON(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if root.IsNameRTL {
		t.Error("explicit isNameRtl=false was overridden")
	}
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		code perrors.Code
	}{
		{"malformed", `{"data":`, ""},
		{"null parent", `{"data": {}, "parents": [null]}`, ""},
		{"bad sex", `{"data": {"sex": "X"}}`, perrors.ErrCodeInvalidRecord},
		{"three parents", `{"data": {}, "parents": [{}, {}, {}]}`, perrors.ErrCodeInvalidRecord},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.in))
			if err == nil {
				t.Fatal("ReadJSON() error = nil, want error")
			}
			if tt.code != "" && !perrors.Is(err, tt.code) {
				t.Errorf("code = %v, want %v", perrors.GetCode(err), tt.code)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	root, err := ReadJSON(strings.NewReader(enveloped))
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}

	var buf bytes.Buffer
	if err := WriteJSON(root, &buf); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	again, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON() after WriteJSON error = %v", err)
	}
	if diff := cmp.Diff(root, again); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestExportImportFile(t *testing.T) {
	root := &ancestry.Person{Xref: "I1", Name: "Anna", Sex: ancestry.SexFemale}
	path := filepath.Join(t.TempDir(), "ancestors.json")

	if err := ExportJSON(root, path); err != nil {
		t.Fatalf("ExportJSON() error = %v", err)
	}
	got, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON() error = %v", err)
	}
	if got.Name != "Anna" || got.ID != 1 {
		t.Errorf("ImportJSON() = %+v", got)
	}

	if _, err := ImportJSON(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ImportJSON(missing) error = %v, want not-exist", err)
	}
}


func TestImportExample(t *testing.T) {
	root, err := ImportJSON(filepath.Join("..", "..", "examples", "family.json"))
	if err != nil {
		t.Fatalf("ImportJSON() error = %v", err)
	}
	if got := root.Count(); got != 6 {
		t.Errorf("Count() = %d, want 6", got)
	}
	if got := root.Depth(); got != 3 {
		t.Errorf("Depth() = %d, want 3", got)
	}

	var xrefs []string
	root.Walk(func(p *ancestry.Person) bool {
		xrefs = append(xrefs, p.Xref)
		return true
	})
	if diff := cmp.Diff([]string{"I1", "I2", "I4", "I5", "I3", "I7"}, xrefs); diff != "" {
		t.Errorf("pre-order mismatch (-want +got):\n%s", diff)
	}

	anna := root.Mother()
	if anna == nil || !anna.IsAltRTL {
		t.Error("the Hebrew alternative name should be marked right-to-left")
	}
	if anna != nil && anna.IsNameRTL {
		t.Error("a Latin name should not be marked right-to-left")
	}
}
