package ancestry

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	perrors "github.com/matzehuels/pedigree/pkg/errors"
)

// family builds a three generation tree: root, two parents, one paternal
// grandfather.
func family() *Person {
	grandfather := &Person{Xref: "I4", Sex: SexMale}
	father := &Person{Xref: "I2", Sex: SexMale, Parents: []*Person{grandfather}}
	mother := &Person{Xref: "I3", Sex: SexFemale}
	return &Person{Xref: "I1", Sex: SexUnknown, Parents: []*Person{father, mother}}
}

func TestDepthAndCount(t *testing.T) {
	root := family()
	if got := root.Depth(); got != 3 {
		t.Errorf("Depth() = %d, want 3", got)
	}
	if got := root.Count(); got != 4 {
		t.Errorf("Count() = %d, want 4", got)
	}
	var nilPerson *Person
	if nilPerson.Depth() != 0 || nilPerson.Count() != 0 {
		t.Error("nil tree should have depth and count 0")
	}
}

func TestFatherMother(t *testing.T) {
	root := family()
	if f := root.Father(); f == nil || f.Xref != "I2" {
		t.Errorf("Father() = %v, want I2", f)
	}
	if m := root.Mother(); m == nil || m.Xref != "I3" {
		t.Errorf("Mother() = %v, want I3", m)
	}
	if root.Parents[1].Father() != nil {
		t.Error("Mother has no recorded father")
	}
}

func TestPrune(t *testing.T) {
	root := family()

	pruned := Prune(root, 2)
	if got := pruned.Depth(); got != 2 {
		t.Errorf("Prune(2).Depth() = %d, want 2", got)
	}
	if got := root.Depth(); got != 3 {
		t.Errorf("Prune modified the input: Depth() = %d, want 3", got)
	}
	if got := Prune(root, 1).Count(); got != 1 {
		t.Errorf("Prune(1).Count() = %d, want 1", got)
	}
	if got := Prune(root, 0).Count(); got != 4 {
		t.Errorf("Prune(0).Count() = %d, want 4", got)
	}
	if Prune(nil, 3) != nil {
		t.Error("Prune(nil) should be nil")
	}
}

func TestNormalize(t *testing.T) {
	mother := &Person{Xref: "I3", Sex: SexFemale}
	father := &Person{Xref: "I2", Sex: SexMale}
	root := &Person{Xref: "I1", Parents: []*Person{mother, father}}

	got := Normalize(root)

	want := &Person{
		ID: 1, Xref: "I1", Generation: 1, Sex: SexUnknown,
		Parents: []*Person{
			{ID: 2, Xref: "I2", Generation: 2, Sex: SexMale},
			{ID: 3, Xref: "I3", Generation: 2, Sex: SexFemale},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Normalize() mismatch (-want +got):\n%s", diff)
	}
	if root.Sex != "" || root.Parents[0] != mother {
		t.Error("Normalize modified the input")
	}
}

func TestNormalizeKeepsExistingIDs(t *testing.T) {
	root := &Person{ID: 7, Parents: []*Person{{Sex: SexMale}}}
	got := Normalize(root)
	if got.ID != 7 || got.Parents[0].ID != 8 {
		t.Errorf("IDs = %d, %d, want 7, 8", got.ID, got.Parents[0].ID)
	}
}

func TestNormalizeNullParent(t *testing.T) {
	root := &Person{Xref: "I1", Parents: []*Person{nil, {Xref: "I3", Sex: SexFemale}}}

	got := Normalize(root)
	if got.Parents[0] != nil || got.Parents[1].Generation != 2 {
		t.Fatalf("Normalize() parents = %v, want the null slot kept", got.Parents)
	}
	if m := got.Mother(); m == nil || m.Xref != "I3" {
		t.Errorf("Mother() = %v, want I3", m)
	}
	if got.Father() != nil {
		t.Error("Father() should skip the null slot")
	}

	err := Validate(got)
	if !perrors.Is(err, perrors.ErrCodeInvalidRecord) {
		t.Errorf("Validate() = %v, want %v", err, perrors.ErrCodeInvalidRecord)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		root    *Person
		wantErr bool
	}{
		{"valid", family(), false},
		{"nil", nil, true},
		{
			name:    "three parents",
			root:    &Person{Parents: []*Person{{}, {}, {}}},
			wantErr: true,
		},
		{
			name:    "bad sex",
			root:    &Person{Sex: "X"},
			wantErr: true,
		},
		{
			name:    "generation gap",
			root:    &Person{Generation: 1, Parents: []*Person{{Generation: 3}}},
			wantErr: true,
		},
		{
			name:    "null parent",
			root:    &Person{Parents: []*Person{nil}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.root)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !perrors.Is(err, perrors.ErrCodeInvalidRecord) {
				t.Errorf("Validate() code = %v, want %v", perrors.GetCode(err), perrors.ErrCodeInvalidRecord)
			}
		})
	}
}

func TestIsRTL(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"Johannes Müller", false},
		{"יוחנן", true},
		{"محمد", true},
		{"1875 محمد", true},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsRTL(tt.text); got != tt.want {
			t.Errorf("IsRTL(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestSexClass(t *testing.T) {
	if SexMale.Class() != "male" || SexFemale.Class() != "female" || SexUnknown.Class() != "unknown" {
		t.Error("unexpected CSS classes")
	}
	if Sex("X").Valid() {
		t.Error(`Sex("X").Valid() = true`)
	}
}
