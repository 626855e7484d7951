package ancestry

import (
	"fmt"

	perrors "github.com/matzehuels/pedigree/pkg/errors"
)

// Prune returns a copy of root without ancestors beyond the given number of
// generations. The root is generation 1, so Prune(root, 1) keeps only the
// root. A non-positive limit keeps everything.
func Prune(root *Person, generations int) *Person {
	if root == nil {
		return nil
	}
	return prune(root, 1, generations)
}

func prune(p *Person, gen, limit int) *Person {
	c := *p
	c.Parents = nil
	if limit > 0 && gen >= limit {
		return &c
	}
	for _, parent := range p.Parents {
		if parent == nil {
			continue
		}
		c.Parents = append(c.Parents, prune(parent, gen+1, limit))
	}
	return &c
}

// Normalize returns a copy of root with derived fields filled in:
// generations are renumbered from the root (1) when missing, an empty sex
// becomes [SexUnknown], IDs are assigned in pre-order when missing, and
// parents are ordered father before mother. Null parents are kept for
// [Validate] to report.
func Normalize(root *Person) *Person {
	if root == nil {
		return nil
	}
	c := root.Clone()

	nextID := 0
	c.Walk(func(p *Person) bool {
		if p.ID > nextID {
			nextID = p.ID
		}
		return true
	})

	var visit func(p *Person, gen int)
	visit = func(p *Person, gen int) {
		if p.Generation == 0 {
			p.Generation = gen
		}
		if p.Sex == "" {
			p.Sex = SexUnknown
		}
		if p.ID == 0 {
			nextID++
			p.ID = nextID
		}
		if len(p.Parents) == 2 {
			if f, m := p.Father(), p.Mother(); f != nil && m != nil && p.Parents[0] == m {
				p.Parents[0], p.Parents[1] = f, m
			}
		}
		for _, parent := range p.Parents {
			if parent == nil {
				continue
			}
			visit(parent, p.Generation+1)
		}
	}
	visit(c, 1)
	return c
}

// Validate checks the structural rules of an ancestor tree: at most two
// parents per person, known sex codes, and parents one generation above
// their child whenever both generations are recorded.
func Validate(root *Person) error {
	if root == nil {
		return perrors.New(perrors.ErrCodeInvalidRecord, "ancestor tree is empty")
	}

	var err error
	var visit func(p *Person, path string)
	visit = func(p *Person, path string) {
		if err != nil {
			return
		}
		if len(p.Parents) > 2 {
			err = perrors.New(perrors.ErrCodeInvalidRecord, "%s: %d parents (max 2)", path, len(p.Parents))
			return
		}
		if e := perrors.ValidateSex(string(p.Sex)); e != nil {
			err = perrors.Wrap(perrors.ErrCodeInvalidRecord, e, "%s", path)
			return
		}
		for i, parent := range p.Parents {
			if parent == nil {
				err = perrors.New(perrors.ErrCodeInvalidRecord, "%s: parent %d is null", path, i)
				return
			}
			if p.Generation > 0 && parent.Generation > 0 && parent.Generation != p.Generation+1 {
				err = perrors.New(perrors.ErrCodeInvalidRecord,
					"%s: parent generation %d does not follow %d", path, parent.Generation, p.Generation)
				return
			}
			visit(parent, fmt.Sprintf("%s.parents[%d]", path, i))
		}
	}
	visit(root, label(root))
	return err
}

func label(p *Person) string {
	if p.Xref != "" {
		return p.Xref
	}
	return fmt.Sprintf("person %d", p.ID)
}
