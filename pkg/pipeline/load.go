package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/pedigree/pkg/ancestry"
	pio "github.com/matzehuels/pedigree/pkg/io"
	"github.com/matzehuels/pedigree/pkg/observability"
)

// Load returns the record tree for opts, pruned to opts.Generations. A
// pre-loaded opts.Root is normalized and validated like a file would be.
func Load(ctx context.Context, opts Options) (*ancestry.Person, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, err
	}

	source := opts.Input
	if opts.Root != nil {
		source = "memory"
	}
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, source)
	start := time.Now()

	root, err := load(opts)
	count := 0
	if err == nil {
		root = ancestry.Prune(root, opts.Generations)
		count = root.Count()
	}
	hooks.OnLoadComplete(ctx, source, count, time.Since(start), err)
	return root, err
}

func load(opts Options) (*ancestry.Person, error) {
	if opts.Root == nil {
		return pio.ImportJSON(opts.Input)
	}
	root := ancestry.Normalize(opts.Root)
	if err := ancestry.Validate(root); err != nil {
		return nil, err
	}
	return root, nil
}
