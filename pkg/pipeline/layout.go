package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/pedigree/pkg/ancestry"
	"github.com/matzehuels/pedigree/pkg/chart"
	"github.com/matzehuels/pedigree/pkg/observability"
)

// Draw computes the drawing of root.
func Draw(ctx context.Context, root *ancestry.Person, opts Options) (*chart.Drawing, error) {
	if err := opts.ValidateForDraw(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, opts.Orientation, root.Count())
	start := time.Now()

	c := chart.New(opts.ChartOptions(), opts.TextMeasurer(), opts.Logger)
	d := c.Draw(root)

	hooks.OnLayoutComplete(ctx, opts.Orientation, len(d.Nodes), time.Since(start), nil)
	return d, nil
}
