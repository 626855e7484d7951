package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pedigree/pkg/pipeline"
	"github.com/matzehuels/pedigree/pkg/render/sink"
)

// layoutCommand creates the layout command for computing chart geometry.
func (c *CLI) layoutCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "layout [records.json]",
		Short: "Compute chart geometry as JSON",
		Long: `Compute the geometry of an ancestor chart without rendering it.

The output lists every box with its position, Ahnentafel number, CSS class
and fitted text rows, plus the connector paths between boxes. It is the
same document 'render -f json' writes, and is never cached.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			opts := pipeline.FromConfig(cfg)
			opts.Input = args[0]
			if err := flags.apply(cmd, &opts); err != nil {
				return err
			}
			return c.runLayout(cmd.Context(), opts, flags.output)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", `output file (default: <input>.layout.json, "-" for stdout)`)
	flags.addDrawFlags(cmd)
	registerValueCompletions(cmd)

	return cmd
}

// runLayout loads the records, draws the chart and writes its geometry.
func (c *CLI) runLayout(ctx context.Context, opts pipeline.Options, output string) error {
	runner := pipeline.NewRunner(nil, nil, c.Logger)
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Computing %s layout...", opts.Orientation))
	spinner.Start()

	d, err := runner.Draw(ctx, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	data, err := sink.RenderJSON(d, sink.WithJSONRecords(), sink.WithJSONRows())
	if err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}

	outputPath := output
	if outputPath == "" {
		outputPath = strings.TrimSuffix(opts.Input, filepath.Ext(opts.Input)) + ".layout.json"
	}
	if err := writeArtifact(outputPath, data); err != nil {
		return err
	}
	if outputPath == stdoutPath {
		return nil
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(0, len(d.Nodes), len(d.Links), false)
	printNewline()
	printNextStep("Render", appName+" render "+opts.Input+" -l "+opts.Orientation)

	return nil
}
