package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pedigree/pkg/config"
	perrors "github.com/matzehuels/pedigree/pkg/errors"
	"github.com/matzehuels/pedigree/pkg/pipeline"
)

// stdoutPath selects standard output for -o.
const stdoutPath = "-"

// renderFlags holds the command-line flags of the render command. Flags
// the user did not set leave the configured value in place.
type renderFlags struct {
	output         string
	orientation    string
	generations    int
	formats        string
	showEmptyBoxes bool
	rtl            bool
	measure        string
	scale          float64
	embedFont      bool
	detailed       bool
	noCache        bool
	refresh        bool
	pick           bool
}

// renderCommand creates the render command for generating charts.
func (c *CLI) renderCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render [records.json]",
		Short: "Render an ancestor chart",
		Long: `Render an ancestor chart from a JSON record file.

One file is written per format. With a single format, -o names the file
(use "-" for stdout); with several, -o is the base path and the format is
appended as the extension. Without -o the input path is used as the base.

Rendered artifacts are cached locally for faster subsequent runs.`,
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
			return c.runRender(cmd.Context(), cfg, opts, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&flags.formats, "format", "f", "", "output format(s): "+strings.Join(config.Formats, ", ")+" (comma-separated)")
	flags.addDrawFlags(cmd)
	cmd.Flags().Float64Var(&flags.scale, "scale", pipeline.DefaultScale, "PNG resolution multiplier")
	cmd.Flags().BoolVar(&flags.embedFont, "embed-font", false, "embed the label font in SVG output")
	cmd.Flags().BoolVar(&flags.detailed, "detailed", false, "include dates and Ahnentafel numbers in DOT labels")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&flags.refresh, "refresh", false, "ignore cached artifacts and render again")
	cmd.Flags().BoolVar(&flags.pick, "pick", false, "choose the layout interactively")
	registerValueCompletions(cmd)

	return cmd
}

// addDrawFlags registers the flags that change the chart geometry.
func (f *renderFlags) addDrawFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.orientation, "orientation", "l", "", "layout: down (default), up, right, left")
	cmd.Flags().IntVarP(&f.generations, "generations", "g", 0, fmt.Sprintf("generations to draw (%d-%d)", perrors.MinGenerations, perrors.MaxGenerations))
	cmd.Flags().BoolVar(&f.showEmptyBoxes, "show-empty-boxes", false, "draw placeholder boxes for unknown parents")
	cmd.Flags().BoolVar(&f.rtl, "rtl", false, "right-to-left host text direction")
	cmd.Flags().StringVar(&f.measure, "measure", "", "text measurement: face (default), estimate")
}

// apply overlays the flags the user set on opts. Flags the command does
// not register count as unset.
func (f renderFlags) apply(cmd *cobra.Command, opts *pipeline.Options) error {
	changed := cmd.Flags().Changed
	if changed("orientation") {
		opts.Orientation = f.orientation
	}
	if changed("generations") {
		opts.Generations = f.generations
	}
	if changed("format") {
		opts.Formats = parseFormats(f.formats)
	}
	if changed("show-empty-boxes") {
		opts.ShowEmptyBoxes = f.showEmptyBoxes
	}
	if changed("rtl") {
		opts.RTL = f.rtl
	}
	if changed("measure") {
		opts.Measure = f.measure
	}
	opts.Scale = f.scale
	opts.EmbedFont = f.embedFont
	opts.Detailed = f.detailed
	opts.Refresh = f.refresh

	if f.output != "" && f.output != stdoutPath {
		if err := perrors.ValidateOutputPath(f.output); err != nil {
			return err
		}
	}
	if f.output == stdoutPath && len(opts.Formats) > 1 {
		return perrors.New(perrors.ErrCodeInvalidPath, "stdout output takes a single format, got %d", len(opts.Formats))
	}
	return opts.ValidateAndSetDefaults()
}

// runRender executes the pipeline and writes one file per format.
func (c *CLI) runRender(ctx context.Context, cfg config.Config, opts pipeline.Options, flags renderFlags) error {
	logger := loggerFromContext(ctx)

	runner, err := c.newRunner(ctx, cfg, flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	if flags.pick {
		root, err := pipeline.Load(ctx, opts)
		if err != nil {
			return fmt.Errorf("load %s: %w", opts.Input, err)
		}
		name, err := pickOrientation(opts.Orientation, root.Count())
		if err != nil {
			return err
		}
		if name == "" {
			printDetail("No layout selected")
			return nil
		}
		opts.Orientation = name
		opts.Root = root
	}

	logger.Infof("Rendering %s (%s)", opts.Input, opts.Orientation)
	prog := newProgress(logger)

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Drawing %s chart...", opts.Orientation))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render %s: %w", opts.Input, err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	paths := outputPaths(flags.output, opts.Input, opts.Formats)
	for _, format := range opts.Formats {
		if err := writeArtifact(paths[format], result.Artifacts[format]); err != nil {
			return err
		}
		logger.Debugf("Wrote %s: %d bytes", format, len(result.Artifacts[format]))
	}
	prog.done(fmt.Sprintf("Rendered %s", plural(len(opts.Formats), "artifact", "artifacts")))

	if flags.output == stdoutPath {
		return nil
	}

	printSuccess("Chart rendered")
	for _, format := range opts.Formats {
		printFile(paths[format])
	}
	printStats(result.Stats.PersonCount, result.Stats.NodeCount, result.Stats.LinkCount, result.CacheInfo.RenderHit)
	printNewline()
	printNextStep("Inspect geometry", appName+" layout "+opts.Input)

	return nil
}

// outputPaths maps each format to the file it is written to.
//
// A single format with an explicit -o writes exactly there. Otherwise -o
// (or the input path) is a base path: a known format extension is
// stripped and each format appends its own. A path that would overwrite
// the input gets a ".chart" infix.
func outputPaths(output, input string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if output != "" && len(formats) == 1 {
		paths[formats[0]] = output
		return paths
	}

	base := basePath(output, input)
	for _, f := range formats {
		p := base + "." + f
		if filepath.Clean(p) == filepath.Clean(input) {
			p = base + ".chart." + f
		}
		paths[f] = p
	}
	return paths
}

// basePath derives the base output path from the output and input file paths.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if slices.Contains(config.Formats, strings.TrimPrefix(ext, ".")) {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// writeArtifact writes data to path, or to stdout for "-".
func writeArtifact(path string, data []byte) error {
	out, err := openOutput(path)
	if err != nil {
		return fmt.Errorf("open output %s: %w", path, err)
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("write output %s: %w", path, err)
	}
	return nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for path, creating missing parent
// directories. "-" selects os.Stdout.
func openOutput(path string) (io.WriteCloser, error) {
	if path == stdoutPath {
		return nopCloser{os.Stdout}, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return os.Create(path)
}
