package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pedigree/pkg/chart/orientation"
	"github.com/matzehuels/pedigree/pkg/config"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for pedigree.

Bash:
  $ source <(pedigree completion bash)

Zsh:
  $ pedigree completion zsh > "${fpath[1]}/_pedigree"

Fish:
  $ pedigree completion fish > ~/.config/fish/completions/pedigree.fish

PowerShell:
  PS> pedigree completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
}

// registerValueCompletions offers the fixed value sets of the chart flags
// for tab completion. Flags cmd does not define are skipped.
func registerValueCompletions(cmd *cobra.Command) {
	layouts := make([]string, len(orientation.Kinds))
	for i, k := range orientation.Kinds {
		layouts[i] = k.String() + "\t" + k.Describe()
	}

	values := map[string][]string{
		"orientation": layouts,
		"format":      config.Formats,
		"measure":     {config.MeasureFace, config.MeasureEstimate},
	}
	for name, vals := range values {
		if cmd.Flags().Lookup(name) == nil {
			continue
		}
		_ = cmd.RegisterFlagCompletionFunc(name, cobra.FixedCompletions(vals, cobra.ShellCompDirectiveNoFileComp))
	}
}
