package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pedigree/pkg/config"
)

// configCommand creates the config command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the effective configuration",
	}

	cmd.AddCommand(c.configShowCommand())
	cmd.AddCommand(c.configEnvCommand())

	return cmd
}

// configShowCommand prints the merged configuration as TOML.
func (c *CLI) configShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the configuration after file and environment overrides",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if c.configPath != "" {
				printDetail("# from %s and the environment", c.configPath)
			}
			fmt.Print(cfg.String())
			return nil
		},
	}
}

// configEnvCommand lists the environment variables the configuration reads.
func (c *CLI) configEnvCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "List the supported environment variables",
		Run: func(cmd *cobra.Command, args []string) {
			rows := make([][]string, len(config.EnvVars))
			for i, v := range config.EnvVars {
				rows[i] = []string{config.EnvPrefix + v.Name, v.Help}
			}
			fmt.Println(summaryTable([]string{"Variable", "Meaning"}, rows))
		},
	}
}
