package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/audioreg/internal/config"
)

var configWrite bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or write the default configuration",
	Long: `Print the default configuration with comments. With --write the template is
saved to --config, or to the default config path when --config is not set.`,
	// The file named by --config may not exist yet, so skip loading it.
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	RunE:              runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&configWrite, "write", false, "write the default config file")
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if !configWrite {
		fmt.Fprint(out, config.DefaultConfigTemplate())
		return nil
	}

	path := cfgFile
	if path == "" {
		path = config.DefaultConfigPath()
	}
	if err := config.WriteDefaultConfig(path); err != nil {
		return err
	}
	fmt.Fprintf(out, "Wrote %s\n", path)
	return nil
}
