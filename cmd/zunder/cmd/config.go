package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/zunder/foundation/core/config"
)

var configFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := config.ParseFormat(configFormat)
		if err != nil {
			return err
		}
		data, err := cfg.Marshal(format)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configPathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "List the files searched for a configuration",
	Run: func(cmd *cobra.Command, args []string) {
		options := config.DefaultDiscoveryOptions()
		found, _ := config.FindConfigFile(options)
		for _, path := range config.ListPossibleConfigFiles(options) {
			marker := " "
			if path == found {
				marker = "*"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, path)
		}
	},
}

func init() {
	configShowCmd.Flags().StringVar(&configFormat, "format", "toml", "output format (toml, yaml)")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathsCmd)
	rootCmd.AddCommand(configCmd)
}
