package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	ocompletion "github.com/msto63/zunder/foundation/ocl/completion"
	"github.com/msto63/zunder/internal/demo"
)

var completionTarget string

var completionCmd = &cobra.Command{
	Use:   "completion <bash|fish>",
	Short: "Generate a shell completion script",
	Long: `Completion prints a completion script for zunder itself. With --target
it prints the script a built-in graph would get from "-- --completion",
for a command named after the target.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{ocompletion.ShellBash, ocompletion.ShellFish},
	RunE: func(cmd *cobra.Command, args []string) error {
		shell := args[0]
		out := cmd.OutOrStdout()

		if completionTarget != "" {
			target, ok := demo.Lookup(completionTarget)
			if !ok {
				return fmt.Errorf("unknown target %q", completionTarget)
			}
			script, err := ocompletion.New(ocompletion.Options{
				Depth:  cfg.Completion.Depth,
				Logger: logger,
			}).Script(completionTarget, target, shell)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(out, script)
			return err
		}

		switch shell {
		case ocompletion.ShellBash:
			return rootCmd.GenBashCompletionV2(out, true)
		case ocompletion.ShellFish:
			return rootCmd.GenFishCompletion(out, true)
		}
		return fmt.Errorf("unsupported shell %q", shell)
	},
}

func init() {
	completionCmd.Flags().StringVar(&completionTarget, "target", "", "built-in graph to generate the script for")
	rootCmd.AddCommand(completionCmd)
}
