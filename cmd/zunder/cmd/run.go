package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/zunder/foundation/ocl"
	"github.com/msto63/zunder/foundation/ocl/completion"
	"github.com/msto63/zunder/foundation/ocl/component"
	"github.com/msto63/zunder/internal/demo"
)

var runCmd = &cobra.Command{
	Use:   "run <target> [tokens...]",
	Short: "Run tokens against a built-in graph",
	Long: `Run consumes the tokens against the named graph and prints the result.
Global options follow a final "--":

  zunder run calc add 1 2
  zunder run greeter --name Ann greet 2 - upper
  zunder run inventory restock pear -- --trace
  zunder run colors -- --help`,
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: completeRun,
	RunE: func(cmd *cobra.Command, args []string) error {
		target, ok := demo.Lookup(args[0])
		if !ok {
			return fmt.Errorf("unknown target %q (available: %s)", args[0], strings.Join(demo.Names(), ", "))
		}
		_, err := ocl.Fire(cmd.Context(), target, ocl.Options{
			Name:   args[0],
			Args:   append([]string{}, args[1:]...),
			Config: cfg,
			Logger: logger,
			Stdout: cmd.OutOrStdout(),
			Stderr: cmd.ErrOrStderr(),
		})
		return err
	},
}

func init() {
	// everything after the target belongs to the engine
	runCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(runCmd)
}

// completeRun offers target names, then what may follow the component the
// typed words lead to. Nothing is called while completing.
func completeRun(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		return demo.Names(), cobra.ShellCompDirectiveNoFileComp
	}
	c, ok := demo.Lookup(args[0])
	if !ok {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	insp := component.NewReflector()
	for _, word := range args[1:] {
		next, found := insp.Member(c, strings.ReplaceAll(word, "-", "_"))
		if !found {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		c = next
	}
	var out []string
	for _, candidate := range completion.Completions(c, insp, false) {
		if strings.HasPrefix(candidate, toComplete) {
			out = append(out, candidate)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
