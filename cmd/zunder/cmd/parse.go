package cmd

import (
	"fmt"
	"math/big"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/msto63/zunder/foundation/ocl/helptext"
	"github.com/msto63/zunder/foundation/ocl/literal"
)

var parseStrict bool

var parseCmd = &cobra.Command{
	Use:   "parse <token>...",
	Short: "Show how tokens parse as literal values",
	Long: `Parse shows the value each token becomes when it is bound to an
argument, with its Go type. Tokens outside the literal grammar stay strings.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := literal.New(literal.Options{
			CommentHash:       cfg.Literal.CommentHash,
			StripLeadingZeros: cfg.Literal.StripLeadingZeros,
		})
		out := cmd.OutOrStdout()
		typeStyle := lipgloss.NewStyle()
		if helptext.ColorEnabled(out, cfg.Help.Color) {
			typeStyle = typeStyle.Foreground(lipgloss.Color("#06B6D4"))
		}

		for _, token := range args {
			var value any
			if parseStrict {
				v, err := parser.Eval(token)
				if err != nil {
					fmt.Fprintf(out, "%-24q error: %v\n", token, err)
					continue
				}
				value = v
			} else {
				value = parser.Parse(token)
			}
			fmt.Fprintf(out, "%-24q %-28s %s\n", token, literal.Format(value), typeStyle.Render(typeName(value)))
		}
		return nil
	},
}

func init() {
	parseCmd.Flags().BoolVar(&parseStrict, "strict", false, "report grammar violations instead of keeping the token as a string")
	rootCmd.AddCommand(parseCmd)
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "nil"
	case *big.Int:
		return "big.Int"
	}
	return fmt.Sprintf("%T", v)
}
