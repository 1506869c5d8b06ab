package cli

import (
	"fmt"

	"github.com/opencode-ai/contrast/internal/report"
	"github.com/spf13/cobra"
)

func newRatioCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "ratio <text-color> <background-color>",
		Short: "Compute the contrast ratio of two hex colors",
		Long: `Computes the WCAG contrast ratio of two colors given as #rgb or #rrggbb
and reports the AA verdicts for normal and large text.

Example:
  contrast ratio '#0f172a' '#ffffff'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := rt.builder().Evaluate("",
				[]report.Swatch{{Name: "text", Hex: args[0]}},
				[]report.Swatch{{Name: "background", Hex: args[1]}},
			)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), report.FormatResult(rep.Results[0], rt.styles))
			return err
		},
	}
}
