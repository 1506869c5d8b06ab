package cli

import (
	"fmt"

	"github.com/opencode-ai/contrast/internal/report"
	"github.com/opencode-ai/contrast/internal/styles"
	"github.com/spf13/cobra"
)

func newThemesCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "themes [name...]",
		Short: "Audit the built-in terminal palettes",
		Long: `Checks every foreground role of the built-in terminal palettes against
their background and panel colors. With no names, all palettes are audited.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if len(names) == 0 {
				names = styles.ThemeNames()
			}

			builder := rt.builder()
			for _, name := range names {
				theme, ok := styles.Themes[name]
				if !ok {
					return fmt.Errorf("unknown theme %q (available: %v)", name, styles.ThemeNames())
				}
				rep, err := builder.BuildTheme(theme)
				if err != nil {
					return fmt.Errorf("theme %s: %w", name, err)
				}
				if err := report.Render(cmd.OutOrStdout(), rep, rt.styles); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
