package report

import (
	"fmt"

	"github.com/opencode-ai/contrast/internal/styles"
)

// BuildTheme audits a terminal palette: every foreground role on every surface.
func (b *Builder) BuildTheme(theme styles.Theme) (*Report, error) {
	return b.Evaluate(
		fmt.Sprintf("Theme %q contrast report (WCAG ratios)", theme.Name),
		swatches(theme.Tokens.Foregrounds()),
		swatches(theme.Tokens.Surfaces()),
	)
}

func swatches(tokens []styles.Token) []Swatch {
	out := make([]Swatch, 0, len(tokens))
	for _, token := range tokens {
		out = append(out, Swatch{Name: token.Role, Hex: token.Hex})
	}
	return out
}
