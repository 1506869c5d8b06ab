package styles

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color modes accepted by NewRenderer.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Styles contains lipgloss styles derived from theme tokens.
type Styles struct {
	Theme   Theme
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// NewRenderer returns a renderer for w honoring the color mode.
func NewRenderer(w io.Writer, mode string) (*lipgloss.Renderer, error) {
	renderer := lipgloss.NewRenderer(w)
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", ColorAuto:
	case ColorAlways:
		renderer.SetColorProfile(termenv.TrueColor)
	case ColorNever:
		renderer.SetColorProfile(termenv.Ascii)
	default:
		return nil, fmt.Errorf("unknown color mode %q (want auto, always or never)", mode)
	}
	return renderer, nil
}

// PlainStyles renders without any escape sequences.
func PlainStyles(w io.Writer) Styles {
	renderer := lipgloss.NewRenderer(w)
	renderer.SetColorProfile(termenv.Ascii)
	return BuildStyles(renderer, DefaultTheme)
}

// BuildStyles converts theme tokens into lipgloss styles bound to renderer.
func BuildStyles(renderer *lipgloss.Renderer, theme Theme) Styles {
	tokens := theme.Tokens
	style := renderer.NewStyle

	return Styles{
		Theme:   theme,
		Title:   style().Foreground(lipgloss.Color(tokens.Text)).Bold(true),
		Muted:   style().Foreground(lipgloss.Color(tokens.TextMuted)),
		Success: style().Foreground(lipgloss.Color(tokens.Success)).Bold(true),
		Warning: style().Foreground(lipgloss.Color(tokens.Warning)),
		Error:   style().Foreground(lipgloss.Color(tokens.Error)).Bold(true),
	}
}

// Verdict renders PASS or FAIL.
func (s Styles) Verdict(pass bool) string {
	if pass {
		return s.Success.Render("PASS")
	}
	return s.Error.Render("FAIL")
}
