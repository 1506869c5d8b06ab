// Package styles holds terminal palettes and the lipgloss styles derived from them.
package styles

import "sort"

// ThemeTokens defines the semantic color roles used for terminal output.
type ThemeTokens struct {
	Background string
	Panel      string
	Text       string
	TextMuted  string
	Border     string
	Accent     string
	Focus      string
	Success    string
	Warning    string
	Error      string
	Info       string
}

// Token is a single named palette entry.
type Token struct {
	Role string
	Hex  string
}

// Foregrounds returns the roles drawn as text, in display order.
func (t ThemeTokens) Foregrounds() []Token {
	return []Token{
		{"text", t.Text},
		{"text-muted", t.TextMuted},
		{"accent", t.Accent},
		{"focus", t.Focus},
		{"success", t.Success},
		{"warning", t.Warning},
		{"error", t.Error},
		{"info", t.Info},
	}
}

// Surfaces returns the roles text is drawn on.
func (t ThemeTokens) Surfaces() []Token {
	return []Token{
		{"background", t.Background},
		{"panel", t.Panel},
	}
}

// Theme bundles a palette with a name.
type Theme struct {
	Name   string
	Tokens ThemeTokens
}

// Themes lists available palettes by name.
var Themes = map[string]Theme{
	"default":       DefaultTheme,
	"light":         LightTheme,
	"high-contrast": HighContrastTheme,
}

// ThemeNames returns the palette names sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the named theme, or the default theme when name is empty.
func Lookup(name string) (Theme, bool) {
	if name == "" {
		return DefaultTheme, true
	}
	theme, ok := Themes[name]
	return theme, ok
}
