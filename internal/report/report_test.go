package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/opencode-ai/contrast/internal/contrast"
	"github.com/opencode-ai/contrast/internal/cssvars"
	"github.com/opencode-ai/contrast/internal/styles"
	"github.com/stretchr/testify/require"
)

type mapLookup map[string]string

func (m mapLookup) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

func render(t *testing.T, rep *Report) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, rep, styles.PlainStyles(&buf)))
	return buf.String()
}

func TestTextCandidatesPrefersPrimary(t *testing.T) {
	b := NewBuilder(DefaultOptions())
	got := b.TextCandidates(mapLookup{"color-text-primary": "#111111"})
	require.Equal(t, []Swatch{
		{"color-text-primary", "#111111"},
		{"white", "#ffffff"},
		{"black", "#000000"},
	}, got)
}

func TestTextCandidatesFallback(t *testing.T) {
	b := NewBuilder(DefaultOptions())
	got := b.TextCandidates(mapLookup{"color-primary": "#777777"})
	require.Equal(t, []Swatch{
		{"text-primary-fallback", "#0f172a"},
		{"white", "#ffffff"},
		{"black", "#000000"},
	}, got)
}

func TestBuildSkipsAbsentBackgrounds(t *testing.T) {
	b := NewBuilder(DefaultOptions())
	rep, err := b.Build(mapLookup{
		"color-bg":      "#ffffff",
		"color-primary": "#2563eb",
		"color-unused":  "#123456",
	})
	require.NoError(t, err)
	require.Len(t, rep.Results, 6)

	// Background order follows the configured list, not declaration order.
	require.Equal(t, "color-primary", rep.Results[0].BackgroundName)
	require.Equal(t, "color-bg", rep.Results[3].BackgroundName)
	for _, res := range rep.Results {
		require.NotEqual(t, "color-unused", res.BackgroundName)
	}
}

func TestBuildPrimaryOnlyFallback(t *testing.T) {
	b := NewBuilder(DefaultOptions())
	rep, err := b.Build(mapLookup{"color-primary": "#777777"})
	require.NoError(t, err)
	require.Len(t, rep.Results, 3)

	names := []string{rep.Results[0].TextName, rep.Results[1].TextName, rep.Results[2].TextName}
	require.Equal(t, []string{"text-primary-fallback", "white", "black"}, names)
	require.Equal(t, "#0f172a", rep.Results[0].TextHex)

	out := render(t, rep)
	require.Equal(t, 3, strings.Count(out, " on color-primary (#777777): "))
}

func TestBuildRejectsInvalidColor(t *testing.T) {
	b := NewBuilder(DefaultOptions())
	_, err := b.Build(mapLookup{"color-bg": "#abcd"})
	require.True(t, errors.Is(err, contrast.ErrInvalidColorFormat), "got %v", err)
	require.Contains(t, err.Error(), "color-bg")
}

func TestRenderAllPass(t *testing.T) {
	set := cssvars.NewSet()
	for _, v := range cssvars.ParseString("--color-bg: #ffffff;\n--color-text-primary: #000000;\n", "_variables.css") {
		set.Put(v)
	}

	rep, err := NewBuilder(DefaultOptions()).Build(set)
	require.NoError(t, err)
	out := render(t, rep)

	require.Contains(t, out, "color-text-primary (#000000) on color-bg (#ffffff): 21.00 -> normal: PASS; large: PASS\n")
	require.Contains(t, out, "white (#ffffff) on color-bg (#ffffff): 1.00 -> normal: FAIL; large: FAIL\n")

	// White on white fails, so the summary lists it.
	require.Contains(t, out, "1 combinations fail normal contrast (4.5). Review the following:\n")
	require.Contains(t, out, " - white on color-bg: 1.00\n")
}

func TestRenderSummaryAllPass(t *testing.T) {
	b := NewBuilder(DefaultOptions())
	rep, err := b.Evaluate("Contrast check report (WCAG ratios)",
		[]Swatch{{"color-text-primary", "#000000"}},
		[]Swatch{{"color-bg", "#ffffff"}},
	)
	require.NoError(t, err)

	want := strings.Join([]string{
		"",
		"Contrast check report (WCAG ratios)",
		"Thresholds: normal >= 4.5, large >= 3.0",
		"",
		"color-text-primary (#000000) on color-bg (#ffffff): 21.00 -> normal: PASS; large: PASS",
		"",
		"Summary:",
		"All combinations pass normal text contrast >= 4.5:1",
		"",
		"Done.",
		"",
	}, "\n")
	require.Equal(t, want, render(t, rep))
}

func TestRenderLargeOnlyPass(t *testing.T) {
	b := NewBuilder(DefaultOptions())
	rep, err := b.Evaluate("t", []Swatch{{"white", "#ffffff"}}, []Swatch{{"color-primary", "#777777"}})
	require.NoError(t, err)
	require.Len(t, rep.Results, 1)

	res := rep.Results[0]
	require.False(t, res.NormalPass)
	require.True(t, res.LargePass)
	require.Contains(t, render(t, rep), "-> normal: FAIL; large: PASS")
}

func TestNewBuilderDefaultsThresholds(t *testing.T) {
	opts := DefaultOptions()
	opts.Thresholds = contrast.Thresholds{}
	rep, err := NewBuilder(opts).Evaluate("t", nil, nil)
	require.NoError(t, err)
	require.Equal(t, contrast.AA, rep.Thresholds)
	require.Empty(t, rep.Failures())
}

func TestBuildThemeCoversEveryRole(t *testing.T) {
	b := NewBuilder(DefaultOptions())
	for _, name := range styles.ThemeNames() {
		theme, _ := styles.Lookup(name)
		rep, err := b.BuildTheme(theme)
		require.NoError(t, err, name)
		want := len(theme.Tokens.Foregrounds()) * len(theme.Tokens.Surfaces())
		require.Len(t, rep.Results, want, name)
	}
}

func TestHighContrastThemeTextPasses(t *testing.T) {
	rep, err := NewBuilder(DefaultOptions()).BuildTheme(styles.HighContrastTheme)
	require.NoError(t, err)
	for _, res := range rep.Results {
		if res.TextName == "text" {
			require.True(t, res.NormalPass, "%s on %s: %.2f", res.TextName, res.BackgroundName, res.Ratio)
		}
	}
}

func TestRenderStylesFailureBullets(t *testing.T) {
	rep, err := NewBuilder(DefaultOptions()).Build(mapLookup{"color-primary": "#777777"})
	require.NoError(t, err)

	var buf bytes.Buffer
	renderer, err := styles.NewRenderer(&buf, styles.ColorAlways)
	require.NoError(t, err)
	st := styles.BuildStyles(renderer, styles.DefaultTheme)
	require.NoError(t, Render(&buf, rep, st))

	var bullets int
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.Contains(line, " - ") && strings.Contains(line, " on color-primary: ") {
			bullets++
			require.Contains(t, line, "\x1b[")
		}
	}
	require.Positive(t, bullets)
}
