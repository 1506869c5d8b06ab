// Package report pairs text and background colors and renders a WCAG pass/fail report.
package report

import (
	"fmt"

	"github.com/opencode-ai/contrast/internal/contrast"
	"github.com/opencode-ai/contrast/internal/logging"
)

// Swatch is a labeled color.
type Swatch struct {
	Name string
	Hex  string
}

// Lookup resolves a variable name to its hex value.
type Lookup interface {
	Lookup(name string) (string, bool)
}

// Options fixes the candidate lists used by Build.
type Options struct {
	TextPrimaryVar string
	Fallback       Swatch
	ExtraText      []Swatch
	Backgrounds    []string
	Thresholds     contrast.Thresholds
}

// DefaultOptions returns the candidates checked when nothing is configured.
func DefaultOptions() Options {
	return Options{
		TextPrimaryVar: "color-text-primary",
		Fallback:       Swatch{Name: "text-primary-fallback", Hex: "#0f172a"},
		ExtraText: []Swatch{
			{Name: "white", Hex: "#ffffff"},
			{Name: "black", Hex: "#000000"},
		},
		Backgrounds: []string{
			"color-primary",
			"color-primary-light",
			"color-primary-dark",
			"color-secondary",
			"color-secondary-light",
			"color-accent-orange",
			"color-accent-yellow",
			"color-bg",
			"color-bg-light",
		},
		Thresholds: contrast.AA,
	}
}

// Result is one evaluated text/background pair.
type Result struct {
	TextName       string
	TextHex        string
	BackgroundName string
	BackgroundHex  string
	Ratio          float64
	NormalPass     bool
	LargePass      bool
}

// Report holds every evaluated pair in check order.
type Report struct {
	Title      string
	Thresholds contrast.Thresholds
	Results    []Result
}

// Failures returns the pairs below the normal-text threshold.
func (r *Report) Failures() []Result {
	var fails []Result
	for _, res := range r.Results {
		if !res.NormalPass {
			fails = append(fails, res)
		}
	}
	return fails
}

// Builder evaluates variable sets against fixed candidates.
type Builder struct {
	opts Options
}

// NewBuilder returns a Builder; zero thresholds fall back to AA.
func NewBuilder(opts Options) *Builder {
	if opts.Thresholds.Normal <= 0 {
		opts.Thresholds.Normal = contrast.AA.Normal
	}
	if opts.Thresholds.Large <= 0 {
		opts.Thresholds.Large = contrast.AA.Large
	}
	return &Builder{opts: opts}
}

// TextCandidates returns the primary text variable (or the fallback) followed by the extras.
func (b *Builder) TextCandidates(vars Lookup) []Swatch {
	candidates := make([]Swatch, 0, 1+len(b.opts.ExtraText))
	if hex, ok := vars.Lookup(b.opts.TextPrimaryVar); ok {
		candidates = append(candidates, Swatch{Name: b.opts.TextPrimaryVar, Hex: hex})
	} else {
		candidates = append(candidates, b.opts.Fallback)
	}
	return append(candidates, b.opts.ExtraText...)
}

// Backgrounds returns the configured backgrounds that vars declares, in order.
func (b *Builder) Backgrounds(vars Lookup) []Swatch {
	present := make([]Swatch, 0, len(b.opts.Backgrounds))
	for _, name := range b.opts.Backgrounds {
		hex, ok := vars.Lookup(name)
		if !ok {
			continue
		}
		present = append(present, Swatch{Name: name, Hex: hex})
	}
	return present
}

// Build evaluates every present background against every text candidate.
func (b *Builder) Build(vars Lookup) (*Report, error) {
	return b.Evaluate("Contrast check report (WCAG ratios)", b.TextCandidates(vars), b.Backgrounds(vars))
}

// Evaluate checks each text swatch on each background, backgrounds outermost.
func (b *Builder) Evaluate(title string, texts, backgrounds []Swatch) (*Report, error) {
	logger := logging.Component("report")
	rep := &Report{
		Title:      title,
		Thresholds: b.opts.Thresholds,
		Results:    make([]Result, 0, len(texts)*len(backgrounds)),
	}

	for _, bg := range backgrounds {
		bgColor, err := contrast.ParseHex(bg.Hex)
		if err != nil {
			return nil, fmt.Errorf("background %s: %w", bg.Name, err)
		}
		for _, text := range texts {
			textColor, err := contrast.ParseHex(text.Hex)
			if err != nil {
				return nil, fmt.Errorf("text color %s: %w", text.Name, err)
			}

			ratio := contrast.Ratio(textColor, bgColor)
			normal, large := b.opts.Thresholds.Evaluate(ratio)
			rep.Results = append(rep.Results, Result{
				TextName:       text.Name,
				TextHex:        text.Hex,
				BackgroundName: bg.Name,
				BackgroundHex:  bg.Hex,
				Ratio:          ratio,
				NormalPass:     normal,
				LargePass:      large,
			})
		}
	}

	logger.Debug().
		Int("pairs", len(rep.Results)).
		Int("failures", len(rep.Failures())).
		Msg("contrast pairs evaluated")

	return rep, nil
}
