// Package cli provides the contrast command tree.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/opencode-ai/contrast/internal/config"
	"github.com/opencode-ai/contrast/internal/contrast"
	"github.com/opencode-ai/contrast/internal/cssvars"
	"github.com/opencode-ai/contrast/internal/logging"
	"github.com/opencode-ai/contrast/internal/report"
	"github.com/opencode-ai/contrast/internal/styles"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const noVariablesMessage = "No CSS variable files found or no variables extracted."

// runtime is the per-invocation state built before any command runs.
type runtime struct {
	cfgFile string
	dir     string

	cfg    *config.Config
	logger zerolog.Logger
	styles styles.Styles
}

// Execute runs the command line and returns the process exit status.
func Execute() int {
	return Run(os.Args[1:], os.Stdout, os.Stderr)
}

// Run executes args against a fresh command tree.
func Run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, diagnostic(err))
		return 1
	}
	return 0
}

func diagnostic(err error) string {
	if errors.Is(err, cssvars.ErrNoVariablesFound) {
		return noVariablesMessage
	}
	return fmt.Sprintf("Error: %v", err)
}

func newRootCmd() *cobra.Command {
	rt := &runtime{}

	cmd := &cobra.Command{
		Use:   "contrast",
		Short: "Check WCAG contrast of stylesheet color variables",
		Long: `Extracts --name: #hex color variables from the project stylesheets and
reports the WCAG AA contrast of the text colors against each background
variable (4.5:1 normal text, 3:1 large text).

Stylesheets are read from assets/css/_variables.css and css/_variables.css;
when both declare a variable the later file wins.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rt.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.runCheck(cmd.OutOrStdout())
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&rt.cfgFile, "config", "", "config file (default: ./contrast.yaml or ~/.config/contrast/contrast.yaml)")
	flags.StringVar(&rt.dir, "dir", "", "directory the stylesheet paths are relative to (default: working directory)")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("log-format", "", "log format: console or json")
	flags.String("color", "", "colorize verdicts: auto, always or never")
	flags.String("theme", "", "palette used for colored output")

	cmd.AddCommand(newVarsCmd(rt))
	cmd.AddCommand(newRatioCmd(rt))
	cmd.AddCommand(newThemesCmd(rt))

	return cmd
}

var flagKeys = map[string]string{
	"log-level":  "logging.level",
	"log-format": "logging.format",
	"color":      "output.color",
	"theme":      "output.theme",
}

func (rt *runtime) setup(cmd *cobra.Command) error {
	v := config.New(rt.cfgFile)
	for flag, key := range flagKeys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	rt.cfg = cfg

	logger, err := logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	rt.logger = logger.With().Str("component", "cli").Logger()

	theme, ok := styles.Lookup(cfg.Output.Theme)
	if !ok {
		return fmt.Errorf("unknown theme %q (available: %v)", cfg.Output.Theme, styles.ThemeNames())
	}
	renderer, err := styles.NewRenderer(cmd.OutOrStdout(), cfg.Output.Color)
	if err != nil {
		return err
	}
	rt.styles = styles.BuildStyles(renderer, theme)

	rt.logger.Debug().
		Str("config", v.ConfigFileUsed()).
		Str("dir", rt.dir).
		Strs("paths", cfg.Paths).
		Msg("configuration loaded")
	return nil
}

func (rt *runtime) builder() *report.Builder {
	cfg := rt.cfg
	extra := make([]report.Swatch, 0, len(cfg.Text.Extra))
	for _, c := range cfg.Text.Extra {
		extra = append(extra, report.Swatch{Name: c.Name, Hex: c.Hex})
	}

	return report.NewBuilder(report.Options{
		TextPrimaryVar: cfg.Text.PrimaryVar,
		Fallback:       report.Swatch{Name: cfg.Text.FallbackName, Hex: cfg.Text.FallbackHex},
		ExtraText:      extra,
		Backgrounds:    cfg.Backgrounds,
		Thresholds: contrast.Thresholds{
			Normal: cfg.Thresholds.Normal,
			Large:  cfg.Thresholds.Large,
		},
	})
}

// extract reads the configured stylesheets; an empty result is ErrNoVariablesFound.
func (rt *runtime) extract() (*cssvars.Set, error) {
	paths := cssvars.ResolvePaths(rt.dir, rt.cfg.Paths)
	set, err := cssvars.Extract(paths)
	if err != nil {
		return nil, err
	}
	if set.Len() == 0 {
		rt.logger.Debug().Strs("paths", paths).Msg("no color variables extracted")
		return nil, cssvars.ErrNoVariablesFound
	}
	return set, nil
}
