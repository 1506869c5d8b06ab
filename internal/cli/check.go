package cli

import (
	"io"

	"github.com/opencode-ai/contrast/internal/report"
)

func (rt *runtime) runCheck(out io.Writer) error {
	vars, err := rt.extract()
	if err != nil {
		return err
	}

	rep, err := rt.builder().Build(vars)
	if err != nil {
		return err
	}

	rt.logger.Info().
		Int("variables", vars.Len()).
		Int("pairs", len(rep.Results)).
		Int("failures", len(rep.Failures())).
		Msg("contrast check complete")

	return report.Render(out, rep, rt.styles)
}
