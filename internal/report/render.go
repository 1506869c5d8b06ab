package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/opencode-ai/contrast/internal/styles"
)

// Render writes the line-oriented report, the failure summary and the completion marker.
func Render(w io.Writer, rep *Report, st styles.Styles) error {
	out := bufio.NewWriter(w)
	th := rep.Thresholds

	fmt.Fprintln(out)
	fmt.Fprintln(out, st.Title.Render(rep.Title))
	fmt.Fprintf(out, "Thresholds: normal >= %.1f, large >= %.1f\n\n", th.Normal, th.Large)

	for _, res := range rep.Results {
		fmt.Fprintln(out, FormatResult(res, st))
	}

	fails := rep.Failures()
	fmt.Fprintln(out)
	fmt.Fprintln(out, st.Title.Render("Summary:"))
	if len(fails) == 0 {
		fmt.Fprintln(out, st.Success.Render(fmt.Sprintf("All combinations pass normal text contrast >= %g:1", th.Normal)))
	} else {
		fmt.Fprintln(out, st.Warning.Render(fmt.Sprintf("%d combinations fail normal contrast (%g). Review the following:", len(fails), th.Normal)))
		for _, res := range fails {
			fmt.Fprintln(out, st.Muted.Render(fmt.Sprintf(" - %s on %s: %.2f", res.TextName, res.BackgroundName, res.Ratio)))
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Done.")
	return out.Flush()
}

// FormatResult renders one pair as "text (#hex) on bg (#hex): ratio -> normal: X; large: Y".
func FormatResult(res Result, st styles.Styles) string {
	return fmt.Sprintf("%s (%s) on %s (%s): %.2f -> normal: %s; large: %s",
		res.TextName, res.TextHex,
		res.BackgroundName, res.BackgroundHex,
		res.Ratio,
		st.Verdict(res.NormalPass),
		st.Verdict(res.LargePass),
	)
}
