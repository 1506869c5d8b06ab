package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/opencode-ai/contrast/internal/cssvars"
	"github.com/spf13/cobra"
)

const tablePadding = 2

func newVarsCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "vars",
		Short: "List the color variables extracted from the stylesheets",
		Long: `Lists every --name: #hex declaration that survived merging, with the
stylesheet that supplied the winning value.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := rt.extract()
			if err != nil {
				return err
			}

			return writeVarsTable(cmd.OutOrStdout(), set.Variables())
		},
	}
}

func writeVarsTable(out io.Writer, vars []cssvars.Variable) error {
	writer := tabwriter.NewWriter(out, 0, 0, tablePadding, ' ', 0)
	fmt.Fprintln(writer, "NAME\tVALUE\tSOURCE")
	for _, v := range vars {
		fmt.Fprintf(writer, "%s\t%s\t%s\n", v.Name, v.Value, v.Source)
	}
	return writer.Flush()
}
