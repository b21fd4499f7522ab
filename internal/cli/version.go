package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "lifeos %s\n", a.build.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", a.build.Commit)
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", a.build.Date)
		},
	}
}
