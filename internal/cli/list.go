package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tgienger/lifeos/internal/query"
)

func newListCmd(a *app) *cobra.Command {
	var (
		filters filterFlags
		view    string
		output  string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks matching a filter",
		Long: `List tasks split into deadline tasks and backlog.

Filters start from the named --view when given, otherwise from the
defaults, and any filter flag overrides the corresponding setting.`,
		Example: `  lifeos list --completion unfinished --window next-week
  lifeos list --domain work,coding --sort priority -o json
  lifeos list --view focus --search report`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseFormat(output)
			if err != nil {
				return err
			}

			base := query.DefaultSpec()
			if view != "" {
				store, err := a.openStore()
				if err != nil {
					return err
				}
				defer store.Close()

				v, err := store.GetViewByName(view)
				if err != nil {
					return err
				}
				base = v.Spec
			}

			spec, err := filters.apply(cmd, base, a.cfg.Domains)
			if err != nil {
				return err
			}

			tasks, err := a.tasks.ListTasks(cmd.Context())
			if err != nil {
				return err
			}

			ref := a.cfg.Now()
			res := query.Apply(tasks, spec, ref)

			return render(cmd.OutOrStdout(), f, res, func(w io.Writer) error {
				section(w, "Deadline Tasks", res.Scheduled, ref)
				fmt.Fprintln(w)
				section(w, "Backlog", res.Backlog, ref)
				fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("%d of %d tasks shown", res.Len(), len(tasks))))
				return nil
			})
		},
	}

	filters.register(cmd)
	cmd.Flags().StringVar(&view, "view", "", "start from a saved view")
	addOutputFlag(cmd, &output)
	return cmd
}
