package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tgienger/lifeos/internal/models"
	"github.com/tgienger/lifeos/internal/query"
)

type agendaReport struct {
	Upcoming []models.Task `json:"upcoming" yaml:"upcoming"`
	Backlog  []models.Task `json:"backlog" yaml:"backlog"`
}

func newAgendaCmd(a *app) *cobra.Command {
	var (
		limit  int
		output string
	)

	cmd := &cobra.Command{
		Use:   "agenda",
		Short: "Show the dashboard widgets: upcoming deadlines and newest backlog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseFormat(output)
			if err != nil {
				return err
			}

			tasks, err := a.tasks.ListTasks(cmd.Context())
			if err != nil {
				return err
			}

			ref := a.cfg.Now()
			report := agendaReport{
				Upcoming: query.Upcoming(tasks, ref, limit),
				Backlog:  query.BacklogPreview(tasks, limit),
			}

			return render(cmd.OutOrStdout(), f, report, func(w io.Writer) error {
				section(w, fmt.Sprintf("Upcoming (%d days)", query.UpcomingDays), report.Upcoming, ref)
				fmt.Fprintln(w)
				section(w, "Backlog", report.Backlog, ref)
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", query.WidgetLimit, "maximum rows per widget (0 for all)")
	addOutputFlag(cmd, &output)
	return cmd
}
