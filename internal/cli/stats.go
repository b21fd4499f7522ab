package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/tgienger/lifeos/internal/models"
	"github.com/tgienger/lifeos/internal/query"
	"github.com/tgienger/lifeos/internal/ui/styles"
)

type statsReport struct {
	Totals  query.Totals        `json:"totals" yaml:"totals"`
	Domains []models.DomainStat `json:"domains" yaml:"domains"`
}

func newStatsCmd(a *app) *cobra.Command {
	var (
		all    bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show open tasks per domain",
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

			report := statsReport{
				Totals:  query.Summarize(tasks, a.cfg.Now()),
				Domains: query.DomainStats(tasks, a.cfg.Domains),
			}
			if !all {
				report.Domains = query.NonZero(report.Domains)
			}

			return render(cmd.OutOrStdout(), f, report, func(w io.Writer) error {
				t := newTable("Domain", "Open")
				for _, s := range report.Domains {
					t.Row(
						lipgloss.NewStyle().Foreground(styles.DomainColor(s.Domain)).Render(s.Domain),
						strconv.Itoa(s.Count),
					)
				}
				fmt.Fprintln(w, t.String())

				tot := report.Totals
				fmt.Fprintf(w, "%d tasks: %d open, %d done, %d backlog, %d overdue, %d due today\n",
					tot.Total, tot.Open, tot.Completed, tot.Backlog, tot.Overdue, tot.DueToday)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "include domains without open tasks")
	addOutputFlag(cmd, &output)
	return cmd
}
