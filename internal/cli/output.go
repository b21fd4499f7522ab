package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tgienger/lifeos/internal/models"
	"github.com/tgienger/lifeos/internal/query"
	"github.com/tgienger/lifeos/internal/ui/styles"
)

type format string

const (
	formatTable format = "table"
	formatJSON  format = "json"
	formatYAML  format = "yaml"
)

func parseFormat(s string) (format, error) {
	switch f := format(strings.ToLower(strings.TrimSpace(s))); f {
	case formatTable, formatJSON, formatYAML:
		return f, nil
	case "":
		return formatTable, nil
	}
	return "", fmt.Errorf("unknown output format %q (want table, json or yaml)", s)
}

func addOutputFlag(cmd *cobra.Command, p *string) {
	cmd.Flags().StringVarP(p, "output", "o", "table", "output format: table, json, yaml")
}

// render writes v as JSON or YAML, or calls human for the table format
func render(w io.Writer, f format, v any, human func(io.Writer) error) error {
	switch f {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return human(w)
	}
}

var (
	headerStyle = lipgloss.NewStyle().Foreground(styles.Current.Primary).Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Foreground(styles.Current.Secondary).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(styles.Current.ForegroundDim)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(styles.Current.Border)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

// taskTable renders tasks with deadline labels relative to ref
func taskTable(tasks []models.Task, ref time.Time) string {
	t := newTable("", "ID", "Title", "Domain", "Priority", "Deadline")
	for _, task := range tasks {
		deadline := ""
		if label, u, ok := query.DeadlineLabel(task, ref); ok {
			deadline = styles.DeadlineStyle(u).Render(label)
		} else if task.HasDeadline() {
			deadline = query.FormatDate(task.Deadline)
		}
		t.Row(
			checkbox(task.Completed),
			shortID(task.ID),
			task.Title,
			lipgloss.NewStyle().Foreground(styles.DomainColor(task.Domain)).Render(task.Domain),
			lipgloss.NewStyle().Foreground(styles.PriorityColor(task.Priority)).Render(string(task.Priority)),
			deadline,
		)
	}
	return t.String()
}

// section writes a titled task table, or a placeholder when empty
func section(w io.Writer, title string, tasks []models.Task, ref time.Time) {
	fmt.Fprintf(w, "%s %s\n", titleStyle.Render(title), mutedStyle.Render(fmt.Sprintf("(%d)", len(tasks))))
	if len(tasks) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("  no tasks"))
		return
	}
	fmt.Fprintln(w, taskTable(tasks, ref))
}
