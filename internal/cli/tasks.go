package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tgienger/lifeos/internal/api"
	"github.com/tgienger/lifeos/internal/models"
)

func newAddCmd(a *app) *cobra.Command {
	var (
		title       string
		description string
		priority    string
		domain      string
		deadline    string
		backlog     bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a task",
		Example: `  lifeos add --title "Submit report" --domain work --deadline 2026-01-30 --priority high
  lifeos add --title "Learn Rust" --domain coding --backlog`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := models.Priority(strings.ToLower(priority))
			in := api.TaskInput{
				Title:     api.String(strings.TrimSpace(title)),
				Priority:  &p,
				Domain:    api.String(strings.ToLower(domain)),
				IsBacklog: api.Bool(backlog),
			}
			if description != "" {
				in.Description = api.String(description)
			}
			if deadline != "" {
				in.Deadline = api.String(deadline)
			}
			if err := api.ValidateCreate(in, a.cfg.Domains); err != nil {
				return err
			}

			task, err := a.tasks.CreateTask(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s %q\n", task.ID, task.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "task title (required)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "task description")
	cmd.Flags().StringVarP(&priority, "priority", "p", string(models.PriorityMedium), "priority: low, medium, high")
	cmd.Flags().StringVar(&domain, "domain", "personal", "domain")
	cmd.Flags().StringVar(&deadline, "deadline", "", "deadline (YYYY-MM-DD), required unless --backlog")
	cmd.Flags().BoolVarP(&backlog, "backlog", "b", false, "put the task in the backlog")
	return cmd
}

func newToggleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Mark a task done, or open again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := a.tasks.ToggleTask(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			state := "open"
			if task.Completed {
				state = "done"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %q is %s\n", shortID(task.ID), task.Title, state)
			return nil
		},
	}
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.tasks.DeleteTask(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}
}
