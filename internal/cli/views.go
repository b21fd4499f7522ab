package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tgienger/lifeos/internal/db"
	"github.com/tgienger/lifeos/internal/query"
)

func newViewsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "views",
		Short: "Manage saved filter views",
	}

	cmd.AddCommand(newViewsListCmd(a))
	cmd.AddCommand(newViewsSaveCmd(a))
	cmd.AddCommand(newViewsDeleteCmd(a))
	return cmd
}

// describeSpec summarizes the non-default parts of a filter
func describeSpec(s query.Spec) string {
	if s.IsDefault() {
		return "everything"
	}
	var parts []string
	if s.Completion != query.CompletionAll {
		parts = append(parts, s.Completion.Label())
	}
	if len(s.Domains) > 0 {
		parts = append(parts, strings.Join(s.Domains, "+"))
	}
	if s.Window != query.WindowAll {
		parts = append(parts, s.Window.Label())
	}
	if s.Search != "" {
		parts = append(parts, fmt.Sprintf("%q", s.Search))
	}
	if s.Sort != query.SortDefault {
		parts = append(parts, "by "+s.Sort.Label())
	}
	return strings.Join(parts, ", ")
}

func newViewsListCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved views",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseFormat(output)
			if err != nil {
				return err
			}

			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			views, err := store.ListViews()
			if err != nil {
				return err
			}
			if views == nil {
				views = []db.SavedView{}
			}

			return render(cmd.OutOrStdout(), f, views, func(w io.Writer) error {
				if len(views) == 0 {
					fmt.Fprintln(w, "No saved views. Create one with: lifeos views save <name> [filters]")
					return nil
				}
				t := newTable("Name", "Filter")
				for _, v := range views {
					t.Row(v.Name, describeSpec(v.Spec))
				}
				fmt.Fprintln(w, t.String())
				return nil
			})
		},
	}

	addOutputFlag(cmd, &output)
	return cmd
}

func newViewsSaveCmd(a *app) *cobra.Command {
	var filters filterFlags

	cmd := &cobra.Command{
		Use:   "save <name>",
		Short: "Save a filter under a name, replacing any view with that name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := filters.apply(cmd, query.DefaultSpec(), a.cfg.Domains)
			if err != nil {
				return err
			}

			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			v, err := store.SaveView(args[0], spec)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved view %q: %s\n", v.Name, describeSpec(v.Spec))
			return nil
		},
	}

	filters.register(cmd)
	return cmd
}

func newViewsDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <name>",
		Aliases: []string{"rm"},
		Short:   "Delete a saved view",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.DeleteView(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted view %q\n", args[0])
			return nil
		},
	}
}
