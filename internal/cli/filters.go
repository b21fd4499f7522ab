package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tgienger/lifeos/internal/query"
)

// filterFlags are the filter options shared by list and views save
type filterFlags struct {
	completion string
	domains    []string
	window     string
	sort       string
	search     string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.completion, "completion", "all", "completion filter: all, finished, unfinished")
	cmd.Flags().StringSliceVar(&f.domains, "domain", nil, "only these domains (repeatable or comma separated)")
	cmd.Flags().StringVar(&f.window, "window", "all", "deadline window: all, today, tomorrow, next-week, next-month")
	cmd.Flags().StringVar(&f.sort, "sort", "default", "sort mode: default, priority")
	cmd.Flags().StringVar(&f.search, "search", "", "case-insensitive text in title or description")
}

// apply overlays the flags the user actually set on base
func (f *filterFlags) apply(cmd *cobra.Command, base query.Spec, known []string) (query.Spec, error) {
	spec := base
	var err error

	if cmd.Flags().Changed("completion") {
		if spec.Completion, err = query.ParseCompletion(f.completion); err != nil {
			return spec, err
		}
	}
	if cmd.Flags().Changed("window") {
		if spec.Window, err = query.ParseWindow(f.window); err != nil {
			return spec, err
		}
	}
	if cmd.Flags().Changed("sort") {
		if spec.Sort, err = query.ParseSortMode(f.sort); err != nil {
			return spec, err
		}
	}
	if cmd.Flags().Changed("search") {
		spec.Search = f.search
	}
	if cmd.Flags().Changed("domain") {
		spec.Domains = nil
		for _, d := range f.domains {
			d = strings.ToLower(strings.TrimSpace(d))
			if d == "" || spec.HasDomain(d) {
				continue
			}
			if !slices.Contains(known, d) {
				return spec, fmt.Errorf("unknown domain %q (known: %s)", d, strings.Join(known, ", "))
			}
			spec.Domains = append(spec.Domains, d)
		}
	}
	return spec, nil
}
