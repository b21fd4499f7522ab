package cli

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/tgienger/lifeos/internal/api"
	"github.com/tgienger/lifeos/internal/config"
	"github.com/tgienger/lifeos/internal/db"
)

// BuildInfo is set through ldflags at build time
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// app carries the state shared by all commands of one invocation
type app struct {
	build      BuildInfo
	configFile string
	today      string

	cfg        *config.Config
	tasks      api.TaskService
	newService func(*config.Config) api.TaskService
}

func newClient(cfg *config.Config) api.TaskService {
	return api.NewClient(cfg.APIURL, cfg.Timeout)
}

// load reads the configuration and connects the task service
func (a *app) load() error {
	cfg, err := config.Load(a.configFile, ".env")
	if err != nil {
		return err
	}
	if a.today != "" {
		cfg.Today = a.today
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.cfg = cfg
	a.tasks = a.newService(cfg)
	return nil
}

func (a *app) openStore() (*db.DB, error) {
	store, err := db.New(a.cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open preferences: %w", err)
	}
	return store, nil
}

func newRootCmd(build BuildInfo, newService func(*config.Config) api.TaskService) *cobra.Command {
	a := &app{build: build, newService: newService}

	rootCmd := &cobra.Command{
		Use:   "lifeos",
		Short: "lifeos - a terminal dashboard for your tasks",
		Long: `lifeos shows the tasks stored in your task backend as a dashboard.

Run without a command to open the interactive interface, or use the
commands below to query and edit tasks from scripts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return a.load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, a)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (default $XDG_CONFIG_HOME/lifeos/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&a.today, "today", "", "evaluate deadlines against this date (YYYY-MM-DD)")

	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newStatsCmd(a))
	rootCmd.AddCommand(newAgendaCmd(a))
	rootCmd.AddCommand(newAddCmd(a))
	rootCmd.AddCommand(newToggleCmd(a))
	rootCmd.AddCommand(newDeleteCmd(a))
	rootCmd.AddCommand(newViewsCmd(a))
	rootCmd.AddCommand(newVersionCmd(a))

	rootCmd.Version = build.Version
	return rootCmd
}

// Execute runs the root command
func Execute(build BuildInfo) error {
	log.SetFlags(0)
	log.SetPrefix("lifeos: ")

	if err := newRootCmd(build, newClient).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}
