package cli

import (
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tgienger/lifeos/internal/ui"
)

// runTUI opens the interactive dashboard
func runTUI(cmd *cobra.Command, a *app) error {
	// Anything logged while the alt screen is up would corrupt it
	if a.cfg.LogFile != "" {
		f, err := tea.LogToFile(a.cfg.LogFile, "lifeos")
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	store, err := a.openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	p := tea.NewProgram(ui.NewApp(a.cfg, store, a.tasks),
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running application: %w", err)
	}
	return nil
}
