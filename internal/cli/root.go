package cli

import (
	"github.com/alexanderramin/liftoff/internal/catalog"
	"github.com/alexanderramin/liftoff/internal/service"
	"github.com/alexanderramin/liftoff/internal/session"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// App holds references to all services used by CLI commands and the TUI.
type App struct {
	Workouts    service.WorkoutService
	Credentials service.CredentialService
	Catalog     *catalog.Catalog
	Generator   session.Generator

	// NewSession starts a workout session in the energy phase.
	NewSession func() *session.Controller

	// IsInteractive reports whether stdin is a terminal. Nil means yes.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive == nil || a.IsInteractive()
}

// NewRootCmd creates the top-level "liftoff" command and registers all
// subcommands against the provided App. Without a subcommand it runs the
// workout TUI.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "liftoff",
		Short:         "Dumbbell workout tracker with energy-based and AI workouts",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return cmd.Help()
			}
			return runTUI(app)
		},
	}

	root.AddCommand(
		newHistoryCmd(app),
		newShowCmd(app),
		newGenerateCmd(app),
		newCatalogCmd(app),
		newKeyCmd(app),
	)

	return root
}

func runTUI(app *App) error {
	p := tea.NewProgram(newAppModel(app), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
