package cli

import (
	"github.com/alexanderramin/drivetime/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Activities service.ActivityService
	Settings   service.SettingsService
	Compliance service.ComplianceService

	// IsInteractive reports whether stdin is a terminal, gating the
	// interactive entry forms.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "drivetime" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "drivetime",
		Short: "Driver activity log and driving-time compliance checker",
	}

	root.AddCommand(
		newActivityCmd(app),
		newCheckCmd(app),
		newStatusCmd(app),
		newWatchCmd(app),
		newSettingsCmd(app),
	)

	return root
}
