package cmd

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	balanceview "github.com/bnema/near-pool-cli/internal/adapters/render/balance"
	"github.com/bnema/near-pool-cli/internal/adapters/render/dashboard"
	"github.com/bnema/near-pool-cli/internal/application"
)

func newDashboardCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Interactive staking dashboard",
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Log lines would tear the alternate screen.
			app.logger = slog.New(slog.DiscardHandler)

			view := application.NewViewState()
			notifier := dashboard.NewNotifier()
			controller, err := app.newController(application.Presenters{view, notifier})
			if err != nil {
				return err
			}
			defer controller.Close()

			return dashboard.Run(cmd.Context(), controller, view, notifier,
				balanceview.RenderOptions{Pool: app.cfg.Pool},
				tea.WithAltScreen(),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
		},
	}
}
