package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/near-pool-cli/internal/application"
	"github.com/bnema/near-pool-cli/internal/domain"
)

func newBalanceCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show available, staked and reward balances",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				controller *application.Controller
				view       *application.ViewState
			)
			err := runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), fetchLabel(app), func(ctx context.Context) error {
				var err error
				controller, view, err = app.startController(ctx)
				return err
			})
			if err != nil {
				return err
			}
			defer controller.Close()

			snapshot := view.Snapshot()
			if !snapshot.Connected {
				return fmt.Errorf("%w: run `np connect` first", domain.ErrWalletNotConnected)
			}

			if asJSON {
				return writeBalancesJSON(cmd, app, snapshot)
			}
			return writeView(cmd, app, snapshot)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}
