package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/bnema/near-pool-cli/internal/application"
	"github.com/bnema/near-pool-cli/internal/domain"
)

var errAborted = errors.New("aborted")

// askOneFunc is replaced in tests.
var askOneFunc = survey.AskOne

type txOptions struct {
	yes    bool
	noWait bool
}

func newStakeCmd(app *app) *cobra.Command {
	var opts txOptions

	cmd := &cobra.Command{
		Use:   "stake <amount>",
		Short: "Deposit and stake NEAR with the pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransaction(cmd, app, domain.StakeIntent(args[0]), opts)
		},
	}
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func newUnstakeCmd(app *app) *cobra.Command {
	var opts txOptions

	cmd := &cobra.Command{
		Use:   "unstake <amount>",
		Short: "Unstake NEAR; funds unlock after 2-3 epochs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransaction(cmd, app, domain.UnstakeIntent(args[0]), opts)
		},
	}
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func newWithdrawCmd(app *app) *cobra.Command {
	var opts txOptions

	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Withdraw all unstaked NEAR that is unlocked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTransaction(cmd, app, domain.WithdrawIntent(), opts)
		},
	}
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Skip the confirmation prompt")
	cmd.Flags().BoolVar(&opts.noWait, "no-wait", false, "Do not wait for the balance refresh after the withdrawal")

	return cmd
}

func runTransaction(cmd *cobra.Command, app *app, intent domain.TransactionIntent, opts txOptions) error {
	controller, view, err := app.startController(cmd.Context())
	if err != nil {
		return err
	}
	defer controller.Close()

	session := controller.Session()
	if session.Connected() && !opts.yes {
		confirmed, err := confirm(confirmMessage(app, session.AccountID, intent))
		if err != nil {
			return err
		}
		if !confirmed {
			return errAborted
		}
	}

	var outcome domain.TxOutcome
	err = runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), submitLabel(app, intent), func(ctx context.Context) error {
		var err error
		outcome, err = submit(ctx, controller, intent)
		return err
	})
	if err != nil {
		return err
	}
	if !opts.noWait {
		controller.Wait()
	}

	snapshot := view.Snapshot()
	writeStatus(cmd, snapshot)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Transaction: %s\n", outcome.Hash)

	return writeView(cmd, app, snapshot)
}

func submit(ctx context.Context, controller *application.Controller, intent domain.TransactionIntent) (domain.TxOutcome, error) {
	switch intent.Kind {
	case domain.IntentStake:
		return controller.Stake(ctx, intent.Amount)
	case domain.IntentUnstake:
		return controller.Unstake(ctx, intent.Amount)
	default:
		return controller.Withdraw(ctx)
	}
}

func confirmMessage(app *app, accountID domain.AccountID, intent domain.TransactionIntent) string {
	pool := app.cfg.Pool.ID
	switch intent.Kind {
	case domain.IntentStake:
		return fmt.Sprintf("Stake %s NEAR from %s with %s?", intent.Amount, accountID, pool)
	case domain.IntentUnstake:
		return fmt.Sprintf("Unstake %s NEAR for %s from %s?", intent.Amount, accountID, pool)
	default:
		return fmt.Sprintf("Withdraw all unlocked NEAR for %s from %s?", accountID, pool)
	}
}

func confirm(message string) (bool, error) {
	confirmed := false
	if err := askOneFunc(&survey.Confirm{Message: message, Default: false}, &confirmed); err != nil {
		return false, fmt.Errorf("confirm: %w", err)
	}
	return confirmed, nil
}
