package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	balanceview "github.com/bnema/near-pool-cli/internal/adapters/render/balance"
	"github.com/bnema/near-pool-cli/internal/application"
	"github.com/bnema/near-pool-cli/internal/domain"
)

type balanceFieldOutput struct {
	Display string `json:"display"`
	Yocto   string `json:"yocto,omitempty"`
}

type balanceOutput struct {
	Network   string             `json:"network"`
	Pool      string             `json:"pool"`
	AccountID string             `json:"account_id"`
	Available balanceFieldOutput `json:"available"`
	Staked    balanceFieldOutput `json:"staked"`
	Rewards   balanceFieldOutput `json:"rewards"`
}

func toBalanceFieldOutput(field domain.BalanceField) balanceFieldOutput {
	out := balanceFieldOutput{Display: balanceview.FormatField(field)}
	if field.Known() {
		out.Yocto = field.Amount.String()
	}
	return out
}

func writeView(cmd *cobra.Command, app *app, view application.ViewSnapshot) error {
	rendered, err := balanceview.Render(view, balanceview.RenderOptions{Pool: app.cfg.Pool, HideStatus: true})
	if err != nil {
		return fmt.Errorf("render balances: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func writeBalancesJSON(cmd *cobra.Command, app *app, view application.ViewSnapshot) error {
	out := balanceOutput{
		Network:   string(app.cfg.Pool.Network),
		Pool:      app.cfg.Pool.ID.String(),
		AccountID: view.AccountID.String(),
		Available: toBalanceFieldOutput(view.Balances.Available),
		Staked:    toBalanceFieldOutput(view.Balances.Staked),
		Rewards:   toBalanceFieldOutput(view.Balances.Rewards),
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// writeStatus prints the last status message the controller posted.
func writeStatus(cmd *cobra.Command, view application.ViewSnapshot) {
	if view.Status.Text == "" {
		return
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), view.Status.Text)
}
