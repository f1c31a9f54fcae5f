package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

type accountOutput struct {
	Network   string `json:"network"`
	Pool      string `json:"pool"`
	Connected bool   `json:"connected"`
	AccountID string `json:"account_id,omitempty"`
	PublicKey string `json:"public_key,omitempty"`
}

func newAccountCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "account",
		Short: "Show the connected account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			accounts := app.newAccountStore()
			if err := accounts.Load(cmd.Context()); err != nil {
				return fmt.Errorf("load session: %w", err)
			}

			out := accountOutput{
				Network: string(app.cfg.Pool.Network),
				Pool:    app.cfg.Pool.ID.String(),
			}
			if ids := accounts.Accounts(); len(ids) > 0 {
				out.Connected = true
				out.AccountID = ids[0].String()
				credential, err := app.wallet.Credential(cmd.Context(), ids[0])
				if err != nil {
					return err
				}
				out.PublicKey = credential.PublicKey
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			if !out.Connected {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "Wallet not connected (%s)\n", out.Network)
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", out.AccountID, out.Network, out.PublicKey)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}
