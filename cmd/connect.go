package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/near-pool-cli/internal/adapters/wallet/browser"
	"github.com/bnema/near-pool-cli/internal/domain"
)

func newConnectCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "connect",
		Short: "Connect a wallet account",
	}

	cmd.AddCommand(newConnectBrowserCmd(app), newConnectImportCmd(app))

	return cmd
}

func newConnectBrowserCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "browser",
		Short: "Add an access key through the web wallet login page",
		RunE: func(cmd *cobra.Command, _ []string) error {
			flow := browser.Flow{
				WalletURL:  app.cfg.WalletURL,
				ListenAddr: app.cfg.Login.Listen,
				Timeout:    app.cfg.Login.Timeout,
				Chain:      app.chain,
				Announce: func(loginURL string) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Open this URL to connect your NEAR wallet:\n%s\n", loginURL)
				},
			}

			credential, err := flow.Run(cmd.Context())
			if err != nil {
				return fmt.Errorf("wallet login: %w", err)
			}

			return connect(cmd, app, credential)
		},
	}
}

func newConnectImportCmd(app *app) *cobra.Command {
	var accountID string
	var privateKey string
	var credentialsFile string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Connect with an existing full-access key",
		RunE: func(cmd *cobra.Command, _ []string) error {
			credential := domain.Credential{PrivateKey: privateKey}
			if credentialsFile != "" {
				loaded, err := readCredentialsFile(credentialsFile)
				if err != nil {
					return err
				}
				credential = loaded
			}
			if accountID != "" {
				credential.AccountID = domain.AccountID(accountID)
			}
			if credential.AccountID == "" {
				return errors.New("account ID missing: pass --account")
			}
			credential.AccountID = domain.NormalizeAccountID(string(credential.AccountID))

			return connect(cmd, app, credential)
		},
	}

	cmd.Flags().StringVar(&accountID, "account", "", "Account ID, e.g. alice.near")
	cmd.Flags().StringVar(&privateKey, "private-key", "", "Private key as ed25519:<base58>")
	cmd.Flags().StringVar(&credentialsFile, "credentials", "", "near-cli credentials file (~/.near-credentials/<network>/<account>.json)")
	cmd.MarkFlagsOneRequired("private-key", "credentials")
	cmd.MarkFlagsMutuallyExclusive("private-key", "credentials")

	return cmd
}

func readCredentialsFile(path string) (domain.Credential, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Credential{}, fmt.Errorf("read credentials file: %w", err)
	}

	var credential domain.Credential
	if err := json.Unmarshal(data, &credential); err != nil {
		return domain.Credential{}, fmt.Errorf("decode credentials file %s: %w", path, err)
	}

	return credential, nil
}

func connect(cmd *cobra.Command, app *app, credential domain.Credential) error {
	controller, view, err := app.startController(cmd.Context())
	if err != nil {
		return err
	}
	defer controller.Close()

	if err := controller.Connect(cmd.Context(), credential); err != nil {
		return fmt.Errorf("connect wallet: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Connected %s on %s\n", credential.AccountID, app.cfg.Pool.Network)
	return writeView(cmd, app, view.Snapshot())
}

func newDisconnectCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "disconnect",
		Short: "Forget the connected account and its access key",
		RunE: func(cmd *cobra.Command, _ []string) error {
			controller, view, err := app.startController(cmd.Context())
			if err != nil {
				return err
			}
			defer controller.Close()

			if err := controller.Disconnect(cmd.Context()); err != nil {
				return fmt.Errorf("disconnect: %w", err)
			}

			writeStatus(cmd, view.Snapshot())
			return nil
		},
	}
}
