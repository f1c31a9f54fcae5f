package cmd

import "github.com/spf13/cobra"

const annotationSkipWire = "np/skip-wire"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var configFile string
	app := &app{}

	rootCmd := &cobra.Command{
		Use:   "np",
		Short: "NEAR pool CLI (np): stake, unstake and withdraw with a delegation pool",
		Long: "np connects a NEAR wallet account, shows its available, staked and reward balances " +
			"with a delegation pool and submits deposit_and_stake, unstake and withdraw_all transactions.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations[annotationSkipWire] == "true" {
				return nil
			}
			wired, err := wireApp(cmd, configFile)
			if err != nil {
				return err
			}
			*app = *wired
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default ~/.near-pool/config.toml)")
	flags.String("network", "", "NEAR network: mainnet or testnet")
	flags.String("pool", "", "delegation pool account id")
	flags.String("rpc-url", "", "NEAR JSON-RPC endpoint")
	flags.String("log-level", "", "log level: debug, info, warn or error")

	rootCmd.AddCommand(
		newVersionCmd(),
		newConnectCmd(app),
		newDisconnectCmd(app),
		newAccountCmd(app),
		newBalanceCmd(app),
		newStakeCmd(app),
		newUnstakeCmd(app),
		newWithdrawCmd(app),
		newDashboardCmd(app),
		newServeCmd(app),
	)

	return rootCmd
}
