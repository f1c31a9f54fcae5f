package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/bnema/near-pool-cli/internal/adapters/near/rpc"
	tomlrepo "github.com/bnema/near-pool-cli/internal/adapters/repo/toml"
	chainstore "github.com/bnema/near-pool-cli/internal/adapters/secrets/chain"
	filestore "github.com/bnema/near-pool-cli/internal/adapters/secrets/file"
	passstore "github.com/bnema/near-pool-cli/internal/adapters/secrets/pass"
	"github.com/bnema/near-pool-cli/internal/adapters/wallet/keystore"
	"github.com/bnema/near-pool-cli/internal/application"
	"github.com/bnema/near-pool-cli/internal/config"
	"github.com/bnema/near-pool-cli/internal/domain"
	"github.com/bnema/near-pool-cli/internal/ports"
	"github.com/bnema/near-pool-cli/internal/telemetry"
)

type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	metrics  *telemetry.Metrics
	chain    *rpc.Client
	secrets  ports.SecretStore
	sessions *tomlrepo.SessionRepository
	wallet   *keystore.Connector
	clock    ports.Clock
}

func wireApp(cmd *cobra.Command, configFile string) (*app, error) {
	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: configFile,
		Flags:      cmd.Root().PersistentFlags(),
	})
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := telemetry.InitLogger(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	metrics := telemetry.NewMetrics()
	chain := rpc.New(cfg.RPCURL, rpc.WithObserver(metrics), rpc.WithLogger(logger))

	secrets, err := newSecretStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire secret store: %w", err)
	}

	sessions, err := tomlrepo.NewSessionRepository(cfg.Viper)
	if err != nil {
		return nil, fmt.Errorf("wire session repository: %w", err)
	}

	return &app{
		cfg:      cfg,
		logger:   logger,
		metrics:  metrics,
		chain:    chain,
		secrets:  secrets,
		sessions: sessions,
		wallet:   keystore.NewConnector(cfg.Pool.Network, secrets, chain, logger),
		clock:    ports.SystemClock{},
	}, nil
}

func newSecretStore(cfg *config.Config) (ports.SecretStore, error) {
	switch cfg.SecretsBackend {
	case config.SecretsFile:
		return filestore.NewStore(cfg.SecretsDir), nil
	case config.SecretsPass:
		return passstore.NewStore(cfg.PassPrefix), nil
	default:
		return chainstore.NewPassFirstWithFileFallback(cfg.PassPrefix, cfg.SecretsDir)
	}
}

func (a *app) newAccountStore() *application.AccountStore {
	accounts := application.NewAccountStore(a.sessions, a.cfg.Pool.Network)
	accounts.Subscribe(func(_ context.Context, ids []domain.AccountID) {
		a.metrics.SetConnected(len(ids) > 0)
	})

	return accounts
}

// newController builds a controller that reports to presenter. Callers own
// the controller and must Close it.
func (a *app) newController(presenter ports.Presenter) (*application.Controller, error) {
	controller, err := application.NewController(application.ControllerOptions{
		Pool:      a.cfg.Pool,
		Accounts:  a.newAccountStore(),
		Wallet:    a.wallet,
		Chain:     a.chain,
		Presenter: presenter,
		Clock:     a.clock,
		Logger:    a.logger,
		Observer:  a.metrics,
	})
	if err != nil {
		return nil, fmt.Errorf("wire controller: %w", err)
	}

	return controller, nil
}

// startController is newController plus Start, for one-shot commands.
func (a *app) startController(ctx context.Context) (*application.Controller, *application.ViewState, error) {
	view := application.NewViewState()
	controller, err := a.newController(view)
	if err != nil {
		return nil, nil, err
	}
	if err := controller.Start(ctx); err != nil {
		controller.Close()
		return nil, nil, fmt.Errorf("start: %w", err)
	}

	return controller, view, nil
}
