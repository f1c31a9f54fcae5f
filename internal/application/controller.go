package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/bnema/near-pool-cli/internal/domain"
	"github.com/bnema/near-pool-cli/internal/ports"
)

// WithdrawRefreshDelay is how long after a withdrawal the balances are re-read.
const WithdrawRefreshDelay = 3 * time.Second

const (
	MessageStarted            = "Application started successfully"
	MessageDisconnected       = "Disconnected successfully"
	MessageAccountMissing     = "Account not available"
	MessageNotConnected       = "Wallet not connected"
	MessageInvalidAmount      = "Enter a valid amount"
	MessageProcessing         = "Processing transaction..."
	MessageProcessingWithdraw = "Processing withdrawal..."
	MessageStaked             = "Staking completed successfully!"
	MessageUnstaked           = "Unstake started. Funds will be available in 2-3 epochs (~52-78 hours)"
	MessageWithdrawn          = "Withdrawal successful!"
)

// TransactionObserver is told about every submission attempt.
type TransactionObserver interface {
	ObserveTransaction(kind domain.IntentKind, err error)
}

type ControllerOptions struct {
	Pool      domain.Pool
	Accounts  *AccountStore
	Wallet    ports.WalletConnector
	Chain     ports.ChainQuerier
	Presenter ports.Presenter
	Clock     ports.Clock
	Logger    *slog.Logger
	Observer  TransactionObserver
}

// Controller is the single entry point for presenters. It owns the session,
// the status board and the account store subscription.
type Controller struct {
	pool      domain.Pool
	state     *AppState
	accounts  *AccountStore
	wallet    ports.WalletConnector
	balances  *BalanceAggregator
	submitter *Submitter
	presenter ports.Presenter
	status    *StatusBoard
	tracker   *AccountTracker
	clock     ports.Clock
	logger    *slog.Logger
	observer  TransactionObserver

	flights singleflight.Group
	pending sync.WaitGroup

	mu          sync.Mutex
	closed      bool
	timers      map[int]ports.Timer
	nextTimer   int
	unsubscribe func()
}

func NewController(opts ControllerOptions) (*Controller, error) {
	pool := opts.Pool.WithDefaults()
	if err := pool.Validate(); err != nil {
		return nil, fmt.Errorf("validate pool: %w", err)
	}
	if opts.Accounts == nil || opts.Wallet == nil || opts.Chain == nil || opts.Presenter == nil {
		return nil, errors.New("controller requires accounts, wallet, chain and presenter")
	}
	if opts.Clock == nil {
		opts.Clock = ports.SystemClock{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	state := NewAppState()
	c := &Controller{
		pool:      pool,
		state:     state,
		accounts:  opts.Accounts,
		wallet:    opts.Wallet,
		balances:  NewBalanceAggregator(opts.Chain, pool, opts.Logger),
		submitter: NewSubmitter(state, opts.Wallet, pool),
		presenter: opts.Presenter,
		status:    NewStatusBoard(opts.Presenter, opts.Clock),
		clock:     opts.Clock,
		logger:    opts.Logger,
		observer:  opts.Observer,
		timers:    map[int]ports.Timer{},
	}
	c.tracker = NewAccountTracker(state, opts.Presenter, func(ctx context.Context, accountID domain.AccountID) {
		c.loadBalances(ctx, accountID)
	})
	c.unsubscribe = opts.Accounts.Subscribe(c.tracker.OnAccountsChanged)

	return c, nil
}

func (c *Controller) Network() domain.Network {
	return c.pool.Network
}

func (c *Controller) Pool() domain.Pool {
	return c.pool
}

func (c *Controller) Session() domain.Session {
	return c.state.Session()
}

func (c *Controller) Status() (domain.StatusMessage, bool) {
	return c.status.Current()
}

// Start loads the persisted account list and reconciles the views once.
func (c *Controller) Start(ctx context.Context) error {
	if err := c.accounts.Load(ctx); err != nil {
		c.status.Post("Error starting application: "+err.Error(), domain.SeverityError)
		return err
	}

	c.tracker.OnAccountsChanged(ctx, c.accounts.Accounts())
	c.status.Post(MessageStarted, domain.SeveritySuccess)

	return nil
}

// Connect stores credential in the wallet and makes its account the active one.
func (c *Controller) Connect(ctx context.Context, credential domain.Credential) error {
	if err := c.connect(ctx, credential); err != nil {
		c.status.Post("Error connecting wallet: "+err.Error(), domain.SeverityError)
		return err
	}

	return nil
}

func (c *Controller) connect(ctx context.Context, credential domain.Credential) error {
	if err := credential.Validate(); err != nil {
		return err
	}
	if err := c.wallet.SignIn(ctx, credential); err != nil {
		return fmt.Errorf("sign in %s: %w", credential.AccountID, err)
	}
	if err := c.accounts.SetAccounts(ctx, []domain.AccountID{credential.AccountID}); err != nil {
		return err
	}

	return nil
}

func (c *Controller) Disconnect(ctx context.Context) error {
	session := c.state.Session()
	if session.Connected() {
		if err := c.wallet.SignOut(ctx, session.AccountID); err != nil {
			c.status.Post("Error disconnecting: "+err.Error(), domain.SeverityError)
			return fmt.Errorf("sign out %s: %w", session.AccountID, err)
		}
	}
	if err := c.accounts.SetAccounts(ctx, nil); err != nil {
		c.status.Post("Error disconnecting: "+err.Error(), domain.SeverityError)
		return err
	}

	c.status.Post(MessageDisconnected, domain.SeverityInfo)

	return nil
}

// RefreshBalances re-reads the balances of the active account.
func (c *Controller) RefreshBalances(ctx context.Context) (domain.BalanceSnapshot, error) {
	session := c.state.Session()
	if !session.Connected() {
		c.status.Post(MessageAccountMissing, domain.SeverityError)
		return domain.BalanceSnapshot{}, domain.ErrWalletNotConnected
	}

	return c.loadBalances(ctx, session.AccountID), nil
}

func (c *Controller) Stake(ctx context.Context, amount string) (domain.TxOutcome, error) {
	return c.submit(ctx, domain.StakeIntent(amount))
}

func (c *Controller) Unstake(ctx context.Context, amount string) (domain.TxOutcome, error) {
	return c.submit(ctx, domain.UnstakeIntent(amount))
}

func (c *Controller) Withdraw(ctx context.Context) (domain.TxOutcome, error) {
	return c.submit(ctx, domain.WithdrawIntent())
}

// Wait blocks until every scheduled refresh has run or been cancelled.
func (c *Controller) Wait() {
	c.pending.Wait()
}

// Close cancels scheduled refreshes and detaches from the account store.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	for id, timer := range c.timers {
		timer.Stop()
		delete(c.timers, id)
		c.pending.Done()
	}
	unsubscribe := c.unsubscribe
	c.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	c.status.Stop()
}

// submit lets a second call of the same kind join the one already in flight.
// A started submission runs to completion; ctx only bounds how long a caller
// waits for its result.
func (c *Controller) submit(ctx context.Context, intent domain.TransactionIntent) (domain.TxOutcome, error) {
	flightCtx := context.WithoutCancel(ctx)
	results := c.flights.DoChan(string(intent.Kind), func() (any, error) {
		return c.execute(flightCtx, intent)
	})

	select {
	case res := <-results:
		outcome, _ := res.Val.(domain.TxOutcome)
		return outcome, res.Err
	case <-ctx.Done():
		return domain.TxOutcome{}, fmt.Errorf("submit %s: %w", intent.Kind, ctx.Err())
	}
}

func (c *Controller) execute(ctx context.Context, intent domain.TransactionIntent) (domain.TxOutcome, error) {
	if _, err := c.submitter.Plan(intent); err != nil {
		c.status.Post(c.rejectionMessage(intent.Kind, err), domain.SeverityError)
		c.observe(intent.Kind, err)
		return domain.TxOutcome{}, err
	}

	processing := MessageProcessing
	if intent.Kind == domain.IntentWithdraw {
		processing = MessageProcessingWithdraw
	}
	c.status.Post(processing, domain.SeverityInfo)

	outcome, err := c.submitter.Submit(ctx, intent)
	c.observe(intent.Kind, err)
	if err != nil {
		c.logger.Error("transaction failed", "kind", intent.Kind, "pool", c.pool.ID, "error", err)
		c.status.Post(failurePrefix(intent.Kind)+err.Error(), domain.SeverityError)
		return domain.TxOutcome{}, fmt.Errorf("submit %s: %w", intent.Kind, err)
	}
	c.logger.Info("transaction submitted", "kind", intent.Kind, "pool", c.pool.ID, "hash", outcome.Hash)

	switch intent.Kind {
	case domain.IntentStake:
		c.status.Post(MessageStaked, domain.SeveritySuccess)
		c.presenter.ClearInput(domain.InputStakeAmount)
		c.refreshSession(ctx)
	case domain.IntentUnstake:
		c.status.Post(MessageUnstaked, domain.SeverityInfo)
		c.presenter.ClearInput(domain.InputUnstakeAmount)
		c.refreshSession(ctx)
	case domain.IntentWithdraw:
		c.status.Post(MessageWithdrawn, domain.SeveritySuccess)
		c.schedule(WithdrawRefreshDelay, func() {
			c.refreshSession(ctx)
		})
	}

	return outcome, nil
}

func (c *Controller) rejectionMessage(kind domain.IntentKind, err error) string {
	switch {
	case errors.Is(err, domain.ErrWalletNotConnected):
		return MessageNotConnected
	case kind == domain.IntentStake && (errors.Is(err, domain.ErrBelowMinimum) || errors.Is(err, domain.ErrAmountRequired)):
		return fmt.Sprintf("Minimum %s NEAR required to stake", c.pool.MinStake)
	case domain.IsValidationError(err):
		return MessageInvalidAmount
	default:
		return err.Error()
	}
}

func failurePrefix(kind domain.IntentKind) string {
	switch kind {
	case domain.IntentStake:
		return "Error staking: "
	case domain.IntentUnstake:
		return "Error unstaking: "
	default:
		return "Error withdrawing funds: "
	}
}

func (c *Controller) observe(kind domain.IntentKind, err error) {
	if c.observer != nil {
		c.observer.ObserveTransaction(kind, err)
	}
}

func (c *Controller) refreshSession(ctx context.Context) {
	session := c.state.Session()
	if !session.Connected() {
		return
	}
	c.loadBalances(ctx, session.AccountID)
}

func (c *Controller) loadBalances(ctx context.Context, accountID domain.AccountID) domain.BalanceSnapshot {
	snapshot := c.balances.Load(ctx, accountID)
	c.presenter.ShowBalances(snapshot)

	return snapshot
}

func (c *Controller) schedule(delay time.Duration, fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	id := c.nextTimer
	c.nextTimer++
	c.pending.Add(1)
	c.timers[id] = c.clock.AfterFunc(delay, func() {
		c.mu.Lock()
		_, live := c.timers[id]
		delete(c.timers, id)
		c.mu.Unlock()
		if !live {
			return
		}
		defer c.pending.Done()
		fn()
	})
}
