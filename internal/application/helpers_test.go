package application

import (
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/near-pool-cli/internal/domain"
	"github.com/bnema/near-pool-cli/internal/ports"
)

type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

type fakeTimer struct {
	clock   *fakeClock
	at      time.Time
	fn      func()
	stopped bool
	fired   bool
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) ports.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	timer := &fakeTimer{clock: c, at: c.now.Add(d), fn: f}
	c.timers = append(c.timers, timer)

	return timer
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	var due []*fakeTimer
	for _, timer := range c.timers {
		if timer.stopped || timer.fired || timer.at.After(c.now) {
			continue
		}
		timer.fired = true
		due = append(due, timer)
	}
	c.mu.Unlock()

	for _, timer := range due {
		timer.fn()
	}
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()

	if t.stopped || t.fired {
		return false
	}
	t.stopped = true

	return true
}

type memorySessionRepo struct {
	mu       sync.Mutex
	accounts map[domain.Network][]domain.AccountID
}

func newMemorySessionRepo() *memorySessionRepo {
	return &memorySessionRepo{accounts: map[domain.Network][]domain.AccountID{}}
}

func (r *memorySessionRepo) Load(_ context.Context, network domain.Network) ([]domain.AccountID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.accounts[network]), nil
}

func (r *memorySessionRepo) Save(_ context.Context, network domain.Network, accounts []domain.AccountID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.accounts[network] = slices.Clone(accounts)
	return nil
}

// fakeChain answers balance queries from fixed yocto strings.
type fakeChain struct {
	mu        sync.Mutex
	available string
	staked    string
	total     string
	viewErr   error
	views     int
}

func (c *fakeChain) ViewAccount(_ context.Context, _ domain.AccountID, _ domain.Finality) (domain.AccountView, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.views++
	if c.viewErr != nil {
		return domain.AccountView{}, c.viewErr
	}
	amount, ok := new(big.Int).SetString(c.available, 10)
	if !ok {
		return domain.AccountView{}, errors.New("bad fixture")
	}

	return domain.AccountView{Amount: amount}, nil
}

func (c *fakeChain) CallFunction(_ context.Context, _ domain.AccountID, method string, _ any, _ domain.Finality) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch method {
	case domain.MethodGetAccountStakedBalance:
		return json.Marshal(c.staked)
	case domain.MethodGetAccountTotalBalance:
		return json.Marshal(c.total)
	default:
		return nil, errors.New("unexpected method " + method)
	}
}

func (c *fakeChain) ViewAccessKey(context.Context, domain.AccountID, string, domain.Finality) (domain.AccessKeyView, error) {
	return domain.AccessKeyView{}, errors.New("not used")
}

func (c *fakeChain) BroadcastTxCommit(context.Context, []byte) (domain.TxOutcome, error) {
	return domain.TxOutcome{}, errors.New("not used")
}

func (c *fakeChain) viewCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.views
}

func near(t *testing.T, human string) *big.Int {
	t.Helper()

	value, err := domain.ParseNearAmount(human)
	require.NoError(t, err)

	return value
}

func yoctoString(t *testing.T, human string) string {
	t.Helper()

	return near(t, human).String()
}

func mockAnyContext() interface{} {
	return mock.Anything
}

func matchMethod(method string) interface{} {
	return mock.MatchedBy(func(tx domain.Transaction) bool {
		return len(tx.Actions) == 1 && tx.Actions[0].MethodName == method
	})
}

func matchBatchMethod(method string) interface{} {
	return mock.MatchedBy(func(txs []domain.Transaction) bool {
		return len(txs) == 1 && len(txs[0].Actions) == 1 && txs[0].Actions[0].MethodName == method
	})
}
