package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	balanceview "github.com/bnema/near-pool-cli/internal/adapters/render/balance"
	"github.com/bnema/near-pool-cli/internal/domain"
)

// elapsedAfter is how long a chain call runs before the wait time is shown.
const elapsedAfter = 2 * time.Second

type chainWorkDoneMsg struct {
	err error
}

// chainWaitModel shows a spinner while an RPC call or a transaction is in
// flight, with the elapsed time once it passes elapsedAfter.
type chainWaitModel struct {
	spinner spinner.Model
	styles  balanceview.Styles
	label   string
	work    tea.Cmd
	now     func() time.Time
	started time.Time
	elapsed time.Duration
	err     error
	done    bool
}

func newChainWaitModel(label string, work tea.Cmd, now func() time.Time) chainWaitModel {
	styles := balanceview.NewStyles()

	return chainWaitModel{
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styles.Info)),
		styles:  styles,
		label:   label,
		work:    work,
		now:     now,
		started: now(),
	}
}

func (m chainWaitModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.work)
}

func (m chainWaitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case chainWorkDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		m.elapsed = m.now().Sub(m.started)
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m chainWaitModel) View() string {
	if m.done {
		return ""
	}

	line := m.spinner.View() + " " + m.label
	if m.elapsed >= elapsedAfter {
		line += " " + m.styles.Faint.Render(fmt.Sprintf("(%s)", m.elapsed.Truncate(time.Second)))
	}

	return line
}

// runWithSpinner shows label on output while work runs and returns its error.
func runWithSpinner(ctx context.Context, output io.Writer, label string, work func(context.Context) error) error {
	workCmd := func() tea.Msg {
		return chainWorkDoneMsg{err: work(ctx)}
	}

	program := tea.NewProgram(
		newChainWaitModel(label, workCmd, time.Now),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("run spinner: %w", err)
	}

	model, ok := final.(chainWaitModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", final)
	}

	return model.err
}

func fetchLabel(app *app) string {
	return fmt.Sprintf("Fetching balances from %s...", app.cfg.Pool.ID)
}

func submitLabel(app *app, intent domain.TransactionIntent) string {
	pool := app.cfg.Pool.ID
	switch intent.Kind {
	case domain.IntentStake:
		return fmt.Sprintf("Staking %s NEAR with %s...", intent.Amount, pool)
	case domain.IntentUnstake:
		return fmt.Sprintf("Unstaking %s NEAR from %s...", intent.Amount, pool)
	default:
		return fmt.Sprintf("Withdrawing unlocked NEAR from %s...", pool)
	}
}
