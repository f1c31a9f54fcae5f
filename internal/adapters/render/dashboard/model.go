package dashboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/near-pool-cli/internal/adapters/render/balance"
	"github.com/bnema/near-pool-cli/internal/application"
	"github.com/bnema/near-pool-cli/internal/domain"
)

// Actions is the part of the controller the dashboard drives.
type Actions interface {
	Start(ctx context.Context) error
	Stake(ctx context.Context, amount string) (domain.TxOutcome, error)
	Unstake(ctx context.Context, amount string) (domain.TxOutcome, error)
	Withdraw(ctx context.Context) (domain.TxOutcome, error)
	RefreshBalances(ctx context.Context) (domain.BalanceSnapshot, error)
	Disconnect(ctx context.Context) error
}

// Source returns what the presenters have been told so far.
type Source interface {
	Snapshot() application.ViewSnapshot
}

const (
	stakeInput = iota
	unstakeInput
)

var inputFields = [...]domain.InputField{
	stakeInput:   domain.InputStakeAmount,
	unstakeInput: domain.InputUnstakeAmount,
}

type actionDoneMsg struct {
	err error
}

type Model struct {
	ctx     context.Context
	actions Actions
	source  Source
	opts    balance.RenderOptions
	styles  balance.Styles
	help    lipgloss.Style

	inputs  [2]textinput.Model
	focus   int
	spinner spinner.Model
	busy    int

	view     application.ViewSnapshot
	quitting bool
}

func NewModel(ctx context.Context, actions Actions, source Source, opts balance.RenderOptions) Model {
	m := Model{
		ctx:     ctx,
		actions: actions,
		source:  source,
		opts:    opts,
		styles:  balance.NewStyles(),
		help:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		busy:    1,
		view:    source.Snapshot(),
	}
	m.opts.HideStatus = true

	for i, prompt := range []string{"Stake   ", "Unstake "} {
		input := textinput.New()
		input.Prompt = prompt + "› "
		input.Placeholder = "0.0 NEAR"
		input.CharLimit = 40
		m.inputs[i] = input
	}
	m.inputs[stakeInput].Focus()

	return m
}

// Init starts the controller; busy already counts that call.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.run(m.actions.Start))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case viewChangedMsg:
		m.view = m.source.Snapshot()
		return m, nil
	case clearInputMsg:
		for i, field := range inputFields {
			if field == msg.field {
				m.inputs[i].SetValue("")
			}
		}
		m.view = m.source.Snapshot()
		return m, nil
	case actionDoneMsg:
		if m.busy > 0 {
			m.busy--
		}
		m.view = m.source.Snapshot()
		return m, nil
	case spinner.TickMsg:
		if m.busy == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "tab", "shift+tab", "up", "down":
		m.inputs[m.focus].Blur()
		m.focus = (m.focus + 1) % len(m.inputs)
		return m, m.inputs[m.focus].Focus()
	case "enter":
		amount := m.inputs[m.focus].Value()
		if m.focus == stakeInput {
			return m.start(func(ctx context.Context) error {
				_, err := m.actions.Stake(ctx, amount)
				return err
			})
		}
		return m.start(func(ctx context.Context) error {
			_, err := m.actions.Unstake(ctx, amount)
			return err
		})
	case "w":
		return m.start(func(ctx context.Context) error {
			_, err := m.actions.Withdraw(ctx)
			return err
		})
	case "r":
		return m.start(func(ctx context.Context) error {
			_, err := m.actions.RefreshBalances(ctx)
			return err
		})
	case "d":
		return m.start(m.actions.Disconnect)
	}

	if msg.Type == tea.KeyRunes && !amountRunes(msg.Runes) {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) start(action func(ctx context.Context) error) (tea.Model, tea.Cmd) {
	m.busy++
	if m.busy == 1 {
		return m, tea.Batch(m.run(action), m.spinner.Tick)
	}
	return m, m.run(action)
}

func (m Model) run(action func(ctx context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return actionDoneMsg{err: action(ctx)}
	}
}

func amountRunes(runes []rune) bool {
	for _, r := range runes {
		if (r < '0' || r > '9') && r != '.' {
			return false
		}
	}
	return true
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{balance.View(m.view, m.opts, m.styles)}
	if m.view.Connected {
		sections = append(sections, m.styles.Section.Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.inputs[stakeInput].View(),
			m.inputs[unstakeInput].View(),
		)))
	}

	status := balance.StatusLine(m.view, m.styles)
	if m.busy > 0 {
		status = strings.TrimSpace(m.spinner.View() + " " + status)
	}
	if status != "" {
		sections = append(sections, m.styles.Section.Render(status))
	}

	sections = append(sections, m.styles.Section.Render(m.help.Render(helpLine(m.view.Connected))))

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func helpLine(connected bool) string {
	if !connected {
		return "q quit"
	}
	return strings.Join([]string{
		"tab switch", "enter submit", "w withdraw", "r refresh", "d disconnect", "q quit",
	}, " · ")
}

// Run shows the dashboard until the user quits or ctx is done.
func Run(ctx context.Context, actions Actions, source Source, notifier *Notifier, opts balance.RenderOptions, programOpts ...tea.ProgramOption) error {
	programOpts = append([]tea.ProgramOption{tea.WithContext(ctx)}, programOpts...)
	program := tea.NewProgram(NewModel(ctx, actions, source, opts), programOpts...)

	notifier.Attach(program)
	defer notifier.Detach()

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}

	return nil
}
