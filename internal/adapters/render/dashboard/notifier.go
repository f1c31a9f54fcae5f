package dashboard

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/near-pool-cli/internal/domain"
	"github.com/bnema/near-pool-cli/internal/ports"
)

var _ ports.Presenter = (*Notifier)(nil)

type viewChangedMsg struct{}

type clearInputMsg struct {
	field domain.InputField
}

// Notifier forwards presenter calls to a running program. Calls made while no
// program is attached are dropped; the model re-reads the view state after
// every action anyway.
type Notifier struct {
	mu      sync.RWMutex
	program *tea.Program
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

func (n *Notifier) Attach(program *tea.Program) {
	n.mu.Lock()
	n.program = program
	n.mu.Unlock()
}

func (n *Notifier) Detach() {
	n.Attach(nil)
}

func (n *Notifier) send(msg tea.Msg) {
	n.mu.RLock()
	program := n.program
	n.mu.RUnlock()

	if program != nil {
		program.Send(msg)
	}
}

func (n *Notifier) ShowConnected(domain.AccountID) { n.send(viewChangedMsg{}) }
func (n *Notifier) ShowDisconnected() { n.send(viewChangedMsg{}) }
func (n *Notifier) ShowBalances(domain.BalanceSnapshot) { n.send(viewChangedMsg{}) }
func (n *Notifier) ShowStatus(domain.StatusMessage) { n.send(viewChangedMsg{}) }
func (n *Notifier) HideStatus() { n.send(viewChangedMsg{}) }

func (n *Notifier) ClearInput(field domain.InputField) {
	n.send(clearInputMsg{field: field})
}
