package application

import (
	"sync"

	"github.com/bnema/near-pool-cli/internal/domain"
	"github.com/bnema/near-pool-cli/internal/ports"
)

// StatusBoard holds the single visible status message. A newer post replaces
// the current one and restarts the hide timer.
type StatusBoard struct {
	presenter ports.Presenter
	clock     ports.Clock

	mu      sync.Mutex
	seq     uint64
	current domain.StatusMessage
	visible bool
	timer   ports.Timer
}

func NewStatusBoard(presenter ports.Presenter, clock ports.Clock) *StatusBoard {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &StatusBoard{presenter: presenter, clock: clock}
}

func (b *StatusBoard) Post(text string, severity domain.Severity) domain.StatusMessage {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.timer != nil {
		b.timer.Stop()
	}
	b.seq++
	seq := b.seq
	b.current = domain.StatusMessage{Text: text, Severity: severity, PostedAt: b.clock.Now()}
	b.visible = true
	b.presenter.ShowStatus(b.current)
	b.timer = b.clock.AfterFunc(domain.StatusDisplayDuration, func() {
		b.hide(seq)
	})

	return b.current
}

func (b *StatusBoard) Current() (domain.StatusMessage, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.current, b.visible
}

// Stop cancels the pending hide timer, leaving the current message visible.
func (b *StatusBoard) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}

func (b *StatusBoard) hide(seq uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if seq != b.seq || !b.visible {
		return
	}
	b.visible = false
	b.timer = nil
	b.presenter.HideStatus()
}
