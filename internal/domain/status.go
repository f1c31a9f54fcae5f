package domain

import "time"

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// StatusDisplayDuration is how long a status message stays visible.
const StatusDisplayDuration = 5 * time.Second

type StatusMessage struct {
	Text     string
	Severity Severity
	PostedAt time.Time
}

func (m StatusMessage) Expired(now time.Time) bool {
	if m.PostedAt.IsZero() {
		return true
	}

	return now.Sub(m.PostedAt) >= StatusDisplayDuration
}

type InputField string

const (
	InputStakeAmount   InputField = "stake-amount"
	InputUnstakeAmount InputField = "unstake-amount"
)
