package balance

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/near-pool-cli/internal/application"
	"github.com/bnema/near-pool-cli/internal/domain"
)

const unit = "NEAR"

type RenderOptions struct {
	Pool domain.Pool
	// HideStatus drops the status line, for callers that print it themselves.
	HideStatus bool
}

// View is the plain lipgloss rendering shared by Render and the dashboard.
func View(view application.ViewSnapshot, opts RenderOptions, s Styles) string {
	lines := []string{
		s.Title.Render(fmt.Sprintf("NEAR Staking · %s", opts.Pool.ID)),
		s.Header.Render(fmt.Sprintf("network: %s", opts.Pool.Network)),
	}

	if !view.Connected {
		lines = append(lines, s.Section.Render(s.Faint.Render("Wallet not connected.")))
	} else {
		lines = append(lines,
			s.Section.Render(s.Account.Render(view.AccountID.String())),
			balanceLines(view, s),
		)
	}

	if status := StatusLine(view, s); status != "" && !opts.HideStatus {
		lines = append(lines, s.Section.Render(status))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func balanceLines(view application.ViewSnapshot, s Styles) string {
	balances := view.Balances
	if !view.HasBalances {
		balances = domain.BalanceSnapshot{
			Available: domain.UnavailableBalance(),
			Staked:    domain.UnavailableBalance(),
			Rewards:   domain.UnavailableBalance(),
		}
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		balanceLine("Available", balances.Available, s),
		balanceLine("Staked", balances.Staked, s),
		balanceLine("Rewards", balances.Rewards, s),
	)
}

func balanceLine(label string, field domain.BalanceField, s Styles) string {
	amountStyle := s.Amount
	switch {
	case !field.Known():
		amountStyle = s.Faint
	case field.Amount.Sign() < 0:
		amountStyle = s.Negative
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.Label.Render(label+":"),
		amountStyle.Render(FormatField(field)),
	)
}

// FormatField renders a balance with its unit, "-- NEAR" when unknown.
func FormatField(field domain.BalanceField) string {
	return field.Display() + " " + unit
}

// StatusLine renders the visible status message, or "" when hidden.
func StatusLine(view application.ViewSnapshot, s Styles) string {
	if !view.StatusVisible || view.Status.Text == "" {
		return ""
	}

	switch view.Status.Severity {
	case domain.SeveritySuccess:
		return s.Success.Render(view.Status.Text)
	case domain.SeverityError:
		return s.Error.Render(view.Status.Text)
	default:
		return s.Info.Render(view.Status.Text)
	}
}
