package balance

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	Account  lipgloss.Style
	Label    lipgloss.Style
	Amount   lipgloss.Style
	Faint    lipgloss.Style
	Negative lipgloss.Style
	Section  lipgloss.Style
	Info     lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
}

func NewStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true),
		Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Account:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Width(11),
		Amount:   lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Faint:    lipgloss.NewStyle().Faint(true),
		Negative: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Section:  lipgloss.NewStyle().MarginTop(1),
		Info:     lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		Success:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114")),
		Error:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
	}
}
