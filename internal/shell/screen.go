package shell

import (
	"github.com/charmbracelet/lipgloss"

	"routineTracker/internal/theme"
)

const (
	Heading  = "Open up App.tsx to start working on your app!!"
	CardBody = "My first Paper component!"

	DefaultWidth = 60
	minWidth     = 24
)

// Render рисует стартовый экран: заголовок и одна карточка.
// При ненулевом roundness рамка карточки скруглённая.
func Render(th theme.Theme, width int) string {
	if width < minWidth {
		width = DefaultWidth
	}

	border := lipgloss.NormalBorder()
	if th.Roundness > 0 {
		border = lipgloss.RoundedBorder()
	}

	heading := lipgloss.NewStyle().
		Foreground(th.Foreground()).
		Bold(true).
		Width(width).
		Align(lipgloss.Center).
		Render(Heading)

	body := lipgloss.NewStyle().
		Foreground(th.Foreground()).
		Render(CardBody)

	// отступ карточки 16px - примерно две клетки
	card := lipgloss.NewStyle().
		Border(border).
		BorderForeground(th.Colors.Secondary).
		Background(th.Colors.Surface).
		Padding(1, 2).
		Margin(1, 2).
		Width(width - 4 - 2).
		Render(body)

	return lipgloss.NewStyle().
		Background(th.Colors.Background).
		Render(lipgloss.JoinVertical(lipgloss.Center, heading, card))
}
