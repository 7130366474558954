package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/pongtrack/startuppong/pkg/pong"
)

var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary accents
	colorGreen = lipgloss.Color("35")  // Green - success
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorGray  = lipgloss.Color("245") // Gray - secondary text
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

var (
	styleRank   = lipgloss.NewStyle().Foreground(colorCyan).Width(4)
	styleRating = lipgloss.NewStyle().Foreground(colorGray).Width(8)
	styleName   = lipgloss.NewStyle().Foreground(colorWhite)
	styleWinner = lipgloss.NewStyle().Foreground(colorGreen)
	styleLoser  = lipgloss.NewStyle().Foreground(colorGray)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
)

const (
	iconSuccess = "✓"
	iconArrow   = "→"
)

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println("  " + styleDim.Render(msg))
}

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Println(keyStyle.Render(key) + " " + styleName.Render(value))
}

// printLeaderboard prints one line per player in the order the service
// returned them.
func printLeaderboard(players []pong.Player) {
	for _, p := range players {
		fmt.Println(
			styleRank.Render(fmt.Sprintf("#%d", p.Rank)) +
				styleRating.Render(fmt.Sprintf("%.1f", p.Rating)) +
				" " + styleName.Render(p.Name),
		)
	}
}

// printMatches prints one line per match, most recent first (service order).
func printMatches(matches []pong.Match) {
	for _, m := range matches {
		played := time.Unix(m.PlayedTime, 0).Format("Jan 2 15:04")
		fmt.Println(
			styleDim.Render(played) + "  " +
				styleWinner.Render(m.WinnerName) +
				styleDim.Render(" def. ") +
				styleLoser.Render(m.LoserName) +
				styleDim.Render(fmt.Sprintf("  (%.1f %s %.1f)",
					m.WinnerRatingBefore, iconArrow, m.WinnerRatingAfter)),
		)
	}
}
