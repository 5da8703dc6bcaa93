// Package ui provides the Lip Gloss styles and small output helpers
// shared by the CLI and the TUI.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	TitleStyle   = lipgloss.NewStyle().Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	PendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	AccentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	MutedStyle   = lipgloss.NewStyle().Faint(true)
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

	SelectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	DoneStyle     = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	HelpStyle     = lipgloss.NewStyle().Faint(true)
)

var (
	BoxChecked   = "☑"
	BoxUnchecked = "☐"

	symCheck = "✔"
	symCross = "✖"
)

// SetTheme switches the palette and symbols by name. "mono" strips all
// styling for dumb terminals and piped output; anything else is classic.
func SetTheme(name string) {
	if strings.ToLower(name) != "mono" {
		return
	}
	plain := lipgloss.NewStyle()
	TitleStyle, SuccessStyle, PendingStyle = plain, plain, plain
	AccentStyle, MutedStyle, ErrorStyle = plain, plain, plain
	SelectedStyle, DoneStyle, HelpStyle = plain, plain, plain
	BoxChecked, BoxUnchecked = "[x]", "[ ]"
	symCheck, symCross = "ok:", "error:"
}

func OK(msg string) {
	fmt.Println(SuccessStyle.Render(symCheck + " " + msg))
}

func Fail(msg string) {
	fmt.Fprintln(os.Stderr, ErrorStyle.Render(symCross+" "+msg))
}

// Hint prints a muted follow-up line under an error message.
func Hint(msg string) {
	fmt.Fprintln(os.Stderr, MutedStyle.Render(msg))
}

// Panel draws lines inside a rounded border.
func Panel(lines []string) {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
	fmt.Println(border.Render(strings.Join(lines, "\n")))
}

// ProgressBar renders a done/total bar, e.g. "[████░░░░] 2/4".
func ProgressBar(done, total, width int) string {
	denom := total
	if denom == 0 {
		denom = 1
	}
	if width <= 0 {
		width = 28
	}
	filled := int(float64(done) / float64(denom) * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + fmt.Sprintf("] %d/%d", done, total)
}
