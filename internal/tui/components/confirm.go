// Package components provides reusable TUI components for kgr.
package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dbmrq/kgr/internal/tui/styles"
)

// ReplaceDialog asks whether a suggested replacement should be applied.
// The default answer is No, so plain Enter declines.
type ReplaceDialog struct {
	visible  bool
	position int
	total    int
	from     string
	to       string
	width    int
}

// NewReplaceDialog creates a new ReplaceDialog component.
func NewReplaceDialog() *ReplaceDialog {
	return &ReplaceDialog{
		width: 60,
	}
}

// Show displays the dialog for the given suggestion.
func (d *ReplaceDialog) Show(position, total int, from, to string) {
	d.visible = true
	d.position = position
	d.total = total
	d.from = from
	d.to = to
}

// Hide hides the dialog.
func (d *ReplaceDialog) Hide() {
	d.visible = false
}

// IsVisible returns whether the dialog is visible.
func (d *ReplaceDialog) IsVisible() bool {
	return d.visible
}

// From returns the value being replaced.
func (d *ReplaceDialog) From() string {
	return d.from
}

// To returns the suggested replacement.
func (d *ReplaceDialog) To() string {
	return d.to
}

// SetSize sets the dialog width.
func (d *ReplaceDialog) SetSize(width int) {
	d.width = width
}

// Update handles input messages.
func (d *ReplaceDialog) Update(msg tea.Msg) tea.Cmd {
	if !d.visible {
		return nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch strings.ToLower(msg.String()) {
		case "y":
			from, to := d.from, d.to
			d.Hide()
			return func() tea.Msg {
				return ReplaceYesMsg{From: from, To: to}
			}
		case "n", "enter", "esc":
			from := d.from
			d.Hide()
			return func() tea.Msg {
				return ReplaceNoMsg{From: from}
			}
		case "q", "ctrl+c":
			d.Hide()
			return func() tea.Msg {
				return ReplaceAbortMsg{}
			}
		}
	}
	return nil
}

// View renders the dialog.
func (d *ReplaceDialog) View() string {
	if !d.visible {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Foreground(styles.Foreground).
		Background(styles.Primary).
		Bold(true).
		Padding(0, 1).
		Width(d.width - 4)
	b.WriteString(titleStyle.Render(fmt.Sprintf("[%d/%d] Suggestion", d.position, d.total)))
	b.WriteString("\n\n")

	fromStyle := lipgloss.NewStyle().Foreground(styles.Warning).Bold(true)
	toStyle := lipgloss.NewStyle().Foreground(styles.Success).Bold(true)
	msgStyle := lipgloss.NewStyle().
		Foreground(styles.Foreground).
		Width(d.width - 8)
	b.WriteString(msgStyle.Render(fmt.Sprintf("Replace %s with %s?",
		fromStyle.Render(fmt.Sprintf("%q", d.from)),
		toStyle.Render(fmt.Sprintf("%q", d.to)))))
	b.WriteString("\n\n")

	b.WriteString(styles.ButtonPrimaryStyle.Render("[Y]es"))
	b.WriteString("  ")
	b.WriteString(styles.ButtonSecondaryUnfocusedStyle.Render("[N]o"))
	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render("enter declines · q aborts and saves progress"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(styles.Primary).
		Padding(1, 2)

	return boxStyle.Render(b.String())
}

// ReplaceYesMsg is sent when the user accepts the suggestion.
type ReplaceYesMsg struct {
	From string
	To   string
}

// ReplaceNoMsg is sent when the user declines the suggestion.
type ReplaceNoMsg struct {
	From string
}

// ReplaceAbortMsg is sent when the user aborts the run from the dialog.
type ReplaceAbortMsg struct{}
