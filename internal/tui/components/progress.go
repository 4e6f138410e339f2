package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/kgr/internal/tui/styles"
)

// ProgressData contains the data to display in the progress bar.
type ProgressData struct {
	Processed int
	Total     int
	Offered   int
	Accepted  int
}

// Progress is a component that displays value progress as a bar.
type Progress struct {
	data  ProgressData
	width int
}

// NewProgress creates a new Progress component.
func NewProgress() *Progress {
	return &Progress{}
}

// SetData updates the progress data.
func (p *Progress) SetData(data ProgressData) {
	p.data = data
}

// SetProgress sets processed and total counts.
func (p *Progress) SetProgress(processed, total int) {
	p.data.Processed = processed
	p.data.Total = total
}

// AddOffered increments the offered suggestion count.
func (p *Progress) AddOffered() {
	p.data.Offered++
}

// AddAccepted increments the accepted replacement count.
func (p *Progress) AddAccepted() {
	p.data.Accepted++
}

// SetWidth sets the width for the progress bar.
func (p *Progress) SetWidth(width int) {
	p.width = width
}

// View renders the progress bar.
func (p *Progress) View() string {
	var percent float64
	if p.data.Total > 0 {
		percent = float64(p.data.Processed) / float64(p.data.Total)
	}

	barWidth := 20
	if p.width > 60 {
		barWidth = 30
	}
	if p.width > 80 {
		barWidth = 40
	}

	filled := int(percent * float64(barWidth))
	empty := barWidth - filled

	filledStr := styles.ProgressFilledStyle.Render(strings.Repeat("█", filled))
	emptyStr := styles.ProgressEmptyStyle.Render(strings.Repeat("░", empty))
	bar := filledStr + emptyStr

	count := styles.ProgressCountStyle.Render(
		fmt.Sprintf("%d/%d values", p.data.Processed, p.data.Total))

	sep := lipgloss.NewStyle().
		Foreground(styles.Muted).
		Render(" │ ")

	statsStyle := lipgloss.NewStyle().Foreground(styles.MutedLight)
	stats := statsStyle.Render(
		fmt.Sprintf("%d offered, %d accepted", p.data.Offered, p.data.Accepted))

	content := fmt.Sprintf("Progress: %s%s%s%s%s", bar, sep, count, sep, stats)

	containerStyle := lipgloss.NewStyle().
		Padding(0, 1)

	if p.width > 0 {
		containerStyle = containerStyle.Width(p.width)
	}

	return containerStyle.Render(content)
}

// PercentComplete returns the completion percentage (0.0 - 1.0).
func (p *Progress) PercentComplete() float64 {
	if p.data.Total == 0 {
		return 0
	}
	return float64(p.data.Processed) / float64(p.data.Total)
}

// IsComplete returns true if all values were processed.
func (p *Progress) IsComplete() bool {
	return p.data.Total > 0 && p.data.Processed >= p.data.Total
}
