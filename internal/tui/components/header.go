// Package components provides reusable TUI components for kgr.
package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/kgr/internal/tui/styles"
)

// HeaderData contains the data to display in the header.
type HeaderData struct {
	FileName   string
	ColumnName string
}

// Header is a component that displays run info in a header bar.
type Header struct {
	data  HeaderData
	width int
}

// NewHeader creates a new Header component.
func NewHeader() *Header {
	return &Header{
		data: HeaderData{
			FileName:   "-",
			ColumnName: "-",
		},
	}
}

// SetData updates the header data.
func (h *Header) SetData(data HeaderData) {
	h.data = data
}

// SetFileName sets the CSV file name.
func (h *Header) SetFileName(name string) {
	h.data.FileName = name
}

// SetColumnName sets the column name.
func (h *Header) SetColumnName(name string) {
	h.data.ColumnName = name
}

// SetWidth sets the width for the header.
func (h *Header) SetWidth(width int) {
	h.width = width
}

// View renders the header.
func (h *Header) View() string {
	title := styles.TitleStyle.Render("KGR")

	sep := lipgloss.NewStyle().
		Foreground(styles.MutedLight).
		Render(" │ ")

	fileLabel := styles.HeaderLabelStyle.Render("File: ")
	fileValue := styles.HeaderValueStyle.Render(h.data.FileName)

	columnLabel := styles.HeaderLabelStyle.Render("Column: ")
	columnValue := styles.HeaderValueStyle.Render(h.data.ColumnName)

	content := fmt.Sprintf("%s%s%s%s%s%s%s",
		title, sep,
		fileLabel, fileValue, sep,
		columnLabel, columnValue,
	)

	headerStyle := lipgloss.NewStyle().
		Background(styles.Primary).
		Foreground(styles.Foreground).
		Padding(0, 1)

	if h.width > 0 {
		headerStyle = headerStyle.Width(h.width)
	}

	return headerStyle.Render(content)
}
