// Package tui provides the terminal user interface for kgr.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/kgr/internal/tui/components"
	"github.com/dbmrq/kgr/internal/tui/styles"
)

// Run states displayed in the status line.
const (
	RunStateIdle      = "idle"
	RunStateRunning   = "running"
	RunStatePaused    = "paused"
	RunStateCompleted = "completed"
	RunStateAborted   = "aborted"
	RunStateFailed    = "failed"
)

// Responder receives the user's answers to suggestion prompts.
type Responder interface {
	Accept()
	Decline()
	Abort()
}

// Model is the Bubble Tea model for the kgr TUI.
type Model struct {
	// Components
	header   *components.Header
	progress *components.Progress
	spinner  *components.Spinner
	dialog   *components.ReplaceDialog

	// State
	runState  string
	statusMsg string
	lastError string
	startTime time.Time

	// Window dimensions
	width  int
	height int

	// Flags
	quitting bool

	// Answer callback (set by SetResponder)
	responder Responder
}

// New creates a new TUI model.
func New() *Model {
	spinner := components.NewSpinner()
	spinner.SetStatusText("Searching the Knowledge Graph...")
	spinner.Start()
	return &Model{
		header:    components.NewHeader(),
		progress:  components.NewProgress(),
		spinner:   spinner,
		dialog:    components.NewReplaceDialog(),
		runState:  RunStateIdle,
		startTime: time.Now(),
	}
}

// SetRunInfo sets the file and column shown in the header.
func (m *Model) SetRunInfo(fileName, columnName string) {
	m.header.SetFileName(fileName)
	m.header.SetColumnName(columnName)
}

// SetResponder sets the callback for prompt answers.
func (m *Model) SetResponder(r Responder) {
	m.responder = r
}

// RunState returns the current run state.
func (m *Model) RunState() string {
	return m.runState
}

// Init is the Bubble Tea initialization function.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Init(), tickCmd())
}

// tickCmd returns a command that sends a tick message every second.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The dialog captures input while visible.
	if m.dialog.IsVisible() {
		if _, ok := msg.(tea.KeyMsg); ok {
			if cmd := m.dialog.Update(msg); cmd != nil {
				return m, cmd
			}
			return m, nil
		}
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if m.responder != nil {
				m.responder.Abort()
			}
			m.runState = RunStateAborted
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.header.SetWidth(msg.Width)
		m.progress.SetWidth(msg.Width)
		m.spinner.SetWidth(msg.Width)
		m.dialog.SetSize(min(msg.Width-4, 70))
		return m, nil

	case TickMsg:
		return m, tickCmd()

	case RunStateMsg:
		m.runState = msg.State
		m.statusMsg = msg.Message
		return m, nil

	case SuggestionMsg:
		m.dialog.Show(msg.Position+1, msg.Total, msg.From, msg.To)
		m.progress.AddOffered()
		return m, nil

	case ValueProcessedMsg:
		m.progress.SetProgress(msg.Position+1, msg.Total)
		return m, nil

	case ValueSkippedMsg:
		m.progress.SetProgress(msg.Position+1, msg.Total)
		return m, nil

	case BreakerPausedMsg:
		m.runState = RunStatePaused
		m.statusMsg = fmt.Sprintf("Rate limit pause (%s)", msg.Pause)
		return m, nil

	case ErrorMsg:
		m.lastError = msg.Error
		return m, nil

	case QuitMsg:
		m.quitting = true
		return m, tea.Quit

	case components.ReplaceYesMsg:
		if m.responder != nil {
			m.responder.Accept()
		}
		m.progress.AddAccepted()
		return m, nil

	case components.ReplaceNoMsg:
		if m.responder != nil {
			m.responder.Decline()
		}
		return m, nil

	case components.ReplaceAbortMsg:
		if m.responder != nil {
			m.responder.Abort()
		}
		m.runState = RunStateAborted
		m.quitting = true
		return m, tea.Quit
	}

	// Everything else (spinner ticks) goes to the spinner.
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

// View renders the TUI.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.header.View())
	sections = append(sections, m.progress.View())

	if m.dialog.IsVisible() {
		sections = append(sections, m.dialog.View())
	} else if m.runState == RunStateRunning {
		sections = append(sections, m.spinner.View())
	} else if m.statusMsg != "" {
		sections = append(sections, styles.MutedTextStyle.Render(m.statusMsg))
	}

	if m.lastError != "" {
		sections = append(sections, styles.ErrorTextStyle.Render("Error: "+m.lastError))
	}

	sections = append(sections, m.statusBar())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// statusBar renders the keyboard shortcut line.
func (m *Model) statusBar() string {
	shortcuts := fmt.Sprintf("%s accept  %s decline  %s quit",
		styles.KeyStyle.Render("y"),
		styles.KeyStyle.Render("n/enter"),
		styles.KeyStyle.Render("q"),
	)
	bar := styles.StatusBarStyle.Render(shortcuts)
	if m.width > 0 {
		bar = styles.StatusBarStyle.Width(m.width).Render(shortcuts)
	}
	return bar
}
