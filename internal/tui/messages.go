// Package tui provides the terminal user interface for kgr.
package tui

import "time"

// Message types for TUI state updates.
// These are sent to the TUI to trigger updates.

// RunStateMsg reports the current run state.
type RunStateMsg struct {
	State   string // idle, running, paused, completed, aborted, failed
	Message string
}

// SuggestionMsg is sent when a replacement suggestion needs confirmation.
type SuggestionMsg struct {
	Position int
	Total    int
	From     string
	To       string
}

// ValueProcessedMsg is sent when a value finished processing.
type ValueProcessedMsg struct {
	Value    string
	Position int
	Total    int
}

// ValueSkippedMsg is sent when a value was skipped.
type ValueSkippedMsg struct {
	Value    string
	Position int
	Total    int
	Reason   string
}

// BreakerPausedMsg is sent when the rate-limit breaker trips.
type BreakerPausedMsg struct {
	Pause time.Duration
}

// ErrorMsg is sent when an error occurs.
type ErrorMsg struct {
	Error string
}

// QuitMsg signals the TUI should quit.
type QuitMsg struct {
	Reason string
}

// TickMsg is sent periodically for time-based updates.
type TickMsg struct {
	Time time.Time
}
