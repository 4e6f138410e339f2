// Package tui provides the terminal user interface for kgr.
// This file implements the bridge that runs the TUI alongside the engine.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dbmrq/kgr/internal/engine"
	"github.com/dbmrq/kgr/internal/errors"
)

// EventHandler translates engine events to TUI messages.
// It implements the engine.EventHandler signature and sends appropriate
// TUI messages to the Bubble Tea program.
type EventHandler struct {
	program *tea.Program
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(program *tea.Program) *EventHandler {
	return &EventHandler{program: program}
}

// HandleEvent processes an engine event and sends appropriate TUI messages.
// This implements the engine.EventHandler signature.
func (h *EventHandler) HandleEvent(event engine.Event) {
	if h.program == nil {
		return
	}

	switch event.Type {
	case engine.EventRunStarted:
		h.program.Send(RunStateMsg{
			State:   RunStateRunning,
			Message: "Run started",
		})

	case engine.EventRunCompleted:
		h.program.Send(RunStateMsg{
			State:   RunStateCompleted,
			Message: "All values processed",
		})

	case engine.EventRunAborted:
		h.program.Send(RunStateMsg{
			State:   RunStateAborted,
			Message: "Run aborted",
		})

	case engine.EventRunFailed:
		errMsg := ""
		if event.Error != nil {
			errMsg = event.Error.Error()
		}
		h.program.Send(RunStateMsg{
			State:   RunStateFailed,
			Message: errMsg,
		})
		if errMsg != "" {
			h.program.Send(ErrorMsg{Error: errMsg})
		}

	case engine.EventValueProcessed:
		h.program.Send(ValueProcessedMsg{
			Value:    event.Value,
			Position: event.Position,
			Total:    event.Total,
		})

	case engine.EventValueSkipped:
		h.program.Send(ValueSkippedMsg{
			Value:    event.Value,
			Position: event.Position,
			Total:    event.Total,
			Reason:   event.Message,
		})

	case engine.EventBreakerPaused:
		h.program.Send(BreakerPausedMsg{Pause: event.Pause})

	case engine.EventSuggestionOffered:
		// The prompter sends the SuggestionMsg itself so the dialog and
		// the answer channel stay in lockstep.
	}
}

// promptAnswer is a user's answer to a suggestion prompt.
type promptAnswer int

const (
	answerAccept promptAnswer = iota
	answerDecline
	answerAbort
)

// Runner coordinates running the TUI and the engine together.
// It implements engine.Prompter by sending a SuggestionMsg to the program
// and waiting for the answer the dialog produces.
type Runner struct {
	model   *Model
	program *tea.Program
	handler *EventHandler
	answers chan promptAnswer
	cancel  context.CancelFunc
}

// NewRunner creates a new Runner for the given file and column.
func NewRunner(fileName, columnName string) *Runner {
	model := New()
	model.SetRunInfo(fileName, columnName)

	program := tea.NewProgram(model, tea.WithAltScreen())

	r := &Runner{
		model:   model,
		program: program,
		handler: NewEventHandler(program),
		answers: make(chan promptAnswer, 1),
	}
	model.SetResponder(r)
	return r
}

// ConfigureEngine configures engine options with TUI event handling.
func (r *Runner) ConfigureEngine(opts *engine.Options) {
	opts.OnEvent = r.handler.HandleEvent
}

// ConfirmReplace implements engine.Prompter. It shows the suggestion in the
// TUI and blocks until the user answers or the context is cancelled.
func (r *Runner) ConfirmReplace(ctx context.Context, position, total int, from, to string) (bool, error) {
	if r.program == nil {
		return false, errors.RunAborted()
	}

	r.program.Send(SuggestionMsg{
		Position: position,
		Total:    total,
		From:     from,
		To:       to,
	})

	return r.awaitAnswer(ctx)
}

// awaitAnswer blocks until the dialog produces an answer or the context
// is cancelled.
func (r *Runner) awaitAnswer(ctx context.Context) (bool, error) {
	select {
	case answer := <-r.answers:
		switch answer {
		case answerAccept:
			return true, nil
		case answerDecline:
			return false, nil
		default:
			return false, errors.RunAborted()
		}
	case <-ctx.Done():
		return false, errors.RunAborted()
	}
}

// Accept implements Responder.
func (r *Runner) Accept() {
	r.sendAnswer(answerAccept)
}

// Decline implements Responder.
func (r *Runner) Decline() {
	r.sendAnswer(answerDecline)
}

// Abort implements Responder. It also cancels the run context so the
// engine stops even when no prompt is pending.
func (r *Runner) Abort() {
	if r.cancel != nil {
		r.cancel()
	}
	r.sendAnswer(answerAbort)
}

// sendAnswer delivers an answer without blocking the TUI event loop.
func (r *Runner) sendAnswer(a promptAnswer) {
	select {
	case r.answers <- a:
	default:
	}
}

// Run runs the TUI and the engine concurrently. The engine runs in a
// goroutine while the TUI runs on the main thread. The engine receives a
// context that is cancelled when the user aborts from the TUI.
func (r *Runner) Run(ctx context.Context, engineRun func(ctx context.Context) error) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	r.cancel = cancel

	engineDone := make(chan error, 1)

	go func() {
		err := engineRun(runCtx)
		engineDone <- err

		if r.program != nil {
			r.program.Send(QuitMsg{Reason: "Run finished"})
		}
	}()

	_, tuiErr := r.program.Run()

	// The TUI can die without the abort flow firing (killed program,
	// renderer failure), leaving the engine blocked in ConfirmReplace.
	// Cancel the run context so it unwinds, then wait for it so partial
	// results get written.
	cancel()
	engineErr := <-engineDone

	if engineErr != nil {
		return engineErr
	}
	return tuiErr
}

// Program returns the tea.Program for external access.
func (r *Runner) Program() *tea.Program {
	return r.program
}

// Model returns the TUI model for external access.
func (r *Runner) Model() *Model {
	return r.model
}
