// Package engine provides the interactive replacement run for kgr.
// It walks the unique values of a CSV column, asks the Knowledge Graph for
// suggestions, and collects the replacements the user accepts.
package engine

import (
	"context"
	stderrors "errors"
	"sort"
	"time"

	"github.com/dbmrq/kgr/internal/errors"
	"github.com/dbmrq/kgr/internal/logging"
	"github.com/dbmrq/kgr/internal/text"
)

// EventType identifies the type of engine event.
type EventType string

const (
	EventRunStarted        EventType = "run_started"
	EventRunCompleted      EventType = "run_completed"
	EventRunFailed         EventType = "run_failed"
	EventRunAborted        EventType = "run_aborted"
	EventValueProcessed    EventType = "value_processed"
	EventValueSkipped      EventType = "value_skipped"
	EventSuggestionOffered EventType = "suggestion_offered"
	EventBreakerPaused     EventType = "breaker_paused"
)

// Event represents an engine event for observers (TUI, logging, etc.).
type Event struct {
	Type       EventType
	Value      string
	Suggestion string
	Position   int
	Total      int
	Pause      time.Duration
	Message    string
	Error      error
	Timestamp  time.Time
}

// EventHandler is a callback for engine events.
type EventHandler func(event Event)

// Suggester provides replacement suggestions for a value.
// A suggester returns the value itself when it has nothing better to offer.
type Suggester interface {
	Suggest(ctx context.Context, value string) (string, error)
}

// Prompter asks the user whether to apply a suggested replacement.
// An error (typically ErrAborted) stops the run.
type Prompter interface {
	ConfirmReplace(ctx context.Context, position, total int, from, to string) (bool, error)
}

// Options configures an engine run.
type Options struct {
	// BreakerLimit is the number of consecutive unattended API calls before
	// pausing. Zero disables the breaker.
	BreakerLimit int
	// BreakerPause is how long to pause when the breaker trips.
	BreakerPause time.Duration
	// Unattended marks runs with no human at the prompt. Interactive
	// prompts slow the request rate by themselves and reset the breaker
	// streak; unattended runs keep counting.
	Unattended bool
	// OnEvent is called for each engine event (optional).
	OnEvent EventHandler
	// Sleep is the pause function, injectable for tests. The default
	// sleeps for the given duration or until the context is cancelled.
	Sleep func(ctx context.Context, d time.Duration)
}

// DefaultOptions returns default engine options.
func DefaultOptions() *Options {
	return &Options{
		BreakerLimit: 500,
		BreakerPause: time.Minute,
	}
}

// Result holds everything an engine run collected.
type Result struct {
	// Processed lists the values examined, in processing order.
	Processed []string
	// Replacements maps original values to accepted suggestions.
	Replacements map[string]string
	// Offered counts how many suggestions were presented to the user.
	Offered int
}

// Engine drives the suggestion/confirmation run.
type Engine struct {
	suggester Suggester
	prompter  Prompter
	comparer  *text.Comparer
	opts      *Options
}

// New creates a new Engine.
func New(suggester Suggester, prompter Prompter, opts *Options) *Engine {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.Sleep == nil {
		opts.Sleep = func(ctx context.Context, d time.Duration) {
			select {
			case <-time.After(d):
			case <-ctx.Done():
			}
		}
	}
	return &Engine{
		suggester: suggester,
		prompter:  prompter,
		comparer:  text.NewComparer(),
		opts:      opts,
	}
}

// Run processes the given values in sorted order, skipping empties and
// anything in the ignore set. The returned Result is valid even when an
// error cut the run short; callers can still save what was collected.
func (e *Engine) Run(ctx context.Context, values []string, ignore map[string]struct{}) (*Result, error) {
	sorted := make([]string, len(values))
	copy(sorted, values)
	sort.Strings(sorted)

	result := &Result{
		Processed:    []string{},
		Replacements: map[string]string{},
	}
	total := len(sorted)

	e.emit(Event{Type: EventRunStarted, Total: total})

	// Google rate-limits req/s (undocumented, ~1000). The breaker counts
	// consecutive requests without human interaction and pauses when the
	// streak gets long; a prompt resets it since typing slows us down anyway.
	breaker := 0

	for position, value := range sorted {
		if err := ctx.Err(); err != nil {
			abortErr := errors.RunAborted()
			e.emit(Event{Type: EventRunAborted, Position: position, Total: total, Error: abortErr})
			return result, abortErr
		}

		if value == "" {
			e.emit(Event{Type: EventValueSkipped, Value: value, Position: position, Total: total, Message: "empty value"})
			continue
		}
		if _, ok := ignore[value]; ok {
			result.Processed = append(result.Processed, value)
			e.emit(Event{Type: EventValueSkipped, Value: value, Position: position, Total: total, Message: "ignored"})
			continue
		}

		if e.opts.BreakerLimit > 0 && breaker == e.opts.BreakerLimit {
			logging.Info("hit circuit breaker; pausing", "pause", e.opts.BreakerPause)
			e.emit(Event{Type: EventBreakerPaused, Position: position, Total: total, Pause: e.opts.BreakerPause})
			e.opts.Sleep(ctx, e.opts.BreakerPause)
			if err := ctx.Err(); err != nil {
				abortErr := errors.RunAborted()
				e.emit(Event{Type: EventRunAborted, Position: position, Total: total, Error: abortErr})
				return result, abortErr
			}
			logging.Info("resetting circuit breaker; continuing")
			breaker = 0
		}
		breaker++

		suggestion, err := e.suggester.Suggest(ctx, value)
		if err != nil {
			if stderrors.Is(err, errors.ErrAborted) || stderrors.Is(err, context.Canceled) {
				abortErr := errors.RunAborted()
				e.emit(Event{Type: EventRunAborted, Position: position, Total: total, Error: abortErr})
				return result, abortErr
			}
			logging.Error("suggestion lookup failed", "value", value, "error", err)
			e.emit(Event{Type: EventRunFailed, Value: value, Position: position, Total: total, Error: err})
			return result, err
		}

		if suggestion != "" && !e.comparer.SameNoun(suggestion, value) {
			result.Offered++
			if !e.opts.Unattended {
				breaker = 0
			}

			e.emit(Event{
				Type:       EventSuggestionOffered,
				Value:      value,
				Suggestion: suggestion,
				Position:   position,
				Total:      total,
			})

			accepted, err := e.prompter.ConfirmReplace(ctx, position, total, value, suggestion)
			if err != nil {
				if stderrors.Is(err, errors.ErrAborted) || stderrors.Is(err, context.Canceled) {
					abortErr := errors.RunAborted()
					e.emit(Event{Type: EventRunAborted, Position: position, Total: total, Error: abortErr})
					return result, abortErr
				}
				e.emit(Event{Type: EventRunFailed, Value: value, Position: position, Total: total, Error: err})
				return result, err
			}
			if accepted {
				result.Replacements[value] = suggestion
			}
		}

		result.Processed = append(result.Processed, value)
		e.emit(Event{Type: EventValueProcessed, Value: value, Position: position, Total: total})
	}

	logging.Info("run finished",
		"offered", result.Offered,
		"replacements", len(result.Replacements),
		"processed", len(result.Processed),
	)
	e.emit(Event{Type: EventRunCompleted, Total: total})
	return result, nil
}

// emit sends an event to the event handler if configured.
func (e *Engine) emit(event Event) {
	if e.opts.OnEvent == nil {
		return
	}
	event.Timestamp = time.Now()
	e.opts.OnEvent(event)
}
