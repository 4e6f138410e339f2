package tui

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/dbmrq/kgr/internal/engine"
	"github.com/dbmrq/kgr/internal/errors"
)

func newTestRunner() *Runner {
	r := &Runner{
		answers: make(chan promptAnswer, 1),
	}
	return r
}

func TestAwaitAnswerAccept(t *testing.T) {
	r := newTestRunner()
	r.Accept()

	accepted, err := r.awaitAnswer(context.Background())
	if err != nil {
		t.Fatalf("awaitAnswer() error = %v", err)
	}
	if !accepted {
		t.Error("Accept should yield accepted = true")
	}
}

func TestAwaitAnswerDecline(t *testing.T) {
	r := newTestRunner()
	r.Decline()

	accepted, err := r.awaitAnswer(context.Background())
	if err != nil {
		t.Fatalf("awaitAnswer() error = %v", err)
	}
	if accepted {
		t.Error("Decline should yield accepted = false")
	}
}

func TestAwaitAnswerAbort(t *testing.T) {
	r := newTestRunner()
	r.Abort()

	_, err := r.awaitAnswer(context.Background())
	if !stderrors.Is(err, errors.ErrAborted) {
		t.Errorf("error = %v, want ErrAborted", err)
	}
}

func TestAwaitAnswerCancelledContext(t *testing.T) {
	r := newTestRunner()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.awaitAnswer(ctx)
	if !stderrors.Is(err, errors.ErrAborted) {
		t.Errorf("error = %v, want ErrAborted", err)
	}
}

func TestAbortCancelsRunContext(t *testing.T) {
	r := newTestRunner()
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel

	r.Abort()

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Error("Abort should cancel the run context")
	}
}

func TestRunReturnsWhenProgramDiesWithoutAbort(t *testing.T) {
	r := NewRunner("data.csv", "city")

	engineRun := func(ctx context.Context) error {
		_, err := r.ConfirmReplace(ctx, 0, 1, "Bklyn", "Brooklyn")
		return err
	}

	done := make(chan error, 1)
	go func() {
		done <- r.Run(context.Background(), engineRun)
	}()

	// Let the engine block waiting for an answer, then kill the program
	// without going through the abort flow.
	time.Sleep(100 * time.Millisecond)
	r.Program().Kill()

	select {
	case err := <-done:
		if !stderrors.Is(err, errors.ErrAborted) {
			t.Errorf("Run() error = %v, want ErrAborted", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Run should return once the program dies")
	}
}

func TestSendAnswerDoesNotBlock(t *testing.T) {
	r := newTestRunner()

	// Channel has capacity 1; repeated answers must not hang the TUI loop.
	r.Accept()
	r.Accept()
	r.Decline()
}

func TestConfirmReplaceNilProgram(t *testing.T) {
	r := newTestRunner()

	_, err := r.ConfirmReplace(context.Background(), 0, 1, "a", "b")
	if !stderrors.Is(err, errors.ErrAborted) {
		t.Errorf("error = %v, want ErrAborted", err)
	}
}

func TestEventHandlerNilProgram(t *testing.T) {
	h := NewEventHandler(nil)

	// Must not panic without a program.
	h.HandleEvent(engine.Event{Type: engine.EventRunStarted})
	h.HandleEvent(engine.Event{Type: engine.EventRunFailed, Error: errors.RunAborted()})
}
