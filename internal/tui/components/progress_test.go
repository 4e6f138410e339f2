package components

import (
	"strings"
	"testing"
)

func TestProgressView(t *testing.T) {
	p := NewProgress()
	p.SetWidth(80)
	p.SetProgress(5, 10)
	p.AddOffered()
	p.AddOffered()
	p.AddAccepted()

	view := p.View()
	if !strings.Contains(view, "5/10 values") {
		t.Errorf("view should show the value count, got %q", view)
	}
	if !strings.Contains(view, "2 offered, 1 accepted") {
		t.Errorf("view should show offered/accepted counts, got %q", view)
	}
}

func TestProgressPercentComplete(t *testing.T) {
	p := NewProgress()

	if p.PercentComplete() != 0 {
		t.Error("empty progress should be 0")
	}

	p.SetProgress(1, 4)
	if got := p.PercentComplete(); got != 0.25 {
		t.Errorf("PercentComplete = %v, want 0.25", got)
	}

	if p.IsComplete() {
		t.Error("1/4 should not be complete")
	}
	p.SetProgress(4, 4)
	if !p.IsComplete() {
		t.Error("4/4 should be complete")
	}
}

func TestHeaderView(t *testing.T) {
	h := NewHeader()
	h.SetFileName("data.csv")
	h.SetColumnName("city")

	view := h.View()
	if !strings.Contains(view, "data.csv") {
		t.Error("header should show the file name")
	}
	if !strings.Contains(view, "city") {
		t.Error("header should show the column name")
	}
}
