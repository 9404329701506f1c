package player

import (
	"testing"

	"github.com/oomph-ac/slide/game"
	"github.com/oomph-ac/slide/slide"
)

func TestSummarize(t *testing.T) {
	records := []Record{
		{Tick: 1, Result: slide.TickResult{State: slide.StateIdle}},
		{Tick: 2, Result: slide.TickResult{State: slide.StateSliding, Started: true, Speed: 6, StaminaSpent: 0.08}},
		{Tick: 3, Result: slide.TickResult{State: slide.StateSliding, Speed: 4}},
		{Tick: 4, Result: slide.TickResult{State: slide.StateCrouching, Ended: true}},
		{Tick: 5, Result: slide.TickResult{State: slide.StateSliding, Started: true, Speed: 2, StaminaSpent: 0.08}},
	}

	s := Summarize(records)
	if s.Ticks != 5 || s.SlidingTicks != 3 || s.Slides != 2 {
		t.Fatalf("unexpected counts: %+v", s)
	}
	if s.MeanSpeed != 4 || s.MedianSpeed != 4 || s.PeakSpeed != 6 {
		t.Fatalf("unexpected speeds: %+v", s)
	}
	if !game.ApproxEq(s.StaminaSpent, 0.16) {
		t.Fatalf("expected 0.16 stamina spent, got %v", s.StaminaSpent)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if s := Summarize(nil); s != (Summary{}) {
		t.Fatalf("expected an empty summary, got %+v", s)
	}
}
