package cli

import (
	"testing"

	"calgrid/internal/grid"
	"calgrid/internal/model"
)

func TestChipLine(t *testing.T) {
	{
		testcase := "a timed chip shows its start time"

		chip := grid.PlacedEvent{Event: &model.Event{Title: "Standup", Date: "2024-03-11", Start: "09:00", End: "09:30"}}
		expected := "    09:00        Standup"
		if got := chipLine(chip); got != expected {
			t.Fatalf("%s: got %q", testcase, got)
		}
	}
	{
		testcase := "an all-day chip is marked as such"

		chip := grid.PlacedEvent{Event: &model.Event{Title: "Conference", Date: "2024-03-11"}}
		expected := "    all-day      Conference"
		if got := chipLine(chip); got != expected {
			t.Fatalf("%s: got %q", testcase, got)
		}
	}
}
