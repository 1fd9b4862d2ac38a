package grid_test

import (
	"reflect"
	"testing"

	"calgrid/internal/grid"
	"calgrid/internal/model"
)

func TestEventsOn(t *testing.T) {
	events := []*model.Event{
		{ID: "a", Title: "A", Date: "2024-03-10"},
		{ID: "b", Title: "B", Date: "2024-03-11"},
		{ID: "c", Title: "C", Date: "2024-03-10"},
	}

	{
		testcase := "matching events in collection order"
		got := grid.EventsOn(events, "2024-03-10")
		if len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
			t.Fatalf("test case '%s' failed: %#v", testcase, got)
		}
	}
	{
		testcase := "no match yields empty"
		if got := grid.EventsOn(events, "2024-03-12"); len(got) != 0 {
			t.Fatalf("test case '%s' failed: %#v", testcase, got)
		}
	}
	{
		testcase := "empty input yields empty"
		if got := grid.EventsOn(nil, "2024-03-10"); len(got) != 0 {
			t.Fatalf("test case '%s' failed: %#v", testcase, got)
		}
	}
}

func TestPartition(t *testing.T) {
	timed := &model.Event{ID: "t", Date: "2024-03-10", Start: "09:00"}
	allDay := &model.Event{ID: "d", Date: "2024-03-10"}

	gotAllDay, gotTimed := grid.Partition([]*model.Event{timed, allDay})
	if !reflect.DeepEqual(gotAllDay, []*model.Event{allDay}) {
		t.Fatalf("wrong all-day partition: %#v", gotAllDay)
	}
	if !reflect.DeepEqual(gotTimed, []*model.Event{timed}) {
		t.Fatalf("wrong timed partition: %#v", gotTimed)
	}
}

func TestSortForDisplay(t *testing.T) {
	{
		testcase := "untimed after timed, ties keep insertion order"

		// inserted E1 (untimed), E2 and E3 (both 09:00); expected order is
		// E2, E3, E1
		e1 := &model.Event{ID: "e1", Date: "2024-03-10"}
		e2 := &model.Event{ID: "e2", Date: "2024-03-10", Start: "09:00"}
		e3 := &model.Event{ID: "e3", Date: "2024-03-10", Start: "09:00"}

		got := grid.SortForDisplay([]*model.Event{e1, e2, e3})
		expected := []*model.Event{e2, e3, e1}
		if !reflect.DeepEqual(got, expected) {
			t.Fatalf("test case '%s' failed: %#v", testcase, got)
		}
	}
	{
		testcase := "timed ascending by start"
		early := &model.Event{ID: "early", Date: "2024-03-10", Start: "08:15"}
		late := &model.Event{ID: "late", Date: "2024-03-10", Start: "17:00"}
		noon := &model.Event{ID: "noon", Date: "2024-03-10", Start: "12:00"}

		got := grid.SortForDisplay([]*model.Event{late, early, noon})
		expected := []*model.Event{early, noon, late}
		if !reflect.DeepEqual(got, expected) {
			t.Fatalf("test case '%s' failed: %#v", testcase, got)
		}
	}
	{
		testcase := "input slice untouched"
		a := &model.Event{ID: "a", Date: "2024-03-10", Start: "10:00"}
		b := &model.Event{ID: "b", Date: "2024-03-10", Start: "09:00"}
		input := []*model.Event{a, b}
		grid.SortForDisplay(input)
		if input[0] != a || input[1] != b {
			t.Fatalf("test case '%s' failed: input was reordered", testcase)
		}
	}
	{
		testcase := "empty input yields empty output"
		if got := grid.SortForDisplay(nil); len(got) != 0 {
			t.Fatalf("test case '%s' failed: %#v", testcase, got)
		}
	}
}
