package grid_test

import (
	"reflect"
	"testing"
	"time"

	"calgrid/internal/grid"
	"calgrid/internal/model"
)

func newTestComposer() grid.Composer {
	return grid.NewComposer(grid.NewTimeAxis(48))
}

func TestComposeMonthGridShape(t *testing.T) {
	composer := newTestComposer()
	today := model.Date{Year: 2024, Month: 3, Day: 13}

	for month := 1; month <= 12; month++ {
		s := grid.NewViewState(model.Date{Year: 2024, Month: month, Day: 10}, time.Sunday)
		s.ToggleMode()
		desc := composer.Compose(nil, s, today)

		if len(desc.Cells)%7 != 0 {
			t.Fatalf("month %d: %d cells is not a multiple of 7", month, len(desc.Cells))
		}
		for i := 1; i < len(desc.Cells); i++ {
			if desc.Cells[i].Date != desc.Cells[i-1].Date.Next() {
				t.Fatalf("month %d: dates not consecutive at index %d", month, i)
			}
		}

		// every date of the month is present, framed by outside-month cells
		inMonth := 0
		for _, cell := range desc.Cells {
			if !cell.IsOutsideMonth {
				inMonth++
				if cell.Date.Month != month {
					t.Fatalf("month %d: cell %s not flagged as outside", month, cell.Date.ToString())
				}
			}
		}
		if inMonth != model.DaysInMonth(2024, month) {
			t.Fatalf("month %d: %d in-month cells", month, inMonth)
		}
	}
}

func TestComposeMonthLeadingCells(t *testing.T) {
	composer := newTestComposer()
	s := grid.NewViewState(model.Date{Year: 2024, Month: 3, Day: 15}, time.Sunday)
	s.ToggleMode()

	desc := composer.Compose(nil, s, model.Date{Year: 2024, Month: 3, Day: 15})

	// March 2024 begins on a Friday, so a Sunday-start grid leads with 5
	// February dates
	if desc.Cells[0].Date != (model.Date{Year: 2024, Month: 2, Day: 25}) {
		t.Fatalf("wrong first cell: %v", desc.Cells[0].Date)
	}
	for i := 0; i < 5; i++ {
		if !desc.Cells[i].IsOutsideMonth {
			t.Fatalf("leading cell %d not flagged as outside month", i)
		}
	}
	if desc.Cells[5].IsOutsideMonth {
		t.Fatalf("March 1st flagged as outside month")
	}
	if desc.Label != "March 2024" {
		t.Fatalf("wrong label: '%s'", desc.Label)
	}
}

func TestComposeWeekScenario(t *testing.T) {
	// the end-to-end scenario: a single timed event on a Sunday
	composer := newTestComposer()
	events := []*model.Event{
		{ID: "a", Date: "2024-03-10", Title: "Standup", Start: "09:00", End: "09:30"},
	}
	s := grid.NewViewState(model.Date{Year: 2024, Month: 3, Day: 10}, time.Sunday)

	desc := composer.Compose(events, s, model.Date{Year: 2024, Month: 3, Day: 13})

	if desc.Mode != grid.ModeWeek || len(desc.Cells) != 7 {
		t.Fatalf("expected a 7-cell week grid, got %d cells", len(desc.Cells))
	}

	sunday := desc.Cells[0]
	if sunday.Date != (model.Date{Year: 2024, Month: 3, Day: 10}) {
		t.Fatalf("wrong first cell: %v", sunday.Date)
	}
	if len(sunday.Timed) != 1 || len(sunday.Chips) != 0 {
		t.Fatalf("event not placed in the Sunday column: %#v", sunday)
	}

	placed := sunday.Timed[0]
	if placed.Event.ID != "a" || !placed.Timed {
		t.Fatalf("wrong placement: %#v", placed)
	}
	if placed.Top != 9*48 {
		t.Fatalf("wrong top offset: %f", placed.Top)
	}
	if placed.Height != 0.5*48 {
		t.Fatalf("wrong height: %f", placed.Height)
	}

	for i := 1; i < 7; i++ {
		if len(desc.Cells[i].Timed) != 0 || len(desc.Cells[i].Chips) != 0 {
			t.Fatalf("event leaked into cell %d", i)
		}
	}

	if !desc.Cells[3].IsToday {
		t.Fatalf("Wednesday the 13th should be flagged as today")
	}
	if desc.Cells[0].IsToday {
		t.Fatalf("Sunday should not be flagged as today")
	}
}

func TestComposeWeekAllDayRow(t *testing.T) {
	composer := newTestComposer()
	events := []*model.Event{
		{ID: "timed", Date: "2024-03-10", Title: "Standup", Start: "09:00"},
		{ID: "allday", Date: "2024-03-10", Title: "Holiday"},
	}
	s := grid.NewViewState(model.Date{Year: 2024, Month: 3, Day: 10}, time.Sunday)

	desc := composer.Compose(events, s, model.Date{Year: 2024, Month: 3, Day: 10})

	sunday := desc.Cells[0]
	if len(sunday.Chips) != 1 || sunday.Chips[0].Event.ID != "allday" {
		t.Fatalf("all-day event not routed to the chip row: %#v", sunday.Chips)
	}
	if len(sunday.Timed) != 1 || sunday.Timed[0].Event.ID != "timed" {
		t.Fatalf("timed event not routed to the column: %#v", sunday.Timed)
	}

	// color slots follow the combined sorted order: timed first, then
	// all-day
	if sunday.Timed[0].ColorSlot != 0 || sunday.Chips[0].ColorSlot != 1 {
		t.Fatalf("wrong color slots: timed %d, all-day %d",
			sunday.Timed[0].ColorSlot, sunday.Chips[0].ColorSlot)
	}
}

func TestComposeMonthChips(t *testing.T) {
	composer := newTestComposer()
	events := []*model.Event{
		{ID: "later", Date: "2024-03-10", Title: "Later", Start: "17:00"},
		{ID: "allday", Date: "2024-03-10", Title: "Holiday"},
		{ID: "early", Date: "2024-03-10", Title: "Early", Start: "08:00"},
	}
	s := grid.NewViewState(model.Date{Year: 2024, Month: 3, Day: 10}, time.Sunday)
	s.ToggleMode()

	desc := composer.Compose(events, s, model.Date{Year: 2024, Month: 3, Day: 10})

	var cell *grid.Cell
	for i := range desc.Cells {
		if desc.Cells[i].Date.ToString() == "2024-03-10" {
			cell = &desc.Cells[i]
			break
		}
	}
	if cell == nil {
		t.Fatalf("date cell not found")
	}

	// month mode renders every event as a chip, timed ones first by start
	if len(cell.Timed) != 0 {
		t.Fatalf("month mode should not place on the time axis")
	}
	if len(cell.Chips) != 3 {
		t.Fatalf("expected 3 chips, got %d", len(cell.Chips))
	}
	expectedOrder := []string{"early", "later", "allday"}
	for i, id := range expectedOrder {
		if cell.Chips[i].Event.ID != id {
			t.Fatalf("wrong chip order: %#v", cell.Chips)
		}
		if cell.Chips[i].ChipIndex != i || cell.Chips[i].ColorSlot != i {
			t.Fatalf("wrong chip layout at %d: %#v", i, cell.Chips[i])
		}
	}
}

func TestComposeColorSlotsCycle(t *testing.T) {
	composer := newTestComposer()

	var events []*model.Event
	for i := 0; i < grid.DefaultColorSlots+2; i++ {
		events = append(events, &model.Event{
			ID:    string(rune('a' + i)),
			Date:  "2024-03-10",
			Title: "Busy",
			Start: "09:00",
		})
	}
	s := grid.NewViewState(model.Date{Year: 2024, Month: 3, Day: 10}, time.Sunday)
	s.ToggleMode()

	desc := composer.Compose(events, s, model.Date{Year: 2024, Month: 3, Day: 10})
	for _, cell := range desc.Cells {
		for _, chip := range cell.Chips {
			if chip.ColorSlot != chip.ChipIndex%grid.DefaultColorSlots {
				t.Fatalf("slot %d does not cycle for chip %d", chip.ColorSlot, chip.ChipIndex)
			}
		}
	}
}

func TestComposeColorSlotsMatchPaletteSize(t *testing.T) {
	composer := newTestComposer()
	composer.ColorSlots = 4

	var events []*model.Event
	for i := 0; i < 8; i++ {
		events = append(events, &model.Event{
			ID:    string(rune('a' + i)),
			Date:  "2024-03-10",
			Title: "Busy",
			Start: "09:00",
		})
	}
	s := grid.NewViewState(model.Date{Year: 2024, Month: 3, Day: 10}, time.Sunday)
	s.ToggleMode()

	desc := composer.Compose(events, s, model.Date{Year: 2024, Month: 3, Day: 10})
	expected := []int{0, 1, 2, 3, 0, 1, 2, 3}
	for _, cell := range desc.Cells {
		if cell.Date != (model.Date{Year: 2024, Month: 3, Day: 10}) {
			continue
		}
		var got []int
		for _, chip := range cell.Chips {
			got = append(got, chip.ColorSlot)
		}
		if !reflect.DeepEqual(got, expected) {
			t.Fatalf("slots %v do not cycle over a 4-color palette", got)
		}
	}
}

func TestComposeIdempotent(t *testing.T) {
	composer := newTestComposer()
	events := []*model.Event{
		{ID: "a", Date: "2024-03-10", Title: "Standup", Start: "09:00", End: "09:30"},
		{ID: "b", Date: "2024-03-12", Title: "Holiday"},
		{ID: "bad", Date: "garbage", Title: "Broken"},
	}
	s := grid.NewViewState(model.Date{Year: 2024, Month: 3, Day: 10}, time.Sunday)
	today := model.Date{Year: 2024, Month: 3, Day: 13}

	first := composer.Compose(events, s, today)
	second := composer.Compose(events, s, today)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("compose is not idempotent for identical inputs")
	}
}

func TestComposeSkipsMalformed(t *testing.T) {
	composer := newTestComposer()
	events := []*model.Event{
		{ID: "ok", Date: "2024-03-10", Title: "Fine", Start: "09:00"},
		{ID: "bad-date", Date: "2024-3-10", Title: "Broken"},
		{ID: "bad-start", Date: "2024-03-10", Title: "Broken", Start: "9am"},
		{ID: "bad-end", Date: "2024-03-10", Title: "Broken", Start: "09:00", End: "later"},
	}
	s := grid.NewViewState(model.Date{Year: 2024, Month: 3, Day: 10}, time.Sunday)

	desc := composer.Compose(events, s, model.Date{Year: 2024, Month: 3, Day: 10})

	if len(desc.Skipped) != 3 {
		t.Fatalf("expected 3 skipped records, got %d", len(desc.Skipped))
	}
	for _, skipped := range desc.Skipped {
		if skipped.Reason == "" {
			t.Fatalf("skipped record without reason: %#v", skipped)
		}
	}

	sunday := desc.Cells[0]
	if len(sunday.Timed) != 1 || sunday.Timed[0].Event.ID != "ok" {
		t.Fatalf("well-formed record not placed: %#v", sunday.Timed)
	}
}

func TestComposeInvertedTimesClamp(t *testing.T) {
	// end before start is a violated invariant in stored data, not a
	// malformed record: it still places, clamped to the minimum height
	composer := newTestComposer()
	events := []*model.Event{
		{ID: "inv", Date: "2024-03-10", Title: "Inverted", Start: "10:00", End: "09:00"},
	}
	s := grid.NewViewState(model.Date{Year: 2024, Month: 3, Day: 10}, time.Sunday)

	desc := composer.Compose(events, s, model.Date{Year: 2024, Month: 3, Day: 10})

	if len(desc.Skipped) != 0 {
		t.Fatalf("inverted times should not be skipped")
	}
	sunday := desc.Cells[0]
	if len(sunday.Timed) != 1 {
		t.Fatalf("inverted event not placed")
	}
	if sunday.Timed[0].Height != composer.Axis.MinEventHeight {
		t.Fatalf("inverted event not clamped: height %f", sunday.Timed[0].Height)
	}
}

func TestComposeDeletionLeavesNeighborsAlone(t *testing.T) {
	composer := newTestComposer()
	s := grid.NewViewState(model.Date{Year: 2024, Month: 3, Day: 10}, time.Sunday)
	today := model.Date{Year: 2024, Month: 3, Day: 10}

	list := model.EventList{}
	list.Create(model.CreateRequest{Title: "Only", Date: "2024-03-11"}, "only")
	list.Create(model.CreateRequest{Title: "A", Date: "2024-03-12", Start: "09:00"}, "a")
	list.Create(model.CreateRequest{Title: "B", Date: "2024-03-12", Start: "10:00"}, "b")

	before := composer.Compose(list.Events, s, today)

	if err := list.Delete("only"); err != nil {
		t.Fatalf("delete failed: %s", err)
	}
	after := composer.Compose(list.Events, s, today)

	if len(after.Cells[1].Chips) != 0 || len(after.Cells[1].Timed) != 0 {
		t.Fatalf("Monday's cell should be empty after deletion")
	}
	if !reflect.DeepEqual(before.Cells[2], after.Cells[2]) {
		t.Fatalf("Tuesday's layout changed although its events did not")
	}
}

func TestComposeMiniCalendar(t *testing.T) {
	{
		testcase := "mini grid highlights the primary week"
		composer := newTestComposer()
		s := grid.NewViewState(model.Date{Year: 2024, Month: 3, Day: 13}, time.Sunday)

		desc := composer.Compose(nil, s, model.Date{Year: 2024, Month: 3, Day: 13})

		if desc.MiniLabel != "March 2024" {
			t.Fatalf("test case '%s' failed: label '%s'", testcase, desc.MiniLabel)
		}
		if len(desc.MiniCells)%7 != 0 {
			t.Fatalf("test case '%s' failed: %d mini cells", testcase, len(desc.MiniCells))
		}
		highlighted := 0
		for _, cell := range desc.MiniCells {
			if cell.InPrimaryWeek {
				highlighted++
				if cell.Date.IsBefore(model.Date{Year: 2024, Month: 3, Day: 10}) ||
					cell.Date.IsAfter(model.Date{Year: 2024, Month: 3, Day: 16}) {
					t.Fatalf("test case '%s' failed: %s highlighted", testcase, cell.Date.ToString())
				}
			}
		}
		if highlighted != 7 {
			t.Fatalf("test case '%s' failed: %d cells highlighted", testcase, highlighted)
		}
	}
	{
		testcase := "event dots"
		composer := newTestComposer()
		s := grid.NewViewState(model.Date{Year: 2024, Month: 3, Day: 13}, time.Sunday)
		events := []*model.Event{{ID: "a", Date: "2024-03-20", Title: "A", Start: "09:00"}}

		desc := composer.Compose(events, s, model.Date{Year: 2024, Month: 3, Day: 13})
		for _, cell := range desc.MiniCells {
			hasEvents := cell.Date.ToString() == "2024-03-20"
			if cell.HasEvents != hasEvents {
				t.Fatalf("test case '%s' failed at %s", testcase, cell.Date.ToString())
			}
		}
	}
	{
		testcase := "detached mini month keeps no week highlight"
		composer := newTestComposer()
		s := grid.NewViewState(model.Date{Year: 2024, Month: 3, Day: 13}, time.Sunday)
		s.MiniNext() // April; primary week is in March

		desc := composer.Compose(nil, s, model.Date{Year: 2024, Month: 3, Day: 13})
		if desc.MiniLabel != "April 2024" {
			t.Fatalf("test case '%s' failed: label '%s'", testcase, desc.MiniLabel)
		}
		for _, cell := range desc.MiniCells {
			if cell.InPrimaryWeek {
				t.Fatalf("test case '%s' failed: %s highlighted", testcase, cell.Date.ToString())
			}
		}
	}
}

func TestWeekLabelMonthCrossing(t *testing.T) {
	composer := newTestComposer()

	{
		testcase := "single-month week"
		s := grid.NewViewState(model.Date{Year: 2024, Month: 3, Day: 13}, time.Sunday)
		desc := composer.Compose(nil, s, model.Date{Year: 2024, Month: 3, Day: 13})
		if desc.Label != "March 2024" {
			t.Fatalf("test case '%s' failed: '%s'", testcase, desc.Label)
		}
	}
	{
		testcase := "month-crossing week"
		s := grid.NewViewState(model.Date{Year: 2024, Month: 6, Day: 30}, time.Sunday)
		desc := composer.Compose(nil, s, model.Date{Year: 2024, Month: 6, Day: 30})
		if desc.Label != "Jun 2024 – Jul 2024" {
			t.Fatalf("test case '%s' failed: '%s'", testcase, desc.Label)
		}
	}
	{
		testcase := "year-crossing week"
		s := grid.NewViewState(model.Date{Year: 2024, Month: 12, Day: 29}, time.Sunday)
		desc := composer.Compose(nil, s, model.Date{Year: 2024, Month: 12, Day: 29})
		if desc.Label != "Dec 2024 – Jan 2025" {
			t.Fatalf("test case '%s' failed: '%s'", testcase, desc.Label)
		}
	}
}
