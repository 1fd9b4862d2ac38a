package grid

import (
	"fmt"
	"time"

	"calgrid/internal/model"
)

// DefaultColorSlots matches the number of chip colors in the default
// palette.
const DefaultColorSlots = 6

// PlacedEvent is one event with its computed layout within a cell.
type PlacedEvent struct {
	Event *model.Event

	// ColorSlot is the cyclic palette index for this event, derived from
	// its position in its date's sorted event list. It is recomputed on
	// every compose since the neighbor set may have changed.
	ColorSlot int

	// ChipIndex is the order of this event among its cell's chips
	// (month-view chips and the week view's all-day row).
	ChipIndex int

	// Timed marks events placed on the time axis; Top and Height are only
	// meaningful when it is set.
	Timed       bool
	Top, Height float64
}

// Cell is one date cell of the composed grid.
//
// In month mode all of a date's events appear as Chips. In week mode
// all-day events appear as Chips (the all-day row) and timed events are
// placed in Timed with time-axis coordinates.
type Cell struct {
	Date           model.Date
	IsToday        bool
	IsOutsideMonth bool
	InPrimaryWeek  bool

	Chips []PlacedEvent
	Timed []PlacedEvent
}

// MiniCell is one date cell of the mini calendar's month grid.
type MiniCell struct {
	Date           model.Date
	IsToday        bool
	IsOutsideMonth bool
	InPrimaryWeek  bool
	HasEvents      bool
}

// SkippedEvent is a stored record that could not be placed, reported to
// the caller instead of aborting the compose.
type SkippedEvent struct {
	Event  *model.Event
	Reason string
}

// GridDescription is the full renderable description of the primary view
// and the mini calendar. It is plain data; no UI resources are attached.
type GridDescription struct {
	Mode  Mode
	Label string
	Cells []Cell

	MiniLabel string
	MiniCells []MiniCell

	Skipped []SkippedEvent
}

// Composer turns an event collection and a view state into a
// GridDescription.
type Composer struct {
	Axis TimeAxis

	// ColorSlots is the size of the chip color palette the slots cycle
	// through.
	ColorSlots int
}

// NewComposer returns a Composer with the given axis and the default
// palette size.
func NewComposer(axis TimeAxis) Composer {
	return Composer{Axis: axis, ColorSlots: DefaultColorSlots}
}

// Compose computes the grid for the given collection, view state, and
// current date. It never fails; malformed records are excluded from
// placement and reported in the Skipped list. Given identical inputs it
// returns an equal description.
func (c Composer) Compose(events []*model.Event, state *ViewState, today model.Date) GridDescription {
	placeable, skipped := c.splitPlaceable(events)

	desc := GridDescription{
		Mode:    state.Mode,
		Skipped: skipped,
	}

	switch state.Mode {
	case ModeMonth:
		desc.Label = state.MonthAnchor.ToString()
		dates := monthGridDates(state.MonthAnchor, state.FirstDayOfWeek)
		for _, date := range dates {
			cell := Cell{
				Date:           date,
				IsToday:        date == today,
				IsOutsideMonth: !state.MonthAnchor.Contains(date),
			}
			sorted := SortForDisplay(EventsOn(placeable, date.ToString()))
			for i, e := range sorted {
				cell.Chips = append(cell.Chips, PlacedEvent{
					Event:     e,
					ColorSlot: i % c.colorSlots(),
					ChipIndex: i,
				})
			}
			desc.Cells = append(desc.Cells, cell)
		}
	default:
		weekDates := state.WeekStart.WeekDates()
		desc.Label = weekLabel(weekDates)
		for _, date := range weekDates {
			cell := Cell{
				Date:          date,
				IsToday:       date == today,
				InPrimaryWeek: true,
			}
			sorted := SortForDisplay(EventsOn(placeable, date.ToString()))
			chipIndex := 0
			for i, e := range sorted {
				placed := PlacedEvent{
					Event:     e,
					ColorSlot: i % c.colorSlots(),
				}
				if e.AllDay() {
					placed.ChipIndex = chipIndex
					chipIndex++
					cell.Chips = append(cell.Chips, placed)
					continue
				}
				// parse errors were filtered out above
				start, _ := model.ParseTimestamp(e.Start)
				var end *model.Timestamp
				if e.End != "" {
					parsedEnd, _ := model.ParseTimestamp(e.End)
					end = &parsedEnd
				}
				placed.Timed = true
				placed.Top, placed.Height = c.Axis.Place(start, end)
				cell.Timed = append(cell.Timed, placed)
			}
			desc.Cells = append(desc.Cells, cell)
		}
	}

	desc.MiniLabel = state.MiniAnchor.ToString()
	desc.MiniCells = c.composeMini(placeable, state, today)

	return desc
}

// splitPlaceable separates events with parseable dates and times from
// malformed stored records.
func (c Composer) splitPlaceable(events []*model.Event) (placeable []*model.Event, skipped []SkippedEvent) {
	for _, e := range events {
		if _, err := model.FromString(e.Date); err != nil {
			skipped = append(skipped, SkippedEvent{Event: e, Reason: fmt.Sprintf("unparseable date: %s", err)})
			continue
		}
		if e.Start != "" {
			if _, err := model.ParseTimestamp(e.Start); err != nil {
				skipped = append(skipped, SkippedEvent{Event: e, Reason: fmt.Sprintf("unparseable start time: %s", err)})
				continue
			}
		}
		if e.End != "" {
			if _, err := model.ParseTimestamp(e.End); err != nil {
				skipped = append(skipped, SkippedEvent{Event: e, Reason: fmt.Sprintf("unparseable end time: %s", err)})
				continue
			}
		}
		placeable = append(placeable, e)
	}
	return placeable, skipped
}

func (c Composer) composeMini(placeable []*model.Event, state *ViewState, today model.Date) []MiniCell {
	var weekDates []model.Date
	if state.Mode == ModeWeek {
		weekDates = state.WeekStart.WeekDates()
	}

	var cells []MiniCell
	for _, date := range monthGridDates(state.MiniAnchor, state.FirstDayOfWeek) {
		cell := MiniCell{
			Date:           date,
			IsToday:        date == today,
			IsOutsideMonth: !state.MiniAnchor.Contains(date),
			HasEvents:      len(EventsOn(placeable, date.ToString())) > 0,
		}
		for _, wd := range weekDates {
			if wd == date {
				cell.InPrimaryWeek = true
				break
			}
		}
		cells = append(cells, cell)
	}
	return cells
}

func (c Composer) colorSlots() int {
	if c.ColorSlots <= 0 {
		return DefaultColorSlots
	}
	return c.ColorSlots
}

// monthGridDates enumerates the full month grid for the given month:
// leading dates from the prior month back to the week start, all dates
// of the month, and trailing dates from the next month padding the total
// to a multiple of 7.
func monthGridDates(ym model.YearMonth, firstDayOfWeek time.Weekday) []model.Date {
	leading := (int(model.FirstWeekdayOfMonth(ym.Year, ym.Month)) - int(firstDayOfWeek) + 7) % 7
	total := leading + model.DaysInMonth(ym.Year, ym.Month)
	if total%7 != 0 {
		total += 7 - total%7
	}

	date := ym.First().Backward(leading)
	dates := make([]model.Date, total)
	for i := range dates {
		dates[i] = date
		date = date.Next()
	}
	return dates
}

// weekLabel renders the primary label for a week: a single "March 2024"
// when the week lies within one month, "Feb 2024 – Mar 2024" when it
// crosses a month or year boundary.
func weekLabel(weekDates []model.Date) string {
	first := model.YearMonthOf(weekDates[0])
	last := model.YearMonthOf(weekDates[len(weekDates)-1])
	if first == last {
		return first.ToString()
	}
	return fmt.Sprintf("%s – %s", first.ToShortString(), last.ToShortString())
}
