package grid

import (
	"errors"
	"fmt"
	"time"

	"calgrid/internal/model"
)

// Mode selects between the week and the month layout.
type Mode int

const (
	ModeWeek Mode = iota
	ModeMonth
)

func (m Mode) ToString() string {
	switch m {
	case ModeWeek:
		return "week"
	case ModeMonth:
		return "month"
	default:
		return fmt.Sprintf("unknown: %d", int(m))
	}
}

// Navigable years; a guard rather than a real limit, so that a runaway
// navigation cannot push the state somewhere date arithmetic breaks down.
const (
	minYear = 1
	maxYear = 9999
)

// ErrOutOfRange is returned for navigation targets outside the
// representable year range. The state is unchanged when it is returned.
var ErrOutOfRange = errors.New("navigation target outside representable year range")

// ViewState is the navigation state of the calendar: the current mode,
// the anchor of the primary view, and the month shown by the mini
// calendar.
//
// The mini anchor is re-derived from the primary anchor after every
// primary navigation; only its own MiniPrev/MiniNext detach it, until
// the next primary navigation snaps it back.
type ViewState struct {
	Mode Mode

	// FirstDayOfWeek is the weekday on which displayed weeks begin.
	FirstDayOfWeek time.Weekday

	// WeekStart is the first day of the displayed week (week mode).
	WeekStart model.Date

	// MonthAnchor is the displayed month (month mode).
	MonthAnchor model.YearMonth

	// MiniAnchor is the month shown by the mini calendar.
	MiniAnchor model.YearMonth
}

// NewViewState returns a week-mode view showing the week containing
// today, with the mini calendar synchronized.
func NewViewState(today model.Date, firstDayOfWeek time.Weekday) *ViewState {
	s := &ViewState{
		Mode:           ModeWeek,
		FirstDayOfWeek: firstDayOfWeek,
		WeekStart:      today.WeekStart(firstDayOfWeek),
		MonthAnchor:    model.YearMonthOf(today),
	}
	s.syncMiniAnchor()
	return s
}

// ReferenceDay resolves which single day the primary view "belongs to"
// for month attribution. In week mode this is the week's Thursday, which
// disambiguates weeks spanning a month boundary the way ISO week
// numbering does; in month mode it is simply the first of the month.
func (s *ViewState) ReferenceDay() model.Date {
	switch s.Mode {
	case ModeMonth:
		return s.MonthAnchor.First()
	default:
		for _, d := range s.WeekStart.WeekDates() {
			if d.ToWeekday() == time.Thursday {
				return d
			}
		}
		// unreachable: any 7-day window contains a Thursday
		return s.WeekStart
	}
}

func (s *ViewState) syncMiniAnchor() {
	s.MiniAnchor = model.YearMonthOf(s.ReferenceDay())
}

// Prev moves one week back in week mode, one month back in month mode.
func (s *ViewState) Prev() error {
	switch s.Mode {
	case ModeMonth:
		return s.setMonthAnchor(s.MonthAnchor.Prev())
	default:
		return s.setWeekStart(s.WeekStart.Backward(7))
	}
}

// Next moves one week forward in week mode, one month forward in month
// mode.
func (s *ViewState) Next() error {
	switch s.Mode {
	case ModeMonth:
		return s.setMonthAnchor(s.MonthAnchor.Next())
	default:
		return s.setWeekStart(s.WeekStart.Forward(7))
	}
}

// Today re-anchors the primary view on the given current date.
func (s *ViewState) Today(today model.Date) error {
	switch s.Mode {
	case ModeMonth:
		return s.setMonthAnchor(model.YearMonthOf(today))
	default:
		return s.setWeekStart(today.WeekStart(s.FirstDayOfWeek))
	}
}

// ToggleMode switches between week and month mode.
//
// Switching to month mode derives the target month from the reference
// day, not the week's first day, so a week starting in the previous
// month is not misattributed. Switching to week mode shows the week
// containing the first of the displayed month.
func (s *ViewState) ToggleMode() error {
	switch s.Mode {
	case ModeMonth:
		weekStart := s.MonthAnchor.First().WeekStart(s.FirstDayOfWeek)
		if err := checkYear(weekStart.Year); err != nil {
			return err
		}
		s.Mode = ModeWeek
		s.WeekStart = weekStart
		s.syncMiniAnchor()
		return nil
	default:
		anchor := model.YearMonthOf(s.ReferenceDay())
		if err := checkYear(anchor.Year); err != nil {
			return err
		}
		s.Mode = ModeMonth
		s.MonthAnchor = anchor
		s.syncMiniAnchor()
		return nil
	}
}

// JumpToDate re-anchors the primary view to contain the given date, e.g.
// on a click in the mini calendar.
func (s *ViewState) JumpToDate(date model.Date) error {
	if !date.Valid() {
		return fmt.Errorf("cannot jump to invalid date %s", date.ToString())
	}
	switch s.Mode {
	case ModeMonth:
		return s.setMonthAnchor(model.YearMonthOf(date))
	default:
		return s.setWeekStart(date.WeekStart(s.FirstDayOfWeek))
	}
}

// MiniPrev pages the mini calendar one month back without affecting the
// primary view.
func (s *ViewState) MiniPrev() error {
	anchor := s.MiniAnchor.Prev()
	if err := checkYear(anchor.Year); err != nil {
		return err
	}
	s.MiniAnchor = anchor
	return nil
}

// MiniNext pages the mini calendar one month forward without affecting
// the primary view.
func (s *ViewState) MiniNext() error {
	anchor := s.MiniAnchor.Next()
	if err := checkYear(anchor.Year); err != nil {
		return err
	}
	s.MiniAnchor = anchor
	return nil
}

func (s *ViewState) setWeekStart(weekStart model.Date) error {
	if err := checkYear(weekStart.Year); err != nil {
		return err
	}
	s.WeekStart = weekStart
	s.syncMiniAnchor()
	return nil
}

func (s *ViewState) setMonthAnchor(anchor model.YearMonth) error {
	if err := checkYear(anchor.Year); err != nil {
		return err
	}
	s.MonthAnchor = anchor
	s.syncMiniAnchor()
	return nil
}

func checkYear(year int) error {
	if year < minYear || year > maxYear {
		return fmt.Errorf("year %d: %w", year, ErrOutOfRange)
	}
	return nil
}
