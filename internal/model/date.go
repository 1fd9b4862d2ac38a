package model

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Date is a naive local calendar date.
// Equality and ordering are by calendar value; no underlying timestamp is
// kept, so date arithmetic cannot drift across DST or timezone changes.
type Date struct {
	Year  int
	Month int
	Day   int
}

// DateOf truncates a time.Time to calendar-date granularity.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

func (d Date) Prev() Date {
	if d.Day == 1 {
		if d.Month == 1 {
			d.Year--
			d.Month = 12
			d.Day = 31
		} else {
			d.Month--
			d.Day = DaysInMonth(d.Year, d.Month)
		}
	} else {
		d.Day--
	}
	return d
}

func (d Date) Next() Date {
	if d == d.GetLastOfMonth() {
		d.Day = 1
		if d.Month == 12 {
			d.Month = 1
			d.Year++
		} else {
			d.Month++
		}
	} else {
		d.Day++
	}
	return d
}

func (d Date) Backward(by int) Date {
	for i := 0; i < by; i++ {
		d = d.Prev()
	}
	return d
}

func (d Date) Forward(by int) Date {
	for i := 0; i < by; i++ {
		d = d.Next()
	}
	return d
}

// ToString returns the canonical zero-padded 'YYYY-MM-DD' form of the
// date. This string is the join key against Event.Date, so it is built
// from the integer fields directly, never by formatting a time.Time.
func (d Date) ToString() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (d Date) Valid() bool {
	if d.Month < 1 ||
		d.Month > 12 {
		return false
	}

	if d.Day < 1 ||
		d.Day > d.GetLastOfMonth().Day {
		return false
	}

	return true
}

// FromString parses a 'YYYY-MM-DD' string into a Date.
func FromString(s string) (Date, error) {
	var result Date
	var err error

	regex := regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	parsed := regex.FindAllStringSubmatch(s, -1)

	var tmp Date
	if len(parsed) < 1 || len(parsed[0]) < 3 {
		return result, fmt.Errorf("not enough int matches in date string '%s'", s)
	}

	year, errY := strconv.ParseInt(parsed[0][1], 10, 32)
	month, errM := strconv.ParseInt(parsed[0][2], 10, 32)
	day, errD := strconv.ParseInt(parsed[0][3], 10, 32)
	tmp = Date{int(year), int(month), int(day)}

	switch {
	case errY != nil:
	case errM != nil:
	case errD != nil:
		err = fmt.Errorf("could not convert string '%s' (assuming YYYY-MM-DD format) to integers", s)
	case !tmp.Valid():
		err = fmt.Errorf("date %s (from string '%s') not valid", tmp.ToString(), s)
	default:
		result = tmp
	}
	return result, err
}

func lastDaysOfMonth() map[int]int {
	return map[int]int{
		1:  31,
		2:  28,
		3:  31,
		4:  30,
		5:  31,
		6:  30,
		7:  31,
		8:  31,
		9:  30,
		10: 31,
		11: 30,
		12: 31,
	}
}

// DaysInMonth returns the calendar-correct number of days of the given
// month, accounting for leap years.
func DaysInMonth(year, month int) int {
	if month == 2 && isLeapYear(year) {
		return 29
	}
	return lastDaysOfMonth()[month]
}

func (d Date) GetFirstOfMonth() Date {
	return Date{
		Year:  d.Year,
		Month: d.Month,
		Day:   1,
	}
}

// Whether a date A is after a date B.
func (a Date) IsAfter(b Date) bool {
	switch {
	case a.Year != b.Year:
		return a.Year > b.Year
	case a.Month != b.Month:
		return a.Month > b.Month
	default:
		return a.Day > b.Day
	}
}

// Whether a date A is before a date B.
func (a Date) IsBefore(b Date) bool {
	return b.IsAfter(a) && a != b
}

// GetLastOfMonth returns the last date of the month of the receiver.
func (d Date) GetLastOfMonth() Date {
	return Date{Year: d.Year, Month: d.Month, Day: DaysInMonth(d.Year, d.Month)}
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (!(year%100 == 0) || year%400 == 0)
}

// WeekStart returns the most recent date (possibly the receiver itself)
// whose weekday is the given first day of the week.
func (d Date) WeekStart(firstDay time.Weekday) Date {
	for d.ToWeekday() != firstDay {
		d = d.Prev()
	}
	return d
}

// WeekDates returns the receiver and the six dates following it, i.e. the
// full 7-day window starting at the receiver.
func (d Date) WeekDates() []Date {
	dates := make([]Date, 7)
	for i := range dates {
		dates[i] = d
		d = d.Next()
	}
	return dates
}

// FirstWeekdayOfMonth returns the weekday of the first day of the given
// month.
func FirstWeekdayOfMonth(year, month int) time.Weekday {
	return Date{Year: year, Month: month, Day: 1}.ToWeekday()
}

func (d Date) ToWeekday() time.Weekday {
	t := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
	return t.Weekday()
}

func (d Date) ToGotime() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.Now().Location())
}
