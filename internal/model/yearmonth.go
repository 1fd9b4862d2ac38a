package model

import (
	"fmt"
	"time"
)

// YearMonth identifies a calendar month, e.g. the anchor of a month view.
type YearMonth struct {
	Year  int
	Month int
}

// YearMonthOf returns the month containing the given date.
func YearMonthOf(d Date) YearMonth {
	return YearMonth{Year: d.Year, Month: d.Month}
}

func (ym YearMonth) Prev() YearMonth {
	if ym.Month == 1 {
		return YearMonth{Year: ym.Year - 1, Month: 12}
	}
	return YearMonth{Year: ym.Year, Month: ym.Month - 1}
}

func (ym YearMonth) Next() YearMonth {
	if ym.Month == 12 {
		return YearMonth{Year: ym.Year + 1, Month: 1}
	}
	return YearMonth{Year: ym.Year, Month: ym.Month + 1}
}

// First returns the first date of the month.
func (ym YearMonth) First() Date {
	return Date{Year: ym.Year, Month: ym.Month, Day: 1}
}

// Contains reports whether the given date falls in this month.
func (ym YearMonth) Contains(d Date) bool {
	return d.Year == ym.Year && d.Month == ym.Month
}

func (ym YearMonth) Valid() bool {
	return ym.Month >= 1 && ym.Month <= 12
}

// ToString returns a human-readable label such as "March 2024".
func (ym YearMonth) ToString() string {
	return fmt.Sprintf("%s %d", time.Month(ym.Month).String(), ym.Year)
}

// ToShortString returns an abbreviated label such as "Mar 2024".
func (ym YearMonth) ToShortString() string {
	return fmt.Sprintf("%s %d", time.Month(ym.Month).String()[:3], ym.Year)
}
