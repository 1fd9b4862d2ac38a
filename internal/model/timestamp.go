package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Timestamp is a time of day with minute granularity.
type Timestamp struct {
	Hour, Minute int
}

func NewTimestampFromGotime(t time.Time) Timestamp {
	return Timestamp{Hour: t.Hour(), Minute: t.Minute()}
}

// ParseTimestamp parses an 'HH:MM' string into a Timestamp.
// Stored event data is outside this program's control, so a malformed
// string yields an error for the caller to handle, never a crash.
func ParseTimestamp(s string) (Timestamp, error) {
	components := strings.Split(s, ":")
	if len(components) != 2 {
		return Timestamp{}, fmt.Errorf("given string '%s' does not fit the HH:MM format", s)
	}
	hStr := components[0]
	mStr := components[1]
	if len(hStr) != 2 || len(mStr) != 2 {
		return Timestamp{}, fmt.Errorf("given string '%s' does not fit the HH:MM format", s)
	}
	h, err := strconv.Atoi(hStr)
	if err != nil {
		return Timestamp{}, fmt.Errorf("error converting hour string '%s' to a number", hStr)
	}
	m, err := strconv.Atoi(mStr)
	if err != nil {
		return Timestamp{}, fmt.Errorf("error converting minute string '%s' to a number", mStr)
	}
	result := Timestamp{Hour: h, Minute: m}
	if !result.Legal() {
		return Timestamp{}, fmt.Errorf("timestamp from string '%s' out of range", s)
	}
	return result, nil
}

func (a Timestamp) ToString() string {
	return fmt.Sprintf("%02d:%02d", a.Hour, a.Minute)
}

func (a Timestamp) IsBefore(b Timestamp) bool {
	if b.Hour > a.Hour {
		return true
	} else if b.Hour == a.Hour {
		return b.Minute > a.Minute
	} else {
		return false
	}
}

func (a Timestamp) IsAfter(b Timestamp) bool {
	if a.Hour > b.Hour {
		return true
	} else if a.Hour == b.Hour {
		return a.Minute > b.Minute
	} else {
		return false
	}
}

func (t Timestamp) Legal() bool {
	return (t.Hour < 24 && t.Minute < 60) && (t.Hour >= 0 && t.Minute >= 0)
}

// Returns the duration in minutes until a given timestamp t2.
// Does not check that t2 is in fact later!
func (t1 Timestamp) DurationInMinutesUntil(t2 Timestamp) int {
	return t2.ToMinutes() - t1.ToMinutes()
}

// ToMinutes returns the number of minutes into the day (from 00:00) that
// this timestamp is.
func (t Timestamp) ToMinutes() int {
	return t.Hour*60 + t.Minute
}
