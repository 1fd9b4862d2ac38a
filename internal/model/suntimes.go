package model

import (
	"time"

	"github.com/nathan-osman/go-sunrise"
)

// SunTimes are the sunrise and sunset times of a day.
type SunTimes struct {
	Rise, Set Timestamp
}

// GetSunTimes computes the sunrise and sunset times for the receiver's
// date at the given coordinates, in the local timezone.
func (d Date) GetSunTimes(latitude, longitude float64) SunTimes {
	riseTime, setTime := sunrise.SunriseSunset(latitude, longitude, d.Year, time.Month(d.Month), d.Day)

	riseTime = riseTime.In(time.Now().Location())
	setTime = setTime.In(time.Now().Location())

	return SunTimes{
		Rise: NewTimestampFromGotime(riseTime),
		Set:  NewTimestampFromGotime(setTime),
	}
}
