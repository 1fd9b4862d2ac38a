package grid

import (
	"calgrid/internal/model"
)

// Default geometry of the 24-hour column. HourHeight is in
// pixel-equivalent units; a terminal renderer may map them to rows.
const (
	DefaultHourHeight     = 48.0
	DefaultMinEventHeight = 18.0
	defaultDurationMin    = 60
)

// TimeAxis maps times of day onto vertical offsets within a fixed-height
// 24-hour column.
type TimeAxis struct {
	// HourHeight is the visual height of one hour.
	HourHeight float64
	// MinEventHeight is the smallest height any placed event may get, so
	// that very short (or degenerate) events stay visible and clickable.
	MinEventHeight float64
}

// NewTimeAxis returns a TimeAxis with the given hour height and the
// default minimum event height. Non-positive hour heights fall back to
// the default.
func NewTimeAxis(hourHeight float64) TimeAxis {
	if hourHeight <= 0 {
		hourHeight = DefaultHourHeight
	}
	return TimeAxis{HourHeight: hourHeight, MinEventHeight: DefaultMinEventHeight}
}

// YForTime returns the vertical offset of the given time of day.
func (a TimeAxis) YForTime(t model.Timestamp) float64 {
	return float64(t.ToMinutes()) / 60.0 * a.HourHeight
}

// Place computes the vertical offset and height for an event starting at
// start. A nil end means the default 60-minute duration. An end at or
// before start violates the data invariant enforced at the mutation
// boundary; such records may still exist in stored data, so the height
// clamps to MinEventHeight instead of going negative.
func (a TimeAxis) Place(start model.Timestamp, end *model.Timestamp) (top, height float64) {
	top = a.YForTime(start)

	durationMin := defaultDurationMin
	if end != nil {
		durationMin = start.DurationInMinutesUntil(*end)
	}

	height = float64(durationMin) / 60.0 * a.HourHeight
	if height < a.MinEventHeight {
		height = a.MinEventHeight
	}
	return top, height
}
