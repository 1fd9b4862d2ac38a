// Package grid computes renderable week and month grid layouts from a
// flat event collection and a navigation state. It is pure: no I/O, no
// clock reads, no logging; "today" is always passed in by the caller.
package grid

import (
	"sort"

	"calgrid/internal/model"
)

// EventsOn returns the subset of events whose date matches the given
// 'YYYY-MM-DD' key, in collection order.
func EventsOn(events []*model.Event, dateKey string) []*model.Event {
	var result []*model.Event
	for _, e := range events {
		if e.Date == dateKey {
			result = append(result, e)
		}
	}
	return result
}

// Partition splits events into all-day events (no start time) and timed
// events, each in input order.
func Partition(events []*model.Event) (allDay, timed []*model.Event) {
	for _, e := range events {
		if e.AllDay() {
			allDay = append(allDay, e)
		} else {
			timed = append(timed, e)
		}
	}
	return allDay, timed
}

// SortForDisplay orders events for presentation within one date: timed
// events ascending by start time, all-day events after all timed ones.
// The sort is stable; ties keep their collection order, which downstream
// determines color cycling and stacking order.
//
// Start times are compared as strings, which for zero-padded 'HH:MM'
// values is equivalent to numeric comparison.
func SortForDisplay(events []*model.Event) []*model.Event {
	sorted := make([]*model.Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		switch {
		case a.AllDay() && b.AllDay():
			return false
		case a.AllDay():
			return false
		case b.AllDay():
			return true
		default:
			return a.Start < b.Start
		}
	})
	return sorted
}
