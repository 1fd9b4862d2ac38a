package model

import (
	"fmt"
)

// EventList is the ordered collection of all stored events.
//
// Insertion order is irrelevant to display (the layout engine re-sorts
// per date) but is preserved here since it breaks sorting ties. ID
// uniqueness is expected but not enforced; update and delete affect the
// first match so a duplicated ID degrades predictably.
type EventList struct {
	Events []*Event
}

// CreateRequest carries the validated fields for a new event.
// The ID for the new event is supplied by the caller.
type CreateRequest struct {
	Title       string
	Date        string
	Start       string
	End         string
	Description string
}

// UpdateRequest carries replacement fields for an existing event.
type UpdateRequest struct {
	ID          string
	Title       string
	Date        string
	Start       string
	End         string
	Description string
}

// Validate checks the mutation-boundary invariants: non-empty title,
// parseable date, parseable times where given, start before end when
// both are present.
func (r CreateRequest) Validate() error {
	return validateEventFields(r.Title, r.Date, r.Start, r.End)
}

// Validate checks the same invariants as CreateRequest.Validate.
func (r UpdateRequest) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("update request without an ID")
	}
	return validateEventFields(r.Title, r.Date, r.Start, r.End)
}

func validateEventFields(title, date, start, end string) error {
	if title == "" {
		return fmt.Errorf("title is required")
	}
	if date == "" {
		return fmt.Errorf("date is required")
	}
	if _, err := FromString(date); err != nil {
		return fmt.Errorf("invalid date: %w", err)
	}
	var startTS, endTS Timestamp
	var err error
	if start != "" {
		startTS, err = ParseTimestamp(start)
		if err != nil {
			return fmt.Errorf("invalid start time: %w", err)
		}
	}
	if end != "" {
		if start == "" {
			return fmt.Errorf("end time given without start time")
		}
		endTS, err = ParseTimestamp(end)
		if err != nil {
			return fmt.Errorf("invalid end time: %w", err)
		}
		if !endTS.IsAfter(startTS) {
			return fmt.Errorf("start time %s must be before end time %s", start, end)
		}
	}
	return nil
}

// Create validates the request and appends a new event under the given
// ID. The ID is opaque to this package; any collision-resistant
// generator will do.
func (l *EventList) Create(r CreateRequest, id string) (*Event, error) {
	if id == "" {
		return nil, fmt.Errorf("no ID supplied for new event")
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	e := &Event{
		ID:          id,
		Title:       r.Title,
		Date:        r.Date,
		Start:       r.Start,
		End:         r.End,
		Description: r.Description,
	}
	l.Events = append(l.Events, e)
	return e, nil
}

// Update validates the request and replaces all fields but the ID on the
// first event with a matching ID.
func (l *EventList) Update(r UpdateRequest) (*Event, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	e := l.GetByID(r.ID)
	if e == nil {
		return nil, fmt.Errorf("no event with ID '%s'", r.ID)
	}
	e.Title = r.Title
	e.Date = r.Date
	e.Start = r.Start
	e.End = r.End
	e.Description = r.Description
	return e, nil
}

// Delete removes the first event with the given ID.
func (l *EventList) Delete(id string) error {
	for i, e := range l.Events {
		if e.ID == id {
			l.Events = append(l.Events[:i], l.Events[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("no event with ID '%s'", id)
}

// GetByID returns the first event with the given ID, or nil.
func (l *EventList) GetByID(id string) *Event {
	for _, e := range l.Events {
		if e.ID == id {
			return e
		}
	}
	return nil
}
