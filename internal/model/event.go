package model

// Event is a single user-created calendar entry.
//
// Date and time fields are kept in their stored wire format ('YYYY-MM-DD'
// and 'HH:MM' strings); they are parsed at the layout boundary so that a
// corrupt stored record degrades to a skipped placement rather than an
// unloadable collection. An empty Start marks an all-day event; End is
// only meaningful when Start is set.
type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Start       string `json:"startTime,omitempty"`
	End         string `json:"endTime,omitempty"`
	Description string `json:"description,omitempty"`
}

// Clone returns a copy of the event.
func (e *Event) Clone() Event {
	return Event{
		ID:          e.ID,
		Title:       e.Title,
		Date:        e.Date,
		Start:       e.Start,
		End:         e.End,
		Description: e.Description,
	}
}

// AllDay reports whether the event has no start time.
func (e *Event) AllDay() bool {
	return e.Start == ""
}
