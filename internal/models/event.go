package models

import "time"

// Choice is a user's exclusive attendance choice for one event.
type Choice int

const (
	Going Choice = iota
	NotGoing
)

func (c Choice) String() string {
	if c == Going {
		return "going"
	}
	return "notgoing"
}

// Actor identifies the user performing an action.
type Actor struct {
	ID   int64
	Name string
}

// Event is the in-memory record for one tracked RSVP event. Attendance
// fields are mutated only by the engine, under the store's per-event lock.
type Event struct {
	ID           string
	Name         string
	IconGoing    string
	IconNotGoing string
	Open         bool

	// Choices holds at most one entry per user: the current exclusive choice.
	Choices map[int64]Choice
	// Extras holds the additional headcount a user brings; entries are
	// always >= 1, a count driven to zero is deleted.
	Extras map[int64]int
	// Names remembers the display name of every user seen on this event,
	// for rendering the member lines.
	Names map[int64]string

	// ChatID and MessageID locate the rendered message; set once after the
	// first render.
	ChatID    int64
	MessageID int64

	CreatedAt time.Time
	CreatedBy string
	ClosedAt  time.Time
	ClosedBy  string
}

// GoingTotal is |going| plus the sum of all extra headcounts.
func (e *Event) GoingTotal() int {
	total := 0
	for _, c := range e.Choices {
		if c == Going {
			total++
		}
	}
	for _, n := range e.Extras {
		total += n
	}
	return total
}

// NotGoingCount is the number of users who chose "not going".
func (e *Event) NotGoingCount() int {
	count := 0
	for _, c := range e.Choices {
		if c == NotGoing {
			count++
		}
	}
	return count
}

// Clone returns a deep copy. The store hands clones to callers so renders
// and responses never observe a record mid-mutation.
func (e *Event) Clone() *Event {
	cp := *e
	cp.Choices = make(map[int64]Choice, len(e.Choices))
	for k, v := range e.Choices {
		cp.Choices[k] = v
	}
	cp.Extras = make(map[int64]int, len(e.Extras))
	for k, v := range e.Extras {
		cp.Extras[k] = v
	}
	cp.Names = make(map[int64]string, len(e.Names))
	for k, v := range e.Names {
		cp.Names[k] = v
	}
	return &cp
}
