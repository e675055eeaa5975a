// Package engine holds the attendance transition rules. Apply is the only
// place attendance state changes; it does no I/O and reads the clock only
// to stamp a successful close.
package engine

import (
	"time"

	"github.com/anfield5/tg-event-bot/internal/action"
	"github.com/anfield5/tg-event-bot/internal/models"
)

// Outcome is the typed result of one attempted transition.
type Outcome int

const (
	Applied Outcome = iota
	RejectedClosed
	RejectedAlreadyClosed
	RejectedAlreadyOpen
	RejectedDuplicateChoice
	RejectedNothingToSubtract
)

// OK reports whether the transition was applied.
func (o Outcome) OK() bool {
	return o == Applied
}

// Notice is the short text shown to the actor when a transition is
// rejected. Empty for Applied.
func (o Outcome) Notice() string {
	switch o {
	case RejectedClosed:
		return "Event is closed"
	case RejectedAlreadyClosed:
		return "Event is already closed"
	case RejectedAlreadyOpen:
		return "Event is already open"
	case RejectedDuplicateChoice:
		return "You already made that choice"
	case RejectedNothingToSubtract:
		return "Nothing to subtract"
	}
	return ""
}

// Engine applies attendance transitions to a record. The clock is injected
// so tests can pin close timestamps.
type Engine struct {
	now func() time.Time
}

func New() *Engine {
	return &Engine{now: time.Now}
}

// NewWithClock is used by tests.
func NewWithClock(now func() time.Time) *Engine {
	return &Engine{now: now}
}

// Apply performs one transition on e. The caller must hold the record's
// lock. The record is modified only when the returned Outcome is Applied.
func (eng *Engine) Apply(e *models.Event, kind action.Kind, actor models.Actor) Outcome {
	switch kind {
	case action.Going:
		return mark(e, actor, models.Going)
	case action.NotGoing:
		return mark(e, actor, models.NotGoing)
	case action.Increment:
		if !e.Open {
			return RejectedClosed
		}
		e.Extras[actor.ID]++
		e.Names[actor.ID] = actor.Name
		return Applied
	case action.Decrement:
		if !e.Open {
			return RejectedClosed
		}
		n, exists := e.Extras[actor.ID]
		if !exists {
			return RejectedNothingToSubtract
		}
		if n == 1 {
			delete(e.Extras, actor.ID)
		} else {
			e.Extras[actor.ID] = n - 1
		}
		e.Names[actor.ID] = actor.Name
		return Applied
	case action.Close:
		if !e.Open {
			return RejectedAlreadyClosed
		}
		e.Open = false
		e.ClosedAt = eng.now()
		e.ClosedBy = actor.Name
		return Applied
	case action.Open:
		if e.Open {
			return RejectedAlreadyOpen
		}
		e.Open = true
		return Applied
	}

	// Unknown kinds are filtered at the boundary; reaching here is a
	// programmer error, but rejecting is safer than panicking.
	return RejectedClosed
}

func mark(e *models.Event, actor models.Actor, choice models.Choice) Outcome {
	if !e.Open {
		return RejectedClosed
	}
	if current, exists := e.Choices[actor.ID]; exists && current == choice {
		return RejectedDuplicateChoice
	}

	// Choosing one side removes the other: the map holds at most one
	// entry per user.
	e.Choices[actor.ID] = choice
	e.Names[actor.ID] = actor.Name

	return Applied
}

// Rename updates presentation fields only; it never touches attendance
// state and is never rejected. Empty arguments keep the current value.
func (eng *Engine) Rename(e *models.Event, name, iconGoing, iconNotGoing string) {
	if name != "" {
		e.Name = name
	}
	if iconGoing != "" {
		e.IconGoing = iconGoing
	}
	if iconNotGoing != "" {
		e.IconNotGoing = iconNotGoing
	}
}
