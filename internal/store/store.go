// Package store owns the in-memory table of event records. The map has a
// coarse guard for insert/lookup; every record carries its own lock so
// concurrent actions on the same event are linearized while actions on
// different events never block each other. Locks are never held across I/O.
package store

import (
	"errors"
	"sync"
	"time"

	"github.com/anfield5/tg-event-bot/internal/action"
	"github.com/anfield5/tg-event-bot/internal/engine"
	"github.com/anfield5/tg-event-bot/internal/lib/eventid"
	"github.com/anfield5/tg-event-bot/internal/models"
)

// ErrEventNotFound is returned for identifiers that are not tracked
// (process restarted, or fabricated callback data).
var ErrEventNotFound = errors.New("event not found")

type entry struct {
	mu sync.Mutex
	ev *models.Event
}

type Store struct {
	eng *engine.Engine

	mu     sync.RWMutex
	events map[string]*entry
}

func New(eng *engine.Engine) *Store {
	return &Store{
		eng:    eng,
		events: make(map[string]*entry),
	}
}

// Create allocates a fresh open record and returns its snapshot; the new
// identifier rides on the snapshot.
func (s *Store) Create(name, iconGoing, iconNotGoing string, creator models.Actor) *models.Event {
	ev := &models.Event{
		ID:           eventid.New(),
		Name:         name,
		IconGoing:    iconGoing,
		IconNotGoing: iconNotGoing,
		Open:         true,
		Choices:      make(map[int64]models.Choice),
		Extras:       make(map[int64]int),
		Names:        make(map[int64]string),
		CreatedAt:    time.Now(),
		CreatedBy:    creator.Name,
	}

	s.mu.Lock()
	s.events[ev.ID] = &entry{ev: ev}
	s.mu.Unlock()

	return ev.Clone()
}

func (s *Store) lookup(id string) (*entry, error) {
	s.mu.RLock()
	e, exists := s.events[id]
	s.mu.RUnlock()

	if !exists {
		return nil, ErrEventNotFound
	}
	return e, nil
}

// Get returns a snapshot of one record.
func (s *Store) Get(id string) (*models.Event, error) {
	e, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ev.Clone(), nil
}

// List returns snapshots of all tracked records.
func (s *Store) List() []*models.Event {
	s.mu.RLock()
	entries := make([]*entry, 0, len(s.events))
	for _, e := range s.events {
		entries = append(entries, e)
	}
	s.mu.RUnlock()

	events := make([]*models.Event, 0, len(entries))
	for _, e := range entries {
		e.mu.Lock()
		events = append(events, e.ev.Clone())
		e.mu.Unlock()
	}
	return events
}

// Mutate applies one engine transition under the record's lock. Decision
// and write share one critical section, so the second of two concurrent
// mutations always sees the effects of the first. The snapshot is taken
// before the lock is released: the caller renders exactly the state its
// own mutation produced, never a staler or newer one.
func (s *Store) Mutate(id string, kind action.Kind, actor models.Actor) (*models.Event, engine.Outcome, error) {
	e, err := s.lookup(id)
	if err != nil {
		return nil, 0, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	outcome := s.eng.Apply(e.ev, kind, actor)
	return e.ev.Clone(), outcome, nil
}

// Rename updates presentation fields, serialized per event like any other
// mutation. Empty arguments keep the current value.
func (s *Store) Rename(id, name, iconGoing, iconNotGoing string) (*models.Event, error) {
	e, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	s.eng.Rename(e.ev, name, iconGoing, iconNotGoing)
	return e.ev.Clone(), nil
}

// SetOrigin records where the event is rendered. Write-once: later calls
// are ignored.
func (s *Store) SetOrigin(id string, chatID, messageID int64) error {
	e, err := s.lookup(id)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.ev.MessageID == 0 {
		e.ev.ChatID = chatID
		e.ev.MessageID = messageID
	}
	return nil
}
