// Package recon mirrors event facts to the durable ledger, out of band.
// Writes are enqueued without blocking and performed by one background
// worker; a failed write is logged and abandoned, it never rolls back the
// in-memory state that was already applied and rendered.
package recon

import (
	"log/slog"
	"time"

	"github.com/anfield5/tg-event-bot/internal/lib/logger/sl"
	"github.com/anfield5/tg-event-bot/internal/models"
)

// Ledger is the durable row store. All calls are synchronous and may fail.
type Ledger interface {
	InsertEvent(id, name string, createdAt time.Time, creator string) error
	UpdateEventName(id, name string) error
	CloseEvent(id string, goingTotal, notGoingCount int, closedAt time.Time, closedBy string) error
	InsertAction(id string, ts time.Time, actorName string, actorID int64, actionKind string) error
}

type job struct {
	op    string
	write func() error
}

type Syncer struct {
	log    *slog.Logger
	ledger Ledger
	queue  chan job
	done   chan struct{}
}

func New(log *slog.Logger, ledger Ledger, queueSize int) *Syncer {
	return &Syncer{
		log:    log,
		ledger: ledger,
		queue:  make(chan job, queueSize),
		done:   make(chan struct{}),
	}
}

// Start launches the worker goroutine. It drains the queue until Stop.
func (s *Syncer) Start() {
	go func() {
		defer close(s.done)

		for j := range s.queue {
			if err := j.write(); err != nil {
				s.log.Error("ledger write failed",
					slog.String("op", j.op),
					sl.Err(err),
				)
			}
		}
	}()
}

// Stop closes the queue and waits for queued writes to finish.
func (s *Syncer) Stop() {
	close(s.queue)
	<-s.done
}

func (s *Syncer) enqueue(op string, write func() error) {
	select {
	case s.queue <- job{op: op, write: write}:
	default:
		s.log.Warn("ledger queue full, dropping write", slog.String("op", op))
	}
}

// RecordCreated appends the event row.
func (s *Syncer) RecordCreated(ev *models.Event) {
	id, name, createdAt, creator := ev.ID, ev.Name, ev.CreatedAt, ev.CreatedBy
	s.enqueue("insert event", func() error {
		return s.ledger.InsertEvent(id, name, createdAt, creator)
	})
}

// RecordRenamed mirrors a rename into the event row's name column.
func (s *Syncer) RecordRenamed(id, name string) {
	s.enqueue("update event name", func() error {
		return s.ledger.UpdateEventName(id, name)
	})
}

// RecordClosed writes the final counts and close metadata. Single-fire is
// guaranteed upstream by the store's per-event lock plus the engine's
// AlreadyClosed rejection; no idempotency check here.
func (s *Syncer) RecordClosed(ev *models.Event) {
	id := ev.ID
	goingTotal, notGoing := ev.GoingTotal(), ev.NotGoingCount()
	closedAt, closedBy := ev.ClosedAt, ev.ClosedBy
	s.enqueue("close event", func() error {
		return s.ledger.CloseEvent(id, goingTotal, notGoing, closedAt, closedBy)
	})
}

// RecordAction appends one audit row for an accepted mutation.
func (s *Syncer) RecordAction(id string, actor models.Actor, actionKind string) {
	ts := time.Now()
	s.enqueue("insert action", func() error {
		return s.ledger.InsertAction(id, ts, actor.Name, actor.ID, actionKind)
	})
}
