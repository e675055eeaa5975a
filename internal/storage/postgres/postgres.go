// Package postgres is the durable ledger behind the reconciliation sync:
// one events row per tracked event plus an append-only action log.
package postgres

import (
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"github.com/anfield5/tg-event-bot/internal/config"

	_ "github.com/lib/pq"
)

//go:embed schema.sql
var schemaSQL string

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	storage := &Storage{DB: db}

	if err = storage.ensureSchema(); err != nil {
		return nil, err
	}

	return storage, nil
}

// ensureSchema applies schema.sql; safe to run repeatedly.
func (s *Storage) ensureSchema() error {
	if _, err := s.DB.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

// InsertEvent appends the row for a newly created event. The close columns
// stay NULL until CloseEvent fills them.
func (s *Storage) InsertEvent(id, name string, createdAt time.Time, creator string) error {
	query := `
		INSERT INTO events (event_id, name, created_at, created_by)
		VALUES ($1, $2, $3, $4)`

	_, err := s.DB.Exec(query, id, name, createdAt, creator)
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}

	return nil
}

// UpdateEventName rewrites the name column of the event's row.
func (s *Storage) UpdateEventName(id, name string) error {
	query := `
		UPDATE events
		SET name = $2
		WHERE event_id = $1`

	result, err := s.DB.Exec(query, id, name)
	if err != nil {
		return fmt.Errorf("failed to update event name: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("event row not found: %s", id)
	}

	return nil
}

// CloseEvent fills the final counts and close metadata of the event's row.
func (s *Storage) CloseEvent(id string, goingTotal, notGoingCount int, closedAt time.Time, closedBy string) error {
	query := `
		UPDATE events
		SET going_total = $2, not_going = $3, closed_at = $4, closed_by = $5
		WHERE event_id = $1`

	result, err := s.DB.Exec(query, id, goingTotal, notGoingCount, closedAt, closedBy)
	if err != nil {
		return fmt.Errorf("failed to close event: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("event row not found: %s", id)
	}

	return nil
}

// InsertAction appends one row to the append-only action log.
func (s *Storage) InsertAction(id string, ts time.Time, actorName string, actorID int64, actionKind string) error {
	query := `
		INSERT INTO event_actions (event_id, ts, actor_name, actor_id, action)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := s.DB.Exec(query, id, ts, actorName, actorID, actionKind)
	if err != nil {
		return fmt.Errorf("failed to insert action: %w", err)
	}

	return nil
}
