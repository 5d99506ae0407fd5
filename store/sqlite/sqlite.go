/*
Package sqlite provides a SQLite-backed implementation of the expense Store
interface.

PURPOSE:
  Alternative backend for deployments that prefer a database file over a
  JSON document. The contract is the same replace-all discipline as the
  JSON store; SQLite adds crash safety and cheap inspection with standard
  tooling.

SCHEMA:
  expenses(pos INTEGER PRIMARY KEY AUTOINCREMENT, ...)
  pos preserves repository insertion order across replace cycles; the
  application-level id lives in its own column.

AMOUNTS:
  Stored as TEXT via decimal's string form so no precision is lost through
  a float column.

REPLACE-ALL:
  ReplaceAll runs DELETE + INSERTs inside one transaction. Either the new
  collection lands completely or the previous one stays.

WAL MODE:
  Opened with WAL for better crash recovery; writers are already serialized
  by the repository.

SEE ALSO:
  - expense/store.go: Interface contract
  - store/jsonfile: JSON-file alternative
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/warp/expense-engine/expense"
)

// Store implements expense.Store over a SQLite database.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// New creates a SQLite store at dbPath. Use ":memory:" for an in-memory
// database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS expenses (
			pos         INTEGER PRIMARY KEY AUTOINCREMENT,
			id          INTEGER NOT NULL,
			amount      TEXT    NOT NULL,
			category    TEXT    NOT NULL,
			description TEXT    NOT NULL,
			date        TEXT    NOT NULL,
			created_at  TEXT    NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_expenses_date ON expenses(date);
	`)
	return err
}

// LoadAll returns every row in insertion order.
func (s *Store) LoadAll(ctx context.Context) ([]expense.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, amount, category, description, date, created_at
		FROM expenses ORDER BY pos`)
	if err != nil {
		return nil, fmt.Errorf("load expenses: %w", err)
	}
	defer rows.Close()

	var out []expense.Record
	for rows.Next() {
		var (
			rec                     expense.Record
			amount, date, createdAt string
			category                string
		)
		if err := rows.Scan(&rec.ID, &amount, &category, &rec.Description, &date, &createdAt); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}

		rec.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("parse amount %q: %w", amount, err)
		}
		rec.Date, err = expense.ParseDate(date)
		if err != nil {
			return nil, fmt.Errorf("parse date %q: %w", date, err)
		}
		rec.Category = expense.Category(category)
		rec.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)

		out = append(out, rec)
	}
	return out, rows.Err()
}

// ReplaceAll swaps the persisted collection inside one transaction.
func (s *Store) ReplaceAll(ctx context.Context, records []expense.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM expenses`); err != nil {
		return fmt.Errorf("clear expenses: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO expenses (id, amount, category, description, date, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		_, err := stmt.ExecContext(ctx,
			r.ID,
			r.Amount.String(),
			string(r.Category),
			r.Description,
			r.Date.String(),
			r.CreatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("insert expense %d: %w", r.ID, err)
		}
	}

	return tx.Commit()
}
