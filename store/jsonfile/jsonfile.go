/*
Package jsonfile provides a JSON-file-backed implementation of the expense
Store interface.

PURPOSE:
  Persists the record collection as a single JSON array. This is the
  production default backend: the dataset has one logical owner at a time
  and fits comfortably in one file.

WIRE FORMAT:
  Each record serializes as
    {"id": 1, "amount": 50.0, "category": "Food & Dining",
     "description": "...", "date": "2024-01-01",
     "timestamp": "2024-01-01T09:30:00Z"}
  Array order is repository insertion order.

TOLERANT LOAD:
  An absent or unparsable file yields an empty collection, not an error.
  Rows with a malformed date are skipped rather than poisoning the load.

ATOMIC WRITE:
  ReplaceAll writes to a temp file in the same directory and renames it over
  the target, so a crash mid-write leaves the previous contents readable.

SEE ALSO:
  - expense/store.go: Interface contract
  - store/sqlite: SQLite-backed alternative
*/
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/warp/expense-engine/expense"
)

// Store implements expense.Store over a single JSON file.
type Store struct {
	path string
}

// New creates a store writing to path. The file is created on first flush.
func New(path string) *Store {
	return &Store{path: path}
}

// record is the on-disk shape of one expense.
type record struct {
	ID          int     `json:"id"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Timestamp   string  `json:"timestamp"`
}

// LoadAll reads the backing file. Absent or unparsable contents load as an
// empty collection.
func (s *Store) LoadAll(_ context.Context) ([]expense.Record, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	var rows []record
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, nil
	}

	var out []expense.Record
	for _, row := range rows {
		date, err := expense.ParseDate(row.Date)
		if err != nil {
			continue
		}
		createdAt, _ := time.Parse(time.RFC3339, row.Timestamp)
		out = append(out, expense.Record{
			ID:          row.ID,
			Amount:      decimal.NewFromFloat(row.Amount),
			Category:    expense.Category(row.Category),
			Description: row.Description,
			Date:        date,
			CreatedAt:   createdAt,
		})
	}
	return out, nil
}

// ReplaceAll writes the whole collection atomically.
func (s *Store) ReplaceAll(_ context.Context, records []expense.Record) error {
	rows := make([]record, len(records))
	for i, r := range records {
		rows[i] = record{
			ID:          r.ID,
			Amount:      r.Amount.InexactFloat64(),
			Category:    string(r.Category),
			Description: r.Description,
			Date:        r.Date.String(),
			Timestamp:   r.CreatedAt.Format(time.RFC3339),
		}
	}

	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("encode expenses: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}
