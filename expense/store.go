/*
store.go - Persistence interface for expense records

PURPOSE:
  Defines the interface between the repository and durable storage. The
  repository owns the authoritative in-memory collection; the store only
  has to hand the whole collection back at startup and accept the whole
  collection on every mutation.

CONTRACT:
  - LoadAll returns records in the order they were persisted, which is the
    repository's insertion order. Tie-break rules depend on that order
    surviving a restart.
  - ReplaceAll swaps the entire persisted collection. It must either fully
    succeed or leave the previous contents readable; the repository reports
    an insert/delete as successful only after ReplaceAll returns nil.
  - A store with an absent or unreadable backing medium yields an empty
    collection on load rather than failing the process.

IMPLEMENTATIONS:
  - store/jsonfile: JSON array file (production default)
  - store/sqlite:   SQLite table
  - expense/store:  In-memory, for tests and the dev backend

SEE ALSO:
  - repository.go: The only caller
*/
package expense

import "context"

// Store handles persistence of the record collection as a whole.
type Store interface {
	// LoadAll returns every persisted record in insertion order.
	LoadAll(ctx context.Context) ([]Record, error)

	// ReplaceAll atomically replaces the persisted collection.
	ReplaceAll(ctx context.Context, records []Record) error
}
