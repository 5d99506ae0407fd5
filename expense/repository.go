/*
repository.go - The authoritative expense collection

PURPOSE:
  Holds the in-memory record collection, validates and applies mutations,
  and mirrors every change to the injected Store before reporting success.
  All reporting entry points (summaries, range queries, category totals,
  trend) hang off the repository so they observe a consistent snapshot.

ORDERING:
  The collection is append-ordered. That insertion order is the tie-break
  order for highest-expense lookups and the stable baseline for every sort,
  so nothing here ever reorders the backing slice in place.

CONCURRENCY:
  A single RWMutex serializes writers; readers copy the collection out under
  RLock and compute on the snapshot. The store flush happens inside the
  write lock so a successful mutation and its persisted state cannot be
  observed out of order.

FLUSH DISCIPLINE:
  ReplaceAll is called with a candidate collection; the in-memory state is
  committed only after the flush succeeds. A failed flush therefore leaves
  both memory and disk at the previous state.

SEE ALSO:
  - store.go: The persistence contract
  - summary.go: Summary generation invoked from here
*/
package expense

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// trendMonthsBack is the trailing window of the default trend series: the
// current month plus five before it.
const trendMonthsBack = 5

// Repository owns the authoritative record collection.
type Repository struct {
	mu      sync.RWMutex
	store   Store
	records []Record

	now func() time.Time
	log *slog.Logger
}

// Option configures a Repository.
type Option func(*Repository)

// WithClock overrides the time source. Weekly/monthly summaries and the
// trend series are computed relative to this clock, so tests can pin "now".
func WithClock(now func() time.Time) Option {
	return func(r *Repository) { r.now = now }
}

// WithLogger overrides the default slog logger.
func WithLogger(log *slog.Logger) Option {
	return func(r *Repository) { r.log = log }
}

// Open builds a repository over the store and loads the persisted
// collection. A load failure degrades to an empty collection rather than
// refusing to start; the failure is logged, not returned.
func Open(ctx context.Context, store Store, opts ...Option) *Repository {
	r := &Repository{
		store: store,
		now:   time.Now,
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}

	records, err := store.LoadAll(ctx)
	if err != nil {
		r.log.Warn("store load failed, starting with empty collection",
			"component", "repository", "error", err)
		records = nil
	}
	r.records = records
	return r
}

// =============================================================================
// MUTATIONS
// =============================================================================

// AddInput carries the caller-supplied fields of a new expense.
type AddInput struct {
	Amount      float64
	Category    string
	Description string

	// Date is an optional "YYYY-MM-DD"; empty means today.
	Date string
}

// Add validates and inserts a new expense, flushing to the store before
// returning it. Fails with ErrNonPositiveAmount, ErrBadDate or
// ErrStoreUnavailable; on any failure the collection is unchanged.
func (r *Repository) Add(ctx context.Context, in AddInput) (Record, error) {
	if in.Amount <= 0 {
		return Record{}, ErrNonPositiveAmount
	}

	date := DateOf(r.now())
	if in.Date != "" {
		parsed, err := ParseDate(in.Date)
		if err != nil {
			return Record{}, err
		}
		date = parsed
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rec := Record{
		ID:          r.nextIDLocked(),
		Amount:      decimalFromFloat(in.Amount),
		Category:    ParseCategory(in.Category),
		Description: in.Description,
		Date:        date,
		CreatedAt:   r.now(),
	}

	next := make([]Record, 0, len(r.records)+1)
	next = append(next, r.records...)
	next = append(next, rec)

	if err := r.store.ReplaceAll(ctx, next); err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	r.records = next
	return rec, nil
}

// Delete removes the first record with the given id. It returns false when
// the id does not exist; the error is non-nil only when the store flush
// fails, in which case the record stays.
func (r *Repository) Delete(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	at := -1
	for i, rec := range r.records {
		if rec.ID == id {
			at = i
			break
		}
	}
	if at < 0 {
		return false, nil
	}

	next := make([]Record, 0, len(r.records)-1)
	next = append(next, r.records[:at]...)
	next = append(next, r.records[at+1:]...)

	if err := r.store.ReplaceAll(ctx, next); err != nil {
		return false, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	r.records = next
	return true, nil
}

// nextIDLocked assigns max existing id + 1, or 1 for an empty collection.
// Unlike a count-based scheme, deleting from the middle of the collection
// cannot make two live records collide.
func (r *Repository) nextIDLocked() int {
	next := 1
	for _, rec := range r.records {
		if rec.ID >= next {
			next = rec.ID + 1
		}
	}
	return next
}

// =============================================================================
// READS
// =============================================================================

// All returns every record sorted by date, newest first. Same-day records
// keep insertion order.
func (r *Repository) All() []Record {
	return SortByDateDesc(r.snapshot())
}

// Recent returns the first n records of the date-descending listing.
func (r *Repository) Recent(n int) []Record {
	all := r.All()
	if n < len(all) {
		all = all[:n]
	}
	return all
}

// Len returns the current collection size.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}

// ByRange returns the records dated within [start, end] inclusive, in
// insertion order. Fails with ErrBadDate on a malformed bound.
func (r *Repository) ByRange(start, end string) ([]Record, error) {
	return FilterByRange(r.snapshot(), start, end)
}

// CategoryTotals sums amounts per category over the full collection.
func (r *Repository) CategoryTotals() Breakdown {
	return AggregateByCategory(r.snapshot())
}

// WeeklySummary reports on the Monday-through-Sunday week containing today.
func (r *Repository) WeeklySummary() Summary {
	return r.summarize(WeekOf(r.today()))
}

// MonthlySummary reports on the current calendar month.
func (r *Repository) MonthlySummary() Summary {
	return r.summarize(MonthOf(r.today()))
}

// RangeSummary reports on a caller-supplied inclusive interval.
func (r *Repository) RangeSummary(start, end string) (Summary, error) {
	p, err := ParseRange("Custom", start, end)
	if err != nil {
		return Summary{}, err
	}
	return r.summarize(p), nil
}

// Trend returns the default trailing six-month trend series, oldest first.
func (r *Repository) Trend() []TrendPoint {
	return MonthlyTrend(r.snapshot(), r.today(), trendMonthsBack)
}

func (r *Repository) summarize(p Period) Summary {
	return GenerateSummary(FilterByPeriod(r.snapshot(), p), p)
}

// snapshot copies the collection out under the read lock so reporting code
// never observes a mid-mutation state.
func (r *Repository) snapshot() []Record {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out
}

func (r *Repository) today() Date {
	return DateOf(r.now())
}
