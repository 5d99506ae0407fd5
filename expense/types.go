/*
Package expense provides the core expense aggregation and reporting engine.

PURPOSE:
  This package contains the domain types and algorithms for tracking discrete
  monetary transactions and rolling them into time-windowed summaries:
  category and daily breakdowns, per-day averages, highest-expense lookup,
  and trailing monthly trends.

KEY CONCEPTS IN THIS FILE (types.go):
  - Record: A single expense (amount, category, description, calendar date)
  - Category: A closed catalog of labels with a distinguished fallback

DESIGN PRINCIPLES:
  1. Precision: Uses decimal.Decimal to avoid floating-point errors.
     Rounding to 2 places happens only at presentation boundaries.
  2. Determinism: Every derived output defines its ordering and tie-break
     rules explicitly (see summary.go).
  3. Single calendar abstraction: All date handling goes through Date/Period
     in date.go.

SEE ALSO:
  - repository.go: The mutable collection and its store discipline
  - summary.go: Period summary generation
  - trend.go: Trailing monthly totals
*/
package expense

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// CATEGORY - Closed catalog with fallback
// =============================================================================

// Category is one label from the fixed expense catalog.
type Category string

const (
	CategoryFood          Category = "Food & Dining"
	CategoryHousing       Category = "Rent & Housing"
	CategoryTransport     Category = "Transportation"
	CategoryEntertainment Category = "Entertainment"
	CategoryShopping      Category = "Shopping"
	CategoryHealthcare    Category = "Healthcare"
	CategoryUtilities     Category = "Utilities"
	CategoryEducation     Category = "Education"
	CategoryInsurance     Category = "Insurance"
	CategorySavings       Category = "Savings & Investments"

	// CategoryOther is the fallback. Unknown labels coerce to it on insert.
	CategoryOther Category = "Other"
)

var catalog = []Category{
	CategoryFood,
	CategoryHousing,
	CategoryTransport,
	CategoryEntertainment,
	CategoryShopping,
	CategoryHealthcare,
	CategoryUtilities,
	CategoryEducation,
	CategoryInsurance,
	CategorySavings,
	CategoryOther,
}

// Catalog returns every valid category in presentation order.
func Catalog() []Category {
	out := make([]Category, len(catalog))
	copy(out, catalog)
	return out
}

// Valid reports whether c is a member of the catalog.
func (c Category) Valid() bool {
	for _, known := range catalog {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory maps a label onto the catalog. Unknown labels coerce to
// CategoryOther; this is silent by contract, not an error.
func ParseCategory(s string) Category {
	if c := Category(s); c.Valid() {
		return c
	}
	return CategoryOther
}

// decimalFromFloat converts caller-supplied float amounts exactly once, at
// the insert edge. All arithmetic after this point stays in decimal.
func decimalFromFloat(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

// =============================================================================
// RECORD - A single expense
// =============================================================================

// Record is one expense. Records are immutable once inserted; corrections
// are made by deleting and re-adding.
type Record struct {
	// ID is unique within the dataset, assigned at insert time as
	// max existing id + 1 (1 when the collection is empty).
	ID int

	// Amount is always positive; inserts with amount <= 0 are rejected.
	Amount decimal.Decimal

	Category    Category
	Description string

	// Date is when the expense occurred. It may be backdated and is distinct
	// from CreatedAt, the insertion timestamp.
	Date      Date
	CreatedAt time.Time
}
