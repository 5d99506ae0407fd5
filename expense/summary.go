/*
summary.go - Period summary generation

PURPOSE:
  Rolls a filtered record set into a Summary: exact total, category and
  daily breakdowns, per-day average over the period length, the highest
  single expense, and a date-sorted record list.

ORDERING GUARANTEES (load-bearing, covered by tests):
  - CategoryBreakdown is sorted by amount descending; ties keep the
    aggregator's first-occurrence order (stable sort).
  - HighestExpense is found by a linear scan over the records IN THE ORDER
    THEY WERE PASSED IN - repository insertion order on the repository
    paths - NOT over the date-sorted Expenses list. Sorting first and taking
    an end of the sorted list would change tie-break outcomes.
  - Expenses is stable-sorted by date descending, so same-day records keep
    their repository-relative order.

ROUNDING:
  Amounts accumulate exactly; TotalAmount and AveragePerDay round to two
  places only in the output.

SEE ALSO:
  - aggregate.go: Breakdown construction
  - repository.go: WeeklySummary / MonthlySummary entry points
*/
package expense

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Summary is a derived report over one period. It is recomputed on each
// request and never persisted.
type Summary struct {
	Period    string
	StartDate Date
	EndDate   Date

	TotalAmount      decimal.Decimal
	TransactionCount int

	// CategoryBreakdown is ordered by amount descending.
	CategoryBreakdown Breakdown

	// DailyBreakdown is key-addressed; its order carries no meaning.
	DailyBreakdown Breakdown

	// AveragePerDay spreads the total over the period's inclusive length,
	// not over the number of days that saw transactions.
	AveragePerDay decimal.Decimal

	// HighestExpense is nil for an empty period.
	HighestExpense *Record

	// Expenses is sorted by date, newest first.
	Expenses []Record
}

// GenerateSummary builds a Summary for records already filtered to the
// period. Records must be in repository insertion order for the
// highest-expense tie-break to land on the earliest-inserted record.
func GenerateSummary(records []Record, p Period) Summary {
	s := Summary{
		Period:            p.Label,
		StartDate:         p.Start,
		EndDate:           p.End,
		TotalAmount:       decimal.Zero,
		AveragePerDay:     decimal.Zero,
		CategoryBreakdown: Breakdown{},
		DailyBreakdown:    Breakdown{},
		Expenses:          []Record{},
	}
	if len(records) == 0 {
		return s
	}

	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Amount)
	}

	// Pre-sort scan; strict greater-than keeps the first maximal record.
	highest := records[0]
	for _, r := range records[1:] {
		if r.Amount.GreaterThan(highest.Amount) {
			highest = r
		}
	}

	average := decimal.Zero
	if days := p.Days(); days > 0 {
		average = total.Div(decimal.NewFromInt(int64(days)))
	}

	s.TotalAmount = total.Round(2)
	s.TransactionCount = len(records)
	s.CategoryBreakdown = AggregateByCategory(records).SortedByTotalDesc()
	s.DailyBreakdown = AggregateByDay(records)
	s.AveragePerDay = average.Round(2)
	s.HighestExpense = &highest
	s.Expenses = SortByDateDesc(records)
	return s
}

// SortByDateDesc returns a copy of records ordered by date, newest first.
// The sort is stable so same-day records keep their relative order.
func SortByDateDesc(records []Record) []Record {
	out := make([]Record, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}
