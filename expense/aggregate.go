package expense

import (
	"sort"

	"github.com/shopspring/decimal"
)

// =============================================================================
// BREAKDOWN - Ordered per-key sums
// =============================================================================

// Bucket is one dimension value (a category label or a date) with its
// accumulated amount.
type Bucket struct {
	Key   string
	Total decimal.Decimal
}

// Breakdown is an ordered collection of buckets. Aggregation produces
// buckets in first-occurrence order of the input; that order is what keeps
// tie-breaks deterministic when a breakdown is later sorted by amount.
type Breakdown []Bucket

func aggregate(records []Record, key func(Record) string) Breakdown {
	index := make(map[string]int, len(records))
	out := Breakdown{}
	for _, r := range records {
		k := key(r)
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, Bucket{Key: k, Total: decimal.Zero})
		}
		out[i].Total = out[i].Total.Add(r.Amount)
	}
	return out
}

// AggregateByCategory sums amounts per category across the record set.
func AggregateByCategory(records []Record) Breakdown {
	return aggregate(records, func(r Record) string { return string(r.Category) })
}

// AggregateByDay sums amounts per calendar date across the record set.
func AggregateByDay(records []Record) Breakdown {
	return aggregate(records, func(r Record) string { return r.Date.String() })
}

// SortedByTotalDesc returns a copy ordered by amount, largest first. The
// sort is stable: equal totals keep their first-occurrence order.
func (b Breakdown) SortedByTotalDesc() Breakdown {
	out := make(Breakdown, len(b))
	copy(out, b)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total.GreaterThan(out[j].Total)
	})
	return out
}

// Amount returns the accumulated total for a key, or zero when absent.
func (b Breakdown) Amount(key string) decimal.Decimal {
	for _, bucket := range b {
		if bucket.Key == key {
			return bucket.Total
		}
	}
	return decimal.Zero
}

// Sum returns the grand total across all buckets.
func (b Breakdown) Sum() decimal.Decimal {
	total := decimal.Zero
	for _, bucket := range b {
		total = total.Add(bucket.Total)
	}
	return total
}
