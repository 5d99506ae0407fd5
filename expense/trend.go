package expense

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TrendPoint is one month's total in a trailing trend series.
type TrendPoint struct {
	Label string
	Total decimal.Decimal
}

// MonthlyTrend computes per-month totals for the monthsBack months before
// now's month plus the current month itself, oldest first. The series always
// has monthsBack+1 entries; months without records report a zero total.
func MonthlyTrend(records []Record, now Date, monthsBack int) []TrendPoint {
	points := make([]TrendPoint, 0, monthsBack+1)
	for i := monthsBack; i >= 0; i-- {
		year, month := now.Year(), int(now.Month())-i
		for month <= 0 {
			month += 12
			year--
		}

		p := MonthOf(NewDate(year, time.Month(month), 1))
		total := decimal.Zero
		for _, r := range FilterByPeriod(records, p) {
			total = total.Add(r.Amount)
		}

		points = append(points, TrendPoint{
			Label: fmt.Sprintf("%s %d", time.Month(month), year),
			Total: total.Round(2),
		})
	}
	return points
}
