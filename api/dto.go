/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model (decimal amounts, Date values) from the external
  API contract (plain numbers and "YYYY-MM-DD" strings).

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Validation lives in the repository, not here. DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
  - expense/summary.go: The domain types these mirror
*/
package api

import (
	"time"

	"github.com/warp/expense-engine/expense"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// ExpenseDTO represents one expense in API responses.
type ExpenseDTO struct {
	ID          int     `json:"id"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	CreatedAt   string  `json:"created_at,omitempty"`
}

// CreateExpenseRequest is the request to add an expense.
type CreateExpenseRequest struct {
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description,omitempty"`

	// Date is optional "YYYY-MM-DD"; empty means today.
	Date string `json:"date,omitempty"`
}

// CategoryAmountDTO is one entry of an amount-ordered category breakdown.
// An ordered array is used instead of a JSON object so clients see the
// descending-by-amount order the engine guarantees.
type CategoryAmountDTO struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// SummaryDTO represents a period summary.
type SummaryDTO struct {
	Period            string              `json:"period"`
	StartDate         string              `json:"start_date"`
	EndDate           string              `json:"end_date"`
	TotalAmount       float64             `json:"total_amount"`
	TotalTransactions int                 `json:"total_transactions"`
	CategoryBreakdown []CategoryAmountDTO `json:"category_breakdown"`
	DailyBreakdown    map[string]float64  `json:"daily_breakdown"`
	AveragePerDay     float64             `json:"average_per_day"`
	HighestExpense    *ExpenseDTO         `json:"highest_expense"`
	Expenses          []ExpenseDTO        `json:"expenses"`
}

// TrendPointDTO is one month of the trend series.
type TrendPointDTO struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// CONVERSIONS
// =============================================================================

func toExpenseDTO(r expense.Record) ExpenseDTO {
	dto := ExpenseDTO{
		ID:          r.ID,
		Amount:      r.Amount.InexactFloat64(),
		Category:    string(r.Category),
		Description: r.Description,
		Date:        r.Date.String(),
	}
	if !r.CreatedAt.IsZero() {
		dto.CreatedAt = r.CreatedAt.Format(time.RFC3339)
	}
	return dto
}

func toExpenseDTOs(records []expense.Record) []ExpenseDTO {
	out := make([]ExpenseDTO, len(records))
	for i, r := range records {
		out[i] = toExpenseDTO(r)
	}
	return out
}

func toCategoryBreakdownDTO(b expense.Breakdown) []CategoryAmountDTO {
	out := make([]CategoryAmountDTO, len(b))
	for i, bucket := range b {
		out[i] = CategoryAmountDTO{Category: bucket.Key, Amount: bucket.Total.InexactFloat64()}
	}
	return out
}

func toSummaryDTO(s expense.Summary) SummaryDTO {
	daily := make(map[string]float64, len(s.DailyBreakdown))
	for _, bucket := range s.DailyBreakdown {
		daily[bucket.Key] = bucket.Total.InexactFloat64()
	}

	dto := SummaryDTO{
		Period:            s.Period,
		StartDate:         s.StartDate.String(),
		EndDate:           s.EndDate.String(),
		TotalAmount:       s.TotalAmount.InexactFloat64(),
		TotalTransactions: s.TransactionCount,
		CategoryBreakdown: toCategoryBreakdownDTO(s.CategoryBreakdown),
		DailyBreakdown:    daily,
		AveragePerDay:     s.AveragePerDay.InexactFloat64(),
		Expenses:          toExpenseDTOs(s.Expenses),
	}
	if s.HighestExpense != nil {
		highest := toExpenseDTO(*s.HighestExpense)
		dto.HighestExpense = &highest
	}
	return dto
}

func toTrendDTO(points []expense.TrendPoint) []TrendPointDTO {
	out := make([]TrendPointDTO, len(points))
	for i, p := range points {
		out[i] = TrendPointDTO{Month: p.Label, Total: p.Total.InexactFloat64()}
	}
	return out
}
