/*
handlers.go - HTTP handlers for the expense engine

PURPOSE:
  Exposes the aggregation engine via REST. Handles HTTP request/response
  and JSON serialization, and delegates everything else to the repository.

ENDPOINTS:
  Expenses:
    GET    /api/expenses             List all expenses (date-descending)
    POST   /api/expenses             Add an expense
    GET    /api/expenses/range       Expenses within ?start=&end=
    DELETE /api/expenses/{id}        Delete by id

  Summaries:
    GET    /api/summary/weekly       Current Monday-Sunday week
    GET    /api/summary/monthly      Current calendar month
    GET    /api/summary/range        Custom ?start=&end= summary

  Categories:
    GET    /api/categories           The category catalog
    GET    /api/categories/totals    All-time totals per category

  Trend:
    GET    /api/trend                Trailing six-month totals

ERROR HANDLING:
  Errors come back as JSON with appropriate HTTP status:
  - 400: validation failures (non-positive amount, malformed date)
  - 404: unknown expense id
  - 500: store flush failures and everything else

SEE ALSO:
  - dto.go: Request/response shapes
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/warp/expense-engine/expense"
)

// Handler holds the dependencies for HTTP handlers.
type Handler struct {
	Repo *expense.Repository
}

// NewHandler creates a handler over the repository.
func NewHandler(repo *expense.Repository) *Handler {
	return &Handler{Repo: repo}
}

// =============================================================================
// EXPENSE ENDPOINTS
// =============================================================================

// ListExpenses returns all expenses, newest date first.
// GET /api/expenses?limit=N
func (h *Handler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	records := h.Repo.All()
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer", nil)
			return
		}
		records = h.Repo.Recent(limit)
	}
	writeJSON(w, http.StatusOK, toExpenseDTOs(records))
}

// CreateExpense adds an expense.
// POST /api/expenses
func (h *Handler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var req CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	rec, err := h.Repo.Add(r.Context(), expense.AddInput{
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		Date:        req.Date,
	})
	if err != nil {
		status := http.StatusInternalServerError
		if expense.IsClientError(err) {
			status = http.StatusBadRequest
		}
		writeError(w, status, "failed to add expense", err)
		return
	}
	writeJSON(w, http.StatusCreated, toExpenseDTO(rec))
}

// DeleteExpense removes an expense by id.
// DELETE /api/expenses/{id}
func (h *Handler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "id must be an integer", err)
		return
	}

	ok, err := h.Repo.Delete(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete expense", err)
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "expense not found", expense.ErrNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// RangeExpenses returns expenses within an inclusive date range.
// GET /api/expenses/range?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *Handler) RangeExpenses(w http.ResponseWriter, r *http.Request) {
	start, end, ok := rangeParams(w, r)
	if !ok {
		return
	}
	records, err := h.Repo.ByRange(start, end)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date range", err)
		return
	}
	writeJSON(w, http.StatusOK, toExpenseDTOs(records))
}

// =============================================================================
// SUMMARY ENDPOINTS
// =============================================================================

// WeeklySummary reports on the current Monday-through-Sunday week.
// GET /api/summary/weekly
func (h *Handler) WeeklySummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toSummaryDTO(h.Repo.WeeklySummary()))
}

// MonthlySummary reports on the current calendar month.
// GET /api/summary/monthly
func (h *Handler) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toSummaryDTO(h.Repo.MonthlySummary()))
}

// RangeSummary reports on a caller-supplied inclusive range.
// GET /api/summary/range?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *Handler) RangeSummary(w http.ResponseWriter, r *http.Request) {
	start, end, ok := rangeParams(w, r)
	if !ok {
		return
	}
	summary, err := h.Repo.RangeSummary(start, end)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date range", err)
		return
	}
	writeJSON(w, http.StatusOK, toSummaryDTO(summary))
}

// =============================================================================
// CATEGORY AND TREND ENDPOINTS
// =============================================================================

// ListCategories returns the category catalog.
// GET /api/categories
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, expense.Catalog())
}

// CategoryTotals returns all-time totals per category.
// GET /api/categories/totals
func (h *Handler) CategoryTotals(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toCategoryBreakdownDTO(h.Repo.CategoryTotals()))
}

// Trend returns the trailing six-month trend series, oldest first.
// GET /api/trend
func (h *Handler) Trend(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toTrendDTO(h.Repo.Trend()))
}

// =============================================================================
// HELPERS
// =============================================================================

func rangeParams(w http.ResponseWriter, r *http.Request) (start, end string, ok bool) {
	start = r.URL.Query().Get("start")
	end = r.URL.Query().Get("end")
	if start == "" || end == "" {
		writeError(w, http.StatusBadRequest, "start and end are required",
			errors.New("missing query parameter"))
		return "", "", false
	}
	return start, end, true
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
