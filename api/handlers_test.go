/*
handlers_test.go - Unit tests for API handlers

Tests for:
- Expense creation, listing and deletion over HTTP
- Summary, category and trend endpoints
- Error status mapping (400 validation, 404 missing id)
*/
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/warp/expense-engine/expense"
	"github.com/warp/expense-engine/expense/store"
)

// testNow pins "today" to Wednesday 2024-01-03.
var testNow = time.Date(2024, time.January, 3, 10, 30, 0, 0, time.UTC)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	repo := expense.Open(context.Background(), store.NewMemory(),
		expense.WithClock(func() time.Time { return testNow }))
	srv := httptest.NewServer(NewRouter(NewHandler(repo)))
	t.Cleanup(srv.Close)
	return srv
}

func postExpense(t *testing.T, srv *httptest.Server, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(srv.URL+"/api/expenses", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func TestCreateExpense_Success(t *testing.T) {
	srv := newTestServer(t)

	resp := postExpense(t, srv, `{"amount": 50.0, "category": "Food & Dining", "description": "lunch", "date": "2024-01-01"}`)

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	dto := decode[ExpenseDTO](t, resp)
	if dto.ID != 1 || dto.Amount != 50.0 || dto.Category != "Food & Dining" || dto.Date != "2024-01-01" {
		t.Errorf("unexpected DTO: %+v", dto)
	}
}

func TestCreateExpense_ValidationErrors(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"non-positive amount", `{"amount": 0, "category": "Shopping"}`},
		{"negative amount", `{"amount": -5, "category": "Shopping"}`},
		{"malformed date", `{"amount": 5, "category": "Shopping", "date": "01/02/2024"}`},
		{"broken json", `{"amount": `},
	}
	for _, tt := range tests {
		resp := postExpense(t, srv, tt.body)
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", tt.name, resp.StatusCode)
		}
	}

	// Nothing was created.
	resp, err := http.Get(srv.URL + "/api/expenses")
	if err != nil {
		t.Fatal(err)
	}
	if got := decode[[]ExpenseDTO](t, resp); len(got) != 0 {
		t.Errorf("collection grew to %d after rejected inserts", len(got))
	}
}

func TestCreateExpense_UnknownCategoryCoerced(t *testing.T) {
	srv := newTestServer(t)

	resp := postExpense(t, srv, `{"amount": 5, "category": "Yacht Maintenance"}`)

	dto := decode[ExpenseDTO](t, resp)
	if dto.Category != "Other" {
		t.Errorf("category = %q, want Other", dto.Category)
	}
}

func TestListExpenses_DateDescending(t *testing.T) {
	srv := newTestServer(t)
	postExpense(t, srv, `{"amount": 10, "category": "Shopping", "date": "2024-01-01"}`).Body.Close()
	postExpense(t, srv, `{"amount": 20, "category": "Shopping", "date": "2024-01-05"}`).Body.Close()

	resp, err := http.Get(srv.URL + "/api/expenses")
	if err != nil {
		t.Fatal(err)
	}
	got := decode[[]ExpenseDTO](t, resp)

	if len(got) != 2 || got[0].Date != "2024-01-05" || got[1].Date != "2024-01-01" {
		t.Errorf("unexpected listing: %+v", got)
	}
}

func TestListExpenses_Limit(t *testing.T) {
	srv := newTestServer(t)
	for i := 0; i < 4; i++ {
		postExpense(t, srv, `{"amount": 10, "category": "Shopping", "date": "2024-01-01"}`).Body.Close()
	}

	resp, err := http.Get(srv.URL + "/api/expenses?limit=2")
	if err != nil {
		t.Fatal(err)
	}
	if got := decode[[]ExpenseDTO](t, resp); len(got) != 2 {
		t.Errorf("got %d expenses, want 2", len(got))
	}
}

func TestDeleteExpense(t *testing.T) {
	srv := newTestServer(t)
	resp := postExpense(t, srv, `{"amount": 10, "category": "Shopping"}`)
	created := decode[ExpenseDTO](t, resp)

	req, _ := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/api/expenses/%d", srv.URL, created.ID), nil)
	delResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	delResp.Body.Close()
	if delResp.StatusCode != http.StatusOK {
		t.Errorf("delete status = %d, want 200", delResp.StatusCode)
	}

	// Second delete of the same id is a 404.
	delResp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	delResp.Body.Close()
	if delResp.StatusCode != http.StatusNotFound {
		t.Errorf("repeat delete status = %d, want 404", delResp.StatusCode)
	}
}

func TestRangeExpenses_BadParams(t *testing.T) {
	srv := newTestServer(t)

	for _, url := range []string{
		"/api/expenses/range",
		"/api/expenses/range?start=2024-01-01",
		"/api/expenses/range?start=bad&end=2024-01-31",
	} {
		resp, err := http.Get(srv.URL + url)
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", url, resp.StatusCode)
		}
	}
}

func TestWeeklySummary_Endpoint(t *testing.T) {
	srv := newTestServer(t)
	postExpense(t, srv, `{"amount": 50.0, "category": "Food & Dining", "date": "2024-01-01"}`).Body.Close()
	postExpense(t, srv, `{"amount": 30.0, "category": "Food & Dining", "date": "2024-01-02"}`).Body.Close()

	resp, err := http.Get(srv.URL + "/api/summary/weekly")
	if err != nil {
		t.Fatal(err)
	}
	s := decode[SummaryDTO](t, resp)

	if s.Period != "Weekly" || s.StartDate != "2024-01-01" || s.EndDate != "2024-01-07" {
		t.Errorf("period wrong: %+v", s)
	}
	if s.TotalAmount != 80.0 || s.TotalTransactions != 2 {
		t.Errorf("totals wrong: %+v", s)
	}
	if s.AveragePerDay != 11.43 {
		t.Errorf("average = %v, want 11.43", s.AveragePerDay)
	}
	if len(s.CategoryBreakdown) != 1 || s.CategoryBreakdown[0].Amount != 80.0 {
		t.Errorf("category breakdown wrong: %+v", s.CategoryBreakdown)
	}
	if s.DailyBreakdown["2024-01-01"] != 50.0 || s.DailyBreakdown["2024-01-02"] != 30.0 {
		t.Errorf("daily breakdown wrong: %+v", s.DailyBreakdown)
	}
	if s.HighestExpense == nil || s.HighestExpense.Amount != 50.0 {
		t.Errorf("highest expense wrong: %+v", s.HighestExpense)
	}
	if len(s.Expenses) != 2 || s.Expenses[0].Date != "2024-01-02" {
		t.Errorf("expenses order wrong: %+v", s.Expenses)
	}
}

func TestMonthlySummary_EmptyCollection(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/summary/monthly")
	if err != nil {
		t.Fatal(err)
	}
	s := decode[SummaryDTO](t, resp)

	if s.TotalAmount != 0 || s.HighestExpense != nil || len(s.Expenses) != 0 {
		t.Errorf("empty summary wrong: %+v", s)
	}
	if s.StartDate != "2024-01-01" || s.EndDate != "2024-01-31" {
		t.Errorf("month bounds wrong: %+v", s)
	}
}

func TestListCategories_Catalog(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/categories")
	if err != nil {
		t.Fatal(err)
	}
	got := decode[[]string](t, resp)

	if len(got) != 11 || got[0] != "Food & Dining" || got[len(got)-1] != "Other" {
		t.Errorf("catalog wrong: %v", got)
	}
}

func TestTrend_Endpoint(t *testing.T) {
	srv := newTestServer(t)
	postExpense(t, srv, `{"amount": 15, "category": "Shopping", "date": "2023-11-20"}`).Body.Close()

	resp, err := http.Get(srv.URL + "/api/trend")
	if err != nil {
		t.Fatal(err)
	}
	got := decode[[]TrendPointDTO](t, resp)

	if len(got) != 6 {
		t.Fatalf("got %d trend points, want 6", len(got))
	}
	if got[0].Month != "August 2023" || got[5].Month != "January 2024" {
		t.Errorf("trend window wrong: %+v", got)
	}
	if got[3].Month != "November 2023" || got[3].Total != 15.0 {
		t.Errorf("November point wrong: %+v", got[3])
	}
}
