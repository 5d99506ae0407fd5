package expense_test

import (
	"testing"
	"time"

	"github.com/warp/expense-engine/expense"
)

func TestMonthlyTrend_SixEntriesOldestFirst(t *testing.T) {
	// GIVEN: "now" is mid-March 2024
	// WHEN: Computing the default 5-months-back trend
	// THEN: Six entries, October 2023 through March 2024, year borrow included

	now := expense.NewDate(2024, time.March, 15)
	records := []expense.Record{
		rec(1, 100, expense.CategoryFood, "2023-10-05"),
		rec(2, 40, expense.CategoryFood, "2024-01-10"),
		rec(3, 60, expense.CategoryShopping, "2024-01-20"),
		rec(4, 25, expense.CategoryFood, "2024-03-01"),
		rec(5, 999, expense.CategoryFood, "2023-09-30"), // just outside the window
	}

	points := expense.MonthlyTrend(records, now, 5)

	wantLabels := []string{
		"October 2023", "November 2023", "December 2023",
		"January 2024", "February 2024", "March 2024",
	}
	if len(points) != 6 {
		t.Fatalf("got %d points, want 6", len(points))
	}
	for i, label := range wantLabels {
		if points[i].Label != label {
			t.Errorf("points[%d].Label = %q, want %q", i, points[i].Label, label)
		}
	}

	wantTotals := []string{"100", "0", "0", "100", "0", "25"}
	for i, total := range wantTotals {
		if points[i].Total.String() != total {
			t.Errorf("points[%d].Total = %s, want %s", i, points[i].Total, total)
		}
	}
}

func TestMonthlyTrend_EmptyCollection(t *testing.T) {
	points := expense.MonthlyTrend(nil, expense.NewDate(2024, time.June, 1), 5)

	if len(points) != 6 {
		t.Fatalf("got %d points, want 6", len(points))
	}
	for i, p := range points {
		if !p.Total.IsZero() {
			t.Errorf("points[%d].Total = %s, want 0", i, p.Total)
		}
	}
}

func TestMonthlyTrend_MonthBoundaries(t *testing.T) {
	// Records on the first and last day of a month both count toward it.
	now := expense.NewDate(2024, time.February, 20)
	records := []expense.Record{
		rec(1, 10, expense.CategoryFood, "2024-01-01"),
		rec(2, 20, expense.CategoryFood, "2024-01-31"),
		rec(3, 30, expense.CategoryFood, "2024-02-01"),
	}

	points := expense.MonthlyTrend(records, now, 1)

	if len(points) != 2 {
		t.Fatalf("got %d points, want 2", len(points))
	}
	if points[0].Label != "January 2024" || points[0].Total.String() != "30" {
		t.Errorf("January = %s %s, want 30", points[0].Label, points[0].Total)
	}
	if points[1].Label != "February 2024" || points[1].Total.String() != "30" {
		t.Errorf("February = %s %s, want 30", points[1].Label, points[1].Total)
	}
}
