package service

import (
	"encoding/json"
	"testing"
	"time"

	"expensetracker/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildAnalyticsEmpty(t *testing.T) {
	got := BuildAnalytics(nil)

	if len(got.ChartData) != 0 {
		t.Fatalf("chart data = %v, want empty", got.ChartData)
	}
	if got.Summary.TotalExpenses != 0 {
		t.Fatalf("total = %v, want 0", got.Summary.TotalExpenses)
	}
	if got.Summary.AveragePerMonth != 0 {
		t.Fatalf("average = %v, want 0", got.Summary.AveragePerMonth)
	}
	if got.Summary.TotalTransactions != 0 {
		t.Fatalf("transactions = %v, want 0", got.Summary.TotalTransactions)
	}
}

func TestBuildAnalyticsSingleMonth(t *testing.T) {
	expenses := []model.Expense{
		{Amount: 100, Category: "Groceries", Date: date(2024, 1, 5)},
		{Amount: 200, Category: "Travel", Date: date(2024, 1, 20)},
	}

	got := BuildAnalytics(expenses)

	if len(got.ChartData) != 1 {
		t.Fatalf("bucket count = %d, want 1", len(got.ChartData))
	}
	b := got.ChartData[0]
	if b.Month != "2024-01" {
		t.Fatalf("month = %q, want 2024-01", b.Month)
	}
	want := map[string]float64{
		"Groceries": 100, "Travel": 200,
		"Rental": 0, "Entertainment": 0, "Others": 0,
	}
	for name, sum := range want {
		gotSum, ok := b.Categories[name]
		if !ok {
			t.Fatalf("category %q missing from bucket", name)
		}
		if gotSum != sum {
			t.Fatalf("category %q = %v, want %v", name, gotSum, sum)
		}
	}

	if got.Summary.TotalExpenses != 300 {
		t.Fatalf("total = %v, want 300", got.Summary.TotalExpenses)
	}
	if got.Summary.AveragePerMonth != 300 {
		t.Fatalf("average = %v, want 300", got.Summary.AveragePerMonth)
	}
	if got.Summary.TotalTransactions != 2 {
		t.Fatalf("transactions = %d, want 2", got.Summary.TotalTransactions)
	}
}

func TestBuildAnalyticsBucketsSortedAndAveraged(t *testing.T) {
	expenses := []model.Expense{
		{Amount: 90, Category: "Rental", Date: date(2024, 2, 1)},
		{Amount: 10, Category: "Others", Date: date(2023, 11, 30)},
		{Amount: 25, Category: "Rental", Date: date(2024, 2, 14)},
	}

	got := BuildAnalytics(expenses)

	if len(got.ChartData) != 2 {
		t.Fatalf("bucket count = %d, want 2", len(got.ChartData))
	}
	if got.ChartData[0].Month != "2023-11" || got.ChartData[1].Month != "2024-02" {
		t.Fatalf("bucket order = %q, %q", got.ChartData[0].Month, got.ChartData[1].Month)
	}
	if got.ChartData[1].Categories["Rental"] != 115 {
		t.Fatalf("february rental = %v, want 115", got.ChartData[1].Categories["Rental"])
	}
	// 125 / 2 months = 62.5, rounded to 63.
	if got.Summary.AveragePerMonth != 63 {
		t.Fatalf("average = %v, want 63", got.Summary.AveragePerMonth)
	}
}

func TestBuildAnalyticsUnknownCategory(t *testing.T) {
	expenses := []model.Expense{
		{Amount: 40, Category: "Subscriptions", Date: date(2024, 5, 2)},
		{Amount: 20, Category: "Subscriptions", Date: date(2024, 5, 9)},
	}

	got := BuildAnalytics(expenses)

	b := got.ChartData[0]
	if b.Categories["Subscriptions"] != 60 {
		t.Fatalf("unknown category sum = %v, want 60", b.Categories["Subscriptions"])
	}
	// The known five are still seeded at zero next to it.
	for _, name := range model.KnownCategories {
		if sum, ok := b.Categories[name]; !ok || sum != 0 {
			t.Fatalf("known category %q = %v, %v; want 0, true", name, sum, ok)
		}
	}
}

func TestMonthBucketJSONShape(t *testing.T) {
	b := MonthBucket{
		Month:      "2024-01",
		Categories: map[string]float64{"Travel": 12.5, "Rental": 0},
	}

	raw, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var flat map[string]any
	if err := json.Unmarshal(raw, &flat); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if flat["month"] != "2024-01" {
		t.Fatalf("month = %v", flat["month"])
	}
	if flat["Travel"] != 12.5 {
		t.Fatalf("Travel = %v, want 12.5 at top level", flat["Travel"])
	}
}
