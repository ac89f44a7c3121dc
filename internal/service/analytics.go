package service

import (
	"encoding/json"
	"math"
	"sort"

	"expensetracker/internal/model"
)

// MonthBucket is one month of per-category totals, keyed YYYY-MM. The
// category set is open: the five known categories are always present, and
// any other category name found in that month accumulates under its own key.
type MonthBucket struct {
	Month      string
	Categories map[string]float64
}

// MarshalJSON flattens the bucket so the month key and the category sums sit
// at the same level, which is the shape the chart client consumes.
func (b MonthBucket) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(b.Categories)+1)
	for name, sum := range b.Categories {
		out[name] = sum
	}
	out["month"] = b.Month
	return json.Marshal(out)
}

// AnalyticsSummary holds the overall totals reported next to the chart data.
type AnalyticsSummary struct {
	TotalExpenses     float64 `json:"totalExpenses"`
	AveragePerMonth   float64 `json:"averagePerMonth"`
	TotalTransactions int     `json:"totalTransactions"`
}

// AnalyticsData is the analytics response payload.
type AnalyticsData struct {
	ChartData []MonthBucket    `json:"chartData"`
	Summary   AnalyticsSummary `json:"summary"`
}

// BuildAnalytics groups expenses into month buckets with per-category sums
// and computes the overall summary. Buckets come out sorted by month
// ascending; the lexicographic YYYY-MM order is chronological.
func BuildAnalytics(expenses []model.Expense) AnalyticsData {
	buckets := make(map[string]MonthBucket)
	var total float64
	for _, e := range expenses {
		key := e.Date.Format("2006-01")
		b, ok := buckets[key]
		if !ok {
			b = MonthBucket{
				Month:      key,
				Categories: make(map[string]float64, len(model.KnownCategories)),
			}
			for _, name := range model.KnownCategories {
				b.Categories[name] = 0
			}
			buckets[key] = b
		}
		b.Categories[e.Category] += e.Amount
		total += e.Amount
	}

	chart := make([]MonthBucket, 0, len(buckets))
	for _, b := range buckets {
		chart = append(chart, b)
	}
	sort.Slice(chart, func(i, j int) bool { return chart[i].Month < chart[j].Month })

	var average float64
	if len(chart) > 0 {
		average = math.Round(total / float64(len(chart)))
	}

	return AnalyticsData{
		ChartData: chart,
		Summary: AnalyticsSummary{
			TotalExpenses:     total,
			AveragePerMonth:   average,
			TotalTransactions: len(expenses),
		},
	}
}
