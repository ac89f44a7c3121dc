package service

import (
	"time"

	"expensetracker/internal/model"
	"expensetracker/internal/repository"
)

// ListParams carries the raw filter parameters of a list request.
type ListParams struct {
	DateRange    string
	Categories   []string
	PaymentModes []string
}

// ResolveFilter translates request parameters into a store predicate. The
// current time is a parameter so the date-range cutoffs can be tested with a
// fixed clock.
func ResolveFilter(p ListParams, now time.Time) repository.ExpenseFilter {
	f := repository.ExpenseFilter{
		Categories:   p.Categories,
		PaymentModes: p.PaymentModes,
	}
	if since, ok := dateRangeCutoff(p.DateRange, now); ok {
		f.Since = &since
	}
	return f
}

// dateRangeCutoff resolves a date-range keyword to its inclusive lower
// bound. "all", an empty value, and unrecognized keywords apply no date
// constraint.
func dateRangeCutoff(dateRange string, now time.Time) (time.Time, bool) {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch dateRange {
	case "today":
		return startOfDay, true
	case "thisWeek":
		// The week starts on Sunday.
		return startOfDay.AddDate(0, 0, -int(now.Weekday())), true
	case "thisMonth":
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), true
	case "last30":
		return startOfDay.AddDate(0, 0, -30), true
	case "last90":
		return startOfDay.AddDate(0, 0, -90), true
	default:
		return time.Time{}, false
	}
}

// SumAmounts returns the amount total over exactly the given records.
func SumAmounts(expenses []model.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}
