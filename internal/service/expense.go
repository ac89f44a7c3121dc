package service

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"expensetracker/internal/model"
)

// Amount accepts a monetary value sent either as a JSON number or as a
// numeric string, which is what the form client posts.
type Amount struct {
	value float64
	set   bool
	valid bool
}

// UnmarshalJSON never fails on malformed values; the failure is reported as
// a field validation message instead of a bind error.
func (a *Amount) UnmarshalJSON(data []byte) error {
	a.set = true
	s := strings.TrimSpace(string(data))
	if len(s) >= 2 && s[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		s = strings.TrimSpace(s)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		// ParseFloat admits NaN and the infinities; none of them is a
		// storable monetary value.
		return nil
	}
	a.value = v
	a.valid = true
	return nil
}

// Float64 returns the parsed value; zero when the value was absent or
// malformed.
func (a Amount) Float64() float64 { return a.value }

// dateFormats are the accepted create-date representations: the plain date
// the form client posts, and RFC 3339 as a fallback.
var dateFormats = []string{"2006-01-02", time.RFC3339}

func parseDate(s string) (time.Time, error) {
	var err error
	for _, layout := range dateFormats {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// CreateExpenseInput is the create request body.
type CreateExpenseInput struct {
	Amount      Amount `json:"amount"`
	Category    string `json:"category"`
	Notes       string `json:"notes"`
	Date        string `json:"date"`
	PaymentMode string `json:"paymentMode"`
}

// Validate checks every field and collects the per-field error messages
// before failing, so the caller sees all problems at once. On success it
// returns the entity ready for persistence; the store assigns id and
// timestamps.
func (in CreateExpenseInput) Validate() (model.Expense, []string) {
	var errs []string

	switch {
	case !in.Amount.set:
		errs = append(errs, "amount is required")
	case !in.Amount.valid:
		errs = append(errs, "amount must be a number")
	case in.Amount.value < 0:
		errs = append(errs, "amount must be non-negative")
	}

	category := strings.TrimSpace(in.Category)
	if category == "" {
		errs = append(errs, "category is required")
	} else if len(category) > 255 {
		errs = append(errs, "category must be at most 255 characters")
	}

	paymentMode := strings.TrimSpace(in.PaymentMode)
	if paymentMode == "" {
		errs = append(errs, "paymentMode is required")
	} else if len(paymentMode) > 50 {
		errs = append(errs, "paymentMode must be at most 50 characters")
	}

	var date time.Time
	if rawDate := strings.TrimSpace(in.Date); rawDate == "" {
		errs = append(errs, "date is required")
	} else {
		var err error
		if date, err = parseDate(rawDate); err != nil {
			errs = append(errs, "date must be a valid date")
		}
	}

	if len(errs) > 0 {
		return model.Expense{}, errs
	}

	return model.Expense{
		Amount:      in.Amount.value,
		Category:    category,
		Notes:       in.Notes,
		Date:        date,
		PaymentMode: paymentMode,
	}, nil
}
