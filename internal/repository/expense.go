package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"expensetracker/internal/model"
)

// ExpenseFilter is the combined list predicate. Zero-valued fields apply no
// constraint; set fields combine with AND.
type ExpenseFilter struct {
	// Since is the inclusive lower bound on the expense date.
	Since        *time.Time
	Categories   []string
	PaymentModes []string
}

// ExpenseRepo is the store access surface shared by the API handlers. Every
// operation is a single statement; concurrent requests are serialized by the
// storage engine, not here.
type ExpenseRepo interface {
	Find(ctx context.Context, f ExpenseFilter) ([]model.Expense, error)
	Create(ctx context.Context, expense *model.Expense) error
	DeleteByID(ctx context.Context, id string) (int64, error)
	FindAllByDateAsc(ctx context.Context) ([]model.Expense, error)
}

type expenseRepo struct {
	db *gorm.DB
}

func NewExpenseRepo(db *gorm.DB) ExpenseRepo {
	return &expenseRepo{db: db}
}

// Find returns the expenses matching the filter, newest first.
func (r *expenseRepo) Find(ctx context.Context, f ExpenseFilter) ([]model.Expense, error) {
	q := r.db.WithContext(ctx).Model(&model.Expense{})
	if f.Since != nil {
		q = q.Where("date >= ?", *f.Since)
	}
	if len(f.Categories) > 0 {
		q = q.Where("category IN ?", f.Categories)
	}
	if len(f.PaymentModes) > 0 {
		q = q.Where("payment_mode IN ?", f.PaymentModes)
	}

	expenses := []model.Expense{}
	if err := q.Order("date DESC").Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

func (r *expenseRepo) Create(ctx context.Context, expense *model.Expense) error {
	// WithContext so a cancelled request reaches the database layer.
	return r.db.WithContext(ctx).Create(expense).Error
}

// DeleteByID removes the expense with the given id and reports how many rows
// were affected, so the caller can distinguish a missing record.
func (r *expenseRepo) DeleteByID(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Expense{})
	return res.RowsAffected, res.Error
}

// FindAllByDateAsc returns every expense ordered oldest first, which is the
// order the analytics grouping consumes.
func (r *expenseRepo) FindAllByDateAsc(ctx context.Context) ([]model.Expense, error) {
	expenses := []model.Expense{}
	if err := r.db.WithContext(ctx).Order("date ASC").Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}
