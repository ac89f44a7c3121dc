package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Expense maps a single record in the expenses table. JSON field names are
// the wire names the client consumes; column names follow gorm's snake_case
// convention (payment_mode, created_at, ...).
type Expense struct {
	ID          string    `gorm:"type:char(36);primaryKey" json:"id"`
	Amount      float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	Category    string    `gorm:"type:varchar(255);not null" json:"category"`
	Notes       string    `gorm:"type:text" json:"notes"`
	Date        time.Time `gorm:"not null;index" json:"date"`
	PaymentMode string    `gorm:"type:varchar(50);not null" json:"paymentMode"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName pins the table name regardless of gorm's pluralization rules.
func (Expense) TableName() string {
	return "expenses"
}

// BeforeCreate assigns the UUID primary key. The store owns record identity;
// ids supplied by callers are ignored upstream, never here.
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
