package budget

import (
	"time"

	"github.com/frahmantamala/finance-tracker/internal/core/datamodel"
	"github.com/shopspring/decimal"
)

// MonthlyBudget is the persistence model for a per-month spending budget.
// Month is always the first calendar day of its month and immutable after
// creation. A partial unique index on (user_id, month) over active rows backs
// the one-active-budget-per-month invariant against concurrent creates.
type MonthlyBudget struct {
	ID     int64           `json:"id" gorm:"primaryKey"`
	UserID int64           `json:"user_id" gorm:"column:user_id;not null"`
	Month  time.Time       `json:"month" gorm:"column:month;not null"`
	Amount decimal.Decimal `json:"amount" gorm:"column:amount;type:decimal(10,2);not null"`
	datamodel.SoftDeleteModel
}

func (MonthlyBudget) TableName() string {
	return "monthly_budgets"
}

// FirstOfMonth truncates t to the first day of its calendar month in UTC.
func FirstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// CurrentMonth returns the first day of the month containing now.
func CurrentMonth(now time.Time) time.Time {
	return FirstOfMonth(now.UTC())
}
