package budget

import (
	"time"

	budgetDatamodel "github.com/frahmantamala/finance-tracker/internal/core/datamodel/budget"
	"github.com/shopspring/decimal"
)

// MonthlyBudget is the domain model for a per-month budget. Month is always
// the first day of its calendar month and never changes after creation.
type MonthlyBudget struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"user_id"`
	Month     time.Time       `json:"month"`
	Amount    decimal.Decimal `json:"amount"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt *time.Time      `json:"deleted_at,omitempty"`
}

// IsCurrentMonth reports whether the budget's month is the month containing
// now. Only current-month budgets accept amount updates; older ones are
// frozen.
func (b *MonthlyBudget) IsCurrentMonth(now time.Time) bool {
	return b.Month.Equal(budgetDatamodel.CurrentMonth(now))
}

func (b *MonthlyBudget) ToResponse() BudgetResponse {
	return BudgetResponse{
		ID:        b.ID,
		Month:     b.Month.Format("2006-01-02"),
		Amount:    b.Amount,
		IsActive:  b.IsActive,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// NewMonthlyBudget stamps the budget with the current calendar month,
// ignoring any client-supplied month.
func NewMonthlyBudget(userID int64, amount decimal.Decimal, now time.Time) *MonthlyBudget {
	return &MonthlyBudget{
		UserID:    userID,
		Month:     budgetDatamodel.CurrentMonth(now),
		Amount:    amount,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func ToDataModel(b *MonthlyBudget) *budgetDatamodel.MonthlyBudget {
	dm := &budgetDatamodel.MonthlyBudget{
		ID:     b.ID,
		UserID: b.UserID,
		Month:  b.Month,
		Amount: b.Amount,
	}
	dm.IsActive = b.IsActive
	dm.CreatedAt = b.CreatedAt
	dm.UpdatedAt = b.UpdatedAt
	dm.DeletedAt = b.DeletedAt
	return dm
}

func FromDataModel(b *budgetDatamodel.MonthlyBudget) *MonthlyBudget {
	return &MonthlyBudget{
		ID:        b.ID,
		UserID:    b.UserID,
		Month:     b.Month,
		Amount:    b.Amount,
		IsActive:  b.IsActive,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
		DeletedAt: b.DeletedAt,
	}
}

func FromDataModelSlice(budgets []*budgetDatamodel.MonthlyBudget) []*MonthlyBudget {
	result := make([]*MonthlyBudget, len(budgets))
	for i, b := range budgets {
		result[i] = FromDataModel(b)
	}
	return result
}
