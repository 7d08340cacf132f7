package budget

import (
	"time"

	errors "github.com/frahmantamala/finance-tracker/internal"
	"github.com/frahmantamala/finance-tracker/internal/core/common/validation"
	"github.com/shopspring/decimal"
)

// BudgetDTO is the payload for creating or updating a monthly budget. A month
// field sent by the client is accepted but ignored: creation always stamps
// the current calendar month and updates never touch it.
type BudgetDTO struct {
	Amount decimal.Decimal `json:"amount"`
	Month  string          `json:"month,omitempty"`
}

func (dto *BudgetDTO) Validate() *errors.AppError {
	result := validation.NewResult()

	if dto.Amount.LessThanOrEqual(decimal.Zero) {
		result.AddFieldError("amount", "Amount must be greater than 0.", errors.ErrCodeInvalidAmount)
	}

	return result.Err()
}

type BudgetResponse struct {
	ID        int64           `json:"id"`
	Month     string          `json:"month"`
	Amount    decimal.Decimal `json:"amount"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
