package transaction

import (
	"time"

	errors "github.com/frahmantamala/finance-tracker/internal"
	"github.com/frahmantamala/finance-tracker/internal/core/common/validation"
	"github.com/shopspring/decimal"
)

// TransactionDTO is the payload for creating or updating a transaction.
type TransactionDTO struct {
	CategoryID  int64           `json:"category_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

func (dto *TransactionDTO) Validate() *errors.AppError {
	result := validation.NewResult()

	if dto.CategoryID <= 0 {
		result.AddFieldError("category", "This field is required.", errors.ErrCodeValidationFailed)
	}

	if dto.Amount.LessThanOrEqual(decimal.Zero) {
		result.AddFieldError("amount", "Amount must be greater than 0.", errors.ErrCodeInvalidAmount)
	}

	return result.Err()
}

// ListFilters are the optional, independently combinable list filters. Every
// set filter narrows the result (logical AND).
type ListFilters struct {
	AmountMin  *decimal.Decimal
	AmountMax  *decimal.Decimal
	DateFrom   *time.Time
	DateTo     *time.Time
	CategoryID *int64
	Search     string
}

type TransactionResponse struct {
	ID          int64           `json:"id"`
	CategoryID  int64           `json:"category_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
