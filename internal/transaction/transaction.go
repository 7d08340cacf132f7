package transaction

import (
	"time"

	transactionDatamodel "github.com/frahmantamala/finance-tracker/internal/core/datamodel/transaction"
	"github.com/shopspring/decimal"
)

// Transaction is the domain model for a single income or expense entry.
type Transaction struct {
	ID          int64           `json:"id"`
	UserID      int64           `json:"user_id"`
	CategoryID  int64           `json:"category_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   *time.Time      `json:"deleted_at,omitempty"`
}

func (t *Transaction) ToResponse() TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		CategoryID:  t.CategoryID,
		Amount:      t.Amount,
		Description: t.Description,
		IsActive:    t.IsActive,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func NewTransaction(userID int64, dto TransactionDTO) *Transaction {
	now := time.Now()
	return &Transaction{
		UserID:      userID,
		CategoryID:  dto.CategoryID,
		Amount:      dto.Amount,
		Description: dto.Description,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func ToDataModel(t *Transaction) *transactionDatamodel.Transaction {
	dm := &transactionDatamodel.Transaction{
		ID:          t.ID,
		UserID:      t.UserID,
		CategoryID:  t.CategoryID,
		Amount:      t.Amount,
		Description: t.Description,
	}
	dm.IsActive = t.IsActive
	dm.CreatedAt = t.CreatedAt
	dm.UpdatedAt = t.UpdatedAt
	dm.DeletedAt = t.DeletedAt
	return dm
}

func FromDataModel(t *transactionDatamodel.Transaction) *Transaction {
	return &Transaction{
		ID:          t.ID,
		UserID:      t.UserID,
		CategoryID:  t.CategoryID,
		Amount:      t.Amount,
		Description: t.Description,
		IsActive:    t.IsActive,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		DeletedAt:   t.DeletedAt,
	}
}

func FromDataModelSlice(transactions []*transactionDatamodel.Transaction) []*Transaction {
	result := make([]*Transaction, len(transactions))
	for i, t := range transactions {
		result[i] = FromDataModel(t)
	}
	return result
}
