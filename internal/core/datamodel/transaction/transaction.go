package transaction

import (
	"github.com/frahmantamala/finance-tracker/internal/core/datamodel"
	"github.com/shopspring/decimal"
)

// Transaction is the persistence model for a single income or expense entry.
// Amount is fixed-point with 2 fractional digits; the referenced category must
// belong to the same user, which the service enforces on top of the FK.
type Transaction struct {
	ID          int64           `json:"id" gorm:"primaryKey"`
	UserID      int64           `json:"user_id" gorm:"column:user_id;not null"`
	CategoryID  int64           `json:"category_id" gorm:"column:category_id;not null"`
	Amount      decimal.Decimal `json:"amount" gorm:"column:amount;type:decimal(10,2);not null"`
	Description string          `json:"description" gorm:"column:description"`
	datamodel.SoftDeleteModel
}

func (Transaction) TableName() string {
	return "transactions"
}
