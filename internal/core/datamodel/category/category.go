package category

import (
	"github.com/frahmantamala/finance-tracker/internal/core/datamodel"
)

const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Category is the persistence model for a user's income or expense category.
// Within one user's active categories the name is unique case-insensitively;
// a partial unique index on (user_id, lower(trim(name))) backs the service
// check against concurrent creates.
type Category struct {
	ID     int64  `json:"id" gorm:"primaryKey"`
	UserID int64  `json:"user_id" gorm:"column:user_id;not null"`
	Name   string `json:"name" gorm:"column:name;not null"`
	Type   string `json:"type" gorm:"column:type;not null"`
	datamodel.SoftDeleteModel
}

func (Category) TableName() string {
	return "categories"
}

func ValidType(t string) bool {
	return t == TypeIncome || t == TypeExpense
}
