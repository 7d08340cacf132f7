package postgres

import (
	"time"

	"github.com/frahmantamala/finance-tracker/internal/stats"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// TransactionsForMonth loads the user's active transactions created within
// [monthStart, monthEnd), joined with their active category. Ordered by
// creation so aggregation preserves first-seen category order.
func (r *Repository) TransactionsForMonth(userID int64, monthStart, monthEnd time.Time) ([]stats.TransactionRow, error) {
	var rows []stats.TransactionRow
	err := r.db.
		Table("transactions").
		Select("categories.name AS category_name, categories.type AS category_type, transactions.amount AS amount").
		Joins("JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.user_id = ?", userID).
		Where("transactions.is_active = ?", true).
		Where("categories.is_active = ?", true).
		Where("transactions.created_at >= ? AND transactions.created_at < ?", monthStart, monthEnd).
		Order("transactions.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
