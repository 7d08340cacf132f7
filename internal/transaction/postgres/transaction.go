package postgres

import (
	"strings"

	categoryDatamodel "github.com/frahmantamala/finance-tracker/internal/core/datamodel/category"
	transactionDatamodel "github.com/frahmantamala/finance-tracker/internal/core/datamodel/transaction"
	"github.com/frahmantamala/finance-tracker/internal/transaction"
	"gorm.io/gorm"
)

type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) transaction.RepositoryAPI {
	return &TransactionRepository{db: db}
}

// List applies the optional filters over the user's active transactions,
// newest first. The inclusive date_to bound covers the whole day.
func (r *TransactionRepository) List(userID int64, filters transaction.ListFilters, limit, offset int) ([]*transactionDatamodel.Transaction, int64, error) {
	query := r.db.Model(&transactionDatamodel.Transaction{}).
		Where("user_id = ? AND is_active = ?", userID, true)

	if filters.AmountMin != nil {
		query = query.Where("amount >= ?", filters.AmountMin)
	}
	if filters.AmountMax != nil {
		query = query.Where("amount <= ?", filters.AmountMax)
	}
	if filters.DateFrom != nil {
		query = query.Where("created_at >= ?", *filters.DateFrom)
	}
	if filters.DateTo != nil {
		query = query.Where("created_at < ?", filters.DateTo.AddDate(0, 0, 1))
	}
	if filters.CategoryID != nil {
		query = query.Where("category_id = ?", *filters.CategoryID)
	}
	if search := strings.TrimSpace(filters.Search); search != "" {
		query = query.Where("LOWER(description) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var transactions []*transactionDatamodel.Transaction
	err := query.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&transactions).Error
	return transactions, total, err
}

func (r *TransactionRepository) GetByID(userID, id int64) (*transactionDatamodel.Transaction, error) {
	var t transactionDatamodel.Transaction
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&t).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *TransactionRepository) Create(t *transactionDatamodel.Transaction) error {
	return r.db.Create(t).Error
}

func (r *TransactionRepository) Update(t *transactionDatamodel.Transaction) error {
	return r.db.Save(t).Error
}

func (r *TransactionRepository) SoftDelete(userID, id int64) error {
	return r.db.Model(&transactionDatamodel.Transaction{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"is_active":  false,
			"deleted_at": gorm.Expr("CURRENT_TIMESTAMP"),
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}).Error
}

// CategoryChecker answers the transaction service's ownership cross-check
// from the categories table.
type CategoryChecker struct {
	db *gorm.DB
}

func NewCategoryChecker(db *gorm.DB) transaction.CategoryChecker {
	return &CategoryChecker{db: db}
}

func (c *CategoryChecker) IsOwnActiveCategory(userID, categoryID int64) (bool, error) {
	var count int64
	err := c.db.Model(&categoryDatamodel.Category{}).
		Where("id = ? AND user_id = ? AND is_active = ?", categoryID, userID, true).
		Count(&count).Error
	return count > 0, err
}
