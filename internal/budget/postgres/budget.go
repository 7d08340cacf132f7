package postgres

import (
	"errors"
	"time"

	datamodel "github.com/frahmantamala/finance-tracker/internal/core/datamodel/budget"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) List(userID int64, limit, offset int) ([]*datamodel.MonthlyBudget, int64, error) {
	query := r.db.Model(&datamodel.MonthlyBudget{}).
		Where("user_id = ? AND is_active = ?", userID, true)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var budgets []*datamodel.MonthlyBudget
	err := query.Order("month DESC").Limit(limit).Offset(offset).Find(&budgets).Error
	if err != nil {
		return nil, 0, err
	}

	return budgets, total, nil
}

// GetByID does not filter on is_active so soft-deleted budgets stay
// retrievable by id.
func (r *Repository) GetByID(userID, id int64) (*datamodel.MonthlyBudget, error) {
	var budget datamodel.MonthlyBudget
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&budget).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &budget, nil
}

func (r *Repository) GetActiveForMonth(userID int64, month time.Time) (*datamodel.MonthlyBudget, error) {
	var budget datamodel.MonthlyBudget
	err := r.db.Where("user_id = ? AND month = ? AND is_active = ?", userID, month, true).
		First(&budget).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &budget, nil
}

func (r *Repository) Create(budget *datamodel.MonthlyBudget) error {
	return r.db.Create(budget).Error
}

func (r *Repository) Update(budget *datamodel.MonthlyBudget) error {
	return r.db.Save(budget).Error
}

func (r *Repository) SoftDelete(userID, id int64) error {
	return r.db.Model(&datamodel.MonthlyBudget{}).
		Where("id = ? AND user_id = ? AND is_active = ?", id, userID, true).
		Updates(map[string]interface{}{
			"is_active":  false,
			"deleted_at": gorm.Expr("CURRENT_TIMESTAMP"),
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}).Error
}
