package postgres

import (
	"github.com/frahmantamala/finance-tracker/internal/category"
	categoryDatamodel "github.com/frahmantamala/finance-tracker/internal/core/datamodel/category"
	"gorm.io/gorm"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) category.RepositoryAPI {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) GetAllForUser(userID int64) ([]*categoryDatamodel.Category, error) {
	var categories []*categoryDatamodel.Category
	err := r.db.Where("user_id = ? AND is_active = ?", userID, true).
		Order("name ASC").
		Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) GetByID(userID, id int64) (*categoryDatamodel.Category, error) {
	var cat categoryDatamodel.Category
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&cat).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &cat, nil
}

// FindActiveByName matches on the normalized name so that names differing
// only by case or surrounding whitespace collide. excludeID skips the record
// being updated.
func (r *CategoryRepository) FindActiveByName(userID int64, normalizedName string, excludeID int64) (*categoryDatamodel.Category, error) {
	var cat categoryDatamodel.Category
	query := r.db.Where("user_id = ? AND is_active = ? AND LOWER(TRIM(name)) = ?", userID, true, normalizedName)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.First(&cat).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &cat, nil
}

func (r *CategoryRepository) Create(cat *categoryDatamodel.Category) error {
	return r.db.Create(cat).Error
}

func (r *CategoryRepository) Update(cat *categoryDatamodel.Category) error {
	return r.db.Save(cat).Error
}

func (r *CategoryRepository) SoftDelete(userID, id int64) error {
	return r.db.Model(&categoryDatamodel.Category{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"is_active":  false,
			"deleted_at": gorm.Expr("CURRENT_TIMESTAMP"),
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}).Error
}
