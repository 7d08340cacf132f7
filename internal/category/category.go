package category

import (
	"strings"
	"time"

	categoryDatamodel "github.com/frahmantamala/finance-tracker/internal/core/datamodel/category"
)

// Category is the domain model for a user's income or expense category.
type Category struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"user_id"`
	Name      string     `json:"name"`
	Type      string     `json:"type"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

func (c *Category) IsActiveCategory() bool {
	return c.IsActive
}

func (c *Category) ToResponse() CategoryResponse {
	return CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		Type:      c.Type,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func NewCategory(userID int64, name, categoryType string) *Category {
	now := time.Now()
	return &Category{
		UserID:    userID,
		Name:      strings.TrimSpace(name),
		Type:      categoryType,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NormalizeName is the collision key for the per-user uniqueness rule:
// trimmed and lowercased, so names differing only by case or surrounding
// whitespace collide.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func ToDataModel(c *Category) *categoryDatamodel.Category {
	dm := &categoryDatamodel.Category{
		ID:     c.ID,
		UserID: c.UserID,
		Name:   c.Name,
		Type:   c.Type,
	}
	dm.IsActive = c.IsActive
	dm.CreatedAt = c.CreatedAt
	dm.UpdatedAt = c.UpdatedAt
	dm.DeletedAt = c.DeletedAt
	return dm
}

func FromDataModel(c *categoryDatamodel.Category) *Category {
	return &Category{
		ID:        c.ID,
		UserID:    c.UserID,
		Name:      c.Name,
		Type:      c.Type,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		DeletedAt: c.DeletedAt,
	}
}
