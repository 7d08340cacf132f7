package category

import (
	"strings"
	"time"

	errors "github.com/frahmantamala/finance-tracker/internal"
	"github.com/frahmantamala/finance-tracker/internal/core/common/validation"
	categoryDatamodel "github.com/frahmantamala/finance-tracker/internal/core/datamodel/category"
)

// CategoryDTO is the payload for creating or updating a category.
type CategoryDTO struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

func (dto *CategoryDTO) Validate() *errors.AppError {
	result := validation.NewResult()

	if strings.TrimSpace(dto.Name) == "" {
		result.AddFieldError("name", "This field is required.", errors.ErrCodeValidationFailed)
	}

	if !categoryDatamodel.ValidType(dto.Type) {
		result.AddFieldError("type", "Type must be either income or expense.", errors.ErrCodeValidationFailed)
	}

	return result.Err()
}

type CategoryResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
