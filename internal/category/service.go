package category

import (
	"log/slog"
	"strings"

	errors "github.com/frahmantamala/finance-tracker/internal"
	categoryDatamodel "github.com/frahmantamala/finance-tracker/internal/core/datamodel/category"
)

type RepositoryAPI interface {
	GetAllForUser(userID int64) ([]*categoryDatamodel.Category, error)
	GetByID(userID, id int64) (*categoryDatamodel.Category, error)
	FindActiveByName(userID int64, normalizedName string, excludeID int64) (*categoryDatamodel.Category, error)
	Create(category *categoryDatamodel.Category) error
	Update(category *categoryDatamodel.Category) error
	SoftDelete(userID, id int64) error
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetAllCategories returns the caller's active categories, unpaginated.
func (s *Service) GetAllCategories(userID int64) ([]CategoryResponse, error) {
	dataCategories, err := s.repo.GetAllForUser(userID)
	if err != nil {
		s.logger.Error("failed to get categories from repository", "error", err, "user_id", userID)
		return nil, errors.NewInternalError("failed to get categories", err)
	}

	responses := make([]CategoryResponse, 0, len(dataCategories))
	for _, dataCategory := range dataCategories {
		domainCategory := FromDataModel(dataCategory)
		if domainCategory.IsActiveCategory() {
			responses = append(responses, domainCategory.ToResponse())
		}
	}

	s.logger.Info("retrieved categories", "count", len(responses), "user_id", userID)
	return responses, nil
}

// GetCategory returns one of the caller's categories by id. Soft-deleted rows
// stay retrievable for audit purposes; other users' rows come back NotFound.
func (s *Service) GetCategory(userID, id int64) (*Category, error) {
	dataCategory, err := s.repo.GetByID(userID, id)
	if err != nil {
		s.logger.Error("failed to get category", "error", err, "category_id", id)
		return nil, errors.NewInternalError("failed to get category", err)
	}
	if dataCategory == nil {
		return nil, errors.ErrCategoryNotFound
	}

	return FromDataModel(dataCategory), nil
}

// CreateCategory validates the name against the caller's other active
// categories before inserting. The check is case- and whitespace-insensitive;
// a partial unique index backs it against concurrent creates.
func (s *Service) CreateCategory(userID int64, dto CategoryDTO) (*Category, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkNameCollision(userID, dto.Name, 0); err != nil {
		return nil, err
	}

	domainCategory := NewCategory(userID, dto.Name, dto.Type)
	dataCategory := ToDataModel(domainCategory)
	if err := s.repo.Create(dataCategory); err != nil {
		s.logger.Error("failed to create category", "error", err, "user_id", userID)
		return nil, errors.NewInternalError("failed to create category", err)
	}

	s.logger.Info("category created", "category_id", dataCategory.ID, "user_id", userID, "name", dataCategory.Name)
	return FromDataModel(dataCategory), nil
}

// UpdateCategory applies name/type changes, excluding the record itself from
// the uniqueness check.
func (s *Service) UpdateCategory(userID, id int64, dto CategoryDTO) (*Category, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	dataCategory, err := s.repo.GetByID(userID, id)
	if err != nil {
		s.logger.Error("failed to get category for update", "error", err, "category_id", id)
		return nil, errors.NewInternalError("failed to get category", err)
	}
	if dataCategory == nil {
		return nil, errors.ErrCategoryNotFound
	}

	if err := s.checkNameCollision(userID, dto.Name, id); err != nil {
		return nil, err
	}

	domainCategory := FromDataModel(dataCategory)
	domainCategory.Name = strings.TrimSpace(dto.Name)
	domainCategory.Type = dto.Type

	updated := ToDataModel(domainCategory)
	updated.Touch()
	if err := s.repo.Update(updated); err != nil {
		s.logger.Error("failed to update category", "error", err, "category_id", id)
		return nil, errors.NewInternalError("failed to update category", err)
	}

	return FromDataModel(updated), nil
}

// DeleteCategory soft-deletes: the row stays queryable by id but disappears
// from listings and from the selectable categories for new transactions.
func (s *Service) DeleteCategory(userID, id int64) error {
	dataCategory, err := s.repo.GetByID(userID, id)
	if err != nil {
		s.logger.Error("failed to get category for delete", "error", err, "category_id", id)
		return errors.NewInternalError("failed to get category", err)
	}
	if dataCategory == nil {
		return errors.ErrCategoryNotFound
	}

	if err := s.repo.SoftDelete(userID, id); err != nil {
		s.logger.Error("failed to delete category", "error", err, "category_id", id)
		return errors.NewInternalError("failed to delete category", err)
	}

	s.logger.Info("category soft-deleted", "category_id", id, "user_id", userID)
	return nil
}

func (s *Service) checkNameCollision(userID int64, name string, excludeID int64) error {
	existing, err := s.repo.FindActiveByName(userID, NormalizeName(name), excludeID)
	if err != nil {
		s.logger.Error("failed to check category name", "error", err, "user_id", userID)
		return errors.NewInternalError("failed to check category name", err)
	}
	if existing != nil {
		return errors.NewValidationFieldError("name", "Category with this name already exists.", errors.ErrCodeDuplicateName)
	}
	return nil
}
