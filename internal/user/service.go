package user

import (
	"log/slog"

	errors "github.com/frahmantamala/finance-tracker/internal"
	"github.com/frahmantamala/finance-tracker/internal/auth"
	userDatamodel "github.com/frahmantamala/finance-tracker/internal/core/datamodel/user"
)

type RepositoryAPI interface {
	GetByID(userID int64) (*userDatamodel.User, error)
	GetActiveByEmail(email string) (*userDatamodel.User, error)
	Create(user *userDatamodel.User) error
}

type Service struct {
	repo       RepositoryAPI
	bcryptCost int
	logger     *slog.Logger
}

func NewService(repo RepositoryAPI, bcryptCost int, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Register creates an account after checking that the email is not already
// taken by an active user. The password is stored only as a bcrypt hash.
func (s *Service) Register(dto RegisterDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("registration validation failed", "email", dto.Email)
		return nil, err
	}

	existing, err := s.repo.GetActiveByEmail(dto.Email)
	if err != nil {
		s.logger.Error("failed to check existing email", "error", err)
		return nil, errors.NewInternalError("failed to check existing email", err)
	}
	if existing != nil {
		return nil, errors.NewValidationFieldError("email", "Email already exists", errors.ErrCodeDuplicateEmail)
	}

	hash, err := auth.HashPassword(dto.Password, s.bcryptCost)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to hash password", err)
	}

	domainUser := NewUser(dto.Email, dto.FirstName, dto.LastName, hash)
	dataUser := ToDataModel(domainUser)
	if err := s.repo.Create(dataUser); err != nil {
		s.logger.Error("failed to create user", "error", err, "email", dto.Email)
		return nil, errors.NewInternalError("failed to create user", err)
	}

	s.logger.Info("user registered", "user_id", dataUser.ID, "email", dataUser.Email)
	return FromDataModel(dataUser), nil
}

// GetProfile returns the read-only identity view for the authenticated caller.
func (s *Service) GetProfile(userID int64) (*User, error) {
	dataUser, err := s.repo.GetByID(userID)
	if err != nil {
		s.logger.Error("failed to get user", "error", err, "user_id", userID)
		return nil, errors.NewInternalError("failed to get user", err)
	}
	if dataUser == nil {
		return nil, errors.ErrUserNotFound
	}

	return FromDataModel(dataUser), nil
}
