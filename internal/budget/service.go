package budget

import (
	"log/slog"
	"time"

	errors "github.com/frahmantamala/finance-tracker/internal"
	budgetDatamodel "github.com/frahmantamala/finance-tracker/internal/core/datamodel/budget"
)

type RepositoryAPI interface {
	List(userID int64, limit, offset int) ([]*budgetDatamodel.MonthlyBudget, int64, error)
	GetByID(userID, id int64) (*budgetDatamodel.MonthlyBudget, error)
	GetActiveForMonth(userID int64, month time.Time) (*budgetDatamodel.MonthlyBudget, error)
	Create(budget *budgetDatamodel.MonthlyBudget) error
	Update(budget *budgetDatamodel.MonthlyBudget) error
	SoftDelete(userID, id int64) error
}

type Service struct {
	repo   RepositoryAPI
	now    func() time.Time
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return NewServiceWithClock(repo, time.Now, logger)
}

// NewServiceWithClock injects the clock so month-boundary rules are testable.
func NewServiceWithClock(repo RepositoryAPI, now func() time.Time, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		now:    now,
		logger: logger,
	}
}

// ListBudgets returns the caller's active budgets ordered by month, newest
// first.
func (s *Service) ListBudgets(userID int64, limit, offset int) ([]BudgetResponse, int64, error) {
	dataBudgets, total, err := s.repo.List(userID, limit, offset)
	if err != nil {
		s.logger.Error("failed to list budgets", "error", err, "user_id", userID)
		return nil, 0, errors.NewInternalError("failed to list budgets", err)
	}

	responses := make([]BudgetResponse, 0, len(dataBudgets))
	for _, b := range FromDataModelSlice(dataBudgets) {
		responses = append(responses, b.ToResponse())
	}

	return responses, total, nil
}

// GetBudget returns one of the caller's budgets by id, soft-deleted included.
func (s *Service) GetBudget(userID, id int64) (*MonthlyBudget, error) {
	dataBudget, err := s.repo.GetByID(userID, id)
	if err != nil {
		s.logger.Error("failed to get budget", "error", err, "budget_id", id)
		return nil, errors.NewInternalError("failed to get budget", err)
	}
	if dataBudget == nil {
		return nil, errors.ErrBudgetNotFound
	}

	return FromDataModel(dataBudget), nil
}

// GetCurrentMonthBudget returns the active budget for the current calendar
// month. Absence is a NotFound result, a normal outcome for callers that have
// not set a budget yet.
func (s *Service) GetCurrentMonthBudget(userID int64) (*MonthlyBudget, error) {
	currentMonth := budgetDatamodel.CurrentMonth(s.now())
	dataBudget, err := s.repo.GetActiveForMonth(userID, currentMonth)
	if err != nil {
		s.logger.Error("failed to get current month budget", "error", err, "user_id", userID)
		return nil, errors.NewInternalError("failed to get current month budget", err)
	}
	if dataBudget == nil {
		return nil, errors.NewNotFoundError("No budget found for the current month.", errors.ErrCodeBudgetNotFound)
	}

	return FromDataModel(dataBudget), nil
}

// CreateBudget stamps the current calendar month regardless of client input
// and rejects a second active budget for the same month. A partial unique
// index on (user_id, month) catches the check-then-insert race.
func (s *Service) CreateBudget(userID int64, dto BudgetDTO) (*MonthlyBudget, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	currentMonth := budgetDatamodel.CurrentMonth(now)

	existing, err := s.repo.GetActiveForMonth(userID, currentMonth)
	if err != nil {
		s.logger.Error("failed to check existing budget", "error", err, "user_id", userID)
		return nil, errors.NewInternalError("failed to check existing budget", err)
	}
	if existing != nil {
		return nil, errors.NewValidationFieldError("month", "Budget already exists for this month.", errors.ErrCodeDuplicateBudget)
	}

	domainBudget := NewMonthlyBudget(userID, dto.Amount, now)
	dataBudget := ToDataModel(domainBudget)
	if err := s.repo.Create(dataBudget); err != nil {
		s.logger.Error("failed to create budget", "error", err, "user_id", userID)
		return nil, errors.NewInternalError("failed to create budget", err)
	}

	s.logger.Info("budget created",
		"budget_id", dataBudget.ID,
		"user_id", userID,
		"month", dataBudget.Month.Format("2006-01"),
		"amount", dto.Amount.String())

	return FromDataModel(dataBudget), nil
}

// UpdateBudget changes only the amount, and only while the budget's month is
// still the current month; past months are frozen.
func (s *Service) UpdateBudget(userID, id int64, dto BudgetDTO) (*MonthlyBudget, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	dataBudget, err := s.repo.GetByID(userID, id)
	if err != nil {
		s.logger.Error("failed to get budget for update", "error", err, "budget_id", id)
		return nil, errors.NewInternalError("failed to get budget", err)
	}
	if dataBudget == nil {
		return nil, errors.ErrBudgetNotFound
	}

	domainBudget := FromDataModel(dataBudget)
	if !domainBudget.IsCurrentMonth(s.now()) {
		return nil, errors.NewValidationFieldError("month", "Budgets for past months cannot be modified.", errors.ErrCodeBudgetFrozen)
	}

	dataBudget.Amount = dto.Amount
	dataBudget.Touch()
	if err := s.repo.Update(dataBudget); err != nil {
		s.logger.Error("failed to update budget", "error", err, "budget_id", id)
		return nil, errors.NewInternalError("failed to update budget", err)
	}

	return FromDataModel(dataBudget), nil
}

func (s *Service) DeleteBudget(userID, id int64) error {
	dataBudget, err := s.repo.GetByID(userID, id)
	if err != nil {
		s.logger.Error("failed to get budget for delete", "error", err, "budget_id", id)
		return errors.NewInternalError("failed to get budget", err)
	}
	if dataBudget == nil {
		return errors.ErrBudgetNotFound
	}

	if err := s.repo.SoftDelete(userID, id); err != nil {
		s.logger.Error("failed to delete budget", "error", err, "budget_id", id)
		return errors.NewInternalError("failed to delete budget", err)
	}

	s.logger.Info("budget soft-deleted", "budget_id", id, "user_id", userID)
	return nil
}
