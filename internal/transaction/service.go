package transaction

import (
	"log/slog"

	errors "github.com/frahmantamala/finance-tracker/internal"
	transactionDatamodel "github.com/frahmantamala/finance-tracker/internal/core/datamodel/transaction"
)

// CategoryChecker reports whether a category id is one of the user's own
// active categories. The explicit cross-check keeps a caller from attaching a
// transaction to another user's category even though the FK alone would
// accept it.
type CategoryChecker interface {
	IsOwnActiveCategory(userID, categoryID int64) (bool, error)
}

type RepositoryAPI interface {
	List(userID int64, filters ListFilters, limit, offset int) ([]*transactionDatamodel.Transaction, int64, error)
	GetByID(userID, id int64) (*transactionDatamodel.Transaction, error)
	Create(transaction *transactionDatamodel.Transaction) error
	Update(transaction *transactionDatamodel.Transaction) error
	SoftDelete(userID, id int64) error
}

type Service struct {
	repo            RepositoryAPI
	categoryChecker CategoryChecker
	logger          *slog.Logger
}

func NewService(repo RepositoryAPI, categoryChecker CategoryChecker, logger *slog.Logger) *Service {
	return &Service{
		repo:            repo,
		categoryChecker: categoryChecker,
		logger:          logger,
	}
}

// ListTransactions returns the caller's active transactions, newest first,
// narrowed by the optional filters.
func (s *Service) ListTransactions(userID int64, filters ListFilters, limit, offset int) ([]TransactionResponse, int64, error) {
	dataTransactions, total, err := s.repo.List(userID, filters, limit, offset)
	if err != nil {
		s.logger.Error("failed to list transactions", "error", err, "user_id", userID)
		return nil, 0, errors.NewInternalError("failed to list transactions", err)
	}

	responses := make([]TransactionResponse, 0, len(dataTransactions))
	for _, t := range FromDataModelSlice(dataTransactions) {
		responses = append(responses, t.ToResponse())
	}

	return responses, total, nil
}

// GetTransaction returns one of the caller's transactions by id, including
// soft-deleted ones for audit history.
func (s *Service) GetTransaction(userID, id int64) (*Transaction, error) {
	dataTransaction, err := s.repo.GetByID(userID, id)
	if err != nil {
		s.logger.Error("failed to get transaction", "error", err, "transaction_id", id)
		return nil, errors.NewInternalError("failed to get transaction", err)
	}
	if dataTransaction == nil {
		return nil, errors.ErrTransactionNotFound
	}

	return FromDataModel(dataTransaction), nil
}

func (s *Service) CreateTransaction(userID int64, dto TransactionDTO) (*Transaction, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkCategoryOwnership(userID, dto.CategoryID); err != nil {
		return nil, err
	}

	domainTransaction := NewTransaction(userID, dto)
	dataTransaction := ToDataModel(domainTransaction)
	if err := s.repo.Create(dataTransaction); err != nil {
		s.logger.Error("failed to create transaction", "error", err, "user_id", userID)
		return nil, errors.NewInternalError("failed to create transaction", err)
	}

	s.logger.Info("transaction created",
		"transaction_id", dataTransaction.ID,
		"user_id", userID,
		"amount", dto.Amount.String())

	return FromDataModel(dataTransaction), nil
}

func (s *Service) UpdateTransaction(userID, id int64, dto TransactionDTO) (*Transaction, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	dataTransaction, err := s.repo.GetByID(userID, id)
	if err != nil {
		s.logger.Error("failed to get transaction for update", "error", err, "transaction_id", id)
		return nil, errors.NewInternalError("failed to get transaction", err)
	}
	if dataTransaction == nil {
		return nil, errors.ErrTransactionNotFound
	}

	if err := s.checkCategoryOwnership(userID, dto.CategoryID); err != nil {
		return nil, err
	}

	dataTransaction.CategoryID = dto.CategoryID
	dataTransaction.Amount = dto.Amount
	dataTransaction.Description = dto.Description
	dataTransaction.Touch()

	if err := s.repo.Update(dataTransaction); err != nil {
		s.logger.Error("failed to update transaction", "error", err, "transaction_id", id)
		return nil, errors.NewInternalError("failed to update transaction", err)
	}

	return FromDataModel(dataTransaction), nil
}

func (s *Service) DeleteTransaction(userID, id int64) error {
	dataTransaction, err := s.repo.GetByID(userID, id)
	if err != nil {
		s.logger.Error("failed to get transaction for delete", "error", err, "transaction_id", id)
		return errors.NewInternalError("failed to get transaction", err)
	}
	if dataTransaction == nil {
		return errors.ErrTransactionNotFound
	}

	if err := s.repo.SoftDelete(userID, id); err != nil {
		s.logger.Error("failed to delete transaction", "error", err, "transaction_id", id)
		return errors.NewInternalError("failed to delete transaction", err)
	}

	s.logger.Info("transaction soft-deleted", "transaction_id", id, "user_id", userID)
	return nil
}

func (s *Service) checkCategoryOwnership(userID, categoryID int64) error {
	owned, err := s.categoryChecker.IsOwnActiveCategory(userID, categoryID)
	if err != nil {
		s.logger.Error("failed to check category ownership", "error", err, "category_id", categoryID)
		return errors.NewInternalError("failed to check category", err)
	}
	if !owned {
		return errors.NewValidationFieldError("category", "Invalid category.", errors.ErrCodeInvalidCategory)
	}
	return nil
}
