package transaction_test

import (
	"errors"
	"log/slog"
	"os"
	"sort"
	"testing"

	internal "github.com/frahmantamala/finance-tracker/internal"
	transactionDatamodel "github.com/frahmantamala/finance-tracker/internal/core/datamodel/transaction"
	"github.com/frahmantamala/finance-tracker/internal/transaction"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
)

func TestTransactionService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Transaction Service Suite")
}

// MockRepository implements transaction.RepositoryAPI for testing
type MockRepository struct {
	transactions map[int64]*transactionDatamodel.Transaction
	nextID       int64
	shouldFail   bool
	failError    error
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		transactions: make(map[int64]*transactionDatamodel.Transaction),
		nextID:       1,
	}
}

func (m *MockRepository) List(userID int64, filters transaction.ListFilters, limit, offset int) ([]*transactionDatamodel.Transaction, int64, error) {
	if m.shouldFail {
		return nil, 0, m.failError
	}

	var matched []*transactionDatamodel.Transaction
	for _, t := range m.transactions {
		if t.UserID != userID || !t.IsActive {
			continue
		}
		if filters.AmountMin != nil && t.Amount.LessThan(*filters.AmountMin) {
			continue
		}
		if filters.AmountMax != nil && t.Amount.GreaterThan(*filters.AmountMax) {
			continue
		}
		if filters.CategoryID != nil && t.CategoryID != *filters.CategoryID {
			continue
		}
		matched = append(matched, t)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (m *MockRepository) GetByID(userID, id int64) (*transactionDatamodel.Transaction, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	t, exists := m.transactions[id]
	if !exists || t.UserID != userID {
		return nil, nil
	}
	return t, nil
}

func (m *MockRepository) Create(t *transactionDatamodel.Transaction) error {
	if m.shouldFail {
		return m.failError
	}
	t.ID = m.nextID
	m.nextID++
	m.transactions[t.ID] = t
	return nil
}

func (m *MockRepository) Update(t *transactionDatamodel.Transaction) error {
	if m.shouldFail {
		return m.failError
	}
	m.transactions[t.ID] = t
	return nil
}

func (m *MockRepository) SoftDelete(userID, id int64) error {
	if m.shouldFail {
		return m.failError
	}
	if t, exists := m.transactions[id]; exists && t.UserID == userID {
		t.MarkDeleted()
	}
	return nil
}

func (m *MockRepository) SetShouldFail(shouldFail bool, err error) {
	m.shouldFail = shouldFail
	m.failError = err
}

// MockCategoryChecker implements transaction.CategoryChecker for testing
type MockCategoryChecker struct {
	owned      map[int64]map[int64]bool
	shouldFail bool
	failError  error
}

func NewMockCategoryChecker() *MockCategoryChecker {
	return &MockCategoryChecker{owned: make(map[int64]map[int64]bool)}
}

func (m *MockCategoryChecker) IsOwnActiveCategory(userID, categoryID int64) (bool, error) {
	if m.shouldFail {
		return false, m.failError
	}
	return m.owned[userID][categoryID], nil
}

func (m *MockCategoryChecker) AddCategory(userID, categoryID int64) {
	if m.owned[userID] == nil {
		m.owned[userID] = make(map[int64]bool)
	}
	m.owned[userID][categoryID] = true
}

var _ = Describe("Transaction Service", func() {
	var (
		mockRepo    *MockRepository
		mockChecker *MockCategoryChecker
		service     *transaction.Service
		logger      *slog.Logger
	)

	const userID int64 = 1
	const otherUserID int64 = 2
	const salaryCategoryID int64 = 10
	const rentCategoryID int64 = 11

	amount := func(s string) decimal.Decimal {
		return decimal.RequireFromString(s)
	}

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		mockChecker = NewMockCategoryChecker()
		mockChecker.AddCategory(userID, salaryCategoryID)
		mockChecker.AddCategory(userID, rentCategoryID)
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = transaction.NewService(mockRepo, mockChecker, logger)
	})

	Describe("CreateTransaction", func() {
		It("should create a transaction", func() {
			result, err := service.CreateTransaction(userID, transaction.TransactionDTO{
				CategoryID:  salaryCategoryID,
				Amount:      amount("5000.00"),
				Description: "Monthly salary",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.ID).To(BeNumerically(">", 0))
			Expect(result.Amount.String()).To(Equal("5000"))
			Expect(result.IsActive).To(BeTrue())
		})

		It("should reject a non-positive amount", func() {
			_, err := service.CreateTransaction(userID, transaction.TransactionDTO{
				CategoryID: salaryCategoryID,
				Amount:     amount("0"),
			})
			Expect(err).To(HaveOccurred())
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.AggregateMessage()).To(ContainSubstring("amount - Amount must be greater than 0."))
		})

		It("should reject a missing category", func() {
			_, err := service.CreateTransaction(userID, transaction.TransactionDTO{
				Amount: amount("10.00"),
			})
			Expect(err).To(HaveOccurred())
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.AggregateMessage()).To(ContainSubstring("category - This field is required."))
		})

		It("should reject another user's category", func() {
			_, err := service.CreateTransaction(otherUserID, transaction.TransactionDTO{
				CategoryID: salaryCategoryID,
				Amount:     amount("10.00"),
			})
			Expect(err).To(HaveOccurred())
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.AggregateMessage()).To(ContainSubstring("category - Invalid category."))
		})

		It("should propagate checker failures as internal errors", func() {
			mockChecker.shouldFail = true
			mockChecker.failError = errors.New("database error")

			_, err := service.CreateTransaction(userID, transaction.TransactionDTO{
				CategoryID: salaryCategoryID,
				Amount:     amount("10.00"),
			})
			Expect(err).To(HaveOccurred())
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(500))
		})
	})

	Describe("ListTransactions", func() {
		BeforeEach(func() {
			for _, dto := range []transaction.TransactionDTO{
				{CategoryID: salaryCategoryID, Amount: amount("5000.00"), Description: "Salary"},
				{CategoryID: rentCategoryID, Amount: amount("1200.50"), Description: "Rent"},
				{CategoryID: rentCategoryID, Amount: amount("315.75"), Description: "Groceries"},
			} {
				_, err := service.CreateTransaction(userID, dto)
				Expect(err).NotTo(HaveOccurred())
			}
		})

		It("should return all active transactions with the total count", func() {
			results, total, err := service.ListTransactions(userID, transaction.ListFilters{}, 10, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(3)))
			Expect(results).To(HaveLen(3))
		})

		It("should narrow by amount range", func() {
			min := amount("1000.00")
			results, total, err := service.ListTransactions(userID, transaction.ListFilters{AmountMin: &min}, 10, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(2)))
			Expect(results).To(HaveLen(2))
		})

		It("should narrow by category", func() {
			cid := rentCategoryID
			_, total, err := service.ListTransactions(userID, transaction.ListFilters{CategoryID: &cid}, 10, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(2)))
		})

		It("should keep the total while paging", func() {
			results, total, err := service.ListTransactions(userID, transaction.ListFilters{}, 2, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(3)))
			Expect(results).To(HaveLen(2))
		})

		It("should not include soft-deleted transactions", func() {
			results, _, err := service.ListTransactions(userID, transaction.ListFilters{}, 10, 0)
			Expect(err).NotTo(HaveOccurred())

			Expect(service.DeleteTransaction(userID, results[0].ID)).To(Succeed())

			_, total, err := service.ListTransactions(userID, transaction.ListFilters{}, 10, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(2)))
		})
	})

	Describe("UpdateTransaction", func() {
		var created *transaction.Transaction

		BeforeEach(func() {
			var err error
			created, err = service.CreateTransaction(userID, transaction.TransactionDTO{
				CategoryID:  salaryCategoryID,
				Amount:      amount("5000.00"),
				Description: "Salary",
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should apply the new values", func() {
			result, err := service.UpdateTransaction(userID, created.ID, transaction.TransactionDTO{
				CategoryID:  rentCategoryID,
				Amount:      amount("1200.50"),
				Description: "Rent",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.CategoryID).To(Equal(rentCategoryID))
			Expect(result.Amount.String()).To(Equal("1200.5"))
			Expect(result.Description).To(Equal("Rent"))
		})

		It("should reject moving the transaction to another user's category", func() {
			mockChecker.AddCategory(otherUserID, 99)

			_, err := service.UpdateTransaction(userID, created.ID, transaction.TransactionDTO{
				CategoryID: 99,
				Amount:     amount("10.00"),
			})
			Expect(err).To(HaveOccurred())
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.AggregateMessage()).To(ContainSubstring("Invalid category."))
		})

		It("should return not found for another user's transaction", func() {
			_, err := service.UpdateTransaction(otherUserID, created.ID, transaction.TransactionDTO{
				CategoryID: salaryCategoryID,
				Amount:     amount("10.00"),
			})
			Expect(err).To(Equal(internal.ErrTransactionNotFound))
		})
	})

	Describe("GetTransaction", func() {
		var created *transaction.Transaction

		BeforeEach(func() {
			var err error
			created, err = service.CreateTransaction(userID, transaction.TransactionDTO{
				CategoryID: salaryCategoryID,
				Amount:     amount("5000.00"),
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should return the transaction", func() {
			result, err := service.GetTransaction(userID, created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.ID).To(Equal(created.ID))
		})

		It("should still return a soft-deleted transaction by id", func() {
			Expect(service.DeleteTransaction(userID, created.ID)).To(Succeed())

			result, err := service.GetTransaction(userID, created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.IsActive).To(BeFalse())
		})

		It("should return not found for another user's transaction", func() {
			_, err := service.GetTransaction(otherUserID, created.ID)
			Expect(err).To(Equal(internal.ErrTransactionNotFound))
		})
	})
})
