package stats_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	internal "github.com/frahmantamala/finance-tracker/internal"
	budgetDatamodel "github.com/frahmantamala/finance-tracker/internal/core/datamodel/budget"
	"github.com/frahmantamala/finance-tracker/internal/stats"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
)

func TestStatsService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Stats Service Suite")
}

// MockRepository implements stats.RepositoryAPI for testing
type MockRepository struct {
	rows       map[int64][]statsRow
	shouldFail bool
	failError  error
}

type statsRow struct {
	row       stats.TransactionRow
	createdAt time.Time
}

func NewMockRepository() *MockRepository {
	return &MockRepository{rows: make(map[int64][]statsRow)}
}

func (m *MockRepository) TransactionsForMonth(userID int64, monthStart, monthEnd time.Time) ([]stats.TransactionRow, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	var result []stats.TransactionRow
	for _, r := range m.rows[userID] {
		if !r.createdAt.Before(monthStart) && r.createdAt.Before(monthEnd) {
			result = append(result, r.row)
		}
	}
	return result, nil
}

func (m *MockRepository) AddRow(userID int64, categoryName, categoryType, amount string, createdAt time.Time) {
	m.rows[userID] = append(m.rows[userID], statsRow{
		row: stats.TransactionRow{
			CategoryName: categoryName,
			CategoryType: categoryType,
			Amount:       decimal.RequireFromString(amount),
		},
		createdAt: createdAt,
	})
}

// MockBudgetLookup implements stats.BudgetLookupAPI for testing
type MockBudgetLookup struct {
	budgets map[int64]map[time.Time]*budgetDatamodel.MonthlyBudget
}

func NewMockBudgetLookup() *MockBudgetLookup {
	return &MockBudgetLookup{budgets: make(map[int64]map[time.Time]*budgetDatamodel.MonthlyBudget)}
}

func (m *MockBudgetLookup) GetActiveForMonth(userID int64, month time.Time) (*budgetDatamodel.MonthlyBudget, error) {
	return m.budgets[userID][month], nil
}

func (m *MockBudgetLookup) AddBudget(userID int64, month time.Time, amount string) {
	if m.budgets[userID] == nil {
		m.budgets[userID] = make(map[time.Time]*budgetDatamodel.MonthlyBudget)
	}
	b := &budgetDatamodel.MonthlyBudget{
		UserID: userID,
		Month:  month,
		Amount: decimal.RequireFromString(amount),
	}
	b.IsActive = true
	m.budgets[userID][month] = b
}

var _ = Describe("Stats Service", func() {
	var (
		mockRepo    *MockRepository
		mockBudgets *MockBudgetLookup
		service     *stats.Service
		logger      *slog.Logger
		now         time.Time
	)

	const userID int64 = 1

	march := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		mockBudgets = NewMockBudgetLookup()
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		now = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
		service = stats.NewServiceWithClock(mockRepo, mockBudgets, func() time.Time { return now }, logger)
	})

	Describe("MonthlyStats", func() {
		Context("with a budget and transactions in the month", func() {
			BeforeEach(func() {
				mockBudgets.AddBudget(userID, march, "3000.00")
				mockRepo.AddRow(userID, "Salary", "income", "5000.00", march.AddDate(0, 0, 4))
				mockRepo.AddRow(userID, "Rent", "expense", "1200.50", march.AddDate(0, 0, 5))
				mockRepo.AddRow(userID, "Groceries", "expense", "315.75", march.AddDate(0, 0, 6))
				mockRepo.AddRow(userID, "Groceries", "expense", "84.25", march.AddDate(0, 0, 20))
			})

			It("should total income and expenses separately", func() {
				result, err := service.MonthlyStats(userID, "2026-03")
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Month).To(Equal("2026-03"))
				Expect(result.Budget.String()).To(Equal("3000"))
				Expect(result.TotalIncome.String()).To(Equal("5000"))
				Expect(result.TotalExpense.String()).To(Equal("1600.5"))
			})

			It("should group amounts per category", func() {
				result, err := service.MonthlyStats(userID, "2026-03")
				Expect(err).NotTo(HaveOccurred())

				Expect(result.IncomeCategories).To(HaveLen(1))
				Expect(result.IncomeCategories[0].Category).To(Equal("Salary"))
				Expect(result.IncomeCategories[0].Amount.String()).To(Equal("5000"))

				Expect(result.ExpenseCategories).To(HaveLen(2))
				Expect(result.ExpenseCategories[0].Category).To(Equal("Rent"))
				Expect(result.ExpenseCategories[1].Category).To(Equal("Groceries"))
				Expect(result.ExpenseCategories[1].Amount.String()).To(Equal("400"))
			})

			It("should match total income to the sum of income groups", func() {
				result, err := service.MonthlyStats(userID, "2026-03")
				Expect(err).NotTo(HaveOccurred())

				sum := decimal.Zero
				for _, g := range result.IncomeCategories {
					sum = sum.Add(g.Amount)
				}
				Expect(sum.Equal(result.TotalIncome)).To(BeTrue())
			})

			It("should not count transactions from other months", func() {
				mockRepo.AddRow(userID, "Salary", "income", "9999.00", march.AddDate(0, 1, 2))

				result, err := service.MonthlyStats(userID, "2026-03")
				Expect(err).NotTo(HaveOccurred())
				Expect(result.TotalIncome.String()).To(Equal("5000"))
			})
		})

		Context("with no budget and no transactions", func() {
			It("should return zeros and empty groups", func() {
				result, err := service.MonthlyStats(userID, "2026-03")
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Budget.String()).To(Equal("0"))
				Expect(result.TotalIncome.String()).To(Equal("0"))
				Expect(result.TotalExpense.String()).To(Equal("0"))
				Expect(result.IncomeCategories).To(BeEmpty())
				Expect(result.ExpenseCategories).To(BeEmpty())
			})
		})

		Context("when the month parameter is empty", func() {
			BeforeEach(func() {
				mockBudgets.AddBudget(userID, march, "3000.00")
			})

			It("should default to the current month", func() {
				result, err := service.MonthlyStats(userID, "")
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Month).To(Equal("2026-03"))
				Expect(result.Budget.String()).To(Equal("3000"))
			})
		})

		Context("when the month parameter is malformed", func() {
			It("should reject a non-date string", func() {
				_, err := service.MonthlyStats(userID, "not-a-month")
				Expect(err).To(HaveOccurred())
				appErr, ok := internal.IsAppError(err)
				Expect(ok).To(BeTrue())
				Expect(appErr.StatusCode).To(Equal(400))
				Expect(appErr.AggregateMessage()).To(ContainSubstring("month - Invalid month format. Use YYYY-MM."))
			})

			It("should reject an out-of-range month", func() {
				_, err := service.MonthlyStats(userID, "2099-13")
				Expect(err).To(HaveOccurred())
			})

			It("should reject a full date", func() {
				_, err := service.MonthlyStats(userID, "2026-03-15")
				Expect(err).To(HaveOccurred())
			})
		})
	})
})
