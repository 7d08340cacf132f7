package stats

import (
	"log/slog"
	"time"

	internal "github.com/frahmantamala/finance-tracker/internal"
	budgetmodel "github.com/frahmantamala/finance-tracker/internal/core/datamodel/budget"
	categorymodel "github.com/frahmantamala/finance-tracker/internal/core/datamodel/category"
	"github.com/shopspring/decimal"
)

// RepositoryAPI loads the active transactions of a user within a month,
// joined with their category name and type.
type RepositoryAPI interface {
	TransactionsForMonth(userID int64, monthStart, monthEnd time.Time) ([]TransactionRow, error)
}

// BudgetLookupAPI resolves the active budget for a month. A missing budget
// is reported as (nil, nil) and treated as zero here.
type BudgetLookupAPI interface {
	GetActiveForMonth(userID int64, month time.Time) (*budgetmodel.MonthlyBudget, error)
}

type Service struct {
	repo    RepositoryAPI
	budgets BudgetLookupAPI
	now     func() time.Time
	logger  *slog.Logger
}

func NewService(repo RepositoryAPI, budgets BudgetLookupAPI, logger *slog.Logger) *Service {
	return NewServiceWithClock(repo, budgets, time.Now, logger)
}

func NewServiceWithClock(repo RepositoryAPI, budgets BudgetLookupAPI, now func() time.Time, logger *slog.Logger) *Service {
	return &Service{repo: repo, budgets: budgets, now: now, logger: logger}
}

// MonthlyStats aggregates a user's month: budget, income and expense totals,
// and per-category sums. rawMonth is "YYYY-MM"; empty means the current month.
func (s *Service) MonthlyStats(userID int64, rawMonth string) (*StatsResponse, error) {
	month, err := s.resolveMonth(rawMonth)
	if err != nil {
		return nil, err
	}
	monthEnd := month.AddDate(0, 1, 0)

	budgetAmount := decimal.Zero
	b, err := s.budgets.GetActiveForMonth(userID, month)
	if err != nil {
		s.logger.Error("MonthlyStats: budget lookup failed", "error", err, "user_id", userID)
		return nil, internal.NewInternalError("failed to load budget", err)
	}
	if b != nil {
		budgetAmount = b.Amount
	}

	rows, err := s.repo.TransactionsForMonth(userID, month, monthEnd)
	if err != nil {
		s.logger.Error("MonthlyStats: transaction lookup failed", "error", err, "user_id", userID)
		return nil, internal.NewInternalError("failed to load transactions", err)
	}

	resp := &StatsResponse{
		Month:             month.Format("2006-01"),
		Budget:            budgetAmount,
		TotalIncome:       decimal.Zero,
		TotalExpense:      decimal.Zero,
		IncomeCategories:  []CategoryAmount{},
		ExpenseCategories: []CategoryAmount{},
	}

	// Per-category sums keep first-seen order within each type.
	incomeIdx := map[string]int{}
	expenseIdx := map[string]int{}

	for _, row := range rows {
		switch row.CategoryType {
		case categorymodel.TypeIncome:
			resp.TotalIncome = resp.TotalIncome.Add(row.Amount)
			if i, ok := incomeIdx[row.CategoryName]; ok {
				resp.IncomeCategories[i].Amount = resp.IncomeCategories[i].Amount.Add(row.Amount)
			} else {
				incomeIdx[row.CategoryName] = len(resp.IncomeCategories)
				resp.IncomeCategories = append(resp.IncomeCategories, CategoryAmount{Category: row.CategoryName, Amount: row.Amount})
			}
		case categorymodel.TypeExpense:
			resp.TotalExpense = resp.TotalExpense.Add(row.Amount)
			if i, ok := expenseIdx[row.CategoryName]; ok {
				resp.ExpenseCategories[i].Amount = resp.ExpenseCategories[i].Amount.Add(row.Amount)
			} else {
				expenseIdx[row.CategoryName] = len(resp.ExpenseCategories)
				resp.ExpenseCategories = append(resp.ExpenseCategories, CategoryAmount{Category: row.CategoryName, Amount: row.Amount})
			}
		}
	}

	return resp, nil
}

func (s *Service) resolveMonth(raw string) (time.Time, error) {
	if raw == "" {
		return budgetmodel.CurrentMonth(s.now()), nil
	}
	parsed, err := time.ParseInLocation("2006-01", raw, time.UTC)
	if err != nil {
		return time.Time{}, internal.NewValidationFieldError("month", "Invalid month format. Use YYYY-MM.", internal.ErrCodeInvalidMonth)
	}
	return parsed, nil
}
