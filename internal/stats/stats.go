package stats

import (
	"github.com/shopspring/decimal"
)

// CategoryAmount is one aggregated row: a category name and the summed
// amount of its transactions within the month.
type CategoryAmount struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// StatsResponse is the monthly summary returned by the stats endpoint.
type StatsResponse struct {
	Month             string           `json:"month"`
	Budget            decimal.Decimal  `json:"budget"`
	TotalIncome       decimal.Decimal  `json:"total_income"`
	TotalExpense      decimal.Decimal  `json:"total_expense"`
	IncomeCategories  []CategoryAmount `json:"income_categories"`
	ExpenseCategories []CategoryAmount `json:"expense_categories"`
}

// TransactionRow is a single active transaction joined with its category,
// as loaded by the repository for aggregation.
type TransactionRow struct {
	CategoryName string
	CategoryType string
	Amount       decimal.Decimal
}
