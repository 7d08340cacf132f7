package postgres_test

import (
	"testing"
	"time"

	categoryDatamodel "github.com/frahmantamala/finance-tracker/internal/core/datamodel/category"
	transactionDatamodel "github.com/frahmantamala/finance-tracker/internal/core/datamodel/transaction"
	statsPostgres "github.com/frahmantamala/finance-tracker/internal/stats/postgres"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestStatsPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Stats Postgres Suite")
}

var _ = Describe("Stats Repository", func() {
	var (
		db   *gorm.DB
		repo *statsPostgres.Repository
	)

	const userID int64 = 1
	const otherUserID int64 = 2

	marchStart := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	aprilStart := marchStart.AddDate(0, 1, 0)

	createCategory := func(userID int64, name, catType string) *categoryDatamodel.Category {
		cat := &categoryDatamodel.Category{UserID: userID, Name: name, Type: catType}
		cat.IsActive = true
		Expect(db.Create(cat).Error).To(Succeed())
		return cat
	}

	createTransaction := func(userID, categoryID int64, amount string, createdAt time.Time) *transactionDatamodel.Transaction {
		t := &transactionDatamodel.Transaction{
			UserID:     userID,
			CategoryID: categoryID,
			Amount:     decimal.RequireFromString(amount),
		}
		t.IsActive = true
		t.CreatedAt = createdAt
		t.UpdatedAt = createdAt
		Expect(db.Create(t).Error).To(Succeed())
		return t
	}

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&categoryDatamodel.Category{}, &transactionDatamodel.Transaction{})
		Expect(err).NotTo(HaveOccurred())

		repo = statsPostgres.NewRepository(db)
	})

	Describe("TransactionsForMonth", func() {
		var salary, rent *categoryDatamodel.Category

		BeforeEach(func() {
			salary = createCategory(userID, "Salary", "income")
			rent = createCategory(userID, "Rent", "expense")

			createTransaction(userID, salary.ID, "5000.00", marchStart.AddDate(0, 0, 4))
			createTransaction(userID, rent.ID, "1200.50", marchStart.AddDate(0, 0, 5))
		})

		It("should return rows joined with category name and type", func() {
			rows, err := repo.TransactionsForMonth(userID, marchStart, aprilStart)
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(2))
			Expect(rows[0].CategoryName).To(Equal("Salary"))
			Expect(rows[0].CategoryType).To(Equal("income"))
			Expect(rows[1].CategoryName).To(Equal("Rent"))
			Expect(rows[1].CategoryType).To(Equal("expense"))
		})

		It("should exclude transactions outside the month window", func() {
			createTransaction(userID, salary.ID, "100.00", marchStart.Add(-time.Second))
			createTransaction(userID, salary.ID, "200.00", aprilStart)

			rows, err := repo.TransactionsForMonth(userID, marchStart, aprilStart)
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(2))
		})

		It("should exclude soft-deleted transactions", func() {
			t := createTransaction(userID, rent.ID, "50.00", marchStart.AddDate(0, 0, 10))
			t.MarkDeleted()
			Expect(db.Save(t).Error).To(Succeed())

			rows, err := repo.TransactionsForMonth(userID, marchStart, aprilStart)
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(2))
		})

		It("should exclude transactions of soft-deleted categories", func() {
			old := createCategory(userID, "Old", "expense")
			createTransaction(userID, old.ID, "75.00", marchStart.AddDate(0, 0, 10))

			old.MarkDeleted()
			Expect(db.Save(old).Error).To(Succeed())

			rows, err := repo.TransactionsForMonth(userID, marchStart, aprilStart)
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(2))
		})

		It("should not leak other users' transactions", func() {
			otherCat := createCategory(otherUserID, "Salary", "income")
			createTransaction(otherUserID, otherCat.ID, "9999.00", marchStart.AddDate(0, 0, 4))

			rows, err := repo.TransactionsForMonth(userID, marchStart, aprilStart)
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(2))
		})
	})
})
