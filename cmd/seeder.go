package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		db, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: sqlDB.DB}), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to init gorm: %v", err)
		}

		if clearData {
			for _, table := range []string{"transactions", "monthly_budgets", "categories", "users"} {
				if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
					log.Fatalf("failed to clear table %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		password := "password"
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

		demoEmail := "demo@mail.com"
		var userID int64
		row := db.Raw("SELECT id FROM users WHERE email = ? AND is_active = true", demoEmail).Row()
		if err := row.Scan(&userID); err != nil {
			if err := db.Exec(
				"INSERT INTO users (email, first_name, last_name, password_hash, is_active, created_at, updated_at) VALUES (?, ?, ?, ?, true, now(), now())",
				demoEmail, "Demo", "User", string(hash),
			).Error; err != nil {
				log.Fatalf("failed to insert demo user: %v", err)
			}
			if err := db.Raw("SELECT id FROM users WHERE email = ?", demoEmail).Row().Scan(&userID); err != nil {
				log.Fatalf("failed to lookup demo user id: %v", err)
			}
			fmt.Println("Seeded demo user:", demoEmail)
		} else {
			fmt.Println("demo user already exists, reusing:", demoEmail)
		}

		categories := []struct {
			Name string
			Type string
		}{
			{"Salary", "income"},
			{"Freelance", "income"},
			{"Rent", "expense"},
			{"Groceries", "expense"},
			{"Entertainment", "expense"},
		}

		categoryIDs := map[string]int64{}
		for _, c := range categories {
			var cid int64
			row := db.Raw(
				"SELECT id FROM categories WHERE user_id = ? AND LOWER(TRIM(name)) = LOWER(TRIM(?)) AND is_active = true",
				userID, c.Name,
			).Row()
			if err := row.Scan(&cid); err != nil {
				if err := db.Exec(
					"INSERT INTO categories (user_id, name, type, is_active, created_at, updated_at) VALUES (?, ?, ?, true, now(), now())",
					userID, c.Name, c.Type,
				).Error; err != nil {
					log.Fatalf("failed to insert category %s: %v", c.Name, err)
				}
				if err := db.Raw("SELECT id FROM categories WHERE user_id = ? AND name = ? AND is_active = true", userID, c.Name).Row().Scan(&cid); err != nil {
					log.Fatalf("failed to lookup category id %s: %v", c.Name, err)
				}
				fmt.Printf("Seeded category: %s (%s)\n", c.Name, c.Type)
			}
			categoryIDs[c.Name] = cid
		}

		transactions := []struct {
			Category    string
			Amount      string
			Description string
		}{
			{"Salary", "5000.00", "Monthly salary"},
			{"Freelance", "750.00", "Side project"},
			{"Rent", "1200.50", "Monthly rent"},
			{"Groceries", "315.75", "Weekly shopping"},
			{"Entertainment", "89.99", "Streaming and cinema"},
		}

		for _, t := range transactions {
			var exists int
			row := db.Raw(
				"SELECT 1 FROM transactions WHERE user_id = ? AND category_id = ? AND description = ? AND is_active = true",
				userID, categoryIDs[t.Category], t.Description,
			).Row()
			if err := row.Scan(&exists); err != nil {
				if err := db.Exec(
					"INSERT INTO transactions (user_id, category_id, amount, description, is_active, created_at, updated_at) VALUES (?, ?, ?, ?, true, now(), now())",
					userID, categoryIDs[t.Category], t.Amount, t.Description,
				).Error; err != nil {
					log.Fatalf("failed to insert transaction %s: %v", t.Description, err)
				}
				fmt.Printf("Seeded transaction: %s %s\n", t.Category, t.Amount)
			}
		}

		now := time.Now().UTC()
		month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		var exists int
		row = db.Raw("SELECT 1 FROM monthly_budgets WHERE user_id = ? AND month = ? AND is_active = true", userID, month).Row()
		if err := row.Scan(&exists); err != nil {
			if err := db.Exec(
				"INSERT INTO monthly_budgets (user_id, month, amount, is_active, created_at, updated_at) VALUES (?, ?, ?, true, now(), now())",
				userID, month, "3000.00",
			).Error; err != nil {
				log.Fatalf("failed to insert monthly budget: %v", err)
			}
			fmt.Printf("Seeded budget for %s\n", month.Format("2006-01"))
		}

		fmt.Println("Sample data seeded successfully")
	},
}
