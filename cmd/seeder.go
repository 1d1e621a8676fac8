package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/frahmantamala/budget-tracker/internal/auth"
	"github.com/frahmantamala/budget-tracker/internal/budget"
	categoryDatamodel "github.com/frahmantamala/budget-tracker/internal/core/datamodel/category"
	userDatamodel "github.com/frahmantamala/budget-tracker/internal/core/datamodel/user"
	"github.com/frahmantamala/budget-tracker/internal/expense"
	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// seedCmd loads a demo account with a few weeks of spending so the
// dashboard has something to show on a fresh install.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlxDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer sqlxDB.Close()

		db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlxDB.DB}), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to open gorm: %v", err)
		}

		if clearData {
			for _, table := range []string{"budgets", "expenses", "categories", "users"} {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		demoID := seedUser(db, cfg.Security.BCryptCost, "demo@example.com", "Demo", "User", userDatamodel.RoleClient)
		seedUser(db, cfg.Security.BCryptCost, "admin@example.com", "Admin", "User", userDatamodel.RoleAdmin)

		categories := []string{"Groceries", "Dining", "Transport", "Entertainment", "Utilities"}
		for _, name := range categories {
			var existing categoryDatamodel.SpendingCategory
			err := db.Where("user_id = ? AND name = ?", demoID, name).First(&existing).Error
			if err == nil {
				continue
			}
			cat := &categoryDatamodel.SpendingCategory{UserID: demoID, Name: name, CreatedAt: time.Now()}
			if err := db.Create(cat).Error; err != nil {
				log.Fatalf("failed to seed category %s: %v", name, err)
			}
		}
		fmt.Println("Seeded categories:", categories)

		var expenseCount int64
		db.Model(&expense.Expense{}).Where("user_id = ?", demoID).Count(&expenseCount)
		if expenseCount == 0 {
			today := time.Now().UTC().Truncate(24 * time.Hour)
			notes := "weekly shop"
			samples := []*expense.Expense{
				{UserID: demoID, Amount: 82.40, Category: "Groceries", ExpenseDate: today.AddDate(0, 0, -1), Notes: &notes, Enabled: true},
				{UserID: demoID, Amount: 34.00, Category: "Dining", ExpenseDate: today.AddDate(0, 0, -2), Enabled: true},
				{UserID: demoID, Amount: 12.50, Category: "Transport", ExpenseDate: today.AddDate(0, 0, -3), Enabled: true},
				{UserID: demoID, Amount: 58.90, Category: "Groceries", ExpenseDate: today.AddDate(0, 0, -7), Enabled: true},
				{UserID: demoID, Amount: 19.99, Category: "Entertainment", ExpenseDate: today.AddDate(0, 0, -10), Enabled: true},
				{UserID: demoID, Amount: 120.00, Category: "Utilities", ExpenseDate: today.AddDate(0, 0, -14), Enabled: true},
			}
			for _, e := range samples {
				if err := db.Create(e).Error; err != nil {
					log.Fatalf("failed to seed expense: %v", err)
				}
			}
			fmt.Printf("Seeded %d expenses\n", len(samples))
		}

		var budgetCount int64
		db.Model(&budget.Budget{}).Where("user_id = ?", demoID).Count(&budgetCount)
		if budgetCount == 0 {
			start := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, -14)
			for _, b := range []struct {
				category string
				amount   float64
				period   budget.Period
			}{
				{"Groceries", 400, budget.PeriodMonthly},
				{"Dining", 150, budget.PeriodMonthly},
				{"Entertainment", 60, budget.PeriodWeekly},
			} {
				endDate, err := budget.ComputeEndDate(start, b.period)
				if err != nil {
					log.Fatalf("failed to compute budget end date: %v", err)
				}
				record := &budget.Budget{
					UserID:     demoID,
					Category:   b.category,
					Amount:     b.amount,
					TimePeriod: b.period,
					StartDate:  start,
					EndDate:    endDate,
					CreatedAt:  time.Now(),
				}
				if err := db.Create(record).Error; err != nil {
					log.Fatalf("failed to seed budget: %v", err)
				}
			}
			fmt.Println("Seeded budgets")
		}

		fmt.Println("Seeding complete. Demo login: demo@example.com / password123")
	},
}

func seedUser(db *gorm.DB, bcryptCost int, email, firstName, lastName, role string) int64 {
	var existing userDatamodel.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		fmt.Println("user already exists:", email)
		return existing.ID
	}

	hash, err := auth.HashPassword("password123", bcryptCost)
	if err != nil {
		log.Fatalf("failed to hash seed password: %v", err)
	}

	record := &userDatamodel.User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := db.Create(record).Error; err != nil {
		log.Fatalf("failed to seed user %s: %v", email, err)
	}

	fmt.Println("Seeded user:", email)
	return record.ID
}
