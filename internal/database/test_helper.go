package database

import (
	"testing"

	"finance-tracker/internal/config"
	"finance-tracker/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens a migrated in-memory SQLite database
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// every pooled connection to ":memory:" would otherwise get its own empty database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			Driver:         config.DriverSQLite,
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = testDB.Close()
	})

	return testDB
}

func CreateTestPerson(t *testing.T, db *DB, name string, age int) *models.Person {
	t.Helper()

	person := &models.Person{Name: name, Age: age}
	if err := db.Create(person).Error; err != nil {
		t.Fatalf("failed to create test person: %v", err)
	}

	return person
}

func CreateTestCategory(t *testing.T, db *DB, description string, purpose models.Purpose) *models.Category {
	t.Helper()

	category := &models.Category{Description: description, Purpose: purpose}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}

	return category
}

func CreateTestTransaction(t *testing.T, db *DB, person *models.Person, category *models.Category, txType models.TransactionType, value string) *models.Transaction {
	t.Helper()

	txn := &models.Transaction{
		Description: "test " + string(txType),
		Value:       decimal.RequireFromString(value),
		Type:        txType,
		PersonID:    person.ID,
		CategoryID:  category.ID,
	}
	if err := db.Create(txn).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}

	return txn
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	for _, table := range []string{"transactions", "categories", "persons"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
