package database

import (
	"path/filepath"
	"testing"

	"finance-tracker/internal/config"
	"finance-tracker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqliteConfig(t *testing.T) *config.Config {
	t.Helper()

	return &config.Config{
		Database: config.DatabaseConfig{
			Driver:     config.DriverSQLite,
			SQLitePath: filepath.Join(t.TempDir(), "finance.db"),
		},
	}
}

func TestInitialize_SQLite(t *testing.T) {
	cfg := sqliteConfig(t)

	db, err := Initialize(cfg)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	for _, table := range []string{"persons", "categories", "transactions"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	assert.True(t, db.Migrator().HasIndex(&models.Transaction{}, "idx_transactions_person_id"))
	assert.True(t, db.Migrator().HasIndex(&models.Transaction{}, "idx_transactions_category_id"))
	assert.True(t, db.Migrator().HasColumn(&models.Transaction{}, "transaction_type"))
}

func TestDB_HealthCheckAndClose(t *testing.T) {
	db, err := New(&sqliteConfig(t).Database)
	require.NoError(t, err)

	assert.NoError(t, db.HealthCheck())
	require.NoError(t, db.Close())
	assert.Error(t, db.HealthCheck())
}

func TestSetupTestDB(t *testing.T) {
	db := SetupTestDB(t)

	person := CreateTestPerson(t, db, "Ana", 30)
	category := CreateTestCategory(t, db, "Salary", models.PurposeIncome)
	CreateTestTransaction(t, db, person, category, models.TransactionTypeIncome, "100.00")

	var count int64
	require.NoError(t, db.Model(&models.Transaction{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	CleanupTestDB(t, db)
	require.NoError(t, db.Model(&models.Transaction{}).Count(&count).Error)
	assert.Zero(t, count)
}
