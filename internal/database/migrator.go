package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"finance-tracker/internal/config"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

var (
	maxRetries    = 30
	retryInterval = 2 * time.Second
)

// MigrationRunner applies the SQL migrations in db/migrations and optional seed files
type MigrationRunner struct {
	db             *sql.DB
	migrationsPath string
	seedsPath      string
	seed           bool
}

// NewMigrationRunner creates a new migration runner
func NewMigrationRunner(db *sql.DB, cfg *config.DatabaseConfig) *MigrationRunner {
	return &MigrationRunner{
		db:             db,
		migrationsPath: cfg.MigrationsPath,
		seedsPath:      cfg.SeedsPath,
		seed:           cfg.SeedDatabase,
	}
}

// WaitForDatabase waits for the database to be ready
func (mr *MigrationRunner) WaitForDatabase() error {
	for i := 0; i < maxRetries; i++ {
		err := mr.db.Ping()
		if err == nil {
			return nil
		}

		slog.Info("Database not ready", slog.Int("attempt", i+1), slog.Int("max_attempts", maxRetries), slog.String("error", err.Error()))
		time.Sleep(retryInterval)
	}

	return fmt.Errorf("database not ready after %d attempts", maxRetries)
}

func (mr *MigrationRunner) newMigrate() (*migrate.Migrate, error) {
	absPath, err := filepath.Abs(mr.migrationsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for migrations: %w", err)
	}

	driver, err := postgres.WithInstance(mr.db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", absPath), "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}
	return m, nil
}

// RunMigrations executes all pending migrations
func (mr *MigrationRunner) RunMigrations() error {
	if _, err := os.Stat(mr.migrationsPath); os.IsNotExist(err) {
		slog.Info("Migrations directory not found, skipping migrations", slog.String("path", mr.migrationsPath))
		return nil
	}

	m, err := mr.newMigrate()
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	if dirty {
		slog.Warn("Database is in dirty state, forcing version", slog.Uint64("version", uint64(version)))
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("failed to force version: %w", err)
		}
	}

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		slog.Info("No new migrations to apply", slog.Uint64("version", uint64(version)))
		return nil
	}
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	newVersion, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("failed to get new migration version: %w", err)
	}
	slog.Info("Applied migrations", slog.Uint64("version", uint64(newVersion)))

	return nil
}

// LoadSeeds executes every *.sql file in the seeds directory in name order.
// A failing file is logged and skipped.
func (mr *MigrationRunner) LoadSeeds() error {
	if !mr.seed {
		return nil
	}

	if _, err := os.Stat(mr.seedsPath); os.IsNotExist(err) {
		slog.Info("Seeds directory not found, skipping seed data", slog.String("path", mr.seedsPath))
		return nil
	}

	files, err := filepath.Glob(filepath.Join(mr.seedsPath, "*.sql"))
	if err != nil {
		return fmt.Errorf("failed to find seed files: %w", err)
	}

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read seed file %s: %w", file, err)
		}

		if _, err := mr.db.Exec(string(content)); err != nil {
			slog.Warn("Failed to execute seed file", slog.String("file", filepath.Base(file)), slog.String("error", err.Error()))
			continue
		}

		slog.Info("Executed seed file", slog.String("file", filepath.Base(file)))
	}

	return nil
}

// GetMigrationStatus returns the current migration status
func (mr *MigrationRunner) GetMigrationStatus() (version uint, dirty bool, err error) {
	if _, err := os.Stat(mr.migrationsPath); os.IsNotExist(err) {
		return 0, false, fmt.Errorf("migrations directory not found")
	}

	m, err := mr.newMigrate()
	if err != nil {
		return 0, false, err
	}

	return m.Version()
}

// RunMigrationsIfEnabled runs migrations and seeds when cfg.AutoMigrate is set
func RunMigrationsIfEnabled(db *sql.DB, cfg *config.DatabaseConfig) error {
	if !cfg.AutoMigrate {
		slog.Info("Auto-migration disabled (AUTO_MIGRATE != true)")
		return nil
	}

	runner := NewMigrationRunner(db, cfg)

	if err := runner.WaitForDatabase(); err != nil {
		return fmt.Errorf("database readiness check failed: %w", err)
	}

	if err := runner.RunMigrations(); err != nil {
		return fmt.Errorf("migration execution failed: %w", err)
	}

	if err := runner.LoadSeeds(); err != nil {
		slog.Warn("Seed data loading failed", slog.String("error", err.Error()))
	}

	version, dirty, err := runner.GetMigrationStatus()
	if err != nil {
		slog.Warn("Failed to get migration status", slog.String("error", err.Error()))
	} else {
		slog.Info("Migration status", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))
	}

	return nil
}
