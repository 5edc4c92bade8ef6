package database

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"finance-tracker/internal/config"
	"finance-tracker/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		TranslateError: true,
	}

	db, err := gorm.Open(dialector(cfg), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	configurePool(sqlDB, cfg)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func dialector(cfg *config.DatabaseConfig) gorm.Dialector {
	if cfg.IsSQLite() {
		return sqlite.Open(cfg.DSN())
	}
	return postgres.Open(cfg.DSN())
}

func configurePool(sqlDB *sql.DB, cfg *config.DatabaseConfig) {
	if cfg.IsSQLite() {
		// SQLite allows a single writer
		sqlDB.SetMaxOpenConns(1)
		return
	}
	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.Person{},
		&models.Category{},
		&models.Transaction{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (db *DB) CreateIndexes() error {
	queries := []string{
		"CREATE INDEX IF NOT EXISTS idx_persons_created_at ON persons(created_at)",
		"CREATE INDEX IF NOT EXISTS idx_categories_created_at ON categories(created_at)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_person_id ON transactions(person_id)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_category_id ON transactions(category_id)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_created_at ON transactions(created_at)",
	}

	var failed int
	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			slog.Warn("Failed to create index", slog.String("query", query), slog.String("error", err.Error()))
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("failed to create %d of %d indexes", failed, len(queries))
	}
	return nil
}

// Migrate brings the schema up to date. Postgres runs the SQL migrations when
// AUTO_MIGRATE is set and falls back to AutoMigrate if they fail; SQLite always
// uses AutoMigrate.
func (db *DB) Migrate() error {
	if !db.config.IsSQLite() {
		sqlDB, err := db.DB.DB()
		if err != nil {
			return fmt.Errorf("failed to get sql.DB: %w", err)
		}

		err = RunMigrationsIfEnabled(sqlDB, db.config)
		if err == nil {
			return nil
		}
		slog.Warn("Migration runner failed, falling back to GORM AutoMigrate", slog.String("error", err.Error()))
	}

	if err := db.AutoMigrate(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Initialize creates and configures the database connection
func Initialize(cfg *config.Config) (*gorm.DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	if err := db.CreateIndexes(); err != nil {
		slog.Warn("Failed to create some indexes", slog.String("error", err.Error()))
	}

	slog.Info("Database initialized successfully", slog.String("driver", cfg.Database.Driver))

	return db.DB, nil
}
