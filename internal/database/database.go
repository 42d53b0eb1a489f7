// Package database opens the API server's gorm connection and keeps its
// schema current.
package database

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"wallet/internal/config"
	"wallet/internal/logger"
	"wallet/internal/models"
)

// Supported drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// DefaultMigrationsSource is where SQL migrations are read from.
const DefaultMigrationsSource = "file://migrations"

// Manager handles database operations
type Manager struct {
	db               *gorm.DB
	driver           string
	migrateURL       string
	migrationsSource string
}

// NewManager opens the database selected by cfg.DBDriver.
func NewManager(cfg *config.Config) (*Manager, error) {
	gormCfg := &gorm.Config{Logger: gormlogger.Default.LogMode(gormLogLevel(cfg.Env))}

	m := &Manager{driver: cfg.DBDriver, migrationsSource: DefaultMigrationsSource}

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.DBDriver {
	case DriverSQLite:
		db, err = gorm.Open(sqlite.Open(cfg.DBPath), gormCfg)
	case DriverPostgres:
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  cfg.PostgresDSN(),
			PreferSimpleProtocol: true,
		}), gormCfg)
		m.migrateURL = cfg.PostgresURL()
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	if cfg.DBDriver == DriverSQLite {
		// SQLite allows a single writer.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	m.db = db
	return m, nil
}

// NewManagerFromDB wraps an already opened connection, as used by tests.
func NewManagerFromDB(db *gorm.DB, driver string) *Manager {
	return &Manager{db: db, driver: driver, migrationsSource: DefaultMigrationsSource}
}

func gormLogLevel(env string) gormlogger.LogLevel {
	if env == "production" {
		return gormlogger.Silent
	}
	return gormlogger.Warn
}

// SetMigrationsSource overrides the golang-migrate source URL.
func (m *Manager) SetMigrationsSource(source string) {
	m.migrationsSource = source
}

// Migrate brings the schema up to date. PostgreSQL uses the versioned SQL
// migrations; SQLite is auto-migrated from the models.
func (m *Manager) Migrate() error {
	if m.driver == DriverPostgres {
		return m.RunMigrations()
	}

	logger.Get().Info("Auto-migrating SQLite schema...")
	if err := m.db.AutoMigrate(models.AllModels()...); err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}
	return nil
}

// RunMigrations applies pending SQL migrations from the migrations source.
func (m *Manager) RunMigrations() error {
	if m.migrateURL == "" {
		return errors.New("sql migrations require the postgres driver")
	}

	logger.Get().Info("Running database migrations...")

	mig, err := migrate.New(m.migrationsSource, m.migrateURL)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer func() {
		srcErr, dbErr := mig.Close()
		if srcErr != nil {
			logger.Get().Warnf("migrate source close error: %v", srcErr)
		}
		if dbErr != nil {
			logger.Get().Warnf("migrate database close error: %v", dbErr)
		}
	}()

	if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Get().Info("Database migrations completed successfully")
	return nil
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Driver returns the configured driver name.
func (m *Manager) Driver() string {
	return m.driver
}

// Close releases the connection pool.
func (m *Manager) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
