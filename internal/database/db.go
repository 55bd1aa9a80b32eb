package database

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"lightlock/pkg/logger"
)

// InitDB opens the SQLite catalog database with WAL enabled, applies the
// schema and returns the handle.
//
// path may be ":memory:" or a "file:...?mode=memory" URI, in which case no
// directory is created and the journal settings are left to SQLite.
func InitDB(path string) (*gorm.DB, error) {
	inMemory := isInMemory(path)

	dsn := path
	if !inMemory {
		if err := ensureDir(path); err != nil {
			return nil, fmt.Errorf("failed to ensure database directory: %w", err)
		}
		// busy_timeout makes the driver wait for the lock instead of failing immediately.
		dsn = fmt.Sprintf(
			"%s?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL&_cache_size=-20000",
			path,
		)
	}

	gormConfig := &gorm.Config{
		Logger:                 gormLogger.Default.LogMode(gormLogger.Silent),
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
	}

	db, err := gorm.Open(sqlite.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if err := configurePool(db); err != nil {
		return nil, err
	}
	if err := runMigrations(db); err != nil {
		return nil, err
	}

	logger.LogInfo("Database initialized successfully (%s)", path)
	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func isInMemory(path string) bool {
	return path == ":memory:" || strings.Contains(path, "mode=memory")
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, 0750)
	}
	return nil
}

func configurePool(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to retrieve generic database interface: %w", err)
	}

	// A single connection also keeps ":memory:" databases alive and shared.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)
	return nil
}

func runMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(&CatalogImage{}); err != nil {
		return fmt.Errorf("schema migration failed: %w", err)
	}
	return nil
}
