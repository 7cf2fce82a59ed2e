// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file contains database bootstrapping helpers for
// SQLite (pure Go driver), schema migrations, and category seeding.
package repo

import (
	"os"
	"path/filepath"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/anunita/TriviaAPI/internal/domain"
)

// DefaultCategories seeds an empty store so a fresh deployment can serve the
// quiz immediately. Categories are otherwise managed out of band; the API
// exposes no write route for them.
var DefaultCategories = []string{
	"Science",
	"Art",
	"Geography",
	"History",
	"Entertainment",
	"Sports",
}

// OpenSQLite opens (or creates) a SQLite database and applies PRAGMAs.
func OpenSQLite(path string) (*gorm.DB, error) {
	// Fail early if parent directory does not exist (instead of sqlite "out of memory (14)" on Windows).
	if dir := filepath.Dir(path); dir != "." {
		if _, err := os.Stat(dir); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// PRAGMAs
	db.Exec("PRAGMA journal_mode=WAL;")
	db.Exec("PRAGMA synchronous=NORMAL;")
	db.Exec("PRAGMA busy_timeout=5000;")

	// Pool
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	return db, nil
}

// AutoMigrate creates or updates the categories and questions tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Category{},
		&domain.Question{},
	)
}

// SeedCategories inserts the given category types when the table is empty.
// It is a no-op if any category already exists.
func SeedCategories(db *gorm.DB, types []string) error {
	var total int64
	if err := db.Model(&domain.Category{}).Count(&total).Error; err != nil {
		return err
	}
	if total > 0 {
		return nil
	}
	rows := make([]domain.Category, 0, len(types))
	for _, t := range types {
		rows = append(rows, domain.Category{Type: t})
	}
	return db.Create(&rows).Error
}
