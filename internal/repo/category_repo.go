// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Category model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/anunita/TriviaAPI/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// ListCategories returns all categories ordered by type ascending.
// It returns an empty slice when no categories exist. On DB error, it
// returns the error.
func ListCategories(ctx context.Context, db *gorm.DB) ([]domain.Category, error) {
	var out []domain.Category
	err := db.WithContext(ctx).
		Order("type asc").
		Find(&out).Error
	return out, err
}

// CountCategories returns the total number of categories.
func CountCategories(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.Category{}).
		Count(&total).Error
	return total, err
}
