// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Question model.
//
// Error semantics:
//   - When a question is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
//
// List queries return the full ordered result set; page windows are cut by
// the service layer, which also reports the total as len(full set).
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/anunita/TriviaAPI/internal/domain"
)

// ListQuestions returns all questions ordered by id ascending.
func ListQuestions(ctx context.Context, db *gorm.DB) ([]domain.Question, error) {
	var out []domain.Question
	err := db.WithContext(ctx).
		Order("id asc").
		Find(&out).Error
	return out, err
}

// ListQuestionsByCategory returns all questions whose category equals
// categoryID, ordered by id ascending.
func ListQuestionsByCategory(ctx context.Context, db *gorm.DB, categoryID int) ([]domain.Question, error) {
	var out []domain.Question
	err := db.WithContext(ctx).
		Where("category = ?", categoryID).
		Order("id asc").
		Find(&out).Error
	return out, err
}

// SearchQuestions returns all questions whose text contains term as a
// case-insensitive substring, ordered by id ascending. The caller supplies
// term already lower-cased.
func SearchQuestions(ctx context.Context, db *gorm.DB, term string) ([]domain.Question, error) {
	var out []domain.Question
	err := db.WithContext(ctx).
		Where("LOWER(question) LIKE ?", "%"+term+"%").
		Order("id asc").
		Find(&out).Error
	return out, err
}

// GetQuestion fetches a question by id, returning ErrNotFound if missing.
func GetQuestion(ctx context.Context, db *gorm.DB, id int) (*domain.Question, error) {
	var q domain.Question
	if err := db.WithContext(ctx).Where("id = ?", id).First(&q).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

// CreateQuestion inserts a new question row; the store assigns the id.
func CreateQuestion(ctx context.Context, db *gorm.DB, q *domain.Question) error {
	return db.WithContext(ctx).Create(q).Error
}

// DeleteQuestion removes the question with the given id. If no row was
// deleted, it returns ErrNotFound.
func DeleteQuestion(ctx context.Context, db *gorm.DB, id int) error {
	res := db.WithContext(ctx).Delete(&domain.Question{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// QuizCandidates returns the questions eligible for a quiz pick: filtered to
// categoryID when it is non-zero, excluding the ids in exclude. categoryID 0
// means "all categories".
func QuizCandidates(ctx context.Context, db *gorm.DB, categoryID int, exclude []int) ([]domain.Question, error) {
	q := db.WithContext(ctx).Model(&domain.Question{})
	if categoryID != 0 {
		q = q.Where("category = ?", categoryID)
	}
	if len(exclude) > 0 {
		q = q.Where("id NOT IN ?", exclude)
	}
	var out []domain.Question
	err := q.Order("id asc").Find(&out).Error
	return out, err
}
