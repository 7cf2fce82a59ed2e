// This file implements the CategoryService, which exposes the read-only
// category catalogue as the id → type mapping returned on the wire.
// Service-level errors (ErrNoCategories) are returned for predictable cases
// so handlers can map them to HTTP results consistently.
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/anunita/TriviaAPI/internal/domain"
)

// CategoryRepo defines the repository contract required by CategoryService.
type CategoryRepo interface {
	// ListCategories returns all categories ordered by type ascending.
	ListCategories(ctx context.Context, db *gorm.DB) ([]domain.Category, error)
}

// CategoryService provides read access to categories. Categories have no
// write operations through this API; they are seeded at bootstrap or managed
// out of band.
type CategoryService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the category repository used by this service.
	Repo CategoryRepo
}

// NewCategoryService constructs a CategoryService.
func NewCategoryService(db *gorm.DB, r CategoryRepo) *CategoryService {
	return &CategoryService{DB: db, Repo: r}
}

// List returns the id → type mapping of all categories. It returns
// ErrNoCategories when the store holds none.
func (s *CategoryService) List(ctx context.Context) (map[int]string, error) {
	m, err := s.Map(ctx)
	if err != nil {
		return nil, err
	}
	if len(m) == 0 {
		return nil, ErrNoCategories
	}
	return m, nil
}

// Map returns the id → type mapping without the emptiness check. Used by the
// question listing, which returns the mapping alongside a page regardless of
// how many categories exist.
func (s *CategoryService) Map(ctx context.Context) (map[int]string, error) {
	cats, err := s.Repo.ListCategories(ctx, s.DB)
	if err != nil {
		return nil, err
	}
	m := make(map[int]string, len(cats))
	for _, c := range cats {
		m[c.ID] = c.Type
	}
	return m, nil
}
