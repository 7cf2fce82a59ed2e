// This file implements the QuestionService, which coordinates question
// listing (with the fixed-size page window), case-insensitive substring
// search, category filtering, creation, and deletion. List operations load
// the full ordered result set and cut the page window in memory, so the
// reported total is always the size of the unpaginated set.
//
// Service-level errors (ErrEmptyPage, ErrQuestionNotFound,
// ErrMissingSearchTerm) are returned for predictable cases so handlers can
// map them to HTTP results consistently.
package services

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"

	"github.com/anunita/TriviaAPI/internal/domain"
	"github.com/anunita/TriviaAPI/internal/repo"
	"github.com/anunita/TriviaAPI/internal/utils"
)

// DefaultPageSize is the fixed page window used when no size is configured.
const DefaultPageSize = 10

// QuestionRepo defines the repository contract required by QuestionService
// and QuizService.
type QuestionRepo interface {
	// ListQuestions returns all questions ordered by id ascending.
	ListQuestions(ctx context.Context, db *gorm.DB) ([]domain.Question, error)

	// ListQuestionsByCategory returns all questions in a category, id ascending.
	ListQuestionsByCategory(ctx context.Context, db *gorm.DB, categoryID int) ([]domain.Question, error)

	// SearchQuestions returns all questions matching a lower-cased substring.
	SearchQuestions(ctx context.Context, db *gorm.DB, term string) ([]domain.Question, error)

	// GetQuestion fetches a question by id or repo.ErrNotFound.
	GetQuestion(ctx context.Context, db *gorm.DB, id int) (*domain.Question, error)

	// CreateQuestion inserts a new question row; the store assigns the id.
	CreateQuestion(ctx context.Context, db *gorm.DB, q *domain.Question) error

	// DeleteQuestion removes a question by id or returns repo.ErrNotFound.
	DeleteQuestion(ctx context.Context, db *gorm.DB, id int) error

	// QuizCandidates returns questions eligible for a quiz pick.
	QuizCandidates(ctx context.Context, db *gorm.DB, categoryID int, exclude []int) ([]domain.Question, error)
}

// CreateQuestionInput carries the validated fields for a new question.
// Field validation (presence, null, emptiness) happens at the handler layer;
// the service persists what it is given.
type CreateQuestionInput struct {
	Question   string
	Answer     string
	Category   int
	Difficulty int
}

// QuestionService provides question-level operations. It is safe for
// concurrent use; all state is the shared DB handle.
type QuestionService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the question repository used by this service.
	Repo QuestionRepo
	// PageSize is the fixed page window; zero falls back to DefaultPageSize.
	PageSize int
}

// NewQuestionService constructs a QuestionService with the default page size.
func NewQuestionService(db *gorm.DB, r QuestionRepo) *QuestionService {
	return &QuestionService{DB: db, Repo: r, PageSize: DefaultPageSize}
}

// lowerCaser folds search terms for the case-insensitive LIKE match.
var lowerCaser = cases.Lower(language.Und)

func (s *QuestionService) pageSize() int {
	if s.PageSize > 0 {
		return s.PageSize
	}
	return DefaultPageSize
}

// ListPage returns the requested page window over all questions ordered by id
// ascending, plus the total question count. An empty window yields
// ErrEmptyPage.
func (s *QuestionService) ListPage(ctx context.Context, page int) ([]domain.Question, int, error) {
	all, err := s.Repo.ListQuestions(ctx, s.DB)
	if err != nil {
		return nil, 0, err
	}
	window := utils.Page(all, page, s.pageSize())
	if len(window) == 0 {
		return nil, 0, ErrEmptyPage
	}
	return window, len(all), nil
}

// ListByCategoryPage returns the requested page window over the questions in
// one category, plus the total match count. An empty window (no matches, or
// page beyond range) yields ErrEmptyPage.
func (s *QuestionService) ListByCategoryPage(ctx context.Context, categoryID, page int) ([]domain.Question, int, error) {
	all, err := s.Repo.ListQuestionsByCategory(ctx, s.DB, categoryID)
	if err != nil {
		return nil, 0, err
	}
	window := utils.Page(all, page, s.pageSize())
	if len(window) == 0 {
		return nil, 0, ErrEmptyPage
	}
	return window, len(all), nil
}

// Search returns the requested page window over the questions whose text
// contains term as a case-insensitive substring, plus the total match count.
// A blank term yields ErrMissingSearchTerm. Unlike the list operations, an
// empty result page is not a fault: search legitimately returns zero hits.
func (s *QuestionService) Search(ctx context.Context, term string, page int) ([]domain.Question, int, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, 0, ErrMissingSearchTerm
	}
	all, err := s.Repo.SearchQuestions(ctx, s.DB, lowerCaser.String(term))
	if err != nil {
		return nil, 0, err
	}
	window := utils.Page(all, page, s.pageSize())
	if window == nil {
		window = []domain.Question{}
	}
	return window, len(all), nil
}

// Create persists a new question and returns it with the store-assigned id.
func (s *QuestionService) Create(ctx context.Context, in CreateQuestionInput) (*domain.Question, error) {
	q := &domain.Question{
		Question:   in.Question,
		Answer:     in.Answer,
		Category:   in.Category,
		Difficulty: in.Difficulty,
	}
	if err := s.Repo.CreateQuestion(ctx, s.DB, q); err != nil {
		return nil, err
	}
	return q, nil
}

// Delete looks up the question by id and removes it. A missing row yields
// ErrQuestionNotFound; other store failures are propagated unchanged.
func (s *QuestionService) Delete(ctx context.Context, id int) error {
	if _, err := s.Repo.GetQuestion(ctx, s.DB, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrQuestionNotFound
		}
		return err
	}
	if err := s.Repo.DeleteQuestion(ctx, s.DB, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrQuestionNotFound
		}
		return err
	}
	return nil
}
