// This file implements the QuizService, which performs the stateless
// "next question" pick: filter the candidate set by category and the
// caller-supplied exclusion list, then select one candidate uniformly at
// random. No server-side session tracks quiz progress; the caller resends
// the accumulated previous-question ids on every call.
package services

import (
	"context"
	"math/rand/v2"

	"gorm.io/gorm"

	"github.com/anunita/TriviaAPI/internal/domain"
)

// QuizService picks the next quiz question. The random source is injectable
// so tests can pin the selection.
type QuizService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the question repository used by this service.
	Repo QuestionRepo
	// IntN returns a uniform value in [0, n); defaults to math/rand/v2.
	IntN func(n int) int
}

// NewQuizService constructs a QuizService backed by the process-wide
// random source.
func NewQuizService(db *gorm.DB, r QuestionRepo) *QuizService {
	return &QuizService{DB: db, Repo: r, IntN: rand.IntN}
}

// Next returns one question chosen uniformly at random from the candidate
// set: questions in categoryID (0 means all categories) whose id is not in
// previous. An exhausted candidate set returns (nil, nil), the "quiz over"
// signal, not a fault.
func (s *QuizService) Next(ctx context.Context, categoryID int, previous []int) (*domain.Question, error) {
	candidates, err := s.Repo.QuizCandidates(ctx, s.DB, categoryID, previous)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	intn := s.IntN
	if intn == nil {
		intn = rand.IntN
	}
	q := candidates[intn(len(candidates))]
	return &q, nil
}
