// Question HTTP handlers.
//
// This file exposes the REST endpoints for question resources:
//   - GET    /questions              (list, paginated, with category mapping)
//   - POST   /questions              (create)
//   - DELETE /questions/{id}         (delete)
//   - POST   /questions/search       (case-insensitive substring search)
//   - GET    /categories/{id}/questions (list filtered by category)
//
// Handlers are transport-thin: they validate and coerce the loosely-typed
// request bodies, delegate to application services, and translate service
// errors into the uniform envelope. The create and search bodies are
// deliberately decoded as generic JSON objects (the contract is defined by
// key presence and value shape, not by a rigid struct) with typed accessors
// doing deterministic coercion.
package handlers

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/anunita/TriviaAPI/internal/domain"
	"github.com/anunita/TriviaAPI/internal/services"
	"github.com/anunita/TriviaAPI/internal/utils"
)

//
// Service contracts (context-aware)
//

// CategoryService defines the category read operations consumed by handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type CategoryService interface {
	// List returns the id → type mapping, or services.ErrNoCategories.
	List(ctx context.Context) (map[int]string, error)
	// Map returns the id → type mapping without an emptiness fault.
	Map(ctx context.Context) (map[int]string, error)
}

// QuestionService defines question operations consumed by HTTP handlers.
type QuestionService interface {
	// ListPage returns one page of all questions plus the total count.
	ListPage(ctx context.Context, page int) ([]domain.Question, int, error)
	// ListByCategoryPage returns one page of a category's questions plus the total.
	ListByCategoryPage(ctx context.Context, categoryID, page int) ([]domain.Question, int, error)
	// Search returns one page of substring matches plus the total match count.
	Search(ctx context.Context, term string, page int) ([]domain.Question, int, error)
	// Create persists a new question with a store-assigned id.
	Create(ctx context.Context, in services.CreateQuestionInput) (*domain.Question, error)
	// Delete removes a question by id, or services.ErrQuestionNotFound.
	Delete(ctx context.Context, id int) error
}

// QuizService defines the stateless next-question pick.
type QuizService interface {
	// Next picks a random eligible question; nil means the set is exhausted.
	Next(ctx context.Context, categoryID int, previous []int) (*domain.Question, error)
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints for categories, questions, and quizzes.
// It depends on abstract service interfaces to keep transport concerns
// separate from business logic.
type Handlers struct {
	catSvc  CategoryService
	qSvc    QuestionService
	quizSvc QuizService
}

// New constructs and returns a Handlers instance bound to the given services.
func New(catSvc CategoryService, qSvc QuestionService, quizSvc QuizService) *Handlers {
	return &Handlers{catSvc: catSvc, qSvc: qSvc, quizSvc: quizSvc}
}

//
// DTOs
//

// ListQuestionsResponse is the payload for GET /questions: one page of
// questions, the full unfiltered count, the complete category mapping, and a
// null current_category (this endpoint applies no category filter).
type ListQuestionsResponse struct {
	Success         bool              `json:"success"`
	Questions       []domain.Question `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	Categories      map[int]string    `json:"categories"`
	CurrentCategory *int              `json:"current_category"`
}

// SearchQuestionsResponse is the payload for POST /questions/search.
// TotalQuestions counts every match, not just the returned page.
type SearchQuestionsResponse struct {
	Success         bool              `json:"success"`
	Questions       []domain.Question `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	CurrentCategory *int              `json:"current_category"`
}

// CategoryQuestionsResponse is the payload for GET /categories/{id}/questions.
// CurrentCategory echoes the requested id.
type CategoryQuestionsResponse struct {
	Success         bool              `json:"success"`
	Questions       []domain.Question `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	CurrentCategory int               `json:"current_category"`
}

// CreateQuestionResponse returns the store-assigned id of a new question.
type CreateQuestionResponse struct {
	Success bool `json:"success"`
	Created int  `json:"created"`
}

// DeleteQuestionResponse returns the id of the question just removed.
type DeleteQuestionResponse struct {
	Success bool `json:"success"`
	Deleted int  `json:"deleted"`
}

//
// Helpers
//

// pageParam reads the optional 1-based `page` query parameter; missing or
// non-numeric values default to page 1.
func pageParam(c *gin.Context) int {
	return utils.AtoiDefault(c.Query("page"), 1)
}

// asString returns v as a string when it is one.
func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// asInt coerces a decoded JSON value to an int: integral numbers pass,
// fractional numbers fail, and numeric strings are accepted for parity with
// the loosely-typed clients this API inherited.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	case string:
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

//
// Handlers
//

// ListQuestions handles GET /questions?page=N.
//
// Returns one fixed-size page of questions ordered by id ascending, the total
// question count, and the full category mapping. An empty page, whether
// beyond the range or with no questions at all, is a 404 fault.
func (h *Handlers) ListQuestions(c *gin.Context) {
	ctx := c.Request.Context()

	page, total, err := h.qSvc.ListPage(ctx, pageParam(c))
	if err != nil {
		switch err {
		case services.ErrEmptyPage:
			fail(c, http.StatusNotFound, MsgNotFound)
		default:
			fail(c, http.StatusInternalServerError, MsgInternal)
		}
		return
	}

	cats, err := h.catSvc.Map(ctx)
	if err != nil {
		fail(c, http.StatusInternalServerError, MsgInternal)
		return
	}

	ok(c, http.StatusOK, ListQuestionsResponse{
		Success:         true,
		Questions:       page,
		TotalQuestions:  total,
		Categories:      cats,
		CurrentCategory: nil, // no category filter on this endpoint
	})
}

// CreateQuestion handles POST /questions.
//
// The body must contain all of question, answer, difficulty, category; each
// value must be non-null and, when textual, non-empty. The emptiness rule is
// string-oriented on purpose: numeric zero passes validation. Everything that fails validation, and any store
// failure, is a 422 fault.
func (h *Handlers) CreateQuestion(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusUnprocessableEntity, MsgUnprocessable)
		return
	}

	for _, key := range []string{"question", "answer", "difficulty", "category"} {
		v, present := body[key]
		if !present || v == nil {
			fail(c, http.StatusUnprocessableEntity, MsgUnprocessable)
			return
		}
		if s, isStr := asString(v); isStr && s == "" {
			fail(c, http.StatusUnprocessableEntity, MsgUnprocessable)
			return
		}
	}

	question, okQ := asString(body["question"])
	answer, okA := asString(body["answer"])
	difficulty, okD := asInt(body["difficulty"])
	category, okC := asInt(body["category"])
	if !okQ || !okA || !okD || !okC {
		fail(c, http.StatusUnprocessableEntity, MsgUnprocessable)
		return
	}

	q, err := h.qSvc.Create(c.Request.Context(), services.CreateQuestionInput{
		Question:   question,
		Answer:     answer,
		Difficulty: difficulty,
		Category:   category,
	})
	if err != nil {
		fail(c, http.StatusUnprocessableEntity, MsgUnprocessable)
		return
	}

	ok(c, http.StatusOK, CreateQuestionResponse{Success: true, Created: q.ID})
}

// DeleteQuestion handles DELETE /questions/{id}.
//
// A non-numeric id never matches the route contract and is a 404. A numeric
// id that does not exist, and any store failure during lookup or delete, is
// a 422; the delete path does not distinguish the two once the request is
// well-formed.
func (h *Handlers) DeleteQuestion(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		fail(c, http.StatusNotFound, MsgNotFound)
		return
	}

	if err := h.qSvc.Delete(c.Request.Context(), id); err != nil {
		fail(c, http.StatusUnprocessableEntity, MsgUnprocessable)
		return
	}

	ok(c, http.StatusOK, DeleteQuestionResponse{Success: true, Deleted: id})
}

// SearchQuestions handles POST /questions/search.
//
// The body carries an optional searchTerm. An absent, empty, or non-string
// term is a 404 fault (the canonical contract for this API); a store failure
// while running the filtered query is a 500.
func (h *Handlers) SearchQuestions(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusNotFound, MsgNotFound)
		return
	}

	term, isStr := asString(body["searchTerm"])
	if !isStr || term == "" {
		fail(c, http.StatusNotFound, MsgNotFound)
		return
	}

	page, total, err := h.qSvc.Search(c.Request.Context(), term, pageParam(c))
	if err != nil {
		switch err {
		case services.ErrMissingSearchTerm:
			fail(c, http.StatusNotFound, MsgNotFound)
		default:
			fail(c, http.StatusInternalServerError, MsgInternal)
		}
		return
	}

	ok(c, http.StatusOK, SearchQuestionsResponse{
		Success:         true,
		Questions:       page,
		TotalQuestions:  total,
		CurrentCategory: nil,
	})
}

// ListByCategory handles GET /categories/{id}/questions?page=N.
//
// The path id must be a non-negative integer; anything else is a 404, the
// same as a route miss. An empty page (no questions in the category, or page
// beyond range) is also a 404. CurrentCategory echoes the requested id.
func (h *Handlers) ListByCategory(c *gin.Context) {
	categoryID, err := strconv.Atoi(c.Param("id"))
	if err != nil || categoryID < 0 {
		fail(c, http.StatusNotFound, MsgNotFound)
		return
	}

	page, total, err := h.qSvc.ListByCategoryPage(c.Request.Context(), categoryID, pageParam(c))
	if err != nil {
		switch err {
		case services.ErrEmptyPage:
			fail(c, http.StatusNotFound, MsgNotFound)
		default:
			fail(c, http.StatusInternalServerError, MsgInternal)
		}
		return
	}

	ok(c, http.StatusOK, CategoryQuestionsResponse{
		Success:         true,
		Questions:       page,
		TotalQuestions:  total,
		CurrentCategory: categoryID,
	})
}
