package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anunita/TriviaAPI/internal/domain"
)

// QuizResponse is the payload for POST /quizzes. Question is null once the
// eligible set is exhausted; the client treats that as end of game.
type QuizResponse struct {
	Success  bool             `json:"success"`
	Question *domain.Question `json:"question"`
}

// PlayQuiz handles POST /quizzes.
//
// The body must carry both quiz_category and previous_questions; a body
// missing either key is a 422. Keys that are present but ill-typed (a null
// or non-object category, a null or non-array previous list, non-integer
// entries) are a 400. Category id 0 means all categories.
func (h *Handlers) PlayQuiz(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusUnprocessableEntity, MsgUnprocessable)
		return
	}

	rawCat, hasCat := body["quiz_category"]
	rawPrev, hasPrev := body["previous_questions"]
	if !hasCat || !hasPrev {
		fail(c, http.StatusUnprocessableEntity, MsgUnprocessable)
		return
	}

	cat, isObj := rawCat.(map[string]any)
	if !isObj {
		fail(c, http.StatusBadRequest, MsgBadRequest)
		return
	}
	categoryID, okID := asInt(cat["id"])
	if !okID {
		fail(c, http.StatusBadRequest, MsgBadRequest)
		return
	}

	rawList, isList := rawPrev.([]any)
	if !isList {
		fail(c, http.StatusBadRequest, MsgBadRequest)
		return
	}
	previous := make([]int, 0, len(rawList))
	for _, v := range rawList {
		id, okV := asInt(v)
		if !okV {
			fail(c, http.StatusBadRequest, MsgBadRequest)
			return
		}
		previous = append(previous, id)
	}

	q, err := h.quizSvc.Next(c.Request.Context(), categoryID, previous)
	if err != nil {
		fail(c, http.StatusInternalServerError, MsgInternal)
		return
	}

	ok(c, http.StatusOK, QuizResponse{Success: true, Question: q})
}
