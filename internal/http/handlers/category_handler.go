package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anunita/TriviaAPI/internal/services"
)

// CategoriesResponse is the payload for GET /categories: the full id → type
// mapping of every category.
type CategoriesResponse struct {
	Success    bool           `json:"success"`
	Categories map[int]string `json:"categories"`
}

// ListCategories handles GET /categories.
//
// An empty store is a 404 fault rather than an empty mapping.
func (h *Handlers) ListCategories(c *gin.Context) {
	cats, err := h.catSvc.List(c.Request.Context())
	if err != nil {
		switch err {
		case services.ErrNoCategories:
			fail(c, http.StatusNotFound, MsgNotFound)
		default:
			fail(c, http.StatusInternalServerError, MsgInternal)
		}
		return
	}

	ok(c, http.StatusOK, CategoriesResponse{Success: true, Categories: cats})
}
