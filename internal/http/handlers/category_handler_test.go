package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/anunita/TriviaAPI/internal/services"
)

func TestListCategories_OK(t *testing.T) {
	h := New(stubCategorySvc{
		list: func(context.Context) (map[int]string, error) {
			return map[int]string{1: "Science", 2: "Art", 3: "Geography"}, nil
		},
	}, stubQuestionSvc{}, stubQuizSvc{})
	r := newTestRouter(h)

	w := doJSON(t, r, http.MethodGet, "/categories", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200 (body %s)", w.Code, w.Body.String())
	}
	m := decodeBody(t, w)
	if m["success"] != true {
		t.Fatalf("success = %v; want true", m["success"])
	}
	cats, ok := m["categories"].(map[string]any)
	if !ok || len(cats) != 3 || cats["2"] != "Art" {
		t.Fatalf("categories = %v", m["categories"])
	}
}

func TestListCategories_Empty404(t *testing.T) {
	h := New(stubCategorySvc{
		list: func(context.Context) (map[int]string, error) {
			return nil, services.ErrNoCategories
		},
	}, stubQuestionSvc{}, stubQuizSvc{})
	r := newTestRouter(h)

	w := doJSON(t, r, http.MethodGet, "/categories", nil)
	assertEnvelope(t, w, http.StatusNotFound, MsgNotFound)
}

func TestListCategories_StoreFailure500(t *testing.T) {
	h := New(stubCategorySvc{
		list: func(context.Context) (map[int]string, error) {
			return nil, errors.New("db down")
		},
	}, stubQuestionSvc{}, stubQuizSvc{})
	r := newTestRouter(h)

	w := doJSON(t, r, http.MethodGet, "/categories", nil)
	assertEnvelope(t, w, http.StatusInternalServerError, MsgInternal)
}
