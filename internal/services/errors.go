// Package services defines the business logic for categories, questions, and
// quiz picks. This file centralizes common service-level error values so that
// they can be consistently returned by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer; translation
// into the HTTP error envelope is performed at the handler layer.
package services

import "errors"

var (
	// ErrNoCategories indicates that no categories exist in the store where a
	// non-empty set is expected.
	ErrNoCategories = errors.New("no categories exist")

	// ErrEmptyPage is returned when the requested page window over a question
	// result set contains no items (page beyond range, or zero rows at all).
	ErrEmptyPage = errors.New("page is empty")

	// ErrQuestionNotFound indicates that the requested question does not exist.
	ErrQuestionNotFound = errors.New("question not found")

	// ErrMissingSearchTerm is returned when a search is attempted with an
	// absent or empty search term.
	ErrMissingSearchTerm = errors.New("search term is missing")
)
