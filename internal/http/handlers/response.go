// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the standard response utilities used across all endpoints.
// Success payloads carry a top-level `success: true` next to their data;
// failures always render the uniform error envelope so the API stays
// predictable and machine-friendly.
//
// Example error response:
//
//	HTTP/1.1 404 Not Found
//	{ "success": false, "error": 404, "message": "resource not found" }
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anunita/TriviaAPI/internal/http/middleware"
)

// ErrorResponse is the uniform error envelope returned by all endpoints.
//
// Fields:
//   - Success: always false on the error path.
//   - Error: the HTTP status code, duplicated in the body so clients that
//     only see the payload can still branch on it.
//   - Message: a short, stable, human-readable description (see errors.go).
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// fail aborts the request with the uniform error envelope.
//
// Server errors (>=500) are logged with the request-scoped logger so the
// envelope can stay terse while the log keeps the detail.
func fail(c *gin.Context, status int, msg string) {
	if status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		lg.Error().
			Int("status", status).
			Str("message", msg).
			Msg("api error")
	}

	c.AbortWithStatusJSON(status, ErrorResponse{
		Success: false,
		Error:   status,
		Message: msg,
	})
}

// Fail is the exported variant of fail().
//
// External packages (e.g., router setup for NoRoute/NoMethod fallbacks) call
// Fail to return consistent envelopes without depending on unexported helpers.
func Fail(c *gin.Context, status int, msg string) { fail(c, status, msg) }

// ok writes a success JSON response with the given status code.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}
