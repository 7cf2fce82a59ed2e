// Package handlers defines the client-visible fault messages used across all
// API endpoints.
//
// Every fault renders the uniform envelope {success:false, error:<status>,
// message:<text>} via the fail() helper in response.go. The message strings
// below are part of the public contract: clients and the test-suite match on
// them verbatim, so they must stay stable.
package handlers

const (
	MsgNotFound         = "resource not found"
	MsgUnprocessable    = "unprocessable"
	MsgBadRequest       = "bad request"
	MsgInternal         = "internal server error"
	MsgMethodNotAllowed = "method not allowed"
)
