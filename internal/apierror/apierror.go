// Package apierror provides the error response envelopes for the API.
// All errors returned to clients go through this package so that internal
// details (stack traces, driver errors) never leak to the wire.
package apierror

// APIError is the `{"error": "..."}` body used by controller-level failures.
type APIError struct {
	Error string `json:"error"`
}

func New(msg string) *APIError {
	return &APIError{Error: msg}
}

// ServerError is the `{"error":{"message":"..."}}` envelope produced by the
// top-level recovery and error middleware.
type ServerError struct {
	Error ServerErrorBody `json:"error"`
}

type ServerErrorBody struct {
	Message string `json:"message"`
}

func NewServer(msg string) *ServerError {
	return &ServerError{Error: ServerErrorBody{Message: msg}}
}
