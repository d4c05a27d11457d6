// Package apierror holds the JSON envelopes of every 4xx/5xx response.
// Internal details (SQL errors, stack traces) never reach these types.
package apierror

// APIError is the envelope for every error response: {"detail": "..."}.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError lists the DTO fields that failed their tags, keyed by
// JSON field name.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validación", Fields: fields}
}
