// Package apierror defines the JSON error envelopes returned to clients.
// Every 4xx/5xx response goes through this package so the surface stays
// uniform and internal details (stack traces, DB errors) never leak out.
package apierror

// APIError carries a single human-readable message, mirroring the
// {"detail": "..."} shape frontends already consume.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError adds a per-field breakdown for failed input validation.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}
