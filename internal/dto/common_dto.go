package dto

import "github.com/litrevu/litrevu-api/internal/validation"

type ErrorResponse struct {
	Error   bool                   `json:"error"`
	Message string                 `json:"message"`
	Fields  validation.FieldErrors `json:"fields,omitempty"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
