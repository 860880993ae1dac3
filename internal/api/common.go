// File: internal/api/common.go
package api

// ErrorResponse is the uniform error body.
// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Message string `json:"message"`
}

// MessageResponse is the uniform success body for mutations without data.
// swagger:model api.MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
}
