// File: internal/api/auth.go
package api

// RegisterRequest creates a client or owner account.
// swagger:model api.RegisterRequest
type RegisterRequest struct {
	Nome  string `json:"nome" validate:"required" example:"Alice"`
	Email string `json:"email" validate:"required,email" example:"alice@example.com"`
	Senha string `json:"senha" validate:"required" example:"Secret123!"`
	Tipo  string `json:"tipo" validate:"required,oneof=cliente dono" example:"cliente"`
}

// swagger:model api.LoginRequest
type LoginRequest struct {
	Email string `json:"email" validate:"required,email" example:"alice@example.com"`
	Senha string `json:"senha" validate:"required" example:"Secret123!"`
}

// LoginResponse carries the bearer token plus the display fields the front
// end stores.
// swagger:model api.LoginResponse
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	UserName    string `json:"userName" example:"Alice"`
	UserType    string `json:"userType" example:"cliente"`
}

// swagger:model api.ForgotPasswordRequest
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email" example:"alice@example.com"`
}

// swagger:model api.ResetPasswordRequest
type ResetPasswordRequest struct {
	Token string `json:"token" validate:"required"`
	Senha string `json:"senha" validate:"required"`
}
