// File: internal/api/profile.go
package api

// ProfileResponse is the authenticated user's own profile.
// swagger:model api.ProfileResponse
type ProfileResponse struct {
	ID       int     `json:"id" example:"1"`
	Nome     string  `json:"nome" example:"Alice"`
	Email    string  `json:"email" example:"alice@example.com"`
	Telefone *string `json:"telefone"`
	FotoURL  string  `json:"foto_perfil_url" example:"/assets/images/placeholder.jpg"`
	Tipo     string  `json:"tipo" example:"cliente"`
}

// UpdateProfileRequest is a multipart form; every field is optional and the
// profile photo travels as the "fotoPerfil" file part.
// swagger:model api.UpdateProfileRequest
type UpdateProfileRequest struct {
	Nome     string `form:"nome"`
	Email    string `form:"email" validate:"omitempty,email"`
	Telefone string `form:"telefone"`
	Senha    string `form:"senha"`
}
