// File: internal/api/court.go
package api

import "esporteagenda/internal/model"

// CourtsResponse wraps a court listing.
// swagger:model api.CourtsResponse
type CourtsResponse struct {
	Quadras []model.Court `json:"quadras"`
}

// CreateCourtRequest is a multipart form; the image travels as the
// "quadraImage" file part and is required.
// swagger:model api.CreateCourtRequest
type CreateCourtRequest struct {
	Nome string `form:"nome" validate:"required" example:"Quadra de Tênis A"`
	Tipo string `form:"tipo" validate:"required" example:"Saibro"`
}

// swagger:model api.CreateCourtResponse
type CreateCourtResponse struct {
	Message string `json:"message"`
	ID      int    `json:"id" example:"4"`
}

// UpdateCourtRequest edits an owner's court details.
// swagger:model api.UpdateCourtRequest
type UpdateCourtRequest struct {
	Nome              string `json:"nome" validate:"required"`
	Endereco          string `json:"endereco" validate:"required"`
	Descricao         string `json:"descricao" validate:"required"`
	HorarioAbertura   string `json:"horario_abertura" validate:"required"`
	HorarioFechamento string `json:"horario_fechamento" validate:"required"`
}

// OwnerReservationsResponse lists the bookings against an owner's courts.
// swagger:model api.OwnerReservationsResponse
type OwnerReservationsResponse struct {
	Reservas []model.OwnerReservation `json:"reservas"`
}
