// File: internal/api/booking.go
package api

import "esporteagenda/internal/service"

// DailySlotsResponse lists the free slots of one court on one date.
// swagger:model api.DailySlotsResponse
type DailySlotsResponse struct {
	Horarios []string `json:"horarios"`
}

// MultiSlotsRequest asks for the slots free on every one of the dates.
// swagger:model api.MultiSlotsRequest
type MultiSlotsRequest struct {
	QuadraID int      `json:"quadraId" validate:"required" example:"1"`
	Dates    []string `json:"dates" validate:"required,min=1"`
}

// swagger:model api.MultiSlotsResponse
type MultiSlotsResponse struct {
	HorariosComuns []string `json:"horariosComuns"`
}

// ReservationsRequest is the batch booking payload. Per-entry validation is
// the coordinator's job, so entries carry no validate tags of their own.
// swagger:model api.ReservationsRequest
type ReservationsRequest struct {
	Reservas []service.BookingRequest `json:"reservas" validate:"required,min=1"`
}

// BatchResponse reports the aggregate outcome plus one detail per entry, in
// request order.
// swagger:model api.BatchResponse
type BatchResponse struct {
	Message string                `json:"message"`
	Details []service.EntryResult `json:"details"`
}
