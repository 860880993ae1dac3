// File: internal/model/reservation.go
package model

import "time"

// Reservation occupies exactly one (court, date, slot) tuple; the database
// enforces uniqueness of that tuple. Date is "YYYY-MM-DD" and Slot is
// "HH:MM", both treated as opaque local labels.
type Reservation struct {
	ID        int       `db:"id" json:"id"`
	CourtID   int       `db:"court_id" json:"quadra_id"`
	UserID    int       `db:"user_id" json:"usuario_id"`
	Date      string    `db:"date" json:"data"`
	Slot      string    `db:"slot" json:"horario"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// OwnerReservation is a reservation joined with the booking client and court
// names, as listed on the owner dashboard.
type OwnerReservation struct {
	ID         int    `db:"id" json:"id"`
	Date       string `db:"date" json:"data"`
	Slot       string `db:"slot" json:"horario"`
	ClientName string `db:"client_name" json:"cliente_nome"`
	CourtName  string `db:"court_name" json:"quadra_nome"`
}
