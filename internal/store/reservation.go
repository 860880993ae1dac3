package store

import (
	"context"
	"fmt"

	"esporteagenda/internal/database"
	"esporteagenda/internal/model"
)

// ListReservationsForDates fetches the occupied (date, slot) pairs of a
// court over a set of dates with a single query.
func ListReservationsForDates(ctx context.Context, db database.DB, courtID int, dates []string) ([]model.Reservation, error) {
	rows, err := db.Query(ctx,
		`SELECT date, slot FROM reservations
		 WHERE court_id = $1 AND date = ANY($2)`,
		courtID,
		dates,
	)
	if err != nil {
		return nil, fmt.Errorf("ListReservationsForDates: %w", err)
	}
	defer rows.Close()

	reservations := []model.Reservation{}
	for rows.Next() {
		r := model.Reservation{CourtID: courtID}
		if err := rows.Scan(&r.Date, &r.Slot); err != nil {
			return nil, fmt.Errorf("ListReservationsForDates: %w", err)
		}
		reservations = append(reservations, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListReservationsForDates: %w", err)
	}
	return reservations, nil
}

// ReservationExists reports whether the (court, date, slot) tuple is taken.
// It accepts a Querier so the booking coordinator can run it inside its
// transaction.
func ReservationExists(ctx context.Context, q database.Querier, courtID int, date, slot string) (bool, error) {
	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS (
		     SELECT 1 FROM reservations
		     WHERE court_id = $1 AND date = $2 AND slot = $3
		 )`,
		courtID,
		date,
		slot,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("ReservationExists: %w", err)
	}
	return exists, nil
}

// InsertReservation creates one reservation row and returns its id. The
// UNIQUE (court_id, date, slot) index rejects racing duplicates.
func InsertReservation(ctx context.Context, q database.Querier, courtID, userID int, date, slot string) (int, error) {
	var id int
	err := q.QueryRow(ctx,
		`INSERT INTO reservations (court_id, user_id, date, slot)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		courtID,
		userID,
		date,
		slot,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("InsertReservation: %w", err)
	}
	return id, nil
}

// ListOwnerReservations joins reservations on an owner's courts with the
// booking client's name, most recent first.
func ListOwnerReservations(ctx context.Context, db database.DB, ownerID int) ([]model.OwnerReservation, error) {
	rows, err := db.Query(ctx,
		`SELECT r.id, r.date, r.slot, u.name AS client_name, c.name AS court_name
		 FROM reservations r
		 JOIN users u ON r.user_id = u.id
		 JOIN courts c ON r.court_id = c.id
		 WHERE c.owner_id = $1
		 ORDER BY r.date DESC, r.slot DESC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListOwnerReservations: %w", err)
	}
	defer rows.Close()

	reservations := []model.OwnerReservation{}
	for rows.Next() {
		var r model.OwnerReservation
		if err := rows.Scan(&r.ID, &r.Date, &r.Slot, &r.ClientName, &r.CourtName); err != nil {
			return nil, fmt.Errorf("ListOwnerReservations: %w", err)
		}
		reservations = append(reservations, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListOwnerReservations: %w", err)
	}
	return reservations, nil
}
