// File: internal/service/availability.go
package service

import (
	"context"
	"errors"
	"fmt"

	"esporteagenda/internal/database"
	"esporteagenda/internal/store"

	"github.com/jackc/pgx/v5"
)

var (
	// ErrInvalidInput flags a malformed date set before any query runs.
	ErrInvalidInput = errors.New("invalid input")
	// ErrCourtNotFound flags an availability query for an unknown court.
	ErrCourtNotFound = errors.New("court not found")
)

var (
	getCourtByID             = store.GetCourtByID
	listReservationsForDates = store.ListReservationsForDates
)

// CommonFreeSlots returns the slots free on every one of the given dates for
// a court, in chronological order. The candidate sequence comes from the
// court's operating hours; occupancy is fetched with one batched query and
// intersected per date.
func CommonFreeSlots(ctx context.Context, db database.DB, courtID int, dates []string) ([]string, error) {
	if courtID <= 0 || len(dates) == 0 {
		return nil, ErrInvalidInput
	}
	for _, d := range dates {
		if !ValidDate(d) {
			return nil, ErrInvalidInput
		}
	}

	court, err := getCourtByID(ctx, db, courtID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCourtNotFound
		}
		return nil, fmt.Errorf("CommonFreeSlots: %w", err)
	}

	candidates := GenerateSlots(court.OpeningTime, court.ClosingTime)

	reservations, err := listReservationsForDates(ctx, db, courtID, dates)
	if err != nil {
		return nil, fmt.Errorf("CommonFreeSlots: %w", err)
	}

	occupied := make(map[string]map[string]struct{}, len(dates))
	for _, d := range dates {
		occupied[d] = map[string]struct{}{}
	}
	for _, r := range reservations {
		if set, ok := occupied[r.Date]; ok {
			set[r.Slot] = struct{}{}
		}
	}

	free := make([]string, 0, len(candidates))
	for _, slot := range candidates {
		taken := false
		for _, d := range dates {
			if _, ok := occupied[d][slot]; ok {
				taken = true
				break
			}
		}
		if !taken {
			free = append(free, slot)
		}
	}
	return free, nil
}

// FreeSlots is the single-date form of CommonFreeSlots.
func FreeSlots(ctx context.Context, db database.DB, courtID int, date string) ([]string, error) {
	return CommonFreeSlots(ctx, db, courtID, []string{date})
}
