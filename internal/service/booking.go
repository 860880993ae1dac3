// File: internal/service/booking.go
package service

import (
	"context"
	"errors"
	"fmt"

	"esporteagenda/internal/database"
	"esporteagenda/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
)

// Per-entry failure reasons reported in a batch result.
const (
	ReasonInvalidData  = "invalid_data"
	ReasonConflict     = "conflict"
	ReasonStorageError = "storage_error"
)

const uniqueViolation = "23505"

// BookingRequest is one (court, date, slot) entry of a batch.
type BookingRequest struct {
	CourtID int    `json:"quadra_id"`
	Date    string `json:"data"`
	Slot    string `json:"horario"`
}

// EntryResult is the per-entry outcome of a batch. Reason is set only on
// failure; ID only on success (and only meaningful if the batch committed).
type EntryResult struct {
	Success bool   `json:"success"`
	Date    string `json:"data"`
	Slot    string `json:"horario"`
	ID      int    `json:"id,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

var (
	reservationExists = store.ReservationExists
	insertReservation = store.InsertReservation
)

type slotKey struct {
	courtID int
	date    string
	slot    string
}

// BookBatch reserves every entry or none of them. All entries run inside one
// transaction: each is validated, checked against existing reservations and
// inserted, and every entry receives a result before the commit/rollback
// decision. Any failed entry rolls the whole batch back; committed is false
// in that case and the results carry the per-entry reasons. A non-nil error
// means the transaction itself could not be driven (begin/commit failure).
//
// Duplicated (court, date, slot) entries inside one batch are rejected as
// conflicts during validation, before any SQL runs. Races between batches
// are decided by the UNIQUE (court_id, date, slot) index: the loser's insert
// fails with a unique violation, reported as a conflict.
func BookBatch(ctx context.Context, db database.DB, userID int, reqs []BookingRequest) (results []EntryResult, committed bool, err error) {
	if len(reqs) == 0 {
		return nil, false, ErrInvalidInput
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("BookBatch: begin: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op once committed

	results = make([]EntryResult, len(reqs))
	seen := make(map[slotKey]struct{}, len(reqs))
	failed := false

	for i, r := range reqs {
		res := EntryResult{Date: r.Date, Slot: r.Slot}
		key := slotKey{r.CourtID, r.Date, r.Slot}

		if r.CourtID <= 0 || !ValidDate(r.Date) || !ValidSlot(r.Slot) {
			res.Reason = ReasonInvalidData
		} else if _, dup := seen[key]; dup {
			res.Reason = ReasonConflict
		} else {
			seen[key] = struct{}{}
			res = bookEntry(ctx, tx, userID, r)
		}

		if !res.Success {
			failed = true
		}
		results[i] = res
	}

	if failed {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			log.Error().Err(rbErr).Msg("booking batch rollback failed")
		}
		return results, false, nil
	}
	if err := tx.Commit(ctx); err != nil {
		return results, false, fmt.Errorf("BookBatch: commit: %w", err)
	}
	return results, true, nil
}

// bookEntry runs one entry's conflict check and insert inside a savepoint,
// so a failed insert does not poison the surrounding transaction for the
// entries still to be evaluated.
func bookEntry(ctx context.Context, tx pgx.Tx, userID int, r BookingRequest) EntryResult {
	res := EntryResult{Date: r.Date, Slot: r.Slot}

	sp, err := tx.Begin(ctx)
	if err != nil {
		log.Error().Err(err).Int("quadra_id", r.CourtID).Str("data", r.Date).Str("horario", r.Slot).
			Msg("reservation savepoint failed")
		res.Reason = ReasonStorageError
		return res
	}

	exists, err := reservationExists(ctx, sp, r.CourtID, r.Date, r.Slot)
	if err != nil {
		log.Error().Err(err).Int("quadra_id", r.CourtID).Str("data", r.Date).Str("horario", r.Slot).
			Msg("reservation conflict check failed")
		res.Reason = ReasonStorageError
		_ = sp.Rollback(ctx)
		return res
	}
	if exists {
		res.Reason = ReasonConflict
		_ = sp.Rollback(ctx)
		return res
	}

	id, err := insertReservation(ctx, sp, r.CourtID, userID, r.Date, r.Slot)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			res.Reason = ReasonConflict
		} else {
			log.Error().Err(err).Int("quadra_id", r.CourtID).Str("data", r.Date).Str("horario", r.Slot).
				Msg("reservation insert failed")
			res.Reason = ReasonStorageError
		}
		_ = sp.Rollback(ctx)
		return res
	}

	if err := sp.Commit(ctx); err != nil {
		log.Error().Err(err).Int("quadra_id", r.CourtID).Str("data", r.Date).Str("horario", r.Slot).
			Msg("reservation savepoint release failed")
		res.Reason = ReasonStorageError
		return res
	}

	res.Success = true
	res.ID = id
	return res
}
