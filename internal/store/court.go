package store

import (
	"context"
	"fmt"

	"esporteagenda/internal/database"
	"esporteagenda/internal/model"

	"github.com/jackc/pgx/v5"
)

const courtColumns = `id, name, category, image_url, owner_id, address, description, opening_time, closing_time, created_at`

func scanCourt(row interface{ Scan(dest ...any) error }) (*model.Court, error) {
	c := &model.Court{}
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Category,
		&c.ImageURL,
		&c.OwnerID,
		&c.Address,
		&c.Description,
		&c.OpeningTime,
		&c.ClosingTime,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func collectCourts(rows pgx.Rows) ([]model.Court, error) {
	defer rows.Close()
	courts := []model.Court{}
	for rows.Next() {
		c, err := scanCourt(rows)
		if err != nil {
			return nil, err
		}
		courts = append(courts, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return courts, nil
}

func ListCourts(ctx context.Context, db database.DB) ([]model.Court, error) {
	rows, err := db.Query(ctx, `SELECT `+courtColumns+` FROM courts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("ListCourts: %w", err)
	}
	courts, err := collectCourts(rows)
	if err != nil {
		return nil, fmt.Errorf("ListCourts: %w", err)
	}
	return courts, nil
}

func ListCourtsByOwner(ctx context.Context, db database.DB, ownerID int) ([]model.Court, error) {
	rows, err := db.Query(ctx,
		`SELECT `+courtColumns+` FROM courts WHERE owner_id = $1 ORDER BY id`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListCourtsByOwner: %w", err)
	}
	courts, err := collectCourts(rows)
	if err != nil {
		return nil, fmt.Errorf("ListCourtsByOwner: %w", err)
	}
	return courts, nil
}

func GetCourtByID(ctx context.Context, db database.DB, courtID int) (*model.Court, error) {
	row := db.QueryRow(ctx,
		`SELECT `+courtColumns+` FROM courts WHERE id = $1`,
		courtID,
	)
	c, err := scanCourt(row)
	if err != nil {
		return nil, fmt.Errorf("GetCourtByID: %w", err)
	}
	return c, nil
}

func CreateCourt(ctx context.Context, db database.DB, c *model.Court) (*model.Court, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO courts (name, category, image_url, owner_id, address, description, opening_time, closing_time)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at`,
		c.Name,
		c.Category,
		c.ImageURL,
		c.OwnerID,
		c.Address,
		c.Description,
		c.OpeningTime,
		c.ClosingTime,
	)
	if err := row.Scan(&c.ID, &c.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateCourt: %w", err)
	}
	return c, nil
}

// UpdateCourtDetails updates an owner's court. The owner scope is part of
// the statement, so a court the owner does not hold updates zero rows and
// the caller sees false.
func UpdateCourtDetails(ctx context.Context, db database.DB, ownerID int, c *model.Court) (bool, error) {
	tag, err := db.Exec(ctx,
		`UPDATE courts
		 SET name = $1, address = $2, description = $3, opening_time = $4, closing_time = $5
		 WHERE id = $6 AND owner_id = $7`,
		c.Name,
		c.Address,
		c.Description,
		c.OpeningTime,
		c.ClosingTime,
		c.ID,
		ownerID,
	)
	if err != nil {
		return false, fmt.Errorf("UpdateCourtDetails: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteCourtCascade removes a court and its reservations in one
// transaction; either both statements land or neither does.
func DeleteCourtCascade(ctx context.Context, db database.DB, courtID int) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("DeleteCourtCascade: begin: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op once committed

	if _, err := tx.Exec(ctx, `DELETE FROM reservations WHERE court_id = $1`, courtID); err != nil {
		return fmt.Errorf("DeleteCourtCascade: reservations: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM courts WHERE id = $1`, courtID); err != nil {
		return fmt.Errorf("DeleteCourtCascade: court: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("DeleteCourtCascade: commit: %w", err)
	}
	return nil
}
