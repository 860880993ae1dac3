package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"esporteagenda/internal/database"
	"esporteagenda/internal/model"
)

const userColumns = `id, name, email, password_hash, role, phone, photo_url, reset_token, reset_expires, created_at`

func scanUser(row interface{ Scan(dest ...any) error }) (*model.User, error) {
	u := &model.User{}
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.Phone,
		&u.PhotoURL,
		&u.ResetToken,
		&u.ResetExpires,
		&u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func GetUserByID(ctx context.Context, db database.DB, userID int) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`,
		userID,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("GetUserByID: %w", err)
	}
	return u, nil
}

func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`,
		email,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("GetUserByEmail: %w", err)
	}
	return u, nil
}

func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash, role)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, photo_url, created_at`,
		u.Name,
		u.Email,
		u.PasswordHash,
		u.Role,
	)
	if err := row.Scan(&u.ID, &u.PhotoURL, &u.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

// ProfileUpdate carries the optional profile fields; nil means unchanged.
type ProfileUpdate struct {
	Name         *string
	Email        *string
	Phone        *string
	PhotoURL     *string
	PasswordHash *string
}

// UpdateUserProfile applies only the fields present in the update.
func UpdateUserProfile(ctx context.Context, db database.DB, userID int, p ProfileUpdate) error {
	var (
		parts []string
		args  []any
	)
	add := func(column string, value *string) {
		if value == nil {
			return
		}
		args = append(args, *value)
		parts = append(parts, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	add("name", p.Name)
	add("email", p.Email)
	add("phone", p.Phone)
	add("photo_url", p.PhotoURL)
	add("password_hash", p.PasswordHash)

	if len(parts) == 0 {
		return errors.New("UpdateUserProfile: no fields to update")
	}

	args = append(args, userID)
	sql := fmt.Sprintf(`UPDATE users SET %s WHERE id = $%d`, strings.Join(parts, ", "), len(args))
	if _, err := db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("UpdateUserProfile: %w", err)
	}
	return nil
}

// SetResetToken stores a password-reset token for the address. The returned
// bool is false when no account has that email.
func SetResetToken(ctx context.Context, db database.DB, email, token string, expires time.Time) (bool, error) {
	tag, err := db.Exec(ctx,
		`UPDATE users
		 SET reset_token = $1, reset_expires = $2
		 WHERE email = $3`,
		token,
		expires,
		email,
	)
	if err != nil {
		return false, fmt.Errorf("SetResetToken: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// GetUserByResetToken resolves an unexpired reset token to its user.
func GetUserByResetToken(ctx context.Context, db database.DB, token string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users
		 WHERE reset_token = $1 AND reset_expires > now()`,
		token,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("GetUserByResetToken: %w", err)
	}
	return u, nil
}

// ResetPassword replaces the hash and clears the reset fields.
func ResetPassword(ctx context.Context, db database.DB, userID int, passwordHash string) error {
	_, err := db.Exec(ctx,
		`UPDATE users
		 SET password_hash = $1, reset_token = NULL, reset_expires = NULL
		 WHERE id = $2`,
		passwordHash,
		userID,
	)
	if err != nil {
		return fmt.Errorf("ResetPassword: %w", err)
	}
	return nil
}
