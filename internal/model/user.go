// File: internal/model/user.go
package model

import "time"

// Roles a user account can hold. Owners manage courts, clients book them.
const (
	RoleClient = "cliente"
	RoleOwner  = "dono"
)

type User struct {
	ID           int        `db:"id" json:"id"`
	Name         string     `db:"name" json:"nome"`
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"password_hash" json:"-"`
	Role         string     `db:"role" json:"tipo"`
	Phone        *string    `db:"phone" json:"telefone"`
	PhotoURL     string     `db:"photo_url" json:"foto_perfil_url"`
	ResetToken   *string    `db:"reset_token" json:"-"`
	ResetExpires *time.Time `db:"reset_expires" json:"-"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
}
