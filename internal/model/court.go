// File: internal/model/court.go
package model

import "time"

// Court is a bookable sports court. OwnerID is nil for legacy seed rows that
// predate owner accounts. Opening and closing times are "HH:MM" labels; when
// either is empty the slot generator falls back to its defaults.
type Court struct {
	ID          int       `db:"id" json:"id"`
	Name        string    `db:"name" json:"nome"`
	Category    string    `db:"category" json:"tipo"`
	ImageURL    string    `db:"image_url" json:"imagem_url"`
	OwnerID     *int      `db:"owner_id" json:"dono_id"`
	Address     string    `db:"address" json:"endereco"`
	Description string    `db:"description" json:"descricao"`
	OpeningTime string    `db:"opening_time" json:"horario_abertura"`
	ClosingTime string    `db:"closing_time" json:"horario_fechamento"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
