package entity

import "time"

// User representa un usuario del sistema; solo participa en autenticación.
type User struct {
	ID           string
	Name         string
	Email        string // único a nivel global
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
