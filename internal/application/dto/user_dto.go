package dto

import "time"

// RegisterRequest entrada para registro (el password se hashea en el use case).
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate devuelve la primera restricción violada.
func (r RegisterRequest) Validate() error {
	if r.Email == "" {
		return violation("email es requerido")
	}
	if !validEmail(r.Email) {
		return violation("email debe ser una dirección válida")
	}
	if r.Password == "" {
		return violation("password es requerido")
	}
	if len(r.Password) < 6 {
		return violation("password debe tener al menos 6 caracteres")
	}
	return nil
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
