package dto

import (
	"fmt"
	"net/mail"
	"time"
)

// ValidationError describe la primera restricción violada de un payload.
// Solo se reporta la primera, igual que el contrato del API.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func violation(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ParseDate acepta fechas calendario (YYYY-MM-DD) o timestamps ISO completos;
// en ambos casos descarta la hora.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha inválida: %q", s)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func validEmail(s string) bool {
	_, err := mail.ParseAddress(s)
	return err == nil
}
