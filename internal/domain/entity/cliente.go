package entity

import "time"

// Cliente representa un cliente de la tienda. Es dueño de cero o más ventas.
type Cliente struct {
	ID        string
	FullName  string
	Email     string    // único a nivel global
	BirthDate time.Time // solo fecha calendario, sin hora
	Vendas    []Sale    // cargadas por el repositorio cuando el caso de uso las necesita
	CreatedAt time.Time
	UpdatedAt time.Time
}
