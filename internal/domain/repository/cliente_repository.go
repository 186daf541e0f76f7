package repository

import "github.com/jhoicas/toystore-api/internal/domain/entity"

// ClienteFilter filtros de listado: substring case-insensitive sobre nombre y email.
type ClienteFilter struct {
	Name  string
	Email string
}

// ClienteRepository define el puerto de persistencia para Cliente.
// Los métodos de lectura devuelven el cliente con sus ventas cargadas.
type ClienteRepository interface {
	Create(cliente *entity.Cliente) error
	GetByID(id string) (*entity.Cliente, error)
	GetByEmail(email string) (*entity.Cliente, error)
	List(filter ClienteFilter, limit, offset int) ([]*entity.Cliente, error)
	Count(filter ClienteFilter) (int, error)
	Update(cliente *entity.Cliente) error
}
