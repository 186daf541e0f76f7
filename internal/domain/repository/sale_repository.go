package repository

import (
	"time"

	"github.com/jhoicas/toystore-api/internal/domain/entity"
)

// SaleFilter filtros de listado de ventas. El rango de fechas solo aplica
// cuando ambos extremos están presentes (inclusivos).
type SaleFilter struct {
	ClienteID  string
	DataInicio *time.Time
	DataFim    *time.Time
}

// SaleRepository define el puerto de persistencia para Sale.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	List(filter SaleFilter, limit, offset int) ([]*entity.Sale, error)
	Count(filter SaleFilter) (int, error)
}
