package repository

import (
	"context"
	"time"

	"github.com/jhoicas/toystore-api/internal/domain/entity"
)

// StatsRepository consultas de solo lectura para el agregador de estadísticas.
type StatsRepository interface {
	// ListSalesInRange devuelve las ventas del rango [inicio, fim] inclusivo,
	// ordenadas por fecha ascendente. Si algún extremo es nil no se filtra.
	ListSalesInRange(ctx context.Context, inicio, fim *time.Time) ([]entity.Sale, error)
	// ListClientesWithVendas devuelve todos los clientes con sus ventas cargadas,
	// ordenados por id ascendente para que el desempate sea determinista.
	ListClientesWithVendas(ctx context.Context) ([]*entity.Cliente, error)
}
