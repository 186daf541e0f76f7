package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/toystore-api/internal/domain/entity"
	"github.com/jhoicas/toystore-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas de solo lectura para el agregador de estadísticas.
type StatsRepo struct {
	pool *pgxpool.Pool
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(pool *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{pool: pool}
}

// ListSalesInRange devuelve las ventas del rango [inicio, fim] inclusivo ordenadas
// por fecha ascendente. Si algún extremo es nil no se aplica filtro de fechas.
func (r *StatsRepo) ListSalesInRange(ctx context.Context, inicio, fim *time.Time) ([]entity.Sale, error) {
	const query = `
		SELECT id, cliente_id, valor, data, created_at
		FROM vendas
		WHERE ($1::DATE IS NULL OR data BETWEEN $1 AND $2)
		ORDER BY data ASC`
	var a, b any
	if inicio != nil && fim != nil {
		a, b = *inicio, *fim
	}
	rows, err := r.pool.Query(ctx, query, a, b)
	if err != nil {
		return nil, fmt.Errorf("stats.ListSalesInRange: %w", err)
	}
	defer rows.Close()
	var sales []entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.ClienteID, &s.Valor, &s.Data, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("stats.ListSalesInRange scan: %w", err)
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

// ListClientesWithVendas devuelve todos los clientes con sus ventas cargadas,
// ordenados por id ascendente. El orden fijo hace determinista el desempate
// "primero gana" del agregador de campeones.
func (r *StatsRepo) ListClientesWithVendas(ctx context.Context) ([]*entity.Cliente, error) {
	const query = `
		SELECT id, full_name, email, birth_date, created_at, updated_at
		FROM clientes ORDER BY id ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("stats.ListClientesWithVendas: %w", err)
	}
	defer rows.Close()
	var clientes []*entity.Cliente
	byID := make(map[string]*entity.Cliente)
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(&c.ID, &c.FullName, &c.Email, &c.BirthDate, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("stats.ListClientesWithVendas scan: %w", err)
		}
		c.Vendas = []entity.Sale{}
		clientes = append(clientes, &c)
		byID[c.ID] = &c
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	const vendasQuery = `
		SELECT id, cliente_id, valor, data, created_at
		FROM vendas ORDER BY data ASC`
	vrows, err := r.pool.Query(ctx, vendasQuery)
	if err != nil {
		return nil, fmt.Errorf("stats.ListClientesWithVendas vendas: %w", err)
	}
	defer vrows.Close()
	for vrows.Next() {
		var s entity.Sale
		if err := vrows.Scan(&s.ID, &s.ClienteID, &s.Valor, &s.Data, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("stats.ListClientesWithVendas scan venda: %w", err)
		}
		if c, ok := byID[s.ClienteID]; ok {
			c.Vendas = append(c.Vendas, s)
		}
	}
	return clientes, vrows.Err()
}
