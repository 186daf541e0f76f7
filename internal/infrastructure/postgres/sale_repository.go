package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/toystore-api/internal/domain/entity"
	"github.com/jhoicas/toystore-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste una nueva venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO vendas (id, cliente_id, valor, data, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.ClienteID, sale.Valor, sale.Data, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert venda: %w", err)
	}
	return nil
}

// List lista ventas con su cliente (join), ordenadas por fecha descendente.
// El rango de fechas solo aplica cuando ambos extremos del filtro están presentes.
func (r *SaleRepo) List(filter repository.SaleFilter, limit, offset int) ([]*entity.Sale, error) {
	query := `
		SELECT v.id, v.cliente_id, v.valor, v.data, v.created_at,
		       c.id, c.full_name, c.email, c.birth_date, c.created_at, c.updated_at
		FROM vendas v
		JOIN clientes c ON c.id = v.cliente_id
		WHERE ($1 = '' OR v.cliente_id::TEXT = $1)
		  AND ($2::DATE IS NULL OR v.data BETWEEN $2 AND $3)
		ORDER BY v.data DESC
		LIMIT $4 OFFSET $5`
	inicio, fim := rangeArgs(filter)
	rows, err := r.q.Query(context.Background(), query, filter.ClienteID, inicio, fim, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list vendas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		var c entity.Cliente
		if err := rows.Scan(
			&s.ID, &s.ClienteID, &s.Valor, &s.Data, &s.CreatedAt,
			&c.ID, &c.FullName, &c.Email, &c.BirthDate, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan venda: %w", err)
		}
		s.Cliente = &c
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Count cuenta ventas que satisfacen el filtro.
func (r *SaleRepo) Count(filter repository.SaleFilter) (int, error) {
	query := `
		SELECT COUNT(*) FROM vendas v
		WHERE ($1 = '' OR v.cliente_id::TEXT = $1)
		  AND ($2::DATE IS NULL OR v.data BETWEEN $2 AND $3)`
	inicio, fim := rangeArgs(filter)
	var total int
	if err := r.q.QueryRow(context.Background(), query, filter.ClienteID, inicio, fim).Scan(&total); err != nil {
		return 0, fmt.Errorf("count vendas: %w", err)
	}
	return total, nil
}

// rangeArgs devuelve los extremos del rango como argumentos SQL; ambos nil si el
// filtro está incompleto (el contrato exige los dos extremos para filtrar).
func rangeArgs(filter repository.SaleFilter) (any, any) {
	if filter.DataInicio == nil || filter.DataFim == nil {
		return nil, nil
	}
	return *filter.DataInicio, *filter.DataFim
}
