package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/toystore-api/internal/domain"
	"github.com/jhoicas/toystore-api/internal/domain/entity"
	"github.com/jhoicas/toystore-api/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación de ClienteRepository (usable con pool o tx).
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

// Create persiste un nuevo cliente.
func (r *ClienteRepo) Create(cliente *entity.Cliente) error {
	query := `
		INSERT INTO clientes (id, full_name, email, birth_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		cliente.ID, cliente.FullName, cliente.Email, cliente.BirthDate,
		cliente.CreatedAt, cliente.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID con sus ventas cargadas.
func (r *ClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	query := `
		SELECT id, full_name, email, birth_date, created_at, updated_at
		FROM clientes WHERE id = $1`
	var c entity.Cliente
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.FullName, &c.Email, &c.BirthDate, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	if err := r.loadVendas([]*entity.Cliente{&c}); err != nil {
		return nil, err
	}
	return &c, nil
}

// GetByEmail obtiene un cliente por email (sin ventas; se usa para chequeos de unicidad).
func (r *ClienteRepo) GetByEmail(email string) (*entity.Cliente, error) {
	query := `
		SELECT id, full_name, email, birth_date, created_at, updated_at
		FROM clientes WHERE email = $1`
	var c entity.Cliente
	err := r.q.QueryRow(context.Background(), query, email).Scan(
		&c.ID, &c.FullName, &c.Email, &c.BirthDate, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente by email: %w", err)
	}
	return &c, nil
}

// List lista clientes con filtros ILIKE y paginación, ordenados por created_at descendente,
// con sus ventas cargadas.
func (r *ClienteRepo) List(filter repository.ClienteFilter, limit, offset int) ([]*entity.Cliente, error) {
	query := `
		SELECT id, full_name, email, birth_date, created_at, updated_at
		FROM clientes
		WHERE ($1 = '' OR full_name ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR email ILIKE '%' || $2 || '%')
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, filter.Name, filter.Email, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(&c.ID, &c.FullName, &c.Email, &c.BirthDate, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.loadVendas(list); err != nil {
		return nil, err
	}
	return list, nil
}

// Count cuenta clientes que satisfacen el filtro.
func (r *ClienteRepo) Count(filter repository.ClienteFilter) (int, error) {
	query := `
		SELECT COUNT(*) FROM clientes
		WHERE ($1 = '' OR full_name ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR email ILIKE '%' || $2 || '%')`
	var total int
	if err := r.q.QueryRow(context.Background(), query, filter.Name, filter.Email).Scan(&total); err != nil {
		return 0, fmt.Errorf("count clientes: %w", err)
	}
	return total, nil
}

// Update actualiza un cliente.
func (r *ClienteRepo) Update(cliente *entity.Cliente) error {
	query := `
		UPDATE clientes SET full_name = $2, email = $3, birth_date = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		cliente.ID, cliente.FullName, cliente.Email, cliente.BirthDate, cliente.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

// loadVendas carga las ventas de los clientes indicados en una sola consulta,
// ordenadas por fecha ascendente.
func (r *ClienteRepo) loadVendas(clientes []*entity.Cliente) error {
	if len(clientes) == 0 {
		return nil
	}
	ids := make([]string, 0, len(clientes))
	byID := make(map[string]*entity.Cliente, len(clientes))
	for _, c := range clientes {
		c.Vendas = []entity.Sale{}
		ids = append(ids, c.ID)
		byID[c.ID] = c
	}
	query := `
		SELECT id, cliente_id, valor, data, created_at
		FROM vendas WHERE cliente_id = ANY($1) ORDER BY data ASC`
	rows, err := r.q.Query(context.Background(), query, ids)
	if err != nil {
		return fmt.Errorf("load vendas: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.ClienteID, &s.Valor, &s.Data, &s.CreatedAt); err != nil {
			return fmt.Errorf("scan venda: %w", err)
		}
		if c, ok := byID[s.ClienteID]; ok {
			c.Vendas = append(c.Vendas, s)
		}
	}
	return rows.Err()
}
