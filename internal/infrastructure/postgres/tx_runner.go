package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TxRunner ejecuta operaciones de escritura dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// DeleteCliente elimina las ventas del cliente y luego el cliente en una sola
// transacción, para que no queden ventas huérfanas. Commit o Rollback completo.
func (r *TxRunner) DeleteCliente(ctx context.Context, clienteID string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM vendas WHERE cliente_id = $1`, clienteID); err != nil {
		return fmt.Errorf("delete vendas: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM clientes WHERE id = $1`, clienteID); err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
