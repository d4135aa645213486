package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/entregas-api/internal/application/issuance"
	"github.com/jhoicas/entregas-api/internal/domain/repository"
)

var _ issuance.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. Es la
// frontera atómica del motor de entregas: la fila de la entrega y el ajuste
// de stock se confirman juntos o se revierten juntos.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. La cancelación del ctx entre pasos revierte todo:
// nunca queda un estado a medias.
func (r *TxRunner) Run(ctx context.Context, fn func(
	issuanceRepo repository.IssuanceRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	issuanceRepo := NewIssuanceRepository(tx)
	productRepo := NewProductRepository(tx)

	if err := fn(issuanceRepo, productRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
