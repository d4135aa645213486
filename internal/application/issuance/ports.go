package issuance

import (
	"context"

	"github.com/jhoicas/entregas-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la fila de la entrega y el
// ajuste de stock se escriban juntos o no se escriban (Commit/Rollback).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		issuanceRepo repository.IssuanceRepository,
		productRepo repository.ProductRepository,
	) error) error
}
