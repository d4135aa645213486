// Package inventory contiene el StockLedger: el único dueño de la regla
// "el stock nunca es negativo".
package inventory

import (
	"github.com/jhoicas/entregas-api/internal/domain"
	"github.com/jhoicas/entregas-api/internal/domain/repository"
)

// StockLedger aplica deltas de stock sobre un producto garantizando que el
// resultado nunca sea negativo. Debe construirse con un ProductRepository
// atado a la transacción en curso: GetForUpdate bloquea la fila
// (SELECT FOR UPDATE), de modo que ajustes concurrentes sobre el mismo
// producto quedan serializados y no hay lost updates.
type StockLedger struct {
	productRepo repository.ProductRepository
}

// NewStockLedger construye el ledger sobre un repositorio (normalmente tx-bound).
func NewStockLedger(productRepo repository.ProductRepository) *StockLedger {
	return &StockLedger{productRepo: productRepo}
}

// Adjust aplica un delta (positivo o negativo) al stock del producto.
// Si stock + delta < 0 devuelve ErrInsufficientStock y no escribe nada.
// No tiene efectos secundarios fuera de la fila del producto.
func (l *StockLedger) Adjust(productID string, delta int64) error {
	product, err := l.productRepo.GetForUpdate(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrProductNotFound
	}
	newStock := product.Stock + delta
	if newStock < 0 {
		return domain.ErrInsufficientStock
	}
	// UpdateStock también refresca updated_at en la misma sentencia.
	return l.productRepo.UpdateStock(productID, newStock)
}

// CurrentStock devuelve el stock actual bloqueando la fila, para que las
// verificaciones check-then-act del caller ocurran bajo el mismo lock que
// el Adjust posterior.
func (l *StockLedger) CurrentStock(productID string) (int64, error) {
	product, err := l.productRepo.GetForUpdate(productID)
	if err != nil {
		return 0, err
	}
	if product == nil {
		return 0, domain.ErrProductNotFound
	}
	return product.Stock, nil
}
