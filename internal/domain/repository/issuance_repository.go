package repository

import (
	"time"

	"github.com/jhoicas/entregas-api/internal/domain/entity"
)

// IssuanceRepository define el puerto de persistencia para entregas.
// Las escrituras ocurren dentro de la transacción del TxRunner junto con
// el ajuste de stock.
type IssuanceRepository interface {
	Create(issuance *entity.Issuance) error
	GetByID(id string) (*entity.Issuance, error)
	Update(issuance *entity.Issuance) error
	Delete(id string) error
	ListByWarehouse(warehouseID string, from, to *time.Time, limit, offset int) ([]*entity.Issuance, error)
	ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.Issuance, error)
}
