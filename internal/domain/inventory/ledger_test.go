package inventory_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/entregas-api/internal/domain"
	"github.com/jhoicas/entregas-api/internal/domain/entity"
	"github.com/jhoicas/entregas-api/internal/domain/inventory"
)

// stubProductRepo fake mínimo: un solo producto, con contadores de llamadas
// para verificar que los rechazos no escriben.
type stubProductRepo struct {
	product      *entity.Product
	getErr       error
	updateCalls  int
	lockedReads  int
	updatedStock int64
}

func (r *stubProductRepo) Create(p *entity.Product) error { return nil }
func (r *stubProductRepo) GetByID(id string) (*entity.Product, error) { return r.product, nil }
func (r *stubProductRepo) GetByWarehouseAndSKU(warehouseID, sku string) (*entity.Product, error) {
	return nil, nil
}
func (r *stubProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	r.lockedReads++
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.product, nil
}
func (r *stubProductRepo) UpdateStock(id string, stock int64) error {
	r.updateCalls++
	r.updatedStock = stock
	r.product.Stock = stock
	return nil
}
func (r *stubProductRepo) Update(p *entity.Product) error { return nil }
func (r *stubProductRepo) ListByWarehouse(warehouseID string, limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *stubProductRepo) Delete(id string) error { return nil }

func TestAdjust_DeltaNegativoDescuenta(t *testing.T) {
	repo := &stubProductRepo{product: &entity.Product{ID: "p1", Stock: 10}}
	ledger := inventory.NewStockLedger(repo)

	require.NoError(t, ledger.Adjust("p1", -3))

	assert.EqualValues(t, 7, repo.updatedStock)
	assert.Equal(t, 1, repo.lockedReads, "la lectura debe ser con lock de fila")
}

func TestAdjust_DeltaPositivoDevuelve(t *testing.T) {
	repo := &stubProductRepo{product: &entity.Product{ID: "p1", Stock: 7}}
	ledger := inventory.NewStockLedger(repo)

	require.NoError(t, ledger.Adjust("p1", 3))
	assert.EqualValues(t, 10, repo.updatedStock)
}

// stock + delta < 0 rechaza sin escribir nada.
func TestAdjust_NuncaDejaStockNegativo(t *testing.T) {
	repo := &stubProductRepo{product: &entity.Product{ID: "p1", Stock: 4}}
	ledger := inventory.NewStockLedger(repo)

	err := ledger.Adjust("p1", -5)

	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Zero(t, repo.updateCalls, "un rechazo no debe escribir")
	assert.EqualValues(t, 4, repo.product.Stock)
}

// Llevar el stock exactamente a cero es válido.
func TestAdjust_StockCeroEsValido(t *testing.T) {
	repo := &stubProductRepo{product: &entity.Product{ID: "p1", Stock: 5}}
	ledger := inventory.NewStockLedger(repo)

	require.NoError(t, ledger.Adjust("p1", -5))
	assert.EqualValues(t, 0, repo.updatedStock)
}

func TestAdjust_ProductoInexistente(t *testing.T) {
	repo := &stubProductRepo{product: nil}
	ledger := inventory.NewStockLedger(repo)

	err := ledger.Adjust("no-existe", -1)
	require.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.Zero(t, repo.updateCalls)
}

func TestAdjust_PropagaErrorDeLectura(t *testing.T) {
	dbErr := errors.New("conexión perdida")
	repo := &stubProductRepo{getErr: dbErr}
	ledger := inventory.NewStockLedger(repo)

	err := ledger.Adjust("p1", -1)
	require.ErrorIs(t, err, dbErr)
}

// CurrentStock lee con lock para que el check-then-act del caller quede
// serializado con el Adjust posterior.
func TestCurrentStock_LeeConLock(t *testing.T) {
	repo := &stubProductRepo{product: &entity.Product{ID: "p1", Stock: 9}}
	ledger := inventory.NewStockLedger(repo)

	stock, err := ledger.CurrentStock("p1")
	require.NoError(t, err)
	assert.EqualValues(t, 9, stock)
	assert.Equal(t, 1, repo.lockedReads)
}

func TestCurrentStock_ProductoInexistente(t *testing.T) {
	ledger := inventory.NewStockLedger(&stubProductRepo{})

	_, err := ledger.CurrentStock("no-existe")
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}
