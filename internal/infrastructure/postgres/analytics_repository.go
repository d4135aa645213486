package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/entregas-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas read-only para el dashboard de inventario.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// CountLowStock cuenta productos con stock en o por debajo del punto de reorden.
func (r *AnalyticsRepo) CountLowStock(ctx context.Context) (int64, error) {
	var count int64
	err := r.q.QueryRow(ctx, `SELECT count(*) FROM products WHERE stock <= min_stock`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count low stock: %w", err)
	}
	return count, nil
}

// IssuanceTotals devuelve número de entregas y unidades entregadas en el rango.
func (r *AnalyticsRepo) IssuanceTotals(ctx context.Context, from, to time.Time) (int64, int64, error) {
	var count, units int64
	err := r.q.QueryRow(ctx, `
		SELECT count(*), COALESCE(sum(quantity), 0)
		FROM issuances WHERE created_at >= $1 AND created_at <= $2`, from, to,
	).Scan(&count, &units)
	if err != nil {
		return 0, 0, fmt.Errorf("issuance totals: %w", err)
	}
	return count, units, nil
}
