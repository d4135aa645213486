package repository

import (
	"context"
	"time"
)

// AnalyticsRepository consultas read-only para el dashboard de inventario.
type AnalyticsRepository interface {
	// CountLowStock cuenta productos con stock <= min_stock.
	CountLowStock(ctx context.Context) (int64, error)
	// IssuanceTotals devuelve número de entregas y unidades entregadas en el rango.
	IssuanceTotals(ctx context.Context, from, to time.Time) (count int64, units int64, err error)
}
