// Package analytics contiene el caso de uso del resumen de inventario
// para el dashboard.
package analytics

import (
	"context"
	"time"

	"github.com/jhoicas/entregas-api/internal/application/dto"
	"github.com/jhoicas/entregas-api/internal/domain/repository"
)

const summaryCacheKey = "dashboard:summary"

// SummaryCache puerto mínimo del cache TTL inyectado (lo implementa
// *cache.TTLCache). El TTL lo define quien construye el cache.
type SummaryCache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
}

// DashboardUseCase genera el resumen de inventario del día y del mes en curso.
// Los agregados se sirven desde un cache TTL inyectado en lugar de mapas
// globales mutables.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	cache         SummaryCache
}

// NewDashboardUseCase construye el caso de uso. cache puede ser nil (sin cache).
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, cache SummaryCache) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, cache: cache}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Tres llamadas en paralelo:
//  1. CountLowStock           → LowStockProducts
//  2. IssuanceTotals(hoy)     → TodayIssuances + TodayUnits
//  3. IssuanceTotals(mes)     → MonthIssuances + MonthUnits
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	if uc.cache != nil {
		if v, ok := uc.cache.Get(summaryCacheKey); ok {
			if summary, ok := v.(*dto.DashboardSummaryDTO); ok {
				return summary, nil
			}
		}
	}

	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Nanosecond)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	type totalsResult struct {
		count int64
		units int64
		err   error
	}
	type lowStockResult struct {
		count int64
		err   error
	}

	lowCh := make(chan lowStockResult, 1)
	todayCh := make(chan totalsResult, 1)
	monthCh := make(chan totalsResult, 1)

	go func() {
		count, err := uc.analyticsRepo.CountLowStock(ctx)
		lowCh <- lowStockResult{count, err}
	}()
	go func() {
		count, units, err := uc.analyticsRepo.IssuanceTotals(ctx, todayStart, todayEnd)
		todayCh <- totalsResult{count, units, err}
	}()
	go func() {
		count, units, err := uc.analyticsRepo.IssuanceTotals(ctx, monthStart, todayEnd)
		monthCh <- totalsResult{count, units, err}
	}()

	low := <-lowCh
	today := <-todayCh
	month := <-monthCh
	if low.err != nil {
		return nil, low.err
	}
	if today.err != nil {
		return nil, today.err
	}
	if month.err != nil {
		return nil, month.err
	}

	summary := &dto.DashboardSummaryDTO{
		LowStockProducts: low.count,
		TodayIssuances:   today.count,
		TodayUnits:       today.units,
		MonthIssuances:   month.count,
		MonthUnits:       month.units,
	}
	if uc.cache != nil {
		uc.cache.Set(summaryCacheKey, summary)
	}
	return summary, nil
}
