package dto

// DashboardSummaryDTO resumen del dashboard de inventario.
type DashboardSummaryDTO struct {
	LowStockProducts int64 `json:"low_stock_products"`
	TodayIssuances   int64 `json:"today_issuances"`
	TodayUnits       int64 `json:"today_units"`
	MonthIssuances   int64 `json:"month_issuances"`
	MonthUnits       int64 `json:"month_units"`
}
