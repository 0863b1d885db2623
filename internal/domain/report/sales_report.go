package report

import (
	"context"

	"github.com/shopspring/decimal"
)

// SalesSummary is a read model with aggregated order statistics for a
// delivery-date window. OrdersPerProvince is keyed by the province
// display value and contains only provinces with at least one order.
type SalesSummary struct {
	TotalOrders       int64            `json:"total_orders"`
	TotalSum          decimal.Decimal  `json:"total_sum"`
	OrdersPerProvince map[string]int64 `json:"orders_per_province"`
}

// SalesReportFilter bounds the aggregation window. Both dates are
// inclusive `YYYY-MM-DD` strings matched against the stored delivery
// dates lexicographically.
type SalesReportFilter struct {
	StartDate string
	EndDate   string
}

// SalesReportRepository defines the read-side query interface
type SalesReportRepository interface {
	// CountOrders returns the number of orders in the window
	CountOrders(ctx context.Context, filter SalesReportFilter) (int64, error)

	// SumProductPrices returns the sum of the current catalog price of
	// each matching order's product. Orders whose product no longer
	// exists contribute nothing.
	SumProductPrices(ctx context.Context, filter SalesReportFilter) (decimal.Decimal, error)

	// CountOrdersByProvince returns per-province order counts keyed by
	// the stored province symbol
	CountOrdersByProvince(ctx context.Context, filter SalesReportFilter) (map[string]int64, error)
}
