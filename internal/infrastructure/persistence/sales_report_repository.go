package persistence

import (
	"context"

	"github.com/agrox/backend/internal/domain/report"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormSalesReportRepository implements SalesReportRepository using GORM
type GormSalesReportRepository struct {
	db *gorm.DB
}

// NewGormSalesReportRepository creates a new GormSalesReportRepository
func NewGormSalesReportRepository(db *gorm.DB) *GormSalesReportRepository {
	return &GormSalesReportRepository{db: db}
}

// CountOrders returns the number of orders in the window
func (r *GormSalesReportRepository) CountOrders(ctx context.Context, filter report.SalesReportFilter) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("orders").
		Where("delivery_date BETWEEN ? AND ?", filter.StartDate, filter.EndDate).
		Count(&count).Error
	return count, err
}

// SumProductPrices sums the current catalog price of each matching
// order's product. The inner join drops orders whose product was
// deleted, matching the count-only semantics elsewhere.
func (r *GormSalesReportRepository) SumProductPrices(ctx context.Context, filter report.SalesReportFilter) (decimal.Decimal, error) {
	type sumResult struct {
		TotalSum decimal.Decimal
	}

	var result sumResult
	err := r.db.WithContext(ctx).
		Table("orders o").
		Select("COALESCE(SUM(p.price), 0) as total_sum").
		Joins("JOIN products p ON p.id = o.product_id").
		Where("o.delivery_date BETWEEN ? AND ?", filter.StartDate, filter.EndDate).
		Scan(&result).Error
	if err != nil {
		return decimal.Zero, err
	}
	return result.TotalSum, nil
}

// CountOrdersByProvince returns per-province order counts keyed by the
// stored province symbol. Provinces without orders do not appear.
func (r *GormSalesReportRepository) CountOrdersByProvince(ctx context.Context, filter report.SalesReportFilter) (map[string]int64, error) {
	type provinceResult struct {
		Province string
		Count    int64
	}

	var results []provinceResult
	err := r.db.WithContext(ctx).
		Table("orders").
		Select("province, COUNT(id) as count").
		Where("delivery_date BETWEEN ? AND ?", filter.StartDate, filter.EndDate).
		Group("province").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(results))
	for _, row := range results {
		if row.Count > 0 {
			counts[row.Province] = row.Count
		}
	}
	return counts, nil
}
