package persistence

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/agrox/backend/internal/domain/report"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		Conn: sqlDB,
	}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestSalesReportRepositoryCountOrders(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormSalesReportRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "orders" WHERE delivery_date BETWEEN \$1 AND \$2`).
		WithArgs("2025-05-01", "2025-05-31").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountOrders(context.Background(), report.SalesReportFilter{
		StartDate: "2025-05-01",
		EndDate:   "2025-05-31",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalesReportRepositorySumProductPrices(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormSalesReportRepository(db)

	mock.ExpectQuery(`COALESCE\(SUM\(p\.price\), 0\)`).
		WithArgs("2025-05-01", "2025-05-31").
		WillReturnRows(sqlmock.NewRows([]string{"total_sum"}).AddRow("29.00"))

	sum, err := repo.SumProductPrices(context.Background(), report.SalesReportFilter{
		StartDate: "2025-05-01",
		EndDate:   "2025-05-31",
	})
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("29.00").Equal(sum), "got %s", sum)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalesReportRepositoryCountOrdersByProvince(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormSalesReportRepository(db)

	mock.ExpectQuery(`SELECT province, COUNT\(id\) as count FROM "orders"`).
		WithArgs("2025-05-01", "2025-05-31").
		WillReturnRows(sqlmock.NewRows([]string{"province", "count"}).
			AddRow("MAZOWIECKIE", 2).
			AddRow("LODZKIE", 1))

	counts, err := repo.CountOrdersByProvince(context.Background(), report.SalesReportFilter{
		StartDate: "2025-05-01",
		EndDate:   "2025-05-31",
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"MAZOWIECKIE": 2, "LODZKIE": 1}, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}
