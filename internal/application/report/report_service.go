package report

import (
	"context"
	"time"

	domainorder "github.com/agrox/backend/internal/domain/order"
	domainreport "github.com/agrox/backend/internal/domain/report"
	"github.com/agrox/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// SalesReportInput bounds the report window. Both dates are required
// inclusive YYYY-MM-DD strings.
type SalesReportInput struct {
	StartDate string
	EndDate   string
}

// SalesReportService produces aggregated sales statistics for
// administrators
type SalesReportService struct {
	reportRepo domainreport.SalesReportRepository
	logger     *zap.Logger
}

// NewSalesReportService creates a new SalesReportService
func NewSalesReportService(reportRepo domainreport.SalesReportRepository, logger *zap.Logger) *SalesReportService {
	return &SalesReportService{
		reportRepo: reportRepo,
		logger:     logger,
	}
}

// Generate aggregates orders whose delivery date falls inside the
// window. Provinces in the result are keyed by their display value and
// only appear with a positive count. An empty window yields zero
// totals and an empty province map, never an error.
func (s *SalesReportService) Generate(ctx context.Context, input SalesReportInput) (*domainreport.SalesSummary, error) {
	if input.StartDate == "" || input.EndDate == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Start and end dates are required")
	}

	start, err := time.Parse(domainorder.DateLayout, input.StartDate)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid date format. Use YYYY-MM-DD")
	}
	end, err := time.Parse(domainorder.DateLayout, input.EndDate)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid date format. Use YYYY-MM-DD")
	}
	if start.After(end) {
		return nil, shared.NewDomainError("INVALID_INPUT", "Start date cannot be after end date")
	}

	filter := domainreport.SalesReportFilter{
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	}

	totalOrders, err := s.reportRepo.CountOrders(ctx, filter)
	if err != nil {
		return nil, err
	}
	totalSum, err := s.reportRepo.SumProductPrices(ctx, filter)
	if err != nil {
		return nil, err
	}
	provinceCounts, err := s.reportRepo.CountOrdersByProvince(ctx, filter)
	if err != nil {
		return nil, err
	}

	perProvince := make(map[string]int64, len(provinceCounts))
	for symbol, count := range provinceCounts {
		if count <= 0 {
			continue
		}
		perProvince[displayProvince(symbol)] = count
	}

	s.logger.Info("Sales report generated",
		zap.String("start_date", input.StartDate),
		zap.String("end_date", input.EndDate),
		zap.Int64("total_orders", totalOrders))

	return &domainreport.SalesSummary{
		TotalOrders:       totalOrders,
		TotalSum:          totalSum,
		OrdersPerProvince: perProvince,
	}, nil
}

// displayProvince maps a stored province symbol to its display value.
// Unknown symbols pass through unchanged so a stray row cannot break
// the whole report.
func displayProvince(symbol string) string {
	province := domainorder.Province(symbol)
	if province.IsValid() {
		return province.Display()
	}
	return symbol
}
