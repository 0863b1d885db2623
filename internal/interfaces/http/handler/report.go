package handler

import (
	"github.com/agrox/backend/internal/application/report"
	"github.com/agrox/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// ReportHandler serves admin sales reports
type ReportHandler struct {
	BaseHandler
	reportService *report.SalesReportService
	adminChecker  middleware.AdminChecker
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *report.SalesReportService, adminChecker middleware.AdminChecker) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		adminChecker:  adminChecker,
	}
}

// RegisterRoutes registers report routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin", middleware.RequireAdmin(h.adminChecker))
	{
		admin.GET("/report", h.Generate)
	}
}

// Generate godoc
// @Summary      Sales report
// @Description  Aggregate orders with delivery dates inside the
// @Description  inclusive window. Administrators only.
// @Tags         admin
// @Produce      json
// @Param        start_date query string true "Window start (YYYY-MM-DD)"
// @Param        end_date query string true "Window end (YYYY-MM-DD)"
// @Success      200 {object} dto.Response{data=report.SalesSummary}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /admin/report [get]
func (h *ReportHandler) Generate(c *gin.Context) {
	summary, err := h.reportService.Generate(c.Request.Context(), report.SalesReportInput{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}
