package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"travelbook/internal/http/middleware"
	"travelbook/internal/services"

	"github.com/gin-gonic/gin"
)

func reportFilter(c *gin.Context) services.SalesReportFilter {
	return services.SalesReportFilter{
		StartDate: strings.TrimSpace(c.Query("start_date")),
		EndDate:   strings.TrimSpace(c.Query("end_date")),
	}
}

// GET /api/reports/sales?start_date=&end_date= (admin)
func GetSalesReport(c *gin.Context) {
	svc := services.ReportsService{RequestID: middleware.GetRequestID(c)}
	summary, err := svc.SalesReport(reportFilter(c))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to build report", err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GET /api/reports/sales/pdf (admin)
func GetSalesReportPDF(c *gin.Context) {
	svc := services.DocsService{
		ReportsSvc: services.ReportsService{RequestID: middleware.GetRequestID(c)},
		RequestID:  middleware.GetRequestID(c),
	}
	pdf, filename, err := svc.SalesReportPDF(reportFilter(c))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to build report PDF", err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// GET /api/reports/top-packages?limit=5 (admin)
func GetTopPackages(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
	svc := services.ReportsService{RequestID: middleware.GetRequestID(c)}
	ranked, err := svc.TopPackages(limit)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to rank packages", err)
		return
	}
	c.JSON(http.StatusOK, ranked)
}

// GET /api/reports/weekly (admin dashboard chart)
func GetWeeklyChart(c *gin.Context) {
	svc := services.ReportsService{RequestID: middleware.GetRequestID(c)}
	buckets, err := svc.WeeklyChart()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to build chart", err)
		return
	}
	c.JSON(http.StatusOK, buckets)
}
