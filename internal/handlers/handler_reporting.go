package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/reymancasio5-bit/accountingproject/internal/core/ports/services"
	"github.com/reymancasio5-bit/accountingproject/internal/dto"
	"github.com/reymancasio5-bit/accountingproject/internal/middleware"
)

const reportDateLayout = "2006-01-02"

// reportingHandler handles HTTP requests for financial statements.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers the read-only statement routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	rg.GET("/balances", h.getBalances)

	reports := rg.Group("/reports")
	{
		reports.GET("/trial-balance", h.getTrialBalance)
		reports.GET("/income-statement", h.getIncomeStatement)
		reports.GET("/balance-sheet", h.getBalanceSheet)
		reports.GET("/general-ledger", h.getGeneralLedger)
	}
}

// getBalances godoc
// @Summary List account balances
// @Description Computes raw and display balances for every account
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.BalancesResponse
// @Failure 500 {object} map[string]string "Failed to compute balances"
// @Router /balances [get]
func (h *reportingHandler) getBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	balances, err := h.reportingService.AccountBalances(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute account balances", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute balances"})
		return
	}

	c.JSON(http.StatusOK, dto.BalancesResponse{Balances: balances})
}

// getTrialBalance godoc
// @Summary Trial balance report
// @Description Unsigned gross debit and credit totals per account
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 500 {object} map[string]string "Failed to derive trial balance"
// @Router /reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.reportingService.TrialBalance(c.Request.Context())
	if err != nil {
		logger.Error("Failed to derive trial balance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to derive trial balance"})
		return
	}

	c.JSON(http.StatusOK, dto.TrialBalanceResponse{
		AsOf:               time.Now().UTC().Format(reportDateLayout),
		TrialBalanceReport: *report,
	})
}

// getIncomeStatement godoc
// @Summary Income statement report
// @Description Revenue, cost of goods sold, operating expenses and net income
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.IncomeStatementResponse
// @Failure 500 {object} map[string]string "Failed to derive income statement"
// @Router /reports/income-statement [get]
func (h *reportingHandler) getIncomeStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.reportingService.IncomeStatement(c.Request.Context())
	if err != nil {
		logger.Error("Failed to derive income statement", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to derive income statement"})
		return
	}

	c.JSON(http.StatusOK, dto.IncomeStatementResponse{
		AsOf:                  time.Now().UTC().Format(reportDateLayout),
		IncomeStatementReport: *report,
	})
}

// getBalanceSheet godoc
// @Summary Balance sheet report
// @Description Assets, liabilities and equity including current-period net income
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 500 {object} map[string]string "Failed to derive balance sheet"
// @Router /reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.reportingService.BalanceSheet(c.Request.Context())
	if err != nil {
		logger.Error("Failed to derive balance sheet", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to derive balance sheet"})
		return
	}

	c.JSON(http.StatusOK, dto.BalanceSheetResponse{
		AsOf:               time.Now().UTC().Format(reportDateLayout),
		BalanceSheetReport: *report,
	})
}

// getGeneralLedger godoc
// @Summary General ledger report
// @Description Per-account line histories with running balances, optionally filtered
// @Tags reports
// @Produce  json
// @Param   accountID query string false "Limit to one account"
// @Param   from query string false "Inclusive start date (2006-01-02)"
// @Param   to query string false "Inclusive end date (2006-01-02)"
// @Success 200 {object} domain.GeneralLedgerReport
// @Failure 400 {object} map[string]string "Invalid date filter"
// @Failure 500 {object} map[string]string "Failed to derive general ledger"
// @Router /reports/general-ledger [get]
func (h *reportingHandler) getGeneralLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.GeneralLedgerParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	filter := portssvc.GeneralLedgerFilter{AccountID: params.AccountID}
	if params.From != "" {
		from, err := time.Parse(reportDateLayout, params.From)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date, expected YYYY-MM-DD"})
			return
		}
		filter.From = &from
	}
	if params.To != "" {
		to, err := time.Parse(reportDateLayout, params.To)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date, expected YYYY-MM-DD"})
			return
		}
		filter.To = &to
	}

	report, err := h.reportingService.GeneralLedger(c.Request.Context(), filter)
	if err != nil {
		logger.Error("Failed to derive general ledger", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to derive general ledger"})
		return
	}

	c.JSON(http.StatusOK, report)
}
