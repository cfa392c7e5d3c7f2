package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/hasinarv/cashpoint_backend/internal/core/ports/services"
	"github.com/hasinarv/cashpoint_backend/internal/dto"
	"github.com/hasinarv/cashpoint_backend/internal/middleware"
)

// reportingHandler handles HTTP requests for reports and balance queries.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to reports and balances.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	rg.GET("/balances", h.getBalances)
	rg.GET("/balances/:target", h.getBalance)
	rg.GET("/reports/summary", h.getSummary)
}

// getBalances returns the full balance sheet of the active session.
func (h *reportingHandler) getBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	operatorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Operator ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	balances, active, err := h.reportingService.Balances(c.Request.Context(), operatorID)
	if err != nil {
		logger.Error("Failed to get balances", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get balances"})
		return
	}

	resp := dto.ToBalancesResponse(balances)
	c.JSON(http.StatusOK, gin.H{
		"sessionActive":    active,
		"balances":         resp,
		"mobileMoneyTotal": balances.MobileMoneyTotal(),
		"totalFloat":       balances.Total(),
	})
}

// getBalance returns a single balance by target: cash or a wire service name.
func (h *reportingHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	target := c.Param("target")

	operatorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Operator ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	balances, active, err := h.reportingService.Balances(c.Request.Context(), operatorID)
	if err != nil {
		logger.Error("Failed to get balances", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get balances"})
		return
	}

	var balance int64
	if target == "cash" {
		balance = balances.Cash
	} else {
		service, valid := dto.ParseService(target)
		if !valid {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown balance target: " + target})
			return
		}
		balance = balances.Service(service)
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		Target:        target,
		Balance:       balance,
		SessionActive: active,
	})
}

// getSummary returns the dashboard projection for the active session.
func (h *reportingHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.SummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid query parameters for Summary", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	operatorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Operator ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	summary, err := h.reportingService.Summary(c.Request.Context(), operatorID, params.RecentLimit)
	if err != nil {
		logger.Error("Failed to build summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSummaryResponse(summary))
}
