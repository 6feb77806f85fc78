package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hardza1230/Wealth-Wallet/internal/services"
)

// AnalyticsHandler serves derived metrics over the ledger.
type AnalyticsHandler struct {
	analyticsService services.AnalyticsServicer
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService services.AnalyticsServicer) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GetSummary handles the retrieval of ledger totals
// @Summary     Get ledger summary
// @Description Get total income, total expense, and net balance over the whole ledger
// @Tags        analytics
// @Accept      json
// @Produce     json
// @Success     200 {object} analytics.Totals "Ledger totals"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics/summary [get]
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	totals, err := h.analyticsService.Summary()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": totals})
}

// GetDailySeries handles the retrieval of the running-balance series
// @Summary     Get daily balance series
// @Description Get the running-balance series with one point per calendar date that has transactions
// @Tags        analytics
// @Accept      json
// @Produce     json
// @Success     200 {object} []analytics.DailyPoint "Daily series"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics/daily [get]
func (h *AnalyticsHandler) GetDailySeries(c *gin.Context) {
	series, err := h.analyticsService.DailySeries()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"series": series})
}

// GetCategoryBreakdown handles the retrieval of per-category expense totals
// @Summary     Get category breakdown
// @Description Get total expense per category label, in first-seen ledger order
// @Tags        analytics
// @Accept      json
// @Produce     json
// @Success     200 {object} []analytics.CategoryTotal "Category totals"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics/categories [get]
func (h *AnalyticsHandler) GetCategoryBreakdown(c *gin.Context) {
	breakdown, err := h.analyticsService.CategoryBreakdown()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": breakdown})
}
