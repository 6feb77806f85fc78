package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hardza1230/Wealth-Wallet/internal/services"
)

// InsightHandler serves AI-generated financial insights.
type InsightHandler struct {
	insightService services.InsightServicer
}

// NewInsightHandler creates a new InsightHandler.
func NewInsightHandler(insightService services.InsightServicer) *InsightHandler {
	return &InsightHandler{insightService: insightService}
}

// GetInsights handles the retrieval of the latest financial insight
// @Summary     Get financial insights
// @Description Get the AI-generated summary, savings tip, spending trend, health score, and rank for the current ledger
// @Tags        insights
// @Accept      json
// @Produce     json
// @Success     200 {object} services.FinancialInsight "Latest insight"
// @Failure     404 {object} ErrorResponse "No transactions to analyze"
// @Failure     502 {object} ErrorResponse "Insight generation failed"
// @Router      /insights [get]
func (h *InsightHandler) GetInsights(c *gin.Context) {
	insight, err := h.insightService.Latest(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"insight": insight})
}
