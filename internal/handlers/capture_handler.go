package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/hardza1230/Wealth-Wallet/internal/errors"
	"github.com/hardza1230/Wealth-Wallet/internal/services"
)

// CaptureHandler handles AI-assisted transaction capture requests.
type CaptureHandler struct {
	captureService services.CaptureServicer
	insightService services.InsightServicer
	auditService   services.AuditServicer
}

// NewCaptureHandler creates a new CaptureHandler.
func NewCaptureHandler(captureService services.CaptureServicer, insightService services.InsightServicer, auditService services.AuditServicer) *CaptureHandler {
	return &CaptureHandler{
		captureService: captureService,
		insightService: insightService,
		auditService:   auditService,
	}
}

// CaptureRequest represents the request payload for capturing a transaction
// from free-form input. At least one of text and image_base64 is required.
type CaptureRequest struct {
	Text        string `json:"text"`
	ImageBase64 string `json:"image_base64"`
}

// Capture handles transaction capture from bank notification text or a
// receipt image
// @Summary     Capture a transaction
// @Description Parse a bank SMS, notification text, or base64 receipt image into a transaction and append it to the ledger
// @Tags        capture
// @Accept      json
// @Produce     json
// @Param       request body CaptureRequest true "Capture input"
// @Success     201 {object} models.Transaction "Transaction recorded"
// @Failure     400 {object} ErrorResponse "Empty or invalid input"
// @Failure     422 {object} ErrorResponse "Input could not be parsed"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /capture [post]
func (h *CaptureHandler) Capture(c *gin.Context) {
	var req CaptureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	transaction, err := h.captureService.Capture(c.Request.Context(), req.Text, req.ImageBase64)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("CAPTURE_TRANSACTION", "transaction", transaction.ID, c.ClientIP(),
		map[string]interface{}{"type": transaction.Type, "amount": transaction.Amount, "merchant": transaction.Merchant})

	h.insightService.RefreshAsync()

	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}
