package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	portssvc "github.com/daanseva/donation_backend/internal/core/ports/services"
	"github.com/daanseva/donation_backend/internal/core/services"
	"github.com/daanseva/donation_backend/internal/dto"
	"github.com/daanseva/donation_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// paymentHandler handles HTTP requests for payment request generation.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

func newPaymentHandler(ps portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{paymentService: ps}
}

// registerPaymentRoutes registers the public payment routes.
func registerPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := newPaymentHandler(paymentService)

	payments := rg.Group("/payments")
	{
		payments.POST("/qr", h.generateQR)
	}
}

// generateQR godoc
// @Summary Generate a UPI payment QR code
// @Description Builds the canonical UPI payment URI for the given amount and returns it with a scannable QR image
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   payment body dto.GeneratePaymentRequest true "Donation amount"
// @Success 200 {object} dto.PaymentTargetResponse
// @Failure 400 {object} map[string]string "Invalid input format or non-positive amount"
// @Failure 503 {object} map[string]string "Payee not configured"
// @Router /payments/qr [post]
func (h *paymentHandler) generateQR(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.GeneratePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for GeneratePaymentRequest", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	target, err := h.paymentService.GeneratePaymentRequest(c.Request.Context(), req.Amount)
	if err != nil {
		if errors.Is(err, services.ErrInvalidAmount) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, services.ErrMisconfiguredPayee) {
			logger.Error("Payment request refused", slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Payment collection is not configured"})
		} else {
			logger.Error("Failed to generate payment request", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate payment request"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentTargetResponse(target))
}
