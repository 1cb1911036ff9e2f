package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinovia/services/payment"
)

// PaymentHandler creates checkout preferences for the SPA's hosted widget.
type PaymentHandler struct {
	svc    payment.PaymentService
	logger *zap.Logger
}

func NewPaymentHandler(svc payment.PaymentService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{svc: svc, logger: logger}
}

func (h *PaymentHandler) CreatePreference(c *gin.Context) {
	var req payment.PreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	pref, err := h.svc.CreateCheckoutPreference(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("checkout preference creation failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to create checkout preference"})
		return
	}
	c.JSON(http.StatusOK, pref)
}
