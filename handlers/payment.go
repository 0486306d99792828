package handlers

import (
	"net/http"

	"trimly/services/payment"
	"trimly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler exposes autopay configuration endpoints.
type PaymentHandler struct {
	Service payment.PaymentService
}

func NewPaymentHandler(svc payment.PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: svc}
}

func (h *PaymentHandler) GetAutopayHandler(c *gin.Context) {
	shopID := shopIDFromContext(c)

	settings, err := h.Service.GetAutopaySettings(shopID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Failed to load autopay settings", err.Error())
		return
	}
	c.JSON(http.StatusOK, settings)
}

// EnableAutopayHandler turns autopay on and returns the Stripe setup intent
// client secret the frontend needs to collect a card.
func (h *PaymentHandler) EnableAutopayHandler(c *gin.Context) {
	logger := utils.GetLogger()
	shopID := shopIDFromContext(c)

	setup, err := h.Service.EnableAutopay(shopID)
	if err != nil {
		logger.Error("Failed to enable autopay", zap.String("shopID", shopID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to enable autopay", err.Error())
		return
	}
	c.JSON(http.StatusOK, setup)
}

func (h *PaymentHandler) DisableAutopayHandler(c *gin.Context) {
	shopID := shopIDFromContext(c)

	settings, err := h.Service.DisableAutopay(shopID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to disable autopay", err.Error())
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *PaymentHandler) SetPaymentMethodHandler(c *gin.Context) {
	shopID := shopIDFromContext(c)

	var req struct {
		PaymentMethodID string `json:"paymentMethodId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	settings, err := h.Service.SetDefaultPaymentMethod(shopID, req.PaymentMethodID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to set payment method", err.Error())
		return
	}
	c.JSON(http.StatusOK, settings)
}
