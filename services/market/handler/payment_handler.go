package handler

import (
	"net/http"

	model "auction-marketplace/internal/models"
	"auction-marketplace/services/market/helpers"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

// ListPaymentsHandler handles GET /payments
func (h *MarketHandler) ListPaymentsHandler(c *gin.Context) {
	payments, err := h.service.ListPayments(c.Request.Context(), helpers.PrincipalFrom(c))
	if err != nil {
		helpers.RespondError(c, "ListPaymentsHandler", err, nil)
		return
	}

	if payments == nil {
		payments = []model.PaymentView{}
	}

	utils.JSONResponse(c, http.StatusOK, payments, "payments retrieved successfully")
	helpers.LogSuccess("ListPaymentsHandler", "payments retrieved successfully", map[string]any{"count": len(payments)})
}

// GetPaymentHandler handles GET /payments/:id
func (h *MarketHandler) GetPaymentHandler(c *gin.Context) {
	id, ok := helpers.ParseID(c, "GetPaymentHandler")
	if !ok {
		return
	}

	payment, err := h.service.GetPayment(c.Request.Context(), helpers.PrincipalFrom(c), id)
	if err != nil {
		helpers.RespondError(c, "GetPaymentHandler", err, map[string]any{"payment_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, payment, "payment retrieved successfully")
	helpers.LogSuccess("GetPaymentHandler", "payment retrieved successfully", map[string]any{"payment_id": id})
}

// CreatePaymentHandler handles POST /payments
func (h *MarketHandler) CreatePaymentHandler(c *gin.Context) {
	var req helpers.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreatePaymentHandler", err)
		return
	}

	p := helpers.PrincipalFrom(c)
	payment, err := h.service.CreatePayment(c.Request.Context(), p, req.ToModel())
	if err != nil {
		helpers.RespondError(c, "CreatePaymentHandler", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, payment, "payment created successfully")
	helpers.LogSuccess("CreatePaymentHandler", "payment created successfully", map[string]any{"payment_id": payment.ID})
}

// UpdatePaymentHandler handles PUT /payments/:id
func (h *MarketHandler) UpdatePaymentHandler(c *gin.Context) {
	id, ok := helpers.ParseID(c, "UpdatePaymentHandler")
	if !ok {
		return
	}

	var req helpers.PaymentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdatePaymentHandler", err)
		return
	}

	payment, err := h.service.UpdatePayment(c.Request.Context(), helpers.PrincipalFrom(c), id, req.ToModel())
	if err != nil {
		helpers.RespondError(c, "UpdatePaymentHandler", err, map[string]any{"payment_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, payment, "payment updated successfully")
	helpers.LogSuccess("UpdatePaymentHandler", "payment updated successfully", map[string]any{"payment_id": id})
}

// DeletePaymentHandler handles DELETE /payments/:id
func (h *MarketHandler) DeletePaymentHandler(c *gin.Context) {
	id, ok := helpers.ParseID(c, "DeletePaymentHandler")
	if !ok {
		return
	}

	if err := h.service.DeletePayment(c.Request.Context(), helpers.PrincipalFrom(c), id); err != nil {
		helpers.RespondError(c, "DeletePaymentHandler", err, map[string]any{"payment_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"id": id}, "payment deleted successfully")
	helpers.LogSuccess("DeletePaymentHandler", "payment deleted successfully", map[string]any{"payment_id": id})
}
