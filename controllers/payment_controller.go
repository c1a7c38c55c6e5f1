package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bakery-service/models"
	"bakery-service/services"
)

type PaymentController struct {
	paymentService services.PaymentService
}

func NewPaymentController(paymentService services.PaymentService) *PaymentController {
	return &PaymentController{paymentService: paymentService}
}

// CreatePayment handles POST /api/payments.
func (pc *PaymentController) CreatePayment(ctx *gin.Context) {
	var req models.CreatePaymentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	resp, svcErr := pc.paymentService.CreatePayment(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.Code, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
