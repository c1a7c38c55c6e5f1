package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bakery-service/models"
	"bakery-service/services"
)

// OrderController handles HTTP requests for orders.
type OrderController struct {
	orderService services.OrderService
}

// NewOrderController creates a new OrderController.
func NewOrderController(orderService services.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

// CreateOrder handles POST /api/orders.
func (oc *OrderController) CreateOrder(ctx *gin.Context) {
	var req models.CreateOrderRequest
	if !bindJSON(ctx, &req) {
		return
	}

	resp, svcErr := oc.orderService.CreateOrder(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.Code, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetOrder handles GET /api/orders/:id.
func (oc *OrderController) GetOrder(ctx *gin.Context) {
	order, svcErr := oc.orderService.GetOrder(ctx.Request.Context(), ctx.Param("id"))
	if svcErr != nil {
		ctx.JSON(svcErr.Code, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, order)
}
