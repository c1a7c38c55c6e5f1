package routes

import (
	"github.com/gin-gonic/gin"

	"bakery-service/controllers"
)

// Controllers groups every handler the API exposes.
type Controllers struct {
	Health   *controllers.HealthController
	Products *controllers.ProductController
	Orders   *controllers.OrderController
	Payments *controllers.PaymentController
}

// RegisterRoutes sets up the public routes and the /api group.
func RegisterRoutes(r *gin.Engine, c Controllers) {
	r.GET("/", c.Health.Root)
	r.GET("/test", c.Health.Test)
	r.GET("/health", c.Health.Health)

	api := r.Group("/api")
	{
		api.GET("/products", c.Products.ListProducts)
		api.POST("/products", c.Products.CreateProduct)
		api.POST("/seed", c.Products.SeedProducts)

		api.POST("/orders", c.Orders.CreateOrder)
		api.GET("/orders/:id", c.Orders.GetOrder)

		api.POST("/payments", c.Payments.CreatePayment)
	}
}
