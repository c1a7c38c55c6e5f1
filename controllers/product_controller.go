package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bakery-service/models"
	"bakery-service/services"
)

// ProductController handles HTTP requests for the catalog.
type ProductController struct {
	productService services.ProductService
}

// NewProductController creates a new ProductController.
func NewProductController(productService services.ProductService) *ProductController {
	return &ProductController{productService: productService}
}

// ListProducts handles GET /api/products.
func (pc *ProductController) ListProducts(ctx *gin.Context) {
	products, svcErr := pc.productService.ListProducts(ctx.Request.Context())
	if svcErr != nil {
		ctx.JSON(svcErr.Code, gin.H{"error": svcErr.Message})
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	ctx.JSON(http.StatusOK, products)
}

// CreateProduct handles POST /api/products and responds with the new id
// as a bare JSON string.
func (pc *ProductController) CreateProduct(ctx *gin.Context) {
	var req models.CreateProductRequest
	if !bindJSON(ctx, &req) {
		return
	}

	id, svcErr := pc.productService.CreateProduct(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.Code, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, id)
}

// SeedProducts handles POST /api/seed.
func (pc *ProductController) SeedProducts(ctx *gin.Context) {
	res, svcErr := pc.productService.SeedProducts(ctx.Request.Context())
	if svcErr != nil {
		ctx.JSON(svcErr.Code, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, res)
}
