package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bakery-service/services"
)

// HealthController serves the root banner, liveness and diagnostics routes.
type HealthController struct {
	diagnostics services.DiagnosticsService
	serviceName string
}

func NewHealthController(diagnostics services.DiagnosticsService, serviceName string) *HealthController {
	return &HealthController{diagnostics: diagnostics, serviceName: serviceName}
}

// Root handles GET /.
func (hc *HealthController) Root(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "Mazzarelli's Bakery API running"})
}

// Health handles GET /health.
func (hc *HealthController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "OK", "service": hc.serviceName})
}

// Test handles GET /test. It always answers 200.
func (hc *HealthController) Test(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, hc.diagnostics.Diagnose(ctx.Request.Context()))
}
