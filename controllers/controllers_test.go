package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "bakery-service/common/errors"
	"bakery-service/controllers"
	"bakery-service/models"
	"bakery-service/routes"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// --- Mock services ---

type mockProductService struct {
	listFn   func(ctx context.Context) ([]models.Product, *apperrors.Error)
	createFn func(ctx context.Context, req *models.CreateProductRequest) (string, *apperrors.Error)
	seedFn   func(ctx context.Context) (*models.SeedResult, *apperrors.Error)
}

func (m *mockProductService) ListProducts(ctx context.Context) ([]models.Product, *apperrors.Error) {
	return m.listFn(ctx)
}
func (m *mockProductService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (string, *apperrors.Error) {
	return m.createFn(ctx, req)
}
func (m *mockProductService) SeedProducts(ctx context.Context) (*models.SeedResult, *apperrors.Error) {
	return m.seedFn(ctx)
}

type mockOrderService struct {
	createFn func(ctx context.Context, req *models.CreateOrderRequest) (*models.CreateOrderResponse, *apperrors.Error)
	getFn    func(ctx context.Context, id string) (*models.Order, *apperrors.Error)
}

func (m *mockOrderService) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.CreateOrderResponse, *apperrors.Error) {
	return m.createFn(ctx, req)
}
func (m *mockOrderService) GetOrder(ctx context.Context, id string) (*models.Order, *apperrors.Error) {
	return m.getFn(ctx, id)
}

type mockPaymentService struct {
	createFn func(ctx context.Context, req *models.CreatePaymentRequest) (*models.CreatePaymentResponse, *apperrors.Error)
}

func (m *mockPaymentService) CreatePayment(ctx context.Context, req *models.CreatePaymentRequest) (*models.CreatePaymentResponse, *apperrors.Error) {
	return m.createFn(ctx, req)
}

type mockDiagnostics struct{ d *models.Diagnostics }

func (m *mockDiagnostics) Diagnose(_ context.Context) *models.Diagnostics { return m.d }

// --- Helpers ---

type mocks struct {
	products *mockProductService
	orders   *mockOrderService
	payments *mockPaymentService
	diag     *mockDiagnostics
}

func setupRouter(m mocks) *gin.Engine {
	if m.products == nil {
		m.products = &mockProductService{}
	}
	if m.orders == nil {
		m.orders = &mockOrderService{}
	}
	if m.payments == nil {
		m.payments = &mockPaymentService{}
	}
	if m.diag == nil {
		m.diag = &mockDiagnostics{d: &models.Diagnostics{Backend: "✅ Running"}}
	}

	r := gin.New()
	routes.RegisterRoutes(r, routes.Controllers{
		Health:   controllers.NewHealthController(m.diag, "bakery-service"),
		Products: controllers.NewProductController(m.products),
		Orders:   controllers.NewOrderController(m.orders),
		Payments: controllers.NewPaymentController(m.payments),
	})
	return r
}

func doRequest(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			_ = json.NewEncoder(&buf).Encode(b)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// --- Health ---

func TestRoot(t *testing.T) {
	w := doRequest(setupRouter(mocks{}), http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Mazzarelli's Bakery API running", decode(t, w)["message"])
}

func TestHealth(t *testing.T) {
	w := doRequest(setupRouter(mocks{}), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "OK", body["status"])
	assert.Equal(t, "bakery-service", body["service"])
}

func TestDiagnostics_AlwaysOK(t *testing.T) {
	diag := &mockDiagnostics{d: &models.Diagnostics{
		Backend:      "✅ Running",
		Database:     "❌ Error: connection refused",
		DatabaseURL:  "✅ Set",
		DatabaseName: "bakery",
		Collections:  []string{},
	}}
	w := doRequest(setupRouter(mocks{diag: diag}), http.MethodGet, "/test", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "❌ Error: connection refused", body["database"])
	assert.Equal(t, []any{}, body["collections"])
}
