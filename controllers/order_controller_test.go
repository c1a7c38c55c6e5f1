package controllers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "bakery-service/common/errors"
	"bakery-service/models"
)

func validOrderBody() map[string]any {
	return map[string]any{
		"items": []map[string]any{
			{"product_id": "p1", "name": "Cannoli", "quantity": 2, "unit_price_cents": 375, "subtotal_cents": 750},
		},
		"customer_name": "Ann",
		"total_cents":   750,
	}
}

func TestCreateOrder(t *testing.T) {
	var got *models.CreateOrderRequest
	svc := &mockOrderService{
		createFn: func(_ context.Context, req *models.CreateOrderRequest) (*models.CreateOrderResponse, *apperrors.Error) {
			got = req
			return &models.CreateOrderResponse{OrderID: "66a1f0c2e4b0a1b2c3d4e5f6", Status: "created"}, nil
		},
	}

	w := doRequest(setupRouter(mocks{orders: svc}), http.MethodPost, "/api/orders", validOrderBody())
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"order_id":"66a1f0c2e4b0a1b2c3d4e5f6","status":"created"}`, w.Body.String())
	require.NotNil(t, got)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 2, got.Items[0].Quantity)
}

func TestCreateOrder_EmptyItemsAccepted(t *testing.T) {
	svc := &mockOrderService{
		createFn: func(_ context.Context, _ *models.CreateOrderRequest) (*models.CreateOrderResponse, *apperrors.Error) {
			return &models.CreateOrderResponse{OrderID: "x", Status: "created"}, nil
		},
	}
	body := map[string]any{"items": []any{}, "customer_name": "Ann", "total_cents": 0}

	w := doRequest(setupRouter(mocks{orders: svc}), http.MethodPost, "/api/orders", body)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateOrder_TotalMismatch(t *testing.T) {
	svc := &mockOrderService{
		createFn: func(_ context.Context, _ *models.CreateOrderRequest) (*models.CreateOrderResponse, *apperrors.Error) {
			return nil, apperrors.BadRequest("Total does not match items subtotal")
		},
	}

	w := doRequest(setupRouter(mocks{orders: svc}), http.MethodPost, "/api/orders", validOrderBody())
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Total does not match items subtotal", decode(t, w)["error"])
}

func TestCreateOrder_Validation(t *testing.T) {
	svc := &mockOrderService{
		createFn: func(_ context.Context, _ *models.CreateOrderRequest) (*models.CreateOrderResponse, *apperrors.Error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}
	r := setupRouter(mocks{orders: svc})

	tests := []struct {
		name  string
		edit  func(b map[string]any)
		field string
	}{
		{"zero quantity", func(b map[string]any) {
			b["items"].([]map[string]any)[0]["quantity"] = 0
		}, "items[0].quantity"},
		{"negative subtotal", func(b map[string]any) {
			b["items"].([]map[string]any)[0]["subtotal_cents"] = -5
		}, "items[0].subtotal_cents"},
		{"missing items", func(b map[string]any) { delete(b, "items") }, "items"},
		{"missing customer", func(b map[string]any) { delete(b, "customer_name") }, "customer_name"},
		{"empty customer", func(b map[string]any) { b["customer_name"] = "" }, "customer_name"},
		{"empty item name", func(b map[string]any) {
			b["items"].([]map[string]any)[0]["name"] = ""
		}, "items[0].name"},
		{"bad status", func(b map[string]any) { b["status"] = "shipped" }, "status"},
		{"bad payment status", func(b map[string]any) { b["payment_status"] = "settled" }, "payment_status"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			body := validOrderBody()
			tc.edit(body)

			w := doRequest(r, http.MethodPost, "/api/orders", body)
			require.Equal(t, http.StatusUnprocessableEntity, w.Code)
			details := decode(t, w)["details"].([]any)
			require.NotEmpty(t, details)
			assert.Equal(t, tc.field, details[0].(map[string]any)["field"])
		})
	}
}

func TestGetOrder(t *testing.T) {
	id := primitive.NewObjectID()
	svc := &mockOrderService{
		getFn: func(_ context.Context, orderID string) (*models.Order, *apperrors.Error) {
			switch orderID {
			case id.Hex():
				return &models.Order{
					ID:            id,
					Items:         []models.OrderItem{},
					CustomerName:  "Ann",
					TotalCents:    0,
					Status:        models.OrderStatusNew,
					PaymentStatus: models.PaymentStatusUnpaid,
				}, nil
			case "xyz":
				return nil, apperrors.BadRequest("Invalid order id")
			default:
				return nil, apperrors.NotFound("Order not found")
			}
		},
	}
	r := setupRouter(mocks{orders: svc})

	w := doRequest(r, http.MethodGet, "/api/orders/"+id.Hex(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, id.Hex(), body["id"])
	assert.Equal(t, "new", body["status"])
	assert.Equal(t, "unpaid", body["payment_status"])

	w = doRequest(r, http.MethodGet, "/api/orders/xyz", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid order id", decode(t, w)["error"])

	w = doRequest(r, http.MethodGet, "/api/orders/0123456789abcdef01234567", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Order not found", decode(t, w)["error"])
}
