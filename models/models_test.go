package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func int64Ptr(v int64) *int64 { return &v }

func TestCreateProductRequest_DefaultsInStock(t *testing.T) {
	req := &CreateProductRequest{Name: "Cannoli", PriceCents: int64Ptr(375)}
	p := req.ToProduct()
	assert.True(t, p.InStock)
	assert.Equal(t, int64(375), p.PriceCents)

	out := false
	req.InStock = &out
	assert.False(t, req.ToProduct().InStock)
}

func TestCreateOrderRequest_Defaults(t *testing.T) {
	req := &CreateOrderRequest{
		CustomerName: "Ada",
		TotalCents:   int64Ptr(900),
		Items: []OrderItemRequest{
			{ProductID: "p1", Name: "Cannoli", Quantity: 2, UnitPriceCents: int64Ptr(225), SubtotalCents: int64Ptr(450)},
			{ProductID: "p2", Name: "Croissant", Quantity: 1, UnitPriceCents: int64Ptr(450), SubtotalCents: int64Ptr(450)},
		},
	}

	o := req.ToOrder()
	assert.Equal(t, OrderStatusNew, o.Status)
	assert.Equal(t, PaymentStatusUnpaid, o.PaymentStatus)
	assert.Len(t, o.Items, 2)
	sum, ok := o.SubtotalSum()
	assert.True(t, ok)
	assert.Equal(t, int64(900), sum)
	assert.Equal(t, o.TotalCents, sum)
}

func TestOrder_SubtotalSumIgnoresUnitPrice(t *testing.T) {
	o := &Order{Items: []OrderItem{{Quantity: 3, UnitPriceCents: 100, SubtotalCents: 50}}}
	sum, ok := o.SubtotalSum()
	assert.True(t, ok)
	assert.Equal(t, int64(50), sum)
}

func TestOrder_SubtotalSumOverflow(t *testing.T) {
	o := &Order{Items: []OrderItem{
		{SubtotalCents: math.MaxInt64},
		{SubtotalCents: math.MaxInt64},
		{SubtotalCents: math.MaxInt64},
	}}
	_, ok := o.SubtotalSum()
	assert.False(t, ok)

	o = &Order{Items: []OrderItem{{SubtotalCents: math.MaxInt64 - 1}, {SubtotalCents: 1}}}
	sum, ok := o.SubtotalSum()
	assert.True(t, ok)
	assert.Equal(t, int64(math.MaxInt64), sum)
}
