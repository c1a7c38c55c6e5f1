package services_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"bakery-service/models"
	"bakery-service/repository"
)

// --- Mock repositories ---

type mockProductRepo struct {
	products  []models.Product
	createErr error
	failAfter int
	listErr   error
	countErr  error
	listCalls int
}

func (m *mockProductRepo) List(_ context.Context) ([]models.Product, error) {
	m.listCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	return append([]models.Product(nil), m.products...), nil
}

func (m *mockProductRepo) Create(_ context.Context, p *models.Product) (string, error) {
	if m.createErr != nil && len(m.products) >= m.failAfter {
		return "", m.createErr
	}
	p.ID = primitive.NewObjectID()
	m.products = append(m.products, *p)
	return p.ID.Hex(), nil
}

func (m *mockProductRepo) Count(_ context.Context) (int64, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	return int64(len(m.products)), nil
}

type mockOrderRepo struct {
	orders    map[string]*models.Order
	createErr error
	updateErr error
}

func newMockOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{orders: make(map[string]*models.Order)}
}

func (m *mockOrderRepo) Create(_ context.Context, o *models.Order) (string, error) {
	if m.createErr != nil {
		return "", m.createErr
	}
	o.ID = primitive.NewObjectID()
	m.orders[o.ID.Hex()] = o
	return o.ID.Hex(), nil
}

func (m *mockOrderRepo) FindByID(_ context.Context, id string) (*models.Order, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, fmt.Errorf("%w: %s", repository.ErrInvalidID, id)
	}
	o, ok := m.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return o, nil
}

func (m *mockOrderRepo) UpdatePaymentStatus(_ context.Context, id string, status string) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	o, ok := m.orders[id]
	if !ok {
		return repository.ErrNotFound
	}
	o.PaymentStatus = status
	return nil
}

type mockPaymentRepo struct {
	payments  []models.Payment
	createErr error
}

func (m *mockPaymentRepo) Create(_ context.Context, p *models.Payment) (string, error) {
	if m.createErr != nil {
		return "", m.createErr
	}
	p.ID = primitive.NewObjectID()
	m.payments = append(m.payments, *p)
	return p.ID.Hex(), nil
}

// --- Mock cache ---

type mockCache struct {
	products    []models.Product
	hit         bool
	invalidated int
}

func (m *mockCache) GetProducts(_ context.Context) ([]models.Product, bool) {
	return m.products, m.hit
}

func (m *mockCache) SetProducts(_ context.Context, products []models.Product) {
	m.products = products
	m.hit = true
}

func (m *mockCache) Invalidate(_ context.Context) error {
	m.invalidated++
	m.products = nil
	m.hit = false
	return nil
}

// --- Mock publisher ---

type mockPublisher struct {
	mu     sync.Mutex
	events []models.Event
	err    error
}

func (m *mockPublisher) Publish(_ context.Context, e models.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.events = append(m.events, e)
	return nil
}

func (m *mockPublisher) Close() error { return nil }

func (m *mockPublisher) types() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.events))
	for _, e := range m.events {
		out = append(out, e.Type)
	}
	return out
}

// --- Mock metrics ---

type mockMetrics struct {
	mu     sync.Mutex
	counts map[string]int
}

func newMockMetrics() *mockMetrics { return &mockMetrics{counts: make(map[string]int)} }

func (m *mockMetrics) RecordCount(_ context.Context, name string, _ map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts[name]++
	return nil
}

func (m *mockMetrics) RecordLatency(_ context.Context, _ string, _ time.Duration, _ map[string]string) error {
	return nil
}

func (m *mockMetrics) IsEnabled() bool { return true }

func (m *mockMetrics) count(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counts[name]
}

var errStorage = errors.New("connection refused")

func i64(v int64) *int64 { return &v }

func strPtr(s string) *string { return &s }
