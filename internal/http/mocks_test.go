package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/maricoIR/HengamGallery/internal/cache"
	cartservice "github.com/maricoIR/HengamGallery/internal/cart/service"
	"github.com/maricoIR/HengamGallery/internal/catalog/repository"
	catalogservice "github.com/maricoIR/HengamGallery/internal/catalog/service"
	"github.com/maricoIR/HengamGallery/internal/events"
	"github.com/maricoIR/HengamGallery/internal/identity"
	ordersdomain "github.com/maricoIR/HengamGallery/internal/orders/domain"
	ordersrepo "github.com/maricoIR/HengamGallery/internal/orders/repository"
)

type memStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{blobs: map[string][]byte{}}
}

func (m *memStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.blobs[key]
	if !ok {
		return nil, cache.ErrMiss
	}
	return b, nil
}

func (m *memStore) Set(_ context.Context, key string, blob []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[key] = blob
	return nil
}

func (m *memStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.blobs, key)
	return nil
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Millisecond)
	return c.now
}

type mockOrderRepo struct {
	mu     sync.Mutex
	orders map[uuid.UUID]*ordersdomain.Order
	err    error
}

func newMockOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{orders: map[uuid.UUID]*ordersdomain.Order{}}
}

func (m *mockOrderRepo) CreateOrder(_ context.Context, order *ordersdomain.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.orders[order.ID] = order
	return nil
}

func (m *mockOrderRepo) GetOrder(_ context.Context, id uuid.UUID) (*ordersdomain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	order, ok := m.orders[id]
	if !ok {
		return nil, ordersrepo.ErrOrderNotFound
	}
	return order, nil
}

func (m *mockOrderRepo) ListOrders(_ context.Context, userID int64) ([]*ordersdomain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var out []*ordersdomain.Order
	for _, order := range m.orders {
		if order.UserID == userID {
			out = append(out, order)
		}
	}
	return out, nil
}

func (m *mockOrderRepo) Close() error { return nil }

func newTestCatalog() *catalogservice.CatalogService {
	repo := repository.NewMemoryRepository(repository.NopDelayer{})
	return catalogservice.NewCatalogService(repo, newMemStore())
}

func newTestCart() *cartservice.Service {
	return cartservice.NewService(newMemStore(), events.NopPublisher{}, &fakeClock{now: time.Unix(1700000000, 0)})
}

func newTestIdentity() *identity.Store {
	return identity.NewStore(identity.StaticChecker{}, newMemStore(), repository.NopDelayer{}, &fakeClock{now: time.Unix(1700000000, 0)})
}

// withURLParam injects a chi route parameter the way the router would.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
