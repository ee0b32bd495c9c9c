package favorites

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maricoIR/HengamGallery/internal/cache"
	catalog "github.com/maricoIR/HengamGallery/internal/catalog/domain"
	"github.com/maricoIR/HengamGallery/internal/events"
)

type mockStore struct {
	m     sync.Mutex
	blobs map[string][]byte
}

func (m *mockStore) Get(_ context.Context, key string) ([]byte, error) {
	m.m.Lock()
	defer m.m.Unlock()
	b, ok := m.blobs[key]
	if !ok {
		return nil, cache.ErrMiss
	}
	return b, nil
}

func (m *mockStore) Set(_ context.Context, key string, blob []byte) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.blobs[key] = blob
	return nil
}

func (m *mockStore) Delete(_ context.Context, key string) error {
	m.m.Lock()
	defer m.m.Unlock()
	delete(m.blobs, key)
	return nil
}

func newTestService() (*Service, *mockStore) {
	store := &mockStore{blobs: map[string][]byte{}}
	return NewService(store, events.NopPublisher{}), store
}

func ring() catalog.Product {
	return catalog.Product{ID: 3, NameFa: "انگشتر الماس", Price: 45000000}
}

func TestAdd_Idempotent(t *testing.T) {
	svc, _ := newTestService()

	svc.Add(context.Background(), ring())
	svc.Add(context.Background(), ring())

	assert.Equal(t, 1, svc.Count())
	assert.True(t, svc.Contains(3))
}

func TestRemove_UnknownId_NoOp(t *testing.T) {
	svc, _ := newTestService()
	svc.Add(context.Background(), ring())

	svc.Remove(context.Background(), 999)

	assert.Equal(t, 1, svc.Count())
}

func TestToggle_RoundTrip(t *testing.T) {
	svc, _ := newTestService()

	svc.Toggle(context.Background(), ring())
	assert.True(t, svc.Contains(3))

	svc.Toggle(context.Background(), ring())
	assert.False(t, svc.Contains(3))
	assert.Equal(t, 0, svc.Count())
}

func TestList_InsertionOrder(t *testing.T) {
	svc, _ := newTestService()
	svc.Add(context.Background(), catalog.Product{ID: 2})
	svc.Add(context.Background(), catalog.Product{ID: 1})
	svc.Add(context.Background(), catalog.Product{ID: 3})

	list := svc.List()
	require.Len(t, list, 3)
	assert.Equal(t, int64(2), list[0].ID)
	assert.Equal(t, int64(1), list[1].ID)
	assert.Equal(t, int64(3), list[2].ID)
}

func TestClear_EmptiesAndPersists(t *testing.T) {
	svc, store := newTestService()
	svc.Add(context.Background(), ring())

	svc.Clear(context.Background())

	assert.Equal(t, 0, svc.Count())

	var persisted []catalog.Product
	require.NoError(t, json.Unmarshal(store.blobs[snapshotKey], &persisted))
	assert.Empty(t, persisted)
}

func TestRehydrate_FromSnapshot(t *testing.T) {
	store := &mockStore{blobs: map[string][]byte{}}
	blob, err := json.Marshal([]catalog.Product{ring()})
	require.NoError(t, err)
	store.blobs[snapshotKey] = blob

	svc := NewService(store, events.NopPublisher{})

	assert.Equal(t, 1, svc.Count())
	assert.True(t, svc.Contains(3))
}

func TestRehydrate_CorruptSnapshot_FallsBackToEmpty(t *testing.T) {
	store := &mockStore{blobs: map[string][]byte{snapshotKey: []byte("[oops")}}

	svc := NewService(store, events.NopPublisher{})

	assert.Equal(t, 0, svc.Count())
}
