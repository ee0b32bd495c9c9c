package favorites

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/maricoIR/HengamGallery/internal/cache"
	catalog "github.com/maricoIR/HengamGallery/internal/catalog/domain"
	"github.com/maricoIR/HengamGallery/internal/events"
)

const snapshotKey = "hengam:favorites"

// Service owns the favorites set: products unique by id, kept in insertion
// order for display. Add is idempotent. Persisted as a JSON array after
// every mutation, same fire-and-forget pattern as the cart.
type Service struct {
	mu    sync.Mutex
	items []catalog.Product
	store cache.BlobStore
	pub   events.Publisher
}

func NewService(store cache.BlobStore, pub events.Publisher) *Service {
	s := &Service{store: store, pub: pub}
	s.rehydrate()
	return s
}

func (s *Service) rehydrate() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	blob, err := s.store.Get(ctx, snapshotKey)
	if err != nil {
		if err != cache.ErrMiss {
			log.Printf("favorites snapshot load error: %v", err)
		}
		return
	}

	var items []catalog.Product
	if err := json.Unmarshal(blob, &items); err != nil {
		log.Printf("favorites snapshot unmarshal error: %v", err)
		return
	}
	s.items = items
}

// Add is a no-op when the product is already a favorite.
func (s *Service) Add(ctx context.Context, product catalog.Product) {
	s.mu.Lock()
	if s.containsLocked(product.ID) {
		s.mu.Unlock()
		return
	}
	s.items = append(s.items, product)
	snapshot := s.listLocked()
	s.mu.Unlock()

	s.afterMutation(ctx, snapshot)
}

func (s *Service) Remove(ctx context.Context, productID int64) {
	s.mu.Lock()
	kept := s.items[:0]
	for _, p := range s.items {
		if p.ID != productID {
			kept = append(kept, p)
		}
	}
	changed := len(kept) != len(s.items)
	s.items = kept
	snapshot := s.listLocked()
	s.mu.Unlock()

	if changed {
		s.afterMutation(ctx, snapshot)
	}
}

// Toggle adds the product when absent and removes it when present.
func (s *Service) Toggle(ctx context.Context, product catalog.Product) {
	if s.Contains(product.ID) {
		s.Remove(ctx, product.ID)
	} else {
		s.Add(ctx, product)
	}
}

func (s *Service) Contains(productID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.containsLocked(productID)
}

func (s *Service) Clear(ctx context.Context) {
	s.mu.Lock()
	s.items = nil
	snapshot := s.listLocked()
	s.mu.Unlock()

	s.afterMutation(ctx, snapshot)
}

func (s *Service) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// List returns the favorites in insertion order.
func (s *Service) List() []catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listLocked()
}

func (s *Service) containsLocked(productID int64) bool {
	for _, p := range s.items {
		if p.ID == productID {
			return true
		}
	}
	return false
}

func (s *Service) listLocked() []catalog.Product {
	out := make([]catalog.Product, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Service) afterMutation(ctx context.Context, snapshot []catalog.Product) {
	blob, err := json.Marshal(snapshot)
	if err != nil {
		log.Printf("favorites snapshot marshal error: %v", err)
		return
	}

	persistCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), time.Second)
	defer cancel()
	if err := s.store.Set(persistCtx, snapshotKey, blob); err != nil {
		log.Printf("favorites snapshot persist error: %v", err)
	}

	if err := s.pub.Publish(persistCtx, events.Event{Type: events.TypeFavoritesChanged, Key: "favorites", Payload: blob}); err != nil {
		log.Printf("favorites event publish error: %v", err)
	}
}
