package service

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/maricoIR/HengamGallery/internal/cache"
	"github.com/maricoIR/HengamGallery/internal/cart/domain"
	catalog "github.com/maricoIR/HengamGallery/internal/catalog/domain"
	"github.com/maricoIR/HengamGallery/internal/events"
)

const snapshotKey = "hengam:cart"

// Clock supplies line ids (creation-time unix millis, like the reference
// system) and is injected so tests are deterministic.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Service owns the cart aggregate. Every operation is total: invalid input
// (unknown product id, non-positive quantity on Add) is absorbed silently so
// the caller never has to handle a cart error. Totals are recomputed after
// every mutation, a snapshot is persisted fire-and-forget and a cart-changed
// event is published.
type Service struct {
	mu    sync.Mutex
	cart  domain.Cart
	store cache.BlobStore
	pub   events.Publisher
	clock Clock
}

func NewService(store cache.BlobStore, pub events.Publisher, clock Clock) *Service {
	s := &Service{store: store, pub: pub, clock: clock}
	s.rehydrate()
	return s
}

// rehydrate loads the persisted snapshot. A missing or corrupt snapshot
// falls back to an empty cart; totals are always recomputed from the lines
// rather than trusted from storage.
func (s *Service) rehydrate() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	blob, err := s.store.Get(ctx, snapshotKey)
	if err != nil {
		if err != cache.ErrMiss {
			log.Printf("cart snapshot load error: %v", err)
		}
		return
	}

	var cart domain.Cart
	if err := json.Unmarshal(blob, &cart); err != nil {
		log.Printf("cart snapshot unmarshal error: %v", err)
		return
	}

	cart.Recompute()
	s.cart = cart
}

// Add merges the quantity into the line matching product id and variation
// signature, or appends a new line. Non-positive quantities are ignored.
func (s *Service) Add(ctx context.Context, product catalog.Product, quantity int, variations map[string]string) {
	if quantity <= 0 {
		return
	}

	s.mu.Lock()
	sig := domain.Signature(variations)
	if i := s.cart.FindLine(product.ID, sig); i >= 0 {
		s.cart.Lines[i].Quantity += quantity
	} else {
		s.cart.Lines = append(s.cart.Lines, domain.Line{
			ID:         s.clock.Now().UnixMilli(),
			Product:    product,
			Quantity:   quantity,
			Variations: variations,
		})
	}
	s.cart.Recompute()
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.afterMutation(ctx, events.TypeCartChanged, snapshot)
}

// Remove drops every line with the given product id, regardless of
// variations. The reference system behaves this way even when several
// variant lines share the id, and that behavior is kept.
func (s *Service) Remove(ctx context.Context, productID int64) {
	s.mu.Lock()
	kept := s.cart.Lines[:0]
	for _, line := range s.cart.Lines {
		if line.Product.ID != productID {
			kept = append(kept, line)
		}
	}
	changed := len(kept) != len(s.cart.Lines)
	s.cart.Lines = kept
	s.cart.Recompute()
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	if changed {
		s.afterMutation(ctx, events.TypeCartChanged, snapshot)
	}
}

// UpdateQuantity sets the quantity on every line with the given product id
// (variation-insensitive, same quirk as Remove). A quantity of zero or less
// removes the lines instead.
func (s *Service) UpdateQuantity(ctx context.Context, productID int64, quantity int) {
	if quantity <= 0 {
		s.Remove(ctx, productID)
		return
	}

	s.mu.Lock()
	changed := false
	for i := range s.cart.Lines {
		if s.cart.Lines[i].Product.ID == productID && s.cart.Lines[i].Quantity != quantity {
			s.cart.Lines[i].Quantity = quantity
			changed = true
		}
	}
	s.cart.Recompute()
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	if changed {
		s.afterMutation(ctx, events.TypeCartChanged, snapshot)
	}
}

// Clear empties the cart and zeroes the totals.
func (s *Service) Clear(ctx context.Context) {
	s.mu.Lock()
	s.cart = domain.Cart{}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.afterMutation(ctx, events.TypeCartCleared, snapshot)
}

// Snapshot returns a copy of the current cart state.
func (s *Service) Snapshot() domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Service) snapshotLocked() domain.Cart {
	out := s.cart
	out.Lines = make([]domain.Line, len(s.cart.Lines))
	copy(out.Lines, s.cart.Lines)
	return out
}

// afterMutation persists the snapshot and publishes the event. Both are
// best-effort: failures are logged and the mutation stands.
func (s *Service) afterMutation(ctx context.Context, eventType string, snapshot domain.Cart) {
	blob, err := json.Marshal(snapshot)
	if err != nil {
		log.Printf("cart snapshot marshal error: %v", err)
		return
	}

	persistCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), time.Second)
	defer cancel()
	if err := s.store.Set(persistCtx, snapshotKey, blob); err != nil {
		log.Printf("cart snapshot persist error: %v", err)
	}

	if err := s.pub.Publish(persistCtx, events.Event{Type: eventType, Key: "cart", Payload: blob}); err != nil {
		log.Printf("cart event publish error: %v", err)
	}
}
