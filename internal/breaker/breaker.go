package breaker

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/maricoIR/HengamGallery/internal/cache"
)

// Store wraps a BlobStore in a circuit breaker so a dead redis trips fast
// instead of stalling every cart mutation behind connection timeouts.
type Store struct {
	inner cache.BlobStore
	cb    *gobreaker.CircuitBreaker[[]byte]
}

func Wrap(inner cache.BlobStore, name string) *Store {
	settings := gobreaker.Settings{
		Name:    name,
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		// A miss is a valid answer, not a store failure.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, cache.ErrMiss)
		},
	}
	return &Store{
		inner: inner,
		cb:    gobreaker.NewCircuitBreaker[[]byte](settings),
	}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	return s.cb.Execute(func() ([]byte, error) {
		return s.inner.Get(ctx, key)
	})
}

func (s *Store) Set(ctx context.Context, key string, blob []byte) error {
	_, err := s.cb.Execute(func() ([]byte, error) {
		return nil, s.inner.Set(ctx, key, blob)
	})
	return err
}

func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.cb.Execute(func() ([]byte, error) {
		return nil, s.inner.Delete(ctx, key)
	})
	return err
}
