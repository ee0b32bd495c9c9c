package repository

import (
	"context"
	"errors"
	"time"

	"github.com/maricoIR/HengamGallery/internal/catalog/domain"
)

var ErrProductNotFound = errors.New("product not found")

// CatalogRepository is the single source of catalog truth.
// Consumers define this interface, not the implementation.
type CatalogRepository interface {
	GetProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	GetCategories(ctx context.Context) ([]domain.Category, error)
	GetInstagramPosts(ctx context.Context) ([]domain.InstagramPost, error)
}

// Delayer simulates upstream latency. The memory repository waits through it
// before answering, so tests can swap in NopDelayer and run synchronously.
type Delayer interface {
	Delay(ctx context.Context, d time.Duration) error
}

// SleepDelayer waits for real, respecting context cancellation.
type SleepDelayer struct{}

func (SleepDelayer) Delay(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// NopDelayer returns immediately.
type NopDelayer struct{}

func (NopDelayer) Delay(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}
