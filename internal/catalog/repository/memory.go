package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/maricoIR/HengamGallery/internal/catalog/domain"
)

// Latencies mirror the upstream provider this store stands in for.
const (
	productsDelay  = 500 * time.Millisecond
	productDelay   = 300 * time.Millisecond
	instagramDelay = 400 * time.Millisecond
)

// MemoryRepository serves the seeded catalog from memory. The catalog is
// read-only for the lifetime of the process.
type MemoryRepository struct {
	mu        sync.RWMutex
	products  []domain.Product
	byID      map[int64]int
	categs    []domain.Category
	instagram []domain.InstagramPost
	delayer   Delayer
}

func NewMemoryRepository(delayer Delayer) *MemoryRepository {
	products := seedProducts()
	byID := make(map[int64]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}
	return &MemoryRepository{
		products:  products,
		byID:      byID,
		categs:    seedCategories(),
		instagram: seedInstagramPosts(),
		delayer:   delayer,
	}
}

func (r *MemoryRepository) GetProducts(ctx context.Context) ([]domain.Product, error) {
	if err := r.delayer.Delay(ctx, productsDelay); err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *MemoryRepository) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	if err := r.delayer.Delay(ctx, productDelay); err != nil {
		return nil, fmt.Errorf("fetch product: %w", err)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	p := r.products[i]
	return &p, nil
}

func (r *MemoryRepository) GetCategories(ctx context.Context) ([]domain.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Category, len(r.categs))
	copy(out, r.categs)
	return out, nil
}

func (r *MemoryRepository) GetInstagramPosts(ctx context.Context) ([]domain.InstagramPost, error) {
	if err := r.delayer.Delay(ctx, instagramDelay); err != nil {
		return nil, fmt.Errorf("fetch instagram posts: %w", err)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.InstagramPost, len(r.instagram))
	copy(out, r.instagram)
	return out, nil
}
