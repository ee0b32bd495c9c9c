package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"golang.org/x/sync/singleflight"

	"github.com/maricoIR/HengamGallery/internal/cache"
	"github.com/maricoIR/HengamGallery/internal/catalog/domain"
	"github.com/maricoIR/HengamGallery/internal/catalog/repository"
)

type CatalogService struct {
	repo  repository.CatalogRepository
	cache cache.BlobStore
	sfg   singleflight.Group // Prevents cache stampede on the slow provider
}

func NewCatalogService(repo repository.CatalogRepository, cache cache.BlobStore) *CatalogService {
	return &CatalogService{
		repo:  repo,
		cache: cache,
	}
}

func (s *CatalogService) GetProducts(ctx context.Context) ([]domain.Product, error) {
	v, err, _ := s.sfg.Do("products", func() (interface{}, error) {
		var products []domain.Product
		if ok := s.cacheGet(ctx, "catalog:products", &products); ok {
			return products, nil
		}

		products, errGet := s.repo.GetProducts(ctx)
		if errGet != nil {
			return nil, errGet
		}

		s.cacheSet("catalog:products", products)
		return products, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Product), nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	key := fmt.Sprintf("catalog:product:%d", id)
	v, err, _ := s.sfg.Do(key, func() (interface{}, error) {
		var product domain.Product
		if ok := s.cacheGet(ctx, key, &product); ok {
			return &product, nil
		}

		p, errGet := s.repo.GetProduct(ctx, id)
		if errGet != nil {
			return nil, errGet // ErrProductNotFound passes through untouched
		}

		s.cacheSet(key, p)
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Product), nil
}

func (s *CatalogService) GetCategories(ctx context.Context) ([]domain.Category, error) {
	return s.repo.GetCategories(ctx)
}

func (s *CatalogService) GetInstagramPosts(ctx context.Context) ([]domain.InstagramPost, error) {
	v, err, _ := s.sfg.Do("instagram", func() (interface{}, error) {
		var posts []domain.InstagramPost
		if ok := s.cacheGet(ctx, "catalog:instagram", &posts); ok {
			return posts, nil
		}

		posts, errGet := s.repo.GetInstagramPosts(ctx)
		if errGet != nil {
			return nil, errGet
		}

		s.cacheSet("catalog:instagram", posts)
		return posts, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.InstagramPost), nil
}

// cacheGet reports whether the key was found and decoded. Cache errors are
// logged and treated as misses.
func (s *CatalogService) cacheGet(ctx context.Context, key string, out interface{}) bool {
	blob, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			log.Printf("catalog cache get error: %v", err)
		}
		return false
	}
	if err := json.Unmarshal(blob, out); err != nil {
		log.Printf("catalog cache unmarshal error: %v", err)
		return false
	}
	return true
}

func (s *CatalogService) cacheSet(key string, value interface{}) {
	blob, err := json.Marshal(value)
	if err != nil {
		log.Printf("catalog cache marshal error: %v", err)
		return
	}
	go func() {
		if err := s.cache.Set(context.Background(), key, blob); err != nil {
			log.Printf("catalog cache set error: %v", err)
		}
	}()
}
