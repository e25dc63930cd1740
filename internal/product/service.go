// Ruthwik | 2026
// service.go

package product

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

const (
	statsCacheKey = "products:stats"
	statsCacheTTL = 60 * time.Second
)

type Service struct {
	repo  Repository
	cache Cache
}

func NewService(repo Repository, cache Cache) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
	}
}

func (s *Service) List(ctx context.Context) ([]Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(
	ctx context.Context,
	req CreateProductRequest,
) (*Product, error) {
	images := ImageList(req.Images)
	if images == nil {
		images = ImageList{}
	}

	product := &Product{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Stock:       *req.Stock,
		Category:    req.Category,
		Images:      images,
		Sales:       0,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.invalidateStats(ctx)

	return product, nil
}

func (s *Service) Update(
	ctx context.Context,
	id string,
	req UpdateProductRequest,
) (*Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Images != nil {
		product.Images = ImageList(*req.Images)
	}

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}

	s.invalidateStats(ctx)

	return product, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateStats(ctx)

	return nil
}

// Stats computes the dashboard aggregates over the whole catalog,
// serving from the cache when a recent computation exists.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, statsCacheKey); err == nil {
			var stats Stats
			if err := json.Unmarshal(data, &stats); err == nil {
				return &stats, nil
			}
		} else if !errors.Is(err, ErrCacheMiss) {
			slog.Warn("stats cache read failed", "error", err)
		}
	}

	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := computeStats(products)

	if s.cache != nil {
		if data, err := json.Marshal(stats); err == nil {
			if err := s.cache.Set(ctx, statsCacheKey, data, statsCacheTTL); err != nil {
				slog.Warn("stats cache write failed", "error", err)
			}
		}
	}

	return stats, nil
}

func computeStats(products []Product) *Stats {
	stats := &Stats{
		TotalProducts: len(products),
		Categories:    make(map[string]int),
	}

	for i := range products {
		p := &products[i]

		switch {
		case p.IsOutOfStock():
			stats.OutOfStock++
		case p.IsLowStock():
			stats.LowStock++
		default:
			stats.InStock++
		}

		stats.InventoryValue += p.Price * float64(p.Stock)
		stats.Categories[p.Category]++
	}

	return stats
}

func (s *Service) invalidateStats(ctx context.Context) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Delete(ctx, statsCacheKey); err != nil {
		slog.Warn("stats cache invalidation failed", "error", err)
	}
}
