// Package search is the pure filter/sort/paginate pipeline over the
// catalog. It allocates its own result slices and never mutates the input.
package search

import (
	"sort"
	"strconv"
	"strings"

	"github.com/maricoIR/HengamGallery/internal/catalog/domain"
)

// Sort keys. Anything else keeps the incoming order.
const (
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortRating    = "rating"
	SortNewest    = "newest"
)

// Config is the transient filter state of one interaction. Price bounds are
// strings straight from user input; unparsable values are ignored rather
// than treated as zero.
type Config struct {
	Category string // category slug
	MinPrice string
	MaxPrice string
	Material string
	SortBy   string
}

type Result struct {
	Items      []domain.Product `json:"items"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
}

// Apply runs query -> category -> material -> price -> sort -> slice, in
// that order. Total counts the filtered set before pagination; an
// out-of-range page yields an empty item list, not an error.
func Apply(products []domain.Product, categories []domain.Category, query string, cfg Config, page, pageSize int) Result {
	filtered := make([]domain.Product, len(products))
	copy(filtered, products)

	if q := strings.ToLower(strings.TrimSpace(query)); q != "" {
		filtered = keep(filtered, func(p domain.Product) bool {
			if strings.Contains(strings.ToLower(p.NameFa), q) ||
				strings.Contains(strings.ToLower(p.NameEn), q) ||
				strings.Contains(strings.ToLower(p.Description), q) {
				return true
			}
			for _, tag := range p.Tags {
				if strings.Contains(strings.ToLower(tag), q) {
					return true
				}
			}
			return false
		})
	}

	if cfg.Category != "" {
		if name, ok := categoryName(categories, cfg.Category); ok {
			// Loose match by design: a tag merely containing the
			// category's display name counts.
			filtered = keep(filtered, func(p domain.Product) bool {
				for _, tag := range p.Tags {
					if strings.Contains(tag, name) {
						return true
					}
				}
				return false
			})
		}
	}

	if cfg.Material != "" {
		material := strings.ToLower(cfg.Material)
		filtered = keep(filtered, func(p domain.Product) bool {
			return strings.Contains(strings.ToLower(p.Specifications.Material), material)
		})
	}

	if min, err := strconv.ParseInt(cfg.MinPrice, 10, 64); err == nil {
		filtered = keep(filtered, func(p domain.Product) bool { return p.Price >= min })
	}
	if max, err := strconv.ParseInt(cfg.MaxPrice, 10, 64); err == nil {
		filtered = keep(filtered, func(p domain.Product) bool { return p.Price <= max })
	}

	switch cfg.SortBy {
	case SortPriceAsc:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price < filtered[j].Price })
	case SortPriceDesc:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price > filtered[j].Price })
	case SortRating:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Rating > filtered[j].Rating })
	case SortNewest:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].ID > filtered[j].ID })
	}

	return paginate(filtered, page, pageSize)
}

func keep(products []domain.Product, pred func(domain.Product) bool) []domain.Product {
	out := products[:0]
	for _, p := range products {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}

func categoryName(categories []domain.Category, slug string) (string, bool) {
	for _, c := range categories {
		if c.Slug == slug {
			return c.Name, true
		}
	}
	return "", false
}

func paginate(filtered []domain.Product, page, pageSize int) Result {
	if page < 0 {
		page = 0
	}
	if pageSize <= 0 {
		pageSize = 12
	}

	total := len(filtered)
	totalPages := (total + pageSize - 1) / pageSize

	start := page * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	items := make([]domain.Product, end-start)
	copy(items, filtered[start:end])

	return Result{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
