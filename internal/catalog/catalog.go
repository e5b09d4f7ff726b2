package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/abgdnv/glowmart/internal/model"
)

// Catalog defines the operations the presentation layer consumes.
type Catalog interface {
	// BeautyProducts returns the curated beauty catalog: classified upstream
	// products (or relabeled fallback entries) merged with the seed set.
	BeautyProducts(ctx context.Context) (*Page, error)

	// SearchProducts runs a free-text search scoped to the beauty domain.
	SearchProducts(ctx context.Context, query string) (*Page, error)

	// Product retrieves one product by ID, passed through from upstream.
	Product(ctx context.Context, id int64) (*model.Product, error)

	// Categories retrieves the upstream category list.
	Categories(ctx context.Context) ([]string, error)
}

// Page is an ordered product sequence with its count.
type Page struct {
	Products []model.Product `json:"products"`
	Total    int             `json:"total"`
}

const (
	// fallbackSize is how many raw products are relabeled when
	// classification yields no matches.
	fallbackSize = 10

	fallbackTitlePrefix       = "Beauty "
	fallbackDescriptionPrefix = "Premium beauty product: "
	fallbackCategory          = "beauty"

	// Titles already carrying this substring keep their original title in
	// the fallback relabeling.
	essenceMarker = "Essence"
)

// Service implements Catalog over an Upstream client and a Classifier.
type Service struct {
	upstream  Upstream
	classify  Classifier
	pageLimit int
	logger    *slog.Logger
}

// NewService creates a new Catalog service. pageLimit bounds the single
// upstream listing page; there is no pagination beyond it.
func NewService(upstream Upstream, classify Classifier, pageLimit int, logger *slog.Logger) *Service {
	return &Service{
		upstream:  upstream,
		classify:  classify,
		pageLimit: pageLimit,
		logger:    logger.With("component", "catalog"),
	}
}

// BeautyProducts fetches one bounded page of generic products and curates a
// beauty view: keyword-classified matches, or a relabeled prefix of the raw
// page when nothing matches, merged behind the fixed seed set. Seed entries
// win on ID collision.
func (s *Service) BeautyProducts(ctx context.Context) (*Page, error) {
	raw, err := s.upstream.Products(ctx, s.pageLimit)
	if err != nil {
		s.logger.ErrorContext(ctx, "Upstream product listing failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrFetchProducts, err)
	}

	matched := s.filter(raw)
	if len(matched) == 0 {
		matched = relabel(raw)
	}

	merged := merge(seedProducts(), matched)
	return &Page{Products: merged, Total: len(merged)}, nil
}

// SearchProducts queries upstream search. A query that itself contains a
// beauty keyword is trusted to already be beauty-scoped and returns the
// upstream results unfiltered; any other query is filtered per product.
func (s *Service) SearchProducts(ctx context.Context, query string) (*Page, error) {
	results, err := s.upstream.Search(ctx, query)
	if err != nil {
		s.logger.ErrorContext(ctx, "Upstream search failed", "query", query, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrSearchFailed, err)
	}

	if !s.classify.QueryMatches(query) {
		results = s.filter(results)
	}
	return &Page{Products: results, Total: len(results)}, nil
}

// Product retrieves a single product record by its ID.
func (s *Service) Product(ctx context.Context, id int64) (*model.Product, error) {
	product, err := s.upstream.Product(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "Upstream product fetch failed", "id", id, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrFetchProduct, err)
	}
	return product, nil
}

// Categories retrieves the upstream category list.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.upstream.Categories(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Upstream categories fetch failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrFetchCategories, err)
	}
	return categories, nil
}

// filter returns the products the classifier accepts, preserving order.
func (s *Service) filter(products []model.Product) []model.Product {
	matched := make([]model.Product, 0, len(products))
	for _, p := range products {
		if s.classify.Matches(p) {
			matched = append(matched, p)
		}
	}
	return matched
}

// relabel takes a fixed-size prefix of the raw result set and rewrites each
// entry as a beauty product.
func relabel(raw []model.Product) []model.Product {
	n := min(len(raw), fallbackSize)
	relabeled := make([]model.Product, 0, n)
	for _, p := range raw[:n] {
		if !strings.Contains(p.Title, essenceMarker) {
			p.Title = fallbackTitlePrefix + p.Title
		}
		p.Category = fallbackCategory
		p.Description = fallbackDescriptionPrefix + p.Description
		relabeled = append(relabeled, p)
	}
	return relabeled
}

// merge prepends seeds to extras, de-duplicating by product ID with seed
// entries winning on collision.
func merge(seeds, extras []model.Product) []model.Product {
	merged := make([]model.Product, 0, len(seeds)+len(extras))
	seen := make(map[int64]struct{}, len(seeds))
	for _, p := range seeds {
		merged = append(merged, p)
		seen[p.ID] = struct{}{}
	}
	for _, p := range extras {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		merged = append(merged, p)
		seen[p.ID] = struct{}{}
	}
	return merged
}
