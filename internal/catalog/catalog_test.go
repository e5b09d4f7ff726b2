package catalog

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/abgdnv/glowmart/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockUpstream is a mock implementation of the Upstream interface
type mockUpstream struct {
	products      []model.Product
	searchResults []model.Product
	product       model.Product
	categories    []string
	err           error
}

func (m *mockUpstream) Products(_ context.Context, _ int) ([]model.Product, error) {
	return m.products, m.err
}

func (m *mockUpstream) Search(_ context.Context, _ string) ([]model.Product, error) {
	return m.searchResults, m.err
}

func (m *mockUpstream) Product(_ context.Context, _ int64) (*model.Product, error) {
	return &m.product, m.err
}

func (m *mockUpstream) Categories(_ context.Context) ([]string, error) {
	return m.categories, m.err
}

func newTestService(upstream Upstream) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(upstream, NewBeautyClassifier(), 100, logger)
}

func genericProducts(n int) []model.Product {
	products := make([]model.Product, 0, n)
	for i := 1; i <= n; i++ {
		products = append(products, model.Product{
			ID:          int64(i),
			Title:       "Office Chair",
			Description: "Ergonomic seating",
			Category:    "furniture",
		})
	}
	return products
}

func Test_Service_BeautyProducts_ClassifiedMatch(t *testing.T) {
	// given
	upstream := &mockUpstream{
		products: []model.Product{
			{ID: 7, Title: "Night Repair", Description: "A restorative serum for all skin types", Category: "misc"},
			{ID: 8, Title: "Mechanical Keyboard", Description: "RGB switches", Category: "electronics"},
		},
	}
	service := newTestService(upstream)
	// when
	page, err := service.BeautyProducts(context.Background())
	// then
	require.NoError(t, err)
	ids := make(map[int64]bool)
	for _, p := range page.Products {
		ids[p.ID] = true
	}
	assert.True(t, ids[7], "product with 'serum' in description must be in the merged result")
	assert.False(t, ids[8], "non-beauty product must be filtered out when matches exist")
	assert.Equal(t, len(page.Products), page.Total)
}

func Test_Service_BeautyProducts_SeedsFirst(t *testing.T) {
	// given
	upstream := &mockUpstream{
		products: []model.Product{
			{ID: 7, Title: "Lipstick", Description: "", Category: ""},
		},
	}
	service := newTestService(upstream)
	// when
	page, err := service.BeautyProducts(context.Background())
	// then
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(page.Products), 3)
	assert.Equal(t, int64(1001), page.Products[0].ID)
	assert.Equal(t, int64(1002), page.Products[1].ID)
	assert.Equal(t, int64(1003), page.Products[2].ID)
}

func Test_Service_BeautyProducts_Fallback(t *testing.T) {
	// given: no upstream product matches any beauty keyword
	upstream := &mockUpstream{products: genericProducts(20)}
	service := newTestService(upstream)
	// when
	page, err := service.BeautyProducts(context.Background())
	// then: 3 seeds plus 10 relabeled fallback entries, no duplicate ids
	require.NoError(t, err)
	require.Len(t, page.Products, 13)
	assert.Equal(t, 13, page.Total)

	seen := make(map[int64]bool)
	for _, p := range page.Products {
		assert.False(t, seen[p.ID], "duplicate id %d", p.ID)
		seen[p.ID] = true
	}

	for _, p := range page.Products[3:] {
		assert.Equal(t, "beauty", p.Category)
		assert.True(t, strings.HasPrefix(p.Title, "Beauty "), "title %q must carry the fallback prefix", p.Title)
		assert.True(t, strings.HasPrefix(p.Description, "Premium beauty product: "))
	}
}

func Test_Service_BeautyProducts_FallbackKeepsEssenceTitle(t *testing.T) {
	// given
	products := genericProducts(5)
	products[2].Title = "Essence Discovery Set"
	// "Essence" also makes the classifier match, so strip its other fields
	products[2].Description = "A set"
	upstream := &mockUpstream{products: products}
	service := NewService(upstream, NewKeywordClassifier([]string{"nomatch"}), 100, slog.New(slog.NewTextHandler(io.Discard, nil)))
	// when
	page, err := service.BeautyProducts(context.Background())
	// then
	require.NoError(t, err)
	var essenceTitle string
	for _, p := range page.Products {
		if p.ID == 3 {
			essenceTitle = p.Title
		}
	}
	assert.Equal(t, "Essence Discovery Set", essenceTitle, "titles containing Essence keep their original title")
}

func Test_Service_BeautyProducts_SeedWinsOnIDCollision(t *testing.T) {
	// given: upstream returns a beauty product colliding with a seed id
	upstream := &mockUpstream{
		products: []model.Product{
			{ID: 1001, Title: "Counterfeit Mascara", Description: "", Category: "beauty"},
		},
	}
	service := newTestService(upstream)
	// when
	page, err := service.BeautyProducts(context.Background())
	// then
	require.NoError(t, err)
	require.Len(t, page.Products, 3)
	assert.Equal(t, "Essence Mascara Lash Princess", page.Products[0].Title)
}

func Test_Service_BeautyProducts_UpstreamError(t *testing.T) {
	// given
	upstream := &mockUpstream{err: errors.New("connection refused")}
	service := newTestService(upstream)
	// when
	page, err := service.BeautyProducts(context.Background())
	// then
	assert.Nil(t, page)
	assert.ErrorIs(t, err, ErrFetchProducts)
	assert.NotContains(t, ErrFetchProducts.Error(), "connection refused")
}

func Test_Service_SearchProducts(t *testing.T) {
	upstreamResults := []model.Product{
		{ID: 1, Title: "Red Lipstick Classic", Description: "", Category: "beauty"},
		{ID: 2, Title: "Trail Running Shoes", Description: "Cushioned sole", Category: "footwear"},
	}
	testCases := []struct {
		name        string
		query       string
		expectedIDs []int64
	}{
		{
			name:        "Query with beauty keyword returns raw results unfiltered",
			query:       "red lipstick",
			expectedIDs: []int64{1, 2},
		},
		{
			name:        "Query without keyword filters per product",
			query:       "running shoes",
			expectedIDs: []int64{1},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := newTestService(&mockUpstream{searchResults: upstreamResults})
			// when
			page, err := service.SearchProducts(context.Background(), tc.query)
			// then
			require.NoError(t, err)
			ids := make([]int64, 0, len(page.Products))
			for _, p := range page.Products {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tc.expectedIDs, ids)
			assert.Equal(t, len(tc.expectedIDs), page.Total)
		})
	}
}

func Test_Service_SearchProducts_UpstreamError(t *testing.T) {
	// given
	service := newTestService(&mockUpstream{err: errors.New("timeout")})
	// when
	page, err := service.SearchProducts(context.Background(), "mascara")
	// then
	assert.Nil(t, page)
	assert.ErrorIs(t, err, ErrSearchFailed)
}

func Test_Service_Product(t *testing.T) {
	testCases := []struct {
		name        string
		upstream    *mockUpstream
		expectError error
	}{
		{
			name:        "Success - passthrough",
			upstream:    &mockUpstream{product: model.Product{ID: 5, Title: "Toner"}},
			expectError: nil,
		},
		{
			name:        "Error - re-signaled as fetch product condition",
			upstream:    &mockUpstream{err: errors.New("boom")},
			expectError: ErrFetchProduct,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := newTestService(tc.upstream)
			// when
			found, err := service.Product(context.Background(), 5)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, found)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(5), found.ID)
		})
	}
}

func Test_Service_Categories(t *testing.T) {
	testCases := []struct {
		name        string
		upstream    *mockUpstream
		expected    []string
		expectError error
	}{
		{
			name:        "Success - passthrough",
			upstream:    &mockUpstream{categories: []string{"beauty", "fragrances"}},
			expected:    []string{"beauty", "fragrances"},
			expectError: nil,
		},
		{
			name:        "Error - re-signaled as fetch categories condition",
			upstream:    &mockUpstream{err: errors.New("boom")},
			expectError: ErrFetchCategories,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := newTestService(tc.upstream)
			// when
			categories, err := service.Categories(context.Background())
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, categories)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, categories)
		})
	}
}
