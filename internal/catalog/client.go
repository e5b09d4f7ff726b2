package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/abgdnv/glowmart/internal/model"
	"github.com/abgdnv/glowmart/pkg/config"
)

// Upstream is an interface for the generic product API the catalog is
// curated from. It abstracts the HTTP client so the service layer can be
// tested without a network.
type Upstream interface {
	// Products returns a bounded page of products from the listing endpoint.
	Products(ctx context.Context, limit int) ([]model.Product, error)

	// Search runs a free-text query against the full-text search endpoint.
	Search(ctx context.Context, query string) ([]model.Product, error)

	// Product retrieves a single product record by its ID.
	Product(ctx context.Context, id int64) (*model.Product, error)

	// Categories retrieves the category list.
	Categories(ctx context.Context) ([]string, error)
}

var _ Upstream = (*Client)(nil)

// Client is the HTTP implementation of Upstream against a dummyjson-style
// API. No authentication headers are sent.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client for the configured upstream.
func NewClient(cfg config.UpstreamConfig) *Client {
	return &Client{
		baseURL: cfg.URL,
		http: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// productsPage mirrors the envelope of the listing and search endpoints.
type productsPage struct {
	Products []model.Product `json:"products"`
	Total    int             `json:"total"`
}

// Products returns a bounded page of products from GET /products?limit=N.
func (c *Client) Products(ctx context.Context, limit int) ([]model.Product, error) {
	var page productsPage
	if err := c.getJSON(ctx, "/products?limit="+strconv.Itoa(limit), &page); err != nil {
		return nil, err
	}
	return page.Products, nil
}

// Search runs a free-text query against GET /products/search?q=<text>.
func (c *Client) Search(ctx context.Context, query string) ([]model.Product, error) {
	var page productsPage
	if err := c.getJSON(ctx, "/products/search?q="+url.QueryEscape(query), &page); err != nil {
		return nil, err
	}
	return page.Products, nil
}

// Product retrieves a single product record from GET /products/{id}.
func (c *Client) Product(ctx context.Context, id int64) (*model.Product, error) {
	var product model.Product
	if err := c.getJSON(ctx, "/products/"+strconv.FormatInt(id, 10), &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Categories retrieves the category list from GET /products/categories.
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.getJSON(ctx, "/products/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// getJSON performs a GET against path and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, path)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}
