// Package catalog curates a beauty product view over a generic upstream
// product API that has no native beauty category.
package catalog

import "errors"

// Sentinel errors returned to callers in place of upstream detail. The
// wrapped cause is kept for logs but the display text stays generic.
var (
	ErrFetchProducts   = errors.New("failed to fetch products")
	ErrSearchFailed    = errors.New("search failed")
	ErrFetchProduct    = errors.New("failed to fetch product details")
	ErrFetchCategories = errors.New("failed to fetch categories")
)
