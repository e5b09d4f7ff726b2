package catalog

import (
	"strings"

	"github.com/abgdnv/glowmart/internal/model"
)

// Classifier decides whether a product or a search query belongs to the
// beauty domain. It is injectable so the vocabulary can be swapped and
// unit-tested independently of the network layer.
type Classifier interface {
	// Matches reports whether the product is beauty-related.
	Matches(p model.Product) bool

	// QueryMatches reports whether the free-text query is itself
	// beauty-scoped.
	QueryMatches(query string) bool
}

// BeautyKeywords is the fixed cosmetics/skincare vocabulary used to
// approximate a beauty category over the generic product feed.
var BeautyKeywords = []string{
	"mascara", "lipstick", "foundation", "concealer", "powder", "blush",
	"eyeshadow", "eyeliner", "perfume", "nail", "skincare", "cream",
	"serum", "moisturizer", "cleanser", "toner", "beauty", "makeup",
	"cosmetic", "essence", "primer", "highlighter", "contour", "bronzer",
}

type keywordClassifier struct {
	keywords []string
}

// NewKeywordClassifier creates a Classifier matching by case-insensitive
// substring over the product's title, description and category.
func NewKeywordClassifier(keywords []string) Classifier {
	return &keywordClassifier{keywords: keywords}
}

// NewBeautyClassifier creates the default Classifier over BeautyKeywords.
func NewBeautyClassifier() Classifier {
	return NewKeywordClassifier(BeautyKeywords)
}

func (c *keywordClassifier) Matches(p model.Product) bool {
	haystack := strings.ToLower(p.Title + " " + p.Description + " " + p.Category)
	return c.containsAny(haystack)
}

func (c *keywordClassifier) QueryMatches(query string) bool {
	return c.containsAny(strings.ToLower(query))
}

func (c *keywordClassifier) containsAny(haystack string) bool {
	for _, keyword := range c.keywords {
		if strings.Contains(haystack, keyword) {
			return true
		}
	}
	return false
}
