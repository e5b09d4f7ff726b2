package catalog

import (
	"testing"

	"github.com/abgdnv/glowmart/internal/model"
	"github.com/stretchr/testify/assert"
)

func Test_KeywordClassifier_Matches(t *testing.T) {
	classifier := NewBeautyClassifier()
	testCases := []struct {
		name     string
		product  model.Product
		expected bool
	}{
		{
			name:     "Keyword in title",
			product:  model.Product{Title: "Volumizing Mascara", Description: "Black", Category: "misc"},
			expected: true,
		},
		{
			name:     "Keyword in description",
			product:  model.Product{Title: "Night Kit", Description: "Contains a hydrating serum", Category: "misc"},
			expected: true,
		},
		{
			name:     "Keyword in category",
			product:  model.Product{Title: "Gift Box", Description: "Assorted", Category: "beauty"},
			expected: true,
		},
		{
			name:     "Match is case-insensitive",
			product:  model.Product{Title: "LIPSTICK Red", Description: "", Category: ""},
			expected: true,
		},
		{
			name:     "Keyword in compound description",
			product:  model.Product{Title: "Sunscreen", Description: "SPF 50 day cream", Category: "sun"},
			expected: true,
		},
		{
			name:     "No keyword anywhere",
			product:  model.Product{Title: "Mechanical Keyboard", Description: "RGB switches", Category: "electronics"},
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, classifier.Matches(tc.product))
		})
	}
}

func Test_KeywordClassifier_QueryMatches(t *testing.T) {
	classifier := NewBeautyClassifier()
	testCases := []struct {
		name     string
		query    string
		expected bool
	}{
		{
			name:     "Query containing a keyword",
			query:    "red lipstick",
			expected: true,
		},
		{
			name:     "Uppercase query containing a keyword",
			query:    "RED LIPSTICK",
			expected: true,
		},
		{
			name:     "Query without keywords",
			query:    "running shoes",
			expected: false,
		},
		{
			name:     "Empty query",
			query:    "",
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, classifier.QueryMatches(tc.query))
		})
	}
}

func Test_KeywordClassifier_CustomVocabulary(t *testing.T) {
	// given
	classifier := NewKeywordClassifier([]string{"widget"})
	// when / then
	assert.True(t, classifier.Matches(model.Product{Title: "Widget Deluxe"}))
	assert.False(t, classifier.Matches(model.Product{Title: "Volumizing Mascara"}))
}
