package catalog

import (
	"github.com/abgdnv/glowmart/internal/model"
	"github.com/shopspring/decimal"
)

// seedProducts returns the fixed set of hand-authored beauty products that is
// prepended to every catalog result. IDs live outside the upstream range so
// they never collide with fetched records.
func seedProducts() []model.Product {
	return []model.Product{
		{
			ID:                 1001,
			Title:              "Essence Mascara Lash Princess",
			Description:        "The Essence Mascara Lash Princess is a popular mascara known for its volumizing and lengthening effects. Achieve dramatic lashes with this long-lasting formula.",
			Price:              decimal.RequireFromString("9.99"),
			DiscountPercentage: 7.17,
			Rating:             4.94,
			Stock:              5,
			Brand:              "Essence",
			Category:           "beauty",
			Thumbnail:          "https://cdn.dummyjson.com/products/images/beauty/Essence%20Mascara%20Lash%20Princess/thumbnail.png",
			Images: []string{
				"https://cdn.dummyjson.com/products/images/beauty/Essence%20Mascara%20Lash%20Princess/1.png",
				"https://cdn.dummyjson.com/products/images/beauty/Essence%20Mascara%20Lash%20Princess/2.png",
			},
		},
		{
			ID:                 1002,
			Title:              "Eyeshadow Palette with Mirror",
			Description:        "The Eyeshadow Palette with Mirror offers a versatile range of eyeshadow shades for creating stunning eye looks. With a built-in mirror, it's convenient for on-the-go makeup application.",
			Price:              decimal.RequireFromString("19.99"),
			DiscountPercentage: 5.5,
			Rating:             4.6,
			Stock:              44,
			Brand:              "Glamour Beauty",
			Category:           "beauty",
			Thumbnail:          "https://cdn.dummyjson.com/products/images/beauty/Eyeshadow%20Palette%20with%20Mirror/thumbnail.png",
			Images: []string{
				"https://cdn.dummyjson.com/products/images/beauty/Eyeshadow%20Palette%20with%20Mirror/1.png",
				"https://cdn.dummyjson.com/products/images/beauty/Eyeshadow%20Palette%20with%20Mirror/2.png",
			},
		},
		{
			ID:                 1003,
			Title:              "Powder Canister",
			Description:        "The Powder Canister is a finely milled setting powder designed to set makeup and control shine. With a lightweight and translucent formula, it provides a smooth finish.",
			Price:              decimal.RequireFromString("14.99"),
			DiscountPercentage: 18.14,
			Rating:             3.82,
			Stock:              59,
			Brand:              "Velvet Touch",
			Category:           "beauty",
			Thumbnail:          "https://cdn.dummyjson.com/products/images/beauty/Powder%20Canister/thumbnail.png",
			Images: []string{
				"https://cdn.dummyjson.com/products/images/beauty/Powder%20Canister/1.png",
				"https://cdn.dummyjson.com/products/images/beauty/Powder%20Canister/2.png",
			},
		},
	}
}
