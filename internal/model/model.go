// Package model defines the domain entities shared across the application.
package model

import "github.com/shopspring/decimal"

// User is the identity record of the logged-in shopper. It is synthesized by
// the auth provider and persisted as the single session record.
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	Image     string `json:"image"`
	Token     string `json:"token"`
}

// Product is a catalog entry as returned by the upstream product API.
// Products are immutable once fetched; catalog snapshots are replaced
// wholesale, never patched in place.
type Product struct {
	ID                 int64           `json:"id"`
	Title              string          `json:"title"`
	Description        string          `json:"description"`
	Brand              string          `json:"brand,omitempty"`
	Category           string          `json:"category"`
	Price              decimal.Decimal `json:"price"`
	DiscountPercentage float64         `json:"discountPercentage,omitempty"`
	Rating             float64         `json:"rating,omitempty"`
	Stock              int             `json:"stock"`
	Thumbnail          string          `json:"thumbnail"`
	Images             []string        `json:"images"`
}

// CartLine is one product/quantity pair in the shopping cart.
// A cart holds at most one line per product ID.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal returns the undiscounted line price, price * quantity.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
