// Package store implements the application state container: the logged-in
// session, the current catalog snapshot, and the shopping cart.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/abgdnv/glowmart/internal/model"
	"github.com/abgdnv/glowmart/internal/store/kv"
	"github.com/shopspring/decimal"
)

// State is the single application state record. It is owned exclusively by
// the Store and handed out to readers only as a copy.
type State struct {
	User            *model.User      `json:"user"`
	IsAuthenticated bool             `json:"isAuthenticated"`
	Products        []model.Product  `json:"products"`
	Cart            []model.CartLine `json:"cart"`
	Loading         bool             `json:"loading"`
	Error           string           `json:"error,omitempty"`
}

// Store serializes all state transitions behind a single mutex, so no caller
// can observe a partially applied action. The session slice of the state is
// persisted to durable key-value storage under a fixed key.
type Store struct {
	mu       sync.Mutex
	state    State
	sessions kv.Store
	key      string
	logger   *slog.Logger
}

// New creates a Store persisting the session under key in sessions.
func New(sessions kv.Store, key string, logger *slog.Logger) *Store {
	return &Store{
		sessions: sessions,
		key:      key,
		logger:   logger.With("component", "store"),
	}
}

// Restore loads a previously persisted session record and, if present and
// well-formed, sets it as the current user. The stored blob itself is the
// proof of session; credentials are not re-validated. Corrupt or absent data
// is silently treated as "no session".
func (s *Store) Restore(ctx context.Context) {
	raw, ok, err := s.sessions.Get(ctx, s.key)
	if err != nil || !ok {
		if err != nil {
			s.logger.DebugContext(ctx, "No session restored", "error", err)
		}
		return
	}
	var user model.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.logger.DebugContext(ctx, "Stored session is malformed, ignoring", "error", err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.User = &user
	s.state.IsAuthenticated = true
}

// SetLoading sets the loading flag only.
func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Loading = loading
}

// SetError sets the error message and forces loading to false.
func (s *Store) SetError(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Error = message
	s.state.Loading = false
}

// Login persists user to durable storage and marks the store authenticated.
// If the durable write fails the error propagates and the store is left
// unauthenticated; the caller must not treat the user as logged in.
func (s *Store) Login(ctx context.Context, user model.User) error {
	blob, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.sessions.Set(ctx, s.key, string(blob)); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.User = &user
	s.state.IsAuthenticated = true
	return nil
}

// Logout removes the persisted session and resets the state to defaults,
// preserving the current product list. Storage removal failures are swallowed;
// logout always succeeds from the caller's perspective.
func (s *Store) Logout(ctx context.Context) {
	if err := s.sessions.Remove(ctx, s.key); err != nil {
		s.logger.WarnContext(ctx, "Failed to remove persisted session", "error", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = State{Products: s.state.Products}
}

// SetProducts replaces the product list atomically and clears loading.
func (s *Store) SetProducts(products []model.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Products = products
	s.state.Loading = false
}

// AddToCart adds one unit of product to the cart. If a line for the product
// already exists its quantity is incremented; otherwise a new line with
// quantity 1 is appended. Existing line order is preserved.
func (s *Store) AddToCart(product model.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Cart {
		if s.state.Cart[i].Product.ID == product.ID {
			s.state.Cart[i].Quantity++
			return
		}
	}
	s.state.Cart = append(s.state.Cart, model.CartLine{Product: product, Quantity: 1})
}

// RemoveFromCart removes the line for productID if present; no-op otherwise.
func (s *Store) RemoveFromCart(productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLineLocked(productID)
}

// UpdateCartQuantity sets the quantity of the line for productID exactly.
// A quantity of zero or less removes the line.
func (s *Store) UpdateCartQuantity(productID int64, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if quantity <= 0 {
		s.removeLineLocked(productID)
		return
	}
	for i := range s.state.Cart {
		if s.state.Cart[i].Product.ID == productID {
			s.state.Cart[i].Quantity = quantity
			return
		}
	}
}

// ClearCart empties the cart, leaving everything else untouched.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Cart = nil
}

// CartTotal returns the sum over cart lines of price * quantity, using the
// undiscounted listed price.
func (s *Store) CartTotal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := decimal.Zero
	for _, line := range s.state.Cart {
		total = total.Add(line.Subtotal())
	}
	return total
}

// CartItemsCount returns the sum of quantities across all lines, not the
// number of distinct lines. Used for badge counts.
func (s *Store) CartItemsCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, line := range s.state.Cart {
		count += line.Quantity
	}
	return count
}

// Snapshot returns a copy of the current state. Slices and the user record
// are duplicated so the caller cannot mutate store-owned data.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.state
	if s.state.User != nil {
		user := *s.state.User
		snap.User = &user
	}
	snap.Products = append([]model.Product(nil), s.state.Products...)
	snap.Cart = append([]model.CartLine(nil), s.state.Cart...)
	return snap
}

func (s *Store) removeLineLocked(productID int64) {
	for i := range s.state.Cart {
		if s.state.Cart[i].Product.ID == productID {
			s.state.Cart = append(s.state.Cart[:i], s.state.Cart[i+1:]...)
			return
		}
	}
}
