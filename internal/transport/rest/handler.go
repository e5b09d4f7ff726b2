// Package rest provides the HTTP surface consumed by storefront clients.
package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/abgdnv/glowmart/internal/auth"
	"github.com/abgdnv/glowmart/internal/catalog"
	"github.com/abgdnv/glowmart/internal/model"
	"github.com/abgdnv/glowmart/internal/store"
	"github.com/abgdnv/glowmart/pkg/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type Handler struct {
	catalog  catalog.Catalog
	auth     auth.Provider
	store    *store.Store
	validate *validator.Validate
	logger   *slog.Logger
}

// NewHandler creates a new Handler with the provided collaborators.
func NewHandler(catalogService catalog.Catalog, authProvider auth.Provider, appStore *store.Store, logger *slog.Logger) *Handler {
	return &Handler{
		catalog:  catalogService,
		auth:     authProvider,
		store:    appStore,
		validate: validator.New(),
		logger:   logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the HTTP routes for the storefront API.
func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/", h.BeautyProducts)
			r.Get("/search", h.SearchProducts)
			r.Get("/categories", h.Categories)
			r.Get("/{id}", h.Product)
		})
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Login)
			r.Post("/register", h.Register)
			r.Post("/logout", h.Logout)
		})
		r.Route("/cart", func(r chi.Router) {
			r.Get("/", h.Cart)
			r.Delete("/", h.ClearCart)
			r.Post("/items", h.AddToCart)
			r.Put("/items/{id}", h.UpdateCartQuantity)
			r.Delete("/items/{id}", h.RemoveFromCart)
		})
		r.Get("/session", h.Session)
	})

	r.Get("/healthz", h.HealthCheck)
}

// BeautyProducts returns the curated beauty catalog and replaces the store's
// product snapshot with it.
func (h *Handler) BeautyProducts(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	h.store.SetLoading(true)
	page, err := h.catalog.BeautyProducts(r.Context())
	if err != nil {
		h.respondCatalogError(w, r, mLogger, err)
		return
	}
	h.store.SetProducts(page.Products)
	mLogger.DebugContext(r.Context(), "Catalog fetched", "count", page.Total)
	web.RespondJSON(w, mLogger, http.StatusOK, page)
}

// SearchProducts runs a beauty-scoped free-text search and replaces the
// store's product snapshot with the result.
func (h *Handler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	query := r.URL.Query().Get("q")
	if query == "" {
		web.RespondError(w, mLogger, http.StatusBadRequest, "q url parameter is required")
		return
	}
	h.store.SetLoading(true)
	page, err := h.catalog.SearchProducts(r.Context(), query)
	if err != nil {
		h.respondCatalogError(w, r, mLogger, err)
		return
	}
	h.store.SetProducts(page.Products)
	mLogger.DebugContext(r.Context(), "Search completed", "query", query, "count", page.Total)
	web.RespondJSON(w, mLogger, http.StatusOK, page)
}

// Product returns a single product by ID.
func (h *Handler) Product(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}
	product, err := h.catalog.Product(r.Context(), id)
	if err != nil {
		h.respondCatalogError(w, r, mLogger, err)
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, product)
}

// Categories returns the upstream category list.
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	categories, err := h.catalog.Categories(r.Context())
	if err != nil {
		h.respondCatalogError(w, r, mLogger, err)
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, categories)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates the credentials and persists the session.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.respondAuthError(w, r, mLogger, err)
		return
	}
	if err := h.store.Login(r.Context(), *user); err != nil {
		mLogger.ErrorContext(r.Context(), "Failed to persist session", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to save session")
		return
	}
	mLogger.InfoContext(r.Context(), "User logged in", "username", user.Username)
	web.RespondJSON(w, mLogger, http.StatusOK, user)
}

type registerRequest struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Register creates a new simulated account and persists the session.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, err := h.auth.Register(r.Context(), auth.RegisterRequest{
		FullName:        req.FullName,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		h.respondAuthError(w, r, mLogger, err)
		return
	}
	if err := h.store.Login(r.Context(), *user); err != nil {
		mLogger.ErrorContext(r.Context(), "Failed to persist session", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to save session")
		return
	}
	mLogger.InfoContext(r.Context(), "User registered", "username", user.Username)
	web.RespondJSON(w, mLogger, http.StatusCreated, user)
}

// Logout clears the session. It always succeeds, even when durable storage
// cleanup fails.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.store.Logout(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// Session returns the current application state snapshot.
func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	web.RespondJSON(w, mLogger, http.StatusOK, h.store.Snapshot())
}

type cartAddRequest struct {
	ProductID int64 `json:"productId" validate:"required,min=1"`
}

type cartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// cartResponse is the cart view returned by all cart endpoints.
type cartResponse struct {
	Items []model.CartLine `json:"items"`
	Total decimal.Decimal  `json:"total"`
	Count int              `json:"count"`
}

// AddToCart adds one unit of a product to the cart. The product is resolved
// from the current catalog snapshot, falling back to an upstream fetch when
// the snapshot does not contain it.
func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var req cartAddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			errorResponse := make(map[string]string)
			for _, fieldErr := range validationErrors {
				errorResponse[fieldErr.Field()] = "failed on rule: " + fieldErr.Tag()
			}
			mLogger.WarnContext(r.Context(), "Validation errors occurred", "errors", errorResponse)
			web.RespondJSON(w, mLogger, http.StatusBadRequest, map[string]any{"validation_errors": errorResponse})
			return
		}
		mLogger.ErrorContext(r.Context(), "Error validating request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, ok := h.productFromSnapshot(req.ProductID)
	if !ok {
		fetched, err := h.catalog.Product(r.Context(), req.ProductID)
		if err != nil {
			h.respondCatalogError(w, r, mLogger, err)
			return
		}
		product = *fetched
	}
	h.store.AddToCart(product)
	mLogger.DebugContext(r.Context(), "Product added to cart", "id", product.ID)
	web.RespondJSON(w, mLogger, http.StatusOK, h.cartView())
}

// UpdateCartQuantity overwrites the quantity of a cart line. A quantity of
// zero or less removes the line.
func (h *Handler) UpdateCartQuantity(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}
	var req cartQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	h.store.UpdateCartQuantity(id, req.Quantity)
	web.RespondJSON(w, mLogger, http.StatusOK, h.cartView())
}

// RemoveFromCart removes a cart line by product ID.
func (h *Handler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}
	h.store.RemoveFromCart(id)
	web.RespondJSON(w, mLogger, http.StatusOK, h.cartView())
}

// Cart returns the current cart lines with total and badge count.
func (h *Handler) Cart(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	web.RespondJSON(w, mLogger, http.StatusOK, h.cartView())
}

// ClearCart empties the cart.
func (h *Handler) ClearCart(w http.ResponseWriter, _ *http.Request) {
	h.store.ClearCart()
	w.WriteHeader(http.StatusNoContent)
}

// HealthCheck is a simple health check endpoint.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// respondCatalogError maps catalog sentinel errors to a 502 carrying the
// generic domain message; upstream detail is kept out of the response.
func (h *Handler) respondCatalogError(w http.ResponseWriter, r *http.Request, mLogger *slog.Logger, err error) {
	for _, sentinel := range []error{
		catalog.ErrFetchProducts,
		catalog.ErrSearchFailed,
		catalog.ErrFetchProduct,
		catalog.ErrFetchCategories,
	} {
		if errors.Is(err, sentinel) {
			h.store.SetError(sentinel.Error())
			web.RespondError(w, mLogger, http.StatusBadGateway, sentinel.Error())
			return
		}
	}
	mLogger.ErrorContext(r.Context(), "Unexpected catalog error", "error", err)
	h.store.SetError("An unexpected error occurred")
	web.RespondError(w, mLogger, http.StatusInternalServerError, "An unexpected error occurred")
}

// respondAuthError surfaces validation messages verbatim and hides anything
// else behind a generic message.
func (h *Handler) respondAuthError(w http.ResponseWriter, r *http.Request, mLogger *slog.Logger, err error) {
	var validationErr *auth.ValidationError
	if errors.As(err, &validationErr) {
		mLogger.WarnContext(r.Context(), "Authentication rejected", "reason", validationErr.Message)
		web.RespondError(w, mLogger, http.StatusBadRequest, validationErr.Message)
		return
	}
	mLogger.ErrorContext(r.Context(), "Authentication failed", "error", err)
	web.RespondError(w, mLogger, http.StatusInternalServerError, "An unexpected error occurred")
}

// productFromSnapshot resolves a product from the store's catalog snapshot.
func (h *Handler) productFromSnapshot(id int64) (model.Product, bool) {
	for _, p := range h.store.Snapshot().Products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

func (h *Handler) cartView() cartResponse {
	snap := h.store.Snapshot()
	items := snap.Cart
	if items == nil {
		items = []model.CartLine{}
	}
	return cartResponse{
		Items: items,
		Total: h.store.CartTotal(),
		Count: h.store.CartItemsCount(),
	}
}

// loggerWithReqID creates a logger with the request ID from the context.
func (h *Handler) loggerWithReqID(r *http.Request) *slog.Logger {
	reqID := middleware.GetReqID(r.Context())
	return h.logger.With("request_id", reqID)
}
