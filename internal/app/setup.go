// Package app contains the application setup for the storefront service.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/abgdnv/glowmart/internal/auth"
	"github.com/abgdnv/glowmart/internal/catalog"
	"github.com/abgdnv/glowmart/internal/config"
	"github.com/abgdnv/glowmart/internal/store"
	"github.com/abgdnv/glowmart/internal/store/kv"
	"github.com/abgdnv/glowmart/internal/transport/rest"
	"github.com/abgdnv/glowmart/pkg/server"
	"github.com/go-chi/chi/v5"
)

type Dependencies struct {
	Catalog catalog.Catalog
	Auth    auth.Provider
	Store   *store.Store
	Logger  *slog.Logger
}

// SetupDependencies wires the durable session storage, the state container,
// the catalog service, and the auth provider. The persisted session, if any,
// is restored into the store before the server starts taking requests.
func SetupDependencies(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	sessions, err := kv.NewFileStore(cfg.Session.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to set up session storage: %w", err)
	}

	appStore := store.New(sessions, cfg.Session.Key, logger)
	appStore.Restore(ctx)

	catalogService := catalog.NewService(
		catalog.NewClient(cfg.Upstream),
		catalog.NewBeautyClassifier(),
		cfg.Upstream.PageLimit,
		logger,
	)

	return &Dependencies{
		Catalog: catalogService,
		Auth:    auth.NewMock(cfg.Auth),
		Store:   appStore,
		Logger:  logger,
	}, nil
}

// SetupHttpHandler initializes the HTTP routes for the storefront service.
// Used by tests to set up the handler without binding a port.
func SetupHttpHandler(deps *Dependencies) http.Handler {
	mux := server.NewChiRouter(deps.Logger)
	wireRoutes(mux, deps)
	return mux
}

// wireRoutes sets up the HTTP routes for the storefront service.
func wireRoutes(mux *chi.Mux, deps *Dependencies) {
	handler := rest.NewHandler(deps.Catalog, deps.Auth, deps.Store, deps.Logger)
	handler.RegisterRoutes(mux)
}

// SetupHttpServer creates and configures the HTTP server for the storefront service.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {
	mux := SetupHttpHandler(deps)

	httpCfg := server.HTTPConfig{
		Port:           cfg.HTTPServer.Port,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ReadTimeout:    cfg.HTTPServer.Timeout.Read,
		WriteTimeout:   cfg.HTTPServer.Timeout.Write,
		IdleTimeout:    cfg.HTTPServer.Timeout.Idle,
		ReadHeader:     cfg.HTTPServer.Timeout.ReadHeader,
	}

	return server.NewHTTPServer(httpCfg, mux)
}
