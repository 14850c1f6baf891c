package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/northwind-labs/northwind-api/internal/categories"
	"github.com/northwind-labs/northwind-api/internal/products"
	"github.com/northwind-labs/northwind-api/internal/reports"
	"github.com/northwind-labs/northwind-api/internal/suppliers"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger          *slog.Logger
	Config          *Config
	ProductHandler  *products.Handler
	CategoryHandler *categories.Handler
	SupplierHandler *suppliers.Handler
	ReportHandler   *reports.Handler
}

// NewRouter constructs the chi.Router with application defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger: params.Logger,
		Config: params.Config,
	}) {
		r.Use(mw)
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/products", func(r chi.Router) {
		// Static segments must register before the {id} wildcard.
		params.CategoryHandler.MountRoutes(r)
		params.SupplierHandler.MountRoutes(r)
		params.ReportHandler.MountRoutes(r)
		params.ProductHandler.MountRoutes(r)
	})

	return r
}
