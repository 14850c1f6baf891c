package products

import (
	"github.com/go-chi/chi/v5"
)

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Get("/meta", h.Meta)
	r.Get("/export/csv", h.ExportCSV)
	r.Get("/{id}", h.Get)
	r.Post("/add", h.Create)
	r.Put("/update", h.Update)
	r.Delete("/{id}", h.Delete)
}
