package products

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/northwind-labs/northwind-api/internal/categories"
	"github.com/northwind-labs/northwind-api/internal/platform/httpx"
	"github.com/northwind-labs/northwind-api/internal/suppliers"
)

type Handler struct {
	logger          *slog.Logger
	service         *Service
	categoryService *categories.Service
	supplierService *suppliers.Service
}

func NewHandler(
	logger *slog.Logger,
	service *Service,
	categoryService *categories.Service,
	supplierService *suppliers.Service,
) *Handler {
	return &Handler{
		logger:          logger,
		service:         service,
		categoryService: categoryService,
		supplierService: supplierService,
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.List(r.Context()))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "Invalid product ID")
		return
	}

	product, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.respondError(w, "get product", err)
		return
	}
	httpx.JSON(w, http.StatusOK, product)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var form ProductForm
	if err := httpx.DecodeJSON(r, &form); err != nil {
		h.respondError(w, "add product", fmt.Errorf("%w: malformed JSON body", httpx.ErrValidation))
		return
	}

	id, err := h.service.Create(r.Context(), form)
	if err != nil {
		h.respondError(w, "add product", err)
		return
	}
	httpx.JSON(w, http.StatusOK, httpx.Confirmation{Message: "Product added successfully.", ProductID: id})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var form ProductForm
	if err := httpx.DecodeJSON(r, &form); err != nil {
		h.respondError(w, "update product", fmt.Errorf("%w: malformed JSON body", httpx.ErrValidation))
		return
	}

	if err := h.service.Update(r.Context(), form); err != nil {
		h.respondError(w, "update product", err)
		return
	}
	httpx.JSON(w, http.StatusOK, httpx.Confirmation{Message: "Product updated successfully."})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "Invalid product ID")
		return
	}

	affected, err := h.service.Delete(r.Context(), id)
	if err != nil {
		h.respondError(w, "delete product", err)
		return
	}
	if !affected {
		// Kept from the original contract: a missing row still reports success.
		h.logger.Warn("delete product: no rows affected", "id", id)
	}
	httpx.JSON(w, http.StatusOK, httpx.Confirmation{Message: "Product deleted."})
}

// formMeta bundles the reference data the add/update form needs in one call.
type formMeta struct {
	Categories []categories.Category `json:"categories"`
	Suppliers  []suppliers.Supplier  `json:"suppliers"`
}

func (h *Handler) Meta(w http.ResponseWriter, r *http.Request) {
	var meta formMeta
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		meta.Categories = h.categoryService.List(ctx)
		return nil
	})
	g.Go(func() error {
		meta.Suppliers = h.supplierService.List(ctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		h.respondError(w, "product form meta", err)
		return
	}
	httpx.JSON(w, http.StatusOK, meta)
}

func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	products := h.service.List(r.Context())

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="products.csv"`)
	if err := WriteCSV(w, products); err != nil {
		h.logger.Error("export products csv", "error", err)
	}
}

// respondError is the single exit path for failed operations: it logs with
// the originating operation name and maps the error to a response. Internal
// detail never reaches the client.
func (h *Handler) respondError(w http.ResponseWriter, op string, err error) {
	h.logger.Error("request failed", "op", op, "error", err)
	if errors.Is(err, ErrNotFound) {
		httpx.Problem(w, http.StatusNotFound, "Not Found", "Product not found")
		return
	}
	httpx.RespondError(w, err)
}
