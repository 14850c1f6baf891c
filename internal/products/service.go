package products

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/northwind-labs/northwind-api/internal/platform/httpx"
)

// Service orchestrates gateway calls per use case. Reads favor availability:
// the caller has no recovery action beyond showing "no data", so failures are
// logged and degraded. Writes favor correctness signaling and propagate.
type Service struct {
	logger    *slog.Logger
	repo      Repository
	validator *validator.Validate
}

func NewService(logger *slog.Logger, repo Repository) *Service {
	return &Service{logger: logger, repo: repo, validator: validator.New()}
}

// List returns all products, or an empty slice when the store fails.
func (s *Service) List(ctx context.Context) []Product {
	products, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("list products failed", "error", err)
		return []Product{}
	}
	if products == nil {
		products = []Product{}
	}
	return products
}

// Get returns the product with the given id. A store failure is reported as
// not found, same as the original read-availability policy.
func (s *Service) Get(ctx context.Context, id int64) (Product, error) {
	product, err := s.repo.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.Error("get product failed", "error", err, "id", id)
		}
		return Product{}, ErrNotFound
	}
	return product, nil
}

// Create validates the payload and inserts it, returning the new identifier.
func (s *Service) Create(ctx context.Context, form ProductForm) (int64, error) {
	if err := s.validate(form); err != nil {
		return 0, err
	}
	return s.repo.Create(ctx, form)
}

// Update validates the payload and replaces the identified product's fields.
// Applying the same payload twice is idempotent.
func (s *Service) Update(ctx context.Context, form ProductForm) error {
	if form.ProductID <= 0 {
		return fmt.Errorf("%w: invalid product ID", httpx.ErrValidation)
	}
	if err := s.validate(form); err != nil {
		return err
	}
	return s.repo.Update(ctx, form)
}

// Delete removes the product and reports whether a row was affected.
func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
