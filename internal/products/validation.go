package products

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/northwind-labs/northwind-api/internal/platform/httpx"
)

func (s *Service) validate(form ProductForm) error {
	if err := s.validator.Struct(form); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: field %s violates %q", httpx.ErrValidation, verrs[0].Field(), verrs[0].Tag())
		}
		return fmt.Errorf("%w: invalid product payload", httpx.ErrValidation)
	}
	if strings.TrimSpace(form.Name) == "" {
		return fmt.Errorf("%w: product name is required", httpx.ErrValidation)
	}
	return nil
}
