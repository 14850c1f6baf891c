package categories

import (
	"context"
	"log/slog"
)

type Service struct {
	logger *slog.Logger
	repo   Repository
}

func NewService(logger *slog.Logger, repo Repository) *Service {
	return &Service{logger: logger, repo: repo}
}

// List returns all categories. Reads favor availability: a store failure
// is logged and degraded to an empty result, never surfaced to the caller.
func (s *Service) List(ctx context.Context) []Category {
	categories, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("list categories failed", "error", err)
		return []Category{}
	}
	if categories == nil {
		categories = []Category{}
	}
	return categories
}
