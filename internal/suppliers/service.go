package suppliers

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

// List returns all suppliers, degrading to an empty result on store failure.
func (s *Service) List(ctx context.Context) []Supplier {
	suppliers, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("list suppliers failed", "error", err)
		return []Supplier{}
	}
	if suppliers == nil {
		suppliers = []Supplier{}
	}
	return suppliers
}
