package reports

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

// CustomerOrderCounts shapes the per-customer order aggregate for display.
// Same read policy as the other list operations: failures degrade to empty.
func (s *Service) CustomerOrderCounts(ctx context.Context) []CustomerOrderCount {
	counts, err := s.repo.CustomerOrderCounts(ctx)
	if err != nil {
		s.logger.Error("customer order counts failed", "error", err)
		return []CustomerOrderCount{}
	}
	if counts == nil {
		counts = []CustomerOrderCount{}
	}
	return counts
}
