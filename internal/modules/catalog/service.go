package catalog

import (
	"context"
	"log/slog"

	"lunarest.com/app/internal/modules/card"
)

// Service loads catalog rows and hands them to callers as card products.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]card.Product, error) {
	rows, err := s.repo.ListActive(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]card.Product, 0, len(rows))
	for _, p := range rows {
		out = append(out, ToCard(s.logger, p))
	}
	return out, nil
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (card.Product, error) {
	p, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return card.Product{}, err
	}
	return ToCard(s.logger, p), nil
}
