package timeline

import (
	"context"
)

// Service computes project timelines from a Store. It holds no state of its
// own; every call fetches a fresh snapshot and recomputes from scratch.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Timeline fetches the project's activity and document rows and runs the
// aggregation pipeline. A fetch failure aborts the cycle; no partial list is
// returned.
func (s *Service) Timeline(ctx context.Context, projectID string, opts Options) ([]Item, error) {
	logs, err := s.store.ListActivity(ctx, projectID)
	if err != nil {
		return nil, err
	}
	docs, err := s.store.ListDocuments(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return Compute(logs, docs, opts), nil
}
