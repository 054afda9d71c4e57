package entitymock

import (
	"context"

	domain "ams-backend/internal/domain/entity"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Fill in the function fields a test needs; unfilled lookups report not found.
type Repo struct {
	GetByIDFn              func(ctx context.Context, entityID uint64) (*domain.Record, error)
	GetIncarceratedByDOCFn func(ctx context.Context, docNumber string) (*domain.Record, error)
}

func (m *Repo) GetByID(ctx context.Context, entityID uint64) (*domain.Record, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, entityID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetIncarceratedByDOC(ctx context.Context, docNumber string) (*domain.Record, error) {
	if m.GetIncarceratedByDOCFn != nil {
		return m.GetIncarceratedByDOCFn(ctx, docNumber)
	}
	return nil, domain.ErrNotFound
}
