package assetmock

import (
	"context"

	domain "ams-backend/internal/domain/asset"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	GetByIDFn func(ctx context.Context, assetID string) (*domain.Record, error)
}

func (m *Repo) GetByID(ctx context.Context, assetID string) (*domain.Record, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, assetID)
	}
	return nil, nil
}
