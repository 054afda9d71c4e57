package entity

import "context"

type Repository interface {
	// GetByID resolves the base row and its variant payload.
	GetByID(ctx context.Context, entityID uint64) (*Record, error)

	// GetIncarceratedByDOC resolves an incarcerated individual from the
	// DOC number printed on their badge (not the internal entity_id).
	GetIncarceratedByDOC(ctx context.Context, docNumber string) (*Record, error)
}
