package asset

import "context"

type Repository interface {
	// GetByID resolves the base row, its charge limit, and the variant
	// payload. Returns (nil, nil) when the asset does not exist or carries
	// an unrecognized type; callers decide whether that is an error.
	GetByID(ctx context.Context, assetID string) (*Record, error)
}
