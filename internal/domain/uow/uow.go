package uow

import (
	"context"
	"fmt"

	"ams-backend/internal/domain/asset"
	"ams-backend/internal/domain/document"
	"ams-backend/internal/domain/entity"
	"ams-backend/internal/domain/ledger"
)

type Repos struct {
	Entities  entity.Repository
	Assets    asset.Repository
	Ledger    ledger.Repository
	Documents document.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: resolve the asset first, then pass it in (nil when absent)
	WithinAssetTx(ctx context.Context, assetID string, fn func(r Repos, a *asset.Record) error) error
}

// TransactionFailedError wraps an infrastructure failure that rolled back a
// unit of work. Validation errors pass through untouched; this wrapper marks
// everything else as a storage-side failure.
type TransactionFailedError struct {
	Op  string
	Err error
}

func (e *TransactionFailedError) Error() string {
	return fmt.Sprintf("transaction failed during %s: %v", e.Op, e.Err)
}

func (e *TransactionFailedError) Unwrap() error { return e.Err }
