package uowmock

import (
	"context"
	"errors"

	asset "ams-backend/internal/domain/asset"
	"ams-backend/internal/domain/uow"
	"ams-backend/internal/testutil/assetmock"
	"ams-backend/internal/testutil/documentmock"
	"ams-backend/internal/testutil/entitymock"
	"ams-backend/internal/testutil/ledgermock"
)

var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn      func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinAssetTxFn func(ctx context.Context, assetID string, fn func(r uow.Repos, a *asset.Record) error) error
}

func New() *UoW { return &UoW{} }

// Passthrough builds a UoW that runs callbacks directly against the given
// repos, with no transaction semantics. Most usecase tests want exactly this.
func Passthrough(r uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(uow.Repos) error) error {
			return fn(r)
		},
		WithinAssetTxFn: func(ctx context.Context, assetID string, fn func(uow.Repos, *asset.Record) error) error {
			a, err := r.Assets.GetByID(ctx, assetID)
			if err != nil {
				return err
			}
			return fn(r, a)
		},
	}
}

// Mocks builds a Repos of fresh function-backed mocks.
func Mocks() (uow.Repos, *entitymock.Repo, *assetmock.Repo, *ledgermock.Repo, *documentmock.Repo) {
	entities := &entitymock.Repo{}
	assets := &assetmock.Repo{}
	ledger := &ledgermock.Repo{}
	documents := &documentmock.Repo{}
	return uow.Repos{
		Entities:  entities,
		Assets:    assets,
		Ledger:    ledger,
		Documents: documents,
	}, entities, assets, ledger, documents
}

func (m *UoW) Reset() { *m = UoW{} }

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinAssetTx(ctx context.Context, assetID string, fn func(r uow.Repos, a *asset.Record) error) error {
	if m.WithinAssetTxFn != nil {
		return m.WithinAssetTxFn(ctx, assetID, fn)
	}
	return errUnimplemented
}
