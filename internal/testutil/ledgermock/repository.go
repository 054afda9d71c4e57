package ledgermock

import (
	"context"

	assetDomain "ams-backend/internal/domain/asset"
	domain "ams-backend/internal/domain/ledger"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Unfilled writes succeed; unfilled lookups report nothing live.
type Repo struct {
	RecordFn                  func(ctx context.Context, tx *domain.Transaction) error
	CurrentHolderFn           func(ctx context.Context, assetID string) (*domain.IssuedAsset, error)
	AccessoryHolderFn         func(ctx context.Context, assetID string, entityID uint64) (*domain.IssuedAccessory, error)
	LatestFn                  func(ctx context.Context, assetID string) (*domain.Transaction, error)
	CreateIssuedLinkFn        func(ctx context.Context, link *domain.IssuedAsset) error
	DeleteIssuedLinkFn        func(ctx context.Context, assetID string) error
	CreateAccessoryLinkFn     func(ctx context.Context, link *domain.IssuedAccessory) error
	DeleteAccessoryLinkFn     func(ctx context.Context, assetID string, entityID uint64) error
	ListIssuedAssetIDsFn      func(ctx context.Context, entityID uint64) ([]string, error)
	ListAccessoryLinksFn      func(ctx context.Context, entityID uint64) ([]domain.IssuedAccessory, error)
	FindLiveAccessoryOfTypeFn func(ctx context.Context, entityID uint64, assetType assetDomain.Type) (*domain.IssuedAccessory, error)
	HistoryByAssetFn          func(ctx context.Context, assetID string) ([]domain.HistoryEntry, error)
	HistoryByEntityFn         func(ctx context.Context, entityID uint64) ([]domain.HistoryEntry, error)
}

func (m *Repo) Record(ctx context.Context, tx *domain.Transaction) error {
	if m.RecordFn != nil {
		return m.RecordFn(ctx, tx)
	}
	return nil
}

func (m *Repo) CurrentHolder(ctx context.Context, assetID string) (*domain.IssuedAsset, error) {
	if m.CurrentHolderFn != nil {
		return m.CurrentHolderFn(ctx, assetID)
	}
	return nil, nil
}

func (m *Repo) AccessoryHolder(ctx context.Context, assetID string, entityID uint64) (*domain.IssuedAccessory, error) {
	if m.AccessoryHolderFn != nil {
		return m.AccessoryHolderFn(ctx, assetID, entityID)
	}
	return nil, nil
}

func (m *Repo) Latest(ctx context.Context, assetID string) (*domain.Transaction, error) {
	if m.LatestFn != nil {
		return m.LatestFn(ctx, assetID)
	}
	return nil, nil
}

func (m *Repo) CreateIssuedLink(ctx context.Context, link *domain.IssuedAsset) error {
	if m.CreateIssuedLinkFn != nil {
		return m.CreateIssuedLinkFn(ctx, link)
	}
	return nil
}

func (m *Repo) DeleteIssuedLink(ctx context.Context, assetID string) error {
	if m.DeleteIssuedLinkFn != nil {
		return m.DeleteIssuedLinkFn(ctx, assetID)
	}
	return nil
}

func (m *Repo) CreateAccessoryLink(ctx context.Context, link *domain.IssuedAccessory) error {
	if m.CreateAccessoryLinkFn != nil {
		return m.CreateAccessoryLinkFn(ctx, link)
	}
	return nil
}

func (m *Repo) DeleteAccessoryLink(ctx context.Context, assetID string, entityID uint64) error {
	if m.DeleteAccessoryLinkFn != nil {
		return m.DeleteAccessoryLinkFn(ctx, assetID, entityID)
	}
	return nil
}

func (m *Repo) ListIssuedAssetIDs(ctx context.Context, entityID uint64) ([]string, error) {
	if m.ListIssuedAssetIDsFn != nil {
		return m.ListIssuedAssetIDsFn(ctx, entityID)
	}
	return nil, nil
}

func (m *Repo) ListAccessoryLinks(ctx context.Context, entityID uint64) ([]domain.IssuedAccessory, error) {
	if m.ListAccessoryLinksFn != nil {
		return m.ListAccessoryLinksFn(ctx, entityID)
	}
	return nil, nil
}

func (m *Repo) FindLiveAccessoryOfType(ctx context.Context, entityID uint64, assetType assetDomain.Type) (*domain.IssuedAccessory, error) {
	if m.FindLiveAccessoryOfTypeFn != nil {
		return m.FindLiveAccessoryOfTypeFn(ctx, entityID, assetType)
	}
	return nil, nil
}

func (m *Repo) HistoryByAsset(ctx context.Context, assetID string) ([]domain.HistoryEntry, error) {
	if m.HistoryByAssetFn != nil {
		return m.HistoryByAssetFn(ctx, assetID)
	}
	return nil, nil
}

func (m *Repo) HistoryByEntity(ctx context.Context, entityID uint64) ([]domain.HistoryEntry, error) {
	if m.HistoryByEntityFn != nil {
		return m.HistoryByEntityFn(ctx, entityID)
	}
	return nil, nil
}
