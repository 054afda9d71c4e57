package ledger

import (
	"context"

	"ams-backend/internal/domain/asset"
)

type Repository interface {
	// Record appends one ledger row and fills in its generated
	// transaction_id and timestamp.
	Record(ctx context.Context, tx *Transaction) error

	// CurrentHolder returns the live issued_assets row for an ordinary
	// asset, or (nil, nil) when the asset is not out.
	CurrentHolder(ctx context.Context, assetID string) (*IssuedAsset, error)

	// AccessoryHolder returns the live issued_accessories row for one
	// (asset, holder) pair, or (nil, nil) when that holder does not have it.
	AccessoryHolder(ctx context.Context, assetID string, entityID uint64) (*IssuedAccessory, error)

	// Latest returns the most recent ledger row for an asset, or (nil, nil)
	// when the asset has never appeared in the ledger.
	Latest(ctx context.Context, assetID string) (*Transaction, error)

	CreateIssuedLink(ctx context.Context, link *IssuedAsset) error
	DeleteIssuedLink(ctx context.Context, assetID string) error

	CreateAccessoryLink(ctx context.Context, link *IssuedAccessory) error
	DeleteAccessoryLink(ctx context.Context, assetID string, entityID uint64) error

	// ListIssuedAssetIDs returns the asset_ids of every ordinary asset
	// currently out to the entity.
	ListIssuedAssetIDs(ctx context.Context, entityID uint64) ([]string, error)

	// ListAccessoryLinks returns every live accessory link held by the entity.
	ListAccessoryLinks(ctx context.Context, entityID uint64) ([]IssuedAccessory, error)

	// FindLiveAccessoryOfType returns the entity's live accessory link whose
	// asset is of the given type, or (nil, nil) when none exists.
	FindLiveAccessoryOfType(ctx context.Context, entityID uint64, assetType asset.Type) (*IssuedAccessory, error)

	// HistoryByAsset returns every ledger row for the asset, ascending by
	// transaction_id, joined with display fields.
	HistoryByAsset(ctx context.Context, assetID string) ([]HistoryEntry, error)

	// HistoryByEntity returns every ledger row for the entity, ascending by
	// transaction_id, joined with display fields.
	HistoryByEntity(ctx context.Context, entityID uint64) ([]HistoryEntry, error)
}
