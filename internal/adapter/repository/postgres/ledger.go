package postgres

import (
	"context"
	"errors"

	assetDomain "ams-backend/internal/domain/asset"
	ledgerDomain "ams-backend/internal/domain/ledger"

	"gorm.io/gorm"
)

type LedgerRepository struct{ db *gorm.DB }

func NewLedgerRepository(db *gorm.DB) *LedgerRepository { return &LedgerRepository{db: db} }

func (r *LedgerRepository) Record(ctx context.Context, tx *ledgerDomain.Transaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

func (r *LedgerRepository) CurrentHolder(ctx context.Context, assetID string) (*ledgerDomain.IssuedAsset, error) {
	var out ledgerDomain.IssuedAsset
	res := r.db.WithContext(ctx).Where("asset_id = ?", assetID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

func (r *LedgerRepository) AccessoryHolder(ctx context.Context, assetID string, entityID uint64) (*ledgerDomain.IssuedAccessory, error) {
	var out ledgerDomain.IssuedAccessory
	res := r.db.WithContext(ctx).
		Where("asset_id = ? AND entity_id = ?", assetID, entityID).
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

func (r *LedgerRepository) Latest(ctx context.Context, assetID string) (*ledgerDomain.Transaction, error) {
	var out ledgerDomain.Transaction
	res := r.db.WithContext(ctx).
		Where("asset_id = ?", assetID).
		Order("transaction_id DESC").
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

func (r *LedgerRepository) CreateIssuedLink(ctx context.Context, link *ledgerDomain.IssuedAsset) error {
	return r.db.WithContext(ctx).Create(link).Error
}

func (r *LedgerRepository) DeleteIssuedLink(ctx context.Context, assetID string) error {
	return r.db.WithContext(ctx).
		Where("asset_id = ?", assetID).
		Delete(&ledgerDomain.IssuedAsset{}).Error
}

func (r *LedgerRepository) CreateAccessoryLink(ctx context.Context, link *ledgerDomain.IssuedAccessory) error {
	return r.db.WithContext(ctx).Create(link).Error
}

func (r *LedgerRepository) DeleteAccessoryLink(ctx context.Context, assetID string, entityID uint64) error {
	return r.db.WithContext(ctx).
		Where("asset_id = ? AND entity_id = ?", assetID, entityID).
		Delete(&ledgerDomain.IssuedAccessory{}).Error
}

func (r *LedgerRepository) ListIssuedAssetIDs(ctx context.Context, entityID uint64) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&ledgerDomain.IssuedAsset{}).
		Joins("JOIN transactions t ON t.transaction_id = issued_assets.transaction_id").
		Where("t.entity_id = ?", entityID).
		Order("issued_assets.asset_id").
		Pluck("issued_assets.asset_id", &ids).Error
	return ids, err
}

func (r *LedgerRepository) ListAccessoryLinks(ctx context.Context, entityID uint64) ([]ledgerDomain.IssuedAccessory, error) {
	var out []ledgerDomain.IssuedAccessory
	err := r.db.WithContext(ctx).
		Where("entity_id = ?", entityID).
		Order("asset_id").
		Find(&out).Error
	return out, err
}

func (r *LedgerRepository) FindLiveAccessoryOfType(ctx context.Context, entityID uint64, assetType assetDomain.Type) (*ledgerDomain.IssuedAccessory, error) {
	var out ledgerDomain.IssuedAccessory
	res := r.db.WithContext(ctx).
		Model(&ledgerDomain.IssuedAccessory{}).
		Select("issued_accessories.*").
		Joins("JOIN assets a ON a.asset_id = issued_accessories.asset_id").
		Where("issued_accessories.entity_id = ? AND a.asset_type = ?", entityID, assetType).
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

// historySelect joins each ledger row with the display fields operators read.
// String concatenation via || keeps it portable between postgres and sqlite.
const historySelect = `t.transaction_id, t.asset_id, a.asset_type,
COALESCE(lp.laptop_model, bk.book_title, cl.calculator_model, t.asset_id) AS asset_name,
t.entity_id,
COALESCE(u.last_name || ', ' || u.first_name, lo.building || ' ' || lo.room, '') AS holder_name,
COALESCE(i.doc_number, '') AS doc_number,
t.transaction_type, t.transaction_timestamp AS timestamp, t.transaction_user AS actor, t.transaction_notes AS notes`

func (r *LedgerRepository) history(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("transactions t").
		Select(historySelect).
		Joins("LEFT JOIN assets a ON a.asset_id = t.asset_id").
		Joins("LEFT JOIN laptops lp ON lp.asset_id = t.asset_id").
		Joins("LEFT JOIN books bk ON bk.asset_id = t.asset_id").
		Joins("LEFT JOIN calculators cl ON cl.asset_id = t.asset_id").
		Joins("LEFT JOIN users u ON u.entity_id = t.entity_id").
		Joins("LEFT JOIN incarcerated i ON i.entity_id = t.entity_id").
		Joins("LEFT JOIN locations lo ON lo.entity_id = t.entity_id").
		Order("t.transaction_id ASC")
}

func (r *LedgerRepository) HistoryByAsset(ctx context.Context, assetID string) ([]ledgerDomain.HistoryEntry, error) {
	var out []ledgerDomain.HistoryEntry
	err := r.history(ctx).Where("t.asset_id = ?", assetID).Scan(&out).Error
	return out, err
}

func (r *LedgerRepository) HistoryByEntity(ctx context.Context, entityID uint64) ([]ledgerDomain.HistoryEntry, error) {
	var out []ledgerDomain.HistoryEntry
	err := r.history(ctx).Where("t.entity_id = ?", entityID).Scan(&out).Error
	return out, err
}
