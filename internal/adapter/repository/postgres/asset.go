package postgres

import (
	"context"
	"errors"

	assetDomain "ams-backend/internal/domain/asset"

	"gorm.io/gorm"
)

type AssetRepository struct{ db *gorm.DB }

func NewAssetRepository(db *gorm.DB) *AssetRepository { return &AssetRepository{db: db} }

func (r *AssetRepository) GetByID(ctx context.Context, assetID string) (*assetDomain.Record, error) {
	var base assetDomain.Asset
	res := r.db.WithContext(ctx).Where("asset_id = ?", assetID).First(&base)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if res.Error != nil {
		return nil, res.Error
	}

	rec := &assetDomain.Record{Asset: base}

	var limit assetDomain.TypeLimit
	if err := r.db.WithContext(ctx).Where("asset_type = ?", base.AssetType).First(&limit).Error; err == nil {
		rec.ChargeLimit = limit.ChargeLimit
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	switch base.AssetType {
	case assetDomain.TypeLaptop:
		var l assetDomain.Laptop
		if err := r.db.WithContext(ctx).Where("asset_id = ?", assetID).First(&l).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil
			}
			return nil, err
		}
		rec.Laptop = &l
	case assetDomain.TypeBook:
		var b assetDomain.Book
		if err := r.db.WithContext(ctx).Where("asset_id = ?", assetID).First(&b).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil
			}
			return nil, err
		}
		rec.Book = &b
	case assetDomain.TypeCalculator:
		var c assetDomain.Calculator
		if err := r.db.WithContext(ctx).Where("asset_id = ?", assetID).First(&c).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil
			}
			return nil, err
		}
		rec.Calculator = &c
	case assetDomain.TypeCharger, assetDomain.TypeHeadphones:
		// accessories have no variant table
	default:
		return nil, nil
	}

	return rec, nil
}
