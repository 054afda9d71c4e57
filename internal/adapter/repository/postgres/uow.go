package postgres

import (
	"context"

	assetDomain "ams-backend/internal/domain/asset"
	"ams-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func repos(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Entities:  &EntityRepository{db: tx},
		Assets:    &AssetRepository{db: tx},
		Ledger:    &LedgerRepository{db: tx},
		Documents: &DocumentRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(repos(tx))
	})
}

func (u *GormUoW) WithinAssetTx(ctx context.Context, assetID string, fn func(r uow.Repos, a *assetDomain.Record) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := repos(tx)
		a, err := r.Assets.GetByID(ctx, assetID)
		if err != nil {
			return err
		}
		return fn(r, a)
	})
}
