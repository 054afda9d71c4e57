package directory

import (
	"context"

	assetDomain "ams-backend/internal/domain/asset"
	entityDomain "ams-backend/internal/domain/entity"
	ledgerDomain "ams-backend/internal/domain/ledger"
	"ams-backend/pkg/barcode"
)

type Usecase struct {
	entityRepo entityDomain.Repository
	assetRepo  assetDomain.Repository
	ledgerRepo ledgerDomain.Repository
}

func NewUsecase(entities entityDomain.Repository, assets assetDomain.Repository, ledger ledgerDomain.Repository) *Usecase {
	return &Usecase{entityRepo: entities, assetRepo: assets, ledgerRepo: ledger}
}

// LookupByDOC resolves an incarcerated individual from a keyed-in DOC number
// or a scanned badge barcode.
func (u *Usecase) LookupByDOC(ctx context.Context, input string) (*entityDomain.Record, error) {
	doc, err := barcode.NormalizeDOC(input)
	if err != nil {
		return nil, err
	}
	return u.entityRepo.GetIncarceratedByDOC(ctx, doc)
}

func (u *Usecase) LookupByID(ctx context.Context, entityID uint64) (*entityDomain.Record, error) {
	return u.entityRepo.GetByID(ctx, entityID)
}

// ListIssuedAssets returns every asset currently out to the entity, ordinary
// and accessory alike, fully materialized. Accessory records carry the holder
// and the issuing transaction from their link row. Link rows whose asset no
// longer resolves are skipped rather than failing the whole listing.
func (u *Usecase) ListIssuedAssets(ctx context.Context, entityID uint64) ([]assetDomain.Record, error) {
	ids, err := u.ledgerRepo.ListIssuedAssetIDs(ctx, entityID)
	if err != nil {
		return nil, err
	}
	links, err := u.ledgerRepo.ListAccessoryLinks(ctx, entityID)
	if err != nil {
		return nil, err
	}

	out := make([]assetDomain.Record, 0, len(ids)+len(links))
	for _, id := range ids {
		rec, err := u.assetRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if rec == nil {
			continue
		}
		out = append(out, *rec)
	}
	for _, link := range links {
		rec, err := u.assetRepo.GetByID(ctx, link.AssetID)
		if err != nil {
			return nil, err
		}
		if rec == nil {
			continue
		}
		holder := link.EntityID
		txID := link.TransactionID
		rec.IssuedTo = &holder
		rec.IssuingTransaction = &txID
		out = append(out, *rec)
	}
	return out, nil
}
