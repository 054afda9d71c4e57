package history

import (
	"context"

	entityDomain "ams-backend/internal/domain/entity"
	ledgerDomain "ams-backend/internal/domain/ledger"
	"ams-backend/pkg/barcode"
)

type Usecase struct {
	entityRepo entityDomain.Repository
	ledgerRepo ledgerDomain.Repository
}

func NewUsecase(entities entityDomain.Repository, ledger ledgerDomain.Repository) *Usecase {
	return &Usecase{entityRepo: entities, ledgerRepo: ledger}
}

// ByAsset returns the asset's full ledger, oldest first. An asset that never
// appeared in the ledger yields an empty slice, not an error.
func (u *Usecase) ByAsset(ctx context.Context, assetID string) ([]ledgerDomain.HistoryEntry, error) {
	return u.ledgerRepo.HistoryByAsset(ctx, assetID)
}

// ByDOC returns the full ledger of the individual identified by a DOC number
// or badge scan, oldest first.
func (u *Usecase) ByDOC(ctx context.Context, input string) ([]ledgerDomain.HistoryEntry, error) {
	doc, err := barcode.NormalizeDOC(input)
	if err != nil {
		return nil, err
	}
	holder, err := u.entityRepo.GetIncarceratedByDOC(ctx, doc)
	if err != nil {
		return nil, err
	}
	return u.ledgerRepo.HistoryByEntity(ctx, holder.EntityID)
}
