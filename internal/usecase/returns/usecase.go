package returns

import (
	"context"
	"errors"
	"fmt"
	"log"

	assetDomain "ams-backend/internal/domain/asset"
	entityDomain "ams-backend/internal/domain/entity"
	ledgerDomain "ams-backend/internal/domain/ledger"
	"ams-backend/internal/domain/uow"
	"ams-backend/pkg/barcode"
)

const chargerReminder = "Remind the individual that the charger is still charged out."

type Usecase struct {
	entityRepo entityDomain.Repository
	uow        uow.UnitOfWork
}

func NewUsecase(entities entityDomain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{entityRepo: entities, uow: tx}
}

// Return takes one asset back: the live link is removed and a RETURNED row
// is appended, atomically. Ordinary assets resolve their holder from the
// ledger; accessories need the holder's DOC number since the same accessory
// id can be out to many people. A laptop return may also take the holder's
// charger back in a follow-up transaction.
func (u *Usecase) Return(ctx context.Context, in ReturnInput) (*ReturnResult, error) {
	var holder *entityDomain.Record
	if in.DOCNumber != "" {
		doc, err := barcode.NormalizeDOC(in.DOCNumber)
		if err != nil {
			return nil, err
		}
		holder, err = u.entityRepo.GetIncarceratedByDOC(ctx, doc)
		if err != nil {
			return nil, err
		}
	}

	var res *ReturnResult
	var laptopHolder uint64
	isLaptop := false

	err := u.uow.WithinAssetTx(ctx, in.AssetID, func(r uow.Repos, a *assetDomain.Record) error {
		if a == nil {
			return &assetDomain.NotFoundError{AssetID: in.AssetID}
		}

		if a.IsAccessory() {
			if holder == nil {
				return &HolderRequiredError{AssetID: a.AssetID}
			}
			if !a.IsReturnable() {
				return &NonReturnableError{AssetID: a.AssetID}
			}
			link, err := r.Ledger.AccessoryHolder(ctx, a.AssetID, holder.EntityID)
			if err != nil {
				return err
			}
			if link == nil {
				last, err := r.Ledger.Latest(ctx, a.AssetID)
				if err != nil {
					return err
				}
				return &NotCurrentlyIssuedError{AssetID: a.AssetID, Detail: notIssuedDetail(last)}
			}
			txID, err := returnAccessory(ctx, r, a.AssetID, holder.EntityID, in.Actor)
			if err != nil {
				return err
			}
			res = &ReturnResult{TransactionID: txID, EntityID: holder.EntityID, AssetID: a.AssetID}
			return nil
		}

		link, err := r.Ledger.CurrentHolder(ctx, a.AssetID)
		if err != nil {
			return err
		}
		if link == nil {
			last, err := r.Ledger.Latest(ctx, a.AssetID)
			if err != nil {
				return err
			}
			return &NotCurrentlyIssuedError{AssetID: a.AssetID, Detail: notIssuedDetail(last)}
		}

		last, err := r.Ledger.Latest(ctx, a.AssetID)
		if err != nil {
			return err
		}
		if last == nil {
			return fmt.Errorf("issued link for '%s' has no ledger row", a.AssetID)
		}
		entityID := last.EntityID

		if err := r.Ledger.DeleteIssuedLink(ctx, a.AssetID); err != nil {
			return err
		}
		tx := &ledgerDomain.Transaction{
			EntityID:        entityID,
			AssetID:         a.AssetID,
			TransactionType: ledgerDomain.TypeReturned,
			Actor:           in.Actor,
			Notes:           fmt.Sprintf("Returned by '%s'.", in.Actor),
		}
		if err := r.Ledger.Record(ctx, tx); err != nil {
			return err
		}

		res = &ReturnResult{TransactionID: tx.TransactionID, EntityID: entityID, AssetID: a.AssetID}
		if a.Laptop != nil {
			isLaptop = true
			laptopHolder = entityID
		}
		return nil
	})
	if err != nil {
		if IsValidationError(err) || errors.Is(err, entityDomain.ErrNotFound) {
			return nil, err
		}
		return nil, &uow.TransactionFailedError{Op: "return", Err: err}
	}

	if isLaptop {
		if !in.ChargerReturned {
			res.Reminder = chargerReminder
			return res, nil
		}
		if err := u.returnLaptopCharger(ctx, laptopHolder, in.Actor, res); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// returnLaptopCharger takes back the holder's live charger after a laptop
// return. The laptop's own return has already committed; a holder without a
// live charger is logged, not failed.
func (u *Usecase) returnLaptopCharger(ctx context.Context, entityID uint64, actor string, res *ReturnResult) error {
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		link, err := r.Ledger.FindLiveAccessoryOfType(ctx, entityID, assetDomain.TypeCharger)
		if err != nil {
			return err
		}
		if link == nil {
			log.Printf("no live charger for entity %d, skipping charger return", entityID)
			return nil
		}
		txID, err := returnAccessory(ctx, r, link.AssetID, entityID, actor)
		if err != nil {
			return err
		}
		res.ChargerTransactionID = &txID
		return nil
	})
	if err != nil {
		return &uow.TransactionFailedError{Op: "charger return", Err: err}
	}
	return nil
}

func returnAccessory(ctx context.Context, r uow.Repos, assetID string, entityID uint64, actor string) (uint64, error) {
	if err := r.Ledger.DeleteAccessoryLink(ctx, assetID, entityID); err != nil {
		return 0, err
	}
	tx := &ledgerDomain.Transaction{
		EntityID:        entityID,
		AssetID:         assetID,
		TransactionType: ledgerDomain.TypeReturned,
		Actor:           actor,
		Notes:           fmt.Sprintf("Returned by '%s'.", actor),
	}
	if err := r.Ledger.Record(ctx, tx); err != nil {
		return 0, err
	}
	return tx.TransactionID, nil
}

// IsValidationError reports whether err is a business rule rejection rather
// than a storage failure.
func IsValidationError(err error) bool {
	var (
		notFound      *assetDomain.NotFoundError
		holderNeeded  *HolderRequiredError
		notIssued     *NotCurrentlyIssuedError
		nonReturnable *NonReturnableError
	)
	return errors.As(err, &notFound) ||
		errors.As(err, &holderNeeded) ||
		errors.As(err, &notIssued) ||
		errors.As(err, &nonReturnable)
}
