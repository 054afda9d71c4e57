package issuance

import (
	"context"
	"errors"
	"fmt"

	assetDomain "ams-backend/internal/domain/asset"
	documentDomain "ams-backend/internal/domain/document"
	entityDomain "ams-backend/internal/domain/entity"
	ledgerDomain "ams-backend/internal/domain/ledger"
	"ams-backend/internal/domain/uow"
	"ams-backend/pkg/barcode"
)

type Usecase struct {
	entityRepo entityDomain.Repository
	uow        uow.UnitOfWork
}

func NewUsecase(entities entityDomain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{entityRepo: entities, uow: tx}
}

// Issue charges one asset to the individual identified by a DOC number or
// badge scan. All writes land in one transaction: any validation failure
// rolls the whole issuance back, laptop accessories and paperwork included.
func (u *Usecase) Issue(ctx context.Context, in IssueInput) (*IssueResult, error) {
	doc, err := barcode.NormalizeDOC(in.DOCNumber)
	if err != nil {
		return nil, err
	}
	holder, err := u.entityRepo.GetIncarceratedByDOC(ctx, doc)
	if err != nil {
		return nil, err
	}

	var res *IssueResult
	err = u.uow.WithinAssetTx(ctx, in.AssetID, func(r uow.Repos, a *assetDomain.Record) error {
		if a == nil {
			return &assetDomain.NotFoundError{AssetID: in.AssetID}
		}
		if a.AssetStatus != assetDomain.StatusInService {
			return &AssetUnavailableError{AssetID: a.AssetID, AssetType: a.AssetType, Status: a.AssetStatus}
		}

		if a.IsAccessory() {
			txID, err := issueAccessory(ctx, r, holder.EntityID, a, in.Actor, in.Notes)
			if err != nil {
				return err
			}
			agreementID, err := ensureAgreement(ctx, r, holder.EntityID, txID)
			if err != nil {
				return err
			}
			res = &IssueResult{
				TransactionID:       txID,
				EntityID:            holder.EntityID,
				AssetID:             a.AssetID,
				AgreementDocumentID: agreementID,
			}
			return nil
		}

		link, err := r.Ledger.CurrentHolder(ctx, a.AssetID)
		if err != nil {
			return err
		}
		if link != nil {
			last, err := r.Ledger.Latest(ctx, a.AssetID)
			if err != nil {
				return err
			}
			var holderID uint64
			if last != nil {
				holderID = last.EntityID
			}
			return &AlreadyIssuedError{AssetID: a.AssetID, HolderID: holderID, Self: holderID == holder.EntityID}
		}

		issued, err := issuedRecords(ctx, r, holder.EntityID)
		if err != nil {
			return err
		}

		if a.Book != nil {
			for _, rec := range issued {
				if rec.Book != nil && rec.Book.ISBN == a.Book.ISBN {
					return &DuplicateBookError{AssetID: rec.AssetID, ISBN: a.Book.ISBN}
				}
			}
		}

		if a.ChargeLimit != nil {
			count := 0
			for _, rec := range issued {
				if rec.AssetType == a.AssetType {
					count++
				}
			}
			if count >= *a.ChargeLimit {
				return &ChargeLimitError{AssetType: a.AssetType, Limit: *a.ChargeLimit}
			}
		}

		tx := &ledgerDomain.Transaction{
			EntityID:        holder.EntityID,
			AssetID:         a.AssetID,
			TransactionType: ledgerDomain.TypeIssued,
			Actor:           in.Actor,
			Notes:           issueNotes(in.Actor, in.Notes),
		}
		if err := r.Ledger.Record(ctx, tx); err != nil {
			return err
		}
		// the primary key on issued_assets is the race guard: a concurrent
		// issuance of the same asset fails here and rolls back
		if err := r.Ledger.CreateIssuedLink(ctx, &ledgerDomain.IssuedAsset{AssetID: a.AssetID, TransactionID: tx.TransactionID}); err != nil {
			return err
		}

		agreementID, err := ensureAgreement(ctx, r, holder.EntityID, tx.TransactionID)
		if err != nil {
			return err
		}

		res = &IssueResult{
			TransactionID:       tx.TransactionID,
			EntityID:            holder.EntityID,
			AssetID:             a.AssetID,
			AgreementDocumentID: agreementID,
		}

		if a.Laptop != nil {
			if err := bundleLaptop(ctx, r, holder.EntityID, a, in, tx.TransactionID, res); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if IsValidationError(err) || errors.Is(err, entityDomain.ErrNotFound) {
			return nil, err
		}
		return nil, &uow.TransactionFailedError{Op: "issuance", Err: err}
	}
	return res, nil
}

// bundleLaptop adds the laptop's paperwork and accessories inside the same
// transaction: a labels sheet, a mandatory charger (reused if the holder
// already has one out), and optional headphones.
func bundleLaptop(ctx context.Context, r uow.Repos, entityID uint64, laptop *assetDomain.Record, in IssueInput, laptopTxID uint64, res *IssueResult) error {
	labels := &documentDomain.Document{DocumentType: documentDomain.TypeLabels}
	if err := r.Documents.Create(ctx, labels); err != nil {
		return err
	}
	if err := r.Documents.Link(ctx, laptopTxID, labels.DocumentID); err != nil {
		return err
	}
	res.LabelsDocumentID = &labels.DocumentID

	live, err := r.Ledger.FindLiveAccessoryOfType(ctx, entityID, assetDomain.TypeCharger)
	if err != nil {
		return err
	}
	if live == nil {
		if in.ChargerID == "" {
			return &ChargerRequiredError{LaptopID: laptop.AssetID}
		}
		txID, err := issueNamedAccessory(ctx, r, entityID, in.ChargerID, assetDomain.TypeCharger, in.Actor)
		if err != nil {
			return err
		}
		res.ChargerTransactionID = &txID
	}

	if in.HeadphonesID != "" {
		live, err := r.Ledger.FindLiveAccessoryOfType(ctx, entityID, assetDomain.TypeHeadphones)
		if err != nil {
			return err
		}
		if live == nil {
			txID, err := issueNamedAccessory(ctx, r, entityID, in.HeadphonesID, assetDomain.TypeHeadphones, in.Actor)
			if err != nil {
				return err
			}
			res.HeadphonesTransactionID = &txID
		}
	}
	return nil
}

// issueNamedAccessory resolves and validates an accessory offered by id
// before charging it out alongside the main asset.
func issueNamedAccessory(ctx context.Context, r uow.Repos, entityID uint64, assetID string, want assetDomain.Type, actor string) (uint64, error) {
	rec, err := r.Assets.GetByID(ctx, assetID)
	if err != nil {
		return 0, err
	}
	if rec == nil {
		return 0, &assetDomain.NotFoundError{AssetID: assetID}
	}
	if rec.AssetType != want {
		return 0, &WrongAccessoryError{AssetID: assetID, Want: want}
	}
	if rec.AssetStatus != assetDomain.StatusInService {
		return 0, &AssetUnavailableError{AssetID: rec.AssetID, AssetType: rec.AssetType, Status: rec.AssetStatus}
	}
	return issueAccessory(ctx, r, entityID, rec, actor, "")
}

func issueAccessory(ctx context.Context, r uow.Repos, entityID uint64, rec *assetDomain.Record, actor, extra string) (uint64, error) {
	held, err := r.Ledger.AccessoryHolder(ctx, rec.AssetID, entityID)
	if err != nil {
		return 0, err
	}
	if held != nil {
		return 0, &AlreadyIssuedError{AssetID: rec.AssetID, HolderID: entityID, Self: true}
	}

	if rec.ChargeLimit != nil {
		links, err := r.Ledger.ListAccessoryLinks(ctx, entityID)
		if err != nil {
			return 0, err
		}
		count := 0
		for _, link := range links {
			other, err := r.Assets.GetByID(ctx, link.AssetID)
			if err != nil {
				return 0, err
			}
			if other != nil && other.AssetType == rec.AssetType {
				count++
			}
		}
		if count >= *rec.ChargeLimit {
			return 0, &ChargeLimitError{AssetType: rec.AssetType, Limit: *rec.ChargeLimit}
		}
	}

	tx := &ledgerDomain.Transaction{
		EntityID:        entityID,
		AssetID:         rec.AssetID,
		TransactionType: ledgerDomain.TypeIssued,
		Actor:           actor,
		Notes:           issueNotes(actor, extra),
	}
	if err := r.Ledger.Record(ctx, tx); err != nil {
		return 0, err
	}
	if err := r.Ledger.CreateAccessoryLink(ctx, &ledgerDomain.IssuedAccessory{
		AssetID:       rec.AssetID,
		EntityID:      entityID,
		TransactionID: tx.TransactionID,
	}); err != nil {
		return 0, err
	}
	return tx.TransactionID, nil
}

// ensureAgreement links the transaction to the entity's open agreement,
// creating one when nothing unprinted is outstanding. One signature then
// covers every issuance since the last printing.
func ensureAgreement(ctx context.Context, r uow.Repos, entityID, transactionID uint64) (uint64, error) {
	agreement, err := r.Documents.FindUnprintedAgreement(ctx, entityID)
	if err != nil {
		return 0, err
	}
	if agreement == nil {
		agreement = &documentDomain.Document{DocumentType: documentDomain.TypeAgreement}
		if err := r.Documents.Create(ctx, agreement); err != nil {
			return 0, err
		}
	}
	if err := r.Documents.Link(ctx, transactionID, agreement.DocumentID); err != nil {
		return 0, err
	}
	return agreement.DocumentID, nil
}

func issuedRecords(ctx context.Context, r uow.Repos, entityID uint64) ([]assetDomain.Record, error) {
	ids, err := r.Ledger.ListIssuedAssetIDs(ctx, entityID)
	if err != nil {
		return nil, err
	}
	out := make([]assetDomain.Record, 0, len(ids))
	for _, id := range ids {
		rec, err := r.Assets.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if rec == nil {
			continue
		}
		out = append(out, *rec)
	}
	return out, nil
}

func issueNotes(actor, extra string) string {
	notes := fmt.Sprintf("Issued by '%s'.", actor)
	if extra != "" {
		notes += " " + extra
	}
	return notes
}

// IsValidationError reports whether err is a business rule rejection rather
// than a storage failure.
func IsValidationError(err error) bool {
	var (
		notFound    *assetDomain.NotFoundError
		unavailable *AssetUnavailableError
		already     *AlreadyIssuedError
		dup         *DuplicateBookError
		limit       *ChargeLimitError
		charger     *ChargerRequiredError
		wrong       *WrongAccessoryError
	)
	return errors.As(err, &notFound) ||
		errors.As(err, &unavailable) ||
		errors.As(err, &already) ||
		errors.As(err, &dup) ||
		errors.As(err, &limit) ||
		errors.As(err, &charger) ||
		errors.As(err, &wrong)
}
