package history

import (
	"context"
	"errors"
	"testing"

	entityDomain "ams-backend/internal/domain/entity"
	ledgerDomain "ams-backend/internal/domain/ledger"
	"ams-backend/internal/testutil/entitymock"
	"ams-backend/internal/testutil/ledgermock"
	"ams-backend/pkg/barcode"
)

func TestByDOC(t *testing.T) {
	entities := &entitymock.Repo{
		GetIncarceratedByDOCFn: func(ctx context.Context, doc string) (*entityDomain.Record, error) {
			if doc != "12345" {
				return nil, entityDomain.ErrNotFound
			}
			return &entityDomain.Record{Entity: entityDomain.Entity{EntityID: 7}}, nil
		},
	}
	var askedEntity uint64
	ledger := &ledgermock.Repo{
		HistoryByEntityFn: func(ctx context.Context, entityID uint64) ([]ledgerDomain.HistoryEntry, error) {
			askedEntity = entityID
			return []ledgerDomain.HistoryEntry{
				{TransactionID: 1, AssetID: "B0001", TransactionType: ledgerDomain.TypeIssued},
				{TransactionID: 2, AssetID: "B0001", TransactionType: ledgerDomain.TypeReturned},
			}, nil
		},
	}
	u := NewUsecase(entities, ledger)
	ctx := context.Background()

	got, err := u.ByDOC(ctx, "12345")
	if err != nil {
		t.Fatalf("ByDOC: %v", err)
	}
	if askedEntity != 7 || len(got) != 2 {
		t.Errorf("askedEntity = %d, len = %d", askedEntity, len(got))
	}

	if _, err := u.ByDOC(ctx, "99999"); !errors.Is(err, entityDomain.ErrNotFound) {
		t.Errorf("unknown DOC: err = %v", err)
	}
	if _, err := u.ByDOC(ctx, "12"); !errors.Is(err, barcode.ErrInvalidInput) {
		t.Errorf("bad input: err = %v", err)
	}
}

func TestByAsset_EmptyLedger(t *testing.T) {
	u := NewUsecase(&entitymock.Repo{}, &ledgermock.Repo{})

	got, err := u.ByAsset(context.Background(), "NOPE")
	if err != nil {
		t.Fatalf("ByAsset: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %+v, want empty", got)
	}
}
