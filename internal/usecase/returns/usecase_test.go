package returns

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	assetDomain "ams-backend/internal/domain/asset"
	entityDomain "ams-backend/internal/domain/entity"
	ledgerDomain "ams-backend/internal/domain/ledger"
	"ams-backend/internal/testutil/uowmock"
)

type fixture struct {
	u *Usecase

	assets      map[string]assetDomain.Record
	issued      map[string]ledgerDomain.IssuedAsset
	accessories map[string]ledgerDomain.IssuedAccessory
	txs         map[uint64]*ledgerDomain.Transaction
	nextTx      uint64
	holders     map[string]*entityDomain.Record
}

func accKey(assetID string, entityID uint64) string {
	return fmt.Sprintf("%s|%d", assetID, entityID)
}

func newFixture() *fixture {
	f := &fixture{
		assets:      map[string]assetDomain.Record{},
		issued:      map[string]ledgerDomain.IssuedAsset{},
		accessories: map[string]ledgerDomain.IssuedAccessory{},
		txs:         map[uint64]*ledgerDomain.Transaction{},
		holders:     map[string]*entityDomain.Record{},
	}

	repos, entities, assets, ledger, _ := uowmock.Mocks()

	entities.GetIncarceratedByDOCFn = func(ctx context.Context, doc string) (*entityDomain.Record, error) {
		if h, ok := f.holders[doc]; ok {
			return h, nil
		}
		return nil, entityDomain.ErrNotFound
	}
	assets.GetByIDFn = func(ctx context.Context, assetID string) (*assetDomain.Record, error) {
		if rec, ok := f.assets[assetID]; ok {
			cp := rec
			return &cp, nil
		}
		return nil, nil
	}

	ledger.RecordFn = func(ctx context.Context, tx *ledgerDomain.Transaction) error {
		f.nextTx++
		tx.TransactionID = f.nextTx
		cp := *tx
		f.txs[tx.TransactionID] = &cp
		return nil
	}
	ledger.CurrentHolderFn = func(ctx context.Context, assetID string) (*ledgerDomain.IssuedAsset, error) {
		if l, ok := f.issued[assetID]; ok {
			return &l, nil
		}
		return nil, nil
	}
	ledger.AccessoryHolderFn = func(ctx context.Context, assetID string, entityID uint64) (*ledgerDomain.IssuedAccessory, error) {
		if l, ok := f.accessories[accKey(assetID, entityID)]; ok {
			return &l, nil
		}
		return nil, nil
	}
	ledger.LatestFn = func(ctx context.Context, assetID string) (*ledgerDomain.Transaction, error) {
		var latest *ledgerDomain.Transaction
		for _, tx := range f.txs {
			if tx.AssetID == assetID && (latest == nil || tx.TransactionID > latest.TransactionID) {
				latest = tx
			}
		}
		return latest, nil
	}
	ledger.DeleteIssuedLinkFn = func(ctx context.Context, assetID string) error {
		delete(f.issued, assetID)
		return nil
	}
	ledger.DeleteAccessoryLinkFn = func(ctx context.Context, assetID string, entityID uint64) error {
		delete(f.accessories, accKey(assetID, entityID))
		return nil
	}
	ledger.FindLiveAccessoryOfTypeFn = func(ctx context.Context, entityID uint64, assetType assetDomain.Type) (*ledgerDomain.IssuedAccessory, error) {
		for _, link := range f.accessories {
			if link.EntityID != entityID {
				continue
			}
			if rec, ok := f.assets[link.AssetID]; ok && rec.AssetType == assetType {
				cp := link
				return &cp, nil
			}
		}
		return nil, nil
	}

	f.u = NewUsecase(entities, uowmock.Passthrough(repos))
	return f
}

func (f *fixture) addHolder(doc string, entityID uint64) {
	f.holders[doc] = &entityDomain.Record{
		Entity:       entityDomain.Entity{EntityID: entityID, EntityType: entityDomain.TypeIncarcerated, Enabled: true},
		Incarcerated: &entityDomain.Incarcerated{EntityID: entityID, DOCNumber: doc},
	}
}

func (f *fixture) addAsset(assetID string, typ assetDomain.Type) {
	rec := assetDomain.Record{
		Asset: assetDomain.Asset{AssetID: assetID, AssetType: typ, AssetStatus: assetDomain.StatusInService},
	}
	if typ == assetDomain.TypeLaptop {
		rec.Laptop = &assetDomain.Laptop{AssetID: assetID, Model: "Latitude 3190"}
	}
	if typ == assetDomain.TypeBook {
		rec.Book = &assetDomain.Book{AssetID: assetID, ISBN: "978-0131103627"}
	}
	f.assets[assetID] = rec
}

func (f *fixture) issueOrdinary(assetID string, entityID uint64) uint64 {
	f.nextTx++
	f.txs[f.nextTx] = &ledgerDomain.Transaction{
		TransactionID: f.nextTx, EntityID: entityID, AssetID: assetID,
		TransactionType: ledgerDomain.TypeIssued, Actor: "teacher1",
	}
	f.issued[assetID] = ledgerDomain.IssuedAsset{AssetID: assetID, TransactionID: f.nextTx}
	return f.nextTx
}

func (f *fixture) issueAccessory(assetID string, entityID uint64) uint64 {
	f.nextTx++
	f.txs[f.nextTx] = &ledgerDomain.Transaction{
		TransactionID: f.nextTx, EntityID: entityID, AssetID: assetID,
		TransactionType: ledgerDomain.TypeIssued, Actor: "teacher1",
	}
	f.accessories[accKey(assetID, entityID)] = ledgerDomain.IssuedAccessory{
		AssetID: assetID, EntityID: entityID, TransactionID: f.nextTx,
	}
	return f.nextTx
}

func TestReturn_Book(t *testing.T) {
	f := newFixture()
	f.addAsset("B0001", assetDomain.TypeBook)
	f.issueOrdinary("B0001", 7)

	res, err := f.u.Return(context.Background(), ReturnInput{AssetID: "B0001", Actor: "teacher2"})
	if err != nil {
		t.Fatalf("Return: %v", err)
	}
	if res.EntityID != 7 {
		t.Errorf("EntityID = %d, want 7 (resolved from ledger)", res.EntityID)
	}
	if _, ok := f.issued["B0001"]; ok {
		t.Error("issued link not removed")
	}
	tx := f.txs[res.TransactionID]
	if tx == nil || tx.TransactionType != ledgerDomain.TypeReturned {
		t.Fatalf("return row missing: %+v", tx)
	}
	if tx.Notes != "Returned by 'teacher2'." {
		t.Errorf("Notes = %q", tx.Notes)
	}
}

func TestReturn_NotIssued(t *testing.T) {
	f := newFixture()
	f.addAsset("B0001", assetDomain.TypeBook)

	var notIssued *NotCurrentlyIssuedError
	_, err := f.u.Return(context.Background(), ReturnInput{AssetID: "B0001", Actor: "t"})
	if !errors.As(err, &notIssued) {
		t.Fatalf("err = %v", err)
	}
	if !strings.Contains(notIssued.Detail, "never been issued") {
		t.Errorf("Detail = %q", notIssued.Detail)
	}

	// after a full issue/return cycle the detail names the last row
	f.issueOrdinary("B0001", 7)
	if _, err := f.u.Return(context.Background(), ReturnInput{AssetID: "B0001", Actor: "t"}); err != nil {
		t.Fatal(err)
	}
	notIssued = nil
	_, err = f.u.Return(context.Background(), ReturnInput{AssetID: "B0001", Actor: "t"})
	if !errors.As(err, &notIssued) {
		t.Fatalf("err = %v", err)
	}
	if !strings.Contains(notIssued.Detail, "RETURNED") || !strings.Contains(notIssued.Detail, "entity 7") {
		t.Errorf("Detail = %q", notIssued.Detail)
	}
}

func TestReturn_UnknownAsset(t *testing.T) {
	f := newFixture()

	var notFound *assetDomain.NotFoundError
	_, err := f.u.Return(context.Background(), ReturnInput{AssetID: "NOPE", Actor: "t"})
	if !errors.As(err, &notFound) {
		t.Fatalf("err = %v", err)
	}
}

func TestReturn_AccessoryNeedsHolder(t *testing.T) {
	f := newFixture()
	f.addHolder("12345", 7)
	f.addAsset("C0001", assetDomain.TypeCharger)
	f.issueAccessory("C0001", 7)
	ctx := context.Background()

	var holderNeeded *HolderRequiredError
	if _, err := f.u.Return(ctx, ReturnInput{AssetID: "C0001", Actor: "t"}); !errors.As(err, &holderNeeded) {
		t.Fatalf("err = %v", err)
	}

	res, err := f.u.Return(ctx, ReturnInput{AssetID: "C0001", DOCNumber: "12345", Actor: "t"})
	if err != nil {
		t.Fatalf("Return with DOC: %v", err)
	}
	if res.EntityID != 7 {
		t.Errorf("EntityID = %d", res.EntityID)
	}
	if _, ok := f.accessories[accKey("C0001", 7)]; ok {
		t.Error("accessory link not removed")
	}
}

func TestReturn_AccessoryWrongHolder(t *testing.T) {
	f := newFixture()
	f.addHolder("12345", 7)
	f.addHolder("67890", 8)
	f.addAsset("C0001", assetDomain.TypeCharger)
	f.issueAccessory("C0001", 7)

	var notIssued *NotCurrentlyIssuedError
	_, err := f.u.Return(context.Background(), ReturnInput{AssetID: "C0001", DOCNumber: "67890", Actor: "t"})
	if !errors.As(err, &notIssued) {
		t.Fatalf("err = %v", err)
	}
	// holder 7's link is untouched
	if _, ok := f.accessories[accKey("C0001", 7)]; !ok {
		t.Error("wrong holder's return removed the link")
	}
}

func TestReturn_Headphones(t *testing.T) {
	f := newFixture()
	f.addHolder("12345", 7)
	f.addAsset("H0001", assetDomain.TypeHeadphones)
	f.issueAccessory("H0001", 7)

	var nonReturnable *NonReturnableError
	_, err := f.u.Return(context.Background(), ReturnInput{AssetID: "H0001", DOCNumber: "12345", Actor: "t"})
	if !errors.As(err, &nonReturnable) {
		t.Fatalf("err = %v", err)
	}
	// the link stays live and no ledger row is written
	if _, ok := f.accessories[accKey("H0001", 7)]; !ok {
		t.Error("headphones link removed")
	}
	for _, tx := range f.txs {
		if tx.TransactionType == ledgerDomain.TypeReturned {
			t.Errorf("return row written: %+v", tx)
		}
	}
}

func TestReturn_LaptopWithCharger(t *testing.T) {
	f := newFixture()
	f.addAsset("L0001", assetDomain.TypeLaptop)
	f.addAsset("C0001", assetDomain.TypeCharger)
	f.issueOrdinary("L0001", 7)
	f.issueAccessory("C0001", 7)

	res, err := f.u.Return(context.Background(), ReturnInput{AssetID: "L0001", ChargerReturned: true, Actor: "teacher2"})
	if err != nil {
		t.Fatalf("Return: %v", err)
	}
	if res.ChargerTransactionID == nil {
		t.Fatal("charger not returned")
	}
	if _, ok := f.accessories[accKey("C0001", 7)]; ok {
		t.Error("charger link not removed")
	}
	chargerTx := f.txs[*res.ChargerTransactionID]
	if chargerTx == nil || chargerTx.AssetID != "C0001" || chargerTx.TransactionType != ledgerDomain.TypeReturned {
		t.Errorf("charger tx = %+v", chargerTx)
	}
	if res.Reminder != "" {
		t.Errorf("unexpected reminder: %q", res.Reminder)
	}
}

func TestReturn_LaptopChargerDeclined(t *testing.T) {
	f := newFixture()
	f.addAsset("L0001", assetDomain.TypeLaptop)
	f.addAsset("C0001", assetDomain.TypeCharger)
	f.issueOrdinary("L0001", 7)
	f.issueAccessory("C0001", 7)

	res, err := f.u.Return(context.Background(), ReturnInput{AssetID: "L0001", Actor: "teacher2"})
	if err != nil {
		t.Fatalf("Return: %v", err)
	}
	if res.Reminder == "" {
		t.Error("expected a charger reminder")
	}
	// the charger stays out
	if _, ok := f.accessories[accKey("C0001", 7)]; !ok {
		t.Error("charger link removed without consent")
	}
}

func TestReturn_LaptopNoLiveCharger(t *testing.T) {
	f := newFixture()
	f.addAsset("L0001", assetDomain.TypeLaptop)
	f.issueOrdinary("L0001", 7)

	// charger_returned with nothing live is tolerated
	res, err := f.u.Return(context.Background(), ReturnInput{AssetID: "L0001", ChargerReturned: true, Actor: "t"})
	if err != nil {
		t.Fatalf("Return: %v", err)
	}
	if res.ChargerTransactionID != nil {
		t.Errorf("phantom charger tx: %+v", res)
	}
}
