package postgres

import (
	"context"
	"testing"

	assetDomain "ams-backend/internal/domain/asset"
)

func TestAssetGetByID_Laptop(t *testing.T) {
	db := openTestDB(t)
	repo := NewAssetRepository(db)
	ctx := context.Background()

	seedLaptop(t, db, "L0001", "Latitude 3190")
	seedTypeLimit(t, db, assetDomain.TypeLaptop, intPtr(1))

	got, err := repo.GetByID(ctx, "L0001")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil {
		t.Fatal("expected record")
	}
	if got.Laptop == nil || got.Laptop.Model != "Latitude 3190" {
		t.Errorf("laptop payload missing: %+v", got.Laptop)
	}
	if got.ChargeLimit == nil || *got.ChargeLimit != 1 {
		t.Errorf("ChargeLimit = %v, want 1", got.ChargeLimit)
	}
	if got.IsAccessory() {
		t.Error("laptop reported as accessory")
	}
	if got.Display() != "Latitude 3190" {
		t.Errorf("Display = %q", got.Display())
	}
}

func TestAssetGetByID_UnlimitedType(t *testing.T) {
	db := openTestDB(t)
	repo := NewAssetRepository(db)
	ctx := context.Background()

	seedBook(t, db, "B0001", "978-0131103627", "The C Programming Language")
	// no asset_types row: unlimited

	got, err := repo.GetByID(ctx, "B0001")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.ChargeLimit != nil {
		t.Errorf("ChargeLimit = %v, want nil", got.ChargeLimit)
	}
	if got.Book == nil || got.Book.ISBN != "978-0131103627" {
		t.Errorf("book payload missing: %+v", got.Book)
	}
}

func TestAssetGetByID_Accessory(t *testing.T) {
	db := openTestDB(t)
	repo := NewAssetRepository(db)
	ctx := context.Background()

	seedAsset(t, db, "H0001", assetDomain.TypeHeadphones, assetDomain.StatusInService)

	got, err := repo.GetByID(ctx, "H0001")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !got.IsAccessory() {
		t.Error("headphones not reported as accessory")
	}
	if got.IsReturnable() {
		t.Error("headphones reported as returnable")
	}
}

func TestAssetGetByID_MissingIsNilNil(t *testing.T) {
	db := openTestDB(t)
	repo := NewAssetRepository(db)

	got, err := repo.GetByID(context.Background(), "NOPE")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil record, got %+v", got)
	}
}

func TestAssetGetByID_OrphanBaseRowIsNilNil(t *testing.T) {
	db := openTestDB(t)
	repo := NewAssetRepository(db)
	ctx := context.Background()

	// base row without its variant payload
	seedAsset(t, db, "L0002", assetDomain.TypeLaptop, assetDomain.StatusInService)

	got, err := repo.GetByID(ctx, "L0002")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil record for orphan row, got %+v", got)
	}
}
