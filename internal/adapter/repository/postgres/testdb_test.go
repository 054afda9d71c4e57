package postgres

import (
	"testing"

	assetDomain "ams-backend/internal/domain/asset"
	documentDomain "ams-backend/internal/domain/document"
	entityDomain "ams-backend/internal/domain/entity"
	ledgerDomain "ams-backend/internal/domain/ledger"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB creates an in-memory sqlite DB and migrates the full schema.
// The domain models avoid postgres-only column types so they migrate cleanly
// on sqlite.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&entityDomain.Entity{},
		&entityDomain.User{},
		&entityDomain.Incarcerated{},
		&entityDomain.Employee{},
		&entityDomain.Location{},
		&assetDomain.Asset{},
		&assetDomain.TypeLimit{},
		&assetDomain.Laptop{},
		&assetDomain.Book{},
		&assetDomain.Calculator{},
		&ledgerDomain.Transaction{},
		&ledgerDomain.IssuedAsset{},
		&ledgerDomain.IssuedAccessory{},
		&documentDomain.Document{},
		&documentDomain.TransactionDocument{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func seedIncarcerated(t *testing.T, db *gorm.DB, doc, last, first string) uint64 {
	t.Helper()
	e := entityDomain.Entity{EntityType: entityDomain.TypeIncarcerated, Enabled: true}
	if err := db.Create(&e).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Create(&entityDomain.User{EntityID: e.EntityID, LastName: last, FirstName: first}).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Create(&entityDomain.Incarcerated{
		EntityID: e.EntityID, DOCNumber: doc, Facility: "WSP", HousingUnit: "B", HousingCell: "114",
	}).Error; err != nil {
		t.Fatal(err)
	}
	return e.EntityID
}

func seedLocation(t *testing.T, db *gorm.DB, building, room string) uint64 {
	t.Helper()
	e := entityDomain.Entity{EntityType: entityDomain.TypeLocation, Enabled: true}
	if err := db.Create(&e).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Create(&entityDomain.Location{EntityID: e.EntityID, Building: building, Room: room}).Error; err != nil {
		t.Fatal(err)
	}
	return e.EntityID
}

func seedAsset(t *testing.T, db *gorm.DB, id string, typ assetDomain.Type, status assetDomain.Status) {
	t.Helper()
	if err := db.Create(&assetDomain.Asset{AssetID: id, AssetType: typ, AssetStatus: status}).Error; err != nil {
		t.Fatal(err)
	}
}

func seedLaptop(t *testing.T, db *gorm.DB, id, model string) {
	t.Helper()
	seedAsset(t, db, id, assetDomain.TypeLaptop, assetDomain.StatusInService)
	if err := db.Create(&assetDomain.Laptop{AssetID: id, Model: model, SerialNumber: "SN-" + id}).Error; err != nil {
		t.Fatal(err)
	}
}

func seedBook(t *testing.T, db *gorm.DB, id, isbn, title string) {
	t.Helper()
	seedAsset(t, db, id, assetDomain.TypeBook, assetDomain.StatusInService)
	if err := db.Create(&assetDomain.Book{AssetID: id, ISBN: isbn, Title: title}).Error; err != nil {
		t.Fatal(err)
	}
}

func seedTypeLimit(t *testing.T, db *gorm.DB, typ assetDomain.Type, limit *int) {
	t.Helper()
	if err := db.Create(&assetDomain.TypeLimit{AssetType: typ, ChargeLimit: limit}).Error; err != nil {
		t.Fatal(err)
	}
}

func intPtr(v int) *int { return &v }
