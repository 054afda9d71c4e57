package asset

import "fmt"

// NotFoundError reports an asset id with no resolvable record.
type NotFoundError struct {
	AssetID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("asset '%s' does not exist", e.AssetID)
}

type Type string

const (
	TypeLaptop     Type = "LAPTOP"
	TypeBook       Type = "BOOK"
	TypeCalculator Type = "CALCULATOR"
	TypeCharger    Type = "CHARGER"
	TypeHeadphones Type = "HEADPHONES"
)

type Status string

const (
	StatusInService      Status = "IN_SERVICE"
	StatusDecommissioned Status = "DECOMMISSIONED"
	StatusBroken         Status = "BROKEN"
	StatusMissing        Status = "MISSING"
	StatusOutForRepair   Status = "OUT_FOR_REPAIR"
)

// Asset is the base row shared by every loanable item. Variant payloads live
// in their own tables keyed by asset_id.
type Asset struct {
	AssetID     string   `gorm:"primaryKey;size:32;column:asset_id" json:"asset_id"`
	AssetType   Type     `gorm:"size:16;column:asset_type;not null;index:idx_assets_type" json:"asset_type"`
	AssetCost   *float64 `gorm:"column:asset_cost" json:"asset_cost,omitempty"`
	AssetStatus Status   `gorm:"size:16;column:asset_status;not null;default:'IN_SERVICE'" json:"asset_status"`
}

func (Asset) TableName() string { return "assets" }

// TypeLimit is the per-type charge limit. A null limit means unlimited.
type TypeLimit struct {
	AssetType   Type `gorm:"primaryKey;size:16;column:asset_type" json:"asset_type"`
	ChargeLimit *int `gorm:"column:charge_limit" json:"charge_limit,omitempty"`
}

func (TypeLimit) TableName() string { return "asset_types" }

type Laptop struct {
	AssetID      string `gorm:"primaryKey;size:32;column:asset_id" json:"asset_id"`
	Model        string `gorm:"size:80;column:laptop_model" json:"model"`
	SerialNumber string `gorm:"size:64;column:laptop_serial_number" json:"serial_number"`
	Manufacturer string `gorm:"size:80;column:laptop_manufacturer" json:"manufacturer"`
	DriveSerial  string `gorm:"size:64;column:laptop_drive_serial_number" json:"drive_serial"`
	RAM          string `gorm:"size:32;column:laptop_ram" json:"ram"`
	CPU          string `gorm:"size:64;column:laptop_cpu" json:"cpu"`
	Storage      string `gorm:"size:32;column:laptop_storage" json:"storage"`
	BIOSVersion  string `gorm:"size:32;column:laptop_bios_version" json:"bios_version"`
}

func (Laptop) TableName() string { return "laptops" }

// Book payload. ISBN is the dedup key for issuance: distinct physical copies
// of the same title share an ISBN but never an asset_id.
type Book struct {
	AssetID   string `gorm:"primaryKey;size:32;column:asset_id" json:"asset_id"`
	ISBN      string `gorm:"size:20;column:book_isbn;index:idx_books_isbn" json:"isbn"`
	Title     string `gorm:"size:200;column:book_title" json:"title"`
	Author    string `gorm:"size:120;column:book_author" json:"author"`
	Publisher string `gorm:"size:120;column:book_publisher" json:"publisher"`
	Edition   string `gorm:"size:32;column:book_edition" json:"edition"`
	Year      int    `gorm:"column:book_year" json:"year"`
}

func (Book) TableName() string { return "books" }

type Calculator struct {
	AssetID      string `gorm:"primaryKey;size:32;column:asset_id" json:"asset_id"`
	Model        string `gorm:"size:80;column:calculator_model" json:"model"`
	SerialNumber string `gorm:"size:64;column:calculator_serial_number" json:"serial_number"`
	Manufacturer string `gorm:"size:80;column:calculator_manufacturer" json:"manufacturer"`
	DateCode     string `gorm:"size:32;column:calculator_manufacturer_date_code" json:"date_code"`
	Color        string `gorm:"size:32;column:calculator_color" json:"color"`
}

func (Calculator) TableName() string { return "calculators" }

// Record is the polymorphic view of one asset: base row, charge limit from
// asset_types, and the variant payload matching AssetType. Accessories
// resolved against a live issued_accessories row additionally carry the
// holder and issuing transaction; those fields are derived from the link
// table, never persisted on the asset row.
type Record struct {
	Asset
	ChargeLimit *int        `json:"charge_limit,omitempty"`
	Laptop      *Laptop     `json:"laptop,omitempty"`
	Book        *Book       `json:"book,omitempty"`
	Calculator  *Calculator `json:"calculator,omitempty"`

	IssuedTo           *uint64 `json:"issued_to,omitempty"`
	IssuingTransaction *uint64 `json:"issuing_transaction,omitempty"`
}

// IsAccessory reports whether this asset is tracked per-holder through the
// issued_accessories table instead of the ordinary issued_assets index.
func (r *Record) IsAccessory() bool {
	return r.AssetType == TypeCharger || r.AssetType == TypeHeadphones
}

// IsReturnable is false only for headphones: nobody wants used ones.
func (r *Record) IsReturnable() bool {
	return r.AssetType != TypeHeadphones
}

// Display renders the asset the way operators see it in tables and messages.
func (r *Record) Display() string {
	switch {
	case r.Laptop != nil:
		return r.Laptop.Model
	case r.Book != nil:
		return r.Book.Title
	case r.Calculator != nil:
		return r.Calculator.Model
	default:
		return fmt.Sprintf("%s / %s", r.AssetID, r.AssetType)
	}
}
