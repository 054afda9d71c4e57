package ledger

import "time"

type TransactionType string

const (
	TypeIssued   TransactionType = "ISSUED"
	TypeReturned TransactionType = "RETURNED"
)

// Transaction is one append-only ledger row. Rows are never updated or
// deleted; the live state of an asset is carried by the link tables below.
type Transaction struct {
	TransactionID   uint64          `gorm:"primaryKey;autoIncrement;column:transaction_id" json:"transaction_id"`
	EntityID        uint64          `gorm:"column:entity_id;not null;index:idx_transactions_entity" json:"entity_id"`
	AssetID         string          `gorm:"size:32;column:asset_id;not null;index:idx_transactions_asset" json:"asset_id"`
	TransactionType TransactionType `gorm:"size:16;column:transaction_type;not null" json:"transaction_type"`
	Timestamp       time.Time       `gorm:"column:transaction_timestamp;autoCreateTime" json:"timestamp"`
	Actor           string          `gorm:"size:80;column:transaction_user" json:"actor"`
	Notes           string          `gorm:"size:255;column:transaction_notes" json:"notes"`
}

func (Transaction) TableName() string { return "transactions" }

// IssuedAsset marks an ordinary asset as out. AssetID being the primary key
// is the concurrency guard: two racing issuances of the same asset cannot
// both insert, the loser fails on the key conflict inside its transaction.
type IssuedAsset struct {
	AssetID       string `gorm:"primaryKey;size:32;column:asset_id" json:"asset_id"`
	TransactionID uint64 `gorm:"column:transaction_id;not null" json:"transaction_id"`
}

func (IssuedAsset) TableName() string { return "issued_assets" }

// IssuedAccessory marks an accessory as out to one holder. The composite key
// lets the same accessory asset_id be live against many holders at once.
type IssuedAccessory struct {
	AssetID       string `gorm:"primaryKey;size:32;column:asset_id" json:"asset_id"`
	EntityID      uint64 `gorm:"primaryKey;autoIncrement:false;column:entity_id" json:"entity_id"`
	TransactionID uint64 `gorm:"column:transaction_id;not null" json:"transaction_id"`
}

func (IssuedAccessory) TableName() string { return "issued_accessories" }

// HistoryEntry is one ledger row joined with the display fields operators
// read: the asset description and the holder's name.
type HistoryEntry struct {
	TransactionID   uint64          `json:"transaction_id"`
	AssetID         string          `json:"asset_id"`
	AssetType       string          `json:"asset_type"`
	AssetName       string          `json:"asset_name"`
	EntityID        uint64          `json:"entity_id"`
	HolderName      string          `json:"holder_name"`
	DOCNumber       string          `json:"doc_number,omitempty"`
	TransactionType TransactionType `json:"transaction_type"`
	Timestamp       time.Time       `json:"timestamp"`
	Actor           string          `json:"actor"`
	Notes           string          `json:"notes"`
}
