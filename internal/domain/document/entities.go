package document

import "time"

type Type string

const (
	TypeAgreement Type = "AGREEMENT"
	TypeLabels    Type = "LABELS"
)

// Document is one piece of paperwork owed to or produced for an entity.
// PrintedAt nil means the document is still outstanding.
type Document struct {
	DocumentID   uint64     `gorm:"primaryKey;autoIncrement;column:document_id" json:"document_id"`
	DocumentType Type       `gorm:"size:16;column:document_type;not null" json:"document_type"`
	PrintedAt    *time.Time `gorm:"column:document_printed_timestamp" json:"printed_at,omitempty"`
	SignedAt     *time.Time `gorm:"column:document_signed_timestamp" json:"signed_at,omitempty"`
	FileName     string     `gorm:"size:255;column:file_name" json:"file_name,omitempty"`
}

func (Document) TableName() string { return "documents" }

// TransactionDocument ties a document to the ledger rows it covers. An
// unprinted agreement accumulates links as further issuances land on the
// same entity, so one signature covers everything outstanding.
type TransactionDocument struct {
	TransactionID uint64 `gorm:"primaryKey;autoIncrement:false;column:transaction_id" json:"transaction_id"`
	DocumentID    uint64 `gorm:"primaryKey;autoIncrement:false;column:document_id" json:"document_id"`
}

func (TransactionDocument) TableName() string { return "transaction_documents" }

// Outstanding is the unprinted paperwork owed to one entity: at most one
// open agreement, plus any label sheets.
type Outstanding struct {
	Agreement *Document  `json:"agreement,omitempty"`
	Labels    []Document `json:"labels"`
}
