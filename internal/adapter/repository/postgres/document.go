package postgres

import (
	"context"
	"errors"
	"time"

	documentDomain "ams-backend/internal/domain/document"

	"gorm.io/gorm"
)

type DocumentRepository struct{ db *gorm.DB }

func NewDocumentRepository(db *gorm.DB) *DocumentRepository { return &DocumentRepository{db: db} }

func (r *DocumentRepository) Create(ctx context.Context, doc *documentDomain.Document) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

func (r *DocumentRepository) Link(ctx context.Context, transactionID, documentID uint64) error {
	return r.db.WithContext(ctx).Create(&documentDomain.TransactionDocument{
		TransactionID: transactionID,
		DocumentID:    documentID,
	}).Error
}

// outstanding is the shared shape: documents reachable through the entity's
// ledger rows that have not been printed yet.
func (r *DocumentRepository) outstanding(ctx context.Context, entityID uint64, docType documentDomain.Type) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&documentDomain.Document{}).
		Select("DISTINCT documents.*").
		Joins("JOIN transaction_documents td ON td.document_id = documents.document_id").
		Joins("JOIN transactions t ON t.transaction_id = td.transaction_id").
		Where("t.entity_id = ? AND documents.document_type = ? AND documents.document_printed_timestamp IS NULL", entityID, docType).
		Order("documents.document_id ASC")
}

func (r *DocumentRepository) FindUnprintedAgreement(ctx context.Context, entityID uint64) (*documentDomain.Document, error) {
	var out documentDomain.Document
	res := r.outstanding(ctx, entityID, documentDomain.TypeAgreement).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

func (r *DocumentRepository) Outstanding(ctx context.Context, entityID uint64) (*documentDomain.Outstanding, error) {
	agreement, err := r.FindUnprintedAgreement(ctx, entityID)
	if err != nil {
		return nil, err
	}

	var labels []documentDomain.Document
	if err := r.outstanding(ctx, entityID, documentDomain.TypeLabels).Find(&labels).Error; err != nil {
		return nil, err
	}

	return &documentDomain.Outstanding{Agreement: agreement, Labels: labels}, nil
}

func (r *DocumentRepository) MarkPrinted(ctx context.Context, documentID uint64, fileName string, printedAt time.Time, signedAt *time.Time) error {
	var doc documentDomain.Document
	res := r.db.WithContext(ctx).Where("document_id = ?", documentID).First(&doc)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return documentDomain.ErrNotFound
	}
	if res.Error != nil {
		return res.Error
	}

	// re-stamping an already-printed document is allowed: the newest
	// print run owns the file name and timestamps
	updates := map[string]any{
		"document_printed_timestamp": printedAt,
		"file_name":                  fileName,
	}
	if signedAt != nil {
		updates["document_signed_timestamp"] = *signedAt
	}
	return r.db.WithContext(ctx).
		Model(&documentDomain.Document{}).
		Where("document_id = ?", documentID).
		Updates(updates).Error
}
