package documentmock

import (
	"context"
	"time"

	domain "ams-backend/internal/domain/document"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Unfilled writes succeed; Create assigns sequential document ids so tests
// can link without wiring every field.
type Repo struct {
	CreateFn                 func(ctx context.Context, doc *domain.Document) error
	LinkFn                   func(ctx context.Context, transactionID, documentID uint64) error
	FindUnprintedAgreementFn func(ctx context.Context, entityID uint64) (*domain.Document, error)
	OutstandingFn            func(ctx context.Context, entityID uint64) (*domain.Outstanding, error)
	MarkPrintedFn            func(ctx context.Context, documentID uint64, fileName string, printedAt time.Time, signedAt *time.Time) error

	nextID uint64
}

func (m *Repo) Create(ctx context.Context, doc *domain.Document) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, doc)
	}
	m.nextID++
	doc.DocumentID = m.nextID
	return nil
}

func (m *Repo) Link(ctx context.Context, transactionID, documentID uint64) error {
	if m.LinkFn != nil {
		return m.LinkFn(ctx, transactionID, documentID)
	}
	return nil
}

func (m *Repo) FindUnprintedAgreement(ctx context.Context, entityID uint64) (*domain.Document, error) {
	if m.FindUnprintedAgreementFn != nil {
		return m.FindUnprintedAgreementFn(ctx, entityID)
	}
	return nil, nil
}

func (m *Repo) Outstanding(ctx context.Context, entityID uint64) (*domain.Outstanding, error) {
	if m.OutstandingFn != nil {
		return m.OutstandingFn(ctx, entityID)
	}
	return &domain.Outstanding{}, nil
}

func (m *Repo) MarkPrinted(ctx context.Context, documentID uint64, fileName string, printedAt time.Time, signedAt *time.Time) error {
	if m.MarkPrintedFn != nil {
		return m.MarkPrintedFn(ctx, documentID, fileName, printedAt, signedAt)
	}
	return nil
}
