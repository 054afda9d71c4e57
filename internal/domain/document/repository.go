package document

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("document not found")

type Repository interface {
	Create(ctx context.Context, doc *Document) error

	// Link ties a document to a ledger transaction.
	Link(ctx context.Context, transactionID, documentID uint64) error

	// FindUnprintedAgreement returns the entity's open agreement, found
	// through its transaction links, or (nil, nil) when none is open.
	FindUnprintedAgreement(ctx context.Context, entityID uint64) (*Document, error)

	// Outstanding returns every unprinted document owed to the entity.
	Outstanding(ctx context.Context, entityID uint64) (*Outstanding, error)

	// MarkPrinted stamps the document printed (and optionally signed) and
	// records the rendered file name. Re-stamping never fails; the latest
	// call owns the stamp.
	MarkPrinted(ctx context.Context, documentID uint64, fileName string, printedAt time.Time, signedAt *time.Time) error
}
