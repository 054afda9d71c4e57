package documents

import (
	"context"
	"errors"
	"time"

	assetDomain "ams-backend/internal/domain/asset"
	documentDomain "ams-backend/internal/domain/document"
	entityDomain "ams-backend/internal/domain/entity"
)

var (
	// ErrRenderingUnavailable means no renderer or signature pad is wired
	// in; outstanding paperwork can still be listed and stamped manually.
	ErrRenderingUnavailable = errors.New("document rendering is not configured")

	ErrNoOutstandingAgreement = errors.New("no unprinted agreement outstanding")
)

// Renderer turns tracked documents into printable files and sends them to
// the printer.
type Renderer interface {
	GenerateAgreement(ctx context.Context, holder *entityDomain.Record, issued []assetDomain.Record, signature []byte, signedAt time.Time) (string, error)
	GenerateLabels(ctx context.Context, holder *entityDomain.Record, issued []assetDomain.Record) (string, error)
	Print(ctx context.Context, path string) error
}

// SignatureCapture collects the holder's signature for an agreement.
type SignatureCapture interface {
	RequestSignature(ctx context.Context, holder *entityDomain.Record, issued []assetDomain.Record) ([]byte, error)
}

// AssetLister materializes everything currently out to an entity.
type AssetLister interface {
	ListIssuedAssets(ctx context.Context, entityID uint64) ([]assetDomain.Record, error)
}

type Usecase struct {
	entityRepo entityDomain.Repository
	docRepo    documentDomain.Repository
	lister     AssetLister
	renderer   Renderer
	signatures SignatureCapture
	now        func() time.Time
}

// NewUsecase wires the document flows. renderer and signatures may be nil
// when no print hardware is attached; rendering operations then fail with
// ErrRenderingUnavailable while tracking operations keep working.
func NewUsecase(entities entityDomain.Repository, docs documentDomain.Repository, lister AssetLister, renderer Renderer, signatures SignatureCapture) *Usecase {
	return &Usecase{
		entityRepo: entities,
		docRepo:    docs,
		lister:     lister,
		renderer:   renderer,
		signatures: signatures,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (u *Usecase) Outstanding(ctx context.Context, entityID uint64) (*documentDomain.Outstanding, error) {
	if _, err := u.entityRepo.GetByID(ctx, entityID); err != nil {
		return nil, err
	}
	return u.docRepo.Outstanding(ctx, entityID)
}

// MarkPrinted stamps a document printed out-of-band, e.g. paperwork filled
// in by hand. Stamping twice is a no-op.
func (u *Usecase) MarkPrinted(ctx context.Context, documentID uint64, fileName string) error {
	return u.docRepo.MarkPrinted(ctx, documentID, fileName, u.now(), nil)
}

// SignAndPrintAgreement captures the holder's signature over everything
// currently issued, renders the open agreement, stamps it, and prints it.
func (u *Usecase) SignAndPrintAgreement(ctx context.Context, entityID uint64) (*documentDomain.Document, error) {
	if u.renderer == nil || u.signatures == nil {
		return nil, ErrRenderingUnavailable
	}

	holder, err := u.entityRepo.GetByID(ctx, entityID)
	if err != nil {
		return nil, err
	}
	agreement, err := u.docRepo.FindUnprintedAgreement(ctx, entityID)
	if err != nil {
		return nil, err
	}
	if agreement == nil {
		return nil, ErrNoOutstandingAgreement
	}

	issued, err := u.lister.ListIssuedAssets(ctx, entityID)
	if err != nil {
		return nil, err
	}

	signature, err := u.signatures.RequestSignature(ctx, holder, issued)
	if err != nil {
		return nil, err
	}
	signedAt := u.now()

	path, err := u.renderer.GenerateAgreement(ctx, holder, issued, signature, signedAt)
	if err != nil {
		return nil, err
	}
	if err := u.docRepo.MarkPrinted(ctx, agreement.DocumentID, path, signedAt, &signedAt); err != nil {
		return nil, err
	}
	if err := u.renderer.Print(ctx, path); err != nil {
		return nil, err
	}

	agreement.FileName = path
	agreement.PrintedAt = &signedAt
	agreement.SignedAt = &signedAt
	return agreement, nil
}

// PrintLabels renders and prints every outstanding label sheet for the
// entity, stamping each as it goes.
func (u *Usecase) PrintLabels(ctx context.Context, entityID uint64) ([]documentDomain.Document, error) {
	if u.renderer == nil {
		return nil, ErrRenderingUnavailable
	}

	holder, err := u.entityRepo.GetByID(ctx, entityID)
	if err != nil {
		return nil, err
	}
	out, err := u.docRepo.Outstanding(ctx, entityID)
	if err != nil {
		return nil, err
	}
	issued, err := u.lister.ListIssuedAssets(ctx, entityID)
	if err != nil {
		return nil, err
	}

	printed := make([]documentDomain.Document, 0, len(out.Labels))
	for _, labels := range out.Labels {
		path, err := u.renderer.GenerateLabels(ctx, holder, issued)
		if err != nil {
			return printed, err
		}
		printedAt := u.now()
		if err := u.docRepo.MarkPrinted(ctx, labels.DocumentID, path, printedAt, nil); err != nil {
			return printed, err
		}
		if err := u.renderer.Print(ctx, path); err != nil {
			return printed, err
		}
		labels.FileName = path
		labels.PrintedAt = &printedAt
		printed = append(printed, labels)
	}
	return printed, nil
}
