package issuance

import (
	"fmt"

	assetDomain "ams-backend/internal/domain/asset"
)

// Validation failures carry enough context to render the operator-facing
// message and roll the surrounding transaction back untouched.

type AssetUnavailableError struct {
	AssetID   string
	AssetType assetDomain.Type
	Status    assetDomain.Status
}

// statusPhrase maps a non-serviceable status to the phrase operators see.
func statusPhrase(s assetDomain.Status) string {
	switch s {
	case assetDomain.StatusDecommissioned:
		return "decommissioned"
	case assetDomain.StatusBroken:
		return "broken"
	case assetDomain.StatusMissing:
		return "missing"
	case assetDomain.StatusOutForRepair:
		return "out for repair"
	default:
		return "not in service"
	}
}

func (e *AssetUnavailableError) Error() string {
	return fmt.Sprintf("asset '%s' is %s and cannot be issued", e.AssetID, statusPhrase(e.Status))
}

type AlreadyIssuedError struct {
	AssetID  string
	HolderID uint64
	Self     bool
}

func (e *AlreadyIssuedError) Error() string {
	if e.Self {
		return fmt.Sprintf("asset '%s' is already issued to this individual", e.AssetID)
	}
	return fmt.Sprintf("asset '%s' is already issued to entity %d", e.AssetID, e.HolderID)
}

type DuplicateBookError struct {
	AssetID string
	ISBN    string
}

func (e *DuplicateBookError) Error() string {
	return fmt.Sprintf("a copy of ISBN %s is already issued to this individual", e.ISBN)
}

type ChargeLimitError struct {
	AssetType assetDomain.Type
	Limit     int
}

func (e *ChargeLimitError) Error() string {
	return fmt.Sprintf("charge limit of %d reached for asset type %s", e.Limit, e.AssetType)
}

// ChargerRequiredError rolls back a laptop issuance when the holder has no
// live charger and none was offered with the request.
type ChargerRequiredError struct {
	LaptopID string
}

func (e *ChargerRequiredError) Error() string {
	return fmt.Sprintf("laptop '%s' cannot be issued without a charger", e.LaptopID)
}

type WrongAccessoryError struct {
	AssetID string
	Want    assetDomain.Type
}

func (e *WrongAccessoryError) Error() string {
	return fmt.Sprintf("asset '%s' is not a %s", e.AssetID, e.Want)
}

type IssueInput struct {
	DOCNumber    string `json:"doc_number"`
	AssetID      string `json:"asset_id"`
	ChargerID    string `json:"charger_id,omitempty"`
	HeadphonesID string `json:"headphones_id,omitempty"`
	Actor        string `json:"actor"`
	Notes        string `json:"notes,omitempty"`
}

type IssueResult struct {
	TransactionID           uint64  `json:"transaction_id"`
	EntityID                uint64  `json:"entity_id"`
	AssetID                 string  `json:"asset_id"`
	AgreementDocumentID     uint64  `json:"agreement_document_id"`
	LabelsDocumentID        *uint64 `json:"labels_document_id,omitempty"`
	ChargerTransactionID    *uint64 `json:"charger_transaction_id,omitempty"`
	HeadphonesTransactionID *uint64 `json:"headphones_transaction_id,omitempty"`
}
