package returns

import (
	"fmt"
	"time"

	ledgerDomain "ams-backend/internal/domain/ledger"
)

// HolderRequiredError means an accessory return arrived without a DOC
// number. Accessories are tracked per holder, so the holder must be named.
type HolderRequiredError struct {
	AssetID string
}

func (e *HolderRequiredError) Error() string {
	return fmt.Sprintf("returning accessory '%s' requires the holder's DOC number", e.AssetID)
}

type NotCurrentlyIssuedError struct {
	AssetID string
	Detail  string
}

func (e *NotCurrentlyIssuedError) Error() string {
	return fmt.Sprintf("asset '%s' is not currently issued: %s", e.AssetID, e.Detail)
}

// NonReturnableError rejects a headphones return before anything is written.
type NonReturnableError struct {
	AssetID string
}

func (e *NonReturnableError) Error() string {
	return "Nobody wants used earwax! Keep these headphones. We insist..."
}

// notIssuedDetail explains why nothing is out, from the asset's last ledger
// row if it has one.
func notIssuedDetail(last *ledgerDomain.Transaction) string {
	if last == nil {
		return "it has never been issued"
	}
	return fmt.Sprintf("the last transaction was %s on %s for entity %d",
		last.TransactionType, last.Timestamp.Format(time.RFC1123), last.EntityID)
}

type ReturnInput struct {
	AssetID         string `json:"asset_id"`
	DOCNumber       string `json:"doc_number,omitempty"`
	ChargerReturned bool   `json:"charger_returned,omitempty"`
	Actor           string `json:"actor"`
}

type ReturnResult struct {
	TransactionID        uint64  `json:"transaction_id"`
	EntityID             uint64  `json:"entity_id"`
	AssetID              string  `json:"asset_id"`
	ChargerTransactionID *uint64 `json:"charger_transaction_id,omitempty"`
	Reminder             string  `json:"reminder,omitempty"`
}
