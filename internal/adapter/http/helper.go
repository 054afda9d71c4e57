package http

import (
	"errors"
	"net/http"

	assetDomain "ams-backend/internal/domain/asset"
	documentDomain "ams-backend/internal/domain/document"
	entityDomain "ams-backend/internal/domain/entity"
	"ams-backend/internal/usecase/documents"
	"ams-backend/internal/usecase/issuance"
	"ams-backend/internal/usecase/returns"
	"ams-backend/pkg/barcode"

	"github.com/labstack/echo/v4"
)

// writeError maps domain and usecase errors onto HTTP statuses. Business
// rule rejections become 409s with the operator-facing message; anything
// unmapped is a 500 with the detail kept out of the response body.
func writeError(c echo.Context, err error) error {
	var assetNotFound *assetDomain.NotFoundError
	switch {
	case errors.Is(err, barcode.ErrInvalidInput), errors.Is(err, barcode.ErrInvalidBarcode):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, entityDomain.ErrNotFound),
		errors.Is(err, documentDomain.ErrNotFound),
		errors.Is(err, documents.ErrNoOutstandingAgreement),
		errors.As(err, &assetNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case issuance.IsValidationError(err), returns.IsValidationError(err):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, documents.ErrRenderingUnavailable):
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
	default:
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
