package http

import (
	"net/http"
	"strconv"

	"ams-backend/internal/usecase/documents"

	"github.com/labstack/echo/v4"
)

type DocumentHandler struct{ uc *documents.Usecase }

func NewDocumentHandler(uc *documents.Usecase) *DocumentHandler {
	return &DocumentHandler{uc: uc}
}

func (h *DocumentHandler) Outstanding(c echo.Context) error {
	entityID, err := strconv.ParseUint(c.Param("entity_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "entity_id must be numeric"})
	}
	out, err := h.uc.Outstanding(c.Request().Context(), entityID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type markPrintedReq struct {
	FileName string `json:"file_name" validate:"omitempty,max=255"`
}

// MarkPrinted stamps a document printed out-of-band.
func (h *DocumentHandler) MarkPrinted(c echo.Context) error {
	documentID, err := strconv.ParseUint(c.Param("document_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "document_id must be numeric"})
	}
	var req markPrintedReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	if err := h.uc.MarkPrinted(c.Request().Context(), documentID, req.FileName); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *DocumentHandler) PrintAgreement(c echo.Context) error {
	entityID, err := strconv.ParseUint(c.Param("entity_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "entity_id must be numeric"})
	}
	doc, err := h.uc.SignAndPrintAgreement(c.Request().Context(), entityID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, doc)
}

func (h *DocumentHandler) PrintLabels(c echo.Context) error {
	entityID, err := strconv.ParseUint(c.Param("entity_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "entity_id must be numeric"})
	}
	printed, err := h.uc.PrintLabels(c.Request().Context(), entityID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, printed)
}
