package http

import (
	"net/http"

	"ams-backend/internal/usecase/issuance"

	"github.com/labstack/echo/v4"
)

type IssuanceHandler struct{ uc *issuance.Usecase }

func NewIssuanceHandler(uc *issuance.Usecase) *IssuanceHandler {
	return &IssuanceHandler{uc: uc}
}

type issueReq struct {
	DOCNumber    string `json:"doc_number"     validate:"required,docnum"`
	AssetID      string `json:"asset_id"       validate:"required,assetid"`
	ChargerID    string `json:"charger_id"     validate:"omitempty,assetid"`
	HeadphonesID string `json:"headphones_id"  validate:"omitempty,assetid"`
	Actor        string `json:"actor"          validate:"required,max=80"`
	Notes        string `json:"notes"          validate:"omitempty,max=160"`
}

func (h *IssuanceHandler) Issue(c echo.Context) error {
	var req issueReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	res, err := h.uc.Issue(c.Request().Context(), issuance.IssueInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, res)
}
