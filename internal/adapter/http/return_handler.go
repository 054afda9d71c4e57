package http

import (
	"net/http"

	"ams-backend/internal/usecase/returns"

	"github.com/labstack/echo/v4"
)

type ReturnHandler struct{ uc *returns.Usecase }

func NewReturnHandler(uc *returns.Usecase) *ReturnHandler {
	return &ReturnHandler{uc: uc}
}

type returnReq struct {
	AssetID         string `json:"asset_id"          validate:"required,assetid"`
	DOCNumber       string `json:"doc_number"        validate:"omitempty,docnum"`
	ChargerReturned bool   `json:"charger_returned"`
	Actor           string `json:"actor"             validate:"required,max=80"`
}

func (h *ReturnHandler) Return(c echo.Context) error {
	var req returnReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	res, err := h.uc.Return(c.Request().Context(), returns.ReturnInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
