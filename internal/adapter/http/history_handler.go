package http

import (
	"net/http"

	ledgerDomain "ams-backend/internal/domain/ledger"
	"ams-backend/internal/usecase/history"

	"github.com/labstack/echo/v4"
)

type HistoryHandler struct{ uc *history.Usecase }

func NewHistoryHandler(uc *history.Usecase) *HistoryHandler {
	return &HistoryHandler{uc: uc}
}

type historyView struct {
	History []ledgerDomain.HistoryEntry `json:"history"`
}

func (h *HistoryHandler) ByAsset(c echo.Context) error {
	entries, err := h.uc.ByAsset(c.Request().Context(), c.Param("asset_id"))
	if err != nil {
		return writeError(c, err)
	}
	if entries == nil {
		entries = []ledgerDomain.HistoryEntry{}
	}
	return c.JSON(http.StatusOK, historyView{History: entries})
}

func (h *HistoryHandler) ByDOC(c echo.Context) error {
	entries, err := h.uc.ByDOC(c.Request().Context(), c.Param("doc"))
	if err != nil {
		return writeError(c, err)
	}
	if entries == nil {
		entries = []ledgerDomain.HistoryEntry{}
	}
	return c.JSON(http.StatusOK, historyView{History: entries})
}
