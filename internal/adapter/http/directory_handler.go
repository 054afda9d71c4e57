package http

import (
	"net/http"
	"strconv"

	assetDomain "ams-backend/internal/domain/asset"
	entityDomain "ams-backend/internal/domain/entity"
	"ams-backend/internal/usecase/directory"

	"github.com/labstack/echo/v4"
)

type DirectoryHandler struct{ uc *directory.Usecase }

func NewDirectoryHandler(uc *directory.Usecase) *DirectoryHandler {
	return &DirectoryHandler{uc: uc}
}

type entityView struct {
	Entity       *entityDomain.Record `json:"entity"`
	IssuedAssets []assetDomain.Record `json:"issued_assets"`
}

// LookupByDOC resolves an individual from a keyed-in DOC number or badge
// scan and returns everything currently charged to them.
func (h *DirectoryHandler) LookupByDOC(c echo.Context) error {
	ctx := c.Request().Context()

	rec, err := h.uc.LookupByDOC(ctx, c.Param("doc"))
	if err != nil {
		return writeError(c, err)
	}
	issued, err := h.uc.ListIssuedAssets(ctx, rec.EntityID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, entityView{Entity: rec, IssuedAssets: issued})
}

func (h *DirectoryHandler) LookupByID(c echo.Context) error {
	ctx := c.Request().Context()

	entityID, err := strconv.ParseUint(c.Param("entity_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "entity_id must be numeric"})
	}
	rec, err := h.uc.LookupByID(ctx, entityID)
	if err != nil {
		return writeError(c, err)
	}
	issued, err := h.uc.ListIssuedAssets(ctx, entityID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, entityView{Entity: rec, IssuedAssets: issued})
}
