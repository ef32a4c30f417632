package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/gallery/base/ctx"
	"github.com/x-xyz/gallery/base/delivery"
	"github.com/x-xyz/gallery/base/validator"
	"github.com/x-xyz/gallery/domain"
	"github.com/x-xyz/gallery/domain/token"
	"github.com/x-xyz/gallery/middleware"
)

type handler struct {
	transfer token.TransferUsecase
}

func New(e *echo.Echo, transfer token.TransferUsecase) {
	h := &handler{transfer}

	g := e.Group("/collections/:registryAddress", middleware.IsValidAddress("registryAddress"))

	g.GET("/transfers/:tokenId", h.getTransfers)
}

// @Summary Transfers of a token labeled for the viewer
// @Tags transfer
// @Produce json
// @Param registryAddress path string true "collection address"
// @Param tokenId path string true "token id"
// @Param viewer query string false "viewer address"
// @Success 200 {array} token.LabeledTransfer
// @Router /collections/{registryAddress}/transfers/{tokenId} [get]
func (h *handler) getTransfers(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	registry := domain.Address(c.Param("registryAddress"))
	tokenId := domain.TokenId(c.Param("tokenId"))

	var viewer *domain.Address
	if v := c.QueryParam("viewer"); v != "" {
		if !validator.IsValidAddress(v) {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid viewer")
		}
		addr := domain.Address(v).ToLower()
		viewer = &addr
	}

	res, err := h.transfer.GetTokenTransfers(ctx, registry, tokenId, viewer)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
