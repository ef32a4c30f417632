package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/gallery/base/ctx"
	"github.com/x-xyz/gallery/base/delivery"
	"github.com/x-xyz/gallery/base/log"
	"github.com/x-xyz/gallery/base/validator"
	"github.com/x-xyz/gallery/domain"
	"github.com/x-xyz/gallery/domain/listing"
	"github.com/x-xyz/gallery/middleware"
)

type handler struct {
	listing listing.Usecase
}

type listingResp struct {
	*listing.TokenListing
	// DisplayValue is the value in whole ether
	DisplayValue string `json:"displayValue"`
}

func toResp(l *listing.TokenListing) *listingResp {
	if l == nil {
		return nil
	}
	return &listingResp{
		TokenListing: l,
		DisplayValue: l.DisplayValue(listing.NativeDecimals).String(),
	}
}

func New(e *echo.Echo, listing listing.Usecase) {
	h := &handler{listing}

	g := e.Group("/collections/:registryAddress", middleware.IsValidAddress("registryAddress"))

	g.GET("/tokens/:tokenId/listing", h.getBestListing)

	g.POST("/listings", h.getBestListings)
}

// @Summary Best listing of a token
// @Tags listing
// @Produce json
// @Param registryAddress path string true "collection address"
// @Param tokenId path string true "token id"
// @Success 200 {object} listingResp
// @Router /collections/{registryAddress}/tokens/{tokenId}/listing [get]
func (h *handler) getBestListing(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	registry := domain.Address(c.Param("registryAddress")).ToLower()
	tokenId := domain.TokenId(c.Param("tokenId"))

	if _, err := domain.ParseBigInt(string(tokenId)); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid tokenId")
	}

	l, err := h.listing.GetBestListing(ctx, registry, tokenId)
	if err != nil {
		ctx.WithFields(log.Fields{
			"registry": registry,
			"tokenId":  tokenId,
			"err":      err,
		}).Error("listing.GetBestListing failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, toResp(l))
}

type batchReq struct {
	TokenIds []domain.TokenId `json:"tokenIds" validate:"required,min=1,max=200,dive,numeric"`
}

// @Summary Best listings of many tokens
// @Tags listing
// @Accept json
// @Produce json
// @Param registryAddress path string true "collection address"
// @Param body body batchReq true "token ids"
// @Success 200 {object} map[string]listingResp
// @Router /collections/{registryAddress}/listings [post]
func (h *handler) getBestListings(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	registry := domain.Address(c.Param("registryAddress")).ToLower()

	req := batchReq{}
	if err := c.Bind(&req); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := validator.Struct(req); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.listing.GetBestListings(ctx, registry, req.TokenIds)
	if err != nil {
		ctx.WithFields(log.Fields{
			"registry": registry,
			"count":    len(req.TokenIds),
			"err":      err,
		}).Error("listing.GetBestListings failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	out := make(map[domain.TokenId]*listingResp, len(res))
	for id, l := range res {
		out[id] = toResp(l)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, out)
}
