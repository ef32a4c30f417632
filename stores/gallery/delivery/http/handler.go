package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/gallery/base/ctx"
	"github.com/x-xyz/gallery/base/delivery"
	"github.com/x-xyz/gallery/domain"
	"github.com/x-xyz/gallery/domain/gallery"
	"github.com/x-xyz/gallery/middleware"
)

type handler struct {
	actions gallery.ActionUsecase
}

func New(e *echo.Echo, actions gallery.ActionUsecase) {
	h := &handler{actions}

	g := e.Group("/collections/:registryAddress", middleware.IsValidAddress("registryAddress"))

	g.POST("/tokens/:tokenId/treasure-hunt", h.submitTreasureHunt)

	g.POST("/tokens/:tokenId/customizations", h.createTokenCustomization)

	g.POST("/users/:userAddress/follow", h.followUser, middleware.IsValidAddress("userAddress"))
}

// @Summary Submit a treasure hunt find signed by the operator account
// @Tags gallery
// @Produce json
// @Param registryAddress path string true "collection address"
// @Param tokenId path string true "token id"
// @Success 200
// @Router /collections/{registryAddress}/tokens/{tokenId}/treasure-hunt [post]
func (h *handler) submitTreasureHunt(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	registry := domain.Address(c.Param("registryAddress"))
	tokenId := domain.TokenId(c.Param("tokenId"))

	if err := h.actions.SubmitTreasureHunt(ctx, registry, tokenId); err != nil {
		return delivery.MakeJsonResp(c, actionErrorStatus(err), err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

type customizationReq struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// @Summary Customize a token's name and description
// @Tags gallery
// @Accept json
// @Produce json
// @Param registryAddress path string true "collection address"
// @Param tokenId path string true "token id"
// @Param body body customizationReq true "customization"
// @Success 200 {object} token.TokenCustomization
// @Router /collections/{registryAddress}/tokens/{tokenId}/customizations [post]
func (h *handler) createTokenCustomization(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	registry := domain.Address(c.Param("registryAddress"))
	tokenId := domain.TokenId(c.Param("tokenId"))

	req := customizationReq{}
	if err := c.Bind(&req); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	res, err := h.actions.CreateTokenCustomization(ctx, registry, tokenId, req.Name, req.Description)
	if err != nil {
		return delivery.MakeJsonResp(c, actionErrorStatus(err), err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// @Summary Follow a user of the collection
// @Tags gallery
// @Produce json
// @Param registryAddress path string true "collection address"
// @Param userAddress path string true "user to follow"
// @Success 200
// @Router /collections/{registryAddress}/users/{userAddress}/follow [post]
func (h *handler) followUser(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	registry := domain.Address(c.Param("registryAddress"))
	user := domain.Address(c.Param("userAddress"))

	if err := h.actions.FollowUser(ctx, registry, user); err != nil {
		return delivery.MakeJsonResp(c, actionErrorStatus(err), err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

// actionErrorStatus is the fallback status for errors delivery does not map
func actionErrorStatus(err error) int {
	if errors.Is(err, domain.ErrNoAccount) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
