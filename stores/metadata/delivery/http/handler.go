package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/gallery/base/ctx"
	"github.com/x-xyz/gallery/base/delivery"
	"github.com/x-xyz/gallery/base/log"
	"github.com/x-xyz/gallery/base/validator"
	"github.com/x-xyz/gallery/domain"
	"github.com/x-xyz/gallery/domain/endpoint"
	"github.com/x-xyz/gallery/domain/globals"
	"github.com/x-xyz/gallery/domain/metadata"
	"github.com/x-xyz/gallery/middleware"
)

type handler struct {
	globals  globals.Store
	metadata metadata.Usecase
}

func New(e *echo.Echo, globals globals.Store, metadata metadata.Usecase) {
	h := &handler{globals, metadata}

	g := e.Group("/collections/:registryAddress", middleware.IsValidAddress("registryAddress"))

	g.GET("/attributes", h.getAttributes)

	g.POST("/tokens/filter", h.filterTokens)
}

var errNotLoaded = errors.New("collection not loaded")

// snapshot returns the current snapshot when it describes registry
func (h *handler) snapshot(registry domain.Address) (*globals.Snapshot, error) {
	snap := h.globals.Current()
	if snap == nil {
		return nil, errNotLoaded
	}
	if !snap.Collection.Address.Equals(registry) {
		return nil, domain.ErrNotFound
	}
	return snap, nil
}

// @Summary Attribute values and counts of the collection
// @Tags metadata
// @Produce json
// @Param registryAddress path string true "collection address"
// @Success 200 {array} collection.CollectionAttribute
// @Router /collections/{registryAddress}/attributes [get]
func (h *handler) getAttributes(c echo.Context) error {
	snap, err := h.snapshot(domain.Address(c.Param("registryAddress")))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusServiceUnavailable, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, h.metadata.Summarize(snap.Index))
}

type filterReq struct {
	AttributeFilters []endpoint.FieldValueFilter `json:"attributeFilters" validate:"dive"`
}

// @Summary Token ids matching the attribute filters
// @Tags metadata
// @Accept json
// @Produce json
// @Param registryAddress path string true "collection address"
// @Param body body filterReq true "filters"
// @Success 200 {array} string
// @Router /collections/{registryAddress}/tokens/filter [post]
func (h *handler) filterTokens(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	snap, err := h.snapshot(domain.Address(c.Param("registryAddress")))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusServiceUnavailable, err)
	}

	req := filterReq{}
	if err := c.Bind(&req); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := validator.Struct(req); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	ids, err := h.metadata.Filter(snap.Index, req.AttributeFilters)
	if err != nil {
		ctx.WithFields(log.Fields{
			"filters": req.AttributeFilters,
			"err":     err,
		}).Warn("metadata.Filter failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, ids)
}
