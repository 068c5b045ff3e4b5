package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arbifans/goapp/base/ctx"
	"github.com/arbifans/goapp/base/delivery"
	"github.com/arbifans/goapp/domain"
	"github.com/arbifans/goapp/domain/asset"
)

type handler struct {
	asset       asset.Usecase
	webResource domain.WebResourceUseCase
}

func New(e *echo.Echo, assetUC asset.Usecase, webResource domain.WebResourceUseCase) {
	h := &handler{
		asset:       assetUC,
		webResource: webResource,
	}

	e.GET("/assets/:id/content", h.content)
}

// content proxies the asset bytes for local rendering. Locked assets
// are refused before any fetch happens.
func (h *handler) content(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := domain.ParseAssetId(c.Param("id"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	view, err := h.asset.Detail(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	if view.Locked {
		return delivery.MakeJsonResp(c, http.StatusPaymentRequired, domain.ErrAssetLocked)
	}

	data, contentType, err := h.webResource.Get(ctx, view.Url)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return c.Blob(http.StatusOK, contentType, data)
}
