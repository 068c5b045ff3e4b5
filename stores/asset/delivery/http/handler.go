package http

import (
	"io/ioutil"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arbifans/goapp/base/ctx"
	"github.com/arbifans/goapp/base/delivery"
	"github.com/arbifans/goapp/domain"
	"github.com/arbifans/goapp/domain/asset"
	"github.com/arbifans/goapp/domain/file"
)

type handler struct {
	asset asset.Usecase
	file  file.Usecase
}

func New(e *echo.Echo, assetUC asset.Usecase, fileUC file.Usecase) {
	h := &handler{
		asset: assetUC,
		file:  fileUC,
	}

	g := e.Group("/assets")
	g.GET("", h.feed)
	g.GET("/:id", h.detail)
	g.POST("", h.submit)
	g.POST("/upload", h.upload)
}

func (h *handler) feed(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	views, err := h.asset.Feed(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, views)
}

func (h *handler) detail(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := domain.ParseAssetId(c.Param("id"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	view, err := h.asset.Detail(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, view)
}

func (h *handler) submit(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := asset.CreateAssetPayload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	created, err := h.asset.Submit(ctx, p)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusCreated, created)
}

// upload pins raw content bytes and returns the url to submit with
func (h *handler) upload(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	data, err := ioutil.ReadAll(c.Request().Body)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	url, err := h.file.Upload(ctx, data)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusCreated, map[string]string{"url": url})
}
