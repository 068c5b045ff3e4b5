package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arbifans/goapp/base/ctx"
	"github.com/arbifans/goapp/base/delivery"
	"github.com/arbifans/goapp/domain"
	"github.com/arbifans/goapp/domain/creator"
)

type handler struct {
	creator creator.Usecase
}

func New(e *echo.Echo, creatorUC creator.Usecase) {
	h := &handler{
		creator: creatorUC,
	}

	g := e.Group("/creators")
	g.POST("/register", h.register)
	g.GET("/current", h.current)
	g.POST("/logout", h.logout)
	g.GET("/:id", h.profile)
}

func (h *handler) register(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := creator.RegisterPayload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	created, err := h.creator.Register(ctx, p)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusCreated, created)
}

func (h *handler) profile(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := domain.ParseCreatorId(c.Param("id"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	profile, err := h.creator.Profile(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, profile)
}

func (h *handler) current(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := h.creator.Current(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	if id == nil {
		return delivery.MakeJsonResp(c, http.StatusNotFound, domain.ErrNotFound)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, id)
}

func (h *handler) logout(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if err := h.creator.Logout(ctx); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}
