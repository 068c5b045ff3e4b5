package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arbifans/goapp/base/ctx"
	"github.com/arbifans/goapp/base/delivery"
	"github.com/arbifans/goapp/domain"
	"github.com/arbifans/goapp/domain/payment"
)

type handler struct {
	payment payment.Usecase
}

func New(e *echo.Echo, paymentUC payment.Usecase) {
	h := &handler{
		payment: paymentUC,
	}

	e.POST("/assets/:id/unlock", h.unlock)

	g := e.Group("/payments/pending")
	g.GET("", h.pending)
	g.POST("/retry", h.retry)
}

func (h *handler) unlock(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := domain.ParseAssetId(c.Param("id"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.payment.Unlock(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) pending(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	items, err := h.payment.Pending(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, items)
}

func (h *handler) retry(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	unresolved, err := h.payment.RetryPending(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, unresolved)
}
