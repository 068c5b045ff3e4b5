package delivery

import (
	"errors"
	"net/http"

	"github.com/arbifans/goapp/domain"
	"github.com/labstack/echo/v4"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		if errors.Is(err, domain.ErrNotFound) {
			status = http.StatusNotFound
		} else if errors.Is(err, domain.ErrUnlockInFlight) {
			status = http.StatusConflict
		} else if errors.Is(err, domain.ErrAssetLocked) {
			status = http.StatusPaymentRequired
		} else if errors.Is(err, domain.ErrInvalidAddress) || errors.Is(err, domain.ErrInvalidAmount) {
			status = http.StatusBadRequest
		}
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
