package usecase

import (
	"bytes"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/arbifans/goapp/base/ctx"
	"github.com/arbifans/goapp/domain"
	"github.com/arbifans/goapp/domain/file"
	"github.com/arbifans/goapp/service/pinata"
)

type impl struct {
	pinata pinata.Service
}

func New(pinata pinata.Service) file.Usecase {
	return &impl{
		pinata: pinata,
	}
}

func (im *impl) Upload(c ctx.Ctx, data []byte, optFns ...pinata.Options) (string, error) {
	if len(data) == 0 {
		return "", domain.ErrBadParamInput
	}

	// content type is sniffed from the bytes, never trusted from the caller
	extension := strings.TrimPrefix(mimetype.Detect(data).Extension(), ".")

	hash, err := im.pinata.Pin(c, bytes.NewReader(data), extension, optFns...)
	if err != nil {
		c.WithField("err", err).Error("pinata.Pin failed")
		return "", err
	}
	c.WithField("hash", hash).Info("pinata.Pin success")
	return im.pinata.GatewayUrl(hash), nil
}

func (im *impl) UploadJson(c ctx.Ctx, value interface{}, optFns ...pinata.Options) (string, error) {
	hash, err := im.pinata.PinJson(c, value, optFns...)
	if err != nil {
		c.WithField("err", err).Error("pinata.PinJson failed")
		return "", err
	}
	c.WithField("hash", hash).Info("pinata.PinJson success")
	return im.pinata.GatewayUrl(hash), nil
}
