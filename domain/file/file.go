package file

import (
	"github.com/arbifans/goapp/base/ctx"
	"github.com/arbifans/goapp/service/pinata"
)

type Usecase interface {
	// Upload pins raw content bytes and returns a gateway url
	Upload(c ctx.Ctx, data []byte, optFns ...pinata.Options) (url string, err error)
	UploadJson(c ctx.Ctx, value interface{}, optFns ...pinata.Options) (url string, err error)
}
