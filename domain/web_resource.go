package domain

import (
	"github.com/arbifans/goapp/base/ctx"
)

type WebResourceReaderRepository interface {
	Get(ctx.Ctx, string) ([]byte, error)
}

// WebResourceUseCase resolves a content url of any supported schema and
// returns its bytes with the sniffed mime type.
type WebResourceUseCase interface {
	Get(ctx.Ctx, string) ([]byte, string, error)
}
