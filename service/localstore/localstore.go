package localstore

import (
	"errors"

	"github.com/arbifans/goapp/base/ctx"
)

var (
	ErrNotFound = errors.New("key not found")
)

// Store is the per-profile persistent key-value store, the stand-in for
// browser local storage. Values are JSON documents.
type Store interface {
	Get(c ctx.Ctx, key string, container interface{}) error
	Set(c ctx.Ctx, key string, value interface{}) error
	Has(c ctx.Ctx, key string) (bool, error)
	Del(c ctx.Ctx, key string) error
}
