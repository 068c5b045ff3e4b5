package unlock

import (
	"github.com/arbifans/goapp/base/ctx"
	"github.com/arbifans/goapp/domain"
)

// Repo is the persistent set of asset ids this profile has unlocked.
// There is no removal: an unlocked asset stays unlocked.
type Repo interface {
	Add(c ctx.Ctx, id domain.AssetId) error
	Contains(c ctx.Ctx, id domain.AssetId) (bool, error)
	List(c ctx.Ctx) ([]domain.AssetId, error)
}

type Usecase interface {
	// Record marks an asset unlocked. Idempotent. Callers must only
	// invoke it after the backend acknowledged the payment.
	Record(c ctx.Ctx, id domain.AssetId) error
	IsUnlocked(c ctx.Ctx, id domain.AssetId) (bool, error)
	List(c ctx.Ctx) ([]domain.AssetId, error)
}
