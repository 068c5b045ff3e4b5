package asset

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/arbifans/goapp/base/ctx"
	"github.com/arbifans/goapp/domain"
	"github.com/arbifans/goapp/domain/creator"
)

// Asset is a piece of creator content as the backend returns it
type Asset struct {
	Id          domain.AssetId   `json:"id"`
	CreatorId   domain.CreatorId `json:"creatorId"`
	Url         string           `json:"url"`
	Price       string           `json:"price"`
	Description string           `json:"description"`
	// UnlockableContent means the backend treats this asset as free for
	// everyone, distinct from a per-user purchase
	UnlockableContent bool      `json:"unlockableContent"`
	CreatedAt         time.Time `json:"createdAt,omitempty"`
}

// IsFree reports whether the asset carries no price. An absent or
// malformed price field gates nothing.
func (a *Asset) IsFree() bool {
	if len(a.Price) == 0 {
		return true
	}
	price, err := decimal.NewFromString(a.Price)
	if err != nil {
		return true
	}
	return price.IsZero()
}

type CreateAssetPayload struct {
	CreatorId         domain.CreatorId `json:"creatorId" validate:"required"`
	Url               string           `json:"url" validate:"required"`
	Price             string           `json:"price"`
	Description       string           `json:"description"`
	UnlockableContent bool             `json:"unlockableContent"`
}

// View is an asset decorated for rendering
type View struct {
	Asset
	Locked  bool                   `json:"locked"`
	Creator *creator.SimpleCreator `json:"creator,omitempty"`
}

// Repo talks to the platform backend
type Repo interface {
	FindAll(c ctx.Ctx) ([]Asset, error)
	FindOne(c ctx.Ctx, id domain.AssetId) (*Asset, error)
	Create(c ctx.Ctx, payload CreateAssetPayload) (*Asset, error)
}

type Usecase interface {
	Feed(c ctx.Ctx) ([]View, error)
	Detail(c ctx.Ctx, id domain.AssetId) (*View, error)
	Submit(c ctx.Ctx, payload CreateAssetPayload) (*Asset, error)
	// IsVisible decides whether the current viewer may see the content
	// unblurred
	IsVisible(c ctx.Ctx, a *Asset) (bool, error)
}
