package creator

import (
	"github.com/arbifans/goapp/base/ctx"
	"github.com/arbifans/goapp/domain"
)

// Creator is a registered content creator on the platform
type Creator struct {
	Id            domain.CreatorId `json:"id"`
	Name          string           `json:"name"`
	WalletAddress domain.Address   `json:"walletAddress"`
}

func (c *Creator) ToSimpleCreator() *SimpleCreator {
	return &SimpleCreator{
		Id:   c.Id,
		Name: c.Name,
	}
}

type SimpleCreator struct {
	Id   domain.CreatorId `json:"id"`
	Name string           `json:"name"`
}

type RegisterPayload struct {
	Name          string         `json:"name" validate:"required"`
	WalletAddress domain.Address `json:"walletAddress" validate:"required"`
}

// Repo talks to the platform backend
type Repo interface {
	Register(c ctx.Ctx, payload RegisterPayload) (*Creator, error)
	FindOne(c ctx.Ctx, id domain.CreatorId) (*Creator, error)
}

// Usecase keeps the signed-in creator identity in the local store
type Usecase interface {
	Register(c ctx.Ctx, payload RegisterPayload) (*Creator, error)
	Profile(c ctx.Ctx, id domain.CreatorId) (*Creator, error)
	// Current returns nil when no creator is signed in on this profile
	Current(c ctx.Ctx) (*domain.CreatorId, error)
	Logout(c ctx.Ctx) error
}
