package usecase

import (
	"github.com/arbifans/goapp/base/ctx"
	"github.com/arbifans/goapp/base/validator"
	"github.com/arbifans/goapp/domain"
	"github.com/arbifans/goapp/domain/creator"
	"github.com/arbifans/goapp/domain/keys"
	"github.com/arbifans/goapp/service/localstore"
)

type impl struct {
	repo  creator.Repo
	store localstore.Store
}

func New(repo creator.Repo, store localstore.Store) creator.Usecase {
	return &impl{
		repo:  repo,
		store: store,
	}
}

func (im *impl) Register(c ctx.Ctx, payload creator.RegisterPayload) (*creator.Creator, error) {
	if !validator.IsValidAddress(string(payload.WalletAddress)) {
		return nil, domain.ErrInvalidAddress
	}

	res, err := im.repo.Register(c, payload)
	if err != nil {
		c.WithField("err", err).Error("repo.Register failed")
		return nil, err
	}

	// the registered identity becomes the signed-in creator on this profile
	if err := im.store.Set(c, keys.KeyCreatorId, int64(res.Id)); err != nil {
		c.WithField("err", err).Error("store.Set failed")
		return nil, err
	}

	c.WithField("creatorId", res.Id).Info("creator registered")
	return res, nil
}

func (im *impl) Profile(c ctx.Ctx, id domain.CreatorId) (*creator.Creator, error) {
	return im.repo.FindOne(c, id)
}

func (im *impl) Current(c ctx.Ctx) (*domain.CreatorId, error) {
	var raw int64
	err := im.store.Get(c, keys.KeyCreatorId, &raw)
	if err == localstore.ErrNotFound {
		return nil, nil
	} else if err != nil {
		c.WithField("err", err).Error("store.Get failed")
		return nil, err
	}
	id := domain.CreatorId(raw)
	return &id, nil
}

func (im *impl) Logout(c ctx.Ctx) error {
	if err := im.store.Del(c, keys.KeyCreatorId); err != nil {
		c.WithField("err", err).Error("store.Del failed")
		return err
	}
	return nil
}
