package usecase

import (
	"github.com/arbifans/goapp/base/ctx"
	"github.com/arbifans/goapp/domain"
	"github.com/arbifans/goapp/domain/unlock"
)

type impl struct {
	repo unlock.Repo
}

func New(repo unlock.Repo) unlock.Usecase {
	return &impl{repo: repo}
}

func (im *impl) Record(c ctx.Ctx, id domain.AssetId) error {
	if err := im.repo.Add(c, id); err != nil {
		c.WithField("err", err).Error("repo.Add failed")
		return err
	}
	c.WithField("assetId", id).Info("asset unlocked")
	return nil
}

func (im *impl) IsUnlocked(c ctx.Ctx, id domain.AssetId) (bool, error) {
	return im.repo.Contains(c, id)
}

func (im *impl) List(c ctx.Ctx) ([]domain.AssetId, error) {
	return im.repo.List(c)
}
