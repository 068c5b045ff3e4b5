package repository

import (
	"github.com/arbifans/goapp/base/ctx"
	"github.com/arbifans/goapp/domain"
	"github.com/arbifans/goapp/domain/keys"
	"github.com/arbifans/goapp/domain/unlock"
	"github.com/arbifans/goapp/service/localstore"
)

type impl struct {
	store localstore.Store
}

func New(store localstore.Store) unlock.Repo {
	return &impl{store: store}
}

func (im *impl) Add(c ctx.Ctx, id domain.AssetId) error {
	ids, err := im.load(c)
	if err != nil {
		return err
	}
	for _, v := range ids {
		if v == int64(id) {
			// already recorded
			return nil
		}
	}
	ids = append(ids, int64(id))
	if err := im.store.Set(c, keys.KeyUnlockedAssets, ids); err != nil {
		c.WithField("err", err).Error("store.Set failed")
		return err
	}
	return nil
}

func (im *impl) Contains(c ctx.Ctx, id domain.AssetId) (bool, error) {
	ids, err := im.load(c)
	if err != nil {
		return false, err
	}
	for _, v := range ids {
		if v == int64(id) {
			return true, nil
		}
	}
	return false, nil
}

func (im *impl) List(c ctx.Ctx) ([]domain.AssetId, error) {
	ids, err := im.load(c)
	if err != nil {
		return nil, err
	}
	res := make([]domain.AssetId, 0, len(ids))
	for _, v := range ids {
		res = append(res, domain.AssetId(v))
	}
	return res, nil
}

// load reads the raw id array, the same shape the original profile
// storage used: a json array of integers.
func (im *impl) load(c ctx.Ctx) ([]int64, error) {
	ids := []int64{}
	err := im.store.Get(c, keys.KeyUnlockedAssets, &ids)
	if err == localstore.ErrNotFound {
		return ids, nil
	} else if err != nil {
		c.WithField("err", err).Error("store.Get failed")
		return nil, err
	}
	return ids, nil
}
