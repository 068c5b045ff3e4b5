package repository

import (
	"github.com/arbifans/goapp/base/ctx"
	"github.com/arbifans/goapp/domain"
	"github.com/arbifans/goapp/domain/keys"
	"github.com/arbifans/goapp/domain/payment"
	"github.com/arbifans/goapp/service/localstore"
)

type pendingImpl struct {
	store localstore.Store
}

// NewPending keeps the pending-verification queue in the profile store
// so a paid-but-unverified transfer survives restarts.
func NewPending(store localstore.Store) payment.PendingRepo {
	return &pendingImpl{store: store}
}

func (im *pendingImpl) Enqueue(c ctx.Ctx, p payment.PendingVerification) error {
	items, err := im.load(c)
	if err != nil {
		return err
	}
	for _, v := range items {
		if v.Id == p.Id {
			return domain.ErrConflict
		}
	}
	items = append(items, p)
	return im.save(c, items)
}

func (im *pendingImpl) List(c ctx.Ctx) ([]payment.PendingVerification, error) {
	return im.load(c)
}

func (im *pendingImpl) Update(c ctx.Ctx, p payment.PendingVerification) error {
	items, err := im.load(c)
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].Id == p.Id {
			items[i] = p
			return im.save(c, items)
		}
	}
	return domain.ErrNotFound
}

func (im *pendingImpl) Remove(c ctx.Ctx, id string) error {
	items, err := im.load(c)
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].Id == id {
			items = append(items[:i], items[i+1:]...)
			return im.save(c, items)
		}
	}
	return domain.ErrNotFound
}

func (im *pendingImpl) load(c ctx.Ctx) ([]payment.PendingVerification, error) {
	items := []payment.PendingVerification{}
	err := im.store.Get(c, keys.KeyPendingVerifications, &items)
	if err == localstore.ErrNotFound {
		return items, nil
	} else if err != nil {
		c.WithField("err", err).Error("store.Get failed")
		return nil, err
	}
	return items, nil
}

func (im *pendingImpl) save(c ctx.Ctx, items []payment.PendingVerification) error {
	if err := im.store.Set(c, keys.KeyPendingVerifications, items); err != nil {
		c.WithField("err", err).Error("store.Set failed")
		return err
	}
	return nil
}
