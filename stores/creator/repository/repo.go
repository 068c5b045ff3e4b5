package repository

import (
	"github.com/arbifans/goapp/base/ctx"
	"github.com/arbifans/goapp/domain"
	"github.com/arbifans/goapp/domain/creator"
	"github.com/arbifans/goapp/service/backend"
)

type impl struct {
	client backend.Client
}

func New(client backend.Client) creator.Repo {
	return &impl{client: client}
}

func (im *impl) Register(c ctx.Ctx, payload creator.RegisterPayload) (*creator.Creator, error) {
	res, err := im.client.RegisterCreator(c, payload)
	if err != nil {
		c.WithField("err", err).Error("client.RegisterCreator failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) FindOne(c ctx.Ctx, id domain.CreatorId) (*creator.Creator, error) {
	res, err := im.client.GetCreator(c, id)
	if err != nil {
		c.WithField("err", err).WithField("id", id).Error("client.GetCreator failed")
		return nil, err
	}
	return res, nil
}
