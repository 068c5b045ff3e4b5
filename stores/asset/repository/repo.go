package repository

import (
	"time"

	"github.com/arbifans/goapp/base/ctx"
	"github.com/arbifans/goapp/domain"
	"github.com/arbifans/goapp/domain/asset"
	"github.com/arbifans/goapp/domain/keys"
	"github.com/arbifans/goapp/service/backend"
	"github.com/arbifans/goapp/service/cache"
	"github.com/arbifans/goapp/service/cache/provider/primitive"
)

const feedCacheKey = "all"

type impl struct {
	client backend.Client
	cache  cache.Service
}

// New wraps the backend asset endpoints with a short-ttl read cache so
// the feed does not hammer the api on every render.
func New(client backend.Client, cacheTtl time.Duration) asset.Repo {
	return &impl{
		client: client,
		cache: cache.New(cache.ServiceConfig{
			Ttl:   cacheTtl,
			Pfx:   keys.PfxAsset,
			Cache: primitive.NewPrimitive("asset_cache", 4),
		}),
	}
}

func (im *impl) FindAll(c ctx.Ctx) ([]asset.Asset, error) {
	key := keys.CacheKey(keys.PfxAssetFeed, feedCacheKey)
	assets := []asset.Asset{}
	if err := im.cache.GetByFunc(c, key, &assets, func() (interface{}, error) {
		res, err := im.client.ListAssets(c)
		if err != nil {
			return nil, err
		}
		return &res, nil
	}); err != nil {
		return nil, err
	}
	return assets, nil
}

func (im *impl) FindOne(c ctx.Ctx, id domain.AssetId) (*asset.Asset, error) {
	res := &asset.Asset{}
	if err := im.cache.GetByFunc(c, id.String(), res, func() (interface{}, error) {
		return im.client.GetAsset(c, id)
	}); err != nil {
		return nil, err
	}
	return res, nil
}

func (im *impl) Create(c ctx.Ctx, payload asset.CreateAssetPayload) (*asset.Asset, error) {
	res, err := im.client.CreateAsset(c, payload)
	if err != nil {
		c.WithField("err", err).Error("client.CreateAsset failed")
		return nil, err
	}
	// the new asset must show up on the next feed load
	if err := im.cache.Del(c, keys.CacheKey(keys.PfxAssetFeed, feedCacheKey)); err != nil {
		c.WithField("err", err).Warn("cache.Del failed")
	}
	return res, nil
}
