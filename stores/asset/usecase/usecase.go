package usecase

import (
	"github.com/viney-shih/goroutines"

	"github.com/arbifans/goapp/base/ctx"
	"github.com/arbifans/goapp/base/metrics"
	"github.com/arbifans/goapp/domain"
	"github.com/arbifans/goapp/domain/asset"
	"github.com/arbifans/goapp/domain/creator"
	"github.com/arbifans/goapp/domain/unlock"
)

const profileFetchConcurrency = 10

type impl struct {
	repo    asset.Repo
	creator creator.Usecase
	unlock  unlock.Usecase
	metrics metrics.Service
}

func New(repo asset.Repo, creatorUC creator.Usecase, unlockUC unlock.Usecase) asset.Usecase {
	return &impl{
		repo:    repo,
		creator: creatorUC,
		unlock:  unlockUC,
		metrics: metrics.New("asset"),
	}
}

func (im *impl) Feed(c ctx.Ctx) ([]asset.View, error) {
	defer im.metrics.BumpTime("feed.time").End()

	assets, err := im.repo.FindAll(c)
	if err != nil {
		c.WithField("err", err).Error("repo.FindAll failed")
		return nil, err
	}

	views := make([]asset.View, len(assets))
	for i := range assets {
		visible, err := im.IsVisible(c, &assets[i])
		if err != nil {
			return nil, err
		}
		views[i] = asset.View{
			Asset:  assets[i],
			Locked: !visible,
		}
	}

	im.attachCreators(c, views)
	return views, nil
}

func (im *impl) Detail(c ctx.Ctx, id domain.AssetId) (*asset.View, error) {
	a, err := im.repo.FindOne(c, id)
	if err != nil {
		c.WithField("err", err).WithField("id", id).Error("repo.FindOne failed")
		return nil, err
	}

	visible, err := im.IsVisible(c, a)
	if err != nil {
		return nil, err
	}

	view := &asset.View{
		Asset:  *a,
		Locked: !visible,
	}
	if profile, err := im.creator.Profile(c, a.CreatorId); err == nil {
		view.Creator = profile.ToSimpleCreator()
	}
	return view, nil
}

func (im *impl) Submit(c ctx.Ctx, payload asset.CreateAssetPayload) (*asset.Asset, error) {
	current, err := im.creator.Current(c)
	if err != nil {
		return nil, err
	}
	if current == nil || *current != payload.CreatorId {
		return nil, domain.ErrBadParamInput
	}

	res, err := im.repo.Create(c, payload)
	if err != nil {
		c.WithField("err", err).Error("repo.Create failed")
		return nil, err
	}
	im.metrics.BumpSum("submit.count", 1)
	return res, nil
}

// IsVisible is the gating decision: content renders unblurred for the
// asset's own creator, for server-side unlocked assets, for free assets,
// and for assets this profile has paid for.
func (im *impl) IsVisible(c ctx.Ctx, a *asset.Asset) (bool, error) {
	if a.UnlockableContent || a.IsFree() {
		return true, nil
	}

	viewer, err := im.creator.Current(c)
	if err != nil {
		return false, err
	}
	if viewer != nil && *viewer == a.CreatorId {
		return true, nil
	}

	unlocked, err := im.unlock.IsUnlocked(c, a.Id)
	if err != nil {
		return false, err
	}
	return unlocked, nil
}

// attachCreators decorates views with creator profiles, fetched
// concurrently per distinct creator. A profile fetch failure only leaves
// that view undecorated.
func (im *impl) attachCreators(c ctx.Ctx, views []asset.View) {
	if len(views) == 0 {
		return
	}

	distinct := map[domain.CreatorId]struct{}{}
	ids := []domain.CreatorId{}
	for i := range views {
		if _, ok := distinct[views[i].CreatorId]; !ok {
			distinct[views[i].CreatorId] = struct{}{}
			ids = append(ids, views[i].CreatorId)
		}
	}

	b := goroutines.NewBatch(profileFetchConcurrency, goroutines.WithBatchSize(len(ids)))
	defer b.Close()
	for i := 0; i < len(ids); i++ {
		idx := i
		b.Queue(func() (interface{}, error) {
			profile, err := im.creator.Profile(c, ids[idx])
			if err != nil {
				c.WithField("err", err).WithField("creatorId", ids[idx]).Warn("creator.Profile failed")
				return nil, err
			}
			return profile, nil
		})
	}
	b.QueueComplete()

	profiles := map[domain.CreatorId]*creator.SimpleCreator{}
	for ret := range b.Results() {
		if ret.Error() != nil {
			continue
		}
		p := ret.Value().(*creator.Creator)
		profiles[p.Id] = p.ToSimpleCreator()
	}

	for i := range views {
		views[i].Creator = profiles[views[i].CreatorId]
	}
}
