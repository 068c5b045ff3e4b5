package usecase

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/arbifans/goapp/base/ctx"
	"github.com/arbifans/goapp/domain"
	"github.com/arbifans/goapp/domain/unlock"
	mUnlock "github.com/arbifans/goapp/domain/unlock/mocks"
)

var (
	mockCtx = ctx.Background()
)

type usecaseSuite struct {
	suite.Suite

	repo *mUnlock.Repo
	im   unlock.Usecase
}

func TestUsecaseSuite(t *testing.T) {
	suite.Run(t, new(usecaseSuite))
}

func (s *usecaseSuite) SetupTest() {
	s.repo = &mUnlock.Repo{}
	s.im = New(s.repo)
}

func (s *usecaseSuite) TestRecord() {
	s.repo.On("Add", mockCtx, domain.AssetId(1)).Return(nil).Once()
	s.NoError(s.im.Record(mockCtx, 1))
	s.repo.AssertExpectations(s.T())
}

func (s *usecaseSuite) TestIsUnlocked() {
	s.repo.On("Contains", mockCtx, domain.AssetId(1)).Return(true, nil).Once()
	unlocked, err := s.im.IsUnlocked(mockCtx, 1)
	s.NoError(err)
	s.True(unlocked)
}
