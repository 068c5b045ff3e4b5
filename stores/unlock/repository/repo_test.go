package repository

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/arbifans/goapp/base/ctx"
	"github.com/arbifans/goapp/domain"
	"github.com/arbifans/goapp/service/localstore"
)

var (
	mockCtx = ctx.Background()
)

type repoSuite struct {
	suite.Suite
	path string
	im   *impl
}

func TestRepoSuite(t *testing.T) {
	suite.Run(t, new(repoSuite))
}

func (s *repoSuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "profile.json")
	store, err := localstore.New(mockCtx, s.path)
	s.Require().NoError(err)
	s.im = New(store).(*impl)
}

func (s *repoSuite) TestEmpty() {
	ok, err := s.im.Contains(mockCtx, 1)
	s.NoError(err)
	s.False(ok)

	ids, err := s.im.List(mockCtx)
	s.NoError(err)
	s.Empty(ids)
}

func (s *repoSuite) TestAddAndContains() {
	s.NoError(s.im.Add(mockCtx, 1))
	s.NoError(s.im.Add(mockCtx, 2))

	ok, err := s.im.Contains(mockCtx, 1)
	s.NoError(err)
	s.True(ok)

	ok, err = s.im.Contains(mockCtx, 3)
	s.NoError(err)
	s.False(ok)

	ids, err := s.im.List(mockCtx)
	s.NoError(err)
	s.Equal([]domain.AssetId{1, 2}, ids)
}

func (s *repoSuite) TestAddIsIdempotent() {
	s.NoError(s.im.Add(mockCtx, 1))
	s.NoError(s.im.Add(mockCtx, 1))

	ids, err := s.im.List(mockCtx)
	s.NoError(err)
	s.Equal([]domain.AssetId{1}, ids)
}

func (s *repoSuite) TestSurvivesReload() {
	s.NoError(s.im.Add(mockCtx, 9))

	store, err := localstore.New(mockCtx, s.path)
	s.Require().NoError(err)
	reopened := New(store)

	ok, err := reopened.Contains(mockCtx, 9)
	s.NoError(err)
	s.True(ok)
}
