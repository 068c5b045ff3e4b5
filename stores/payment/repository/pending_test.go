package repository

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/arbifans/goapp/base/ctx"
	"github.com/arbifans/goapp/domain"
	"github.com/arbifans/goapp/domain/payment"
	"github.com/arbifans/goapp/service/localstore"
)

var (
	mockCtx = ctx.Background()
)

type pendingSuite struct {
	suite.Suite
	path string
	im   payment.PendingRepo
}

func TestPendingSuite(t *testing.T) {
	suite.Run(t, new(pendingSuite))
}

func (s *pendingSuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "profile.json")
	store, err := localstore.New(mockCtx, s.path)
	s.Require().NoError(err)
	s.im = NewPending(store)
}

func (s *pendingSuite) pending(id string) payment.PendingVerification {
	return payment.PendingVerification{
		Id:        id,
		AssetId:   7,
		TxHash:    "0xTX1",
		Amount:    "2.5",
		Receiver:  "0xAAA",
		CreatedAt: time.Unix(1700000000, 0).UTC(),
	}
}

func (s *pendingSuite) TestEnqueueAndList() {
	s.NoError(s.im.Enqueue(mockCtx, s.pending("a")))
	s.NoError(s.im.Enqueue(mockCtx, s.pending("b")))

	items, err := s.im.List(mockCtx)
	s.NoError(err)
	s.Require().Len(items, 2)
	s.Equal("a", items[0].Id)
	s.Equal(domain.TxHash("0xTX1"), items[0].TxHash)
}

func (s *pendingSuite) TestEnqueueDuplicate() {
	s.NoError(s.im.Enqueue(mockCtx, s.pending("a")))
	s.ErrorIs(s.im.Enqueue(mockCtx, s.pending("a")), domain.ErrConflict)
}

func (s *pendingSuite) TestUpdate() {
	s.NoError(s.im.Enqueue(mockCtx, s.pending("a")))

	p := s.pending("a")
	p.Attempts = 3
	s.NoError(s.im.Update(mockCtx, p))

	items, err := s.im.List(mockCtx)
	s.NoError(err)
	s.Require().Len(items, 1)
	s.Equal(3, items[0].Attempts)

	s.ErrorIs(s.im.Update(mockCtx, s.pending("missing")), domain.ErrNotFound)
}

func (s *pendingSuite) TestRemove() {
	s.NoError(s.im.Enqueue(mockCtx, s.pending("a")))
	s.NoError(s.im.Enqueue(mockCtx, s.pending("b")))

	s.NoError(s.im.Remove(mockCtx, "a"))

	items, err := s.im.List(mockCtx)
	s.NoError(err)
	s.Require().Len(items, 1)
	s.Equal("b", items[0].Id)

	s.ErrorIs(s.im.Remove(mockCtx, "a"), domain.ErrNotFound)
}

func (s *pendingSuite) TestSurvivesReload() {
	s.NoError(s.im.Enqueue(mockCtx, s.pending("a")))

	store, err := localstore.New(mockCtx, s.path)
	s.Require().NoError(err)

	items, err := NewPending(store).List(mockCtx)
	s.NoError(err)
	s.Require().Len(items, 1)
	s.Equal("a", items[0].Id)
}
