package backoff

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type backoffSuite struct {
	suite.Suite
}

func TestBackoffSuite(t *testing.T) {
	suite.Run(t, new(backoffSuite))
}

func (s *backoffSuite) TestExponentialGrowth() {
	b := NewExponential(10*time.Millisecond, 100*time.Millisecond)

	s.Equal(10*time.Millisecond, b.NextDuration)
	s.NoError(b.Backoff(context.Background()))
	s.Equal(20*time.Millisecond, b.NextDuration)
	s.NoError(b.Backoff(context.Background()))
	s.Equal(40*time.Millisecond, b.NextDuration)
}

func (s *backoffSuite) TestLimit() {
	b := NewExponential(40*time.Millisecond, 50*time.Millisecond)

	s.NoError(b.Backoff(context.Background()))
	s.Equal(50*time.Millisecond, b.NextDuration)
}

func (s *backoffSuite) TestReset() {
	b := NewExponential(10*time.Millisecond, 100*time.Millisecond)

	s.NoError(b.Backoff(context.Background()))
	b.Reset()
	s.Equal(10*time.Millisecond, b.NextDuration)
	s.Equal(time.Duration(0), b.LastDuration)
}

func (s *backoffSuite) TestCancelledContext() {
	b := NewExponential(time.Minute, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	s.Equal(context.Canceled, b.Backoff(ctx))
}
