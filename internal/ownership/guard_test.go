package ownership

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"

	"lnr.org/internal/names"
)

type recordFunc func(ctx context.Context, domain names.Domain) (Record, error)

func (f recordFunc) Resolve(ctx context.Context, domain names.Domain) (Record, error) {
	return f(ctx, domain)
}

type GuardSuite struct {
	suite.Suite
	ctx    context.Context
	domain names.Domain
	record Record
	err    error
	guard  *Guard
}

func TestGuardSuite(t *testing.T) {
	suite.Run(t, new(GuardSuite))
}

func (s *GuardSuite) SetupTest() {
	s.ctx = context.Background()
	s.domain = names.MustDomain("test.og")
	s.record = absent()
	s.err = nil
	s.guard = NewGuard(recordFunc(func(context.Context, names.Domain) (Record, error) {
		return s.record, s.err
	}))
}

func (s *GuardSuite) TestRequireUnwrappedOwnership() {
	s.Run("permits the direct owner", func() {
		s.record = direct(alice)
		v, err := s.guard.RequireUnwrappedOwnership(s.ctx, s.domain, alice)
		s.Require().NoError(err)
		s.True(v.Permitted)
		s.Equal(alice, v.Owner)
		s.Equal(ReasonNone, v.Reason)
		s.Nil(v.UnderlyingOwner)
		s.NoError(v.Err())
	})

	s.Run("denies another address", func() {
		s.record = direct(alice)
		v, err := s.guard.RequireUnwrappedOwnership(s.ctx, s.domain, bob)
		s.Require().NoError(err)
		s.False(v.Permitted)
		s.Equal(ReasonNotOwner, v.Reason)
		s.ErrorIs(v.Err(), ErrNotOwner)
	})

	s.Run("denies an unregistered name", func() {
		s.record = absent()
		v, err := s.guard.RequireUnwrappedOwnership(s.ctx, s.domain, common.Address{})
		s.Require().NoError(err)
		s.False(v.Permitted)
		s.Equal(ReasonNotOwner, v.Reason)
	})

	s.Run("denies the wrapped holder and reports it", func() {
		s.record = indirected(alice, big.NewInt(3))
		v, err := s.guard.RequireUnwrappedOwnership(s.ctx, s.domain, alice)
		s.Require().NoError(err)
		s.False(v.Permitted)
		s.Equal(ReasonDomainIsWrapped, v.Reason)
		s.Require().NotNil(v.UnderlyingOwner)
		s.Equal(alice, *v.UnderlyingOwner)

		err = v.Err()
		s.ErrorIs(err, ErrDomainIsWrapped)
		s.NotErrorIs(err, ErrNotOwner)
		var denial *DenialError
		s.Require().ErrorAs(err, &denial)
		s.Equal(s.domain, denial.Domain)
		s.Contains(err.Error(), alice.Hex())
	})

	s.Run("denies a non-holder of a wrapped name as not owner", func() {
		s.record = indirected(alice, big.NewInt(3))
		v, err := s.guard.RequireUnwrappedOwnership(s.ctx, s.domain, bob)
		s.Require().NoError(err)
		s.Equal(ReasonNotOwner, v.Reason)
		s.Nil(v.UnderlyingOwner)
	})
}

func (s *GuardSuite) TestRequireHolderForWrappedOps() {
	s.Run("permits the token holder", func() {
		s.record = indirected(alice, big.NewInt(5))
		v, err := s.guard.RequireHolderForWrappedOps(s.ctx, s.domain, alice)
		s.Require().NoError(err)
		s.True(v.Permitted)
		s.Equal(0, v.Record.TokenID.Cmp(big.NewInt(5)))
	})

	s.Run("denies direct names as not wrapped", func() {
		s.record = direct(alice)
		v, err := s.guard.RequireHolderForWrappedOps(s.ctx, s.domain, alice)
		s.Require().NoError(err)
		s.Equal(ReasonDomainNotWrapped, v.Reason)
		s.ErrorIs(v.Err(), ErrDomainNotWrapped)
	})

	s.Run("denies other holders", func() {
		s.record = indirected(alice, big.NewInt(5))
		v, err := s.guard.RequireHolderForWrappedOps(s.ctx, s.domain, bob)
		s.Require().NoError(err)
		s.Equal(ReasonNotOwner, v.Reason)
	})

	s.Run("denies unregistered names", func() {
		s.record = absent()
		v, err := s.guard.RequireHolderForWrappedOps(s.ctx, s.domain, alice)
		s.Require().NoError(err)
		s.Equal(ReasonNotOwner, v.Reason)
	})
}

func (s *GuardSuite) TestPropagatesResolutionFailure() {
	s.err = &RemoteQueryError{Step: StepOwnerLookup, Domain: s.domain, Err: errors.New("timeout")}

	_, err := s.guard.RequireUnwrappedOwnership(s.ctx, s.domain, alice)
	s.ErrorIs(err, ErrRemoteQuery)

	_, err = s.guard.RequireHolderForWrappedOps(s.ctx, s.domain, alice)
	s.ErrorIs(err, ErrRemoteQuery)
}
