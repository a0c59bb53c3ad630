package identity

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/scoreboard/internal/backend"
	"github.com/mcoot/scoreboard/internal/model"
	"github.com/mcoot/scoreboard/internal/storage/memory"
	"github.com/mcoot/scoreboard/internal/testutil"
)

type ResolverSuite struct {
	suite.Suite
	storage  *memory.Storage
	resolver *Resolver
	ctx      context.Context
}

func TestResolverSuite(t *testing.T) {
	suite.Run(t, new(ResolverSuite))
}

func (s *ResolverSuite) SetupTest() {
	s.storage = memory.New()
	s.resolver = New(backend.Static{H: &backend.Handles{Store: s.storage}}, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ResolverSuite) TestEmailReturnedTrimmedWithoutReads() {
	for _, id := range []string{"a@x.com", "  b@y.org ", "@", "not-really@"} {
		email, err := s.resolver.ResolveIdentifierToEmail(s.ctx, id)
		s.Require().NoError(err)
		s.Equal(strings.TrimSpace(id), email)
	}
	s.Equal(int64(0), s.storage.Reads())
}

func (s *ResolverSuite) TestEmailPathNeedsNoBackend() {
	resolver := New(backend.Static{}, testutil.NopLogger())

	email, err := resolver.ResolveIdentifierToEmail(s.ctx, "a@x.com")
	s.Require().NoError(err)
	s.Equal("a@x.com", email)
}

func (s *ResolverSuite) TestUsernameWithEmail() {
	_ = s.storage.SaveUsername(s.ctx, "alice", &model.UsernameRecord{Email: "a@x.com"})

	email, err := s.resolver.ResolveIdentifierToEmail(s.ctx, "  Alice ")
	s.Require().NoError(err)
	s.Equal("a@x.com", email)
	s.Equal(int64(1), s.storage.Reads())
}

func (s *ResolverSuite) TestUsernameFallsBackToUserRecord() {
	_ = s.storage.SaveUsername(s.ctx, "bob", &model.UsernameRecord{UserID: "u1"})
	_ = s.storage.SaveUser(s.ctx, "u1", &model.UserRecord{Email: "b@x.com"})

	email, err := s.resolver.ResolveIdentifierToEmail(s.ctx, "bob")
	s.Require().NoError(err)
	s.Equal("b@x.com", email)
	s.Equal(int64(2), s.storage.Reads())
}

func (s *ResolverSuite) TestUnknownUsername() {
	_, err := s.resolver.ResolveIdentifierToEmail(s.ctx, " Ghost ")

	var nf *model.NotFoundError
	s.Require().ErrorAs(err, &nf)
	s.Equal(" Ghost ", nf.Identifier)
	s.ErrorIs(err, model.ErrUsernameNotFound)
	s.ErrorIs(err, model.ErrNotFound)
	s.Contains(err.Error(), "Ghost")
}

func (s *ResolverSuite) TestRecordWithoutEmailOrUserID() {
	_ = s.storage.SaveUsername(s.ctx, "carol", &model.UsernameRecord{})

	_, err := s.resolver.ResolveIdentifierToEmail(s.ctx, "carol")

	s.ErrorIs(err, model.ErrNoAssociatedEmail)
	s.ErrorIs(err, model.ErrNotFound)
	s.Contains(err.Error(), "no associated email")
}

func (s *ResolverSuite) TestUserRecordWithoutEmail() {
	_ = s.storage.SaveUsername(s.ctx, "dave", &model.UsernameRecord{UserID: "u2"})
	_ = s.storage.SaveUser(s.ctx, "u2", &model.UserRecord{Username: "dave"})

	_, err := s.resolver.ResolveIdentifierToEmail(s.ctx, "dave")
	s.ErrorIs(err, model.ErrNoAssociatedEmail)
}

func (s *ResolverSuite) TestMissingUserRecord() {
	_ = s.storage.SaveUsername(s.ctx, "erin", &model.UsernameRecord{UserID: "gone"})

	_, err := s.resolver.ResolveIdentifierToEmail(s.ctx, "erin")
	s.ErrorIs(err, model.ErrNoAssociatedEmail)
}

func (s *ResolverSuite) TestEmptyIdentifier() {
	for _, id := range []string{"", "   "} {
		_, err := s.resolver.ResolveIdentifierToEmail(s.ctx, id)
		s.ErrorIs(err, model.ErrInvalidIdentifier)
	}
	s.Equal(int64(0), s.storage.Reads())
}

func (s *ResolverSuite) TestStoreFailureIsQueryError() {
	s.storage.FailReads(errors.New("unavailable"))

	_, err := s.resolver.ResolveIdentifierToEmail(s.ctx, "alice")

	var qe *model.QueryError
	s.ErrorAs(err, &qe)
	s.NotErrorIs(err, model.ErrNotFound)
}

func (s *ResolverSuite) TestMissingStoreHandle() {
	resolver := New(backend.Static{H: &backend.Handles{}}, testutil.NopLogger())

	_, err := resolver.ResolveIdentifierToEmail(s.ctx, "alice")

	var ce *model.ConfigError
	s.Require().ErrorAs(err, &ce)
	s.Equal("store", ce.Handle)
}
