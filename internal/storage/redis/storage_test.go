package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/kohlenschlagen/internal/model"
	"github.com/mcoot/kohlenschlagen/internal/storage"
	"github.com/mcoot/kohlenschlagen/internal/testutil"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())
	s.storage = s.newStorage(DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) newStorage(cfg Config) *Storage {
	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})
	return NewWithClient(client, cfg)
}

func (s *StorageSuite) TestLoadMissingKeyIsEmpty() {
	session, err := s.storage.LoadSession(s.ctx)
	s.Require().NoError(err)
	s.Empty(session.Teams)
	s.Nil(session.ActiveTeamID)
}

func (s *StorageSuite) TestSaveAndLoad() {
	original := testutil.SampleSession()
	s.Require().NoError(s.storage.SaveSession(s.ctx, original))

	loaded, err := s.storage.LoadSession(s.ctx)
	s.Require().NoError(err)
	s.Empty(cmp.Diff(original, loaded))
}

func (s *StorageSuite) TestStoresUnderStateKey() {
	s.Require().NoError(s.storage.SaveSession(s.ctx, model.NewSession()))

	raw, err := s.mini.Get(storage.StateKey)
	s.Require().NoError(err)
	s.JSONEq(`{"teams":[],"activeTeamId":null}`, raw)
	s.Zero(s.mini.TTL(storage.StateKey))
}

func (s *StorageSuite) TestKeyPrefixAndTTL() {
	cfg := DefaultConfig()
	cfg.KeyPrefix = "kohle"
	cfg.StateTTL = time.Hour
	prefixed := s.newStorage(cfg)
	defer func() { _ = prefixed.Close() }()

	s.Require().NoError(prefixed.SaveSession(s.ctx, testutil.SampleSession()))

	key := "kohle:" + storage.StateKey
	s.True(s.mini.Exists(key))
	s.False(s.mini.Exists(storage.StateKey))
	s.Equal(time.Hour, s.mini.TTL(key))

	s.mini.FastForward(2 * time.Hour)
	session, err := prefixed.LoadSession(s.ctx)
	s.Require().NoError(err)
	s.Empty(session.Teams)
}

func (s *StorageSuite) TestMalformedDocument() {
	s.Require().NoError(s.mini.Set(storage.StateKey, "definitely not json"))

	session, err := s.storage.LoadSession(s.ctx)
	s.ErrorIs(err, storage.ErrMalformedState)
	s.Require().NotNil(session)
	s.Empty(session.Teams)
}

func (s *StorageSuite) TestConnectionFailure() {
	s.mini.Close()

	_, err := s.storage.LoadSession(s.ctx)
	s.Error(err)
	s.NotErrorIs(err, storage.ErrMalformedState)
	s.mini = nil
}
