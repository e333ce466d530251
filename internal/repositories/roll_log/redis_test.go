package rolllog_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/engine/dice"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-sheet/internal/redis"
	rolllog "github.com/KirkDiggler/rpg-sheet/internal/repositories/roll_log"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils"
)

const testSessionID = "session_1"

var rolledAt = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

type RedisRepositoryTestSuite struct {
	suite.Suite
	client  redisclient.Client
	mr      *miniredis.Miniredis
	cleanup func()
	ctx     context.Context
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.client, s.mr, s.cleanup = testutils.CreateTestRedis(s.T())
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) newRepo(ttl time.Duration, max int) rolllog.Repository {
	repo, err := rolllog.NewRedisRepository(&rolllog.Config{Client: s.client, TTL: ttl, MaxEntries: max})
	s.Require().NoError(err)
	return repo
}

func entry(id string, total int) *dice.Entry {
	return &dice.Entry{
		ID:       id,
		Kind:     dice.KindCustom,
		Dice:     []dice.DieResult{{Sides: 20, Value: total}},
		Total:    total,
		RolledAt: rolledAt,
	}
}

func (s *RedisRepositoryTestSuite) TestConfigValidation() {
	_, err := rolllog.NewRedisRepository(&rolllog.Config{})
	s.True(errors.IsInvalidArgument(err))

	_, err = rolllog.NewRedisRepository(&rolllog.Config{Client: s.client, MaxEntries: -1})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestAppendAndListNewestFirst() {
	repo := s.newRepo(0, 0)

	for i, id := range []string{"a", "b", "c"} {
		out, err := repo.Append(s.ctx, rolllog.AppendInput{SessionID: testSessionID, Entry: entry(id, i+1)})
		s.Require().NoError(err)
		s.Equal(i+1, out.Length)
	}

	list, err := repo.List(s.ctx, rolllog.ListInput{SessionID: testSessionID})
	s.Require().NoError(err)
	s.Require().Len(list.Entries, 3)
	s.Equal("c", list.Entries[0].ID)
	s.Equal("a", list.Entries[2].ID)
	s.Equal(*entry("c", 3), list.Entries[0])

	limited, err := repo.List(s.ctx, rolllog.ListInput{SessionID: testSessionID, Limit: 2})
	s.Require().NoError(err)
	s.Len(limited.Entries, 2)

	s.Equal(24*time.Hour, s.mr.TTL("roll_log:"+testSessionID))
}

func (s *RedisRepositoryTestSuite) TestAppendTrimsToMax() {
	repo := s.newRepo(time.Hour, 2)

	for _, id := range []string{"a", "b", "c"} {
		_, err := repo.Append(s.ctx, rolllog.AppendInput{SessionID: testSessionID, Entry: entry(id, 1)})
		s.Require().NoError(err)
	}

	list, err := repo.List(s.ctx, rolllog.ListInput{SessionID: testSessionID})
	s.Require().NoError(err)
	s.Require().Len(list.Entries, 2)
	s.Equal("c", list.Entries[0].ID)
	s.Equal("b", list.Entries[1].ID)
}

func (s *RedisRepositoryTestSuite) TestLogExpires() {
	repo := s.newRepo(time.Hour, 0)

	_, err := repo.Append(s.ctx, rolllog.AppendInput{SessionID: testSessionID, Entry: entry("a", 1)})
	s.Require().NoError(err)

	s.mr.FastForward(2 * time.Hour)

	list, err := repo.List(s.ctx, rolllog.ListInput{SessionID: testSessionID})
	s.Require().NoError(err)
	s.Empty(list.Entries)
}

func (s *RedisRepositoryTestSuite) TestClear() {
	repo := s.newRepo(0, 0)

	for _, id := range []string{"a", "b"} {
		_, err := repo.Append(s.ctx, rolllog.AppendInput{SessionID: testSessionID, Entry: entry(id, 1)})
		s.Require().NoError(err)
	}

	out, err := repo.Clear(s.ctx, rolllog.ClearInput{SessionID: testSessionID})
	s.Require().NoError(err)
	s.Equal(2, out.RollsDeleted)
	s.False(s.mr.Exists("roll_log:" + testSessionID))

	out, err = repo.Clear(s.ctx, rolllog.ClearInput{SessionID: testSessionID})
	s.Require().NoError(err)
	s.Equal(0, out.RollsDeleted)
}

func (s *RedisRepositoryTestSuite) TestRequiresSessionAndEntry() {
	repo := s.newRepo(0, 0)

	_, err := repo.Append(s.ctx, rolllog.AppendInput{Entry: entry("a", 1)})
	s.True(errors.IsInvalidArgument(err))

	_, err = repo.Append(s.ctx, rolllog.AppendInput{SessionID: testSessionID})
	s.True(errors.IsInvalidArgument(err))

	_, err = repo.List(s.ctx, rolllog.ListInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = repo.Clear(s.ctx, rolllog.ClearInput{})
	s.True(errors.IsInvalidArgument(err))
}
