package repository_test

import (
	"context"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-lab/backend/internal/model"
	"ai-lab/backend/internal/repository"
)

func newTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb, mr
}

func TestRedisChatRepository(t *testing.T) {
	chatRepositoryContract(t, func(t *testing.T) repository.ChatRepository {
		rdb, _ := newTestRedis(t)
		return repository.NewRedisChatRepository(rdb)
	})
}

func TestRedisChatRepository_DeleteChatRemovesAllKeys(t *testing.T) {
	ctx := context.Background()
	rdb, mr := newTestRedis(t)
	repo := repository.NewRedisChatRepository(rdb)

	chat := model.NewChat("keys")
	require.NoError(t, repo.CreateChat(ctx, chat))
	entry := model.NewEntry(chat.ID, model.RoleUser, "hello")
	require.NoError(t, repo.AppendEntry(ctx, entry))
	require.True(t, mr.Exists("entry:"+entry.ID))

	require.NoError(t, repo.DeleteChat(ctx, chat.ID))

	assert.False(t, mr.Exists("chat:"+chat.ID))
	assert.False(t, mr.Exists("chat:"+chat.ID+":entries"))
	assert.False(t, mr.Exists("chat:"+chat.ID+":seq"))
	assert.False(t, mr.Exists("entry:"+entry.ID))
}

// deleteOnRead deletes a chat through a second client the first time the
// watched key is read, simulating a concurrent DeleteChat.
type deleteOnRead struct {
	key    string
	delete func()
	once   sync.Once
}

func (h *deleteOnRead) DialHook(next redis.DialHook) redis.DialHook { return next }

func (h *deleteOnRead) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return next
}

func (h *deleteOnRead) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		err := next(ctx, cmd)
		args := cmd.Args()
		if cmd.Name() == "get" && len(args) > 1 && args[1] == h.key {
			h.once.Do(h.delete)
		}
		return err
	}
}

func TestRedisChatRepository_AppendRacingDeleteLeavesNoKeys(t *testing.T) {
	ctx := context.Background()
	rdb, mr := newTestRedis(t)
	repo := repository.NewRedisChatRepository(rdb)

	chat := model.NewChat("racing")
	require.NoError(t, repo.CreateChat(ctx, chat))

	other := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = other.Close() })
	rdb.AddHook(&deleteOnRead{
		key: "chat:" + chat.ID + ":seq",
		delete: func() {
			assert.NoError(t, repository.NewRedisChatRepository(other).DeleteChat(ctx, chat.ID))
		},
	})

	entry := model.NewEntry(chat.ID, model.RoleUser, "hello")
	err := repo.AppendEntry(ctx, entry)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.False(t, mr.Exists("chat:"+chat.ID))
	assert.False(t, mr.Exists("chat:"+chat.ID+":seq"))
	assert.False(t, mr.Exists("chat:"+chat.ID+":entries"))
	assert.False(t, mr.Exists("entry:"+entry.ID))
}

func TestRedisChatRepository_SequenceOrdersEntries(t *testing.T) {
	ctx := context.Background()
	rdb, mr := newTestRedis(t)
	repo := repository.NewRedisChatRepository(rdb)

	chat := model.NewChat("seq")
	require.NoError(t, repo.CreateChat(ctx, chat))
	for _, c := range []string{"a", "b", "c"} {
		require.NoError(t, repo.AppendEntry(ctx, model.NewEntry(chat.ID, model.RoleUser, c)))
	}

	seq, err := mr.Get("chat:" + chat.ID + ":seq")
	require.NoError(t, err)
	assert.Equal(t, "3", seq)
}
