package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"ai-lab/backend/internal/model"

	"github.com/redis/go-redis/v9"
)

// maxTxRetries bounds optimistic-lock retries when a watched key changes
// between WATCH and EXEC.
const maxTxRetries = 5

const chatsIndexKey = "chats"

type redisChatRepository struct {
	rdb *redis.Client
}

// NewRedisChatRepository stores each chat and entry as a hash. Chats are
// indexed in a sorted set scored by creation time; each chat's entries are
// indexed in a sorted set scored by a per-chat insertion counter.
func NewRedisChatRepository(rdb *redis.Client) ChatRepository {
	return &redisChatRepository{rdb: rdb}
}

// Key Generation Helpers
func (r *redisChatRepository) chatKey(chatID string) string    { return fmt.Sprintf("chat:%s", chatID) }
func (r *redisChatRepository) entriesKey(chatID string) string { return fmt.Sprintf("chat:%s:entries", chatID) }
func (r *redisChatRepository) seqKey(chatID string) string     { return fmt.Sprintf("chat:%s:seq", chatID) }
func (r *redisChatRepository) entryKey(entryID string) string  { return fmt.Sprintf("entry:%s", entryID) }

// --- Chat Operations ---
func (r *redisChatRepository) CreateChat(ctx context.Context, chat *model.Chat) error {
	chatMap, err := structToMap(chat)
	if err != nil {
		return fmt.Errorf("could not convert chat to map: %w", err)
	}
	pipe := r.rdb.TxPipeline()
	pipe.HSet(ctx, r.chatKey(chat.ID), chatMap)
	pipe.ZAdd(ctx, chatsIndexKey, redis.Z{Score: float64(chat.CreatedAt.UnixMicro()), Member: chat.ID})
	_, err = pipe.Exec(ctx)
	return err
}

func (r *redisChatRepository) GetChat(ctx context.Context, chatID string) (*model.Chat, error) {
	chatMap, err := r.rdb.HGetAll(ctx, r.chatKey(chatID)).Result()
	if err != nil {
		return nil, err
	}
	if len(chatMap) == 0 {
		return nil, ErrNotFound
	}
	var chat model.Chat
	if err := mapToStruct(chatMap, &chat); err != nil {
		return nil, fmt.Errorf("could not decode chat %s: %w", chatID, err)
	}
	return &chat, nil
}

func (r *redisChatRepository) ListChats(ctx context.Context) ([]model.Chat, error) {
	chatIDs, err := r.rdb.ZRevRange(ctx, chatsIndexKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	keys := make([]string, len(chatIDs))
	for i, id := range chatIDs {
		keys[i] = r.chatKey(id)
	}
	maps, err := r.hgetAll(ctx, keys)
	if err != nil {
		return nil, err
	}

	chats := make([]model.Chat, 0, len(maps))
	for _, m := range maps {
		var chat model.Chat
		if err := mapToStruct(m, &chat); err == nil {
			chats = append(chats, chat)
		}
	}
	return chats, nil
}

func (r *redisChatRepository) SearchChats(ctx context.Context, titleFragment string) ([]model.Chat, error) {
	chats, err := r.ListChats(ctx)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(titleFragment)
	matched := []model.Chat{}
	for _, c := range chats {
		if strings.Contains(strings.ToLower(c.Title), needle) {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

// ListChatsCreatedBetween returns chats created in [start, end], oldest first.
func (r *redisChatRepository) ListChatsCreatedBetween(ctx context.Context, start, end time.Time) ([]model.Chat, error) {
	chatIDs, err := r.rdb.ZRangeByScore(ctx, chatsIndexKey, &redis.ZRangeBy{
		Min: strconv.FormatInt(start.UnixMicro(), 10),
		Max: strconv.FormatInt(end.UnixMicro(), 10),
	}).Result()
	if err != nil {
		return nil, err
	}
	keys := make([]string, len(chatIDs))
	for i, id := range chatIDs {
		keys[i] = r.chatKey(id)
	}
	maps, err := r.hgetAll(ctx, keys)
	if err != nil {
		return nil, err
	}

	chats := make([]model.Chat, 0, len(maps))
	for _, m := range maps {
		var chat model.Chat
		if err := mapToStruct(m, &chat); err == nil {
			chats = append(chats, chat)
		}
	}
	return chats, nil
}

func (r *redisChatRepository) UpdateChatTitle(ctx context.Context, chatID, title string) error {
	key := r.chatKey(chatID)
	return r.watch(ctx, func(tx *redis.Tx) error {
		if err := requireKey(ctx, tx, key); err != nil {
			return err
		}
		_, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, "title", title)
			return nil
		})
		return err
	}, key)
}

func (r *redisChatRepository) DeleteChat(ctx context.Context, chatID string) error {
	chatKey, entriesKey := r.chatKey(chatID), r.entriesKey(chatID)
	err := r.watch(ctx, func(tx *redis.Tx) error {
		entryIDs, err := tx.ZRange(ctx, entriesKey, 0, -1).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return fmt.Errorf("could not get entry IDs for deletion: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			for _, id := range entryIDs {
				pipe.Del(ctx, r.entryKey(id))
			}
			pipe.Del(ctx, chatKey, entriesKey, r.seqKey(chatID))
			pipe.ZRem(ctx, chatsIndexKey, chatID)
			return nil
		})
		return err
	}, chatKey, entriesKey)
	if err != nil {
		return fmt.Errorf("failed to execute chat deletion transaction: %w", err)
	}
	return nil
}

func (r *redisChatRepository) CountChats(ctx context.Context) (int64, error) {
	return r.rdb.ZCard(ctx, chatsIndexKey).Result()
}

// --- Entry Operations ---
func (r *redisChatRepository) AppendEntry(ctx context.Context, entry *model.Entry) error {
	entryMap, err := structToMap(entry)
	if err != nil {
		return fmt.Errorf("could not convert entry to map: %w", err)
	}
	chatKey, seqKey := r.chatKey(entry.ChatID), r.seqKey(entry.ChatID)
	// The sequence is read under WATCH and written inside MULTI, so a
	// concurrent delete aborts the whole append.
	return r.watch(ctx, func(tx *redis.Tx) error {
		if err := requireKey(ctx, tx, chatKey); err != nil {
			return err
		}
		seq, err := tx.Get(ctx, seqKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return fmt.Errorf("could not read entry sequence: %w", err)
		}
		seq++
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, seqKey, seq, 0)
			pipe.HSet(ctx, r.entryKey(entry.ID), entryMap)
			pipe.ZAdd(ctx, r.entriesKey(entry.ChatID), redis.Z{Score: float64(seq), Member: entry.ID})
			return nil
		})
		return err
	}, chatKey, seqKey)
}

func (r *redisChatRepository) ListEntries(ctx context.Context, chatID string) ([]model.Entry, error) {
	if err := requireKey(ctx, r.rdb, r.chatKey(chatID)); err != nil {
		return nil, err
	}
	entryIDs, err := r.rdb.ZRange(ctx, r.entriesKey(chatID), 0, -1).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}
	keys := make([]string, len(entryIDs))
	for i, id := range entryIDs {
		keys[i] = r.entryKey(id)
	}
	maps, err := r.hgetAll(ctx, keys)
	if err != nil {
		return nil, err
	}

	entries := make([]model.Entry, 0, len(maps))
	for _, m := range maps {
		var e model.Entry
		if err := mapToStruct(m, &e); err == nil {
			entries = append(entries, e)
		}
	}
	// Entries arrive in insertion order; a stable sort keeps it for equal timestamps.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})
	return entries, nil
}

func (r *redisChatRepository) ListEntriesByRole(ctx context.Context, chatID string, role model.Role) ([]model.Entry, error) {
	entries, err := r.ListEntries(ctx, chatID)
	if err != nil {
		return nil, err
	}
	filtered := []model.Entry{}
	for _, e := range entries {
		if e.Role == role {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

// SearchEntries matches content case-insensitively across every chat.
func (r *redisChatRepository) SearchEntries(ctx context.Context, keyword string) ([]model.Entry, error) {
	needle := strings.ToLower(keyword)
	return r.filterAllEntries(ctx, func(e model.Entry) bool {
		return strings.Contains(strings.ToLower(e.Content), needle)
	})
}

func (r *redisChatRepository) FindEntriesByRole(ctx context.Context, role model.Role) ([]model.Entry, error) {
	return r.filterAllEntries(ctx, func(e model.Entry) bool { return e.Role == role })
}

// filterAllEntries walks every chat oldest first and keeps matching entries.
func (r *redisChatRepository) filterAllEntries(ctx context.Context, keep func(model.Entry) bool) ([]model.Entry, error) {
	chatIDs, err := r.rdb.ZRange(ctx, chatsIndexKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	matched := []model.Entry{}
	for _, chatID := range chatIDs {
		entries, err := r.ListEntries(ctx, chatID)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if keep(e) {
				matched = append(matched, e)
			}
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})
	return matched, nil
}

func (r *redisChatRepository) DeleteEntries(ctx context.Context, chatID string) error {
	entriesKey := r.entriesKey(chatID)
	return r.watch(ctx, func(tx *redis.Tx) error {
		entryIDs, err := tx.ZRange(ctx, entriesKey, 0, -1).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if len(entryIDs) == 0 {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			for _, id := range entryIDs {
				pipe.Del(ctx, r.entryKey(id))
			}
			pipe.Del(ctx, entriesKey)
			return nil
		})
		return err
	}, entriesKey)
}

// DeleteEntry only removes the entry when it belongs to chatID.
func (r *redisChatRepository) DeleteEntry(ctx context.Context, chatID, entryID string) error {
	key := r.entryKey(entryID)
	return r.watch(ctx, func(tx *redis.Tx) error {
		owner, err := tx.HGet(ctx, key, "chat_id").Result()
		if errors.Is(err, redis.Nil) {
			return nil
		}
		if err != nil {
			return err
		}
		if owner != chatID {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.ZRem(ctx, r.entriesKey(chatID), entryID)
			pipe.Del(ctx, key)
			return nil
		})
		return err
	}, key)
}

func (r *redisChatRepository) CountEntries(ctx context.Context, chatID string) (int64, error) {
	if err := requireKey(ctx, r.rdb, r.chatKey(chatID)); err != nil {
		return 0, err
	}
	return r.rdb.ZCard(ctx, r.entriesKey(chatID)).Result()
}

// --- Helper Functions ---

// watch runs fn under WATCH on keys, retrying when another client modified
// a watched key before EXEC.
func (r *redisChatRepository) watch(ctx context.Context, fn func(*redis.Tx) error, keys ...string) error {
	for attempt := 0; attempt < maxTxRetries; attempt++ {
		err := r.rdb.Watch(ctx, fn, keys...)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}
	return fmt.Errorf("transaction aborted after %d attempts: %w", maxTxRetries, redis.TxFailedErr)
}

func (r *redisChatRepository) hgetAll(ctx context.Context, keys []string) ([]map[string]string, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	cmds, err := r.rdb.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, k := range keys {
			pipe.HGetAll(ctx, k)
		}
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}
	maps := make([]map[string]string, 0, len(cmds))
	for _, cmd := range cmds {
		m, err := cmd.(*redis.MapStringStringCmd).Result()
		if err != nil || len(m) == 0 {
			continue
		}
		maps = append(maps, m)
	}
	return maps, nil
}

type keyChecker interface {
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
}

func requireKey(ctx context.Context, c keyChecker, key string) error {
	n, err := c.Exists(ctx, key).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func structToMap(obj interface{}) (map[string]interface{}, error) {
	data, err := json.Marshal(obj)
	if err != nil {
		return nil, err
	}
	var mapData map[string]interface{}
	return mapData, json.Unmarshal(data, &mapData)
}

func mapToStruct(data map[string]string, obj interface{}) error {
	jsonStr, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(jsonStr, obj)
}
