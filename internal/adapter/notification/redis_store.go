package notification

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"mechmarket/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// Key layout:
//   notify:seq:{user_id}   -> counter assigning per-user sequence numbers
//   notify:feed:{user_id}  -> zset of event ids scored by sequence
//   notify:seen:{user_id}  -> seen watermark (highest acknowledged sequence)
const (
	keySeq  = "notify:seq:%s"
	keyFeed = "notify:feed:%s"
	keySeen = "notify:seen:%s"
)

// Feed entries older than this stop counting; the feed is a badge source,
// not an archive.
var feedTTL = 30 * 24 * time.Hour

// markSeenScript advances the watermark to the event's sequence, but never
// backwards. Racing MarkSeen/Append calls therefore merge: the count only
// reflects sequences above the highest watermark any caller has set.
var markSeenScript = redis.NewScript(`
local seq = redis.call("ZSCORE", KEYS[1], ARGV[1])
if not seq then
  return 0
end
local seen = tonumber(redis.call("GET", KEYS[2]) or "0")
local s = tonumber(seq)
if s > seen then
  redis.call("SET", KEYS[2], s)
end
return 1
`)

// RedisStore keeps the per-user unread feed in redis.

type RedisStore struct {
	rdb *redis.Client
}

var _ interfaces.INotificationStore = (*RedisStore)(nil)

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func New(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}

// Append adds one event to the user's feed and returns its sequence. A
// redelivered event id keeps its original sequence (ZADD NX), so consumer
// retries never inflate the count.
func (s *RedisStore) Append(ctx context.Context, userID string, rec interfaces.NotificationRecord) (int64, error) {
	seq, err := s.rdb.Incr(ctx, fmt.Sprintf(keySeq, userID)).Result()
	if err != nil {
		return 0, err
	}

	feedKey := fmt.Sprintf(keyFeed, userID)
	added, err := s.rdb.ZAddNX(ctx, feedKey, redis.Z{
		Score:  float64(seq),
		Member: rec.EventID,
	}).Result()
	if err != nil {
		return 0, err
	}
	if added == 0 {
		// Redelivery: report the sequence the event already has.
		existing, err := s.rdb.ZScore(ctx, feedKey, rec.EventID).Result()
		if err != nil {
			return 0, err
		}
		return int64(existing), nil
	}
	s.rdb.Expire(ctx, feedKey, feedTTL)
	return seq, nil
}

func (s *RedisStore) UnreadCount(ctx context.Context, userID string) (int64, error) {
	seen, err := s.Watermark(ctx, userID)
	if err != nil {
		return 0, err
	}
	return s.rdb.ZCount(ctx,
		fmt.Sprintf(keyFeed, userID),
		"("+strconv.FormatInt(seen, 10),
		"+inf",
	).Result()
}

func (s *RedisStore) MarkSeen(ctx context.Context, userID, eventID string) error {
	keys := []string{fmt.Sprintf(keyFeed, userID), fmt.Sprintf(keySeen, userID)}
	return markSeenScript.Run(ctx, s.rdb, keys, eventID).Err()
}

func (s *RedisStore) Watermark(ctx context.Context, userID string) (int64, error) {
	v, err := s.rdb.Get(ctx, fmt.Sprintf(keySeen, userID)).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(v, 10, 64)
}
