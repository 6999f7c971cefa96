package flash

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	keyPrefix = "flash:"
	ttl       = 10 * time.Minute
)

func key(flashID string) string {
	return keyPrefix + flashID
}

// Store holds one-shot notices between a redirect and the next
// rendered page, keyed by the caller's flash cookie.
type Store struct {
	rdb    *redis.Client
	logger *zap.Logger
}

func NewStore(rdb *redis.Client, logger ...*zap.Logger) *Store {
	l := zap.L().Named("flash.store")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("flash.store")
	}
	return &Store{rdb: rdb, logger: l}
}

// Push queues a message for the next render. Flash is best-effort:
// a redis failure is logged and swallowed so it never fails a request.
func (s *Store) Push(ctx context.Context, flashID, message string) {
	if s.rdb == nil || flashID == "" {
		return
	}
	pipe := s.rdb.TxPipeline()
	pipe.RPush(ctx, key(flashID), message)
	pipe.Expire(ctx, key(flashID), ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		s.logger.Warn("flash push failed", zap.String("flash_id", flashID), zap.Error(err))
	}
}

// Pop drains and clears all pending messages, oldest first.
func (s *Store) Pop(ctx context.Context, flashID string) []string {
	if s.rdb == nil || flashID == "" {
		return nil
	}
	msgs, err := s.rdb.LRange(ctx, key(flashID), 0, -1).Result()
	if err != nil {
		s.logger.Warn("flash pop failed", zap.String("flash_id", flashID), zap.Error(err))
		return nil
	}
	if len(msgs) == 0 {
		return nil
	}
	if err := s.rdb.Del(ctx, key(flashID)).Err(); err != nil {
		s.logger.Warn("flash clear failed", zap.String("flash_id", flashID), zap.Error(err))
	}
	return msgs
}
