// Package redis keeps per-conversation unread counters. A counter is the
// number of messages stored for a receiver since they last opened that
// conversation, so delivery increments and opening deletes.
package redis

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/go-redis/redis/v8"

	"github.com/skillsprout/marketplace-service/internal/config"
)

type UnreadStore struct {
	client *redis.Client
}

func New(cfg *config.Config) *UnreadStore {
	client := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("error connect redis: ", err)
	}

	return &UnreadStore{
		client: client,
	}
}

func (s *UnreadStore) Close() {
	_ = s.client.Close()
}

func unreadKey(userID, counterpartID string) string {
	return fmt.Sprintf("unread:%s:%s", userID, counterpartID)
}

func (s *UnreadStore) Increment(ctx context.Context, userID, counterpartID string) error {
	if err := s.client.Incr(ctx, unreadKey(userID, counterpartID)).Err(); err != nil {
		return fmt.Errorf("failed to increment unread counter: %w", err)
	}

	return nil
}

func (s *UnreadStore) Reset(ctx context.Context, userID, counterpartID string) error {
	if err := s.client.Del(ctx, unreadKey(userID, counterpartID)).Err(); err != nil {
		return fmt.Errorf("failed to reset unread counter: %w", err)
	}

	return nil
}

// Counts returns the unread counter for every listed counterpart; missing
// keys read as zero.
func (s *UnreadStore) Counts(ctx context.Context, userID string, counterpartIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(counterpartIDs))
	if len(counterpartIDs) == 0 {
		return counts, nil
	}

	keys := make([]string, len(counterpartIDs))
	for i, counterpartID := range counterpartIDs {
		keys[i] = unreadKey(userID, counterpartID)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read unread counters: %w", err)
	}

	for i, value := range values {
		str, ok := value.(string)
		if !ok {
			counts[counterpartIDs[i]] = 0
			continue
		}

		count, err := strconv.ParseInt(str, 10, 64)
		if err != nil {
			count = 0
		}
		counts[counterpartIDs[i]] = count
	}

	return counts, nil
}
