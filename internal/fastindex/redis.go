package fastindex

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/labelworks/annoqueue/internal/common"
)

// popFirstNonEmpty pops the head of the first nonempty key. Running it as a
// script makes the scan-and-pop a single indivisible step on the server.
var popFirstNonEmpty = redis.NewScript(`
for _, k in pairs(KEYS) do
  local m = redis.call('LPOP', k)
  if m then
    return {k, m}
  end
end
return nil
`)

// RedisIndex implements Index on Redis lists, one list per queue.
type RedisIndex struct {
	client *redis.Client
	logger *slog.Logger
}

// NewRedisIndex connects to Redis and verifies the connection.
func NewRedisIndex(ctx context.Context, cfg common.RedisConfig, logger *slog.Logger) (*RedisIndex, error) {
	if logger == nil {
		logger = slog.Default()
	}
	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis at %s: %w", cfg.Addr, err)
	}
	logger.Info("connected to fast index", "addr", cfg.Addr, "db", cfg.DB)
	return &RedisIndex{client: client, logger: logger}, nil
}

func (x *RedisIndex) Push(ctx context.Context, queueID int, dataIDs ...int) error {
	if len(dataIDs) == 0 {
		return nil
	}
	vals := make([]interface{}, len(dataIDs))
	for i, id := range dataIDs {
		vals[i] = DataValue(id)
	}
	return x.client.RPush(ctx, QueueKey(queueID), vals...).Err()
}

func (x *RedisIndex) PushFront(ctx context.Context, queueID int, dataID int) error {
	return x.client.LPush(ctx, QueueKey(queueID), DataValue(dataID)).Err()
}

func (x *RedisIndex) PopQueue(ctx context.Context, queueID int) (int, bool, error) {
	val, err := x.client.RPop(ctx, QueueKey(queueID)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	dataID, err := ParseDataValue(val)
	if err != nil {
		return 0, false, err
	}
	return dataID, true, nil
}

func (x *RedisIndex) PopFirstNonEmpty(ctx context.Context, queueIDs []int) (int, int, bool, error) {
	if len(queueIDs) == 0 {
		return 0, 0, false, nil
	}
	keys := make([]string, len(queueIDs))
	for i, id := range queueIDs {
		keys[i] = QueueKey(id)
	}

	res, err := popFirstNonEmpty.Run(ctx, x.client, keys).Result()
	if errors.Is(err, redis.Nil) {
		return 0, 0, false, nil
	}
	if err != nil {
		return 0, 0, false, err
	}

	pair, ok := res.([]interface{})
	if !ok || len(pair) != 2 {
		return 0, 0, false, fmt.Errorf("unexpected pop script reply %v: %w", res, common.ErrInternal)
	}
	queueID, err := ParseQueueKey(fmt.Sprint(pair[0]))
	if err != nil {
		return 0, 0, false, err
	}
	dataID, err := ParseDataValue(fmt.Sprint(pair[1]))
	if err != nil {
		return 0, 0, false, err
	}
	return queueID, dataID, true, nil
}

func (x *RedisIndex) Members(ctx context.Context, queueID int) ([]int, error) {
	vals, err := x.client.LRange(ctx, QueueKey(queueID), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	ids := make([]int, len(vals))
	for i, v := range vals {
		id, err := ParseDataValue(v)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}

func (x *RedisIndex) Clear(ctx context.Context) error {
	iter := x.client.Scan(ctx, 0, queueKeyPrefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return x.client.Del(ctx, keys...).Err()
}

func (x *RedisIndex) Close() error {
	return x.client.Close()
}
