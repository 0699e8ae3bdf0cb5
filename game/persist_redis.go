package game

import (
	"context"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
)

const redisKeyPrefix = "craps:table:"

type RedisTableStateTracker struct {
	rdclient *redis.Client
}

func NewRedisTableStateTracker(redisURL string, redisPW string, redisDB int) *RedisTableStateTracker {
	rdclient := redis.NewClient(&redis.Options{
		Addr:     redisURL,
		Password: redisPW,
		DB:       redisDB,
	})
	return &RedisTableStateTracker{
		rdclient: rdclient,
	}
}

// Ping verifies the connection to the redis server.
func (r *RedisTableStateTracker) Ping(ctx context.Context) error {
	return errors.Wrap(r.rdclient.Ping(ctx).Err(), "Unable to reach redis")
}

func (r *RedisTableStateTracker) Load(tableCode string) (*TableSnapshot, error) {
	data, err := r.rdclient.Get(context.Background(), redisKeyPrefix+tableCode).Bytes()
	if err == redis.Nil {
		return nil, errors.Wrapf(ErrSnapshotNotFound, "Table state for key: %s", tableCode)
	} else if err != nil {
		return nil, errors.Wrapf(err, "Unable to load table state for key: %s", tableCode)
	}
	return DecodeSnapshot(data)
}

func (r *RedisTableStateTracker) Save(tableCode string, state *TableSnapshot) error {
	data, err := EncodeSnapshot(state)
	if err != nil {
		return err
	}
	err = r.rdclient.Set(context.Background(), redisKeyPrefix+tableCode, data, 0).Err()
	return errors.Wrapf(err, "Unable to save table state for key: %s", tableCode)
}

func (r *RedisTableStateTracker) Remove(tableCode string) error {
	err := r.rdclient.Del(context.Background(), redisKeyPrefix+tableCode).Err()
	return errors.Wrapf(err, "Unable to remove table state for key: %s", tableCode)
}

func (r *RedisTableStateTracker) Close() error {
	return r.rdclient.Close()
}
