package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/foodipy/foodipy/config"
)

// redisDriver keeps each collection as one Redis string. Values never
// expire: the store is the system of record, not a cache.
type redisDriver struct {
	rdb *redis.Client
	ctx context.Context
}

func newRedisDriver() (Driver, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr(),
		Password: config.RedisPassword(),
		DB:       0,
	})

	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("store/redis: ping: %w", err)
	}

	return &redisDriver{rdb: rdb, ctx: ctx}, nil
}

func (d *redisDriver) Get(key string) ([]byte, error) {
	raw, err := d.rdb.Get(d.ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoRecord
	}
	if err != nil {
		return nil, fmt.Errorf("store/redis: get %s: %w", key, err)
	}
	return raw, nil
}

func (d *redisDriver) Put(key string, value []byte) error {
	if err := d.rdb.Set(d.ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("store/redis: put %s: %w", key, err)
	}
	return nil
}

func (d *redisDriver) Delete(key string) error {
	if err := d.rdb.Del(d.ctx, key).Err(); err != nil {
		return fmt.Errorf("store/redis: delete %s: %w", key, err)
	}
	return nil
}

func (d *redisDriver) Close() error {
	return d.rdb.Close()
}
