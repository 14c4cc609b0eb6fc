package redissvc

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisService wraps the shared Redis client and the context it operates
// under. Only rate-limit offender tracking lives in Redis; catalog and cart
// state stay in memory.
type RedisService struct {
	rdb *redis.Client
	ctx context.Context
}

// Connect dials Redis at addr and verifies the connection.
func Connect(ctx context.Context, addr string) (*RedisService, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &RedisService{rdb: rdb, ctx: ctx}, nil
}

func (s *RedisService) Rdb() *redis.Client {
	return s.rdb
}

func (s *RedisService) Ctx() context.Context {
	return s.ctx
}

func (s *RedisService) Close() error {
	return s.rdb.Close()
}
