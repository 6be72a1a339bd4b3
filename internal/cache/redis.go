package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/roombooking/config"
	"github.com/Domenick1991/roombooking/internal/domain"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseLock deletes the lock only while it still holds the caller's token.
var releaseLock = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type RedisCache struct {
	client  *redis.Client
	roomTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, roomTTL time.Duration) *RedisCache {
	return newRedisCache(redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}), roomTTL)
}

func newRedisCache(client *redis.Client, roomTTL time.Duration) *RedisCache {
	return &RedisCache{client: client, roomTTL: roomTTL}
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

// GetRoom returns (nil, nil) on a cache miss.
func (c *RedisCache) GetRoom(ctx context.Context, id int64) (*domain.Room, error) {
	data, err := c.client.Get(ctx, roomKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var room domain.Room
	if err := json.Unmarshal(data, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

func (c *RedisCache) SetRoom(ctx context.Context, room *domain.Room) error {
	payload, err := json.Marshal(room)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, roomKey(room.ID), payload, c.roomTTL).Err()
}

// AcquireRoomLock serializes occupancy checks and writes against one room. On success
// it returns the holder token that ReleaseRoomLock needs.
func (c *RedisCache) AcquireRoomLock(ctx context.Context, roomID int64, ttl time.Duration) (string, bool, error) {
	token := uuid.NewString()
	ok, err := c.client.SetNX(ctx, roomLockKey(roomID), token, ttl).Result()
	if err != nil || !ok {
		return "", false, err
	}
	return token, true, nil
}

// ReleaseRoomLock is a no-op when the lock expired and another holder took it.
func (c *RedisCache) ReleaseRoomLock(ctx context.Context, roomID int64, token string) error {
	return releaseLock.Run(ctx, c.client, []string{roomLockKey(roomID)}, token).Err()
}

func roomKey(id int64) string {
	return fmt.Sprintf("cache:room:%d", id)
}

func roomLockKey(roomID int64) string {
	return fmt.Sprintf("lock:room:%d", roomID)
}
