package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/stayhub-app/stayhub/internal/domain/contract"
	"github.com/stayhub-app/stayhub/internal/domain/entity"
)

// RoomCacheStore is a Redis-backed implementation of contract.IRoomCache.
type RoomCacheStore struct {
	rdb       *redis.Client
	detailTTL time.Duration
	listTTL   time.Duration
}

func NewRoomCacheStore(rdb *redis.Client) *RoomCacheStore {
	return &RoomCacheStore{
		rdb:       rdb,
		detailTTL: 60 * time.Minute,
		listTTL:   30 * time.Minute,
	}
}

var _ contract.IRoomCache = (*RoomCacheStore)(nil)

func roomDetailKey(id string) string { return fmt.Sprintf("room:id:%s", id) }

func (c *RoomCacheStore) GetRoomByID(ctx context.Context, id string) (*entity.Room, bool, error) {
	b, err := c.rdb.Get(ctx, roomDetailKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var room entity.Room
	if err := json.Unmarshal(b, &room); err != nil {
		return nil, false, nil
	}
	return &room, true, nil
}

func (c *RoomCacheStore) SetRoomByID(ctx context.Context, id string, room *entity.Room) error {
	data, err := json.Marshal(room)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, roomDetailKey(id), data, c.detailTTL).Err()
}

func (c *RoomCacheStore) InvalidateRoomByID(ctx context.Context, id string) error {
	return c.rdb.Del(ctx, roomDetailKey(id)).Err()
}

func (c *RoomCacheStore) GetRoomsPage(ctx context.Context, key string) (*contract.CachedRoomsPage, bool, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var page contract.CachedRoomsPage
	if err := json.Unmarshal(b, &page); err != nil {
		return nil, false, nil
	}
	return &page, true, nil
}

func (c *RoomCacheStore) SetRoomsPage(ctx context.Context, key string, page *contract.CachedRoomsPage) error {
	data, err := json.Marshal(page)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, data, c.listTTL).Err()
}

func (c *RoomCacheStore) InvalidateRoomLists(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, "rooms:list:*", 1000).Iterator()
	pipe := c.rdb.Pipeline()
	n := 0
	for iter.Next(ctx) {
		pipe.Del(ctx, iter.Val())
		n++
		if n%200 == 0 {
			if _, err := pipe.Exec(ctx); err != nil {
				return err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}
	_, _ = pipe.Exec(ctx)
	return nil
}
