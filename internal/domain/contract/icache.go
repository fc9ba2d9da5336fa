package contract

import (
	"context"

	"github.com/stayhub-app/stayhub/internal/domain/entity"
)

// CachedRoomsPage is the cached payload for room list endpoints.
type CachedRoomsPage struct {
	Rooms []entity.Room `json:"rooms"`
	Total int64         `json:"total"`
}

// IRoomCache defines caching operations for rooms.
type IRoomCache interface {
	// Detail (by id)
	GetRoomByID(ctx context.Context, id string) (*entity.Room, bool, error)
	SetRoomByID(ctx context.Context, id string, room *entity.Room) error
	InvalidateRoomByID(ctx context.Context, id string) error

	// List pages (key built by usecase)
	GetRoomsPage(ctx context.Context, key string) (*CachedRoomsPage, bool, error)
	SetRoomsPage(ctx context.Context, key string, page *CachedRoomsPage) error
	InvalidateRoomLists(ctx context.Context) error
}
