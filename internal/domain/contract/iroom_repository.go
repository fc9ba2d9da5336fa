package contract

import (
	"context"

	"github.com/stayhub-app/stayhub/internal/domain/entity"
)

// RoomFilterOptions narrows a room listing. Keyword matches name or
// description case-insensitively; NumOfBeds and Category are exact matches
// when set.
type RoomFilterOptions struct {
	Keyword   string
	NumOfBeds *int
	Category  *entity.RoomCategory
	Page      int
	PageSize  int
}

type IRoomRepository interface {
	CreateRoom(ctx context.Context, room *entity.Room) error
	GetRoomByID(ctx context.Context, id string) (*entity.Room, error)
	// ListRooms returns one page of rooms matching opts plus the total count
	// under the same filter.
	ListRooms(ctx context.Context, opts *RoomFilterOptions) ([]*entity.Room, int64, error)
	// UpdateRoom applies the given field updates and returns the updated room.
	UpdateRoom(ctx context.Context, id string, updates map[string]interface{}) (*entity.Room, error)
	DeleteRoom(ctx context.Context, id string) error
	// AddReview appends the review and recomputes the derived num_of_reviews
	// and ratings fields in the same update. This is the only path that
	// mutates review aggregates.
	AddReview(ctx context.Context, roomID string, review entity.Review) error
}
