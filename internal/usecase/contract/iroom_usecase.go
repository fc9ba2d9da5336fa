package usecasecontract

import (
	"context"

	"github.com/stayhub-app/stayhub/internal/domain/entity"
)

// IRoomUseCase defines room-related business logic.
type IRoomUseCase interface {
	CreateRoom(ctx context.Context, room *entity.Room) (*entity.Room, error)
	GetRoomByID(ctx context.Context, roomID string) (*entity.Room, error)
	ListRooms(ctx context.Context, keyword string, numOfBeds *int, category *entity.RoomCategory, page int) (rooms []entity.Room, totalCount int64, currentPage int, totalPages int, err error)
	UpdateRoom(ctx context.Context, roomID string, updates map[string]interface{}) (*entity.Room, error)
	DeleteRoom(ctx context.Context, roomID string) error
	// AddReview appends a review authored by the given user, snapshotting the
	// user's name, and recomputes the room's rating aggregates.
	AddReview(ctx context.Context, roomID, userID, userName string, rating float64, comment string) error
}
