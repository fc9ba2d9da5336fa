package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stayhub-app/stayhub/internal/domain/contract"
	"github.com/stayhub-app/stayhub/internal/domain/entity"
	"github.com/stayhub-app/stayhub/internal/infrastructure/metrics"
	usecasecontract "github.com/stayhub-app/stayhub/internal/usecase/contract"
)

const errRoomNotFound = "room not found"

// RoomUsecase implements the IRoomUseCase interface.
type RoomUsecase struct {
	roomRepo  contract.IRoomRepository
	uuidgen   contract.IUUIDGenerator
	logger    usecasecontract.IAppLogger
	roomCache contract.IRoomCache
}

// NewRoomUsecase creates a new RoomUsecase instance.
func NewRoomUsecase(roomRepo contract.IRoomRepository, uuidgen contract.IUUIDGenerator, logger usecasecontract.IAppLogger) *RoomUsecase {
	return &RoomUsecase{
		roomRepo: roomRepo,
		uuidgen:  uuidgen,
		logger:   logger,
	}
}

// check if RoomUsecase implements the IRoomUseCase
var _ usecasecontract.IRoomUseCase = (*RoomUsecase)(nil)

// SetRoomCache injects an optional cache; listing and detail reads consult it
// and every mutation invalidates it.
func (uc *RoomUsecase) SetRoomCache(cache contract.IRoomCache) {
	uc.roomCache = cache
}

// buildRoomsListCacheKey builds a stable key for list endpoint caching.
func buildRoomsListCacheKey(keyword string, numOfBeds *int, category *entity.RoomCategory, page int) string {
	beds := ""
	if numOfBeds != nil {
		beds = fmt.Sprintf("%d", *numOfBeds)
	}
	cat := ""
	if category != nil {
		cat = string(*category)
	}
	return fmt.Sprintf("rooms:list:p=%d:kw=%s:beds=%s:cat=%s", page, keyword, beds, cat)
}

// CreateRoom stores a new room owned by the calling user.
func (uc *RoomUsecase) CreateRoom(ctx context.Context, room *entity.Room) (*entity.Room, error) {
	if room.Name == "" {
		return nil, errors.New("name is required")
	}
	if room.OwnerID == "" {
		return nil, errors.New("owner ID is required")
	}
	if !entity.ValidCategory(room.Category) {
		return nil, fmt.Errorf("unknown room category %q", room.Category)
	}

	room.ID = uc.uuidgen.NewUUID()
	room.Ratings = 0
	room.NumOfReviews = 0
	if room.Images == nil {
		room.Images = []entity.RoomImage{}
	}
	room.Reviews = []entity.Review{}
	room.CreatedAt = time.Now()
	room.UpdatedAt = time.Now()

	if err := uc.roomRepo.CreateRoom(ctx, room); err != nil {
		uc.logger.Errorf("failed to create room: %v", err)
		return nil, errors.New("failed to create room")
	}

	uc.invalidateLists(ctx)
	return room, nil
}

// GetRoomByID retrieves a single room, consulting the cache first.
func (uc *RoomUsecase) GetRoomByID(ctx context.Context, roomID string) (*entity.Room, error) {
	if uc.roomCache != nil {
		if room, ok, err := uc.roomCache.GetRoomByID(ctx, roomID); err == nil && ok {
			metrics.RoomCacheHits.Inc()
			return room, nil
		}
		metrics.RoomCacheMisses.Inc()
	}

	room, err := uc.roomRepo.GetRoomByID(ctx, roomID)
	if err != nil {
		return nil, errors.New(errRoomNotFound)
	}

	if uc.roomCache != nil {
		if err := uc.roomCache.SetRoomByID(ctx, roomID, room); err != nil {
			uc.logger.Warnf("failed to cache room %s: %v", roomID, err)
		}
	}
	return room, nil
}

// ListRooms returns one page of rooms matching the keyword and attribute
// filters. Pages beyond the last one yield an empty list, not an error.
func (uc *RoomUsecase) ListRooms(ctx context.Context, keyword string, numOfBeds *int, category *entity.RoomCategory, page int) ([]entity.Room, int64, int, int, error) {
	if page < 1 {
		page = 1
	}

	key := buildRoomsListCacheKey(keyword, numOfBeds, category, page)
	if uc.roomCache != nil {
		if cached, ok, err := uc.roomCache.GetRoomsPage(ctx, key); err == nil && ok {
			metrics.RoomCacheHits.Inc()
			return cached.Rooms, cached.Total, page, totalPages(cached.Total, DefaultPageSize), nil
		}
		metrics.RoomCacheMisses.Inc()
	}

	opts := &contract.RoomFilterOptions{
		Keyword:   keyword,
		NumOfBeds: numOfBeds,
		Category:  category,
		Page:      page,
		PageSize:  DefaultPageSize,
	}
	rooms, count, err := uc.roomRepo.ListRooms(ctx, opts)
	if err != nil {
		uc.logger.Errorf("failed to list rooms: %v", err)
		return nil, 0, 0, 0, errors.New("failed to list rooms")
	}

	result := make([]entity.Room, 0, len(rooms))
	for _, r := range rooms {
		result = append(result, *r)
	}

	if uc.roomCache != nil {
		if err := uc.roomCache.SetRoomsPage(ctx, key, &contract.CachedRoomsPage{Rooms: result, Total: count}); err != nil {
			uc.logger.Warnf("failed to cache rooms page: %v", err)
		}
	}

	return result, count, page, totalPages(count, DefaultPageSize), nil
}

// UpdateRoom applies the given field updates to a room.
func (uc *RoomUsecase) UpdateRoom(ctx context.Context, roomID string, updates map[string]interface{}) (*entity.Room, error) {
	if cat, ok := updates["category"].(string); ok {
		if !entity.ValidCategory(entity.RoomCategory(cat)) {
			return nil, fmt.Errorf("unknown room category %q", cat)
		}
	}

	room, err := uc.roomRepo.UpdateRoom(ctx, roomID, updates)
	if err != nil {
		return nil, err
	}

	uc.invalidateRoom(ctx, roomID)
	return room, nil
}

// DeleteRoom removes a room by ID.
func (uc *RoomUsecase) DeleteRoom(ctx context.Context, roomID string) error {
	if err := uc.roomRepo.DeleteRoom(ctx, roomID); err != nil {
		return err
	}
	uc.invalidateRoom(ctx, roomID)
	return nil
}

// AddReview appends a review to the room. The repository recomputes the
// num_of_reviews and ratings aggregates in the same update, so there is a
// single mutation path for the derived fields.
func (uc *RoomUsecase) AddReview(ctx context.Context, roomID, userID, userName string, rating float64, comment string) error {
	if rating < 1 || rating > 5 {
		return errors.New("rating must be between 1 and 5")
	}

	// Reject before mutation when the room does not exist.
	if _, err := uc.roomRepo.GetRoomByID(ctx, roomID); err != nil {
		return errors.New(errRoomNotFound)
	}

	review := entity.Review{
		UserID:  userID,
		Name:    userName,
		Rating:  rating,
		Comment: comment,
	}
	if err := uc.roomRepo.AddReview(ctx, roomID, review); err != nil {
		uc.logger.Errorf("failed to add review to room %s: %v", roomID, err)
		return errors.New("failed to add review")
	}

	metrics.ReviewsAddedTotal.Inc()
	uc.invalidateRoom(ctx, roomID)
	return nil
}

func (uc *RoomUsecase) invalidateRoom(ctx context.Context, roomID string) {
	if uc.roomCache == nil {
		return
	}
	if err := uc.roomCache.InvalidateRoomByID(ctx, roomID); err != nil {
		uc.logger.Warnf("failed to invalidate room cache for %s: %v", roomID, err)
	}
	uc.invalidateLists(ctx)
}

func (uc *RoomUsecase) invalidateLists(ctx context.Context) {
	if uc.roomCache == nil {
		return
	}
	if err := uc.roomCache.InvalidateRoomLists(ctx); err != nil {
		uc.logger.Warnf("failed to invalidate room list cache: %v", err)
	}
}
