package mocks

import (
	"context"
	"errors"

	"github.com/stayhub-app/stayhub/internal/domain/entity"
	usecasecontract "github.com/stayhub-app/stayhub/internal/usecase/contract"
)

// MockRoomUsecase is a mock implementation of the IRoomUseCase interface
type MockRoomUsecase struct {
	// Control mock behavior
	ShouldFailCreateRoom bool
	ShouldFailGetByID    bool
	ShouldFailListRooms  bool
	ShouldFailUpdateRoom bool
	UpdateRoomNotFound   bool
	ShouldFailDeleteRoom bool
	ShouldFailAddReview  bool
	AddReviewNotFound    bool

	// Captured arguments
	LastKeyword   string
	LastNumOfBeds *int
	LastCategory  *entity.RoomCategory
	LastPage      int

	// Return values
	MockRoom  entity.Room
	MockRooms []entity.Room
	MockCount int64
	MockPage  int
	MockPages int
}

// Ensure MockRoomUsecase implements the correct interface for handler.NewRoomHandler
var _ usecasecontract.IRoomUseCase = (*MockRoomUsecase)(nil)

func NewMockRoomUsecase() *MockRoomUsecase {
	return &MockRoomUsecase{
		MockRoom: entity.Room{
			ID:            "mock-room-id",
			Name:          "Sea View Suite",
			PricePerNight: 120,
			NumOfBeds:     2,
			Category:      entity.RoomCategoryKing,
		},
		MockPage:  1,
		MockPages: 1,
	}
}

func (m *MockRoomUsecase) CreateRoom(ctx context.Context, room *entity.Room) (*entity.Room, error) {
	if m.ShouldFailCreateRoom {
		return nil, errors.New("room creation failed")
	}
	return &m.MockRoom, nil
}

func (m *MockRoomUsecase) GetRoomByID(ctx context.Context, roomID string) (*entity.Room, error) {
	if m.ShouldFailGetByID {
		return nil, errors.New("room not found")
	}
	return &m.MockRoom, nil
}

func (m *MockRoomUsecase) ListRooms(ctx context.Context, keyword string, numOfBeds *int, category *entity.RoomCategory, page int) ([]entity.Room, int64, int, int, error) {
	m.LastKeyword = keyword
	m.LastNumOfBeds = numOfBeds
	m.LastCategory = category
	m.LastPage = page
	if m.ShouldFailListRooms {
		return nil, 0, 0, 0, errors.New("list rooms failed")
	}
	return m.MockRooms, m.MockCount, m.MockPage, m.MockPages, nil
}

func (m *MockRoomUsecase) UpdateRoom(ctx context.Context, roomID string, updates map[string]interface{}) (*entity.Room, error) {
	if m.UpdateRoomNotFound {
		return nil, errors.New("room not found")
	}
	if m.ShouldFailUpdateRoom {
		return nil, errors.New("update room failed")
	}
	return &m.MockRoom, nil
}

func (m *MockRoomUsecase) DeleteRoom(ctx context.Context, roomID string) error {
	if m.ShouldFailDeleteRoom {
		return errors.New("room not found")
	}
	return nil
}

func (m *MockRoomUsecase) AddReview(ctx context.Context, roomID, userID, userName string, rating float64, comment string) error {
	if m.AddReviewNotFound {
		return errors.New("room not found")
	}
	if m.ShouldFailAddReview {
		return errors.New("add review failed")
	}
	return nil
}
