package dto

import (
	"time"

	"github.com/stayhub-app/stayhub/internal/domain/entity"
)

// Request DTOs for Room Handlers

// CreateRoomRequest defines the structure for creating a new room.
type CreateRoomRequest struct {
	Name           string   `json:"name" binding:"required"`
	Description    string   `json:"description"`
	Address        string   `json:"address"`
	PricePerNight  float64  `json:"pricePerNight" binding:"required,min=0"`
	GuestCapacity  int      `json:"guestCapacity" binding:"min=0"`
	NumOfBeds      int      `json:"numOfBeds" binding:"required,min=1"`
	Internet       bool     `json:"internet"`
	Breakfast      bool     `json:"breakfast"`
	AirConditioned bool     `json:"airConditioned"`
	PetsAllowed    bool     `json:"petsAllowed"`
	RoomCleaning   bool     `json:"roomCleaning"`
	Category       string   `json:"category" binding:"required,oneof=King Single Twins"`
	Images         []string `json:"images"`
}

// UpdateRoomRequest defines the structure for updating an existing room.
type UpdateRoomRequest struct {
	Name           *string  `json:"name"`
	Description    *string  `json:"description"`
	Address        *string  `json:"address"`
	PricePerNight  *float64 `json:"pricePerNight" binding:"omitempty,min=0"`
	GuestCapacity  *int     `json:"guestCapacity" binding:"omitempty,min=0"`
	NumOfBeds      *int     `json:"numOfBeds" binding:"omitempty,min=1"`
	Internet       *bool    `json:"internet"`
	Breakfast      *bool    `json:"breakfast"`
	AirConditioned *bool    `json:"airConditioned"`
	PetsAllowed    *bool    `json:"petsAllowed"`
	RoomCleaning   *bool    `json:"roomCleaning"`
	Category       *string  `json:"category" binding:"omitempty,oneof=King Single Twins"`
	Images         []string `json:"images"`
}

// CreateReviewRequest defines the structure for appending a room review.
type CreateReviewRequest struct {
	Rating  float64 `json:"rating" binding:"required,min=1,max=5"`
	Comment string  `json:"comment"`
}

// Response DTOs

// RoomResponse defines the standard JSON response for a single room.
type RoomResponse struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	Description    string              `json:"description"`
	Address        string              `json:"address"`
	PricePerNight  float64             `json:"pricePerNight"`
	GuestCapacity  int                 `json:"guestCapacity"`
	NumOfBeds      int                 `json:"numOfBeds"`
	Internet       bool                `json:"internet"`
	Breakfast      bool                `json:"breakfast"`
	AirConditioned bool                `json:"airConditioned"`
	PetsAllowed    bool                `json:"petsAllowed"`
	RoomCleaning   bool                `json:"roomCleaning"`
	Ratings        float64             `json:"ratings"`
	NumOfReviews   int                 `json:"numOfReviews"`
	Category       string              `json:"category"`
	Images         []entity.RoomImage  `json:"images"`
	Reviews        []entity.Review     `json:"reviews"`
	OwnerID        string              `json:"user"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}

// PaginatedRoomsResponse is the page envelope for room listings.
type PaginatedRoomsResponse struct {
	Rooms []RoomResponse `json:"rooms"`
	Page  int            `json:"page"`
	Pages int            `json:"pages"`
	Count int64          `json:"count"`
}

// ToRoomResponse converts an entity.Room to a RoomResponse DTO.
func ToRoomResponse(room *entity.Room) RoomResponse {
	return RoomResponse{
		ID:             room.ID,
		Name:           room.Name,
		Description:    room.Description,
		Address:        room.Address,
		PricePerNight:  room.PricePerNight,
		GuestCapacity:  room.GuestCapacity,
		NumOfBeds:      room.NumOfBeds,
		Internet:       room.Internet,
		Breakfast:      room.Breakfast,
		AirConditioned: room.AirConditioned,
		PetsAllowed:    room.PetsAllowed,
		RoomCleaning:   room.RoomCleaning,
		Ratings:        room.Ratings,
		NumOfReviews:   room.NumOfReviews,
		Category:       string(room.Category),
		Images:         room.Images,
		Reviews:        room.Reviews,
		OwnerID:        room.OwnerID,
		CreatedAt:      room.CreatedAt,
		UpdatedAt:      room.UpdatedAt,
	}
}

// ToRoomEntity builds a new entity.Room from a create request.
func ToRoomEntity(req CreateRoomRequest, ownerID string) *entity.Room {
	images := make([]entity.RoomImage, 0, len(req.Images))
	for _, img := range req.Images {
		images = append(images, entity.RoomImage{Image: img})
	}
	return &entity.Room{
		Name:           req.Name,
		Description:    req.Description,
		Address:        req.Address,
		PricePerNight:  req.PricePerNight,
		GuestCapacity:  req.GuestCapacity,
		NumOfBeds:      req.NumOfBeds,
		Internet:       req.Internet,
		Breakfast:      req.Breakfast,
		AirConditioned: req.AirConditioned,
		PetsAllowed:    req.PetsAllowed,
		RoomCleaning:   req.RoomCleaning,
		Category:       entity.RoomCategory(req.Category),
		Images:         images,
		OwnerID:        ownerID,
	}
}
