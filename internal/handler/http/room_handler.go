package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/stayhub-app/stayhub/internal/domain/entity"
	"github.com/stayhub-app/stayhub/internal/handler/http/dto"
	usecasecontract "github.com/stayhub-app/stayhub/internal/usecase/contract"
)

// RoomHandlerInterface defines the methods for room handler to allow interface-based dependency injection (for testing/mocking)
type RoomHandlerInterface interface {
	CreateRoom(*gin.Context)
	GetRoom(*gin.Context)
	ListRooms(*gin.Context)
	UpdateRoom(*gin.Context)
	DeleteRoom(*gin.Context)
	CreateReview(*gin.Context)
}

// Ensure RoomHandler implements RoomHandlerInterface
var _ RoomHandlerInterface = (*RoomHandler)(nil)

type RoomHandler struct {
	roomUsecase usecasecontract.IRoomUseCase
}

func NewRoomHandler(roomUsecase usecasecontract.IRoomUseCase) *RoomHandler {
	return &RoomHandler{
		roomUsecase: roomUsecase,
	}
}

// CreateRoom handles creating a room listing (admin action).
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req dto.CreateRoomRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	room, err := h.roomUsecase.CreateRoom(c.Request.Context(), dto.ToRoomEntity(req, ownerID))
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToRoomResponse(room))
}

// GetRoom handles retrieving a single room by ID.
func (h *RoomHandler) GetRoom(c *gin.Context) {
	roomID := c.Param("id")
	room, err := h.roomUsecase.GetRoomByID(c.Request.Context(), roomID)
	if err != nil {
		ErrorHandler(c, http.StatusNotFound, "Room not found")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToRoomResponse(room))
}

// ListRooms returns one page of rooms filtered by the query parameters
// keyword, numOfBeds and roomType.
func (h *RoomHandler) ListRooms(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("pageNumber", "1"))
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	keyword := c.Query("keyword")

	var numOfBeds *int
	if raw := c.Query("numOfBeds"); raw != "" {
		beds, err := strconv.Atoi(raw)
		if err != nil {
			ErrorHandler(c, http.StatusBadRequest, "Invalid number of beds")
			return
		}
		numOfBeds = &beds
	}

	var category *entity.RoomCategory
	if raw := c.Query("roomType"); raw != "" {
		cat := entity.RoomCategory(raw)
		if !entity.ValidCategory(cat) {
			ErrorHandler(c, http.StatusBadRequest, "Invalid room type")
			return
		}
		category = &cat
	}

	rooms, count, currentPage, pages, err := h.roomUsecase.ListRooms(c.Request.Context(), keyword, numOfBeds, category, page)
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to list rooms")
		return
	}

	responses := make([]dto.RoomResponse, 0, len(rooms))
	for i := range rooms {
		responses = append(responses, dto.ToRoomResponse(&rooms[i]))
	}

	SuccessHandler(c, http.StatusOK, dto.PaginatedRoomsResponse{
		Rooms: responses,
		Page:  currentPage,
		Pages: pages,
		Count: count,
	})
}

// UpdateRoom applies admin edits to a room.
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	roomID := c.Param("id")

	var req dto.UpdateRoomRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.PricePerNight != nil {
		updates["price_per_night"] = *req.PricePerNight
	}
	if req.GuestCapacity != nil {
		updates["guest_capacity"] = *req.GuestCapacity
	}
	if req.NumOfBeds != nil {
		updates["num_of_beds"] = *req.NumOfBeds
	}
	if req.Internet != nil {
		updates["internet"] = *req.Internet
	}
	if req.Breakfast != nil {
		updates["breakfast"] = *req.Breakfast
	}
	if req.AirConditioned != nil {
		updates["air_conditioned"] = *req.AirConditioned
	}
	if req.PetsAllowed != nil {
		updates["pets_allowed"] = *req.PetsAllowed
	}
	if req.RoomCleaning != nil {
		updates["room_cleaning"] = *req.RoomCleaning
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Images != nil {
		images := make([]entity.RoomImage, 0, len(req.Images))
		for _, img := range req.Images {
			images = append(images, entity.RoomImage{Image: img})
		}
		updates["images"] = images
	}

	room, err := h.roomUsecase.UpdateRoom(c.Request.Context(), roomID, updates)
	if err != nil {
		if err.Error() == "room not found" {
			ErrorHandler(c, http.StatusNotFound, "Room not found")
			return
		}
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToRoomResponse(room))
}

// DeleteRoom removes a room listing (admin action).
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	roomID := c.Param("id")
	if err := h.roomUsecase.DeleteRoom(c.Request.Context(), roomID); err != nil {
		ErrorHandler(c, http.StatusNotFound, "Room not found")
		return
	}
	MessageHandler(c, http.StatusOK, "Room deleted")
}

// CreateReview appends a review from the current user to a room.
func (h *RoomHandler) CreateReview(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}
	userName := c.GetString("userName")

	var req dto.CreateReviewRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	roomID := c.Param("id")
	if err := h.roomUsecase.AddReview(c.Request.Context(), roomID, userID, userName, req.Rating, req.Comment); err != nil {
		if err.Error() == "room not found" {
			ErrorHandler(c, http.StatusNotFound, "Room not found")
			return
		}
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}
	MessageHandler(c, http.StatusCreated, "Review added")
}
