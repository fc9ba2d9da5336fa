package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stayhub-app/stayhub/internal/domain/entity"
	handler "github.com/stayhub-app/stayhub/internal/handler/http"
	dto "github.com/stayhub-app/stayhub/internal/handler/http/dto"
	mocks "github.com/stayhub-app/stayhub/internal/handler/http/mocks"
	"github.com/stretchr/testify/assert"
)

func setupRoomRouter(h handler.RoomHandlerInterface) *gin.Engine {
	r := gin.New()
	r.GET("/rooms", h.ListRooms)
	r.GET("/rooms/:id", h.GetRoom)
	r.POST("/rooms", asUser("mock-user-id", "Test User", "test@example.com"), h.CreateRoom)
	r.PUT("/rooms/:id", asUser("mock-user-id", "Test User", "test@example.com"), h.UpdateRoom)
	r.DELETE("/rooms/:id", h.DeleteRoom)
	r.POST("/rooms/:id/reviews", asUser("mock-user-id", "Test User", "test@example.com"), h.CreateReview)
	return r
}

func TestListRooms_Filters(t *testing.T) {
	mockUsecase := mocks.NewMockRoomUsecase()
	mockUsecase.MockRooms = []entity.Room{mockUsecase.MockRoom}
	mockUsecase.MockCount = 1
	h := handler.NewRoomHandler(mockUsecase)
	r := setupRoomRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/rooms?pageNumber=2&keyword=sea&numOfBeds=2&roomType=King", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "sea", mockUsecase.LastKeyword)
	assert.Equal(t, 2, mockUsecase.LastPage)
	if assert.NotNil(t, mockUsecase.LastNumOfBeds) {
		assert.Equal(t, 2, *mockUsecase.LastNumOfBeds)
	}
	if assert.NotNil(t, mockUsecase.LastCategory) {
		assert.Equal(t, entity.RoomCategoryKing, *mockUsecase.LastCategory)
	}
}

func TestListRooms_Defaults(t *testing.T) {
	mockUsecase := mocks.NewMockRoomUsecase()
	h := handler.NewRoomHandler(mockUsecase)
	r := setupRoomRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/rooms", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, mockUsecase.LastPage)
	assert.Nil(t, mockUsecase.LastNumOfBeds)
	assert.Nil(t, mockUsecase.LastCategory)

	var resp dto.PaginatedRoomsResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, 1, resp.Page)
	assert.Empty(t, resp.Rooms)
}

func TestListRooms_InvalidRoomType(t *testing.T) {
	mockUsecase := mocks.NewMockRoomUsecase()
	h := handler.NewRoomHandler(mockUsecase)
	r := setupRoomRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/rooms?roomType=Penthouse", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid room type")
}

func TestGetRoom(t *testing.T) {
	mockUsecase := mocks.NewMockRoomUsecase()
	h := handler.NewRoomHandler(mockUsecase)
	r := setupRoomRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/rooms/mock-room-id", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Sea View Suite")
}

func TestGetRoom_NotFound(t *testing.T) {
	mockUsecase := mocks.NewMockRoomUsecase()
	mockUsecase.ShouldFailGetByID = true
	h := handler.NewRoomHandler(mockUsecase)
	r := setupRoomRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/rooms/missing-id", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Room not found")
}

func TestCreateRoom(t *testing.T) {
	mockUsecase := mocks.NewMockRoomUsecase()
	h := handler.NewRoomHandler(mockUsecase)
	r := setupRoomRouter(h)

	payload := dto.CreateRoomRequest{
		Name:          "Sea View Suite",
		PricePerNight: 120,
		NumOfBeds:     2,
		Category:      "King",
	}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/rooms", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Sea View Suite")
}

func TestCreateRoom_InvalidCategory(t *testing.T) {
	mockUsecase := mocks.NewMockRoomUsecase()
	h := handler.NewRoomHandler(mockUsecase)
	r := setupRoomRouter(h)

	payload := dto.CreateRoomRequest{
		Name:          "Sea View Suite",
		PricePerNight: 120,
		NumOfBeds:     2,
		Category:      "Penthouse",
	}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/rooms", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateReview(t *testing.T) {
	mockUsecase := mocks.NewMockRoomUsecase()
	h := handler.NewRoomHandler(mockUsecase)
	r := setupRoomRouter(h)

	payload := dto.CreateReviewRequest{Rating: 4, Comment: "Great stay"}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/rooms/mock-room-id/reviews", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Review added")
}

func TestCreateReview_RatingOutOfRange(t *testing.T) {
	mockUsecase := mocks.NewMockRoomUsecase()
	h := handler.NewRoomHandler(mockUsecase)
	r := setupRoomRouter(h)

	payload := dto.CreateReviewRequest{Rating: 6}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/rooms/mock-room-id/reviews", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateReview_RoomNotFound(t *testing.T) {
	mockUsecase := mocks.NewMockRoomUsecase()
	mockUsecase.AddReviewNotFound = true
	h := handler.NewRoomHandler(mockUsecase)
	r := setupRoomRouter(h)

	payload := dto.CreateReviewRequest{Rating: 4, Comment: "Great stay"}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/rooms/missing-id/reviews", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteRoom(t *testing.T) {
	mockUsecase := mocks.NewMockRoomUsecase()
	h := handler.NewRoomHandler(mockUsecase)
	r := setupRoomRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/rooms/mock-room-id", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Room deleted")
}
