package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/stayhub-app/stayhub/internal/domain/contract"
	"github.com/stayhub-app/stayhub/internal/domain/entity"
)

// In-memory doubles for the repository and service contracts. They mirror the
// observable behavior of the real implementations closely enough for the
// business rules under test.

type fakeLogger struct{}

func (fakeLogger) Debugf(format string, args ...interface{}) {}
func (fakeLogger) Infof(format string, args ...interface{})  {}
func (fakeLogger) Warnf(format string, args ...interface{})  {}
func (fakeLogger) Errorf(format string, args ...interface{}) {}
func (fakeLogger) Fatalf(format string, args ...interface{}) {}

type fakeUUIDGen struct {
	n int
}

func (g *fakeUUIDGen) NewUUID() string {
	g.n++
	return fmt.Sprintf("uuid-%d", g.n)
}

type fakeHasher struct{}

func (fakeHasher) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) ComparePasswordHash(password, hashedPassword string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("hash mismatch")
	}
	return nil
}

type fakeJWTService struct{}

func (fakeJWTService) GenerateAccessToken(userID string, isAdmin bool) (string, error) {
	return "token:" + userID, nil
}

func (fakeJWTService) ParseAccessToken(token string) (*entity.Claims, error) {
	userID, ok := strings.CutPrefix(token, "token:")
	if !ok {
		return nil, errors.New("malformed token")
	}
	return &entity.Claims{UserID: userID}, nil
}

type fakeValidator struct{}

func (fakeValidator) ValidateEmail(email string) error {
	if !strings.Contains(email, "@") {
		return errors.New("not an email address")
	}
	return nil
}

func (fakeValidator) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	return nil
}

type fakeConfig struct{}

func (fakeConfig) GetAppBaseURL() string               { return "http://localhost:3000" }
func (fakeConfig) GetAccessTokenExpiry() time.Duration { return 72 * time.Hour }
func (fakeConfig) GetStripeClientID() string           { return "pk_test" }

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

var _ contract.IUserRepository = (*fakeUserRepo)(nil)

func (r *fakeUserRepo) CreateUser(ctx context.Context, user *entity.User) error {
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errors.New("user not found")
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, errors.New("user not found")
}

func (r *fakeUserRepo) ListUsers(ctx context.Context, page, pageSize int) ([]*entity.User, int64, error) {
	ids := make([]string, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	start := (page - 1) * pageSize
	var out []*entity.User
	for i := start; i < len(ids) && i < start+pageSize; i++ {
		out = append(out, r.users[ids[i]])
	}
	return out, int64(len(ids)), nil
}

func (r *fakeUserRepo) UpdateUser(ctx context.Context, id string, updates map[string]interface{}) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errors.New("user not found")
	}
	if name, ok := updates["name"].(string); ok {
		u.Name = name
	}
	if email, ok := updates["email"].(string); ok {
		u.Email = email
	}
	if avatar, ok := updates["avatar"].(string); ok {
		u.Avatar = &avatar
	}
	if isAdmin, ok := updates["is_admin"].(bool); ok {
		u.IsAdmin = isAdmin
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) UpdateUserPassword(ctx context.Context, id string, hashedPassword string) error {
	u, ok := r.users[id]
	if !ok {
		return errors.New("user not found")
	}
	u.PasswordHash = hashedPassword
	return nil
}

func (r *fakeUserRepo) DeleteUser(ctx context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return errors.New("user not found")
	}
	delete(r.users, id)
	return nil
}

type fakeRoomRepo struct {
	rooms map[string]*entity.Room
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{rooms: map[string]*entity.Room{}}
}

var _ contract.IRoomRepository = (*fakeRoomRepo)(nil)

func (r *fakeRoomRepo) CreateRoom(ctx context.Context, room *entity.Room) error {
	cp := *room
	r.rooms[room.ID] = &cp
	return nil
}

func (r *fakeRoomRepo) GetRoomByID(ctx context.Context, id string) (*entity.Room, error) {
	room, ok := r.rooms[id]
	if !ok {
		return nil, errors.New("room not found")
	}
	cp := *room
	return &cp, nil
}

func (r *fakeRoomRepo) matches(room *entity.Room, opts *contract.RoomFilterOptions) bool {
	if opts.Keyword != "" {
		kw := strings.ToLower(opts.Keyword)
		if !strings.Contains(strings.ToLower(room.Name), kw) &&
			!strings.Contains(strings.ToLower(room.Description), kw) {
			return false
		}
	}
	if opts.NumOfBeds != nil && room.NumOfBeds != *opts.NumOfBeds {
		return false
	}
	if opts.Category != nil && room.Category != *opts.Category {
		return false
	}
	return true
}

func (r *fakeRoomRepo) ListRooms(ctx context.Context, opts *contract.RoomFilterOptions) ([]*entity.Room, int64, error) {
	ids := make([]string, 0, len(r.rooms))
	for id := range r.rooms {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var matched []*entity.Room
	for _, id := range ids {
		if r.matches(r.rooms[id], opts) {
			matched = append(matched, r.rooms[id])
		}
	}

	start := (opts.Page - 1) * opts.PageSize
	var out []*entity.Room
	for i := start; i < len(matched) && i < start+opts.PageSize; i++ {
		out = append(out, matched[i])
	}
	return out, int64(len(matched)), nil
}

func (r *fakeRoomRepo) UpdateRoom(ctx context.Context, id string, updates map[string]interface{}) (*entity.Room, error) {
	room, ok := r.rooms[id]
	if !ok {
		return nil, errors.New("room not found")
	}
	if name, ok := updates["name"].(string); ok {
		room.Name = name
	}
	if price, ok := updates["price_per_night"].(float64); ok {
		room.PricePerNight = price
	}
	if cat, ok := updates["category"].(string); ok {
		room.Category = entity.RoomCategory(cat)
	}
	cp := *room
	return &cp, nil
}

func (r *fakeRoomRepo) DeleteRoom(ctx context.Context, id string) error {
	if _, ok := r.rooms[id]; !ok {
		return errors.New("room not found")
	}
	delete(r.rooms, id)
	return nil
}

func (r *fakeRoomRepo) AddReview(ctx context.Context, roomID string, review entity.Review) error {
	room, ok := r.rooms[roomID]
	if !ok {
		return errors.New("room not found")
	}
	room.Reviews = append(room.Reviews, review)
	room.NumOfReviews = len(room.Reviews)
	room.Ratings = entity.AverageRating(room.Reviews)
	return nil
}

type fakeBookingRepo struct {
	bookings []*entity.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{}
}

var _ contract.IBookingRepository = (*fakeBookingRepo)(nil)

func (r *fakeBookingRepo) CreateBooking(ctx context.Context, booking *entity.Booking) error {
	for _, b := range r.bookings {
		if b.RoomID == booking.RoomID && b.Overlaps(booking.CheckInDate, booking.CheckOutDate) {
			return contract.ErrRoomUnavailable
		}
	}
	cp := *booking
	r.bookings = append(r.bookings, &cp)
	return nil
}

func (r *fakeBookingRepo) CountOverlapping(ctx context.Context, roomID string, checkIn, checkOut time.Time) (int64, error) {
	var count int64
	for _, b := range r.bookings {
		if b.RoomID == roomID && b.Overlaps(checkIn, checkOut) {
			count++
		}
	}
	return count, nil
}

func (r *fakeBookingRepo) GetBookingByID(ctx context.Context, id string) (*entity.Booking, error) {
	for _, b := range r.bookings {
		if b.ID == id {
			cp := *b
			return &cp, nil
		}
	}
	return nil, errors.New("booking not found")
}

func (r *fakeBookingRepo) ListBookingsByUser(ctx context.Context, userID string) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListBookingsByRoom(ctx context.Context, roomID string) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range r.bookings {
		if b.RoomID == roomID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListBookings(ctx context.Context, page, pageSize int) ([]*entity.Booking, int64, error) {
	start := (page - 1) * pageSize
	var out []*entity.Booking
	for i := start; i < len(r.bookings) && i < start+pageSize; i++ {
		out = append(out, r.bookings[i])
	}
	return out, int64(len(r.bookings)), nil
}

func (r *fakeBookingRepo) DeleteBooking(ctx context.Context, id string) error {
	for i, b := range r.bookings {
		if b.ID == id {
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			return nil
		}
	}
	return errors.New("booking not found")
}
