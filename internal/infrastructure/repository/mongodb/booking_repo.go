package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stayhub-app/stayhub/internal/domain/contract"
	"github.com/stayhub-app/stayhub/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BookingRepository is the MongoDB implementation of the IBookingRepository
// interface.
type BookingRepository struct {
	collection *mongo.Collection
	client     *mongo.Client
}

// NewBookingRepository creates and returns a new BookingRepository instance.
func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{
		collection: db.Collection("bookings"),
		client:     db.Client(),
	}
}

var _ contract.IBookingRepository = (*BookingRepository)(nil)

// overlapFilter matches bookings for the room whose closed [check-in,
// check-out] interval intersects the given range.
func overlapFilter(roomID string, checkIn, checkOut time.Time) bson.M {
	return bson.M{
		"room": roomID,
		"$and": []bson.M{
			{"check_in_date": bson.M{"$lte": checkOut}},
			{"check_out_date": bson.M{"$gte": checkIn}},
		},
	}
}

// CreateBooking inserts the booking after re-running the overlap check inside
// the same session transaction, so two concurrent requests cannot both
// observe "available" and both commit.
func (r *BookingRepository) CreateBooking(ctx context.Context, booking *entity.Booking) error {
	session, err := r.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		count, err := r.collection.CountDocuments(sc, overlapFilter(booking.RoomID, booking.CheckInDate, booking.CheckOutDate))
		if err != nil {
			return nil, fmt.Errorf("failed to check for overlapping bookings: %w", err)
		}
		if count > 0 {
			return nil, contract.ErrRoomUnavailable
		}
		if _, err := r.collection.InsertOne(sc, booking); err != nil {
			return nil, fmt.Errorf("failed to create booking: %w", err)
		}
		return nil, nil
	})
	return err
}

// CountOverlapping counts bookings conflicting with the given date range.
func (r *BookingRepository) CountOverlapping(ctx context.Context, roomID string, checkIn, checkOut time.Time) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, overlapFilter(roomID, checkIn, checkOut))
	if err != nil {
		return 0, fmt.Errorf("failed to count overlapping bookings: %w", err)
	}
	return count, nil
}

// GetBookingByID retrieves a single booking by its unique id.
func (r *BookingRepository) GetBookingByID(ctx context.Context, id string) (*entity.Booking, error) {
	var booking entity.Booking
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("booking with id '%s' not found: %w", id, err)
		}
		return nil, fmt.Errorf("failed to retrieve booking: %w", err)
	}
	return &booking, nil
}

// ListBookingsByUser returns every booking made by the user, earliest
// check-in first.
func (r *BookingRepository) ListBookingsByUser(ctx context.Context, userID string) ([]*entity.Booking, error) {
	return r.findAll(ctx, bson.M{"user": userID})
}

// ListBookingsByRoom returns every booking for the room.
func (r *BookingRepository) ListBookingsByRoom(ctx context.Context, roomID string) ([]*entity.Booking, error) {
	return r.findAll(ctx, bson.M{"room": roomID})
}

func (r *BookingRepository) findAll(ctx context.Context, filter bson.M) ([]*entity.Booking, error) {
	opts := options.Find().SetSort(bson.M{"check_in_date": 1})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []*entity.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// ListBookings returns one page of all bookings plus the total booking count.
func (r *BookingRepository) ListBookings(ctx context.Context, page, pageSize int) ([]*entity.Booking, int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	opts := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetSkip(int64(pageSize * (page - 1))).
		SetLimit(int64(pageSize))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []*entity.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, 0, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, count, nil
}

// DeleteBooking removes a booking by ID.
func (r *BookingRepository) DeleteBooking(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	if res.DeletedCount == 0 {
		return errors.New("booking not found")
	}
	return nil
}
