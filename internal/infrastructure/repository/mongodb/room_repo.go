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

// RoomRepository is the MongoDB implementation of the IRoomRepository interface.
type RoomRepository struct {
	collection *mongo.Collection
}

// NewRoomRepository creates and returns a new RoomRepository instance.
func NewRoomRepository(db *mongo.Database) *RoomRepository {
	return &RoomRepository{collection: db.Collection("rooms")}
}

var _ contract.IRoomRepository = (*RoomRepository)(nil)

// buildRoomFilter creates a BSON filter from RoomFilterOptions. The keyword
// matches name or description case-insensitively; bed count and category are
// exact matches.
func buildRoomFilter(opts *contract.RoomFilterOptions) bson.M {
	filter := bson.M{}

	if opts.Keyword != "" {
		filter["$or"] = []bson.M{
			{"name": bson.M{"$regex": opts.Keyword, "$options": "i"}},
			{"description": bson.M{"$regex": opts.Keyword, "$options": "i"}},
		}
	}
	if opts.NumOfBeds != nil {
		filter["num_of_beds"] = *opts.NumOfBeds
	}
	if opts.Category != nil {
		filter["category"] = *opts.Category
	}

	return filter
}

// CreateRoom inserts a new room record into the database.
func (r *RoomRepository) CreateRoom(ctx context.Context, room *entity.Room) error {
	_, err := r.collection.InsertOne(ctx, room)
	if err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

// GetRoomByID retrieves a single room by its unique id.
func (r *RoomRepository) GetRoomByID(ctx context.Context, id string) (*entity.Room, error) {
	var room entity.Room
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&room)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("room with id '%s' not found: %w", id, err)
		}
		return nil, fmt.Errorf("failed to retrieve room: %w", err)
	}
	return &room, nil
}

// ListRooms retrieves one page of rooms matching the filter plus the total
// count under the same filter. The count query and the fetch query share one
// predicate so page math stays consistent.
func (r *RoomRepository) ListRooms(ctx context.Context, opts *contract.RoomFilterOptions) ([]*entity.Room, int64, error) {
	filter := buildRoomFilter(opts)

	totalCount, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get total room count: %w", err)
	}

	findOpts := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetSkip(int64(opts.PageSize * (opts.Page - 1))).
		SetLimit(int64(opts.PageSize))

	cursor, err := r.collection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to retrieve rooms: %w", err)
	}
	defer cursor.Close(ctx)

	var rooms []*entity.Room
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, 0, fmt.Errorf("failed to decode rooms: %w", err)
	}

	return rooms, totalCount, nil
}

// UpdateRoom updates a room with the provided fields.
func (r *RoomRepository) UpdateRoom(ctx context.Context, id string, updates map[string]interface{}) (*entity.Room, error) {
	updates["updated_at"] = time.Now()
	update := bson.M{"$set": updates}
	filter := bson.M{"_id": id}

	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update room: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, errors.New("room not found")
	}

	var room entity.Room
	if err := r.collection.FindOne(ctx, filter).Decode(&room); err != nil {
		return nil, fmt.Errorf("failed to retrieve updated room: %w", err)
	}
	return &room, nil
}

// DeleteRoom removes a room by ID.
func (r *RoomRepository) DeleteRoom(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}
	if res.DeletedCount == 0 {
		return errors.New("room not found")
	}
	return nil
}

// AddReview appends the review and recomputes num_of_reviews and ratings in
// one pipeline update. The derived fields are always recalculated from the
// embedded list, never written independently, and the whole mutation is a
// single atomic document update.
func (r *RoomRepository) AddReview(ctx context.Context, roomID string, review entity.Review) error {
	reviewDoc := bson.M{
		"user":    review.UserID,
		"name":    review.Name,
		"rating":  review.Rating,
		"comment": review.Comment,
	}

	update := bson.A{
		bson.M{"$set": bson.M{
			"reviews": bson.M{"$concatArrays": bson.A{
				bson.M{"$ifNull": bson.A{"$reviews", bson.A{}}},
				bson.A{reviewDoc},
			}},
		}},
		bson.M{"$set": bson.M{
			"num_of_reviews": bson.M{"$size": "$reviews"},
			"ratings":        bson.M{"$avg": "$reviews.rating"},
			"updated_at":     time.Now(),
		}},
	}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": roomID}, update)
	if err != nil {
		return fmt.Errorf("failed to add review: %w", err)
	}
	if res.MatchedCount == 0 {
		return errors.New("room not found")
	}
	return nil
}
