package entity

import (
	"time"
)

// RoomCategory is the fixed set of room classes.
type RoomCategory string

const (
	RoomCategoryKing   RoomCategory = "King"
	RoomCategorySingle RoomCategory = "Single"
	RoomCategoryTwins  RoomCategory = "Twins"
)

// ValidCategory reports whether c is one of the known room classes.
func ValidCategory(c RoomCategory) bool {
	switch c {
	case RoomCategoryKing, RoomCategorySingle, RoomCategoryTwins:
		return true
	}
	return false
}

// RoomImage is an image reference embedded in a room document.
type RoomImage struct {
	Image string `bson:"image" json:"image"`
}

// Review is a guest review embedded in a room document. Name is a snapshot
// of the author's name at review time.
type Review struct {
	UserID  string  `bson:"user" json:"user"`
	Name    string  `bson:"name" json:"name"`
	Rating  float64 `bson:"rating" json:"rating"`
	Comment string  `bson:"comment" json:"comment"`
}

// Room represents a bookable room. Ratings and NumOfReviews are derived from
// the embedded Reviews list and are recomputed on every review mutation,
// never written independently.
type Room struct {
	ID             string       `bson:"_id,omitempty" json:"id"`
	Name           string       `bson:"name" json:"name"`
	Description    string       `bson:"description" json:"description"`
	Address        string       `bson:"address" json:"address"`
	PricePerNight  float64      `bson:"price_per_night" json:"price_per_night"`
	GuestCapacity  int          `bson:"guest_capacity" json:"guest_capacity"`
	NumOfBeds      int          `bson:"num_of_beds" json:"num_of_beds"`
	Internet       bool         `bson:"internet" json:"internet"`
	Breakfast      bool         `bson:"breakfast" json:"breakfast"`
	AirConditioned bool         `bson:"air_conditioned" json:"air_conditioned"`
	PetsAllowed    bool         `bson:"pets_allowed" json:"pets_allowed"`
	RoomCleaning   bool         `bson:"room_cleaning" json:"room_cleaning"`
	Ratings        float64      `bson:"ratings" json:"ratings"`
	NumOfReviews   int          `bson:"num_of_reviews" json:"num_of_reviews"`
	Category       RoomCategory `bson:"category" json:"category"`
	Images         []RoomImage  `bson:"images" json:"images"`
	Reviews        []Review     `bson:"reviews" json:"reviews"`
	OwnerID        string       `bson:"user" json:"user"`
	CreatedAt      time.Time    `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time    `bson:"updated_at" json:"updated_at"`
}

// AverageRating returns the arithmetic mean of the ratings in reviews, or 0
// when the list is empty.
func AverageRating(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var sum float64
	for _, rv := range reviews {
		sum += rv.Rating
	}
	return sum / float64(len(reviews))
}
