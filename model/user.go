package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultProfilePicture is assigned to every user at registration.
const DefaultProfilePicture = "https://tse1.mm.bing.net/th?id=OIP.SxuyKL-Ca-_bXp1TC4c4-gHaF3&pid=Api&P=0&h=180"

// User is the stored user document. Followers and Following hold user ids;
// the invariant "A follows B" means B is in A.Following and A is in
// B.Followers, maintained by the social graph service on every mutation.
type User struct {
	ID             primitive.ObjectID   `json:"_id" bson:"_id,omitempty"`
	Name           string               `json:"name" bson:"name"`
	Email          string               `json:"email" bson:"email"`
	Username       string               `json:"username" bson:"username"`
	Password       string               `json:"-" bson:"password"`
	ProfilePicture string               `json:"profilePicture" bson:"profilePicture"`
	Location       string               `json:"location,omitempty" bson:"location,omitempty"`
	DateOfBirth    string               `json:"dateOfBirth,omitempty" bson:"dateOfBirth,omitempty"`
	Followers      []primitive.ObjectID `json:"followers" bson:"followers"`
	Following      []primitive.ObjectID `json:"following" bson:"following"`
	CreatedAt      time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt" bson:"updatedAt"`
}

// UserSummary is the projection embedded in place of a user id when a
// relation is populated on a read path.
type UserSummary struct {
	ID             primitive.ObjectID `json:"_id" bson:"_id"`
	Name           string             `json:"name" bson:"name"`
	Username       string             `json:"username" bson:"username"`
	ProfilePicture string             `json:"profilePicture" bson:"profilePicture"`
}

// UserProfile is a user with followers and following resolved to summaries.
// The password never appears here.
type UserProfile struct {
	ID             primitive.ObjectID `json:"_id"`
	Name           string             `json:"name"`
	Email          string             `json:"email"`
	Username       string             `json:"username"`
	ProfilePicture string             `json:"profilePicture"`
	Location       string             `json:"location,omitempty"`
	DateOfBirth    string             `json:"dateOfBirth,omitempty"`
	Followers      []UserSummary      `json:"followers"`
	Following      []UserSummary      `json:"following"`
	CreatedAt      time.Time          `json:"createdAt"`
}

// ProfileUpdate carries a partial profile edit. Empty fields are treated
// as not provided and left untouched.
type ProfileUpdate struct {
	Name        string `json:"name"`
	DateOfBirth string `json:"dateOfBirth"`
	Location    string `json:"location"`
}
