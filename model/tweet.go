package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tweet is the stored tweet document. Likes and RetweetBy hold user ids;
// Replies holds the ids of reply tweets, parent to child.
type Tweet struct {
	ID        primitive.ObjectID   `json:"_id" bson:"_id,omitempty"`
	Content   string               `json:"content" bson:"content"`
	TweetedBy primitive.ObjectID   `json:"tweetedBy" bson:"tweetedBy"`
	Likes     []primitive.ObjectID `json:"likes" bson:"likes"`
	RetweetBy []primitive.ObjectID `json:"retweetBy" bson:"retweetBy"`
	Replies   []primitive.ObjectID `json:"replies" bson:"replies"`
	Image     string               `json:"image,omitempty" bson:"image,omitempty"`
	CreatedAt time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt" bson:"updatedAt"`
}

// TweetDetail is a tweet with its relations populated: author, likers and
// retweeters as user summaries, replies as full tweet records.
type TweetDetail struct {
	ID        primitive.ObjectID `json:"_id"`
	Content   string             `json:"content"`
	TweetedBy UserSummary        `json:"tweetedBy"`
	Likes     []UserSummary      `json:"likes"`
	RetweetBy []UserSummary      `json:"retweetBy"`
	Replies   []Tweet            `json:"replies"`
	Image     string             `json:"image,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`
}
