// Package repository defines the storage interfaces the services depend on
// and their MongoDB implementations. An in-memory implementation backs the
// tests and local development without a database.
package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"twitter-clone/model"
)

// ErrNotFound is returned when a document does not exist.
var ErrNotFound = errors.New("not found")

// UserRepository persists user documents and their follow relations.
// AddFollowing/AddFollower (and their Remove twins) are deliberately
// separate single-document writes: the two sides of a follow edge are
// written independently, with no transaction spanning them.
type UserRepository interface {
	Insert(ctx context.Context, user *model.User) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)

	AddFollowing(ctx context.Context, userID, targetID primitive.ObjectID) error
	RemoveFollowing(ctx context.Context, userID, targetID primitive.ObjectID) error
	AddFollower(ctx context.Context, userID, followerID primitive.ObjectID) error
	RemoveFollower(ctx context.Context, userID, followerID primitive.ObjectID) error

	UpdateFields(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) error
	FindSummaries(ctx context.Context, ids []primitive.ObjectID) ([]model.UserSummary, error)
}

// TweetRepository persists tweet documents and their engagement relations.
type TweetRepository interface {
	Insert(ctx context.Context, tweet *model.Tweet) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Tweet, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Tweet, error)
	FindAll(ctx context.Context) ([]model.Tweet, error)
	FindByAuthor(ctx context.Context, author primitive.ObjectID) ([]model.Tweet, error)
	Delete(ctx context.Context, id primitive.ObjectID) error

	AddLike(ctx context.Context, tweetID, userID primitive.ObjectID) error
	RemoveLike(ctx context.Context, tweetID, userID primitive.ObjectID) error
	AddRetweet(ctx context.Context, tweetID, userID primitive.ObjectID) error
	AddReply(ctx context.Context, parentID, replyID primitive.ObjectID) error
}
