package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"twitter-clone/model"
)

// MongoTweetRepository implements TweetRepository on a mongo collection.
type MongoTweetRepository struct {
	tweets *mongo.Collection
}

func NewMongoTweetRepository(tweets *mongo.Collection) *MongoTweetRepository {
	return &MongoTweetRepository{tweets: tweets}
}

func (r *MongoTweetRepository) Insert(ctx context.Context, tweet *model.Tweet) (primitive.ObjectID, error) {
	now := time.Now().UTC()
	tweet.CreatedAt = now
	tweet.UpdatedAt = now
	if tweet.Likes == nil {
		tweet.Likes = []primitive.ObjectID{}
	}
	if tweet.RetweetBy == nil {
		tweet.RetweetBy = []primitive.ObjectID{}
	}
	if tweet.Replies == nil {
		tweet.Replies = []primitive.ObjectID{}
	}

	result, err := r.tweets.InsertOne(ctx, tweet)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id := result.InsertedID.(primitive.ObjectID)
	tweet.ID = id
	return id, nil
}

func (r *MongoTweetRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Tweet, error) {
	var tweet model.Tweet
	err := r.tweets.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&tweet)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tweet, nil
}

func (r *MongoTweetRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Tweet, error) {
	if len(ids) == 0 {
		return []model.Tweet{}, nil
	}
	return r.find(ctx, bson.D{
		{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}},
	})
}

func (r *MongoTweetRepository) FindAll(ctx context.Context) ([]model.Tweet, error) {
	return r.find(ctx, bson.D{})
}

func (r *MongoTweetRepository) FindByAuthor(ctx context.Context, author primitive.ObjectID) ([]model.Tweet, error) {
	return r.find(ctx, bson.D{{Key: "tweetedBy", Value: author}})
}

// find returns tweets most recent first.
func (r *MongoTweetRepository) find(ctx context.Context, filter bson.D) ([]model.Tweet, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.tweets.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	tweets := []model.Tweet{}
	if err := cursor.All(ctx, &tweets); err != nil {
		return nil, err
	}
	return tweets, nil
}

func (r *MongoTweetRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.tweets.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AddLike uses $addToSet so liking twice cannot duplicate the entry.
func (r *MongoTweetRepository) AddLike(ctx context.Context, tweetID, userID primitive.ObjectID) error {
	return r.update(ctx, tweetID, bson.D{
		{Key: "$addToSet", Value: bson.D{{Key: "likes", Value: userID}}},
	})
}

// RemoveLike uses $pull, which removes every matching occurrence.
func (r *MongoTweetRepository) RemoveLike(ctx context.Context, tweetID, userID primitive.ObjectID) error {
	return r.update(ctx, tweetID, bson.D{
		{Key: "$pull", Value: bson.D{{Key: "likes", Value: userID}}},
	})
}

func (r *MongoTweetRepository) AddRetweet(ctx context.Context, tweetID, userID primitive.ObjectID) error {
	return r.update(ctx, tweetID, bson.D{
		{Key: "$addToSet", Value: bson.D{{Key: "retweetBy", Value: userID}}},
	})
}

func (r *MongoTweetRepository) AddReply(ctx context.Context, parentID, replyID primitive.ObjectID) error {
	return r.update(ctx, parentID, bson.D{
		{Key: "$push", Value: bson.D{{Key: "replies", Value: replyID}}},
	})
}

func (r *MongoTweetRepository) update(ctx context.Context, id primitive.ObjectID, update bson.D) error {
	update = append(update, bson.E{
		Key: "$set", Value: bson.D{{Key: "updatedAt", Value: time.Now().UTC()}},
	})
	result, err := r.tweets.UpdateOne(ctx, bson.D{{Key: "_id", Value: id}}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
