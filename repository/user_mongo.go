package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"twitter-clone/model"
)

// MongoUserRepository implements UserRepository on a mongo collection.
type MongoUserRepository struct {
	users *mongo.Collection
}

func NewMongoUserRepository(users *mongo.Collection) *MongoUserRepository {
	return &MongoUserRepository{users: users}
}

func (r *MongoUserRepository) Insert(ctx context.Context, user *model.User) (primitive.ObjectID, error) {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Followers == nil {
		user.Followers = []primitive.ObjectID{}
	}
	if user.Following == nil {
		user.Following = []primitive.ObjectID{}
	}

	result, err := r.users.InsertOne(ctx, user)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id := result.InsertedID.(primitive.ObjectID)
	user.ID = id
	return id, nil
}

func (r *MongoUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	return r.findOne(ctx, bson.D{{Key: "_id", Value: id}})
}

func (r *MongoUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.findOne(ctx, bson.D{{Key: "username", Value: username}})
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, bson.D{{Key: "email", Value: email}})
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.D) (*model.User, error) {
	var user model.User
	err := r.users.FindOne(ctx, filter).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *MongoUserRepository) AddFollowing(ctx context.Context, userID, targetID primitive.ObjectID) error {
	return r.push(ctx, userID, "following", targetID)
}

func (r *MongoUserRepository) RemoveFollowing(ctx context.Context, userID, targetID primitive.ObjectID) error {
	return r.pull(ctx, userID, "following", targetID)
}

func (r *MongoUserRepository) AddFollower(ctx context.Context, userID, followerID primitive.ObjectID) error {
	return r.push(ctx, userID, "followers", followerID)
}

func (r *MongoUserRepository) RemoveFollower(ctx context.Context, userID, followerID primitive.ObjectID) error {
	return r.pull(ctx, userID, "followers", followerID)
}

func (r *MongoUserRepository) push(ctx context.Context, id primitive.ObjectID, field string, value primitive.ObjectID) error {
	_, err := r.users.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{
			{Key: "$push", Value: bson.D{{Key: field, Value: value}}},
			{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: time.Now().UTC()}}},
		},
	)
	return err
}

func (r *MongoUserRepository) pull(ctx context.Context, id primitive.ObjectID, field string, value primitive.ObjectID) error {
	_, err := r.users.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{
			{Key: "$pull", Value: bson.D{{Key: field, Value: value}}},
			{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: time.Now().UTC()}}},
		},
	)
	return err
}

func (r *MongoUserRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) error {
	set := bson.M{"updatedAt": time.Now().UTC()}
	for key, value := range fields {
		set[key] = value
	}
	_, err := r.users.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: set}},
	)
	return err
}

func (r *MongoUserRepository) FindSummaries(ctx context.Context, ids []primitive.ObjectID) ([]model.UserSummary, error) {
	summaries := []model.UserSummary{}
	if len(ids) == 0 {
		return summaries, nil
	}

	cursor, err := r.users.Find(ctx, bson.D{
		{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}},
	})
	if err != nil {
		return nil, err
	}
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}
