package db

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"twitter-clone/config"
)

// Connect opens a MongoDB client for the configured URL and verifies the
// connection with a ping. The caller owns the client and is responsible
// for calling Disconnect at shutdown.
func Connect(ctx context.Context, cfg *config.Config) (*mongo.Client, error) {
	clientOptions := options.Client().ApplyURI(cfg.Mongo.URL)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	return client, nil
}

// Users returns the users collection handle.
func Users(client *mongo.Client, cfg *config.Config) *mongo.Collection {
	return client.Database(cfg.Mongo.DBName).Collection("users")
}

// Tweets returns the tweets collection handle.
func Tweets(client *mongo.Client, cfg *config.Config) *mongo.Collection {
	return client.Database(cfg.Mongo.DBName).Collection("tweets")
}
