package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect initializes the database connection and verifies it with a ping.
func Connect(uri, dbName string) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongodb connection failed: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongodb ping failed: %w", err)
	}

	return client.Database(dbName), nil
}

// EnsureIndexes creates the unique indexes the application relies on as the
// authoritative duplicate guards. Index creation is idempotent, so this runs
// on every startup.
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	_, err := database.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return fmt.Errorf("failed to create username index: %w", err)
	}

	_, err = database.Collection("employees").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return fmt.Errorf("failed to create email index: %w", err)
	}

	return nil
}
