package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectMongo opens a connection and returns the client. Caller should call client.Disconnect(ctx).
func ConnectMongo(ctx context.Context, uri string, timeout time.Duration) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	clientOpts := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}

// EnsureBookIndexes deploys the compound ordering index backing the
// popularity-sorted book listing. Creating an index that already exists is a
// no-op, so this runs unconditionally at startup.
func EnsureBookIndexes(ctx context.Context, books *mongo.Collection) error {
	model := mongo.IndexModel{
		Keys: bson.D{{Key: "supporterCount", Value: -1}, {Key: "firstSuggested", Value: 1}},
	}
	if _, err := books.Indexes().CreateOne(ctx, model); err != nil {
		return fmt.Errorf("create book indexes: %w", err)
	}
	return nil
}
