package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collections bundles the per-collection handles the repositories work against.
type Collections struct {
	Services *mongo.Collection
	Bookings *mongo.Collection
}

// Connect establishes the MongoDB connection and verifies it with a ping.
func Connect(ctx context.Context, uri, dbName string) (*mongo.Client, *Collections, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, nil, err
	}

	db := client.Database(dbName)
	cols := &Collections{
		Services: db.Collection("services"),
		Bookings: db.Collection("bookings"),
	}
	return client, cols, nil
}
