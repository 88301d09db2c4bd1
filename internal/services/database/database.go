// Package database provides the MongoDB client used by the gateway.
package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"guardian-eye-api/internal/config"
)

// DB holds the MongoDB client.
type DB struct {
	client *mongo.Client
	dbName string
}

// New creates a client for the configured deployment. The driver connects
// lazily: no I/O happens until the first operation, and the connection is
// shared across requests for the life of the process.
func New(cfg *config.Config) (*DB, error) {
	opts := options.Client().ApplyURI(cfg.MongoURI)
	if cfg.PingTimeout > 0 {
		opts.SetServerSelectionTimeout(cfg.PingTimeout)
	}

	client, err := mongo.Connect(context.Background(), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongodb client: %w", err)
	}

	return &DB{client: client, dbName: cfg.MongoDatabase}, nil
}

// Ping issues the administrative {ping: 1} command against the admin
// database to confirm connectivity without performing real work.
func (db *DB) Ping(ctx context.Context) error {
	return db.client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}

// Close disconnects the client.
func (db *DB) Close() {
	if db.client != nil {
		_ = db.client.Disconnect(context.Background())
	}
}

// Client returns the underlying driver client for direct access if needed.
func (db *DB) Client() *mongo.Client {
	return db.client
}

// Database returns a handle to the configured application database.
func (db *DB) Database() *mongo.Database {
	return db.client.Database(db.dbName)
}
