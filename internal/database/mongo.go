package database

import (
	"context"
	"errors"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotConnected is returned when the gateway is used before a
// successful Connect. Requests that touch the store surface this as an
// internal error; the process itself keeps running.
var ErrNotConnected = errors.New("database not connected")

// Gateway wraps the MongoDB client and database handle. It is
// constructed once at startup and injected into the repositories;
// there is no package-level singleton.
type Gateway struct {
	uri    string
	dbName string
	client *mongo.Client
	db     *mongo.Database
}

// NewGateway creates an unconnected gateway for the given endpoint.
func NewGateway(uri, dbName string) *Gateway {
	return &Gateway{uri: uri, dbName: dbName}
}

// Connect dials MongoDB and verifies the connection with a ping. There
// is no retry: on failure the gateway stays unconnected and every
// Collection call returns ErrNotConnected.
func (g *Gateway) Connect(ctx context.Context) error {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(g.uri))
	if err != nil {
		return err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		return err
	}

	g.client = client
	g.db = client.Database(g.dbName)
	log.Println("Connected to MongoDB")
	return nil
}

// Collection returns a handle to the named collection, or
// ErrNotConnected if Connect has not succeeded.
func (g *Gateway) Collection(name string) (*mongo.Collection, error) {
	if g.db == nil {
		return nil, ErrNotConnected
	}
	return g.db.Collection(name), nil
}

// Disconnect closes the underlying client, if connected.
func (g *Gateway) Disconnect(ctx context.Context) error {
	if g.client == nil {
		return nil
	}
	return g.client.Disconnect(ctx)
}
