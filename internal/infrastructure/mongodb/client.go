package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names used by the API.
const (
	UsersCollection       = "users"
	ClassesCollection     = "classes"
	InstructorsCollection = "instructors"
	SelectionsCollection  = "selected-classes"
	EnrollmentsCollection = "enrolled-classes"
	PaymentsCollection    = "payments"
)

// Connect establishes a client pinned to Stable API v1 and verifies the
// connection with a ping before returning it.
func Connect(ctx context.Context, uri string, timeout time.Duration) (*mongo.Client, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).SetStrict(true).SetDeprecationErrors(true)
	opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}

// Disconnect closes the client with a bounded timeout.
func Disconnect(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return client.Disconnect(ctx)
}
