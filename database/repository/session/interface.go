package sessionRepo

import (
	"context"

	"tripweaver/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// SessionRepository stores conversation sessions keyed by session id.
type SessionRepository interface {
	// Get returns the session for the given id, or nil when none exists.
	Get(ctx context.Context, sessionID string) (*models.Session, error)
	// Upsert inserts or fully replaces the session record.
	Upsert(ctx context.Context, session *models.Session) error
}

type mongoSessionRepo struct {
	coll *mongo.Collection
}

// NewMongoSessionRepo returns a SessionRepository backed by MongoDB.
func NewMongoSessionRepo(client *mongo.Client, dbName string) SessionRepository {
	return &mongoSessionRepo{
		coll: client.Database(dbName).Collection("sessions"),
	}
}
