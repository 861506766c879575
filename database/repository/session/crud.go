package sessionRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tripweaver/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Get returns the session for the given id, or nil when none exists.
func (r *mongoSessionRepo) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	var session models.Session
	err := r.coll.FindOne(ctx, bson.M{"sessionId": sessionID}).Decode(&session)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch session %s: %w", sessionID, err)
	}
	return &session, nil
}

// Upsert inserts or fully replaces the session record.
func (r *mongoSessionRepo) Upsert(ctx context.Context, session *models.Session) error {
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}
	session.UpdatedAt = time.Now()

	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"sessionId": session.SessionID}, session, opts)
	if err != nil {
		return fmt.Errorf("failed to upsert session %s: %w", session.SessionID, err)
	}
	return nil
}
