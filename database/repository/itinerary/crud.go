package itineraryRepo

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

// Upsert stores the document for the session, replacing any previous one.
func (r *mongoItineraryRepo) Upsert(ctx context.Context, sessionID, document string) error {
	record := models.Itinerary{
		SessionID: sessionID,
		Document:  document,
		UpdatedAt: time.Now(),
	}
	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"sessionId": sessionID}, record, opts)
	if err != nil {
		return fmt.Errorf("failed to upsert itinerary for session %s: %w", sessionID, err)
	}
	return nil
}

// GetBySessionID returns the stored document, or ErrNotFound when absent.
func (r *mongoItineraryRepo) GetBySessionID(ctx context.Context, sessionID string) (*models.Itinerary, error) {
	var record models.Itinerary
	err := r.coll.FindOne(ctx, bson.M{"sessionId": sessionID}).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch itinerary for session %s: %w", sessionID, err)
	}
	return &record, nil
}
