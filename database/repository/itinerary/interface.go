package itineraryRepo

import (
	"context"
	"errors"

	"tripweaver/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no itinerary document exists for a session.
var ErrNotFound = errors.New("itinerary not found")

// ItineraryRepository stores the final trip document, one per session id.
type ItineraryRepository interface {
	Upsert(ctx context.Context, sessionID, document string) error
	GetBySessionID(ctx context.Context, sessionID string) (*models.Itinerary, error)
}

type mongoItineraryRepo struct {
	coll *mongo.Collection
}

// NewMongoItineraryRepo returns an ItineraryRepository backed by MongoDB.
func NewMongoItineraryRepo(client *mongo.Client, dbName string) ItineraryRepository {
	return &mongoItineraryRepo{
		coll: client.Database(dbName).Collection("itineraries"),
	}
}
