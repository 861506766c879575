package trip

import (
	"context"
	"errors"
	"time"

	itineraryRepo "tripweaver/database/repository/itinerary"
	sessionRepo "tripweaver/database/repository/session"
	"tripweaver/models"
	"tripweaver/services/assembler"
	"tripweaver/services/flights"
	"tripweaver/services/hotels"
	ai "tripweaver/services/intelligence"
	"tripweaver/services/planner"

	"go.uber.org/zap"
)

// ErrMissingFields rejects a chat request without a session id or message.
// No state is mutated when it is returned.
var ErrMissingFields = errors.New("sessionId and message are required")

// PlannerService is the conversational trip-planning surface: submit one user
// message per turn and fetch the assembled itinerary document afterwards.
type PlannerService interface {
	SubmitMessage(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error)
	GetItinerary(ctx context.Context, sessionID string) (string, error)
}

// DefaultPlannerService implements PlannerService. It drives the pipeline
// stages in sequence per conversation turn and isolates their failures so one
// stage's failure does not abort the others.
type DefaultPlannerService struct {
	AI          ai.Client
	Sessions    sessionRepo.SessionRepository
	Itineraries itineraryRepo.ItineraryRepository
	Extractor   *flights.Extractor
	Flights     flights.PriceAPI
	Planner     *planner.Generator
	Hotels      *hotels.Aggregator
	Assembler   *assembler.Assembler
	Logger      *zap.Logger

	Clock func() time.Time
}

// StageResult records the outcome of one pipeline stage so the orchestrator
// composes failures explicitly instead of relying on panics or silent drops.
type StageResult struct {
	Stage string
	Err   error
}

// Failed reports whether the stage ended in an error.
func (r StageResult) Failed() bool {
	return r.Err != nil
}
