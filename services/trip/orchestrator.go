// File: services/trip/orchestrator.go
package trip

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tripweaver/models"

	"go.uber.org/zap"
)

func (s *DefaultPlannerService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.L()
}

func (s *DefaultPlannerService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

// SubmitMessage handles one conversation turn: it appends the user message to
// the session history, generates the assistant reply, and when the reply is a
// final trip summary it runs the downstream itinerary pipeline. The updated
// history and flags are always committed regardless of pipeline success; only
// a session persistence failure fails the turn.
func (s *DefaultPlannerService) SubmitMessage(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	if req.SessionID == "" || req.Message == "" {
		return nil, ErrMissingFields
	}

	session, err := s.Sessions.Get(ctx, req.SessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session == nil {
		session = &models.Session{SessionID: req.SessionID}
	}

	session.LastMessage = req.Message
	if req.Destination != "" {
		session.Destination = req.Destination
	}
	if req.Days > 0 {
		session.Days = req.Days
	}
	if len(req.Preferences) > 0 {
		session.Preferences = req.Preferences
	}
	session.AppendTurn(models.RoleUser, req.Message)

	reply := s.generateReply(ctx, session.History)
	session.AppendTurn(models.RoleAssistant, reply)

	finished := isTripSummary(reply)
	if finished {
		session.Finished = true
		s.runPipeline(ctx, session, reply, req.Message)
	}

	if err := s.Sessions.Upsert(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	return &models.ChatResponse{Message: reply, Finished: finished}, nil
}

// generateReply produces the assistant reply for the current history. A
// generation failure degrades to a diagnostic reply instead of failing the
// turn.
func (s *DefaultPlannerService) generateReply(ctx context.Context, history []models.ChatMessage) string {
	messages := make([]models.ChatMessage, 0, len(history)+1)
	messages = append(messages, models.ChatMessage{
		Role:    models.RoleSystem,
		Content: conversationPrompt(s.now().Year()),
	})
	messages = append(messages, history...)

	reply, err := s.AI.Complete(ctx, messages)
	if err != nil {
		s.logger().Error("assistant reply generation failed", zap.Error(err))
		return fmt.Sprintf("Error generating response: %v", err)
	}
	return reply
}

// runPipeline executes the finished-turn stages in sequence. Every stage's
// failure is caught and recorded locally so that, for example, a hotel lookup
// failure does not prevent the narrative and flight portions of the document
// from being produced and saved.
func (s *DefaultPlannerService) runPipeline(ctx context.Context, session *models.Session, summary, userMessage string) {
	var stages []StageResult
	record := func(stage string, err error) {
		stages = append(stages, StageResult{Stage: stage, Err: err})
		if err != nil {
			s.logger().Warn("pipeline stage failed",
				zap.String("sessionId", session.SessionID),
				zap.String("stage", stage),
				zap.Error(err))
		}
	}

	// Parameter extraction, planning, aggregation and assembly degrade
	// internally to fallback values; the stages recorded here are the ones
	// that can genuinely fail.
	params := s.Extractor.Extract(ctx, summary)

	details := s.fetchFlightDetails(ctx, params, record)

	narrative, days := s.Planner.Generate(ctx, plannerContext(summary, details))

	// The budget tier comes from the triggering user message, not the
	// generated summary.
	tier := deriveBudgetTier(userMessage)

	hotelResults := s.Hotels.Aggregate(ctx, days, tier)

	document := s.Assembler.Assemble(ctx, narrative, hotelsText(hotelResults))

	record("persist", s.Itineraries.Upsert(ctx, session.SessionID, document))

	session.TripDetails.Days = days

	failed := 0
	for _, st := range stages {
		if st.Failed() {
			failed++
		}
	}
	s.logger().Info("itinerary pipeline completed",
		zap.String("sessionId", session.SessionID),
		zap.Int("failedStages", failed))
}

// fetchFlightDetails looks up the cheapest offer and recent monthly offers
// for the extracted route. Missing parameters or lookup failures degrade to
// an empty details block.
func (s *DefaultPlannerService) fetchFlightDetails(ctx context.Context, params models.FlightParams, record func(string, error)) models.FlightDetails {
	var details models.FlightDetails
	if params.Origin == "" || params.Destination == "" {
		s.logger().Info("skipping flight lookup, route incomplete",
			zap.String("origin", params.Origin),
			zap.String("destination", params.Destination))
		return details
	}

	cheapest, err := s.Flights.Cheapest(ctx, params.Origin, params.Destination, params.DepartDate, params.ReturnDate)
	record("flights.cheapest", err)
	if err == nil {
		details.Cheapest = cheapest
	}

	if len(params.DepartDate) >= 7 {
		month := params.DepartDate[:7] + "-01"
		offers, err := s.Flights.RecentOffers(ctx, params.Origin, params.Destination, month)
		record("flights.offers", err)
		if err == nil {
			details.Additional = offers
		}
	}
	return details
}

// plannerContext packs the summary and flight details into the itinerary
// generator's input blob.
func plannerContext(summary string, details models.FlightDetails) string {
	payload := struct {
		Response      string               `json:"response"`
		FlightDetails models.FlightDetails `json:"flight_details"`
	}{Response: summary, FlightDetails: details}

	b, err := json.Marshal(payload)
	if err != nil {
		return summary
	}
	return string(b)
}

// hotelsText renders the aggregation result for the assembler.
func hotelsText(results map[string]models.StayResult) string {
	if len(results) == 0 {
		return ""
	}
	b, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return ""
	}
	return string(b)
}

// GetItinerary returns the persisted final document for the session.
func (s *DefaultPlannerService) GetItinerary(ctx context.Context, sessionID string) (string, error) {
	record, err := s.Itineraries.GetBySessionID(ctx, sessionID)
	if err != nil {
		return "", err
	}
	return record.Document, nil
}
