// File: services/assembler/assembler.go
package assembler

import (
	"context"
	"fmt"

	"tripweaver/models"
	ai "tripweaver/services/intelligence"

	"go.uber.org/zap"
)

const assemblerPrompt = "You are an expert trip assistant.\n" +
	"Task: Combine the provided day-by-day trip plan (which also includes flight details) and the " +
	"hotels text into a single, clear, and actionable itinerary for the traveler.\n\n" +
	"Important input note: the second block (HOTELS_TEXT) may be free-form text OR machine-generated " +
	"data printed as text. It contains per-day hotel search results and MUST be treated as " +
	"authoritative: preserve any booking URLs exactly as they appear.\n\n" +
	"Output rules (mandatory):\n" +
	"- Return PLAIN TEXT only (no JSON, no markdown fences).\n" +
	"- Start with a concise Trip Summary (one paragraph) including route and dates.\n" +
	"- Include a 'Flight Summary' block with booking links and a clear action (e.g., 'Book this flight').\n" +
	"- For each day (Day 1..N) produce a day header and include:\n" +
	"  * Morning/Afternoon/Evening bullets summarizing activities from the trip text.\n" +
	"  * Hotel booking info for that night, using the booking URL exactly as found in HOTELS_TEXT " +
	"(label as 'Booking: <url>').\n" +
	"  * Actionable checklist items (tickets to buy, reservations to confirm, travel to next location).\n" +
	"- If hotels are absent for a day, explicitly write 'Hotel: not available' for that night.\n" +
	"- Preserve all URLs from the inputs and never fabricate booking links. If a hotel entry lacks a " +
	"URL, state 'Booking link: not available'.\n" +
	"- Keep language friendly and concise; use bullets and short sentences.\n"

// Assembler merges the human-readable itinerary narrative with the aggregated
// hotel data into the final trip document.
type Assembler struct {
	AI     ai.Client
	Logger *zap.Logger
}

func (a *Assembler) logger() *zap.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return zap.L()
}

// Assemble returns the final document. Every URL in the output must appear
// byte-identical in one of the inputs; the generator is instructed never to
// fabricate links. On generator failure a diagnostic string is returned so
// the orchestrator always has something to persist.
func (a *Assembler) Assemble(ctx context.Context, narrative, hotelsText string) string {
	if hotelsText == "" {
		hotelsText = "(none provided)"
	}
	userContent := "TRIP_AND_FLIGHT_TEXT:\n" + narrative + "\n\nHOTELS_TEXT:\n" + hotelsText

	doc, err := a.AI.Complete(ctx, []models.ChatMessage{
		{Role: models.RoleSystem, Content: assemblerPrompt},
		{Role: models.RoleUser, Content: userContent},
	})
	if err != nil {
		a.logger().Warn("final document assembly failed", zap.Error(err))
		return fmt.Sprintf("Error creating final itinerary: %v", err)
	}
	return doc
}
