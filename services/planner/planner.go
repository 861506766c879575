// File: services/planner/planner.go
package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"tripweaver/models"
	ai "tripweaver/services/intelligence"

	"go.uber.org/zap"
)

const plannerPrompt = "Current year is %d\n" +
	"You are an expert travel itinerary generator.\n\n" +
	"CRITICAL OUTPUT REQUIREMENT: Return ONLY a single, valid JSON object and nothing else. " +
	"The JSON must have exactly two keys: 'response' and 'days'.\n\n" +
	"Response Content Requirements:\n" +
	"- 'response' must be a comprehensive, human-friendly itinerary text.\n" +
	"- Always include a 'Flight Details' section at the very top of the 'response' field. " +
	"If the input contains flight details with booking links, use those links verbatim.\n" +
	"- Structure each day (Day 1, Day 2, etc.) with Morning/Afternoon/Evening sections.\n" +
	"- Include specific attractions, activities, and logistics for each time period, plus " +
	"practical details: travel times, booking suggestions, transportation options.\n\n" +
	"Days Mapping Requirements:\n" +
	"- 'days' must be an object mapping each day label to hotel booking details.\n" +
	"- Each day must include: HOTEL_CHECKIN, HOTEL_CHECKOUT, and HOTEL_DESTINATION.\n" +
	"- Use the exact format: {\"Day 1\": {\"HOTEL_CHECKIN\": \"YYYY-MM-DD\", \"HOTEL_CHECKOUT\": \"YYYY-MM-DD\", \"HOTEL_DESTINATION\": \"CityName\"}}\n" +
	"- Calculate dates from the trip start date and duration in the input.\n" +
	"- For multi-night stays in the same location, keep the same destination but adjust checkout dates.\n" +
	"- Omit a day from 'days' only when no overnight accommodation is needed for it.\n\n" +
	"Output must be valid JSON only, with no text before or after, and only the " +
	"'response' and 'days' keys in the root object."

// Generator turns a trip summary plus flight context into a day-by-day plan.
// The day mapping it returns is advisory scheduling metadata, not
// authoritative travel data: an empty mapping means "no hotel search needed",
// never an error.
type Generator struct {
	AI     ai.Client
	Logger *zap.Logger

	Clock func() time.Time
}

func (g *Generator) logger() *zap.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return zap.L()
}

func (g *Generator) year() int {
	if g.Clock != nil {
		return g.Clock().Year()
	}
	return time.Now().Year()
}

// Generate produces the narrative text and the per-day accommodation mapping.
// The generator's output is never trusted: it is validated locally and any
// structural failure yields a fallback payload whose narrative embeds the raw
// output, so the failure surfaces in the final document instead of aborting
// the session.
func (g *Generator) Generate(ctx context.Context, contextText string) (string, map[string]models.DayStay) {
	raw, err := g.AI.Complete(ctx, []models.ChatMessage{
		{Role: models.RoleSystem, Content: fmt.Sprintf(plannerPrompt, g.year())},
		{Role: models.RoleUser, Content: contextText},
	})
	if err != nil {
		g.logger().Warn("itinerary generation failed", zap.Error(err))
		return fmt.Sprintf("Error generating itinerary: %v", err), map[string]models.DayStay{}
	}

	narrative, days, err := parsePlan(raw)
	if err != nil {
		g.logger().Warn("itinerary output failed validation", zap.Error(err))
		return fmt.Sprintf("Error: %v. Raw response: %s", err, raw), map[string]models.DayStay{}
	}
	return narrative, days
}

var planFenceRe = regexp.MustCompile("^```(?:json)?\\s*|\\s*```$")

// parsePlan validates the generator output: it must be a JSON object with both
// a 'response' string and a 'days' mapping, and every day entry must carry
// check-in, check-out and destination fields.
func parsePlan(raw string) (string, map[string]models.DayStay, error) {
	cleaned := planFenceRe.ReplaceAllString(strings.TrimSpace(raw), "")

	var root map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &root); err != nil {
		return "", nil, fmt.Errorf("the generator returned invalid JSON: %w", err)
	}

	responseRaw, ok := root["response"]
	if !ok {
		return "", nil, fmt.Errorf("missing required key 'response'")
	}
	daysRaw, ok := root["days"]
	if !ok {
		return "", nil, fmt.Errorf("missing required key 'days'")
	}

	var narrative string
	if err := json.Unmarshal(responseRaw, &narrative); err != nil {
		return "", nil, fmt.Errorf("'response' must be a string: %w", err)
	}

	var dayFields map[string]map[string]json.RawMessage
	if err := json.Unmarshal(daysRaw, &dayFields); err != nil {
		return "", nil, fmt.Errorf("'days' must be an object of day entries: %w", err)
	}
	for label, fields := range dayFields {
		for _, key := range []string{"HOTEL_CHECKIN", "HOTEL_CHECKOUT", "HOTEL_DESTINATION"} {
			if _, ok := fields[key]; !ok {
				return "", nil, fmt.Errorf("missing %s in %s", key, label)
			}
		}
	}

	days := make(map[string]models.DayStay, len(dayFields))
	if err := json.Unmarshal(daysRaw, &days); err != nil {
		return "", nil, fmt.Errorf("day entries are malformed: %w", err)
	}
	return narrative, days, nil
}
