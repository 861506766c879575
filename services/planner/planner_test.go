package planner

import (
	"context"
	"errors"
	"testing"
	"time"

	"tripweaver/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAI struct {
	response string
	err      error
}

func (f *fakeAI) Complete(_ context.Context, _ []models.ChatMessage) (string, error) {
	return f.response, f.err
}

func fixedClock(year int) func() time.Time {
	return func() time.Time {
		return time.Date(year, time.June, 1, 0, 0, 0, 0, time.UTC)
	}
}

const validPlan = `{
	"response": "Flight Details\nDay 1: arrive in Colombo...",
	"days": {
		"Day 1": {"HOTEL_CHECKIN": "2025-09-10", "HOTEL_CHECKOUT": "2025-09-12", "HOTEL_DESTINATION": "Colombo"},
		"Day 3": {"HOTEL_CHECKIN": "2025-09-12", "HOTEL_CHECKOUT": "2025-09-15", "HOTEL_DESTINATION": "Kandy"}
	}
}`

func TestGenerate_ValidPlan(t *testing.T) {
	g := &Generator{AI: &fakeAI{response: validPlan}, Clock: fixedClock(2025)}

	narrative, days := g.Generate(context.Background(), "context")

	assert.Contains(t, narrative, "Flight Details")
	require.Len(t, days, 2)
	assert.Equal(t, models.DayStay{
		CheckIn:     "2025-09-10",
		CheckOut:    "2025-09-12",
		Destination: "Colombo",
	}, days["Day 1"])
	assert.Equal(t, "Kandy", days["Day 3"].Destination)
}

func TestGenerate_FencedPlan(t *testing.T) {
	g := &Generator{AI: &fakeAI{response: "```json\n" + validPlan + "\n```"}, Clock: fixedClock(2025)}

	narrative, days := g.Generate(context.Background(), "context")

	assert.Contains(t, narrative, "Flight Details")
	assert.Len(t, days, 2)
}

func TestGenerate_EmptyDaysIsValid(t *testing.T) {
	g := &Generator{
		AI:    &fakeAI{response: `{"response": "A day trip, no overnight stays.", "days": {}}`},
		Clock: fixedClock(2025),
	}

	narrative, days := g.Generate(context.Background(), "context")

	assert.Equal(t, "A day trip, no overnight stays.", narrative)
	assert.Empty(t, days)
}

func TestGenerate_MissingDaysKeyFallsBack(t *testing.T) {
	raw := `{"response": "text only"}`
	g := &Generator{AI: &fakeAI{response: raw}, Clock: fixedClock(2025)}

	narrative, days := g.Generate(context.Background(), "context")

	assert.Contains(t, narrative, "missing required key 'days'")
	assert.Contains(t, narrative, "Raw response:")
	assert.Contains(t, narrative, raw)
	assert.Empty(t, days)
}

func TestGenerate_DayMissingFieldFallsBack(t *testing.T) {
	g := &Generator{
		AI: &fakeAI{response: `{"response": "x", "days": {
			"Day 1": {"HOTEL_CHECKIN": "2025-09-10", "HOTEL_DESTINATION": "Colombo"}
		}}`},
		Clock: fixedClock(2025),
	}

	narrative, days := g.Generate(context.Background(), "context")

	assert.Contains(t, narrative, "missing HOTEL_CHECKOUT in Day 1")
	assert.Empty(t, days)
}

func TestGenerate_NonJSONFallsBack(t *testing.T) {
	g := &Generator{AI: &fakeAI{response: "here is your itinerary, enjoy!"}, Clock: fixedClock(2025)}

	narrative, days := g.Generate(context.Background(), "context")

	assert.Contains(t, narrative, "invalid JSON")
	assert.Contains(t, narrative, "here is your itinerary, enjoy!")
	assert.Empty(t, days)
}

func TestGenerate_GeneratorErrorFallsBack(t *testing.T) {
	g := &Generator{AI: &fakeAI{err: errors.New("deadline exceeded")}, Clock: fixedClock(2025)}

	narrative, days := g.Generate(context.Background(), "context")

	assert.Equal(t, "Error generating itinerary: deadline exceeded", narrative)
	assert.NotNil(t, days)
	assert.Empty(t, days)
}
