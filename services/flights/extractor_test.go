package flights

import (
	"context"
	"errors"
	"testing"

	"tripweaver/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAI struct {
	response string
	err      error
	prompts  []models.ChatMessage
}

func (f *fakeAI) Complete(_ context.Context, messages []models.ChatMessage) (string, error) {
	f.prompts = messages
	return f.response, f.err
}

func TestExtract_PlainJSON(t *testing.T) {
	e := &Extractor{
		AI: &fakeAI{response: `{"FLIGHT_ORIGIN":"MAA","FLIGHT_DESTINATION":"CMB",` +
			`"FLIGHT_DEPART_DATE":"2025-09-10","FLIGHT_RETURN_DATE":"2025-09-15"}`},
		Clock: fixedClock(2025),
	}

	params := e.Extract(context.Background(), "Summary: Sri Lanka trip")

	assert.Equal(t, "MAA", params.Origin)
	assert.Equal(t, "CMB", params.Destination)
	assert.Equal(t, "2025-09-10", params.DepartDate)
	assert.Equal(t, "2025-09-15", params.ReturnDate)
}

func TestExtract_FencedJSON(t *testing.T) {
	e := &Extractor{
		AI: &fakeAI{response: "```json\n{\"FLIGHT_ORIGIN\":\"MAD\",\"FLIGHT_DESTINATION\":\"LIS\"," +
			"\"FLIGHT_DEPART_DATE\":\"\",\"FLIGHT_RETURN_DATE\":\"\"}\n```"},
		Clock: fixedClock(2025),
	}

	params := e.Extract(context.Background(), "")

	assert.Equal(t, "MAD", params.Origin)
	assert.Equal(t, "LIS", params.Destination)
	assert.Empty(t, params.DepartDate)
}

func TestExtract_JSONBuriedInProse(t *testing.T) {
	e := &Extractor{
		AI: &fakeAI{response: `Sure, here are the parameters: {"FLIGHT_ORIGIN":"BER",` +
			`"FLIGHT_DESTINATION":"ROM","FLIGHT_DEPART_DATE":"2025-03-01","FLIGHT_RETURN_DATE":"2025-03-08"} hope that helps`},
		Clock: fixedClock(2025),
	}

	params := e.Extract(context.Background(), "")

	assert.Equal(t, "BER", params.Origin)
	assert.Equal(t, "2025-03-08", params.ReturnDate)
}

func TestExtract_GeneratorErrorDegradesToEmpty(t *testing.T) {
	e := &Extractor{
		AI:    &fakeAI{err: errors.New("model unavailable")},
		Clock: fixedClock(2025),
	}

	params := e.Extract(context.Background(), "Summary: anything")

	assert.Equal(t, models.FlightParams{}, params)
}

func TestExtract_UnparseableOutputDegradesToEmpty(t *testing.T) {
	e := &Extractor{
		AI:    &fakeAI{response: "I could not produce JSON for this request."},
		Clock: fixedClock(2025),
	}

	params := e.Extract(context.Background(), "Summary: anything")

	assert.Equal(t, models.FlightParams{}, params)
}

func TestExtract_PromptCarriesCurrentYearAndSummary(t *testing.T) {
	ai := &fakeAI{response: `{"FLIGHT_ORIGIN":"","FLIGHT_DESTINATION":"","FLIGHT_DEPART_DATE":"","FLIGHT_RETURN_DATE":""}`}
	e := &Extractor{AI: ai, Clock: fixedClock(2031)}

	e.Extract(context.Background(), "Summary: Destination: Iceland")

	require.Len(t, ai.prompts, 2)
	assert.Equal(t, models.RoleSystem, ai.prompts[0].Role)
	assert.Contains(t, ai.prompts[0].Content, "2031")
	assert.Equal(t, "Summary: Destination: Iceland", ai.prompts[1].Content)
}

func TestFirstJSONObject_IgnoresBracesInsideStrings(t *testing.T) {
	s := `noise {"a":"br{ok}en","b":1} trailing`
	assert.Equal(t, `{"a":"br{ok}en","b":1}`, firstJSONObject(s))
}
