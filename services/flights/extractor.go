// File: services/flights/extractor.go
package flights

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	ai "tripweaver/services/intelligence"

	"tripweaver/models"

	"go.uber.org/zap"
)

const extractorPrompt = "Current year is %d\n" +
	"You are a strict JSON extractor. Input is a single-line travel summary.\n" +
	"Produce ONLY one JSON object (no surrounding text) with these exact keys:\n" +
	"FLIGHT_ORIGIN, FLIGHT_DESTINATION, FLIGHT_DEPART_DATE, FLIGHT_RETURN_DATE.\n\n" +
	"Rules:\n" +
	"- Dates must be in YYYY-MM-DD. If no year is provided in the input, use the current year.\n" +
	"- Use IATA airport codes (3 uppercase letters) for FLIGHT_ORIGIN and FLIGHT_DESTINATION when possible. " +
	"If the destination is a region, landmark, or mountain, determine the nearest major commercial airport " +
	"and return its IATA code. If you cannot determine a valid 3-letter IATA code, return an empty string.\n" +
	"- If the input provides a depart date but no return date, and the summary includes a number of days " +
	"(e.g., 'Duration: 5 days'), calculate the return date as depart_date + duration_days.\n" +
	"- If flight is not needed or a field is unknown, return an empty string for that key.\n" +
	"- Return valid JSON only, no markdown, no explanation, no extra fields.\n"

// Extractor turns a free-text trip summary into structured flight parameters.
// Extraction never fails the caller; it degrades to empty fields instead.
type Extractor struct {
	AI     ai.Client
	Logger *zap.Logger

	// Clock supplies the current time; defaults to time.Now. Tests inject a
	// fixed clock so year correction is deterministic.
	Clock func() time.Time
}

func (e *Extractor) now() time.Time {
	if e.Clock != nil {
		return e.Clock()
	}
	return time.Now()
}

func (e *Extractor) logger() *zap.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return zap.L()
}

// Extract asks the text generator for the four flight parameters and
// normalizes the result. Every output key is always present, each either a
// valid value or an empty string.
func (e *Extractor) Extract(ctx context.Context, summary string) models.FlightParams {
	prompt := fmt.Sprintf(extractorPrompt, e.now().Year())
	raw, err := e.AI.Complete(ctx, []models.ChatMessage{
		{Role: models.RoleSystem, Content: prompt},
		{Role: models.RoleUser, Content: summary},
	})
	if err != nil {
		e.logger().Warn("flight param extraction failed", zap.Error(err))
		return models.FlightParams{}
	}

	params, err := parseParams(raw)
	if err != nil {
		e.logger().Warn("flight param output unparseable", zap.Error(err))
		return models.FlightParams{}
	}
	return e.Normalize(params, summary)
}

var codeFenceRe = regexp.MustCompile("^```(?:json)?\\s*|\\s*```$")

// parseParams strips code fences, isolates the first balanced {...} block and
// decodes it. The generator may wrap the JSON in prose.
func parseParams(raw string) (models.FlightParams, error) {
	var params models.FlightParams

	cleaned := codeFenceRe.ReplaceAllString(strings.TrimSpace(raw), "")
	block := firstJSONObject(cleaned)
	if block == "" {
		return params, fmt.Errorf("no JSON object in output %q", raw)
	}
	if err := json.Unmarshal([]byte(block), &params); err != nil {
		return params, fmt.Errorf("invalid JSON in output: %w", err)
	}
	return params, nil
}

// firstJSONObject returns the first balanced {...} block in s, or "".
func firstJSONObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return ""
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
