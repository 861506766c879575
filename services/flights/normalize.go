package flights

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"tripweaver/models"
)

const dateLayout = "2006-01-02"

var (
	iataRe     = regexp.MustCompile(`^[A-Z]{3}$`)
	tokenSplit = regexp.MustCompile(`[,\s/()\-]+`)
	durationRe = regexp.MustCompile(`(?i)Duration\s*:\s*(\d+)`)
)

// Normalize validates and repairs extracted flight parameters. It is
// deterministic and independent of the text generator:
//   - airport codes must be exactly 3 letters, else fall back to the first
//     alphabetic token truncated to 3 letters, else empty;
//   - a depart date with a past year rolls forward to the current year;
//   - a missing return date is computed from a "Duration: N" found in the
//     summary; a return date before depart is reinterpreted in depart's year
//     or recomputed from the duration (or depart + 1 day).
//
// All date arithmetic is calendar-day addition with no time-zone component.
func (e *Extractor) Normalize(params models.FlightParams, summary string) models.FlightParams {
	out := params
	out.Origin = sanitizeIATA(out.Origin)
	out.Destination = sanitizeIATA(out.Destination)

	depart, ok := parseDate(out.DepartDate)
	if !ok {
		out.DepartDate = ""
		// Without a depart date the return date is kept only if it parses.
		if _, retOK := parseDate(out.ReturnDate); !retOK {
			out.ReturnDate = ""
		}
		return out
	}

	currentYear := e.now().Year()
	if depart.Year() < currentYear {
		depart = time.Date(currentYear, depart.Month(), depart.Day(), 0, 0, 0, 0, time.UTC)
	}
	out.DepartDate = depart.Format(dateLayout)

	duration := durationDays(summary)

	ret, retOK := parseDate(out.ReturnDate)
	if !retOK && duration > 0 {
		ret = depart.AddDate(0, 0, duration)
		retOK = true
	}
	if retOK && ret.Before(depart) {
		// Reinterpret the return date in the depart year first.
		candidate := time.Date(depart.Year(), ret.Month(), ret.Day(), 0, 0, 0, 0, time.UTC)
		if !candidate.Before(depart) {
			ret = candidate
		} else if duration > 0 {
			ret = depart.AddDate(0, 0, duration)
		} else {
			ret = depart.AddDate(0, 0, 1)
		}
	}

	if retOK {
		out.ReturnDate = ret.Format(dateLayout)
	} else {
		out.ReturnDate = ""
	}
	return out
}

// sanitizeIATA uppercases and validates a 3-letter airport code, falling back
// to the first alphabetic token of the value truncated to 3 letters.
func sanitizeIATA(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return ""
	}
	if iataRe.MatchString(code) {
		return code
	}
	token := tokenSplit.Split(code, 2)[0]
	letters := strings.Builder{}
	for _, r := range token {
		if r >= 'A' && r <= 'Z' {
			letters.WriteRune(r)
		}
	}
	if letters.Len() >= 3 {
		return letters.String()[:3]
	}
	return ""
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// durationDays extracts a trip duration in days from the summary text, or 0.
func durationDays(summary string) int {
	m := durationRe.FindStringSubmatch(summary)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}
