package trip

import (
	"regexp"
	"strconv"
	"strings"
)

var priceRe = regexp.MustCompile(`\$(\d+)`)

var (
	budgetKeywords = []string{"budget", "cheap", "affordable", "economical", "low cost"}
	luxuryKeywords = []string{"luxury", "expensive", "premium", "high-end", "deluxe", "upscale"}
)

// deriveBudgetTier classifies the user's budget preference from the message
// that triggered the finished pipeline run. It is derived once per session
// from that message, never re-derived per day.
func deriveBudgetTier(message string) string {
	lower := strings.ToLower(message)

	if m := priceRe.FindStringSubmatch(message); m != nil {
		price, err := strconv.Atoi(m[1])
		if err == nil {
			switch {
			case price < 100:
				return "budget"
			case price > 300:
				return "luxury"
			default:
				return "mid-range"
			}
		}
	}

	for _, w := range budgetKeywords {
		if strings.Contains(lower, w) {
			return "budget"
		}
	}
	for _, w := range luxuryKeywords {
		if strings.Contains(lower, w) {
			return "luxury"
		}
	}
	return "mid-range"
}
