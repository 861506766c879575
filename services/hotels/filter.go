// File: services/hotels/filter.go
package hotels

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"tripweaver/models"
)

// StayLimit caps how many hotels a day's resolution may carry.
const StayLimit = 5

var (
	budgetWords  = []string{"budget", "cheap", "affordable", "low cost", "economical"}
	luxuryWords  = []string{"luxury", "premium", "high-end", "expensive", "5 star", "five star"}
	midWords     = []string{"mid", "medium", "moderate", "average"}
	ceilingWords = []string{"under", "less than", "below", "maximum", "max", "up to"}

	numberRe = regexp.MustCompile(`\d+`)
)

// FilterByBudget trims a candidate list according to a budget tier. Priced
// candidates are sorted ascending by price before tier selection; candidates
// with no price data are excluded from tier selection. When no candidate has
// a price the first StayLimit candidates pass through unfiltered, and an
// empty tier skips filtering entirely. The result is never empty for a
// non-empty input.
func FilterByBudget(hotels []models.HotelOption, tier string) []models.HotelOption {
	if tier == "" || len(hotels) == 0 {
		return hotels
	}

	priced := make([]models.HotelOption, 0, len(hotels))
	for _, h := range hotels {
		if h.Price > 0 {
			priced = append(priced, h)
		}
	}
	if len(priced) == 0 {
		return capHotels(hotels, StayLimit)
	}

	sort.SliceStable(priced, func(i, j int) bool { return priced[i].Price < priced[j].Price })

	tierLower := strings.ToLower(tier)
	n := len(priced)

	switch {
	case containsAny(tierLower, budgetWords):
		// Lowest 60% of prices.
		return priced[:clampMin(ceilFrac(n, 60), 1)]
	case containsAny(tierLower, luxuryWords):
		// Highest 40% of prices.
		return priced[n-clampMin(ceilFrac(n, 40), 1):]
	case containsAny(tierLower, midWords):
		// Middle 60%: drop the bottom and top 20% by index.
		cut := n / 5
		return priced[cut : n-cut]
	}

	// An explicit price ceiling such as "under 100" overrides tier selection.
	if containsAny(tierLower, ceilingWords) {
		if m := numberRe.FindString(tier); m != "" {
			ceiling, err := strconv.Atoi(m)
			if err == nil {
				kept := make([]models.HotelOption, 0, n)
				for _, h := range priced {
					if h.Price <= float64(ceiling) {
						kept = append(kept, h)
					}
				}
				return kept
			}
		}
	}

	// Unrecognized tier: all priced candidates sorted by price.
	return priced
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// ceilFrac returns ceil(n * pct / 100).
func ceilFrac(n, pct int) int {
	return (n*pct + 99) / 100
}

func clampMin(v, minimum int) int {
	if v < minimum {
		return minimum
	}
	return v
}

func capHotels(hotels []models.HotelOption, limit int) []models.HotelOption {
	if len(hotels) > limit {
		return hotels[:limit]
	}
	return hotels
}
