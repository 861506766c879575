// File: services/hotels/aggregator.go
package hotels

import (
	"context"
	"regexp"
	"sort"
	"strconv"

	"tripweaver/models"

	"go.uber.org/zap"
)

// Aggregator resolves hotel candidates for every valid day of a trip plan.
//
// Days sharing a stay key (destination, check-in, check-out) are resolved by
// exactly one external lookup per aggregation run; the remaining days receive
// an identical copy of that resolution.
type Aggregator struct {
	Search SearchClient
	Logger *zap.Logger
}

func (a *Aggregator) logger() *zap.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return zap.L()
}

// Aggregate maps every valid day-plan entry to its hotel resolution. Entries
// missing required fields are skipped and absent from the result. A lookup
// failure marks only that stay's days with an error annotation and an empty
// hotel list; sibling stays proceed normally.
func (a *Aggregator) Aggregate(ctx context.Context, days map[string]models.DayStay, budgetTier string) map[string]models.StayResult {
	results := make(map[string]models.StayResult, len(days))
	if len(days) == 0 {
		return results
	}

	resolved := make(map[models.StayKey]models.StayResult)

	for _, label := range sortedDayLabels(days) {
		stay := days[label]
		if !stay.Valid() {
			a.logger().Warn("skipping day with incomplete hotel data",
				zap.String("day", label),
				zap.String("destination", stay.Destination),
				zap.String("checkIn", stay.CheckIn),
				zap.String("checkOut", stay.CheckOut))
			continue
		}

		key := stay.Key()
		if prior, ok := resolved[key]; ok {
			results[label] = prior
			continue
		}

		result := models.StayResult{
			Destination: stay.Destination,
			CheckIn:     stay.CheckIn,
			CheckOut:    stay.CheckOut,
			Hotels:      []models.HotelOption{},
		}

		candidates, err := a.Search.Search(ctx, stay.Destination, stay.CheckIn, stay.CheckOut)
		if err != nil {
			a.logger().Warn("hotel lookup failed",
				zap.String("day", label),
				zap.String("destination", stay.Destination),
				zap.Error(err))
			result.Error = err.Error()
		} else {
			result.Hotels = capHotels(FilterByBudget(candidates, budgetTier), StayLimit)
			result.HotelCount = len(result.Hotels)
		}

		// Failed resolutions are recorded too: one lookup per stay key per run.
		resolved[key] = result
		results[label] = result
	}

	a.logger().Info("hotel aggregation completed",
		zap.Int("days", len(results)),
		zap.Int("uniqueStays", len(resolved)))
	return results
}

var dayNumberRe = regexp.MustCompile(`\d+`)

// sortedDayLabels orders day labels numerically ("Day 1", "Day 2", ... "Day 10"),
// falling back to lexicographic order for labels without a number.
func sortedDayLabels(days map[string]models.DayStay) []string {
	labels := make([]string, 0, len(days))
	for label := range days {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		ni, iOK := dayNumber(labels[i])
		nj, jOK := dayNumber(labels[j])
		if iOK && jOK && ni != nj {
			return ni < nj
		}
		if iOK != jOK {
			return iOK
		}
		return labels[i] < labels[j]
	})
	return labels
}

func dayNumber(label string) (int, bool) {
	m := dayNumberRe.FindString(label)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return n, true
}
