package hotels

import (
	"context"
	"errors"
	"testing"

	"tripweaver/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSearch struct {
	calls   map[string]int
	byDest  map[string][]models.HotelOption
	failFor map[string]error
}

func newCountingSearch() *countingSearch {
	return &countingSearch{
		calls:   map[string]int{},
		byDest:  map[string][]models.HotelOption{},
		failFor: map[string]error{},
	}
}

func (c *countingSearch) Search(_ context.Context, destination, _, _ string) ([]models.HotelOption, error) {
	c.calls[destination]++
	if err := c.failFor[destination]; err != nil {
		return nil, err
	}
	return c.byDest[destination], nil
}

func TestAggregate_SharedStayKeyResolvedOnce(t *testing.T) {
	search := newCountingSearch()
	search.byDest["Kandy"] = []models.HotelOption{{Name: "Hill Hotel", Price: 90}}
	a := &Aggregator{Search: search}

	stay := models.DayStay{CheckIn: "2025-09-12", CheckOut: "2025-09-15", Destination: "Kandy"}
	results := a.Aggregate(context.Background(), map[string]models.DayStay{
		"Day 3": stay,
		"Day 4": stay,
		"Day 5": stay,
	}, "")

	assert.Equal(t, 1, search.calls["Kandy"])
	require.Len(t, results, 3)
	assert.Equal(t, results["Day 3"], results["Day 4"])
	assert.Equal(t, results["Day 3"], results["Day 5"])
	assert.Equal(t, "Hill Hotel", results["Day 3"].Hotels[0].Name)
}

func TestAggregate_DistinctStayKeysEachResolved(t *testing.T) {
	search := newCountingSearch()
	search.byDest["Colombo"] = []models.HotelOption{{Name: "Port Hotel", Price: 120}}
	search.byDest["Kandy"] = []models.HotelOption{{Name: "Hill Hotel", Price: 90}}
	a := &Aggregator{Search: search}

	results := a.Aggregate(context.Background(), map[string]models.DayStay{
		"Day 1": {CheckIn: "2025-09-10", CheckOut: "2025-09-12", Destination: "Colombo"},
		"Day 3": {CheckIn: "2025-09-12", CheckOut: "2025-09-15", Destination: "Kandy"},
	}, "")

	assert.Equal(t, 1, search.calls["Colombo"])
	assert.Equal(t, 1, search.calls["Kandy"])
	assert.Equal(t, "Port Hotel", results["Day 1"].Hotels[0].Name)
	assert.Equal(t, "Hill Hotel", results["Day 3"].Hotels[0].Name)
}

func TestAggregate_SameDestinationDifferentDatesIsDistinct(t *testing.T) {
	search := newCountingSearch()
	a := &Aggregator{Search: search}

	a.Aggregate(context.Background(), map[string]models.DayStay{
		"Day 1": {CheckIn: "2025-09-10", CheckOut: "2025-09-11", Destination: "Colombo"},
		"Day 2": {CheckIn: "2025-09-11", CheckOut: "2025-09-12", Destination: "Colombo"},
	}, "")

	assert.Equal(t, 2, search.calls["Colombo"])
}

func TestAggregate_IncompleteEntriesSkipped(t *testing.T) {
	search := newCountingSearch()
	a := &Aggregator{Search: search}

	results := a.Aggregate(context.Background(), map[string]models.DayStay{
		"Day 1": {CheckIn: "2025-09-10", CheckOut: "2025-09-11", Destination: "Colombo"},
		"Day 2": {CheckIn: "2025-09-11", Destination: "Colombo"},
		"Day 3": {},
	}, "")

	require.Len(t, results, 1)
	assert.Contains(t, results, "Day 1")
	assert.Equal(t, 1, search.calls["Colombo"])
}

func TestAggregate_LookupFailureIsolatedToItsStay(t *testing.T) {
	search := newCountingSearch()
	search.byDest["Colombo"] = []models.HotelOption{{Name: "Port Hotel", Price: 120}}
	search.failFor["Kandy"] = errors.New("upstream timeout")
	a := &Aggregator{Search: search}

	stay := models.DayStay{CheckIn: "2025-09-12", CheckOut: "2025-09-15", Destination: "Kandy"}
	results := a.Aggregate(context.Background(), map[string]models.DayStay{
		"Day 1": {CheckIn: "2025-09-10", CheckOut: "2025-09-12", Destination: "Colombo"},
		"Day 3": stay,
		"Day 4": stay,
	}, "")

	require.Len(t, results, 3)
	assert.Empty(t, results["Day 1"].Error)
	assert.Equal(t, "Port Hotel", results["Day 1"].Hotels[0].Name)

	assert.Equal(t, "upstream timeout", results["Day 3"].Error)
	assert.Empty(t, results["Day 3"].Hotels)
	// The failed resolution is reused, not retried.
	assert.Equal(t, 1, search.calls["Kandy"])
	assert.Equal(t, results["Day 3"], results["Day 4"])
}

func TestAggregate_ResultsCappedAtStayLimit(t *testing.T) {
	search := newCountingSearch()
	many := make([]models.HotelOption, 0, 12)
	for i := 0; i < 12; i++ {
		many = append(many, models.HotelOption{Name: "h", Price: float64(50 + i)})
	}
	search.byDest["Colombo"] = many
	a := &Aggregator{Search: search}

	results := a.Aggregate(context.Background(), map[string]models.DayStay{
		"Day 1": {CheckIn: "2025-09-10", CheckOut: "2025-09-12", Destination: "Colombo"},
	}, "")

	assert.Len(t, results["Day 1"].Hotels, StayLimit)
	assert.Equal(t, StayLimit, results["Day 1"].HotelCount)
}

func TestAggregate_EmptyPlan(t *testing.T) {
	a := &Aggregator{Search: newCountingSearch()}

	results := a.Aggregate(context.Background(), map[string]models.DayStay{}, "budget")

	assert.Empty(t, results)
}

func TestSortedDayLabels_NumericOrder(t *testing.T) {
	labels := sortedDayLabels(map[string]models.DayStay{
		"Day 10": {}, "Day 2": {}, "Day 1": {}, "Arrival": {},
	})

	assert.Equal(t, []string{"Day 1", "Day 2", "Day 10", "Arrival"}, labels)
}
