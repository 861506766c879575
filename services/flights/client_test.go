package flights

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient("test-token", "659627", "USD", 2*time.Second)
	c.baseURL = srv.URL
	return c
}

func TestCheapest_PrefersDirectBucket(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/prices/cheap", r.URL.Path)
		assert.Equal(t, "MAA", r.URL.Query().Get("origin"))
		assert.Equal(t, "test-token", r.URL.Query().Get("token"))
		w.Write([]byte(`{"success":true,"data":{"CMB":{
			"1":{"airline":"6E","price":180,"departure_at":"2025-09-10T09:00:00Z","return_at":"2025-09-15T11:00:00Z"},
			"0":{"airline":"UL","price":220,"departure_at":"2025-09-10T05:30:00Z","return_at":"2025-09-15T10:00:00Z"}
		}}}`))
	})

	offer, err := c.Cheapest(context.Background(), "MAA", "CMB", "2025-09-10", "2025-09-15")

	require.NoError(t, err)
	require.NotNil(t, offer)
	assert.Equal(t, "UL", offer.Airline)
	assert.Equal(t, float64(220), offer.Price)
	assert.Equal(t, "USD", offer.Currency)
	assert.Equal(t, "https://www.aviasales.com/search/MAA1009CMB1509?marker=659627&currency=USD", offer.Link)
}

func TestCheapest_NoOffersReturnsNil(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{}}`))
	})

	offer, err := c.Cheapest(context.Background(), "MAA", "CMB", "2025-09-10", "2025-09-15")

	require.NoError(t, err)
	assert.Nil(t, offer)
}

func TestCheapest_RejectedQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false}`))
	})

	_, err := c.Cheapest(context.Background(), "MAA", "CMB", "2025-09-10", "2025-09-15")

	assert.Error(t, err)
}

func TestCheapest_ServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.Cheapest(context.Background(), "MAA", "CMB", "2025-09-10", "2025-09-15")

	assert.ErrorContains(t, err, "status 500")
}

func TestRecentOffers(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/prices/latest", r.URL.Path)
		assert.Equal(t, "month", r.URL.Query().Get("period_type"))
		assert.Equal(t, "2025-09-01", r.URL.Query().Get("beginning_of_period"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		w.Write([]byte(`{"success":true,"data":[
			{"value":199.5,"depart_date":"2025-09-03","return_date":"2025-09-09"},
			{"value":240,"depart_date":"2025-09-12","return_date":"2025-09-19"}
		]}`))
	})

	offers, err := c.RecentOffers(context.Background(), "MAA", "CMB", "2025-09-01")

	require.NoError(t, err)
	require.Len(t, offers, 2)
	assert.Equal(t, 199.5, offers[0].Price)
	assert.Equal(t, "https://www.aviasales.com/search/MAA0309CMB0909?marker=659627&currency=USD", offers[0].Link)
}

func TestBuildFlightLink_DateSegments(t *testing.T) {
	link := BuildFlightLink("MAA", "2025-09-10T05:30:00Z", "CMB", "2025-09-15", "659627", "USD")
	assert.Equal(t, "https://www.aviasales.com/search/MAA1009CMB1509?marker=659627&currency=USD", link)

	// Unparseable or missing dates drop their segment.
	link = BuildFlightLink("MAA", "", "CMB", "garbage", "659627", "USD")
	assert.Equal(t, "https://www.aviasales.com/search/MAACMB?marker=659627&currency=USD", link)
}
