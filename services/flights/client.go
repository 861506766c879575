// File: services/flights/client.go
package flights

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"tripweaver/models"
)

// PriceAPI is the flight price lookup contract the orchestrator depends on.
type PriceAPI interface {
	// Cheapest returns the cheapest offer for the route and dates, or nil
	// when the service has no offer.
	Cheapest(ctx context.Context, origin, destination, departDate, returnDate string) (*models.FlightOffer, error)
	// RecentOffers returns recent priced offers for the route in the month
	// beginning at the given date (YYYY-MM-01).
	RecentOffers(ctx context.Context, origin, destination, month string) ([]models.FlightOffer, error)
}

// Client queries the Travelpayouts flight price API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	marker     string
	currency   string
}

// NewClient builds a Travelpayouts flight price client.
func NewClient(token, marker, currency string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    "https://api.travelpayouts.com",
		token:      token,
		marker:     marker,
		currency:   currency,
	}
}

type cheapResponse struct {
	Success bool                                `json:"success"`
	Data    map[string]map[string]cheapOfferRaw `json:"data"`
}

type cheapOfferRaw struct {
	Airline     string  `json:"airline"`
	Price       float64 `json:"price"`
	DepartureAt string  `json:"departure_at"`
	ReturnAt    string  `json:"return_at"`
}

// Cheapest queries v1/prices/cheap for the route and returns the first offer
// with a booking deep link, or nil when none is available.
func (c *Client) Cheapest(ctx context.Context, origin, destination, departDate, returnDate string) (*models.FlightOffer, error) {
	q := url.Values{}
	q.Set("origin", origin)
	q.Set("destination", destination)
	q.Set("depart_date", departDate)
	q.Set("return_date", returnDate)
	q.Set("currency", c.currency)
	q.Set("token", c.token)

	var res cheapResponse
	if err := c.getJSON(ctx, "/v1/prices/cheap", q, &res); err != nil {
		return nil, err
	}
	if !res.Success {
		return nil, fmt.Errorf("flight price service rejected cheapest query for %s-%s", origin, destination)
	}

	offers := res.Data[destination]
	// The API keys offers by number of stops; "0" (direct) is the cheapest bucket.
	for _, key := range []string{"0", "1", "2"} {
		offer, ok := offers[key]
		if !ok {
			continue
		}
		return &models.FlightOffer{
			Airline:  offer.Airline,
			Price:    offer.Price,
			Currency: c.currency,
			DepartAt: offer.DepartureAt,
			ReturnAt: offer.ReturnAt,
			Link:     BuildFlightLink(origin, offer.DepartureAt, destination, offer.ReturnAt, c.marker, c.currency),
		}, nil
	}
	return nil, nil
}

type latestResponse struct {
	Success bool             `json:"success"`
	Data    []latestOfferRaw `json:"data"`
}

type latestOfferRaw struct {
	Value      float64 `json:"value"`
	DepartDate string  `json:"depart_date"`
	ReturnDate string  `json:"return_date"`
}

// RecentOffers queries v2/prices/latest for up to five priced offers in the
// given month (YYYY-MM-01).
func (c *Client) RecentOffers(ctx context.Context, origin, destination, month string) ([]models.FlightOffer, error) {
	q := url.Values{}
	q.Set("origin", origin)
	q.Set("destination", destination)
	q.Set("currency", c.currency)
	q.Set("token", c.token)
	q.Set("limit", "5")
	q.Set("period_type", "month")
	q.Set("beginning_of_period", month)
	q.Set("one_way", "false")
	q.Set("show_to_affiliates", "true")

	var res latestResponse
	if err := c.getJSON(ctx, "/v2/prices/latest", q, &res); err != nil {
		return nil, err
	}
	if !res.Success {
		return nil, fmt.Errorf("flight price service rejected offers query for %s-%s", origin, destination)
	}

	offers := make([]models.FlightOffer, 0, len(res.Data))
	for _, raw := range res.Data {
		offers = append(offers, models.FlightOffer{
			Price:    raw.Value,
			Currency: c.currency,
			DepartAt: raw.DepartDate,
			ReturnAt: raw.ReturnDate,
			Link:     BuildFlightLink(origin, raw.DepartDate, destination, raw.ReturnDate, c.marker, c.currency),
		})
	}
	return offers, nil
}

func (c *Client) getJSON(ctx context.Context, path string, q url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build flight price request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("flight price request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("flight price service returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode flight price response: %w", err)
	}
	return nil
}
