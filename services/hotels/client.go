// File: services/hotels/client.go
package hotels

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"tripweaver/models"
)

// rawSearchLimit is how many candidates are fetched per lookup; budget
// filtering trims the list afterwards.
const rawSearchLimit = 20

// Client queries the Hotellook price cache API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	marker     string
	currency   string
}

// NewClient builds a Hotellook hotel price client.
func NewClient(token, marker, currency string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    "https://engine.hotellook.com",
		token:      token,
		marker:     marker,
		currency:   currency,
	}
}

type hotelRaw struct {
	HotelName string  `json:"hotelName"`
	Stars     int     `json:"stars"`
	PriceFrom float64 `json:"priceFrom"`
	HotelID   int64   `json:"hotelId"`
}

// Search fetches hotel candidates for the stay. Zero results are returned as
// an empty list, never as an error.
func (c *Client) Search(ctx context.Context, destination, checkIn, checkOut string) ([]models.HotelOption, error) {
	q := url.Values{}
	q.Set("location", destination)
	q.Set("currency", c.currency)
	q.Set("checkIn", checkIn)
	q.Set("checkOut", checkOut)
	q.Set("limit", strconv.Itoa(rawSearchLimit))
	q.Set("token", c.token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v2/cache.json?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build hotel search request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("hotel search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("hotel search returned status %d", resp.StatusCode)
	}

	var raw []hotelRaw
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode hotel search response: %w", err)
	}

	hotels := make([]models.HotelOption, 0, len(raw))
	for _, h := range raw {
		name := h.HotelName
		if name == "" {
			name = "Unknown Hotel"
		}
		currency := c.currency
		if h.PriceFrom == 0 {
			// No price data; unknown is distinct from free.
			currency = ""
		}
		hotels = append(hotels, models.HotelOption{
			Name:     name,
			Stars:    h.Stars,
			Price:    h.PriceFrom,
			Currency: currency,
			Link:     c.bookingLink(destination, checkIn, checkOut, h.HotelID),
			HotelID:  h.HotelID,
		})
	}
	return hotels, nil
}

// bookingLink builds the hotel deep link with the affiliate marker and, when
// known, the hotel's internal identifier.
func (c *Client) bookingLink(destination, checkIn, checkOut string, hotelID int64) string {
	link := fmt.Sprintf(
		"https://search.hotellook.com/?marker=%s&currency=%s&destination=%s&checkIn=%s&checkOut=%s",
		c.marker, c.currency, url.QueryEscape(destination), checkIn, checkOut,
	)
	if hotelID != 0 {
		link += "&hotelId=" + strconv.FormatInt(hotelID, 10)
	}
	return link
}
