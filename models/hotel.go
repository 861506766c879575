package models

// HotelOption is one hotel candidate for a stay. A zero price means the price
// is unknown, not free; unknown prices carry an empty currency.
type HotelOption struct {
	Name     string  `json:"name"`
	Stars    int     `json:"stars"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
	Link     string  `json:"link"`
	HotelID  int64   `json:"hotel_id,omitempty"`
}
