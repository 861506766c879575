package models

// FlightParams holds the structured flight parameters extracted from a trip
// summary. Codes are 3-letter uppercase IATA codes or empty; dates are ISO
// calendar dates (YYYY-MM-DD) or empty. When both dates are present the
// return date is never before the depart date.
type FlightParams struct {
	Origin      string `json:"FLIGHT_ORIGIN"`
	Destination string `json:"FLIGHT_DESTINATION"`
	DepartDate  string `json:"FLIGHT_DEPART_DATE"`
	ReturnDate  string `json:"FLIGHT_RETURN_DATE"`
}

// FlightOffer is one priced flight option from the price service.
type FlightOffer struct {
	Airline  string  `json:"airline,omitempty"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
	DepartAt string  `json:"departAt,omitempty"`
	ReturnAt string  `json:"returnAt,omitempty"`
	Link     string  `json:"link"`
}

// FlightDetails groups the booking links handed to the itinerary generator.
type FlightDetails struct {
	Cheapest   *FlightOffer  `json:"cheapest,omitempty"`
	Additional []FlightOffer `json:"additional,omitempty"`
}
