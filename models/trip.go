package models

import "time"

// DayStay is the accommodation slot the itinerary generator emits for a single
// day label ("Day 1", "Day 2", ...). The JSON field names are the wire format
// the generator is instructed to produce. A day that needs no hotel is simply
// absent from the mapping.
type DayStay struct {
	CheckIn     string `json:"HOTEL_CHECKIN" bson:"checkIn"`
	CheckOut    string `json:"HOTEL_CHECKOUT" bson:"checkOut"`
	Destination string `json:"HOTEL_DESTINATION" bson:"destination"`
}

// Valid reports whether all required fields are present.
func (d DayStay) Valid() bool {
	return d.CheckIn != "" && d.CheckOut != "" && d.Destination != ""
}

// StayKey identifies one distinct hotel stay. Multiple day labels may share a
// key when a multi-night stay is split across days; such days must be resolved
// by a single hotel lookup.
type StayKey struct {
	Destination string
	CheckIn     string
	CheckOut    string
}

// Key returns the stay identity of this day entry.
func (d DayStay) Key() StayKey {
	return StayKey{Destination: d.Destination, CheckIn: d.CheckIn, CheckOut: d.CheckOut}
}

// StayResult is the hotel resolution for one day label.
type StayResult struct {
	Destination string        `json:"destination"`
	CheckIn     string        `json:"checkin"`
	CheckOut    string        `json:"checkout"`
	Hotels      []HotelOption `json:"hotels"`
	HotelCount  int           `json:"hotel_count"`
	Error       string        `json:"error,omitempty"`
}

// Itinerary is the persisted final trip document for a session. One document
// per session id; later pipeline runs overwrite earlier ones.
type Itinerary struct {
	SessionID string    `bson:"sessionId" json:"sessionId"`
	Document  string    `bson:"document" json:"document"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
