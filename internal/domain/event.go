package domain

import "time"

type Event struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Location  string    `json:"location"`
	MinTier   string    `json:"minTier"`
	CreatedAt time.Time `json:"createdAt"`

	// Populated on the detail view only.
	Questions []Question   `json:"questions,omitempty"`
	Bookings  []BookingRef `json:"bookings,omitempty"`
}

// BookingRef is the minimal projection of a booking attached to an event
// detail, enough for a client to detect its own "already booked" state.
type BookingRef struct {
	UserID uint `json:"userId"`
}
