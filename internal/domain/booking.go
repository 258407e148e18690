package domain

import "time"

type Booking struct {
	ID            uint      `json:"id"`
	UserID        uint      `json:"userId"`
	EventID       uint      `json:"eventId"`
	RoleAtBooking string    `json:"roleAtBooking"`
	CreatedAt     time.Time `json:"createdAt"`

	Event   *Event   `json:"event,omitempty"`
	Answers []Answer `json:"answers"`
}

// Answer holds one response to a registration question. MULTISELECT answers
// arrive from the client as a JSON-encoded array string and are stored opaque.
type Answer struct {
	ID         uint   `json:"id"`
	BookingID  uint   `json:"bookingId"`
	QuestionID uint   `json:"questionId"`
	Value      string `json:"value"`
}
