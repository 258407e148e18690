package domain

import "time"

// Attendee is the staff-facing projection of a booking joined with its user.
// CheckedIn, Dietary and Referral have no backing columns yet and are
// rendered as constants until check-in tracking lands.
type Attendee struct {
	ID        uint   `json:"id"`
	UserID    uint   `json:"userId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Tier      string `json:"tier"`
	Role      string `json:"role"`
	CheckedIn bool   `json:"checkedIn"`
	Dietary   string `json:"dietary"`
	Referral  string `json:"referral"`
}

// AttendanceRecord is one row of the staff attendance report: a user plus
// the bookings counted against them.
type AttendanceRecord struct {
	ID           uint                `json:"id"`
	Name         string              `json:"name"`
	Email        string              `json:"email"`
	Role         string              `json:"role"`
	Tier         string              `json:"tier"`
	CreatedAt    time.Time           `json:"createdAt"`
	BookingCount int                 `json:"bookingCount"`
	Bookings     []AttendanceBooking `json:"bookings"`
}

type AttendanceBooking struct {
	ID      uint `json:"id"`
	EventID uint `json:"eventId"`
}
