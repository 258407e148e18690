package domain

import "time"

const (
	RoleParticipant = "PARTICIPANT"
	RoleVolunteer   = "VOLUNTEER"
	RoleStaff       = "STAFF"
	RoleAdmin       = "ADMIN"
)

const (
	TierBronze   = "BRONZE"
	TierSilver   = "SILVER"
	TierGold     = "GOLD"
	TierPlatinum = "PLATINUM"
)

type User struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      string    `json:"role"`
	Tier      string    `json:"tier"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ValidRole reports whether role is one of the four account roles.
func ValidRole(role string) bool {
	switch role {
	case RoleParticipant, RoleVolunteer, RoleStaff, RoleAdmin:
		return true
	}

	return false
}

// ValidBookingRole reports whether role is a capacity a user can book under.
func ValidBookingRole(role string) bool {
	return role == RoleParticipant || role == RoleVolunteer
}

// IsStaff reports whether role grants access to the staff surfaces.
func IsStaff(role string) bool {
	return role == RoleStaff || role == RoleAdmin
}
