package response

import "github.com/communitydesk/eventdesk/internal/domain"

type LoginUser struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type LoginResponse struct {
	Success  bool      `json:"success"`
	Token    string    `json:"token"`
	User     LoginUser `json:"user"`
	UserRole string    `json:"userRole"`
}

type Message struct {
	Message string `json:"message"`
}

type BookingCreated struct {
	Message string         `json:"message"`
	Booking domain.Booking `json:"booking"`
}
