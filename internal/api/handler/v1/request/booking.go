package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/communitydesk/eventdesk/internal/domain"
)

type AnswerInput struct {
	QuestionID uint   `json:"questionId"`
	Value      string `json:"value"`
}

type CreateBookingRequest struct {
	UserID        uint          `json:"userId"`
	EventID       uint          `json:"eventId"`
	RoleAtBooking string        `json:"roleAtBooking"`
	Answers       []AnswerInput `json:"answers"`
}

func (req *CreateBookingRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.UserID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.EventID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.RoleAtBooking, validation.Required, validation.In(
			domain.RoleParticipant, domain.RoleVolunteer,
		)),
	)
}
