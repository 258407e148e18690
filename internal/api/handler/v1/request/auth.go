package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

var errMissingAccessCode = errors.New("staff access code is required")

type LoginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       string `json:"role,omitempty"`       // "staff" or "participant-volunteer"
	AccessCode string `json:"accessCode,omitempty"` // required when Role is "staff"
}

func (req *LoginRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required),
		validation.Field(&req.Role, validation.In("staff", "participant-volunteer")),
	)
	if err != nil {
		return err
	}

	if req.Role == "staff" && req.AccessCode == "" {
		return errMissingAccessCode
	}

	return nil
}
