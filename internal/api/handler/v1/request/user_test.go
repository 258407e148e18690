package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validCreateUserRequest() CreateUserRequest {
	return CreateUserRequest{
		Name:     "Priya Shah",
		Email:    "priya@example.com",
		Role:     "PARTICIPANT",
		Password: "secret123",
	}
}

func TestCreateUserRequest_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := validCreateUserRequest()
		assert.NoError(t, req.Validate())
	})

	t.Run("invalid email", func(t *testing.T) {
		req := validCreateUserRequest()
		req.Email = "not-an-email"
		assert.Error(t, req.Validate())
	})

	t.Run("unknown role", func(t *testing.T) {
		req := validCreateUserRequest()
		req.Role = "WIZARD"
		assert.ErrorIs(t, req.Validate(), errInvalidRole)
	})

	t.Run("admin role accepted", func(t *testing.T) {
		req := validCreateUserRequest()
		req.Role = "ADMIN"
		assert.NoError(t, req.Validate())
	})

	t.Run("password rules", func(t *testing.T) {
		tests := []struct {
			password string
			ok       bool
		}{
			{"secret123", true},
			{"a1b2c3d4", true},
			{"Pass word 9", true},
			{"short1", false},       // under 8 characters
			{"lettersonly", false},  // no digit
			{"1234567890", false},   // no letter
			{"", false},
		}

		for _, tt := range tests {
			req := validCreateUserRequest()
			req.Password = tt.password

			err := req.Validate()
			if tt.ok {
				assert.NoError(t, err, "password %q", tt.password)
			} else {
				assert.Error(t, err, "password %q", tt.password)
			}
		}
	})
}
