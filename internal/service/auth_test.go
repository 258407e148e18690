package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/communitydesk/eventdesk/internal/domain"
	"github.com/communitydesk/eventdesk/internal/repository"
)

type MockAuthUserRepository struct {
	mock.Mock
}

func (m *MockAuthUserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)

	return string(hash)
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name        string
		email       string
		password    string
		roleClass   string
		setupMock   func(t *testing.T, m *MockAuthUserRepository)
		expectedErr error
	}{
		{
			name:      "staff login succeeds",
			email:     "dana@example.com",
			password:  "letmein99",
			roleClass: RoleClassStaff,
			setupMock: func(t *testing.T, m *MockAuthUserRepository) {
				m.On("FindByEmail", mock.Anything, "dana@example.com").Return(domain.User{
					ID:       1,
					Email:    "dana@example.com",
					Role:     domain.RoleStaff,
					Password: hashPassword(t, "letmein99"),
				}, nil)
			},
		},
		{
			name:      "admin accepted on the staff form",
			email:     "root@example.com",
			password:  "letmein99",
			roleClass: RoleClassStaff,
			setupMock: func(t *testing.T, m *MockAuthUserRepository) {
				m.On("FindByEmail", mock.Anything, "root@example.com").Return(domain.User{
					ID:       2,
					Email:    "root@example.com",
					Role:     domain.RoleAdmin,
					Password: hashPassword(t, "letmein99"),
				}, nil)
			},
		},
		{
			name:      "volunteer login succeeds",
			email:     "marcus@example.com",
			password:  "letmein99",
			roleClass: RoleClassParticipantVolunteer,
			setupMock: func(t *testing.T, m *MockAuthUserRepository) {
				m.On("FindByEmail", mock.Anything, "marcus@example.com").Return(domain.User{
					ID:       3,
					Email:    "marcus@example.com",
					Role:     domain.RoleVolunteer,
					Password: hashPassword(t, "letmein99"),
				}, nil)
			},
		},
		{
			name:      "unknown email",
			email:     "ghost@example.com",
			password:  "letmein99",
			roleClass: RoleClassParticipantVolunteer,
			setupMock: func(t *testing.T, m *MockAuthUserRepository) {
				m.On("FindByEmail", mock.Anything, "ghost@example.com").Return(domain.User{}, repository.ErrUserNotFound)
			},
			expectedErr: ErrUserNotFound,
		},
		{
			name:      "wrong password",
			email:     "dana@example.com",
			password:  "nope",
			roleClass: RoleClassStaff,
			setupMock: func(t *testing.T, m *MockAuthUserRepository) {
				m.On("FindByEmail", mock.Anything, "dana@example.com").Return(domain.User{
					ID:       1,
					Email:    "dana@example.com",
					Role:     domain.RoleStaff,
					Password: hashPassword(t, "letmein99"),
				}, nil)
			},
			expectedErr: ErrWrongPassword,
		},
		{
			name:      "participant on the staff form",
			email:     "priya@example.com",
			password:  "letmein99",
			roleClass: RoleClassStaff,
			setupMock: func(t *testing.T, m *MockAuthUserRepository) {
				m.On("FindByEmail", mock.Anything, "priya@example.com").Return(domain.User{
					ID:       4,
					Email:    "priya@example.com",
					Role:     domain.RoleParticipant,
					Password: hashPassword(t, "letmein99"),
				}, nil)
			},
			expectedErr: ErrRoleMismatch,
		},
		{
			name:      "staff on the participant form",
			email:     "dana@example.com",
			password:  "letmein99",
			roleClass: RoleClassParticipantVolunteer,
			setupMock: func(t *testing.T, m *MockAuthUserRepository) {
				m.On("FindByEmail", mock.Anything, "dana@example.com").Return(domain.User{
					ID:       1,
					Email:    "dana@example.com",
					Role:     domain.RoleStaff,
					Password: hashPassword(t, "letmein99"),
				}, nil)
			},
			expectedErr: ErrRoleMismatch,
		},
		{
			// The role check runs first, so the wrong password never
			// turns a role mismatch into a credential error.
			name:      "role mismatch wins over wrong password",
			email:     "priya@example.com",
			password:  "nope",
			roleClass: RoleClassStaff,
			setupMock: func(t *testing.T, m *MockAuthUserRepository) {
				m.On("FindByEmail", mock.Anything, "priya@example.com").Return(domain.User{
					ID:       4,
					Email:    "priya@example.com",
					Role:     domain.RoleParticipant,
					Password: hashPassword(t, "letmein99"),
				}, nil)
			},
			expectedErr: ErrRoleMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockAuthUserRepository)
			tt.setupMock(t, mockRepo)

			svc := NewAuthService(mockRepo)
			user, err := svc.Login(context.Background(), tt.email, tt.password, tt.roleClass)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.email, user.Email)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
