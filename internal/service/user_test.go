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

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, role string, take int) ([]domain.User, error) {
	args := m.Called(ctx, role, take)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) FindAttendance(ctx context.Context, role string) ([]domain.AttendanceRecord, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AttendanceRecord), args.Error(1)
}

func TestUserService_CreateUser(t *testing.T) {
	t.Run("hashes the password and defaults the tier", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
			if u.Tier != domain.TierBronze {
				return false
			}
			return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret123")) == nil
		})).Return(domain.User{ID: 7, Name: "Priya Shah", Email: "priya@example.com"}, nil)

		svc := NewUserService(mockRepo)
		created, err := svc.CreateUser(context.Background(), domain.User{
			Name:     "Priya Shah",
			Email:    "priya@example.com",
			Role:     domain.RoleParticipant,
			Password: "secret123",
		})

		assert.NoError(t, err)
		assert.Equal(t, uint(7), created.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("keeps an explicit tier", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
			return u.Tier == domain.TierGold
		})).Return(domain.User{ID: 8}, nil)

		svc := NewUserService(mockRepo)
		_, err := svc.CreateUser(context.Background(), domain.User{
			Name:     "Marcus Lee",
			Email:    "marcus@example.com",
			Role:     domain.RoleVolunteer,
			Tier:     domain.TierGold,
			Password: "secret123",
		})

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("duplicate email surfaces the sentinel", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(domain.User{}, repository.ErrUserEmailExists)

		svc := NewUserService(mockRepo)
		_, err := svc.CreateUser(context.Background(), domain.User{
			Name:     "Priya Shah",
			Email:    "priya@example.com",
			Role:     domain.RoleParticipant,
			Password: "secret123",
		})

		assert.ErrorIs(t, err, ErrUserEmailExists)
		mockRepo.AssertExpectations(t)
	})
}

func TestUserService_ListUsers(t *testing.T) {
	tests := []struct {
		name         string
		take         int
		expectedTake int
	}{
		{name: "zero falls back to the default", take: 0, expectedTake: 10},
		{name: "negative falls back to the default", take: -3, expectedTake: 10},
		{name: "in range passes through", take: 25, expectedTake: 25},
		{name: "over the cap is clamped", take: 500, expectedTake: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			mockRepo.On("FindAll", mock.Anything, domain.RoleVolunteer, tt.expectedTake).Return([]domain.User{}, nil)

			svc := NewUserService(mockRepo)
			_, err := svc.ListUsers(context.Background(), domain.RoleVolunteer, tt.take)

			assert.NoError(t, err)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_ListAttendance(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindAttendance", mock.Anything, "").Return([]domain.AttendanceRecord{
		{ID: 1, Name: "Dana Okafor", BookingCount: 2},
	}, nil)

	svc := NewUserService(mockRepo)
	records, err := svc.ListAttendance(context.Background(), "")

	assert.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, 2, records[0].BookingCount)
	mockRepo.AssertExpectations(t)
}
