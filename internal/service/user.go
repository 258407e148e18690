package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/communitydesk/eventdesk/internal/domain"
	"github.com/communitydesk/eventdesk/internal/repository"
)

var ErrUserEmailExists = repository.ErrUserEmailExists

const (
	defaultListTake = 10
	maxListTake     = 100
)

type UserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	FindByID(ctx context.Context, id uint) (domain.User, error)
	FindAll(ctx context.Context, role string, take int) ([]domain.User, error)
	FindAttendance(ctx context.Context, role string) ([]domain.AttendanceRecord, error)
}

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

// CreateUser hashes the password and stores the user. Duplicate emails are
// rejected by the store's unique constraint.
func (s *UserService) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
	}
	user.Password = string(hash)

	if user.Tier == "" {
		user.Tier = domain.TierBronze
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *UserService) GetUser(ctx context.Context, id uint) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return user, nil
}

// ListUsers lists up to take users, clamped to [1, 100] with a default of 10.
func (s *UserService) ListUsers(ctx context.Context, role string, take int) ([]domain.User, error) {
	if take <= 0 {
		take = defaultListTake
	}
	if take > maxListTake {
		take = maxListTake
	}

	users, err := s.repo.FindAll(ctx, role, take)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return users, nil
}

func (s *UserService) ListAttendance(ctx context.Context, role string) ([]domain.AttendanceRecord, error) {
	records, err := s.repo.FindAttendance(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAttendance -> %w", err)
	}

	return records, nil
}
