package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/communitydesk/eventdesk/internal/domain"
	"github.com/communitydesk/eventdesk/internal/repository"
)

// Role classes accepted by the login form. The class is the capacity the
// client asked to sign in as, not the stored account role.
const (
	RoleClassStaff                = "staff"
	RoleClassParticipantVolunteer = "participant-volunteer"
)

var (
	ErrUserNotFound  = repository.ErrUserNotFound
	ErrWrongPassword = errors.New("wrong password")
	ErrRoleMismatch  = errors.New("account role does not match the requested role")
)

type AuthUserRepository interface {
	FindByEmail(ctx context.Context, email string) (domain.User, error)
}

type AuthService struct {
	repo AuthUserRepository
}

func NewAuthService(repo AuthUserRepository) *AuthService {
	return &AuthService{
		repo: repo,
	}
}

// Login authenticates email/password and, when roleClass is set, verifies the
// stored account role belongs to that class. The role check runs before the
// password check so a staff form filled in by a participant fails with a role
// error rather than a credential error.
func (s *AuthService) Login(ctx context.Context, email, password, roleClass string) (domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, ErrUserNotFound
		}

		return domain.User{}, fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	if !matchesRoleClass(roleClass, user.Role) {
		return domain.User{}, ErrRoleMismatch
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return domain.User{}, ErrWrongPassword
	}

	return user, nil
}

func matchesRoleClass(roleClass, role string) bool {
	switch roleClass {
	case RoleClassStaff:
		return domain.IsStaff(role)
	case RoleClassParticipantVolunteer:
		return domain.ValidBookingRole(role)
	case "":
		return true
	}

	return false
}
