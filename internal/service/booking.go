package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/communitydesk/eventdesk/internal/domain"
	"github.com/communitydesk/eventdesk/internal/repository"
)

var (
	ErrBookingExists   = repository.ErrBookingExists
	ErrBookingNotFound = repository.ErrBookingNotFound
)

type BookingRepository interface {
	Create(ctx context.Context, booking domain.Booking) (domain.Booking, error)
	FindByUser(ctx context.Context, userID uint) ([]domain.Booking, error)
	FindAttendees(ctx context.Context, eventID uint, roleAtBooking string) ([]domain.Attendee, error)
	Delete(ctx context.Context, userID, eventID uint) error
}

type BookingEventRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Event, error)
}

type BookingService struct {
	repo      BookingRepository
	eventRepo BookingEventRepository
}

func NewBookingService(repo BookingRepository, eventRepo BookingEventRepository) *BookingService {
	return &BookingService{
		repo:      repo,
		eventRepo: eventRepo,
	}
}

// CreateBooking registers the user for the event with their answers, all in
// one write. There is no lookup for an existing booking first; the store's
// (user, event) unique constraint is the single authority on duplicates, so
// two concurrent requests cannot both succeed.
func (s *BookingService) CreateBooking(ctx context.Context, booking domain.Booking) (domain.Booking, error) {
	event, err := s.eventRepo.FindByID(ctx, booking.EventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return domain.Booking{}, ErrEventNotFound
		}

		return domain.Booking{}, fmt.Errorf("s.eventRepo.FindByID -> %w", err)
	}

	created, err := s.repo.Create(ctx, booking)
	if err != nil {
		if errors.Is(err, repository.ErrBookingExists) {
			return domain.Booking{}, ErrBookingExists
		}
		if errors.Is(err, repository.ErrEventNotFound) {
			return domain.Booking{}, ErrEventNotFound
		}

		return domain.Booking{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	created.Event = &event

	return created, nil
}

// ListBookings returns the user's bookings newest-first with event and
// answers attached.
func (s *BookingService) ListBookings(ctx context.Context, userID uint) ([]domain.Booking, error) {
	bookings, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByUser -> %w", err)
	}

	return bookings, nil
}

// ListAttendees returns the attendee projections for an event, optionally
// filtered to one booking capacity.
func (s *BookingService) ListAttendees(ctx context.Context, eventID uint, roleAtBooking string) ([]domain.Attendee, error) {
	if _, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}

		return nil, fmt.Errorf("s.eventRepo.FindByID -> %w", err)
	}

	attendees, err := s.repo.FindAttendees(ctx, eventID, roleAtBooking)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAttendees -> %w", err)
	}

	return attendees, nil
}

// CancelBooking removes the booking for (userID, eventID) along with its
// answers in a single transaction.
func (s *BookingService) CancelBooking(ctx context.Context, userID, eventID uint) error {
	if err := s.repo.Delete(ctx, userID, eventID); err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return ErrBookingNotFound
		}

		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
