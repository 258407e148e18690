package repository

import (
	"context"
	"fmt"

	"github.com/communitydesk/eventdesk/internal/domain"
	"github.com/communitydesk/eventdesk/internal/repository/dao"
)

var (
	ErrBookingExists   = dao.ErrBookingExists
	ErrBookingNotFound = dao.ErrBookingNotFound
)

type BookingDAO interface {
	Insert(ctx context.Context, booking dao.Booking) (dao.Booking, error)
	FindByUserID(ctx context.Context, userID uint) ([]dao.Booking, error)
	FindByEventID(ctx context.Context, eventID uint, roleAtBooking string) ([]dao.Booking, error)
	Delete(ctx context.Context, userID, eventID uint) error
}

type BookingRepository struct {
	dao BookingDAO
}

func NewBookingRepository(dao BookingDAO) *BookingRepository {
	return &BookingRepository{
		dao: dao,
	}
}

func (r *BookingRepository) Create(ctx context.Context, booking domain.Booking) (domain.Booking, error) {
	answers := make([]dao.Answer, len(booking.Answers))
	for i, a := range booking.Answers {
		answers[i] = dao.Answer{
			QuestionID: a.QuestionID,
			Value:      a.Value,
		}
	}

	created, err := r.dao.Insert(ctx, dao.Booking{
		UserID:        booking.UserID,
		EventID:       booking.EventID,
		RoleAtBooking: booking.RoleAtBooking,
		Answers:       answers,
	})
	if err != nil {
		return domain.Booking{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *BookingRepository) FindByUser(ctx context.Context, userID uint) ([]domain.Booking, error) {
	found, err := r.dao.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByUserID -> %w", err)
	}

	bookings := make([]domain.Booking, len(found))
	for i, b := range found {
		bookings[i] = r.daoToDomain(b)
	}

	return bookings, nil
}

// FindAttendees projects the event's bookings onto the staff attendee view,
// oldest booking first.
func (r *BookingRepository) FindAttendees(ctx context.Context, eventID uint, roleAtBooking string) ([]domain.Attendee, error) {
	found, err := r.dao.FindByEventID(ctx, eventID, roleAtBooking)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByEventID -> %w", err)
	}

	attendees := make([]domain.Attendee, len(found))
	for i, b := range found {
		tier := b.User.Tier
		if tier == "" {
			tier = domain.TierBronze
		}

		attendees[i] = domain.Attendee{
			ID:        b.ID,
			UserID:    b.UserID,
			Name:      b.User.Name,
			Email:     b.User.Email,
			Tier:      tier,
			Role:      b.RoleAtBooking,
			CheckedIn: false,
			Dietary:   "",
			Referral:  "",
		}
	}

	return attendees, nil
}

func (r *BookingRepository) Delete(ctx context.Context, userID, eventID uint) error {
	if err := r.dao.Delete(ctx, userID, eventID); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *BookingRepository) daoToDomain(b dao.Booking) domain.Booking {
	answers := make([]domain.Answer, len(b.Answers))
	for i, a := range b.Answers {
		answers[i] = domain.Answer{
			ID:         a.ID,
			BookingID:  a.BookingID,
			QuestionID: a.QuestionID,
			Value:      a.Value,
		}
	}

	booking := domain.Booking{
		ID:            b.ID,
		UserID:        b.UserID,
		EventID:       b.EventID,
		RoleAtBooking: b.RoleAtBooking,
		CreatedAt:     b.CreatedAt,
		Answers:       answers,
	}

	if b.Event.ID != 0 {
		event := domain.Event{
			ID:        b.Event.ID,
			Name:      b.Event.Name,
			Start:     b.Event.Start,
			End:       b.Event.End,
			Location:  b.Event.Location,
			MinTier:   b.Event.MinTier,
			CreatedAt: b.Event.CreatedAt,
		}
		booking.Event = &event
	}

	return booking
}
