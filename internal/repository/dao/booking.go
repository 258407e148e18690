package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrBookingExists   = errors.New("booking already exists for this user and event")
	ErrBookingNotFound = errors.New("booking not found")
)

type Booking struct {
	ID uint `gorm:"primaryKey"`

	UserID  uint `gorm:"not null;uniqueIndex:idx_bookings_user_event"`
	EventID uint `gorm:"not null;uniqueIndex:idx_bookings_user_event"`

	RoleAtBooking string `gorm:"not null"` // PARTICIPANT or VOLUNTEER

	User    User     `gorm:"foreignKey:UserID"`
	Event   Event    `gorm:"foreignKey:EventID"`
	Answers []Answer `gorm:"foreignKey:BookingID"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type Answer struct {
	ID uint `gorm:"primaryKey"`

	BookingID  uint `gorm:"index;not null"`
	QuestionID uint `gorm:"not null"`

	Value string
}

type BookingDAO struct {
	db *gorm.DB
}

func NewBookingDAO(db *gorm.DB) *BookingDAO {
	return &BookingDAO{
		db: db,
	}
}

// Insert creates the booking and its answers as one unit. Duplicate
// (user, event) pairs are rejected by the composite unique index, which is
// the sole guard against concurrent double booking.
func (d *BookingDAO) Insert(ctx context.Context, booking Booking) (Booking, error) {
	result := d.db.WithContext(ctx).Create(&booking)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) {
			if err.Code == pgerrcode.UniqueViolation &&
				strings.Contains(err.Message, "idx_bookings_user_event") {
				return Booking{}, ErrBookingExists
			}
			if err.Code == pgerrcode.ForeignKeyViolation {
				return Booking{}, ErrEventNotFound
			}
		}

		return Booking{}, result.Error
	}

	return booking, nil
}

// FindByUserID returns the user's bookings newest-first with event and
// answers attached.
func (d *BookingDAO) FindByUserID(ctx context.Context, userID uint) ([]Booking, error) {
	var bookings []Booking

	result := d.db.WithContext(ctx).
		Preload("Event").
		Preload("Answers").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings)
	if result.Error != nil {
		return nil, result.Error
	}

	return bookings, nil
}

// FindByEventID returns the event's bookings oldest-first with the booked
// user attached, optionally filtered by the capacity booked under.
func (d *BookingDAO) FindByEventID(ctx context.Context, eventID uint, roleAtBooking string) ([]Booking, error) {
	var bookings []Booking

	query := d.db.WithContext(ctx).
		Preload("User").
		Where("event_id = ?", eventID).
		Order("created_at ASC")
	if roleAtBooking != "" {
		query = query.Where("role_at_booking = ?", roleAtBooking)
	}

	result := query.Find(&bookings)
	if result.Error != nil {
		return nil, result.Error
	}

	return bookings, nil
}

// Delete removes the booking for (userID, eventID) and all its answers in
// one transaction, so a failure can never strand answers without a booking.
func (d *BookingDAO) Delete(ctx context.Context, userID, eventID uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var booking Booking
		result := tx.First(&booking, "user_id = ? AND event_id = ?", userID, eventID)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}

			return result.Error
		}

		if err := tx.Where("booking_id = ?", booking.ID).Delete(&Answer{}).Error; err != nil {
			return err
		}

		return tx.Delete(&booking).Error
	})
}
