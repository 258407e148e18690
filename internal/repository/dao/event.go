package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrEventNotFound = errors.New("event not found")

type Event struct {
	ID uint `gorm:"primaryKey"`

	Name     string    `gorm:"not null"`
	Start    time.Time `gorm:"not null"`
	End      time.Time `gorm:"not null"`
	Location string    `gorm:"not null"`
	MinTier  string    `gorm:"not null;default:BRONZE"`

	Questions []Question `gorm:"foreignKey:EventID"`
	Bookings  []Booking  `gorm:"foreignKey:EventID"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type Question struct {
	ID      uint `gorm:"primaryKey"`
	EventID uint `gorm:"index;not null"`

	Text       string   `gorm:"not null"`
	Type       string   `gorm:"not null"` // TEXT, SELECT or MULTISELECT
	Options    []string `gorm:"type:jsonb;serializer:json"`
	TargetRole string   `gorm:"not null"` // PARTICIPANT or VOLUNTEER
}

type EventDAO struct {
	db *gorm.DB
}

func NewEventDAO(db *gorm.DB) *EventDAO {
	return &EventDAO{
		db: db,
	}
}

// Insert creates the event together with its questions. GORM wraps the
// association insert in a single transaction.
func (d *EventDAO) Insert(ctx context.Context, event Event) (Event, error) {
	result := d.db.WithContext(ctx).Create(&event)
	if result.Error != nil {
		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) FindAll(ctx context.Context) ([]Event, error) {
	var events []Event

	result := d.db.WithContext(ctx).Order("start ASC").Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func (d *EventDAO) FindByID(ctx context.Context, id uint) (Event, error) {
	var event Event

	result := d.db.WithContext(ctx).First(&event, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Event{}, ErrEventNotFound
		}

		return Event{}, result.Error
	}

	return event, nil
}

// FindDetail fetches the event with its questions restricted to targetRole
// and the user IDs of existing bookings.
func (d *EventDAO) FindDetail(ctx context.Context, id uint, targetRole string) (Event, []uint, error) {
	var event Event

	result := d.db.WithContext(ctx).
		Preload("Questions", "target_role = ?", targetRole).
		First(&event, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Event{}, nil, ErrEventNotFound
		}

		return Event{}, nil, result.Error
	}

	var userIDs []uint
	result = d.db.WithContext(ctx).
		Model(&Booking{}).
		Where("event_id = ?", id).
		Pluck("user_id", &userIDs)
	if result.Error != nil {
		return Event{}, nil, result.Error
	}

	return event, userIDs, nil
}
