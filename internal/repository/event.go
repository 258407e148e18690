package repository

import (
	"context"
	"fmt"

	"github.com/communitydesk/eventdesk/internal/domain"
	"github.com/communitydesk/eventdesk/internal/repository/dao"
)

var ErrEventNotFound = dao.ErrEventNotFound

type EventDAO interface {
	Insert(ctx context.Context, event dao.Event) (dao.Event, error)
	FindAll(ctx context.Context) ([]dao.Event, error)
	FindByID(ctx context.Context, id uint) (dao.Event, error)
	FindDetail(ctx context.Context, id uint, targetRole string) (dao.Event, []uint, error)
}

type EventRepository struct {
	dao EventDAO
}

func NewEventRepository(dao EventDAO) *EventRepository {
	return &EventRepository{
		dao: dao,
	}
}

func (r *EventRepository) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	questions := make([]dao.Question, len(event.Questions))
	for i, q := range event.Questions {
		questions[i] = dao.Question{
			Text:       q.Text,
			Type:       q.Type,
			Options:    q.Options,
			TargetRole: q.TargetRole,
		}
	}

	created, err := r.dao.Insert(ctx, dao.Event{
		Name:      event.Name,
		Start:     event.Start,
		End:       event.End,
		Location:  event.Location,
		MinTier:   event.MinTier,
		Questions: questions,
	})
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	result := r.daoToDomain(created)
	result.Questions = r.questionsDaoToDomain(created.Questions)

	return result, nil
}

func (r *EventRepository) FindAll(ctx context.Context) ([]domain.Event, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	events := make([]domain.Event, len(found))
	for i, e := range found {
		events[i] = r.daoToDomain(e)
	}

	return events, nil
}

func (r *EventRepository) FindByID(ctx context.Context, id uint) (domain.Event, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

// FindDetail returns the event with questions filtered to targetRole and the
// refs of existing bookings.
func (r *EventRepository) FindDetail(ctx context.Context, id uint, targetRole string) (domain.Event, error) {
	found, userIDs, err := r.dao.FindDetail(ctx, id, targetRole)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.FindDetail -> %w", err)
	}

	event := r.daoToDomain(found)
	event.Questions = r.questionsDaoToDomain(found.Questions)
	event.Bookings = make([]domain.BookingRef, len(userIDs))
	for i, userID := range userIDs {
		event.Bookings[i] = domain.BookingRef{UserID: userID}
	}

	return event, nil
}

func (r *EventRepository) daoToDomain(e dao.Event) domain.Event {
	return domain.Event{
		ID:        e.ID,
		Name:      e.Name,
		Start:     e.Start,
		End:       e.End,
		Location:  e.Location,
		MinTier:   e.MinTier,
		CreatedAt: e.CreatedAt,
	}
}

func (r *EventRepository) questionsDaoToDomain(questions []dao.Question) []domain.Question {
	result := make([]domain.Question, len(questions))
	for i, q := range questions {
		result[i] = domain.Question{
			ID:         q.ID,
			EventID:    q.EventID,
			Text:       q.Text,
			Type:       q.Type,
			Options:    q.Options,
			TargetRole: q.TargetRole,
		}
	}

	return result
}
