package service

import (
	"context"
	"fmt"

	"github.com/communitydesk/eventdesk/internal/domain"
	"github.com/communitydesk/eventdesk/internal/repository"
)

var ErrEventNotFound = repository.ErrEventNotFound

type EventRepository interface {
	Create(ctx context.Context, event domain.Event) (domain.Event, error)
	FindAll(ctx context.Context) ([]domain.Event, error)
	FindByID(ctx context.Context, id uint) (domain.Event, error)
	FindDetail(ctx context.Context, id uint, targetRole string) (domain.Event, error)
}

type EventService struct {
	repo EventRepository
}

func NewEventService(repo EventRepository) *EventService {
	return &EventService{
		repo: repo,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	if event.MinTier == "" {
		event.MinTier = domain.TierBronze
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// ListEvents returns event summaries ordered by start time.
func (s *EventService) ListEvents(ctx context.Context) ([]domain.Event, error) {
	events, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return events, nil
}

// GetEventDetail returns the event with the questions targeting userRole and
// the refs of existing bookings.
func (s *EventService) GetEventDetail(ctx context.Context, id uint, userRole string) (domain.Event, error) {
	event, err := s.repo.FindDetail(ctx, id, userRole)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindDetail -> %w", err)
	}

	return event, nil
}
