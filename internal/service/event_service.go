package service

import (
	"context"
	"errors"
	"time"

	"fittrack/internal/domain"
	"fittrack/internal/repository"
)

// --- Error Definitions ---
var (
	ErrEventNotSet     = errors.New("no countdown event is set")
	ErrEventValidation = errors.New("event validation failed")
)

// EventService manages the single countdown event and derives the time
// remaining until it.
type EventService interface {
	SetEvent(ctx context.Context, name string, date time.Time) (*domain.EventCountdown, error)
	GetCountdown(ctx context.Context) (*domain.Countdown, error)
	ClearEvent(ctx context.Context) error
}

// eventService implements the EventService interface.
type eventService struct {
	eventRepo repository.EventRepository
	now       func() time.Time
}

// NewEventService creates a new instance of eventService.
func NewEventService(eventRepo repository.EventRepository) EventService {
	return &eventService{
		eventRepo: eventRepo,
		now:       time.Now,
	}
}

// SetEvent stores (or replaces) the countdown target.
func (s *eventService) SetEvent(ctx context.Context, name string, date time.Time) (*domain.EventCountdown, error) {
	if name == "" {
		return nil, errors.New("event name is required")
	}
	if date.IsZero() {
		return nil, errors.New("event date is required")
	}

	event := &domain.EventCountdown{Name: name, Date: date.UTC()}
	if err := s.eventRepo.Set(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// GetCountdown returns the remaining time until the event, broken into
// days/hours/minutes/seconds. A past event reports zeros and Ended.
func (s *eventService) GetCountdown(ctx context.Context) (*domain.Countdown, error) {
	event, err := s.eventRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEventNotSet
		}
		return nil, err
	}

	countdown := &domain.Countdown{EventName: event.Name}
	remaining := event.Date.Sub(s.now())
	// The boundary instant counts as ended, not as zero time left.
	if remaining <= 0 {
		countdown.Ended = true
		return countdown, nil
	}

	countdown.Days = int(remaining.Hours()) / 24
	countdown.Hours = int(remaining.Hours()) % 24
	countdown.Minutes = int(remaining.Minutes()) % 60
	countdown.Seconds = int(remaining.Seconds()) % 60
	return countdown, nil
}

// ClearEvent removes the countdown target.
func (s *eventService) ClearEvent(ctx context.Context) error {
	return s.eventRepo.Clear(ctx)
}
