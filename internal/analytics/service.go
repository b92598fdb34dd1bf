package analytics

import (
	"context"
	"time"

	"plaza_storefront_backend/internal/events"
	"plaza_storefront_backend/platform/logger"
)

// PropertyLookup reports whether a plaza exists.
type PropertyLookup interface {
	PropertyName(slug string) (string, bool)
}

// Service accepts funnel events and hands them to the recorder.
type Service struct {
	recorder Recorder
	now      func() time.Time
	log      *logger.Logger
}

func NewService(recorder Recorder, log *logger.Logger) *Service {
	return &Service{recorder: recorder, now: time.Now, log: log}
}

// Track records a client-side event. Submits are counted from the server
// side InquirySubmitted event, so client submits are acknowledged only.
func (s *Service) Track(ctx context.Context, e Event) {
	if e.Name == EventInquiryFormSubmit {
		s.log.WithContext(ctx).Debug("client submit event acknowledged, counted server-side", "property", e.PropertySlug)
		return
	}
	s.record(ctx, e)
}

// RegisterHandlers subscribes the funnel to domain events.
func (s *Service) RegisterHandlers(bus events.Bus) {
	bus.Subscribe(events.InquirySubmittedName, events.HandlerFunc(func(ctx context.Context, event events.Event) error {
		e, ok := event.(events.InquirySubmitted)
		if !ok {
			return nil
		}
		score := e.Score
		s.record(ctx, Event{
			Name:         EventInquiryFormSubmit,
			PropertySlug: e.PropertySlug,
			Score:        &score,
			Priority:     e.Priority,
			At:           e.OccurredAt(),
		})
		return nil
	}))
}

func (s *Service) record(ctx context.Context, e Event) {
	if e.At.IsZero() {
		e.At = s.now()
	}
	if err := s.recorder.Record(ctx, e); err != nil {
		s.log.WithContext(ctx).Warn("failed to record funnel event", "event", e.Name, "property", e.PropertySlug, "error", err)
	}
}
