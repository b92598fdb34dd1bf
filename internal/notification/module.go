// Package notification provides event handlers for sending notifications
// in response to domain events.
// This module subscribes to events and inverts the dependency: the leads
// module never needs to know whether a confirmation is queued or sent inline.
package notification

import (
	"context"

	"plaza_storefront_backend/internal/email"
	"plaza_storefront_backend/internal/events"
	"plaza_storefront_backend/internal/scheduler"
	"plaza_storefront_backend/platform/logger"
	"plaza_storefront_backend/platform/metrics"
)

const kindLeadConfirmation = "lead_confirmation"

// Module handles all notification-related event subscriptions.
type Module struct {
	sender email.Sender
	queue  scheduler.ConfirmationQueue
	log    *logger.Logger
}

// New creates the notification module. Without a queue every email is sent
// from the event handler goroutine.
func New(sender email.Sender, log *logger.Logger) *Module {
	return &Module{sender: sender, log: log}
}

// SetConfirmationQueue routes prospect confirmations through the job queue.
func (m *Module) SetConfirmationQueue(queue scheduler.ConfirmationQueue) {
	m.queue = queue
}

// RegisterHandlers subscribes the module to the events it reacts to.
func (m *Module) RegisterHandlers(bus events.Bus) {
	bus.Subscribe(events.InquirySubmittedName, m)
}

// Handle implements events.Handler.
func (m *Module) Handle(ctx context.Context, event events.Event) error {
	switch e := event.(type) {
	case events.InquirySubmitted:
		m.handleInquirySubmitted(ctx, e)
	default:
		m.log.Debug("notification module ignoring event", "event", event.EventName())
	}
	return nil
}

// Confirmation failures never reach the prospect, so they are only logged.
func (m *Module) handleInquirySubmitted(ctx context.Context, e events.InquirySubmitted) {
	log := m.log.WithContext(ctx)
	payload := confirmationPayload(e)

	if m.queue != nil {
		err := m.queue.EnqueueLeadConfirmation(ctx, payload)
		if err == nil {
			log.Info("lead confirmation queued", "leadId", payload.LeadID)
			return
		}
		log.Warn("failed to queue lead confirmation, sending inline", "leadId", payload.LeadID, "error", err)
	}

	lead, err := payload.Lead()
	if err != nil {
		log.EmailFailure(kindLeadConfirmation, payload.ToEmail, err)
		metrics.EmailsSent.WithLabelValues(kindLeadConfirmation, "failed").Inc()
		return
	}
	if err := m.sender.SendLeadConfirmation(ctx, payload.ToEmail, lead); err != nil {
		log.EmailFailure(kindLeadConfirmation, payload.ToEmail, err)
		metrics.EmailsSent.WithLabelValues(kindLeadConfirmation, "failed").Inc()
		return
	}
	metrics.EmailsSent.WithLabelValues(kindLeadConfirmation, "sent").Inc()
}

func confirmationPayload(e events.InquirySubmitted) scheduler.LeadConfirmationPayload {
	return scheduler.LeadConfirmationPayload{
		LeadID:        e.LeadID.String(),
		ToEmail:       e.Email,
		PropertyName:  e.PropertyName,
		Name:          e.Name,
		Phone:         e.Phone,
		Email:         e.Email,
		BusinessName:  e.BusinessName,
		BusinessType:  e.BusinessType,
		SpaceNeeded:   e.SpaceNeeded,
		Timeline:      e.Timeline,
		Budget:        e.Budget,
		Message:       e.Message,
		ScheduledDate: e.ScheduledDate,
		ScheduledTime: e.ScheduledTime,
		Score:         e.Score,
		Priority:      e.Priority,
	}
}
