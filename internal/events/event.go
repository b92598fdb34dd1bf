// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"plaza_storefront_backend/platform/events"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// =============================================================================
// Leads Domain Events
// =============================================================================

// InquirySubmittedName is the bus topic of InquirySubmitted.
const InquirySubmittedName = "leads.inquiry.submitted"

// InquirySubmitted is published after a prospect's inquiry has been accepted
// and the leasing office was alerted. Subscribers must not block the request.
type InquirySubmitted struct {
	BaseEvent
	LeadID         uuid.UUID `json:"leadId"`
	PropertySlug   string    `json:"propertySlug"`
	PropertyName   string    `json:"propertyName"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	BusinessName   string    `json:"businessName,omitempty"`
	BusinessType   string    `json:"businessType"`
	SpaceNeeded    string    `json:"spaceNeeded"`
	Timeline       string    `json:"timeline"`
	Budget         string    `json:"budget"`
	Message        string    `json:"message,omitempty"`
	ScheduledDate  string    `json:"scheduledDate,omitempty"` // YYYY-MM-DD
	ScheduledTime  string    `json:"scheduledTime,omitempty"`
	Score          int       `json:"score"`
	Priority       string    `json:"priority"`
	EstimatedValue string    `json:"estimatedValue"`
}

func (e InquirySubmitted) EventName() string { return InquirySubmittedName }

// HasTour reports whether the prospect picked a tour slot.
func (e InquirySubmitted) HasTour() bool {
	return e.ScheduledDate != "" && e.ScheduledTime != ""
}
