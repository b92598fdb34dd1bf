package transport

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type QualifyRequest struct {
	PropertySlug string `json:"propertySlug" validate:"omitempty,max=64"`
	BusinessType string `json:"businessType" validate:"max=64"`
	SpaceNeeded  string `json:"spaceNeeded" validate:"max=64"`
	Timeline     string `json:"timeline" validate:"max=64"`
	Budget       string `json:"budget" validate:"max=64"`
}

type SlotsRequest struct {
	Window string `form:"window" json:"window" validate:"required,oneof=this_week next_week two_weeks"`
}

// InquiryRequest is the final step of the inquiry wizard.
// ScheduledDate and ScheduledTime travel together; the pairing is checked by the service.
type InquiryRequest struct {
	PropertySlug  string `json:"propertySlug" validate:"required,max=64"`
	PropertyName  string `json:"propertyName" validate:"max=200"`
	BusinessType  string `json:"businessType" validate:"max=64"`
	SpaceNeeded   string `json:"spaceNeeded" validate:"max=64"`
	Timeline      string `json:"timeline" validate:"max=64"`
	Budget        string `json:"budget" validate:"max=64"`
	Name          string `json:"name" validate:"required,max=200"`
	Phone         string `json:"phone" validate:"required,min=5,max=40"`
	Email         string `json:"email" validate:"required,email,max=254"`
	BusinessName  string `json:"businessName" validate:"max=200"`
	Message       string `json:"message" validate:"max=5000"`
	ScheduledDate string `json:"scheduledDate" validate:"omitempty,datetime=2006-01-02"`
	ScheduledTime string `json:"scheduledTime" validate:"max=40"`
	LeadScore     *int   `json:"leadScore" validate:"omitempty,min=0,max=100"`
	LeadPriority  string `json:"leadPriority" validate:"omitempty,oneof=low medium high"`
}

type ListLeadsRequest struct {
	Property string `form:"property" validate:"max=64"`
	Priority string `form:"priority" validate:"omitempty,oneof=low medium high"`
	Limit    int    `form:"limit" validate:"omitempty,min=1,max=200"`
}

// Response DTOs

type SlotDate struct {
	Date  string `json:"date"`
	Label string `json:"label"`
}

type QualifyResponse struct {
	Score              int        `json:"score"`
	Priority           string     `json:"priority"`
	AvailabilityWindow string     `json:"availabilityWindow"`
	EstimatedValue     string     `json:"estimatedValue"`
	Dates              []SlotDate `json:"dates"`
	TimeWindows        []string   `json:"timeWindows"`
}

type SlotsResponse struct {
	Window      string     `json:"window"`
	Dates       []SlotDate `json:"dates"`
	TimeWindows []string   `json:"timeWindows"`
}

type InquiryResponse struct {
	Success  bool      `json:"success"`
	LeadID   uuid.UUID `json:"leadId"`
	Score    int       `json:"score"`
	Priority string    `json:"priority"`
}

type LeadListItem struct {
	ID            uuid.UUID `json:"id"`
	PropertySlug  string    `json:"propertySlug"`
	PropertyName  string    `json:"propertyName"`
	BusinessType  string    `json:"businessType"`
	SpaceNeeded   string    `json:"spaceNeeded"`
	Timeline      string    `json:"timeline"`
	Budget        string    `json:"budget"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	BusinessName  string    `json:"businessName,omitempty"`
	Message       string    `json:"message,omitempty"`
	ScheduledDate *string   `json:"scheduledDate,omitempty"`
	ScheduledTime *string   `json:"scheduledTime,omitempty"`
	Score         int       `json:"score"`
	Priority      string    `json:"priority"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

type LeadListResponse struct {
	Items []LeadListItem `json:"items"`
	Total int            `json:"total"`
}
