package scheduler

import (
	"encoding/json"
	"fmt"
	"time"

	"plaza_storefront_backend/internal/email"

	"github.com/hibiken/asynq"
)

const TaskLeadConfirmationEmail = "leads.confirmation_email"

const scheduledDateLayout = "2006-01-02"

// LeadConfirmationPayload carries everything the worker needs to render the
// prospect confirmation without a database lookup.
type LeadConfirmationPayload struct {
	LeadID        string `json:"leadId"`
	ToEmail       string `json:"toEmail"`
	PropertyName  string `json:"propertyName"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	BusinessName  string `json:"businessName,omitempty"`
	BusinessType  string `json:"businessType"`
	SpaceNeeded   string `json:"spaceNeeded"`
	Timeline      string `json:"timeline"`
	Budget        string `json:"budget"`
	Message       string `json:"message,omitempty"`
	ScheduledDate string `json:"scheduledDate,omitempty"`
	ScheduledTime string `json:"scheduledTime,omitempty"`
	Score         int    `json:"score"`
	Priority      string `json:"priority"`
}

// Lead converts the payload into the template view of the inquiry.
func (p LeadConfirmationPayload) Lead() (email.Lead, error) {
	lead := email.Lead{
		PropertyName:  p.PropertyName,
		Name:          p.Name,
		Phone:         p.Phone,
		Email:         p.Email,
		BusinessName:  p.BusinessName,
		BusinessType:  p.BusinessType,
		SpaceNeeded:   p.SpaceNeeded,
		Timeline:      p.Timeline,
		Budget:        p.Budget,
		Message:       p.Message,
		ScheduledTime: p.ScheduledTime,
		Score:         p.Score,
		Priority:      p.Priority,
	}
	if p.ScheduledDate != "" {
		date, err := time.Parse(scheduledDateLayout, p.ScheduledDate)
		if err != nil {
			return email.Lead{}, fmt.Errorf("scheduled date %q: %w", p.ScheduledDate, err)
		}
		lead.ScheduledDate = date
	}
	return lead, nil
}

func NewLeadConfirmationTask(payload LeadConfirmationPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskLeadConfirmationEmail, data), nil
}

func ParseLeadConfirmationPayload(task *asynq.Task) (LeadConfirmationPayload, error) {
	var payload LeadConfirmationPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return LeadConfirmationPayload{}, err
	}
	return payload, nil
}
