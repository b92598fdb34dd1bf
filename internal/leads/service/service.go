// Package service implements lead qualification and inquiry intake.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"plaza_storefront_backend/internal/email"
	"plaza_storefront_backend/internal/events"
	"plaza_storefront_backend/internal/leads/repository"
	"plaza_storefront_backend/internal/leads/scheduling"
	"plaza_storefront_backend/internal/leads/scoring"
	"plaza_storefront_backend/internal/leads/transport"
	"plaza_storefront_backend/platform/apperr"
	"plaza_storefront_backend/platform/logger"
	"plaza_storefront_backend/platform/metrics"
	"plaza_storefront_backend/platform/phone"
	"plaza_storefront_backend/platform/sanitize"

	"github.com/google/uuid"
)

const kindLeadAlert = "lead_alert"

// PropertyLookup resolves a plaza slug to its display name.
type PropertyLookup interface {
	PropertyName(slug string) (string, bool)
}

// Deps groups the collaborators of the service.
// Repo, Calendar and Sender are required; Properties and Bus may be nil.
type Deps struct {
	Repo         repository.LeadStore
	Properties   PropertyLookup
	Calendar     *scheduling.Calendar
	Policy       scoring.Policy
	Sender       email.Sender
	EmailEnabled bool
	OwnerEmail   string
	Bus          events.Bus
	Location     *time.Location
	Log          *logger.Logger
}

// Service orchestrates qualification and inquiry submission.
type Service struct {
	repo         repository.LeadStore
	properties   PropertyLookup
	calendar     *scheduling.Calendar
	policy       scoring.Policy
	sender       email.Sender
	emailEnabled bool
	ownerEmail   string
	bus          events.Bus
	loc          *time.Location
	now          func() time.Time
	log          *logger.Logger
}

func New(deps Deps) *Service {
	loc := deps.Location
	if loc == nil {
		loc = time.UTC
	}
	log := deps.Log
	if log == nil {
		log = logger.Discard()
	}
	return &Service{
		repo:         deps.Repo,
		properties:   deps.Properties,
		calendar:     deps.Calendar,
		policy:       deps.Policy,
		sender:       deps.Sender,
		emailEnabled: deps.EmailEnabled,
		ownerEmail:   deps.OwnerEmail,
		bus:          deps.Bus,
		loc:          loc,
		now:          time.Now,
		log:          log,
	}
}

// SetClock replaces the wall clock. Intended for tests.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

func (s *Service) today() time.Time {
	return s.now().In(s.loc)
}

// Qualify scores a questionnaire and offers the tour dates of its window.
func (s *Service) Qualify(ctx context.Context, req transport.QualifyRequest) (transport.QualifyResponse, error) {
	if slug := strings.TrimSpace(req.PropertySlug); slug != "" {
		if _, err := s.propertyName(slug, ""); err != nil {
			return transport.QualifyResponse{}, err
		}
	}

	result := s.policy.Compute(scoring.NewQuestionnaire(req.BusinessType, req.SpaceNeeded, req.Timeline, req.Budget))
	dates, err := s.slotDates(result.AvailabilityWindow)
	if err != nil {
		return transport.QualifyResponse{}, err
	}

	metrics.LeadsQualified.WithLabelValues(string(result.Priority)).Inc()
	s.log.WithContext(ctx).LeadEvent("qualified", req.PropertySlug, result.Score, string(result.Priority))

	return transport.QualifyResponse{
		Score:              result.Score,
		Priority:           string(result.Priority),
		AvailabilityWindow: string(result.AvailabilityWindow),
		EstimatedValue:     result.EstimatedValue,
		Dates:              dates,
		TimeWindows:        scheduling.TimeWindows(),
	}, nil
}

// Slots lists the tour dates and time windows for an availability window.
func (s *Service) Slots(_ context.Context, window string) (transport.SlotsResponse, error) {
	w := scoring.AvailabilityWindow(strings.TrimSpace(window))
	dates, err := s.slotDates(w)
	if err != nil {
		return transport.SlotsResponse{}, err
	}
	return transport.SlotsResponse{
		Window:      string(w),
		Dates:       dates,
		TimeWindows: scheduling.TimeWindows(),
	}, nil
}

func (s *Service) slotDates(window scoring.AvailabilityWindow) ([]transport.SlotDate, error) {
	dates, err := s.calendar.AvailableDates(window, s.today())
	if err != nil {
		return nil, err
	}
	out := make([]transport.SlotDate, 0, len(dates))
	for _, d := range dates {
		out = append(out, transport.SlotDate{
			Date:  scheduling.FormatISODate(d),
			Label: scheduling.FormatSlotDate(d),
		})
	}
	return out, nil
}

// SubmitInquiry stores the inquiry, alerts the leasing office and publishes
// InquirySubmitted. Storage failures are logged; an alert failure is returned.
func (s *Service) SubmitInquiry(ctx context.Context, req transport.InquiryRequest) (transport.InquiryResponse, error) {
	log := s.log.WithContext(ctx)

	slug := strings.ToLower(strings.TrimSpace(req.PropertySlug))
	propertyName, err := s.propertyName(slug, sanitize.Line(req.PropertyName))
	if err != nil {
		return transport.InquiryResponse{}, err
	}

	scheduledDate, scheduledTime, err := s.checkSchedule(req.ScheduledDate, req.ScheduledTime)
	if err != nil {
		return transport.InquiryResponse{}, err
	}

	questionnaire := scoring.NewQuestionnaire(req.BusinessType, req.SpaceNeeded, req.Timeline, req.Budget)
	result := s.policy.Compute(questionnaire)
	if mismatch(req, result) {
		metrics.LeadScoreMismatches.Inc()
		log.Warn("client lead score differs from server score",
			"property", slug,
			"clientScore", derefInt(req.LeadScore),
			"clientPriority", req.LeadPriority,
			"score", result.Score,
			"priority", result.Priority,
		)
	}

	lead := repository.Lead{
		ID:            uuid.New(),
		PropertySlug:  slug,
		PropertyName:  propertyName,
		BusinessType:  string(questionnaire.BusinessType),
		SpaceNeeded:   string(questionnaire.SpaceNeeded),
		Timeline:      string(questionnaire.Timeline),
		Budget:        string(questionnaire.Budget),
		Name:          sanitize.Line(req.Name),
		Phone:         phone.NormalizeE164(sanitize.Line(req.Phone)),
		Email:         strings.ToLower(strings.TrimSpace(req.Email)),
		BusinessName:  sanitize.Line(req.BusinessName),
		Message:       sanitize.Text(req.Message),
		ScheduledDate: scheduledDate,
		ScheduledTime: scheduledTime,
		LeadScore:     result.Score,
		LeadPriority:  string(result.Priority),
		Status:        repository.StatusNew,
		CreatedAt:     s.now(),
	}
	if lead.Name == "" {
		return transport.InquiryResponse{}, apperr.Validation("validation failed").WithDetails(map[string]string{"name": "required"})
	}
	if lead.Phone == "" {
		return transport.InquiryResponse{}, apperr.Validation("validation failed").WithDetails(map[string]string{"phone": "required"})
	}

	if stored, err := s.repo.Create(ctx, lead); err != nil {
		metrics.LeadStoreFailures.Inc()
		log.DatabaseError("create lead", err)
	} else {
		lead = stored
	}

	if err := s.alertOwner(ctx, lead); err != nil {
		return transport.InquiryResponse{}, err
	}

	if s.bus != nil {
		s.bus.Publish(ctx, inquirySubmitted(lead, result.EstimatedValue))
	}

	metrics.LeadsSubmitted.WithLabelValues(slug, lead.LeadPriority).Inc()
	log.LeadEvent("inquiry_submitted", slug, lead.LeadScore, lead.LeadPriority)

	return transport.InquiryResponse{
		Success:  true,
		LeadID:   lead.ID,
		Score:    lead.LeadScore,
		Priority: lead.LeadPriority,
	}, nil
}

// ListLeads returns the newest inquiries for the admin inbox.
func (s *Service) ListLeads(ctx context.Context, req transport.ListLeadsRequest) (transport.LeadListResponse, error) {
	leads, err := s.repo.List(ctx, repository.ListParams{
		PropertySlug: strings.ToLower(strings.TrimSpace(req.Property)),
		Priority:     req.Priority,
		Limit:        req.Limit,
	})
	if err != nil {
		return transport.LeadListResponse{}, apperr.Wrap(apperr.KindInternal, "failed to list leads", err)
	}

	items := make([]transport.LeadListItem, 0, len(leads))
	for _, lead := range leads {
		items = append(items, toListItem(lead))
	}
	return transport.LeadListResponse{Items: items, Total: len(items)}, nil
}

// propertyName returns the submitted name, then the catalog name, then the slug.
func (s *Service) propertyName(slug, submitted string) (string, error) {
	if s.properties == nil {
		return firstNonEmpty(submitted, slug), nil
	}
	name, ok := s.properties.PropertyName(slug)
	if !ok {
		return "", apperr.NotFound(fmt.Sprintf("property %q not found", slug))
	}
	return firstNonEmpty(submitted, name, slug), nil
}

func (s *Service) checkSchedule(date, window string) (*time.Time, *string, error) {
	date = strings.TrimSpace(date)
	window = strings.TrimSpace(window)

	switch {
	case date == "" && window == "":
		return nil, nil, nil
	case date == "":
		return nil, nil, apperr.Validation("scheduledDate is required with scheduledTime").
			WithDetails(map[string]string{"scheduledDate": "required_with"})
	case window == "":
		return nil, nil, apperr.Validation("scheduledTime is required with scheduledDate").
			WithDetails(map[string]string{"scheduledTime": "required_with"})
	}

	if !scheduling.IsTimeWindow(window) {
		return nil, nil, apperr.Validation(fmt.Sprintf("unknown time window %q", window)).
			WithDetails(map[string]string{"scheduledTime": "oneof"})
	}

	day, err := scheduling.ParseDate(date, s.loc)
	if err != nil {
		return nil, nil, err
	}
	today := s.today()
	if day.Before(time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, s.loc)) {
		return nil, nil, apperr.Validation("scheduledDate is in the past").
			WithDetails(map[string]string{"scheduledDate": "past"})
	}
	if !s.calendar.IsBusinessDay(day) {
		return nil, nil, apperr.Validation("tours are only offered on business days").
			WithDetails(map[string]string{"scheduledDate": "business_day"})
	}
	return &day, &window, nil
}

func (s *Service) alertOwner(ctx context.Context, lead repository.Lead) error {
	err := s.sender.SendLeadAlert(ctx, s.ownerEmail, toEmailLead(lead))
	if !s.emailEnabled {
		return err
	}
	if err != nil {
		metrics.EmailsSent.WithLabelValues(kindLeadAlert, "failed").Inc()
		s.log.WithContext(ctx).EmailFailure(kindLeadAlert, s.ownerEmail, err)
		return apperr.Unavailable("failed to notify the leasing office", err).WithOp("leads.SubmitInquiry")
	}
	metrics.EmailsSent.WithLabelValues(kindLeadAlert, "sent").Inc()
	return nil
}

func mismatch(req transport.InquiryRequest, result scoring.Result) bool {
	if req.LeadScore != nil && *req.LeadScore != result.Score {
		return true
	}
	return req.LeadPriority != "" && req.LeadPriority != string(result.Priority)
}

func inquirySubmitted(lead repository.Lead, estimatedValue string) events.InquirySubmitted {
	e := events.InquirySubmitted{
		BaseEvent:      events.NewBaseEvent(),
		LeadID:         lead.ID,
		PropertySlug:   lead.PropertySlug,
		PropertyName:   lead.PropertyName,
		Name:           lead.Name,
		Phone:          lead.Phone,
		Email:          lead.Email,
		BusinessName:   lead.BusinessName,
		BusinessType:   lead.BusinessType,
		SpaceNeeded:    lead.SpaceNeeded,
		Timeline:       lead.Timeline,
		Budget:         lead.Budget,
		Message:        lead.Message,
		Score:          lead.LeadScore,
		Priority:       lead.LeadPriority,
		EstimatedValue: estimatedValue,
	}
	if lead.ScheduledDate != nil && lead.ScheduledTime != nil {
		e.ScheduledDate = scheduling.FormatISODate(*lead.ScheduledDate)
		e.ScheduledTime = *lead.ScheduledTime
	}
	return e
}

func toEmailLead(lead repository.Lead) email.Lead {
	out := email.Lead{
		PropertyName: lead.PropertyName,
		Name:         lead.Name,
		Phone:        lead.Phone,
		Email:        lead.Email,
		BusinessName: lead.BusinessName,
		BusinessType: lead.BusinessType,
		SpaceNeeded:  lead.SpaceNeeded,
		Timeline:     lead.Timeline,
		Budget:       lead.Budget,
		Message:      lead.Message,
		Score:        lead.LeadScore,
		Priority:     lead.LeadPriority,
	}
	if lead.ScheduledDate != nil && lead.ScheduledTime != nil {
		out.ScheduledDate = *lead.ScheduledDate
		out.ScheduledTime = *lead.ScheduledTime
	}
	return out
}

func toListItem(lead repository.Lead) transport.LeadListItem {
	item := transport.LeadListItem{
		ID:            lead.ID,
		PropertySlug:  lead.PropertySlug,
		PropertyName:  lead.PropertyName,
		BusinessType:  lead.BusinessType,
		SpaceNeeded:   lead.SpaceNeeded,
		Timeline:      lead.Timeline,
		Budget:        lead.Budget,
		Name:          lead.Name,
		Phone:         lead.Phone,
		Email:         lead.Email,
		BusinessName:  lead.BusinessName,
		Message:       lead.Message,
		ScheduledTime: lead.ScheduledTime,
		Score:         lead.LeadScore,
		Priority:      lead.LeadPriority,
		Status:        lead.Status,
		CreatedAt:     lead.CreatedAt,
	}
	if lead.ScheduledDate != nil {
		d := scheduling.FormatISODate(*lead.ScheduledDate)
		item.ScheduledDate = &d
	}
	return item
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
