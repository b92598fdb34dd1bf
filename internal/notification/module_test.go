package notification

import (
	"context"
	"errors"
	"testing"

	"plaza_storefront_backend/internal/email"
	"plaza_storefront_backend/internal/events"
	"plaza_storefront_backend/internal/scheduler"
	"plaza_storefront_backend/platform/logger"

	"github.com/google/uuid"
)

const testProspectEmail = "maria@example.com"

type testSender struct {
	confirmations int
	lastTo        string
	lastLead      email.Lead
	err           error
}

func (s *testSender) SendLeadAlert(context.Context, string, email.Lead) error { return nil }

func (s *testSender) SendLeadConfirmation(_ context.Context, to string, lead email.Lead) error {
	s.confirmations++
	s.lastTo = to
	s.lastLead = lead
	return s.err
}

type testQueue struct {
	payloads []scheduler.LeadConfirmationPayload
	err      error
}

func (q *testQueue) EnqueueLeadConfirmation(_ context.Context, payload scheduler.LeadConfirmationPayload) error {
	if q.err != nil {
		return q.err
	}
	q.payloads = append(q.payloads, payload)
	return nil
}

func testInquiry() events.InquirySubmitted {
	return events.InquirySubmitted{
		BaseEvent:     events.NewBaseEvent(),
		LeadID:        uuid.New(),
		PropertySlug:  "palmharborplaza",
		PropertyName:  "Palm Harbor Plaza",
		Name:          "Maria Lopez",
		Phone:         "+17275550100",
		Email:         testProspectEmail,
		BusinessType:  "medical",
		SpaceNeeded:   "medium",
		Timeline:      "three_months",
		Budget:        "medium",
		ScheduledDate: "2026-01-06",
		ScheduledTime: "1:00 PM - 3:00 PM",
		Score:         60,
		Priority:      "medium",
	}
}

func TestInquirySubmittedSendsInlineWithoutQueue(t *testing.T) {
	sender := &testSender{}
	m := New(sender, logger.Discard())

	if err := m.Handle(context.Background(), testInquiry()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sender.confirmations != 1 || sender.lastTo != testProspectEmail {
		t.Fatalf("expected one confirmation to %s, got %d to %q", testProspectEmail, sender.confirmations, sender.lastTo)
	}
	if !sender.lastLead.HasTour() || sender.lastLead.ScheduledTime != "1:00 PM - 3:00 PM" {
		t.Fatalf("expected tour details to carry over, got %+v", sender.lastLead)
	}
}

func TestInquirySubmittedPrefersQueue(t *testing.T) {
	sender := &testSender{}
	queue := &testQueue{}
	m := New(sender, logger.Discard())
	m.SetConfirmationQueue(queue)

	event := testInquiry()
	if err := m.Handle(context.Background(), event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sender.confirmations != 0 {
		t.Fatal("expected no inline send when the queue accepts the job")
	}
	if len(queue.payloads) != 1 || queue.payloads[0].LeadID != event.LeadID.String() {
		t.Fatalf("unexpected queued payloads %+v", queue.payloads)
	}
}

func TestInquirySubmittedFallsBackWhenQueueFails(t *testing.T) {
	sender := &testSender{}
	m := New(sender, logger.Discard())
	m.SetConfirmationQueue(&testQueue{err: errors.New("redis down")})

	if err := m.Handle(context.Background(), testInquiry()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sender.confirmations != 1 {
		t.Fatalf("expected inline fallback, got %d sends", sender.confirmations)
	}
}

func TestSendFailureIsSwallowed(t *testing.T) {
	sender := &testSender{err: errors.New("mailbox unavailable")}
	m := New(sender, logger.Discard())

	if err := m.Handle(context.Background(), testInquiry()); err != nil {
		t.Fatalf("confirmation failures must not surface, got %v", err)
	}
}

func TestRegisterHandlersThroughBus(t *testing.T) {
	sender := &testSender{}
	bus := events.NewInMemoryBus(logger.Discard())
	New(sender, logger.Discard()).RegisterHandlers(bus)

	if err := bus.PublishSync(context.Background(), testInquiry()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sender.confirmations != 1 {
		t.Fatalf("expected subscription to deliver the event, got %d sends", sender.confirmations)
	}
}
