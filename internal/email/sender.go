// Package email renders and delivers the leasing inquiry emails.
package email

import (
	"context"
	"fmt"
	"strings"
	"time"

	"plaza_storefront_backend/platform/config"
	"plaza_storefront_backend/platform/logger"
)

// Sender sends the two inquiry emails.
type Sender interface {
	// SendLeadAlert notifies the leasing office about a new inquiry.
	SendLeadAlert(ctx context.Context, toEmail string, lead Lead) error
	// SendLeadConfirmation acknowledges the inquiry to the prospect.
	SendLeadConfirmation(ctx context.Context, toEmail string, lead Lead) error
}

// Lead is the inquiry as the templates see it. Tags are raw questionnaire
// values; the templates map them to human labels.
type Lead struct {
	PropertyName  string
	Name          string
	Phone         string
	Email         string
	BusinessName  string
	BusinessType  string
	SpaceNeeded   string
	Timeline      string
	Budget        string
	Message       string
	ScheduledDate time.Time
	ScheduledTime string
	Score         int
	Priority      string
}

// HasTour reports whether the prospect picked both a date and a time window.
func (l Lead) HasTour() bool {
	return !l.ScheduledDate.IsZero() && l.ScheduledTime != ""
}

// Message is a rendered email ready for a transport.
type Message struct {
	FromName  string
	FromEmail string
	To        string
	ReplyTo   string
	Subject   string
	HTML      string
}

// Transport delivers a rendered message.
type Transport interface {
	Deliver(ctx context.Context, msg Message) error
}

// Mailer renders templates and hands them to a Transport.
type Mailer struct {
	transport Transport
	fromName  string
	fromEmail string
}

// NewMailer creates a Mailer sending from the given address.
func NewMailer(transport Transport, fromName, fromEmail string) *Mailer {
	return &Mailer{transport: transport, fromName: fromName, fromEmail: fromEmail}
}

func (m *Mailer) SendLeadAlert(ctx context.Context, toEmail string, lead Lead) error {
	content, err := renderLeadAlert(lead)
	if err != nil {
		return err
	}
	return m.transport.Deliver(ctx, Message{
		FromName:  m.fromName,
		FromEmail: m.fromEmail,
		To:        toEmail,
		ReplyTo:   lead.Email,
		Subject:   leadAlertSubject(lead),
		HTML:      content,
	})
}

func (m *Mailer) SendLeadConfirmation(ctx context.Context, toEmail string, lead Lead) error {
	content, err := renderLeadConfirmation(lead)
	if err != nil {
		return err
	}
	return m.transport.Deliver(ctx, Message{
		FromName:  m.fromName,
		FromEmail: m.fromEmail,
		To:        toEmail,
		Subject:   leadConfirmationSubject(lead),
		HTML:      content,
	})
}

// NoopSender logs instead of sending. It is used when no provider is configured.
type NoopSender struct {
	Log *logger.Logger
}

func (n NoopSender) SendLeadAlert(ctx context.Context, toEmail string, lead Lead) error {
	n.skip(ctx, "lead_alert", toEmail, lead)
	return nil
}

func (n NoopSender) SendLeadConfirmation(ctx context.Context, toEmail string, lead Lead) error {
	n.skip(ctx, "lead_confirmation", toEmail, lead)
	return nil
}

func (n NoopSender) skip(ctx context.Context, kind, toEmail string, lead Lead) {
	if n.Log == nil {
		return
	}
	n.Log.WithContext(ctx).Info("email provider not configured, skipping email",
		"kind", kind,
		"to", toEmail,
		"property", lead.PropertyName,
	)
}

// Provider names accepted by EMAIL_PROVIDER.
const (
	ProviderNone  = "none"
	ProviderBrevo = "brevo"
	ProviderSMTP  = "smtp"
	ProviderSES   = "ses"
)

// ResolveProvider picks the provider: EMAIL_PROVIDER when set, otherwise the
// first configured of Brevo, SMTP and SES.
func ResolveProvider(cfg config.EmailConfig) string {
	if p := strings.ToLower(strings.TrimSpace(cfg.GetEmailProvider())); p != "" {
		return p
	}
	switch {
	case cfg.GetBrevoAPIKey() != "":
		return ProviderBrevo
	case cfg.GetSMTPHost() != "":
		return ProviderSMTP
	case cfg.GetSESRegion() != "":
		return ProviderSES
	default:
		return ProviderNone
	}
}

// NewSender builds the Sender for the configured provider.
// The returned bool is false when emails only go to the log.
func NewSender(ctx context.Context, cfg config.EmailConfig, log *logger.Logger) (Sender, bool, error) {
	var transport Transport
	switch provider := ResolveProvider(cfg); provider {
	case ProviderNone:
		return NoopSender{Log: log}, false, nil
	case ProviderBrevo:
		transport = NewBrevoTransport(cfg.GetBrevoAPIKey())
	case ProviderSMTP:
		transport = NewSMTPTransport(cfg.GetSMTPHost(), cfg.GetSMTPPort(), cfg.GetSMTPUsername(), cfg.GetSMTPPassword())
	case ProviderSES:
		ses, err := NewSESTransport(ctx, cfg.GetSESRegion())
		if err != nil {
			return nil, false, err
		}
		transport = ses
	default:
		return nil, false, fmt.Errorf("unsupported email provider %q", provider)
	}

	return NewMailer(transport, cfg.GetEmailFromName(), cfg.GetEmailFromAddress()), true, nil
}
